package models

import (
	"time"
)

// DailyBucketSplit is the result of applying the California daily overtime
// tiers to one employee's total hours for one calendar date.
type DailyBucketSplit struct {
	EmployeeName    string
	WorkDate        time.Time
	RegularHours    float64
	OvertimeHours   float64
	DoubletimeHours float64
	Rate            float64
	DeptHint        string
}

func (s DailyBucketSplit) TotalHours() float64 {
	return s.RegularHours + s.OvertimeHours + s.DoubletimeHours
}
