package models

// WeeklyAggregate is one employee's bucket totals summed across every day of
// the processed week. TotalAmount is fixed at construction time:
// regular·rate + overtime·rate·1.5 + doubletime·rate·2, rounded to cents.
type WeeklyAggregate struct {
	EmployeeName    string
	RegularHours    float64
	OvertimeHours   float64
	DoubletimeHours float64
	Rate            float64
	TotalAmount     float64
	DeptHint        string
}

func NewWeeklyAggregate(name string, rate float64, splits []DailyBucketSplit) WeeklyAggregate {
	agg := WeeklyAggregate{
		EmployeeName: name,
		Rate:         rate,
	}

	for _, split := range splits {
		agg.RegularHours += split.RegularHours
		agg.OvertimeHours += split.OvertimeHours
		agg.DoubletimeHours += split.DoubletimeHours
		if agg.DeptHint == "" {
			agg.DeptHint = split.DeptHint
		}
	}

	agg.TotalAmount = RoundCents(agg.RegularHours*rate + agg.OvertimeHours*rate*1.5 + agg.DoubletimeHours*rate*2.0)

	return agg
}

func (agg WeeklyAggregate) TotalHours() float64 {
	return agg.RegularHours + agg.OvertimeHours + agg.DoubletimeHours
}
