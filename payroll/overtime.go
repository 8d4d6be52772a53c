package payroll

import (
	"time"

	log "github.com/sirupsen/logrus"

	"sierra-payroll/models"
)

// California daily overtime tiers: the first eight hours of a day are
// regular, hours eight through twelve pay 1.5x, anything past twelve pays 2x.
const (
	regularDailyLimit  = 8.0
	overtimeDailyLimit = 12.0
)

// SplitDay buckets one employee's total hours for one calendar date. All
// entries for the day are summed before splitting; overtime is a function of
// the day's total, not of individual clock punches. Zero-hour days produce no
// split.
func SplitDay(name string, day time.Time, entries []models.TimeEntry) (models.DailyBucketSplit, bool) {
	var total float64
	for _, entry := range entries {
		total += entry.Hours
	}

	if total <= 0 {
		return models.DailyBucketSplit{}, false
	}

	split := models.DailyBucketSplit{
		EmployeeName: name,
		WorkDate:     day,
		Rate:         dayRate(name, entries),
		DeptHint:     deptHint(entries),
	}

	switch {
	case total <= regularDailyLimit:
		split.RegularHours = total
	case total <= overtimeDailyLimit:
		split.RegularHours = regularDailyLimit
		split.OvertimeHours = total - regularDailyLimit
	default:
		split.RegularHours = regularDailyLimit
		split.OvertimeHours = overtimeDailyLimit - regularDailyLimit
		split.DoubletimeHours = total - overtimeDailyLimit
	}

	return split, true
}

// dayRate picks the rate for the day. When entries carry conflicting rates
// the rate of the entry contributing the most hours wins; ties go to the
// first-seen rate.
func dayRate(name string, entries []models.TimeEntry) float64 {
	hoursByRate := make(map[float64]float64)
	var order []float64

	for _, entry := range entries {
		if _, found := hoursByRate[entry.Rate]; !found {
			order = append(order, entry.Rate)
		}
		hoursByRate[entry.Rate] += entry.Hours
	}

	if len(order) > 1 {
		log.Debugf("conflicting rates for %s on %s, using rate with most hours", name, entries[0].WorkDate.Format("2006-01-02"))
	}

	best := order[0]
	for _, rate := range order[1:] {
		if hoursByRate[rate] > hoursByRate[best] {
			best = rate
		}
	}

	return best
}

func deptHint(entries []models.TimeEntry) string {
	for _, entry := range entries {
		if entry.DeptHint != "" {
			return entry.DeptHint
		}
	}
	return ""
}
