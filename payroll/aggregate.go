package payroll

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"sierra-payroll/models"
)

// Aggregate consolidates parsed entries into one WeeklyAggregate per
// employee: each day is split through the overtime tiers, then the buckets
// are summed across the week. The result order follows first appearance in
// the input, so identical input bytes always yield identical aggregates.
func Aggregate(entries models.TimeEntries) []models.WeeklyAggregate {
	grouped, seen := entries.GroupByEmployeeDay()

	aggregates := make([]models.WeeklyAggregate, 0, len(seen))

	for _, name := range seen {
		days := grouped[name]

		dates := make([]string, 0, len(days))
		byDate := make(map[string][]models.TimeEntry, len(days))
		for day, dayEntries := range days {
			key := day.Format("2006-01-02")
			dates = append(dates, key)
			byDate[key] = dayEntries
		}
		sort.Strings(dates)

		var splits []models.DailyBucketSplit
		for _, key := range dates {
			dayEntries := byDate[key]
			split, ok := SplitDay(name, models.DateOnly(dayEntries[0].WorkDate), dayEntries)
			if !ok {
				continue
			}
			splits = append(splits, split)
		}

		if len(splits) == 0 {
			log.Debugf("no working days for %s, dropping from aggregation", name)
			continue
		}

		aggregates = append(aggregates, models.NewWeeklyAggregate(name, weekRate(splits), splits))
	}

	log.Infof("aggregated %d entries into %d employees", len(entries), len(aggregates))

	return aggregates
}

// weekRate mirrors the daily tie-break at week scope: the rate covering the
// most hours across the week is the one printed on the output row.
func weekRate(splits []models.DailyBucketSplit) float64 {
	hoursByRate := make(map[float64]float64)
	var order []float64

	for _, split := range splits {
		if _, found := hoursByRate[split.Rate]; !found {
			order = append(order, split.Rate)
		}
		hoursByRate[split.Rate] += split.TotalHours()
	}

	best := order[0]
	for _, rate := range order[1:] {
		if hoursByRate[rate] > hoursByRate[best] {
			best = rate
		}
	}

	return best
}
