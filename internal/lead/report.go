package lead

import "sort"

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AggregateByHour counts leads per hour of day, sorted by hour.
func AggregateByHour(leads []*Lead) []HourCount {
	counts := make(map[int]int)
	for _, l := range leads {
		counts[l.Hour]++
	}

	result := make([]HourCount, 0, len(counts))
	for hour, count := range counts {
		result = append(result, HourCount{Hour: hour, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Hour < result[j].Hour })
	return result
}

// AggregateByDay counts leads per calendar date, sorted by date.
func AggregateByDay(leads []*Lead) []DayCount {
	counts := make(map[string]int)
	for _, l := range leads {
		counts[l.Date]++
	}

	result := make([]DayCount, 0, len(counts))
	for date, count := range counts {
		result = append(result, DayCount{Date: date, Count: count})
	}
	// YYYY-MM-DD sorts lexically
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

// FilterByDate keeps the leads stamped on date. An empty date keeps everything.
func FilterByDate(leads []*Lead, date string) []*Lead {
	if date == "" {
		out := make([]*Lead, len(leads))
		copy(out, leads)
		return out
	}

	out := make([]*Lead, 0, len(leads))
	for _, l := range leads {
		if l.Date == date {
			out = append(out, l)
		}
	}
	return out
}
