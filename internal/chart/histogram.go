// Package chart derives the condition histogram and the bar chart built from
// it.
package chart

// Bin is one bar: a condition and how many patients have it.
type Bin struct {
	Condition string `json:"condition"`
	Count     int    `json:"count"`
}

// Histogram holds bins in first-occurrence order of their condition.
type Histogram struct {
	Bins []Bin `json:"bins"`
}

// Compute counts conditions exactly as given (case-sensitive). The result is
// rebuilt from scratch on every call.
func Compute(conditions []string) Histogram {
	pos := make(map[string]int, len(conditions))
	bins := make([]Bin, 0)
	for _, c := range conditions {
		i, ok := pos[c]
		if !ok {
			pos[c] = len(bins)
			bins = append(bins, Bin{Condition: c, Count: 1})
			continue
		}
		bins[i].Count++
	}
	return Histogram{Bins: bins}
}

// Empty reports whether there is nothing to chart.
func (h Histogram) Empty() bool { return len(h.Bins) == 0 }

// Total is the sum of all counts.
func (h Histogram) Total() int {
	n := 0
	for _, b := range h.Bins {
		n += b.Count
	}
	return n
}

// Labels returns the conditions in bar order.
func (h Histogram) Labels() []string {
	out := make([]string, len(h.Bins))
	for i, b := range h.Bins {
		out[i] = b.Condition
	}
	return out
}

// Counts returns the counts in bar order.
func (h Histogram) Counts() []int {
	out := make([]int, len(h.Bins))
	for i, b := range h.Bins {
		out[i] = b.Count
	}
	return out
}

// Count returns the count for condition, or zero.
func (h Histogram) Count(condition string) int {
	for _, b := range h.Bins {
		if b.Condition == condition {
			return b.Count
		}
	}
	return 0
}
