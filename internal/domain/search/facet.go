package search

import "sort"

// FacetCount pairs a facet value with its occurrence count.
type FacetCount struct {
	Name  string
	Count int
}

// FacetSet aggregates the three facet dimensions over a result set.
type FacetSet struct {
	Categories []FacetCount
	FileTypes  []FacetCount
	Projects   []FacetCount
}

// EmptyFacetSet returns a FacetSet with empty (non-nil) dimensions.
func EmptyFacetSet() FacetSet {
	return FacetSet{
		Categories: []FacetCount{},
		FileTypes:  []FacetCount{},
		Projects:   []FacetCount{},
	}
}

// CountsToFacets converts a counter map into a deterministically ordered
// facet list: descending count, then name ascending.
func CountsToFacets(counts map[string]int) []FacetCount {
	out := make([]FacetCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, FacetCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
