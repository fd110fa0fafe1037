package catalog

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll is the sentinel value meaning a filter is inactive.
const FilterAll = "all"

// Length buckets for the "length" filter, in characters of the primary text.
const (
	lengthShortMax  = 100
	lengthMediumMax = 200
)

// Weight buckets (kg, average of the metric range) for the breed "size" filter.
const (
	sizeSmallMax  = 4.0
	sizeMediumMax = 6.0
)

// ApplyFilters keeps items matching every active categorical filter.
// A value of "all" (or empty) deactivates that filter. Unknown keys never
// match, so a stale filter key hides nothing silently.
// Output is a subset of input preserving relative order.
func ApplyFilters(items []Item, filters map[string]string) []Item {
	active := make(map[string]string, len(filters))
	for key, val := range filters {
		if val == "" || strings.EqualFold(val, FilterAll) {
			continue
		}
		active[key] = val
	}
	if len(active) == 0 {
		return items
	}

	result := make([]Item, 0, len(items))
	for _, it := range items {
		keep := true
		for key, val := range active {
			if !matchesFilter(it, key, val) {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, it)
		}
	}
	return result
}

// matchesFilter evaluates one filter predicate against one item.
func matchesFilter(it Item, key, val string) bool {
	switch key {
	case "length":
		return matchesLength(it.Length, val)
	case "category":
		return strings.EqualFold(it.Category, val)
	case "origin":
		return strings.EqualFold(it.Field("origin"), val)
	case "temperament":
		// Temperament is a comma list like "Active, Energetic, Independent"
		for _, t := range strings.Split(it.Field("temperament"), ",") {
			if strings.EqualFold(strings.TrimSpace(t), val) {
				return true
			}
		}
		return false
	case "size":
		return matchesSize(it.Field("weight"), val)
	case "tag":
		for _, t := range strings.Split(it.Field("tags"), ",") {
			if strings.EqualFold(strings.TrimSpace(t), val) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func matchesLength(length int, bucket string) bool {
	switch strings.ToLower(bucket) {
	case "short":
		return length < lengthShortMax
	case "medium":
		return length >= lengthShortMax && length <= lengthMediumMax
	case "long":
		return length > lengthMediumMax
	default:
		return false
	}
}

// matchesSize buckets a breed by the average of its metric weight range
// (e.g. "3 - 7" kg).
func matchesSize(weight, bucket string) bool {
	avg, ok := averageWeight(weight)
	if !ok {
		return false
	}
	switch strings.ToLower(bucket) {
	case "small":
		return avg <= sizeSmallMax
	case "medium":
		return avg > sizeSmallMax && avg <= sizeMediumMax
	case "large":
		return avg > sizeMediumMax
	default:
		return false
	}
}

func averageWeight(metric string) (float64, bool) {
	parts := strings.Split(metric, "-")
	var sum float64
	var n int
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ApplySearch keeps items whose title, text or any of the extra fields
// contain the query, case-insensitive. A blank query returns the input
// unchanged. Output preserves relative order.
func ApplySearch(items []Item, query string, extraFields ...string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	result := make([]Item, 0, len(items))
	for _, it := range items {
		if matchesQuery(it, q, extraFields) {
			result = append(result, it)
		}
	}
	return result
}

func matchesQuery(it Item, q string, extraFields []string) bool {
	if strings.Contains(strings.ToLower(it.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Text), q) {
		return true
	}
	for _, key := range extraFields {
		if strings.Contains(strings.ToLower(it.Field(key)), q) {
			return true
		}
	}
	return false
}

// SortKey selects the comparator for SortItems.
type SortKey string

const (
	SortDate   SortKey = "date"   // Newest first
	SortLength SortKey = "length" // Shortest first
	SortAlpha  SortKey = "alpha"  // Locale-aware ascending on the primary text
)

// alphaCollator is shared; collators are not safe for concurrent use but the
// pipeline runs on the UI event loop only.
var alphaCollator = collate.New(language.English, collate.IgnoreCase)

// SortItems returns a new slice ordered by the given key. Ties keep the
// input order. The input is never mutated.
func SortItems(items []Item, key SortKey) []Item {
	result := make([]Item, len(items))
	copy(result, items)

	switch key {
	case SortLength:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Length < result[j].Length
		})
	case SortAlpha:
		sort.SliceStable(result, func(i, j int) bool {
			return alphaCollator.CompareString(sortText(result[i]), sortText(result[j])) < 0
		})
	case SortDate:
		fallthrough
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Date.After(result[j].Date)
		})
	}
	return result
}

// sortText is the alphabetical sort field: title when present, else text.
func sortText(it Item) string {
	if it.Title != "" {
		return it.Title
	}
	return it.Text
}
