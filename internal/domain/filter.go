package domain

import (
	"strings"
	"time"
)

// ResultFilter narrows an already-fetched list of results.
// Zero-valued fields do not filter. All set criteria are ANDed.
type ResultFilter struct {
	// ContestName is a case-insensitive substring of contest_name.
	ContestName string
	// FullName is a case-insensitive substring of full_name.
	FullName string
	// Result matches the placement exactly. nil means "all".
	Result *Placement
	// Day matches created_at on the same calendar date in Location.
	Day *time.Time
	// Location defaults to time.Local.
	Location *time.Location
}

// ResultPredicate reports whether a result passes one criterion.
type ResultPredicate func(Result) bool

// Predicates returns one predicate per active criterion.
func (f ResultFilter) Predicates() []ResultPredicate {
	var preds []ResultPredicate

	if needle := strings.ToLower(strings.TrimSpace(f.ContestName)); needle != "" {
		preds = append(preds, func(r Result) bool {
			return r.ContestName != nil && strings.Contains(strings.ToLower(*r.ContestName), needle)
		})
	}
	if needle := strings.ToLower(strings.TrimSpace(f.FullName)); needle != "" {
		preds = append(preds, func(r Result) bool {
			return strings.Contains(strings.ToLower(r.FullName), needle)
		})
	}
	if f.Result != nil {
		want := *f.Result
		preds = append(preds, func(r Result) bool {
			return r.Result != nil && *r.Result == want
		})
	}
	if f.Day != nil {
		loc := f.Location
		if loc == nil {
			loc = time.Local
		}
		wy, wm, wd := f.Day.In(loc).Date()
		preds = append(preds, func(r Result) bool {
			y, m, d := r.CreatedAt.In(loc).Date()
			return y == wy && m == wm && d == wd
		})
	}

	return preds
}

// Match reports whether r passes every active criterion.
func (f ResultFilter) Match(r Result) bool {
	for _, p := range f.Predicates() {
		if !p(r) {
			return false
		}
	}
	return true
}

// Apply returns the results passing the filter, preserving order.
// The source slice is not modified.
func (f ResultFilter) Apply(results []Result) []Result {
	return ApplyPredicates(results, f.Predicates()...)
}

// ApplyPredicates keeps results passing every predicate, preserving order.
func ApplyPredicates(results []Result, preds ...ResultPredicate) []Result {
	out := make([]Result, 0, len(results))
outer:
	for _, r := range results {
		for _, p := range preds {
			if !p(r) {
				continue outer
			}
		}
		out = append(out, r)
	}
	return out
}

// ParseDay parses a YYYY-MM-DD calendar date in loc.
func ParseDay(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return nil, NewValidationError("date", "expected YYYY-MM-DD")
	}
	return &d, nil
}

// ParsePlacementFilter parses a placement filter where "all" and "" mean no filter.
func ParsePlacementFilter(s string) (*Placement, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return nil, nil
	}
	return ParsePlacement(s)
}
