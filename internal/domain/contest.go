package domain

import "time"

// Contest is a catalog entry users can submit works to.
type Contest struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	CategoryID   Category      `json:"category_id"`
	Deadline     time.Time     `json:"deadline"`
	Price        int           `json:"price"`
	Status       ContestStatus `json:"status"`
	RulesLink    *string       `json:"rules_file_url,omitempty"`
	DiplomaImage *string       `json:"diploma_sample_url,omitempty"`
	Image        *string       `json:"image_url,omitempty"`
	IsPopular    bool          `json:"is_popular"`
	Participants int           `json:"participants_count"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// DefaultContestPrice is applied when a contest is created without a price.
const DefaultContestPrice = 200

// IsOpen reports whether submissions are still accepted on the given day.
func (c Contest) IsOpen(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	dy, dm, dd := c.Deadline.Date()
	deadline := time.Date(dy, dm, dd, 0, 0, 0, 0, now.Location())
	return !deadline.Before(today)
}

// FilterByCategory returns contests of the given category.
// A nil category returns the input unchanged.
func FilterByCategory(contests []Contest, category *Category) []Contest {
	if category == nil {
		return contests
	}
	out := make([]Contest, 0, len(contests))
	for _, c := range contests {
		if c.CategoryID == *category {
			out = append(out, c)
		}
	}
	return out
}
