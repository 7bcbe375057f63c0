package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is user feedback shown publicly once approved.
type Review struct {
	ID          int64        `json:"id"`
	AuthorName  string       `json:"author_name"`
	AuthorRole  *string      `json:"author_role"`
	Rating      int          `json:"rating"`
	Text        string       `json:"text"`
	Status      ReviewStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	PublishedAt *time.Time   `json:"published_at"`
}

// IsPublic reports whether the review may be shown to visitors.
func (r Review) IsPublic() bool {
	return r.Status == ReviewStatusApproved
}
