package contest

import (
	"strings"
	"time"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// ContestInput holds the editable fields of a contest.
type ContestInput struct {
	Title        string
	Description  string
	CategoryID   domain.Category
	Deadline     time.Time
	Price        *int
	Status       domain.ContestStatus
	RulesLink    *string
	DiplomaImage *string
	Image        *string
	IsPopular    bool
}

// Validate validates the contest input.
func (i ContestInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 300 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if !i.CategoryID.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "unknown category"})
	}
	if i.Deadline.IsZero() {
		errs = append(errs, domain.FieldError{Field: "deadline", Message: "required"})
	}
	if i.Price != nil && *i.Price < 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ContestInput) toDomain() domain.Contest {
	c := domain.Contest{
		Title:        strings.TrimSpace(i.Title),
		Description:  strings.TrimSpace(i.Description),
		CategoryID:   i.CategoryID,
		Deadline:     i.Deadline,
		Price:        domain.DefaultContestPrice,
		Status:       i.Status,
		RulesLink:    domain.NormalizeLink(i.RulesLink),
		DiplomaImage: domain.NormalizeLink(i.DiplomaImage),
		Image:        domain.NormalizeLink(i.Image),
		IsPopular:    i.IsPopular,
	}
	if i.Price != nil {
		c.Price = *i.Price
	}
	if c.Status == "" {
		c.Status = domain.ContestStatusActive
	}
	return c
}
