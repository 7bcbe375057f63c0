package domain

import "strings"

// ContestStatus marks how a contest is advertised in the catalog.
type ContestStatus string

const (
	ContestStatusActive ContestStatus = "active"
	ContestStatusNew    ContestStatus = "new"
)

func (s ContestStatus) String() string { return string(s) }

func (s ContestStatus) IsValid() bool {
	switch s {
	case ContestStatusActive, ContestStatusNew:
		return true
	}
	return false
}

// Category is one of the fixed contest categories.
type Category string

const (
	CategoryDrawing    Category = "drawing"
	CategoryWatercolor Category = "watercolor"
	CategoryPainting   Category = "painting"
	CategoryGraphics   Category = "graphics"
	CategoryApplique   Category = "applique"
	CategoryCrafts     Category = "crafts"
	CategoryPhoto      Category = "photo"
)

// Categories lists every known category in catalog order.
var Categories = []Category{
	CategoryDrawing, CategoryWatercolor, CategoryPainting, CategoryGraphics,
	CategoryApplique, CategoryCrafts, CategoryPhoto,
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ApplicationStatus is the admin workflow status of an application.
// Transitions between values are not constrained.
type ApplicationStatus string

const (
	ApplicationStatusNew    ApplicationStatus = "new"
	ApplicationStatusViewed ApplicationStatus = "viewed"
	ApplicationStatusSent   ApplicationStatus = "sent"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusViewed, ApplicationStatusSent:
		return true
	}
	return false
}

// Placement is the contest outcome recorded on applications and results.
type Placement string

const (
	PlacementGrandPrix    Placement = "grand_prix"
	PlacementFirstDegree  Placement = "first_degree"
	PlacementSecondDegree Placement = "second_degree"
	PlacementThirdDegree  Placement = "third_degree"
	PlacementParticipant  Placement = "participant"
)

func (p Placement) String() string { return string(p) }

func (p Placement) IsValid() bool {
	switch p {
	case PlacementGrandPrix, PlacementFirstDegree, PlacementSecondDegree,
		PlacementThirdDegree, PlacementParticipant:
		return true
	}
	return false
}

// Label returns the human-readable Russian label shown on diplomas and lists.
func (p Placement) Label() string {
	switch p {
	case PlacementGrandPrix:
		return "Гран-при"
	case PlacementFirstDegree:
		return "Диплом I степени"
	case PlacementSecondDegree:
		return "Диплом II степени"
	case PlacementThirdDegree:
		return "Диплом III степени"
	case PlacementParticipant:
		return "Участник"
	}
	return string(p)
}

// legacyPlacements maps the labels used by the old result editor
// onto the canonical placement values.
var legacyPlacements = map[string]Placement{
	"гран-при":   PlacementGrandPrix,
	"победитель": PlacementFirstDegree,
	"призер":     PlacementSecondDegree,
	"призёр":     PlacementSecondDegree,
	"участник":   PlacementParticipant,
}

// ParsePlacement converts user input into a Placement.
// Empty input and "none" yield nil. Legacy editor labels are accepted.
func ParsePlacement(s string) (*Placement, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}
	p := Placement(strings.ToLower(s))
	if p.IsValid() {
		return &p, nil
	}
	if legacy, ok := legacyPlacements[strings.ToLower(s)]; ok {
		return &legacy, nil
	}
	return nil, NewValidationError("result", "unknown placement "+s)
}

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// PaymentStatus tracks the payment attached to an application.
type PaymentStatus string

const (
	PaymentStatusNone      PaymentStatus = "none"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusCanceled  PaymentStatus = "canceled"
)

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusNone, PaymentStatusPending, PaymentStatusSucceeded, PaymentStatusCanceled:
		return true
	}
	return false
}

// IsFinal reports whether the gateway will not change the status any more.
func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusSucceeded || s == PaymentStatusCanceled
}

// UserRole represents the authorization level of a caller.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin
}
