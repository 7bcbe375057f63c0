package domain

import "time"

// Result is the published outcome of a contest entry.
// ApplicationID is a lookup reference only; at most one Result may point at
// a given application.
type Result struct {
	ID             int64      `json:"id"`
	ApplicationID  *int64     `json:"application_id"`
	FullName       string     `json:"full_name"`
	Age            *int       `json:"age"`
	Teacher        *string    `json:"teacher"`
	Institution    *string    `json:"institution"`
	WorkTitle      *string    `json:"work_title"`
	Email          *string    `json:"email"`
	ContestID      *int64     `json:"contest_id"`
	ContestName    *string    `json:"contest_name"`
	WorkFileURL    *string    `json:"work_file_url"`
	Result         *Placement `json:"result"`
	Place          *int       `json:"place"`
	Score          *float64   `json:"score"`
	DiplomaURL     *string    `json:"diploma_url"`
	Notes          *string    `json:"notes"`
	GalleryConsent bool       `json:"gallery_consent"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ResultFromApplication assembles the Result payload created when an admin
// promotes an application. The application must carry a placement.
func ResultFromApplication(a Application) Result {
	r := Result{
		FullName:       a.FullName,
		Teacher:        a.Teacher,
		Institution:    a.Institution,
		ContestID:      a.ContestID,
		Result:         a.Result,
		GalleryConsent: a.GalleryConsent,
	}
	id := a.ID
	r.ApplicationID = &id
	age := a.Age
	r.Age = &age
	r.WorkTitle = ptrOrNil(a.WorkTitle)
	r.Email = ptrOrNil(a.Email)
	r.ContestName = ptrOrNil(a.ContestName)
	r.WorkFileURL = ptrOrNil(a.WorkFileURL)
	return r
}

// PublicResult is the projection of a Result exposed without authentication.
type PublicResult struct {
	ID          int64      `json:"id"`
	FullName    string     `json:"full_name"`
	Age         *int       `json:"age"`
	Institution *string    `json:"institution"`
	WorkTitle   *string    `json:"work_title"`
	ContestName *string    `json:"contest_name"`
	Result      *Placement `json:"result"`
	Place       *int       `json:"place"`
	WorkFileURL *string    `json:"work_file_url"`
	DiplomaURL  *string    `json:"diploma_url"`
	CreatedAt   time.Time  `json:"created_at"`
}

// GalleryWork is a published work shown in the public gallery.
type GalleryWork struct {
	ID          int64      `json:"id"`
	FullName    string     `json:"full_name"`
	Age         *int       `json:"age"`
	WorkTitle   *string    `json:"work_title"`
	ContestName *string    `json:"contest_name"`
	WorkFileURL string     `json:"work_file_url"`
	Result      *Placement `json:"result"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Public strips contact details from a Result.
func (r Result) Public() PublicResult {
	return PublicResult{
		ID:          r.ID,
		FullName:    r.FullName,
		Age:         r.Age,
		Institution: r.Institution,
		WorkTitle:   r.WorkTitle,
		ContestName: r.ContestName,
		Result:      r.Result,
		Place:       r.Place,
		WorkFileURL: r.WorkFileURL,
		DiplomaURL:  r.DiplomaURL,
		CreatedAt:   r.CreatedAt,
	}
}

// ResultListParams narrows a server-side result listing. Zero values mean no constraint.
type ResultListParams struct {
	ContestID   *int64
	ContestName string
	Result      *Placement
	Place       *int
	// ConsentOnly keeps results whose participants agreed to publication.
	ConsentOnly bool
	GalleryOnly bool
	Limit       uint64
}
