package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/pkg/api"
)

func idQuery(id int64) url.Values {
	return url.Values{"id": {strconv.FormatInt(id, 10)}}
}

// ---------------------------------------------------------------------------
// Contests
// ---------------------------------------------------------------------------

// Contests is the /contests resource.
type Contests struct{ c *Client }

// ContestFilter narrows a contest listing. A nil Category lists all.
type ContestFilter struct {
	Category *domain.Category
}

// List returns contests ordered by deadline.
func (r *Contests) List(ctx context.Context, f ContestFilter) ([]domain.Contest, error) {
	q := url.Values{}
	if f.Category != nil {
		q.Set("category_id", string(*f.Category))
	}
	var out []domain.Contest
	if err := r.c.do(ctx, http.MethodGet, "/contests", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a contest.
func (r *Contests) Create(ctx context.Context, req api.ContestRequest) (domain.Contest, error) {
	var out domain.Contest
	err := r.c.do(ctx, http.MethodPost, "/contests", nil, req, &out)
	return out, err
}

// Update overwrites the contest identified by req.ID.
func (r *Contests) Update(ctx context.Context, req api.ContestRequest) error {
	return r.c.do(ctx, http.MethodPut, "/contests", nil, req, nil)
}

// Delete removes a contest.
func (r *Contests) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, "/contests", idQuery(id), nil, nil)
}

// ---------------------------------------------------------------------------
// Applications
// ---------------------------------------------------------------------------

// Applications is the /applications resource.
type Applications struct{ c *Client }

// ApplicationFilter selects the active list or the trash.
type ApplicationFilter struct {
	Trashed bool
}

// DeleteOptions switches Delete into a restore.
type DeleteOptions struct {
	Restore bool
}

// List returns active or trashed applications.
func (r *Applications) List(ctx context.Context, f ApplicationFilter) ([]domain.Application, error) {
	q := url.Values{}
	if f.Trashed {
		q.Set("deleted", "true")
	}
	var out []domain.Application
	if err := r.c.do(ctx, http.MethodGet, "/applications", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits an application.
func (r *Applications) Create(ctx context.Context, req api.ApplicationRequest) (domain.Application, error) {
	var out domain.Application
	err := r.c.do(ctx, http.MethodPost, "/applications", nil, req, &out)
	return out, err
}

// Update edits the admin-editable fields of an application.
func (r *Applications) Update(ctx context.Context, req api.ApplicationUpdateRequest) error {
	return r.c.do(ctx, http.MethodPut, "/applications", nil, req, nil)
}

// Delete moves an application to the trash, or back out of it when
// opts.Restore is set.
func (r *Applications) Delete(ctx context.Context, id int64, opts DeleteOptions) error {
	q := idQuery(id)
	if opts.Restore {
		q.Set("restore", "true")
	}
	return r.c.do(ctx, http.MethodDelete, "/applications", q, nil, nil)
}

// ---------------------------------------------------------------------------
// Results
// ---------------------------------------------------------------------------

// Results is the /results resource.
type Results struct{ c *Client }

// ResultQuery is the server-side result filter.
type ResultQuery struct {
	ContestID   *int64
	ContestName string
	Result      *domain.Placement
	Place       *int
}

func (q ResultQuery) values() url.Values {
	v := url.Values{}
	if q.ContestID != nil {
		v.Set("contest_id", strconv.FormatInt(*q.ContestID, 10))
	}
	if q.ContestName != "" {
		v.Set("contest_name", q.ContestName)
	}
	if q.Result != nil {
		v.Set("result", string(*q.Result))
	}
	if q.Place != nil {
		v.Set("place", strconv.Itoa(*q.Place))
	}
	return v
}

// List returns results matching q.
func (r *Results) List(ctx context.Context, q ResultQuery) ([]domain.Result, error) {
	var out []domain.Result
	if err := r.c.do(ctx, http.MethodGet, "/results", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single result.
func (r *Results) Get(ctx context.Context, id int64) (domain.Result, error) {
	var out domain.Result
	err := r.c.do(ctx, http.MethodGet, "/results", idQuery(id), nil, &out)
	return out, err
}

// Create adds a result. A second result for the same application fails
// with a 409 APIError; see IsConflict.
func (r *Results) Create(ctx context.Context, req api.ResultRequest) (domain.Result, error) {
	var out domain.Result
	err := r.c.do(ctx, http.MethodPost, "/results", nil, req, &out)
	return out, err
}

// Update overwrites the result identified by req.ID.
func (r *Results) Update(ctx context.Context, req api.ResultRequest) error {
	return r.c.do(ctx, http.MethodPut, "/results", nil, req, nil)
}

// Delete removes a result.
func (r *Results) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, "/results", idQuery(id), nil, nil)
}

// PublicResults returns the published results.
func (c *Client) PublicResults(ctx context.Context) ([]domain.PublicResult, error) {
	var out []domain.PublicResult
	if err := c.do(ctx, http.MethodGet, "/public-results", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Gallery returns works whose authors agreed to publication.
func (c *Client) Gallery(ctx context.Context) ([]domain.GalleryWork, error) {
	var out []domain.GalleryWork
	if err := c.do(ctx, http.MethodGet, "/gallery-works", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Reviews
// ---------------------------------------------------------------------------

// Reviews is the /reviews resource.
type Reviews struct{ c *Client }

// ReviewFilter selects reviews by status. The zero value lists approved
// reviews; All lists every status and needs an admin token.
type ReviewFilter struct {
	Status *domain.ReviewStatus
	All    bool
}

// List returns reviews matching f.
func (r *Reviews) List(ctx context.Context, f ReviewFilter) ([]domain.Review, error) {
	q := url.Values{}
	switch {
	case f.All:
		q.Set("status", "all")
	case f.Status != nil:
		q.Set("status", string(*f.Status))
	}
	var out []domain.Review
	if err := r.c.do(ctx, http.MethodGet, "/reviews", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits a review. The server always stores it as pending.
func (r *Reviews) Create(ctx context.Context, req api.ReviewRequest) (domain.Review, error) {
	var out domain.Review
	err := r.c.do(ctx, http.MethodPost, "/reviews", nil, req, &out)
	return out, err
}

// Update moves a review to another status.
func (r *Reviews) Update(ctx context.Context, id int64, status domain.ReviewStatus) error {
	return r.c.do(ctx, http.MethodPut, "/reviews", nil, api.ReviewStatusRequest{ID: id, Status: string(status)}, nil)
}

// Delete removes a review.
func (r *Reviews) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, "/reviews", idQuery(id), nil, nil)
}
