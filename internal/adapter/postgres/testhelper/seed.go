package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedContest inserts an active drawing contest with a deadline a month ahead.
func SeedContest(t *testing.T, pool *pgxpool.Pool) domain.Contest {
	t.Helper()

	c := domain.Contest{
		Title:      "Contest " + uniqueSuffix(),
		CategoryID: domain.CategoryDrawing,
		Deadline:   time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour),
		Price:      domain.DefaultContestPrice,
		Status:     domain.ContestStatusActive,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO contests (title, category_id, deadline, price, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.Title, string(c.CategoryID), c.Deadline, c.Price, string(c.Status),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedContest: %v", err)
	}

	return c
}

// SeedApplication inserts an active application with status "new" for contest c.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, c domain.Contest) domain.Application {
	t.Helper()

	suffix := uniqueSuffix()
	a := domain.Application{
		FullName:      "Participant " + suffix,
		Age:           9,
		WorkTitle:     "Work " + suffix,
		Email:         "parent-" + suffix + "@example.com",
		ContestID:     &c.ID,
		ContestName:   c.Title,
		WorkFileURL:   "https://cdn.example.com/works/" + suffix + ".png",
		Status:        domain.ApplicationStatusNew,
		PaymentStatus: domain.PaymentStatusNone,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO applications (full_name, age, work_title, email, contest_id, contest_name, work_file_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		a.FullName, a.Age, a.WorkTitle, a.Email, a.ContestID, a.ContestName, a.WorkFileURL,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication: %v", err)
	}

	return a
}

// SeedReview inserts a review with the given status.
func SeedReview(t *testing.T, pool *pgxpool.Pool, status domain.ReviewStatus) domain.Review {
	t.Helper()

	r := domain.Review{
		AuthorName: "Parent " + uniqueSuffix(),
		Rating:     5,
		Text:       "Great contest",
		Status:     status,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO reviews (author_name, rating, text, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		r.AuthorName, r.Rating, r.Text, string(r.Status),
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedReview: %v", err)
	}

	return r
}
