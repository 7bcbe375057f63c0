package seeder

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// Fixture is a demo data set for a fresh installation.
type Fixture struct {
	Contests []ContestFixture `yaml:"contests"`
	Reviews  []ReviewFixture  `yaml:"reviews"`
	Results  []ResultFixture  `yaml:"results"`
}

// ContestFixture describes one contest. Deadline is YYYY-MM-DD; an empty
// deadline is DeadlineDays from today.
type ContestFixture struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Category     string `yaml:"category"`
	Deadline     string `yaml:"deadline"`
	DeadlineDays int    `yaml:"deadline_days"`
	Price        int    `yaml:"price"`
	Popular      bool   `yaml:"popular"`
	Image        string `yaml:"image"`
}

// ReviewFixture describes one review. Approved reviews are published.
type ReviewFixture struct {
	Author   string `yaml:"author"`
	Role     string `yaml:"role"`
	Rating   int    `yaml:"rating"`
	Text     string `yaml:"text"`
	Approved bool   `yaml:"approved"`
}

// ResultFixture describes one published result. Contest names a contest
// title from the same fixture or already in the database.
type ResultFixture struct {
	FullName    string `yaml:"full_name"`
	Age         int    `yaml:"age"`
	Institution string `yaml:"institution"`
	WorkTitle   string `yaml:"work_title"`
	Contest     string `yaml:"contest"`
	Result      string `yaml:"result"`
	WorkFileURL string `yaml:"work_file_url"`
	Gallery     bool   `yaml:"gallery"`
}

// LoadFixture reads a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	if path == "" {
		return nil, fmt.Errorf("fixture path not configured")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	var f Fixture
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return &f, nil
}

func (c ContestFixture) toDomain(now time.Time) (domain.Contest, error) {
	category := domain.Category(strings.ToLower(strings.TrimSpace(c.Category)))
	if !category.IsValid() {
		return domain.Contest{}, fmt.Errorf("unknown category %q", c.Category)
	}

	deadline := now.AddDate(0, 0, c.DeadlineDays)
	if c.Deadline != "" {
		var err error
		deadline, err = time.Parse(time.DateOnly, c.Deadline)
		if err != nil {
			return domain.Contest{}, fmt.Errorf("deadline %q: %w", c.Deadline, err)
		}
	}

	price := c.Price
	if price == 0 {
		price = domain.DefaultContestPrice
	}

	return domain.Contest{
		Title:       c.Title,
		Description: c.Description,
		CategoryID:  category,
		Deadline:    deadline,
		Price:       price,
		Status:      domain.ContestStatusActive,
		IsPopular:   c.Popular,
		Image:       domain.NormalizeLink(&c.Image),
	}, nil
}

func (r ReviewFixture) toDomain() domain.Review {
	rv := domain.Review{
		AuthorName: r.Author,
		Rating:     r.Rating,
		Text:       r.Text,
	}
	if r.Role != "" {
		role := r.Role
		rv.AuthorRole = &role
	}
	return rv
}

func (r ResultFixture) toDomain(contestID *int64) (domain.Result, error) {
	placement, err := domain.ParsePlacement(r.Result)
	if err != nil {
		return domain.Result{}, err
	}

	res := domain.Result{
		FullName:       r.FullName,
		ContestID:      contestID,
		Result:         placement,
		GalleryConsent: r.Gallery,
	}
	if r.Age > 0 {
		age := r.Age
		res.Age = &age
	}
	res.Institution = optional(r.Institution)
	res.WorkTitle = optional(r.WorkTitle)
	res.ContestName = optional(r.Contest)
	res.WorkFileURL = optional(r.WorkFileURL)
	return res, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
