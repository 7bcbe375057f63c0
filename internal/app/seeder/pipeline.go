package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// allPhases defines the canonical execution order. Results resolve their
// contest by title, so contests go first.
var allPhases = []string{"contests", "reviews", "results"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline seeds a fixture phase by phase. Rows already present are
// skipped, so a rerun inserts nothing.
type Pipeline struct {
	log     *slog.Logger
	stores  Stores
	cfg     Config
	now     func() time.Time
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, stores Stores, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		stores:  stores,
		cfg:     cfg,
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline over fx. If phases is non-empty, only the
// listed phases run.
func (p *Pipeline) Run(ctx context.Context, fx *Fixture, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
			delete(filter, ph)
		}
		for unknown := range filter {
			return fmt.Errorf("unknown phase %q", unknown)
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "contests":
			result = p.runContests(ctx, fx.Contests)
		case "reviews":
			result = p.runReviews(ctx, fx.Reviews)
		case "results":
			result = p.runResults(ctx, fx.Results)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func (p *Pipeline) runContests(ctx context.Context, items []ContestFixture) PhaseResult {
	existing, err := p.stores.Contests.List(ctx, nil)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list contests: %w", err)}
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[key(c.Title)] = true
	}

	var result PhaseResult
	for _, item := range items {
		if seen[key(item.Title)] {
			result.Skipped++
			continue
		}
		c, err := item.toDomain(p.now())
		if err != nil {
			p.rowFailed(&result, "contest", item.Title, err)
			continue
		}
		seen[key(item.Title)] = true
		if p.cfg.DryRun {
			result.Skipped++
			continue
		}
		if _, err := p.stores.Contests.Create(ctx, c); err != nil {
			p.rowFailed(&result, "contest", item.Title, err)
			continue
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runReviews(ctx context.Context, items []ReviewFixture) PhaseResult {
	existing, err := p.stores.Reviews.List(ctx, nil)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list reviews: %w", err)}
	}
	seen := make(map[string]bool, len(existing))
	for _, rv := range existing {
		seen[key(rv.AuthorName, rv.Text)] = true
	}

	var result PhaseResult
	for _, item := range items {
		k := key(item.Author, item.Text)
		if seen[k] {
			result.Skipped++
			continue
		}
		if item.Rating < domain.MinRating || item.Rating > domain.MaxRating {
			p.rowFailed(&result, "review", item.Author, fmt.Errorf("rating %d out of range", item.Rating))
			continue
		}
		seen[k] = true
		if p.cfg.DryRun {
			result.Skipped++
			continue
		}

		created, err := p.stores.Reviews.Create(ctx, item.toDomain())
		if err != nil {
			p.rowFailed(&result, "review", item.Author, err)
			continue
		}
		if item.Approved {
			if _, err := p.stores.Reviews.UpdateStatus(ctx, created.ID, domain.ReviewStatusApproved); err != nil {
				p.rowFailed(&result, "review", item.Author, err)
				continue
			}
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runResults(ctx context.Context, items []ResultFixture) PhaseResult {
	contests, err := p.stores.Contests.List(ctx, nil)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list contests: %w", err)}
	}
	contestIDs := make(map[string]int64, len(contests))
	for _, c := range contests {
		contestIDs[key(c.Title)] = c.ID
	}

	existing, err := p.stores.Results.List(ctx, domain.ResultListParams{})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("list results: %w", err)}
	}
	seen := make(map[string]bool, len(existing))
	for _, r := range existing {
		seen[key(r.FullName, deref(r.WorkTitle), deref(r.ContestName))] = true
	}

	var result PhaseResult
	for _, item := range items {
		k := key(item.FullName, item.WorkTitle, item.Contest)
		if seen[k] {
			result.Skipped++
			continue
		}

		var contestID *int64
		if id, ok := contestIDs[key(item.Contest)]; ok {
			contestID = &id
		}
		res, err := item.toDomain(contestID)
		if err != nil {
			p.rowFailed(&result, "result", item.FullName, err)
			continue
		}
		seen[k] = true
		if p.cfg.DryRun {
			result.Skipped++
			continue
		}
		if _, err := p.stores.Results.Create(ctx, res); err != nil {
			p.rowFailed(&result, "result", item.FullName, err)
			continue
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) rowFailed(result *PhaseResult, kind, name string, err error) {
	result.Errors++
	p.log.Warn("fixture row rejected",
		slog.String("kind", kind),
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
}

// key builds a case-insensitive identity from parts.
func key(parts ...string) string {
	for i, s := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return strings.Join(parts, "\x00")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
