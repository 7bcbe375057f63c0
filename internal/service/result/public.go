package result

import (
	"context"
	"fmt"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// PublicResults lists results whose participants agreed to publication.
// Contact details are stripped.
func (s *Service) PublicResults(ctx context.Context) ([]domain.PublicResult, error) {
	results, err := s.results.List(ctx, domain.ResultListParams{ConsentOnly: true, Limit: DefaultPublicLimit})
	if err != nil {
		return nil, fmt.Errorf("list public results: %w", err)
	}

	out := make([]domain.PublicResult, 0, len(results))
	for _, r := range results {
		if !r.GalleryConsent {
			continue
		}
		out = append(out, r.Public())
	}
	return out, nil
}

// GalleryWorks lists consented results that have a work image.
func (s *Service) GalleryWorks(ctx context.Context) ([]domain.GalleryWork, error) {
	results, err := s.results.List(ctx, domain.ResultListParams{GalleryOnly: true, Limit: DefaultPublicLimit})
	if err != nil {
		return nil, fmt.Errorf("list gallery works: %w", err)
	}

	out := make([]domain.GalleryWork, 0, len(results))
	for _, r := range results {
		if r.WorkFileURL == nil || *r.WorkFileURL == "" {
			continue
		}
		out = append(out, domain.GalleryWork{
			ID:          r.ID,
			FullName:    r.FullName,
			Age:         r.Age,
			WorkTitle:   r.WorkTitle,
			ContestName: r.ContestName,
			WorkFileURL: *r.WorkFileURL,
			Result:      r.Result,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}
