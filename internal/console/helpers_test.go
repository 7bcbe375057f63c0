package console

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/heartmarshall/artcontest/internal/client"
	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

// notes records notifications.
type notes struct {
	mu       sync.Mutex
	success  []string
	failures []string
}

func (n *notes) notifier() *NotifierMock {
	return &NotifierMock{
		SuccessFunc: func(msg string) {
			n.mu.Lock()
			n.success = append(n.success, msg)
			n.mu.Unlock()
		},
		ErrorFunc: func(msg string) {
			n.mu.Lock()
			n.failures = append(n.failures, msg)
			n.mu.Unlock()
		},
	}
}

func (n *notes) errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.failures...)
}

func always(answer bool) *ConfirmerMock {
	return &ConfirmerMock{
		ConfirmFunc: func(ctx context.Context, prompt string) (bool, error) { return answer, nil },
	}
}

// fakeResults enforces one result per application, like the server.
type fakeResults struct {
	mu      sync.Mutex
	nextID  int64
	results []domain.Result
}

func (f *fakeResults) api() *resultAPIMock {
	return &resultAPIMock{
		CreateFunc: func(ctx context.Context, req api.ResultRequest) (domain.Result, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			for _, r := range f.results {
				if req.ApplicationID != nil && r.ApplicationID != nil && *r.ApplicationID == *req.ApplicationID {
					return domain.Result{}, &client.APIError{
						StatusCode: http.StatusConflict,
						Message:    "duplicate, result already exists for this application",
					}
				}
			}
			f.nextID++
			res := domain.Result{ID: f.nextID, ApplicationID: req.ApplicationID, FullName: req.FullName}
			f.results = append(f.results, res)
			return res, nil
		},
		ListFunc: func(ctx context.Context, q client.ResultQuery) ([]domain.Result, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return append([]domain.Result(nil), f.results...), nil
		},
	}
}

func (f *fakeResults) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.results)
}

const (
	timeout = time.Second
	tick    = time.Millisecond
)
