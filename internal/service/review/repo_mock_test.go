package review

import (
	"context"
	"sync"

	"github.com/heartmarshall/artcontest/internal/domain"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	ListFunc         func(ctx context.Context, status *domain.ReviewStatus) ([]domain.Review, error)
	CreateFunc       func(ctx context.Context, r domain.Review) (*domain.Review, error)
	UpdateStatusFunc func(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error)
	DeleteFunc       func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx    context.Context
			Status *domain.ReviewStatus
		}
		Create []struct {
			Ctx context.Context
			R   domain.Review
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     int64
			Status domain.ReviewStatus
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList         sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *reviewRepoMock) List(ctx context.Context, status *domain.ReviewStatus) ([]domain.Review, error) {
	if mock.ListFunc == nil {
		panic("reviewRepoMock.ListFunc: method is nil but reviewRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status *domain.ReviewStatus
	}{Ctx: ctx, Status: status}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status)
}

func (mock *reviewRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Status *domain.ReviewStatus
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Create(ctx context.Context, r domain.Review) (*domain.Review, error) {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.Review
	}{Ctx: ctx, R: r}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *reviewRepoMock) CreateCalls() []struct {
	Ctx context.Context
	R   domain.Review
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error) {
	if mock.UpdateStatusFunc == nil {
		panic("reviewRepoMock.UpdateStatusFunc: method is nil but reviewRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Status domain.ReviewStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *reviewRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     int64
	Status domain.ReviewStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *reviewRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("reviewRepoMock.DeleteFunc: method is nil but reviewRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *reviewRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
