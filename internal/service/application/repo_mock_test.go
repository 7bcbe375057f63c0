package application

import (
	"context"
	"sync"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/upload"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	ListActiveFunc  func(ctx context.Context) ([]domain.Application, error)
	ListTrashedFunc func(ctx context.Context) ([]domain.Application, error)
	GetByIDFunc     func(ctx context.Context, id int64) (*domain.Application, error)
	CreateFunc      func(ctx context.Context, a domain.Application) (*domain.Application, error)
	UpdateFunc      func(ctx context.Context, a domain.Application) (*domain.Application, error)
	SoftDeleteFunc  func(ctx context.Context, id int64) error
	RestoreFunc     func(ctx context.Context, id int64) error

	calls struct {
		ListActive []struct {
			Ctx context.Context
		}
		ListTrashed []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx context.Context
			A   domain.Application
		}
		Update []struct {
			Ctx context.Context
			A   domain.Application
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  int64
		}
		Restore []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockListActive  sync.RWMutex
	lockListTrashed sync.RWMutex
	lockGetByID     sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockSoftDelete  sync.RWMutex
	lockRestore     sync.RWMutex
}

func (mock *applicationRepoMock) ListActive(ctx context.Context) ([]domain.Application, error) {
	if mock.ListActiveFunc == nil {
		panic("applicationRepoMock.ListActiveFunc: method is nil but applicationRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *applicationRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *applicationRepoMock) ListTrashed(ctx context.Context) ([]domain.Application, error) {
	if mock.ListTrashedFunc == nil {
		panic("applicationRepoMock.ListTrashedFunc: method is nil but applicationRepo.ListTrashed was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTrashed.Lock()
	mock.calls.ListTrashed = append(mock.calls.ListTrashed, callInfo)
	mock.lockListTrashed.Unlock()
	return mock.ListTrashedFunc(ctx)
}

func (mock *applicationRepoMock) ListTrashedCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTrashed.RLock()
	calls := mock.calls.ListTrashed
	mock.lockListTrashed.RUnlock()
	return calls
}

func (mock *applicationRepoMock) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	if mock.GetByIDFunc == nil {
		panic("applicationRepoMock.GetByIDFunc: method is nil but applicationRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *applicationRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Create(ctx context.Context, a domain.Application) (*domain.Application, error) {
	if mock.CreateFunc == nil {
		panic("applicationRepoMock.CreateFunc: method is nil but applicationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Application
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *applicationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.Application
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Update(ctx context.Context, a domain.Application) (*domain.Application, error) {
	if mock.UpdateFunc == nil {
		panic("applicationRepoMock.UpdateFunc: method is nil but applicationRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Application
	}{Ctx: ctx, A: a}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, a)
}

func (mock *applicationRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	A   domain.Application
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *applicationRepoMock) SoftDelete(ctx context.Context, id int64) error {
	if mock.SoftDeleteFunc == nil {
		panic("applicationRepoMock.SoftDeleteFunc: method is nil but applicationRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id)
}

func (mock *applicationRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *applicationRepoMock) Restore(ctx context.Context, id int64) error {
	if mock.RestoreFunc == nil {
		panic("applicationRepoMock.RestoreFunc: method is nil but applicationRepo.Restore was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, id)
}

func (mock *applicationRepoMock) RestoreCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

var _ contestRepo = &contestRepoMock{}

type contestRepoMock struct {
	GetByIDFunc               func(ctx context.Context, id int64) (*domain.Contest, error)
	IncrementParticipantsFunc func(ctx context.Context, id int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		IncrementParticipants []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID               sync.RWMutex
	lockIncrementParticipants sync.RWMutex
}

func (mock *contestRepoMock) GetByID(ctx context.Context, id int64) (*domain.Contest, error) {
	if mock.GetByIDFunc == nil {
		panic("contestRepoMock.GetByIDFunc: method is nil but contestRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *contestRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *contestRepoMock) IncrementParticipants(ctx context.Context, id int64) error {
	if mock.IncrementParticipantsFunc == nil {
		panic("contestRepoMock.IncrementParticipantsFunc: method is nil but contestRepo.IncrementParticipants was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockIncrementParticipants.Lock()
	mock.calls.IncrementParticipants = append(mock.calls.IncrementParticipants, callInfo)
	mock.lockIncrementParticipants.Unlock()
	return mock.IncrementParticipantsFunc(ctx, id)
}

func (mock *contestRepoMock) IncrementParticipantsCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockIncrementParticipants.RLock()
	calls := mock.calls.IncrementParticipants
	mock.lockIncrementParticipants.RUnlock()
	return calls
}

var _ uploader = &uploaderMock{}

type uploaderMock struct {
	UploadFunc func(ctx context.Context, input upload.Input) (*upload.Result, error)
	RemoveFunc func(ctx context.Context, key string) error

	calls struct {
		Upload []struct {
			Ctx   context.Context
			Input upload.Input
		}
		Remove []struct {
			Ctx context.Context
			Key string
		}
	}
	lockUpload sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *uploaderMock) Upload(ctx context.Context, input upload.Input) (*upload.Result, error) {
	if mock.UploadFunc == nil {
		panic("uploaderMock.UploadFunc: method is nil but uploader.Upload was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input upload.Input
	}{Ctx: ctx, Input: input}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, input)
}

func (mock *uploaderMock) UploadCalls() []struct {
	Ctx   context.Context
	Input upload.Input
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *uploaderMock) Remove(ctx context.Context, key string) error {
	if mock.RemoveFunc == nil {
		panic("uploaderMock.RemoveFunc: method is nil but uploader.Remove was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, key)
}

func (mock *uploaderMock) RemoveCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
