package upload

import (
	"context"
	"sync"
)

var _ fileStorage = &fileStorageMock{}

type fileStorageMock struct {
	PutFunc    func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			Data        []byte
			ContentType string
		}
		Delete []struct {
			Ctx context.Context
			Key string
		}
	}
	lockPut    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *fileStorageMock) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if mock.PutFunc == nil {
		panic("fileStorageMock.PutFunc: method is nil but fileStorage.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		Data        []byte
		ContentType string
	}{Ctx: ctx, Key: key, Data: data, ContentType: contentType}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, data, contentType)
}

func (mock *fileStorageMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	Data        []byte
	ContentType string
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *fileStorageMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("fileStorageMock.DeleteFunc: method is nil but fileStorage.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *fileStorageMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
