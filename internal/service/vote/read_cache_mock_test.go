package vote

import (
	"context"
	"sync"

	"github.com/heartmarshall/election-backend/internal/adapter/cache"
)

var _ readCache = &readCacheMock{}

type readCacheMock struct {
	GetOrComputeFunc func(ctx context.Context, key cache.Key, compute func(ctx context.Context) ([]byte, error)) ([]byte, error)
	InvalidateFunc func(ctx context.Context, scopePrefix string) error

	calls struct {
		GetOrCompute []struct {
			Ctx context.Context
			Key cache.Key
			Compute func(ctx context.Context) ([]byte, error)
		}
		Invalidate []struct {
			Ctx context.Context
			ScopePrefix string
		}
	}
	lockGetOrCompute sync.RWMutex
	lockInvalidate sync.RWMutex
}

func (mock *readCacheMock) GetOrCompute(ctx context.Context, key cache.Key, compute func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if mock.GetOrComputeFunc == nil {
		panic("readCacheMock.GetOrComputeFunc: method is nil but readCache.GetOrCompute was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key cache.Key
		Compute func(ctx context.Context) ([]byte, error)
	}{Ctx: ctx, Key: key, Compute: compute}
	mock.lockGetOrCompute.Lock()
	mock.calls.GetOrCompute = append(mock.calls.GetOrCompute, callInfo)
	mock.lockGetOrCompute.Unlock()
	return mock.GetOrComputeFunc(ctx, key, compute)
}

func (mock *readCacheMock) GetOrComputeCalls() []struct {
	Ctx context.Context
	Key cache.Key
	Compute func(ctx context.Context) ([]byte, error)
} {
	mock.lockGetOrCompute.RLock()
	calls := mock.calls.GetOrCompute
	mock.lockGetOrCompute.RUnlock()
	return calls
}

func (mock *readCacheMock) Invalidate(ctx context.Context, scopePrefix string) error {
	if mock.InvalidateFunc == nil {
		panic("readCacheMock.InvalidateFunc: method is nil but readCache.Invalidate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ScopePrefix string
	}{Ctx: ctx, ScopePrefix: scopePrefix}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx, scopePrefix)
}

func (mock *readCacheMock) InvalidateCalls() []struct {
	Ctx context.Context
	ScopePrefix string
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
