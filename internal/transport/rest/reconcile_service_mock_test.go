package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/election-backend/internal/domain"
	"github.com/heartmarshall/election-backend/internal/service/vote"
)

var _ reconcileService = &reconcileServiceMock{}

type reconcileServiceMock struct {
	ReconcileFunc func(ctx context.Context, election domain.ElectionType) (*vote.ReconcileReport, error)
	ReconcileAllFunc func(ctx context.Context) ([]vote.ReconcileReport, error)

	calls struct {
		Reconcile []struct {
			Ctx context.Context
			Election domain.ElectionType
		}
		ReconcileAll []struct {
			Ctx context.Context
		}
	}
	lockReconcile sync.RWMutex
	lockReconcileAll sync.RWMutex
}

func (mock *reconcileServiceMock) Reconcile(ctx context.Context, election domain.ElectionType) (*vote.ReconcileReport, error) {
	if mock.ReconcileFunc == nil {
		panic("reconcileServiceMock.ReconcileFunc: method is nil but reconcileService.Reconcile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Election domain.ElectionType
	}{Ctx: ctx, Election: election}
	mock.lockReconcile.Lock()
	mock.calls.Reconcile = append(mock.calls.Reconcile, callInfo)
	mock.lockReconcile.Unlock()
	return mock.ReconcileFunc(ctx, election)
}

func (mock *reconcileServiceMock) ReconcileCalls() []struct {
	Ctx context.Context
	Election domain.ElectionType
} {
	mock.lockReconcile.RLock()
	calls := mock.calls.Reconcile
	mock.lockReconcile.RUnlock()
	return calls
}

func (mock *reconcileServiceMock) ReconcileAll(ctx context.Context) ([]vote.ReconcileReport, error) {
	if mock.ReconcileAllFunc == nil {
		panic("reconcileServiceMock.ReconcileAllFunc: method is nil but reconcileService.ReconcileAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockReconcileAll.Lock()
	mock.calls.ReconcileAll = append(mock.calls.ReconcileAll, callInfo)
	mock.lockReconcileAll.Unlock()
	return mock.ReconcileAllFunc(ctx)
}

func (mock *reconcileServiceMock) ReconcileAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockReconcileAll.RLock()
	calls := mock.calls.ReconcileAll
	mock.lockReconcileAll.RUnlock()
	return calls
}
