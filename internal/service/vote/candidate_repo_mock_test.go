package vote

import (
	"context"
	"sync"

	"github.com/heartmarshall/election-backend/internal/domain"
)

var _ candidateRepo = &candidateRepoMock{}

type candidateRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Candidate, error)
	ListFunc func(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error)
	CountFunc func(ctx context.Context, f domain.CandidateFilter) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id int64
		}
		List []struct {
			Ctx context.Context
			F domain.CandidateFilter
		}
		Count []struct {
			Ctx context.Context
			F domain.CandidateFilter
		}
	}
	lockGetByID sync.RWMutex
	lockList sync.RWMutex
	lockCount sync.RWMutex
}

func (mock *candidateRepoMock) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	if mock.GetByIDFunc == nil {
		panic("candidateRepoMock.GetByIDFunc: method is nil but candidateRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *candidateRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *candidateRepoMock) List(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	if mock.ListFunc == nil {
		panic("candidateRepoMock.ListFunc: method is nil but candidateRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F domain.CandidateFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *candidateRepoMock) ListCalls() []struct {
	Ctx context.Context
	F domain.CandidateFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *candidateRepoMock) Count(ctx context.Context, f domain.CandidateFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("candidateRepoMock.CountFunc: method is nil but candidateRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F domain.CandidateFilter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *candidateRepoMock) CountCalls() []struct {
	Ctx context.Context
	F domain.CandidateFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
