package vote

import (
	"context"
	"sync"

	"github.com/heartmarshall/election-backend/internal/domain"
)

var _ tallyRepo = &tallyRepoMock{}

type tallyRepoMock struct {
	IncrementFunc func(ctx context.Context, election domain.ElectionType, party string, partyImageRef string) (*domain.PartyTally, error)
	GetTalliesFunc func(ctx context.Context, election domain.ElectionType) ([]domain.PartyTally, error)
	GetTallyFunc func(ctx context.Context, election domain.ElectionType, party string) (*domain.PartyTally, error)
	RecountFunc func(ctx context.Context, election domain.ElectionType) ([]domain.PartyCount, error)
	SetCountFunc func(ctx context.Context, election domain.ElectionType, party string, count int64, partyImageRef string) error
	LockElectionSharedFunc func(ctx context.Context, election domain.ElectionType) error
	LockElectionExclusiveFunc func(ctx context.Context, election domain.ElectionType) error

	calls struct {
		Increment []struct {
			Ctx context.Context
			Election domain.ElectionType
			Party string
			PartyImageRef string
		}
		GetTallies []struct {
			Ctx context.Context
			Election domain.ElectionType
		}
		GetTally []struct {
			Ctx context.Context
			Election domain.ElectionType
			Party string
		}
		Recount []struct {
			Ctx context.Context
			Election domain.ElectionType
		}
		SetCount []struct {
			Ctx context.Context
			Election domain.ElectionType
			Party string
			Count int64
			PartyImageRef string
		}
		LockElectionShared []struct {
			Ctx context.Context
			Election domain.ElectionType
		}
		LockElectionExclusive []struct {
			Ctx context.Context
			Election domain.ElectionType
		}
	}
	lockIncrement sync.RWMutex
	lockGetTallies sync.RWMutex
	lockGetTally sync.RWMutex
	lockRecount sync.RWMutex
	lockSetCount sync.RWMutex
	lockLockElectionShared sync.RWMutex
	lockLockElectionExclusive sync.RWMutex
}

func (mock *tallyRepoMock) Increment(ctx context.Context, election domain.ElectionType, party string, partyImageRef string) (*domain.PartyTally, error) {
	if mock.IncrementFunc == nil {
		panic("tallyRepoMock.IncrementFunc: method is nil but tallyRepo.Increment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Election domain.ElectionType
		Party string
		PartyImageRef string
	}{Ctx: ctx, Election: election, Party: party, PartyImageRef: partyImageRef}
	mock.lockIncrement.Lock()
	mock.calls.Increment = append(mock.calls.Increment, callInfo)
	mock.lockIncrement.Unlock()
	return mock.IncrementFunc(ctx, election, party, partyImageRef)
}

func (mock *tallyRepoMock) IncrementCalls() []struct {
	Ctx context.Context
	Election domain.ElectionType
	Party string
	PartyImageRef string
} {
	mock.lockIncrement.RLock()
	calls := mock.calls.Increment
	mock.lockIncrement.RUnlock()
	return calls
}

func (mock *tallyRepoMock) GetTallies(ctx context.Context, election domain.ElectionType) ([]domain.PartyTally, error) {
	if mock.GetTalliesFunc == nil {
		panic("tallyRepoMock.GetTalliesFunc: method is nil but tallyRepo.GetTallies was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Election domain.ElectionType
	}{Ctx: ctx, Election: election}
	mock.lockGetTallies.Lock()
	mock.calls.GetTallies = append(mock.calls.GetTallies, callInfo)
	mock.lockGetTallies.Unlock()
	return mock.GetTalliesFunc(ctx, election)
}

func (mock *tallyRepoMock) GetTalliesCalls() []struct {
	Ctx context.Context
	Election domain.ElectionType
} {
	mock.lockGetTallies.RLock()
	calls := mock.calls.GetTallies
	mock.lockGetTallies.RUnlock()
	return calls
}

func (mock *tallyRepoMock) GetTally(ctx context.Context, election domain.ElectionType, party string) (*domain.PartyTally, error) {
	if mock.GetTallyFunc == nil {
		panic("tallyRepoMock.GetTallyFunc: method is nil but tallyRepo.GetTally was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Election domain.ElectionType
		Party string
	}{Ctx: ctx, Election: election, Party: party}
	mock.lockGetTally.Lock()
	mock.calls.GetTally = append(mock.calls.GetTally, callInfo)
	mock.lockGetTally.Unlock()
	return mock.GetTallyFunc(ctx, election, party)
}

func (mock *tallyRepoMock) GetTallyCalls() []struct {
	Ctx context.Context
	Election domain.ElectionType
	Party string
} {
	mock.lockGetTally.RLock()
	calls := mock.calls.GetTally
	mock.lockGetTally.RUnlock()
	return calls
}

func (mock *tallyRepoMock) Recount(ctx context.Context, election domain.ElectionType) ([]domain.PartyCount, error) {
	if mock.RecountFunc == nil {
		panic("tallyRepoMock.RecountFunc: method is nil but tallyRepo.Recount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Election domain.ElectionType
	}{Ctx: ctx, Election: election}
	mock.lockRecount.Lock()
	mock.calls.Recount = append(mock.calls.Recount, callInfo)
	mock.lockRecount.Unlock()
	return mock.RecountFunc(ctx, election)
}

func (mock *tallyRepoMock) RecountCalls() []struct {
	Ctx context.Context
	Election domain.ElectionType
} {
	mock.lockRecount.RLock()
	calls := mock.calls.Recount
	mock.lockRecount.RUnlock()
	return calls
}

func (mock *tallyRepoMock) SetCount(ctx context.Context, election domain.ElectionType, party string, count int64, partyImageRef string) error {
	if mock.SetCountFunc == nil {
		panic("tallyRepoMock.SetCountFunc: method is nil but tallyRepo.SetCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Election domain.ElectionType
		Party string
		Count int64
		PartyImageRef string
	}{Ctx: ctx, Election: election, Party: party, Count: count, PartyImageRef: partyImageRef}
	mock.lockSetCount.Lock()
	mock.calls.SetCount = append(mock.calls.SetCount, callInfo)
	mock.lockSetCount.Unlock()
	return mock.SetCountFunc(ctx, election, party, count, partyImageRef)
}

func (mock *tallyRepoMock) SetCountCalls() []struct {
	Ctx context.Context
	Election domain.ElectionType
	Party string
	Count int64
	PartyImageRef string
} {
	mock.lockSetCount.RLock()
	calls := mock.calls.SetCount
	mock.lockSetCount.RUnlock()
	return calls
}

func (mock *tallyRepoMock) LockElectionShared(ctx context.Context, election domain.ElectionType) error {
	if mock.LockElectionSharedFunc == nil {
		panic("tallyRepoMock.LockElectionSharedFunc: method is nil but tallyRepo.LockElectionShared was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Election domain.ElectionType
	}{Ctx: ctx, Election: election}
	mock.lockLockElectionShared.Lock()
	mock.calls.LockElectionShared = append(mock.calls.LockElectionShared, callInfo)
	mock.lockLockElectionShared.Unlock()
	return mock.LockElectionSharedFunc(ctx, election)
}

func (mock *tallyRepoMock) LockElectionSharedCalls() []struct {
	Ctx context.Context
	Election domain.ElectionType
} {
	mock.lockLockElectionShared.RLock()
	calls := mock.calls.LockElectionShared
	mock.lockLockElectionShared.RUnlock()
	return calls
}

func (mock *tallyRepoMock) LockElectionExclusive(ctx context.Context, election domain.ElectionType) error {
	if mock.LockElectionExclusiveFunc == nil {
		panic("tallyRepoMock.LockElectionExclusiveFunc: method is nil but tallyRepo.LockElectionExclusive was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Election domain.ElectionType
	}{Ctx: ctx, Election: election}
	mock.lockLockElectionExclusive.Lock()
	mock.calls.LockElectionExclusive = append(mock.calls.LockElectionExclusive, callInfo)
	mock.lockLockElectionExclusive.Unlock()
	return mock.LockElectionExclusiveFunc(ctx, election)
}

func (mock *tallyRepoMock) LockElectionExclusiveCalls() []struct {
	Ctx context.Context
	Election domain.ElectionType
} {
	mock.lockLockElectionExclusive.RLock()
	calls := mock.calls.LockElectionExclusive
	mock.lockLockElectionExclusive.RUnlock()
	return calls
}
