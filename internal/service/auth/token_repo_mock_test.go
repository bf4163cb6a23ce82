package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/election-backend/internal/domain"
)

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc func(ctx context.Context, voterID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHashFunc func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByIDFunc func(ctx context.Context, id uuid.UUID) error
	RevokeAllByVoterFunc func(ctx context.Context, voterID uuid.UUID) error
	DeleteExpiredFunc func(ctx context.Context) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			VoterID uuid.UUID
			TokenHash string
			ExpiresAt time.Time
		}
		GetByHash []struct {
			Ctx context.Context
			TokenHash string
		}
		RevokeByID []struct {
			Ctx context.Context
			Id uuid.UUID
		}
		RevokeAllByVoter []struct {
			Ctx context.Context
			VoterID uuid.UUID
		}
		DeleteExpired []struct {
			Ctx context.Context
		}
	}
	lockCreate sync.RWMutex
	lockGetByHash sync.RWMutex
	lockRevokeByID sync.RWMutex
	lockRevokeAllByVoter sync.RWMutex
	lockDeleteExpired sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, voterID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		VoterID uuid.UUID
		TokenHash string
		ExpiresAt time.Time
	}{Ctx: ctx, VoterID: voterID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, voterID, tokenHash, expiresAt)
}

func (mock *tokenRepoMock) CreateCalls() []struct {
	Ctx context.Context
	VoterID uuid.UUID
	TokenHash string
	ExpiresAt time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) GetByHashCalls() []struct {
	Ctx context.Context
	TokenHash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeByID(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeByIDFunc == nil {
		panic("tokenRepoMock.RevokeByIDFunc: method is nil but tokenRepo.RevokeByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockRevokeByID.Lock()
	mock.calls.RevokeByID = append(mock.calls.RevokeByID, callInfo)
	mock.lockRevokeByID.Unlock()
	return mock.RevokeByIDFunc(ctx, id)
}

func (mock *tokenRepoMock) RevokeByIDCalls() []struct {
	Ctx context.Context
	Id uuid.UUID
} {
	mock.lockRevokeByID.RLock()
	calls := mock.calls.RevokeByID
	mock.lockRevokeByID.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeAllByVoter(ctx context.Context, voterID uuid.UUID) error {
	if mock.RevokeAllByVoterFunc == nil {
		panic("tokenRepoMock.RevokeAllByVoterFunc: method is nil but tokenRepo.RevokeAllByVoter was just called")
	}
	callInfo := struct {
		Ctx context.Context
		VoterID uuid.UUID
	}{Ctx: ctx, VoterID: voterID}
	mock.lockRevokeAllByVoter.Lock()
	mock.calls.RevokeAllByVoter = append(mock.calls.RevokeAllByVoter, callInfo)
	mock.lockRevokeAllByVoter.Unlock()
	return mock.RevokeAllByVoterFunc(ctx, voterID)
}

func (mock *tokenRepoMock) RevokeAllByVoterCalls() []struct {
	Ctx context.Context
	VoterID uuid.UUID
} {
	mock.lockRevokeAllByVoter.RLock()
	calls := mock.calls.RevokeAllByVoter
	mock.lockRevokeAllByVoter.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

func (mock *tokenRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
