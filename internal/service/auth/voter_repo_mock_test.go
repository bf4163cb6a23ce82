package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/election-backend/internal/domain"
)

var _ voterRepo = &voterRepoMock{}

type voterRepoMock struct {
	CreateFunc func(ctx context.Context, v *domain.Voter) (*domain.Voter, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Voter, error)
	GetByNationalIDFunc func(ctx context.Context, nationalID string) (*domain.Voter, error)
	SetRoleFunc func(ctx context.Context, nationalID string, role domain.VoterRole) (*domain.Voter, error)
	SetCredentialFunc func(ctx context.Context, voterID uuid.UUID, passwordHash string) error
	GetCredentialFunc func(ctx context.Context, voterID uuid.UUID) (*domain.VoterCredential, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			V *domain.Voter
		}
		GetByID []struct {
			Ctx context.Context
			Id uuid.UUID
		}
		GetByNationalID []struct {
			Ctx context.Context
			NationalID string
		}
		SetRole []struct {
			Ctx context.Context
			NationalID string
			Role domain.VoterRole
		}
		SetCredential []struct {
			Ctx context.Context
			VoterID uuid.UUID
			PasswordHash string
		}
		GetCredential []struct {
			Ctx context.Context
			VoterID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockGetByID sync.RWMutex
	lockGetByNationalID sync.RWMutex
	lockSetRole sync.RWMutex
	lockSetCredential sync.RWMutex
	lockGetCredential sync.RWMutex
}

func (mock *voterRepoMock) Create(ctx context.Context, v *domain.Voter) (*domain.Voter, error) {
	if mock.CreateFunc == nil {
		panic("voterRepoMock.CreateFunc: method is nil but voterRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V *domain.Voter
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *voterRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V *domain.Voter
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *voterRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Voter, error) {
	if mock.GetByIDFunc == nil {
		panic("voterRepoMock.GetByIDFunc: method is nil but voterRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *voterRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *voterRepoMock) GetByNationalID(ctx context.Context, nationalID string) (*domain.Voter, error) {
	if mock.GetByNationalIDFunc == nil {
		panic("voterRepoMock.GetByNationalIDFunc: method is nil but voterRepo.GetByNationalID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		NationalID string
	}{Ctx: ctx, NationalID: nationalID}
	mock.lockGetByNationalID.Lock()
	mock.calls.GetByNationalID = append(mock.calls.GetByNationalID, callInfo)
	mock.lockGetByNationalID.Unlock()
	return mock.GetByNationalIDFunc(ctx, nationalID)
}

func (mock *voterRepoMock) GetByNationalIDCalls() []struct {
	Ctx context.Context
	NationalID string
} {
	mock.lockGetByNationalID.RLock()
	calls := mock.calls.GetByNationalID
	mock.lockGetByNationalID.RUnlock()
	return calls
}

func (mock *voterRepoMock) SetRole(ctx context.Context, nationalID string, role domain.VoterRole) (*domain.Voter, error) {
	if mock.SetRoleFunc == nil {
		panic("voterRepoMock.SetRoleFunc: method is nil but voterRepo.SetRole was just called")
	}
	callInfo := struct {
		Ctx context.Context
		NationalID string
		Role domain.VoterRole
	}{Ctx: ctx, NationalID: nationalID, Role: role}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, nationalID, role)
}

func (mock *voterRepoMock) SetRoleCalls() []struct {
	Ctx context.Context
	NationalID string
	Role domain.VoterRole
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}

func (mock *voterRepoMock) SetCredential(ctx context.Context, voterID uuid.UUID, passwordHash string) error {
	if mock.SetCredentialFunc == nil {
		panic("voterRepoMock.SetCredentialFunc: method is nil but voterRepo.SetCredential was just called")
	}
	callInfo := struct {
		Ctx context.Context
		VoterID uuid.UUID
		PasswordHash string
	}{Ctx: ctx, VoterID: voterID, PasswordHash: passwordHash}
	mock.lockSetCredential.Lock()
	mock.calls.SetCredential = append(mock.calls.SetCredential, callInfo)
	mock.lockSetCredential.Unlock()
	return mock.SetCredentialFunc(ctx, voterID, passwordHash)
}

func (mock *voterRepoMock) SetCredentialCalls() []struct {
	Ctx context.Context
	VoterID uuid.UUID
	PasswordHash string
} {
	mock.lockSetCredential.RLock()
	calls := mock.calls.SetCredential
	mock.lockSetCredential.RUnlock()
	return calls
}

func (mock *voterRepoMock) GetCredential(ctx context.Context, voterID uuid.UUID) (*domain.VoterCredential, error) {
	if mock.GetCredentialFunc == nil {
		panic("voterRepoMock.GetCredentialFunc: method is nil but voterRepo.GetCredential was just called")
	}
	callInfo := struct {
		Ctx context.Context
		VoterID uuid.UUID
	}{Ctx: ctx, VoterID: voterID}
	mock.lockGetCredential.Lock()
	mock.calls.GetCredential = append(mock.calls.GetCredential, callInfo)
	mock.lockGetCredential.Unlock()
	return mock.GetCredentialFunc(ctx, voterID)
}

func (mock *voterRepoMock) GetCredentialCalls() []struct {
	Ctx context.Context
	VoterID uuid.UUID
} {
	mock.lockGetCredential.RLock()
	calls := mock.calls.GetCredential
	mock.lockGetCredential.RUnlock()
	return calls
}
