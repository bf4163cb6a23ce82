package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/election-backend/internal/service/vote"
)

var _ voteService = &voteServiceMock{}

type voteServiceMock struct {
	ListCandidatesFunc func(ctx context.Context, input vote.ListCandidatesInput) ([]byte, error)
	PartyTalliesFunc func(ctx context.Context, electionType string) ([]byte, error)
	CastVoteFunc func(ctx context.Context, input vote.CastVoteInput) (*vote.CastResult, error)
	VoterStatusFunc func(ctx context.Context) (*vote.VoterStatus, error)

	calls struct {
		ListCandidates []struct {
			Ctx context.Context
			Input vote.ListCandidatesInput
		}
		PartyTallies []struct {
			Ctx context.Context
			ElectionType string
		}
		CastVote []struct {
			Ctx context.Context
			Input vote.CastVoteInput
		}
		VoterStatus []struct {
			Ctx context.Context
		}
	}
	lockListCandidates sync.RWMutex
	lockPartyTallies sync.RWMutex
	lockCastVote sync.RWMutex
	lockVoterStatus sync.RWMutex
}

func (mock *voteServiceMock) ListCandidates(ctx context.Context, input vote.ListCandidatesInput) ([]byte, error) {
	if mock.ListCandidatesFunc == nil {
		panic("voteServiceMock.ListCandidatesFunc: method is nil but voteService.ListCandidates was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input vote.ListCandidatesInput
	}{Ctx: ctx, Input: input}
	mock.lockListCandidates.Lock()
	mock.calls.ListCandidates = append(mock.calls.ListCandidates, callInfo)
	mock.lockListCandidates.Unlock()
	return mock.ListCandidatesFunc(ctx, input)
}

func (mock *voteServiceMock) ListCandidatesCalls() []struct {
	Ctx context.Context
	Input vote.ListCandidatesInput
} {
	mock.lockListCandidates.RLock()
	calls := mock.calls.ListCandidates
	mock.lockListCandidates.RUnlock()
	return calls
}

func (mock *voteServiceMock) PartyTallies(ctx context.Context, electionType string) ([]byte, error) {
	if mock.PartyTalliesFunc == nil {
		panic("voteServiceMock.PartyTalliesFunc: method is nil but voteService.PartyTallies was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ElectionType string
	}{Ctx: ctx, ElectionType: electionType}
	mock.lockPartyTallies.Lock()
	mock.calls.PartyTallies = append(mock.calls.PartyTallies, callInfo)
	mock.lockPartyTallies.Unlock()
	return mock.PartyTalliesFunc(ctx, electionType)
}

func (mock *voteServiceMock) PartyTalliesCalls() []struct {
	Ctx context.Context
	ElectionType string
} {
	mock.lockPartyTallies.RLock()
	calls := mock.calls.PartyTallies
	mock.lockPartyTallies.RUnlock()
	return calls
}

func (mock *voteServiceMock) CastVote(ctx context.Context, input vote.CastVoteInput) (*vote.CastResult, error) {
	if mock.CastVoteFunc == nil {
		panic("voteServiceMock.CastVoteFunc: method is nil but voteService.CastVote was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Input vote.CastVoteInput
	}{Ctx: ctx, Input: input}
	mock.lockCastVote.Lock()
	mock.calls.CastVote = append(mock.calls.CastVote, callInfo)
	mock.lockCastVote.Unlock()
	return mock.CastVoteFunc(ctx, input)
}

func (mock *voteServiceMock) CastVoteCalls() []struct {
	Ctx context.Context
	Input vote.CastVoteInput
} {
	mock.lockCastVote.RLock()
	calls := mock.calls.CastVote
	mock.lockCastVote.RUnlock()
	return calls
}

func (mock *voteServiceMock) VoterStatus(ctx context.Context) (*vote.VoterStatus, error) {
	if mock.VoterStatusFunc == nil {
		panic("voteServiceMock.VoterStatusFunc: method is nil but voteService.VoterStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockVoterStatus.Lock()
	mock.calls.VoterStatus = append(mock.calls.VoterStatus, callInfo)
	mock.lockVoterStatus.Unlock()
	return mock.VoterStatusFunc(ctx)
}

func (mock *voteServiceMock) VoterStatusCalls() []struct {
	Ctx context.Context
} {
	mock.lockVoterStatus.RLock()
	calls := mock.calls.VoterStatus
	mock.lockVoterStatus.RUnlock()
	return calls
}
