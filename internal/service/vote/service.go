// Package vote implements vote casting, tally reads and tally reconciliation.
package vote

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/election-backend/internal/adapter/cache"
	"github.com/heartmarshall/election-backend/internal/config"
	"github.com/heartmarshall/election-backend/internal/domain"
)

// candidateRepo defines the candidate catalog interface needed by vote service.
type candidateRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Candidate, error)
	List(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error)
	Count(ctx context.Context, f domain.CandidateFilter) (int, error)
}

// ballotRepo defines the ballot store interface needed by vote service.
type ballotRepo interface {
	Cast(ctx context.Context, voterID uuid.UUID, candidateID int64) (*domain.Ballot, error)
	GetByVoter(ctx context.Context, voterID uuid.UUID, election domain.ElectionType) (*domain.Ballot, error)
	VotedElections(ctx context.Context, voterID uuid.UUID) ([]domain.ElectionType, error)
}

// tallyRepo defines the tally aggregator interface needed by vote service.
type tallyRepo interface {
	Increment(ctx context.Context, election domain.ElectionType, party, partyImageRef string) (*domain.PartyTally, error)
	GetTallies(ctx context.Context, election domain.ElectionType) ([]domain.PartyTally, error)
	GetTally(ctx context.Context, election domain.ElectionType, party string) (*domain.PartyTally, error)
	Recount(ctx context.Context, election domain.ElectionType) ([]domain.PartyCount, error)
	SetCount(ctx context.Context, election domain.ElectionType, party string, count int64, partyImageRef string) error
	LockElectionShared(ctx context.Context, election domain.ElectionType) error
	LockElectionExclusive(ctx context.Context, election domain.ElectionType) error
}

// txManager defines the transaction manager interface needed by vote service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// readCache defines the rendered view cache interface needed by vote service.
type readCache interface {
	GetOrCompute(ctx context.Context, key cache.Key, compute func(ctx context.Context) ([]byte, error)) ([]byte, error)
	Invalidate(ctx context.Context, scopePrefix string) error
}

// tallyNotifier is told about every committed tally change.
type tallyNotifier interface {
	TallyChanged(election domain.ElectionType)
}

// Service implements vote operations.
type Service struct {
	log        *slog.Logger
	candidates candidateRepo
	ballots    ballotRepo
	tallies    tallyRepo
	tx         txManager
	cache      readCache
	notifier   tallyNotifier
	cfg        config.VoteConfig
}

// NewService creates a new vote service instance. Tally changes are broadcast
// through pub once the returned service's Notifier is running.
func NewService(
	logger *slog.Logger,
	candidates candidateRepo,
	ballots ballotRepo,
	tallies tallyRepo,
	tx txManager,
	cache readCache,
	pub Publisher,
	cfg config.VoteConfig,
	queueSize int,
) *Service {
	s := &Service{
		log:        logger.With("service", "vote"),
		candidates: candidates,
		ballots:    ballots,
		tallies:    tallies,
		tx:         tx,
		cache:      cache,
		cfg:        cfg,
	}
	s.notifier = NewNotifier(s.renderPartyTallies, pub, queueSize, logger)
	return s
}

// Notifier returns the broadcaster fed by this service.
func (s *Service) Notifier() *Notifier {
	n, _ := s.notifier.(*Notifier)
	return n
}

// castBackoff bounds the retry of transient store failures to MaxCastAttempts in total.
func (s *Service) castBackoff() retry.Backoff {
	b := retry.NewExponential(s.cfg.RetryBaseDelay)
	b = retry.WithJitter(s.cfg.RetryBaseDelay/2, b)
	return retry.WithMaxRetries(s.cfg.MaxCastAttempts-1, b)
}

const (
	invalidateTimeout  = 2 * time.Second
	invalidateAttempts = 3
	invalidateBackoff  = 25 * time.Millisecond
)

// invalidateElection drops the cached views of election after a committed
// write. It runs detached from ctx's cancellation: the write is durable by
// now, so a caller that went away must not leave stale views behind.
func (s *Service) invalidateElection(ctx context.Context, election domain.ElectionType) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	defer cancel()

	b := retry.WithMaxRetries(invalidateAttempts-1, retry.NewConstant(invalidateBackoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		return retry.RetryableError(s.cache.Invalidate(ctx, cache.ElectionScope(election)))
	})
	if err != nil {
		s.log.ErrorContext(ctx, "cache invalidation failed",
			slog.String("election_type", election.String()),
			slog.String("error", err.Error()),
		)
	}
}
