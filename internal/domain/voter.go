package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinVotingAge is the minimum age, in whole years, accepted at registration.
const MinVotingAge = 18

// Voter is a registered account. One national ID maps to exactly one voter.
type Voter struct {
	ID              uuid.UUID
	NationalID      string
	FirstName       string
	LastName        string
	DateOfBirth     time.Time
	State           string
	LGA             string
	VIN             string
	ProfileImageRef string
	Role            VoterRole
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName returns "first last".
func (v *Voter) FullName() string {
	return v.FirstName + " " + v.LastName
}

// AgeAt returns the voter's age in completed years at the given moment.
func AgeAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// VoterCredential holds the password hash of a voter.
type VoterCredential struct {
	VoterID      uuid.UUID
	PasswordHash string
	UpdatedAt    time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	VoterID   uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
