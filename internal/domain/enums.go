package domain

import "strings"

// ElectionType identifies one of the concurrent elections a voter takes part in.
type ElectionType string

const (
	ElectionPresidential ElectionType = "presidential"
	ElectionGovernorship ElectionType = "governorship"
	ElectionSenatorial   ElectionType = "senatorial"
)

// ElectionTypes lists every election type in display order.
var ElectionTypes = []ElectionType{ElectionPresidential, ElectionGovernorship, ElectionSenatorial}

func (e ElectionType) String() string { return string(e) }

func (e ElectionType) IsValid() bool {
	switch e {
	case ElectionPresidential, ElectionGovernorship, ElectionSenatorial:
		return true
	}
	return false
}

// ParseElectionType normalizes s and returns a ValidationError for unknown values.
func ParseElectionType(s string) (ElectionType, error) {
	e := ElectionType(strings.ToLower(strings.TrimSpace(s)))
	if !e.IsValid() {
		return "", NewValidationError("election_type", "must be one of presidential, governorship, senatorial")
	}
	return e, nil
}

// VoterRole is the access level carried in access tokens.
type VoterRole string

const (
	VoterRoleVoter VoterRole = "voter"
	VoterRoleAdmin VoterRole = "admin"
)

func (r VoterRole) String() string { return string(r) }

func (r VoterRole) IsValid() bool {
	switch r {
	case VoterRoleVoter, VoterRoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants operator endpoints.
func (r VoterRole) IsAdmin() bool { return r == VoterRoleAdmin }
