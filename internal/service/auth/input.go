package auth

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// DateLayout is the accepted date_of_birth format.
const DateLayout = "2006-01-02"

var (
	nationalIDRe = regexp.MustCompile(`^[0-9]{11}$`)
	vinRe        = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
)

// RegisterInput holds parameters for voter registration.
type RegisterInput struct {
	NationalID  string
	FirstName   string
	LastName    string
	DateOfBirth string
	State       string
	LGA         string
	VIN         string
	Password    string
}

func (i RegisterInput) normalize() RegisterInput {
	i.NationalID = strings.TrimSpace(i.NationalID)
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
	i.DateOfBirth = strings.TrimSpace(i.DateOfBirth)
	i.State = strings.TrimSpace(i.State)
	i.LGA = strings.TrimSpace(i.LGA)
	i.VIN = strings.ToUpper(strings.TrimSpace(i.VIN))
	return i
}

// Validate validates the register input against the registration date now.
func (i RegisterInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if !nationalIDRe.MatchString(i.NationalID) {
		errs = append(errs, domain.FieldError{Field: "national_id", Message: "must be 11 digits"})
	}
	if !vinRe.MatchString(i.VIN) {
		errs = append(errs, domain.FieldError{Field: "vin", Message: "must be 17 characters without I, O or Q"})
	}
	errs = appendName(errs, "first_name", i.FirstName)
	errs = appendName(errs, "last_name", i.LastName)
	errs = appendName(errs, "state", i.State)
	errs = appendName(errs, "lga", i.LGA)

	if i.DateOfBirth == "" {
		errs = append(errs, domain.FieldError{Field: "date_of_birth", Message: "required"})
	} else if dob, err := time.Parse(DateLayout, i.DateOfBirth); err != nil {
		errs = append(errs, domain.FieldError{Field: "date_of_birth", Message: "must be YYYY-MM-DD"})
	} else if domain.AgeAt(dob, now) < domain.MinVotingAge {
		errs = append(errs, domain.FieldError{Field: "date_of_birth", Message: "voter must be at least 18 years old"})
	}

	errs = appendPassword(errs, i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendName(errs []domain.FieldError, field, v string) []domain.FieldError {
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(v) > 100:
		return append(errs, domain.FieldError{Field: field, Message: "too long (max 100)"})
	}
	return errs
}

// bcrypt ignores everything past 72 bytes.
func appendPassword(errs []domain.FieldError, p string) []domain.FieldError {
	switch {
	case p == "":
		return append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(p) < 8:
		return append(errs, domain.FieldError{Field: "password", Message: "too short (min 8)"})
	case len(p) > 72:
		return append(errs, domain.FieldError{Field: "password", Message: "too long (max 72 bytes)"})
	}
	return errs
}

// LoginInput holds parameters for national ID + password login.
type LoginInput struct {
	NationalID string
	Password   string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.NationalID == "" {
		errs = append(errs, domain.FieldError{Field: "national_id", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
