package contact

import (
	"regexp"
	"strings"

	"rolodex/internal/domain/validation"
)

const (
	MinAge      = 0
	MaxAge      = 150
	MaxNameLen  = 100
	MaxEmailLen = 254
	MaxNotesLen = 2000
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator checks field-level constraints on inbound shapes. It is a pure
// check: it collects every violated field in one pass and never mutates
// its input.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreate checks all fields of a create request.
func (v *Validator) ValidateCreate(req CreateRequest) error {
	violations := validation.Violations{}

	v.checkName(violations, req.Name)
	v.checkAge(violations, req.Age)
	v.checkEmail(violations, req.Email)
	v.checkNotes(violations, req.Notes)
	v.checkGroupID(violations, req.GroupID)

	return violations.Err()
}

// ValidateUpdate checks only the fields present in a partial update.
func (v *Validator) ValidateUpdate(req UpdateRequest) error {
	violations := validation.Violations{}

	if req.Name != nil {
		v.checkName(violations, *req.Name)
	}
	if req.Age != nil {
		v.checkAge(violations, *req.Age)
	}
	if req.Email != nil {
		v.checkEmail(violations, *req.Email)
	}
	if req.Notes != nil {
		v.checkNotes(violations, *req.Notes)
	}
	if req.GroupID != nil {
		v.checkGroupID(violations, req.GroupID)
	}

	return violations.Err()
}

func (v *Validator) checkName(violations validation.Violations, name string) {
	if strings.TrimSpace(name) == "" {
		violations.Add("name", "must not be blank")
		return
	}
	if len(name) > MaxNameLen {
		violations.Add("name", "must be at most %d characters", MaxNameLen)
	}
}

func (v *Validator) checkAge(violations validation.Violations, age int) {
	if age < MinAge || age > MaxAge {
		violations.Add("age", "must be between %d and %d", MinAge, MaxAge)
	}
}

func (v *Validator) checkEmail(violations validation.Violations, email string) {
	if strings.TrimSpace(email) == "" {
		violations.Add("email", "must not be blank")
		return
	}
	if len(email) > MaxEmailLen {
		violations.Add("email", "must be at most %d characters", MaxEmailLen)
		return
	}
	if !emailRe.MatchString(email) {
		violations.Add("email", "must be a valid email address")
	}
}

func (v *Validator) checkNotes(violations validation.Violations, notes string) {
	if len(notes) > MaxNotesLen {
		violations.Add("notes", "must be at most %d characters", MaxNotesLen)
	}
}

func (v *Validator) checkGroupID(violations validation.Violations, groupID *int64) {
	if groupID != nil && *groupID <= 0 {
		violations.Add("group_id", "must be a positive identifier")
	}
}
