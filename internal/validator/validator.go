// Package validator checks a candidate profile before any outbound call is made.
package validator

import (
	"fmt"
	"strings"

	"github.com/valpere/hireassist/internal"
	"github.com/valpere/hireassist/internal/translator"
)

// MaxYearsExperience is the upper bound accepted by the form.
const MaxYearsExperience = 50

// MsgMissingTechStack is shown when the tech stack is empty after trimming.
const MsgMissingTechStack = "⚠️ Please provide a tech stack!"

// ValidationError is a recoverable input problem the user can correct.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validator checks candidate profiles.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// Validate returns a *ValidationError for the first problem found, or nil.
//
// The tech stack is checked first: without it no prompt can be built, and the
// message for it is the one users see most.
func (v *Validator) Validate(p internal.CandidateProfile) error {
	if len(p.TechStack) == 0 || strings.TrimSpace(p.TechStackText()) == "" {
		return &ValidationError{Field: "tech_stack", Message: MsgMissingTechStack}
	}

	if p.YearsExperience < 0 || p.YearsExperience > MaxYearsExperience {
		return &ValidationError{
			Field:   "years_experience",
			Message: fmt.Sprintf("⚠️ Years of experience must be between 0 and %d.", MaxYearsExperience),
		}
	}

	if _, ok := translator.CodeFor(p.Language); !ok {
		return &ValidationError{
			Field:   "language",
			Message: fmt.Sprintf("⚠️ Unsupported language %q.", p.Language),
		}
	}

	return nil
}
