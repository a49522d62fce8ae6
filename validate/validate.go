// Package validate adapts go-playground/validator struct-tag validation to
// the behavior.Validator capability. Bind it to the request types that
// carry validation tags:
//
//	vals := behavior.NewValidators()
//	behavior.AddValidator[CreateUser](vals, validate.Structs())
//	r.Use(behavior.Validation(vals))
package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/TristanKalmbach/MediatorNet/behavior"
)

// Ensure the adapter implements the capability at compile time.
var _ behavior.Validator = (*StructValidator)(nil)

// StructValidator validates requests against their `validate:"..."` struct
// tags. A single instance is safe for concurrent use across request types.
type StructValidator struct {
	v *validator.Validate
}

// Structs returns a StructValidator with the standard rule set.
func Structs() *StructValidator {
	return &StructValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements behavior.Validator. Tag violations map to field
// findings; a request that is not a struct validates clean, since it has
// no tags to check.
func (s *StructValidator) Validate(ctx context.Context, req any) ([]behavior.FieldError, error) {
	err := s.v.StructCtx(ctx, req)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]behavior.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, behavior.FieldError{
				Field:   fe.Field(),
				Message: ruleMessage(fe),
			})
		}
		return out, nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil, nil
	}
	return nil, err
}

// ruleMessage renders a readable message for a failed tag.
func ruleMessage(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}
