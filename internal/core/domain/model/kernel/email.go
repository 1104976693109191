package kernel

import (
	"errors"
	"strings"

	"lastmile/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Email is a value object holding a syntactically valid e-mail address.
// Surrounding whitespace is trimmed; the address is otherwise kept as given,
// while comparisons through IsEqual ignore case.
type Email struct {
	value string
}

// NewEmail validates raw and returns it as an Email.
//
// Example:
//
//	email, err := kernel.NewEmail("ahmad@example.com")
//	if err != nil {
//	    return fmt.Errorf("recipient: %w", err)
//	}
func NewEmail(raw string) (Email, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	if err := validate.Var(value, "email"); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return Email{}, errs.NewValueIsInvalidErrorWithCause("email", errors.New(value+" is not a valid address"))
		}
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	return Email{value: value}, nil
}

// String returns the address.
func (e Email) String() string {
	return e.value
}

// IsEqual reports whether both addresses match, ignoring case.
func (e Email) IsEqual(other Email) bool {
	return strings.EqualFold(e.value, other.value)
}

// Validate fails for the zero value.
func (e Email) Validate() error {
	if e.value == "" {
		return ErrEmailIsNotConstructed
	}
	return nil
}
