package sixcities

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput wraps every local validation failure.
var ErrInvalidInput = errors.New("invalid input")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate reports whether the credentials are complete enough to send.
// Whether they are correct is the server's call.
func (a AuthData) Validate() error {
	return validateStruct(a)
}

// Validate reports whether the review may be submitted. Comment length is
// counted in characters.
func (f ReviewForm) Validate() error {
	return validateStruct(f)
}

func validateStruct(v any) error {
	if err := validatorInstance().Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalidInput, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
