package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-petclinic/internal/shared/validation"
)

var (
	// ErrInvalidInput signals the request violated a field rule.
	ErrInvalidInput = errors.New("invalid customer input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := validation.As(err); ok {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
