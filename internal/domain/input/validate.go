package input

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/qrave1/RoomChat/internal/domain/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate проверяет теги validate у параметров операции
func Validate(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidRequest, err)
	}

	return nil
}
