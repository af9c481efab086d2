package roster

import (
	"fmt"

	"chat-mock/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ProfileDraft carries the fields a user fills in at login. The id, online
// flag, and roster position are owned by the store.
type ProfileDraft struct {
	Name      string `validate:"required,min=1,max=60"`
	Age       int    `validate:"required,gte=18,lte=99"`
	Country   string `validate:"required"`
	City      string `validate:"required"`
	Gender    string `validate:"required,oneof=Male Female"`
	AvatarURL string `validate:"omitempty,url"`
	Bio       string `validate:"max=280"`
}

func ValidateDraft(draft ProfileDraft) error {
	if err := validate.Struct(draft); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidProfile, err)
	}
	return nil
}
