package payload

import (
	"workoutlog/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a RegisterRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Email, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a RegisterRequest) ToCoreMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: a.Username,
		Email:    a.Email,
		Password: a.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a LoginRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Email, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a LoginRequest) ToCoreMessage() core.LoginMessage {
	return core.LoginMessage{
		Email:    a.Email,
		Password: a.Password,
	}
}
