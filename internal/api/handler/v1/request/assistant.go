package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ChatRequest struct {
	Message string `json:"message"`
}

func (req *ChatRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Message, validation.Required, validation.Length(1, 4000)),
	)
}
