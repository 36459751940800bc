package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignup() SignupRequest {
	return SignupRequest{
		Email:           "alex@example.com",
		Password:        "passw0rd123",
		ConfirmPassword: "passw0rd123",
		FirstName:       "Alex",
		LastName:        "Doe",
		Role:            "creator",
		Institution:     "Example University",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupRequest)
		wantErr bool
	}{
		{"valid creator", func(*SignupRequest) {}, false},
		{"valid ambassador", func(r *SignupRequest) { r.Role = "ambassador" }, false},
		{"no institution", func(r *SignupRequest) { r.Institution = "" }, false},
		{"missing email", func(r *SignupRequest) { r.Email = "" }, true},
		{"malformed email", func(r *SignupRequest) { r.Email = "not-an-email" }, true},
		{"unknown role", func(r *SignupRequest) { r.Role = "admin" }, true},
		{"password too short", func(r *SignupRequest) { r.Password = "pass1"; r.ConfirmPassword = "pass1" }, true},
		{"password without digit", func(r *SignupRequest) { r.Password = "passwordonly"; r.ConfirmPassword = "passwordonly" }, true},
		{"password without letter", func(r *SignupRequest) { r.Password = "1234567890"; r.ConfirmPassword = "1234567890" }, true},
		{"confirm mismatch", func(r *SignupRequest) { r.ConfirmPassword = "0therpass99" }, true},
		{"missing first name", func(r *SignupRequest) { r.FirstName = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			err := req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "alex@example.com", Password: "passw0rd123"}
	assert.NoError(t, valid.Validate())

	missingPassword := LoginRequest{Email: "alex@example.com"}
	assert.Error(t, missingPassword.Validate())

	badEmail := LoginRequest{Email: "nope", Password: "passw0rd123"}
	assert.Error(t, badEmail.Validate())
}
