package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate_Valid(t *testing.T) {
	req := &RegisterRequest{
		Name:     "Alice Zhang",
		Email:    "alice@example.edu",
		Password: "correct-horse",
		Role:     RoleStudent,
	}

	assert.NoError(t, req.Validate())
}

func TestRegisterRequest_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "a@b.edu", Password: "12345678", Role: RoleStudent}},
		{"bad email", RegisterRequest{Name: "A", Email: "not-an-email", Password: "12345678", Role: RoleStudent}},
		{"short password", RegisterRequest{Name: "A", Email: "a@b.edu", Password: "short", Role: RoleStudent}},
		{"unknown role", RegisterRequest{Name: "A", Email: "a@b.edu", Password: "12345678", Role: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := &LoginRequest{Email: "a@b.edu", Password: "pw"}
	assert.NoError(t, valid.Validate())

	missing := &LoginRequest{Email: "a@b.edu"}
	assert.Error(t, missing.Validate())
}
