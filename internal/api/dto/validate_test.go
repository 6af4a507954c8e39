package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignUp() CustomerSignUpRequest {
	return CustomerSignUpRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "5550100",
		Password: "S3cret!pass",
		Address:  "42 Baker Street",
	}
}

func TestCustomerSignUpValidation(t *testing.T) {
	require.NoError(t, Validate(validSignUp()))

	tests := []struct {
		name   string
		mutate func(*CustomerSignUpRequest)
	}{
		{"missing name", func(r *CustomerSignUpRequest) { r.Name = "" }},
		{"bad email", func(r *CustomerSignUpRequest) { r.Email = "not-an-email" }},
		{"missing phone", func(r *CustomerSignUpRequest) { r.Phone = "" }},
		{"phone too long", func(r *CustomerSignUpRequest) { r.Phone = "0123456789012345" }},
		{"short password", func(r *CustomerSignUpRequest) { r.Password = "S3c!s" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignUp()
			tt.mutate(&req)
			assert.Error(t, Validate(req))
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"S3cret!pass", true},
		{"Aa1#Aa1#", true},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigitsHere!", false},
		{"NoSpecials123", false},
	}
	for _, tt := range tests {
		req := validSignUp()
		req.Password = tt.password
		err := Validate(req)
		if tt.ok {
			assert.NoError(t, err, "password %q", tt.password)
		} else {
			assert.Error(t, err, "password %q", tt.password)
		}
	}
}
