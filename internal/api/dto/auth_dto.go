package dto

// AdminLoginRequest payload for admin sign-in.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CustomerLoginRequest payload for customer sign-in.
type CustomerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginResponse is the admin sign-in wire format.
type AdminLoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
}

// CustomerLoginResponse is the customer sign-in wire format.
type CustomerLoginResponse struct {
	Token string `json:"token"`
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PasswordCheckRequest payload for verifying the current password.
type PasswordCheckRequest struct {
	Password string `json:"password"`
}

// ForgotPasswordChangeRequest payload for the OTP-gated password change.
type ForgotPasswordChangeRequest struct {
	Password string `json:"password" validate:"required,min=8,password_strength"`
}
