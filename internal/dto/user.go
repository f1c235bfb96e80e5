// Package dto defines the request and response structures.
package dto

// SignupRequest carries the signup parameters. The username is the login
// key and must be an email address.
type SignupRequest struct {
	Username  string `json:"username" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6,user_password"`
	FirstName string `json:"first_name" binding:"required,person_name"`
	LastName  string `json:"last_name" binding:"required,person_name"`
}

// SigninRequest carries the login parameters. The password rules match
// signup, so a value that could never have been registered is rejected
// before any credential lookup.
type SigninRequest struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,user_password"`
}

// UserCreatedDTO is the signup response payload.
type UserCreatedDTO struct {
	UserID string `json:"user_id"`
}

// TokenDTO is the login response payload.
type TokenDTO struct {
	Token string `json:"token"`
}
