package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth request / response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// logoutResponse mirrors the login envelope with the token nulled out.
// Logout is stateless: the token stays valid until its natural expiry.
type logoutResponse struct {
	AccessToken *string `json:"access_token"`
	Message     string  `json:"message"`
}

// --- User request / response types ---

type updateUserRequest struct {
	Username string `json:"username" validate:"omitempty,min=1"`
	Password string `json:"password" validate:"omitempty,min=4"`
}

type userResponse struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Role      string           `json:"role"`
	Favorites []artistResponse `json:"favorites,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type listUsersResponse struct {
	Data []userResponse `json:"data"`
}
