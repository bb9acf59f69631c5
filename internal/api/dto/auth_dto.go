package dto

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
	Message string `json:"message"`
}
