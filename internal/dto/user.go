package dto

// RegisterRequest is the JSON body for POST /register. Fields are not
// bound with `required` tags: registration reports per-field errors
// (see service.FieldErrors) instead of a single binding message.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is returned after registration.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse carries the authenticated user's id only; no session or
// token is issued.
type LoginResponse struct {
	UserID int64 `json:"user_id"`
}
