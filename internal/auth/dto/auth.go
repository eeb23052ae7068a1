package dto

type CreateAccountRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest is checked by the handler, missing fields answer 401.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateAccountResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type ProfileResponse struct {
	Message string  `json:"message"`
	User    Profile `json:"user"`
}

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
