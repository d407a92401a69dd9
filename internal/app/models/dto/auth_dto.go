package dto

// RegisterAdminRequest represents the one-time admin bootstrap payload
type RegisterAdminRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents user login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token together with a user summary
type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType" example:"bearer"`
	ExpiresIn   int         `json:"expiresIn" example:"3600"`
	User        UserSummary `json:"user"`
}

// UserSummary is the trimmed user representation embedded in login responses
type UserSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
