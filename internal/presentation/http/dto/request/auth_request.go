package request

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterAdminRequest represents an admin registration request
type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// RegisterStaffRequest represents a staff registration request
type RegisterStaffRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AdminRequestRequest represents a request for admin registration approval
type AdminRequestRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

// RejectAdminRequestRequest carries the rejection reason
type RejectAdminRequestRequest struct {
	Reason string `json:"reason" binding:"required"`
}
