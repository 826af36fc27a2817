package service

import (
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
	"github.com/nivaranatech/opsdesk-api/pkg/utils"
)

// AuthService handles login, registration and the admin approval
// workflow
type AuthService struct {
	store      *store.Store
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(st *store.Store, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{store: st, jwtManager: jwtManager}
}

// AuthResult carries the authenticated user and their token pair
type AuthResult struct {
	User         entity.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// Login authenticates a user and issues tokens
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.store.LoginUser(email, password)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

// RefreshToken validates a refresh token and issues a fresh pair
func (s *AuthService) RefreshToken(refreshToken string) (*AuthResult, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	user, err := s.store.GetUser(userID)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	if !user.IsActive || !user.Registered {
		return nil, apperror.ErrInvalidToken
	}
	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user entity.User) (*AuthResult, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role, user.Permissions)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to generate access token")
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to generate refresh token")
	}
	return &AuthResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// RegisterAdmin registers an admin account and logs them in. The first
// registrant is accepted outright; later ones need an approved request.
func (s *AuthService) RegisterAdmin(input store.RegisterInput) (*AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, apperror.NewBadRequestError("Email and password are required")
	}
	user, err := s.store.RegisterAdmin(input)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

// RegisterStaff completes a pre-created staff member's registration and
// logs them in
func (s *AuthService) RegisterStaff(email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperror.NewBadRequestError("Email and password are required")
	}
	user, err := s.store.RegisterStaff(email, password)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

// RequestAdminRegistration files a pending admin request
func (s *AuthService) RequestAdminRegistration(name, email string) (entity.AdminRequest, error) {
	if email == "" {
		return entity.AdminRequest{}, apperror.NewBadRequestError("Email is required")
	}
	return s.store.RequestAdminRegistration(name, email)
}

// ApproveAdminRequest approves a pending request
func (s *AuthService) ApproveAdminRequest(id int) (entity.AdminRequest, error) {
	return s.store.ApproveAdminRequest(id)
}

// RejectAdminRequest rejects a pending request with a reason
func (s *AuthService) RejectAdminRequest(id int, reason string) (entity.AdminRequest, error) {
	return s.store.RejectAdminRequest(id, reason)
}

// ListAdminRequests lists all admin requests
func (s *AuthService) ListAdminRequests() []entity.AdminRequest {
	return s.store.ListAdminRequests()
}

// IsFirstUser reports whether registration would bootstrap the first
// admin
func (s *AuthService) IsFirstUser() bool {
	return s.store.IsFirstUser()
}
