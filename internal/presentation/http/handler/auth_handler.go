package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/internal/application/service"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/request"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/response"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// AuthHandler handles authentication and registration endpoints
type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Login authenticates a user and issues an access/refresh token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}

// RefreshToken exchanges a refresh token for a fresh token pair
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", result)
}

// RegisterAdmin registers an admin account. The first registrant is
// admitted unconditionally; later ones need an approved request.
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req request.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.authService.RegisterAdmin(store.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Admin registered", result)
}

// RegisterStaff completes registration for a pre-created staff record
func (h *AuthHandler) RegisterStaff(c *gin.Context) {
	var req request.RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.authService.RegisterStaff(req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Registration complete", result)
}

// RequestAdminAccess files an admin registration request for approval
func (h *AuthHandler) RequestAdminAccess(c *gin.Context) {
	var req request.AdminRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	adminReq, err := h.authService.RequestAdminRegistration(req.Name, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Admin request submitted", adminReq)
}

// FirstUser reports whether registration would bootstrap the first admin
func (h *AuthHandler) FirstUser(c *gin.Context) {
	response.OK(c, "First user check", gin.H{"is_first_user": h.authService.IsFirstUser()})
}

// Me returns the authenticated user's own record
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.userService.GetUser(GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile retrieved", user)
}

// ListAdminRequests lists admin registration requests, newest first
func (h *AuthHandler) ListAdminRequests(c *gin.Context) {
	response.OK(c, "Admin requests retrieved", h.authService.ListAdminRequests())
}

// ApproveAdminRequest approves a pending admin registration request
func (h *AuthHandler) ApproveAdminRequest(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	adminReq, err := h.authService.ApproveAdminRequest(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Admin request approved", adminReq)
}

// RejectAdminRequest rejects a pending admin registration request
func (h *AuthHandler) RejectAdminRequest(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.RejectAdminRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.NewBadRequestError("A rejection reason is required"))
		return
	}

	adminReq, err := h.authService.RejectAdminRequest(id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Admin request rejected", adminReq)
}
