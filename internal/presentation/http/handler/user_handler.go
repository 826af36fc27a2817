package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/internal/application/service"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/request"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/response"
	"github.com/nivaranatech/opsdesk-api/internal/store"
)

// UserHandler handles user, role, department and notification endpoints
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser pre-creates a staff record; the person completes
// registration themselves
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	user, err := h.userService.CreateUser(&service.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
		Phone:      req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created", user)
}

// ListUsers lists users
func (h *UserHandler) ListUsers(c *gin.Context) {
	response.OK(c, "Users retrieved", h.userService.ListUsers(includeInactive(c)))
}

// GetUser returns one user by id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved", user)
}

// UpdateUser applies a partial update; a role change re-derives the
// user's permissions from the role unless explicit permissions are sent
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	user, err := h.userService.UpdateUser(id, store.UserPatch{
		Name:        req.Name,
		Role:        req.Role,
		Department:  req.Department,
		Phone:       req.Phone,
		Permissions: req.Permissions,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated", user)
}

// DeleteUser deactivates a user
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User deleted", nil)
}

// CreateRole creates a custom role
func (h *UserHandler) CreateRole(c *gin.Context) {
	var req request.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	role, err := h.userService.CreateRole(req.Name, req.Permissions)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Role created", role)
}

// UpdateRolePermissions replaces a custom role's permission set;
// built-in roles are immutable
func (h *UserHandler) UpdateRolePermissions(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.RolePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	role, err := h.userService.UpdateRolePermissions(id, req.Permissions)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Role updated", role)
}

// ListRoles lists roles
func (h *UserHandler) ListRoles(c *gin.Context) {
	response.OK(c, "Roles retrieved", h.userService.ListRoles())
}

// CreateDepartment creates a department
func (h *UserHandler) CreateDepartment(c *gin.Context) {
	var req request.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	dept, err := h.userService.CreateDepartment(req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Department created", dept)
}

// DeleteDepartment deactivates a department
func (h *UserHandler) DeleteDepartment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userService.DeleteDepartment(id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Department deleted", nil)
}

// ListDepartments lists departments
func (h *UserHandler) ListDepartments(c *gin.Context) {
	response.OK(c, "Departments retrieved", h.userService.ListDepartments())
}

// ListNotifications lists notifications, optionally unread only
func (h *UserHandler) ListNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	response.OK(c, "Notifications retrieved", h.userService.ListNotifications(unreadOnly))
}

// MarkNotificationRead marks one notification as read
func (h *UserHandler) MarkNotificationRead(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userService.MarkNotificationRead(id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notification marked read", nil)
}
