package service

import (
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// UserService handles staff records, roles and departments
type UserService struct {
	store *store.Store
}

// NewUserService creates a new user service
func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// CreateUserInput represents the pre-create staff input
type CreateUserInput struct {
	Name       string
	Email      string
	Role       string
	Department string
	Phone      string
}

// CreateUser pre-creates a staff record the person later activates via
// staff registration
func (s *UserService) CreateUser(input *CreateUserInput) (entity.User, error) {
	if input.Name == "" || input.Email == "" {
		return entity.User{}, apperror.NewBadRequestError("Name and email are required")
	}
	return s.store.AddUser(entity.User{
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Department: input.Department,
		Phone:      input.Phone,
	})
}

// UpdateUser merges a patch into a user record
func (s *UserService) UpdateUser(id int, patch store.UserPatch) (entity.User, error) {
	return s.store.UpdateUser(id, patch)
}

// DeleteUser soft-deletes a user
func (s *UserService) DeleteUser(id int) error {
	return s.store.DeactivateUser(id)
}

// GetUser retrieves a user by id
func (s *UserService) GetUser(id int) (entity.User, error) {
	return s.store.GetUser(id)
}

// ListUsers lists users
func (s *UserService) ListUsers(includeInactive bool) []entity.User {
	return s.store.ListUsers(includeInactive)
}

// CreateRole creates a custom role
func (s *UserService) CreateRole(name string, permissions []string) (entity.Role, error) {
	if name == "" {
		return entity.Role{}, apperror.NewBadRequestError("Role name is required")
	}
	return s.store.AddRole(entity.Role{Name: name, Permissions: permissions})
}

// UpdateRolePermissions replaces a custom role's permission set
func (s *UserService) UpdateRolePermissions(id int, permissions []string) (entity.Role, error) {
	return s.store.UpdateRolePermissions(id, permissions)
}

// ListRoles lists roles
func (s *UserService) ListRoles() []entity.Role {
	return s.store.ListRoles()
}

// CreateDepartment creates a department
func (s *UserService) CreateDepartment(name string) (entity.Department, error) {
	if name == "" {
		return entity.Department{}, apperror.NewBadRequestError("Department name is required")
	}
	return s.store.AddDepartment(entity.Department{Name: name})
}

// DeleteDepartment soft-deletes a department
func (s *UserService) DeleteDepartment(id int) error {
	return s.store.DeactivateDepartment(id)
}

// ListDepartments lists departments
func (s *UserService) ListDepartments() []entity.Department {
	return s.store.ListDepartments()
}

// ListNotifications lists in-app notifications
func (s *UserService) ListNotifications(unreadOnly bool) []entity.Notification {
	return s.store.ListNotifications(unreadOnly)
}

// MarkNotificationRead flags a notification as read
func (s *UserService) MarkNotificationRead(id int) error {
	return s.store.MarkNotificationRead(id)
}
