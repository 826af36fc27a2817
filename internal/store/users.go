package store

import (
	"strings"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// UserPatch carries the updatable user fields; nil means unchanged
type UserPatch struct {
	Name        *string
	Role        *string
	Department  *string
	Phone       *string
	Permissions *[]string
}

// AddUser pre-creates a staff record (Registered=false) so the person
// can later complete registration with RegisterStaff. Emails must be
// unique across all users.
func (s *Store) AddUser(input entity.User) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUserByEmail(input.Email) != nil {
		return entity.User{}, apperror.NewConflictError("Email already in use")
	}

	input.ID = s.nextNumericID(colUsers)
	input.Registered = false
	input.IsActive = true
	input.CreatedAt = s.now()
	if input.LeaveBalance == nil {
		input.LeaveBalance = map[string]float64{}
	}
	if input.Permissions == nil {
		input.Permissions = s.rolePermissionsLocked(input.Role)
	}

	s.users = append(s.users, input)
	return input, nil
}

// UpdateUser merges the patch into the user record
func (s *Store) UpdateUser(id int, patch UserPatch) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(id)
	if user == nil {
		return entity.User{}, apperror.NewNotFoundError("User")
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Role != nil {
		user.Role = *patch.Role
		user.Permissions = s.rolePermissionsLocked(*patch.Role)
	}
	if patch.Department != nil {
		user.Department = *patch.Department
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Permissions != nil {
		user.Permissions = *patch.Permissions
	}

	return *user, nil
}

// DeactivateUser soft-deletes a user; their ledger entries and leave
// history stay intact
func (s *Store) DeactivateUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(id)
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	user.IsActive = false
	return nil
}

// SetLeaveBalance sets the day allowance for one leave type
func (s *Store) SetLeaveBalance(userID int, leaveType string, days float64) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(userID)
	if user == nil {
		return entity.User{}, apperror.NewNotFoundError("User")
	}
	if days < 0 {
		return entity.User{}, apperror.NewBadRequestError("Leave balance cannot be negative")
	}
	if user.LeaveBalance == nil {
		user.LeaveBalance = make(map[string]float64)
	}
	user.LeaveBalance[leaveType] = days
	return *user, nil
}

// GetUser returns the user with the given id
func (s *Store) GetUser(id int) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user := s.findUser(id)
	if user == nil {
		return entity.User{}, apperror.NewNotFoundError("User")
	}
	return *user, nil
}

// ListUsers returns all users, optionally including inactive ones
func (s *Store) ListUsers(includeInactive bool) []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		if !includeInactive && !u.IsActive {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (s *Store) findUser(id int) *entity.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) findUserByEmail(email string) *entity.User {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return &s.users[i]
		}
	}
	return nil
}

// --- roles ---

// AddRole creates a custom role
func (s *Store) AddRole(input entity.Role) (entity.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.roles {
		if strings.EqualFold(r.Name, input.Name) {
			return entity.Role{}, apperror.NewConflictError("Role already exists")
		}
	}

	input.ID = s.nextNumericID(colRoles)
	input.IsBuiltIn = false
	input.IsActive = true
	s.roles = append(s.roles, input)
	return input, nil
}

// UpdateRolePermissions replaces a role's permission set. Built-in
// roles cannot be modified.
func (s *Store) UpdateRolePermissions(id int, permissions []string) (entity.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.roles {
		if s.roles[i].ID == id {
			if s.roles[i].IsBuiltIn {
				return entity.Role{}, apperror.NewBadRequestError("Built-in roles cannot be modified")
			}
			s.roles[i].Permissions = permissions
			return s.roles[i], nil
		}
	}
	return entity.Role{}, apperror.NewNotFoundError("Role")
}

// ListRoles returns all roles
func (s *Store) ListRoles() []entity.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Role(nil), s.roles...)
}

func (s *Store) rolePermissionsLocked(roleName string) []string {
	for _, r := range s.roles {
		if strings.EqualFold(r.Name, roleName) {
			return append([]string(nil), r.Permissions...)
		}
	}
	return nil
}

// --- departments ---

// AddDepartment creates a department
func (s *Store) AddDepartment(input entity.Department) (entity.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.departments {
		if strings.EqualFold(d.Name, input.Name) {
			return entity.Department{}, apperror.NewConflictError("Department already exists")
		}
	}

	input.ID = s.nextNumericID(colDepartments)
	input.IsActive = true
	s.departments = append(s.departments, input)
	return input, nil
}

// DeactivateDepartment soft-deletes a department; users keep their
// department string
func (s *Store) DeactivateDepartment(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.departments {
		if s.departments[i].ID == id {
			s.departments[i].IsActive = false
			return nil
		}
	}
	return apperror.NewNotFoundError("Department")
}

// ListDepartments returns all departments
func (s *Store) ListDepartments() []entity.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Department(nil), s.departments...)
}
