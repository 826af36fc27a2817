package store

import (
	"fmt"
	"strings"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// RegisterInput carries the fields an admin or staff member submits
// when completing registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// IsFirstUser reports whether no registered user exists yet. The first
// registrant becomes an admin without approval.
func (s *Store) IsFirstUser() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isFirstUserLocked()
}

func (s *Store) isFirstUserLocked() bool {
	for _, u := range s.users {
		if u.Registered {
			return false
		}
	}
	return true
}

// RegisterAdmin creates a registered admin account. The first admin is
// accepted unconditionally; everyone after that needs an approved
// admin request for the same email (see RequestAdminRegistration).
func (s *Store) RegisterAdmin(input RegisterInput) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findUserByEmail(input.Email); existing != nil && existing.Registered {
		return entity.User{}, apperror.NewConflictError("Email already registered")
	}

	if !s.isFirstUserLocked() {
		req := s.findAdminRequestLocked(input.Email)
		switch {
		case req == nil:
			return entity.User{}, apperror.NewForbiddenError("Admin registration requires approval")
		case req.Status == enum.AdminRequestStatusRejected:
			msg := "Admin registration request was rejected"
			if req.Reason != "" {
				msg = fmt.Sprintf("Admin registration request was rejected: %s", req.Reason)
			}
			return entity.User{}, apperror.NewForbiddenError(msg)
		case req.Status == enum.AdminRequestStatusPending:
			return entity.User{}, apperror.NewForbiddenError("Admin registration request is still pending")
		}
	}

	user := entity.User{
		ID:           s.nextNumericID(colUsers),
		Name:         input.Name,
		Email:        input.Email,
		Password:     input.Password,
		Phone:        input.Phone,
		Role:         "Admin",
		Permissions:  s.rolePermissionsLocked("Admin"),
		LeaveBalance: map[string]float64{},
		IsAdmin:      true,
		Registered:   true,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	s.users = append(s.users, user)
	return user, nil
}

// RequestAdminRegistration files a pending admin request and notifies
// existing admins. Fails when the email is already registered or
// already has a pending request.
func (s *Store) RequestAdminRegistration(name, email string) (entity.AdminRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findUserByEmail(email); existing != nil && existing.Registered {
		return entity.AdminRequest{}, apperror.NewConflictError("Email already registered")
	}
	if req := s.findAdminRequestLocked(email); req != nil && req.Status == enum.AdminRequestStatusPending {
		return entity.AdminRequest{}, apperror.NewConflictError("An admin request for this email is already pending")
	}

	req := entity.AdminRequest{
		ID:        s.nextNumericID(colAdminRequests),
		Email:     email,
		Name:      name,
		Status:    enum.AdminRequestStatusPending,
		CreatedAt: s.now(),
	}
	s.adminRequests = append(s.adminRequests, req)

	s.addNotificationLocked("admin_request", fmt.Sprintf("New admin registration request from %s", email))
	return req, nil
}

// ApproveAdminRequest marks a pending request approved. It does not
// create the user; the requester must call RegisterAdmin again.
func (s *Store) ApproveAdminRequest(id int) (entity.AdminRequest, error) {
	return s.decideAdminRequest(id, enum.AdminRequestStatusApproved, "")
}

// RejectAdminRequest marks a pending request rejected with a reason
// the requester will see on their next registration attempt.
func (s *Store) RejectAdminRequest(id int, reason string) (entity.AdminRequest, error) {
	return s.decideAdminRequest(id, enum.AdminRequestStatusRejected, reason)
}

func (s *Store) decideAdminRequest(id int, status enum.AdminRequestStatus, reason string) (entity.AdminRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.adminRequests {
		if s.adminRequests[i].ID != id {
			continue
		}
		if s.adminRequests[i].Status != enum.AdminRequestStatusPending {
			return entity.AdminRequest{}, apperror.NewConflictError(
				fmt.Sprintf("Request already %s", s.adminRequests[i].Status))
		}
		now := s.now()
		s.adminRequests[i].Status = status
		s.adminRequests[i].Reason = reason
		s.adminRequests[i].DecidedAt = &now
		return s.adminRequests[i], nil
	}
	return entity.AdminRequest{}, apperror.NewNotFoundError("Admin request")
}

// IsAdminRequestApproved reports whether the email holds an approved
// admin request
func (s *Store) IsAdminRequestApproved(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req := s.findAdminRequestLocked(email)
	return req != nil && req.Status == enum.AdminRequestStatusApproved
}

// ListAdminRequests returns all admin requests, newest first by id
func (s *Store) ListAdminRequests() []entity.AdminRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]entity.AdminRequest(nil), s.adminRequests...)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// findAdminRequestLocked returns the most recent request for the email
func (s *Store) findAdminRequestLocked(email string) *entity.AdminRequest {
	for i := len(s.adminRequests) - 1; i >= 0; i-- {
		if strings.EqualFold(s.adminRequests[i].Email, email) {
			return &s.adminRequests[i]
		}
	}
	return nil
}

// RegisterStaff completes registration for a pre-created staff record.
// The email must match an admin-added user that has not yet registered.
func (s *Store) RegisterStaff(email, password string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUserByEmail(email)
	if user == nil {
		return entity.User{}, apperror.NewNotFoundError("No staff record for this email")
	}
	if user.Registered {
		return entity.User{}, apperror.NewConflictError("Email already registered")
	}

	user.Password = password
	user.Registered = true
	return *user, nil
}

// LoginUser authenticates by case-insensitive email and exact password.
// Failures are deliberately indistinguishable so callers cannot probe
// which emails exist.
func (s *Store) LoginUser(email, password string) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		u := &s.users[i]
		if !u.Registered || !u.IsActive {
			continue
		}
		if strings.EqualFold(u.Email, email) && u.Password == password {
			return *u, nil
		}
	}
	return entity.User{}, apperror.ErrInvalidCredentials
}
