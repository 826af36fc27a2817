package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

func TestFirstRegistrantBecomesAdmin(t *testing.T) {
	s := New(Seed{Roles: testSeed().Roles}, WithClock(fixedClock))

	require.True(t, s.IsFirstUser())

	user, err := s.RegisterAdmin(RegisterInput{Name: "Asha", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	require.True(t, user.IsAdmin)
	require.True(t, user.Registered)
	require.Equal(t, RoleAdmin, user.Role)
	require.NotEmpty(t, user.Permissions, "admin permissions come from the built-in role")

	require.False(t, s.IsFirstUser())

	// a second registration without approval is refused
	_, err = s.RegisterAdmin(RegisterInput{Name: "Beto", Email: "b@x.com", Password: "pw"})
	require.EqualError(t, err, "Admin registration requires approval")
}

func TestAdminApprovalWorkflow(t *testing.T) {
	s := newTestStore()

	req, err := s.RequestAdminRegistration("Beto", "b@x.com")
	require.NoError(t, err)
	require.Equal(t, enum.AdminRequestStatusPending, req.Status)

	notifs := s.ListNotifications(true)
	require.Len(t, notifs, 1)
	require.Equal(t, "admin_request", notifs[0].Type)

	// still pending: registration refused, duplicate request refused
	_, err = s.RegisterAdmin(RegisterInput{Name: "Beto", Email: "b@x.com", Password: "pw"})
	require.EqualError(t, err, "Admin registration request is still pending")
	_, err = s.RequestAdminRegistration("Beto", "b@x.com")
	require.EqualError(t, err, "An admin request for this email is already pending")

	_, err = s.ApproveAdminRequest(req.ID)
	require.NoError(t, err)
	require.True(t, s.IsAdminRequestApproved("b@x.com"))

	// approval does not create the user; a fresh RegisterAdmin call does
	user, err := s.RegisterAdmin(RegisterInput{Name: "Beto", Email: "b@x.com", Password: "pw"})
	require.NoError(t, err)
	require.True(t, user.IsAdmin)

	// deciding an already-decided request conflicts
	_, err = s.RejectAdminRequest(req.ID, "late")
	require.EqualError(t, err, "Request already approved")
}

func TestRejectedAdminRequestSurfacesReason(t *testing.T) {
	s := newTestStore()

	req, err := s.RequestAdminRegistration("Beto", "b@x.com")
	require.NoError(t, err)

	_, err = s.RejectAdminRequest(req.ID, "unknown vendor")
	require.NoError(t, err)
	require.False(t, s.IsAdminRequestApproved("b@x.com"))

	_, err = s.RegisterAdmin(RegisterInput{Name: "Beto", Email: "b@x.com", Password: "pw"})
	require.EqualError(t, err, "Admin registration request was rejected: unknown vendor")
}

func TestRegisterAdminDuplicateEmail(t *testing.T) {
	s := newTestStore()

	_, err := s.RegisterAdmin(RegisterInput{Name: "Dup", Email: "ASHA@test.local", Password: "pw"})
	require.EqualError(t, err, "Email already registered")

	_, err = s.RequestAdminRegistration("Dup", "asha@test.local")
	require.EqualError(t, err, "Email already registered")
}

func TestRegisterStaff(t *testing.T) {
	s := newTestStore()

	// Meera is pre-created but not registered
	user, err := s.RegisterStaff("meera@test.local", "newpw")
	require.NoError(t, err)
	require.True(t, user.Registered)
	require.False(t, user.IsAdmin)

	_, err = s.RegisterStaff("meera@test.local", "again")
	require.EqualError(t, err, "Email already registered")

	_, err = s.RegisterStaff("nobody@test.local", "pw")
	require.True(t, apperror.IsNotFound(err))
}

func TestLoginUser(t *testing.T) {
	s := newTestStore()

	user, err := s.LoginUser("ASHA@test.local", "secret1")
	require.NoError(t, err)
	require.Equal(t, 7, user.ID)

	// wrong password and unknown email fail identically
	_, wrongPw := s.LoginUser("asha@test.local", "nope")
	_, unknown := s.LoginUser("ghost@test.local", "secret1")
	require.EqualError(t, wrongPw, apperror.ErrInvalidCredentials.Message)
	require.EqualError(t, unknown, apperror.ErrInvalidCredentials.Message)

	// unregistered users cannot log in even with a matching record
	_, err = s.LoginUser("meera@test.local", "")
	require.Error(t, err)
}

func TestDeactivatedUserCannotLogin(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.DeactivateUser(8))
	_, err := s.LoginUser("ravi@test.local", "secret2")
	require.EqualError(t, err, apperror.ErrInvalidCredentials.Message)
}
