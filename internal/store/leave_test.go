package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateLeaveDaysFullWeek(t *testing.T) {
	s := newTestStore()

	// Mon Jan 6 through Fri Jan 10 2025, no holidays in range
	days := s.CalculateLeaveDays(date(2025, time.January, 6), date(2025, time.January, 10), true, false)
	require.Equal(t, 5.0, days)
}

func TestCalculateLeaveDaysSkipsWeekendsAndHolidays(t *testing.T) {
	s := newTestStore()

	// Mon Mar 23 to Fri Mar 27 2026; Mar 25 is the seeded holiday
	days := s.CalculateLeaveDays(date(2026, time.March, 23), date(2026, time.March, 27), true, false)
	require.Equal(t, 4.0, days)

	// weekends included when excludeWeekends is off
	days = s.CalculateLeaveDays(date(2026, time.March, 21), date(2026, time.March, 22), false, false)
	require.Equal(t, 2.0, days)
}

func TestCalculateLeaveDaysHalfDayAndFloor(t *testing.T) {
	s := newTestStore()

	days := s.CalculateLeaveDays(date(2026, time.March, 2), date(2026, time.March, 3), true, true)
	require.Equal(t, 1.5, days)

	// a weekend-only range still floors at half a day
	days = s.CalculateLeaveDays(date(2026, time.March, 7), date(2026, time.March, 8), true, false)
	require.Equal(t, 0.5, days)
}

func addTestLeave(t *testing.T, s *Store, userID int) entity.LeaveRequest {
	t.Helper()
	leave, err := s.AddLeave(entity.LeaveRequest{
		UserID:    userID,
		LeaveType: "Casual",
		StartDate: date(2026, time.March, 9),
		EndDate:   date(2026, time.March, 11),
		Reason:    "Family function",
	})
	require.NoError(t, err)
	require.Equal(t, enum.LeaveStatusPending, leave.Status)
	require.Equal(t, 3.0, leave.Days)
	return leave
}

func TestApproveLeaveAdminFinalizesImmediately(t *testing.T) {
	s := newTestStore()
	leave := addTestLeave(t, s, 8)

	approved, err := s.ApproveLeave(leave.ID, "Asha", "Admin", "ok")
	require.NoError(t, err)
	require.Equal(t, enum.LeaveStatusApproved, approved.Status)

	user, err := s.GetUser(8)
	require.NoError(t, err)
	require.Equal(t, 7.0, user.LeaveBalance["Casual"], "3 days deducted from 10")
}

func TestApproveLeaveTwoLevelChain(t *testing.T) {
	s := newTestStore()
	leave := addTestLeave(t, s, 8)

	intermediate, err := s.ApproveLeave(leave.ID, "Ravi", "Technician", "fine by me")
	require.NoError(t, err)
	require.Equal(t, enum.LeaveStatusPending, intermediate.Status, "non-admin first approval stays pending")

	user, err := s.GetUser(8)
	require.NoError(t, err)
	require.Equal(t, 10.0, user.LeaveBalance["Casual"], "no deduction before final approval")

	final, err := s.ApproveLeave(leave.ID, "Meera", "Technician", "second approval")
	require.NoError(t, err)
	require.Equal(t, enum.LeaveStatusApproved, final.Status)
	require.Len(t, final.ApprovalHistory, 2)

	user, err = s.GetUser(8)
	require.NoError(t, err)
	require.Equal(t, 7.0, user.LeaveBalance["Casual"])
}

func TestApproveLeaveNeverDeductsTwice(t *testing.T) {
	s := newTestStore()
	leave := addTestLeave(t, s, 8)

	_, err := s.ApproveLeave(leave.ID, "Asha", "Admin", "")
	require.NoError(t, err)

	_, err = s.ApproveLeave(leave.ID, "Asha", "Admin", "again")
	require.EqualError(t, err, "Leave request already Approved")

	user, err := s.GetUser(8)
	require.NoError(t, err)
	require.Equal(t, 7.0, user.LeaveBalance["Casual"])
}

func TestLeaveBalanceFlooredAtZero(t *testing.T) {
	s := newTestStore()

	_, err := s.SetLeaveBalance(8, "Casual", 1)
	require.NoError(t, err)

	leave := addTestLeave(t, s, 8)
	_, err = s.ApproveLeave(leave.ID, "Asha", "Admin", "")
	require.NoError(t, err)

	user, err := s.GetUser(8)
	require.NoError(t, err)
	require.Equal(t, 0.0, user.LeaveBalance["Casual"])
}

func TestRejectLeaveIsFinal(t *testing.T) {
	s := newTestStore()
	leave := addTestLeave(t, s, 8)

	rejected, err := s.RejectLeave(leave.ID, "Asha", "Admin", "short staffed")
	require.NoError(t, err)
	require.Equal(t, enum.LeaveStatusRejected, rejected.Status)

	_, err = s.ApproveLeave(leave.ID, "Asha", "Admin", "")
	require.EqualError(t, err, "Leave request already Rejected")

	user, err := s.GetUser(8)
	require.NoError(t, err)
	require.Equal(t, 10.0, user.LeaveBalance["Casual"], "rejection never touches the balance")
}

func TestAddLeaveValidations(t *testing.T) {
	s := newTestStore()

	_, err := s.AddLeave(entity.LeaveRequest{
		UserID: 999, LeaveType: "Casual",
		StartDate: date(2026, time.March, 9), EndDate: date(2026, time.March, 10),
	})
	require.Error(t, err)

	_, err = s.AddLeave(entity.LeaveRequest{
		UserID: 8, LeaveType: "Casual",
		StartDate: date(2026, time.March, 10), EndDate: date(2026, time.March, 9),
	})
	require.Error(t, err)
}
