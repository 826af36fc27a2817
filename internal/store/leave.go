package store

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// CalculateLeaveDays walks every calendar day from start to end
// inclusive. A day counts unless it is a weekend (when excludeWeekends)
// or matches a holiday date. A half-day request knocks 0.5 off a
// positive count. The result never drops below 0.5.
func (s *Store) CalculateLeaveDays(start, end time.Time, excludeWeekends, halfDay bool) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calculateLeaveDaysLocked(start, end, excludeWeekends, halfDay)
}

func (s *Store) calculateLeaveDaysLocked(start, end time.Time, excludeWeekends, halfDay bool) float64 {
	holidaySet := make(map[string]struct{}, len(s.holidays))
	for _, h := range s.holidays {
		holidaySet[h.Date] = struct{}{}
	}

	days := 0.0
	for d := truncateToDay(start); !d.After(truncateToDay(end)); d = d.AddDate(0, 0, 1) {
		if excludeWeekends && (d.Weekday() == time.Saturday || d.Weekday() == time.Sunday) {
			continue
		}
		if _, isHoliday := holidaySet[d.Format("2006-01-02")]; isHoliday {
			continue
		}
		days++
	}

	if halfDay && days > 0 {
		days -= 0.5
	}
	if days < 0.5 {
		days = 0.5
	}
	return days
}

// AddLeave creates a leave request in Pending status, computing the day
// count from the date range when the caller did not supply one
func (s *Store) AddLeave(input entity.LeaveRequest) (entity.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUser(input.UserID) == nil {
		return entity.LeaveRequest{}, apperror.NewNotFoundError("User")
	}
	if input.EndDate.Before(input.StartDate) {
		return entity.LeaveRequest{}, apperror.NewBadRequestError("End date cannot be before start date")
	}

	if input.Days == 0 {
		input.Days = s.calculateLeaveDaysLocked(input.StartDate, input.EndDate, true, input.HalfDay)
	}
	input.ID = s.nextNumericID(colLeaves)
	input.Status = enum.LeaveStatusPending
	input.ApprovalHistory = []entity.ApprovalEntry{}
	input.CreatedAt = s.now()

	s.leaves = append(s.leaves, input)
	return input, nil
}

// ApproveLeave records an approval step. An Admin approval, or a second
// approval from anyone, finalizes the request; only that final
// transition deducts the days from the user's leave balance, so repeat
// calls can never deduct twice. The finality decision and the deduction
// happen in one transform over the current record.
func (s *Store) ApproveLeave(leaveID int, approverName, approverRole, comments string) (entity.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leave := s.findLeave(leaveID)
	if leave == nil {
		return entity.LeaveRequest{}, apperror.NewNotFoundError("Leave request")
	}
	if leave.Status.Final() {
		return entity.LeaveRequest{}, apperror.NewConflictError("Leave request already " + leave.Status.String())
	}

	priorApprovals := len(leave.ApprovalHistory)
	leave.ApprovalHistory = append(leave.ApprovalHistory, entity.ApprovalEntry{
		Action:       "Approved",
		ApproverName: approverName,
		ApproverRole: approverRole,
		Comments:     comments,
		At:           s.now(),
	})

	final := approverRole == "Admin" || priorApprovals >= 1
	if final {
		leave.Status = enum.LeaveStatusApproved
		if user := s.findUser(leave.UserID); user != nil {
			if user.LeaveBalance == nil {
				user.LeaveBalance = make(map[string]float64)
			}
			balance := user.LeaveBalance[leave.LeaveType] - leave.Days
			if balance < 0 {
				balance = 0
			}
			user.LeaveBalance[leave.LeaveType] = balance
		}
	}

	return *leave, nil
}

// RejectLeave finalizes a request as Rejected; no further approval is
// possible afterwards
func (s *Store) RejectLeave(leaveID int, approverName, approverRole, reason string) (entity.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leave := s.findLeave(leaveID)
	if leave == nil {
		return entity.LeaveRequest{}, apperror.NewNotFoundError("Leave request")
	}
	if leave.Status.Final() {
		return entity.LeaveRequest{}, apperror.NewConflictError("Leave request already " + leave.Status.String())
	}

	leave.ApprovalHistory = append(leave.ApprovalHistory, entity.ApprovalEntry{
		Action:       "Rejected",
		ApproverName: approverName,
		ApproverRole: approverRole,
		Comments:     reason,
		At:           s.now(),
	})
	leave.Status = enum.LeaveStatusRejected

	return *leave, nil
}

// GetLeave returns the leave request with the given id
func (s *Store) GetLeave(id int) (entity.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	leave := s.findLeave(id)
	if leave == nil {
		return entity.LeaveRequest{}, apperror.NewNotFoundError("Leave request")
	}
	return *leave, nil
}

// ListLeaves returns all leave requests, optionally filtered to one user
func (s *Store) ListLeaves(userID int) []entity.LeaveRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.LeaveRequest, 0, len(s.leaves))
	for _, l := range s.leaves {
		if userID != 0 && l.UserID != userID {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (s *Store) findLeave(id int) *entity.LeaveRequest {
	for i := range s.leaves {
		if s.leaves[i].ID == id {
			return &s.leaves[i]
		}
	}
	return nil
}
