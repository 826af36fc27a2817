package enum

// LeaveStatus represents the status of a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// Valid reports whether s is a known leave status
func (s LeaveStatus) Valid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}

// Final reports whether no further approval action is possible
func (s LeaveStatus) Final() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

func (s LeaveStatus) String() string {
	return string(s)
}
