package enum

// AdminRequestStatus represents the status of an admin registration request
type AdminRequestStatus string

const (
	AdminRequestStatusPending  AdminRequestStatus = "pending"
	AdminRequestStatusApproved AdminRequestStatus = "approved"
	AdminRequestStatusRejected AdminRequestStatus = "rejected"
)

// Valid reports whether s is a known admin request status
func (s AdminRequestStatus) Valid() bool {
	switch s {
	case AdminRequestStatusPending, AdminRequestStatusApproved, AdminRequestStatusRejected:
		return true
	}
	return false
}

func (s AdminRequestStatus) String() string {
	return string(s)
}
