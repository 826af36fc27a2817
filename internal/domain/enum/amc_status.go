package enum

// AMCStatus represents the status of an AMC contract
type AMCStatus string

const (
	AMCStatusActive    AMCStatus = "Active"
	AMCStatusExpired   AMCStatus = "Expired"
	AMCStatusCancelled AMCStatus = "Cancelled"
)

// Valid reports whether s is a known AMC status
func (s AMCStatus) Valid() bool {
	switch s {
	case AMCStatusActive, AMCStatusExpired, AMCStatusCancelled:
		return true
	}
	return false
}

func (s AMCStatus) String() string {
	return string(s)
}
