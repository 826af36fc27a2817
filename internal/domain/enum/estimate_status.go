package enum

// EstimateStatus represents the status of an estimate
type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "Draft"
	EstimateStatusSent      EstimateStatus = "Sent"
	EstimateStatusApproved  EstimateStatus = "Approved"
	EstimateStatusRejected  EstimateStatus = "Rejected"
	EstimateStatusConverted EstimateStatus = "Converted"
)

// Valid reports whether s is a known estimate status
func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusApproved,
		EstimateStatusRejected, EstimateStatusConverted:
		return true
	}
	return false
}

func (s EstimateStatus) String() string {
	return string(s)
}
