package enum

// RMAStatus represents the status of an RMA record. The chain is
// forward-only: Inbox -> In-Company -> Outbox -> Delivered.
type RMAStatus string

const (
	RMAStatusInbox     RMAStatus = "Inbox"
	RMAStatusInCompany RMAStatus = "In-Company"
	RMAStatusOutbox    RMAStatus = "Outbox"
	RMAStatusDelivered RMAStatus = "Delivered"
)

var rmaChain = []RMAStatus{RMAStatusInbox, RMAStatusInCompany, RMAStatusOutbox, RMAStatusDelivered}

// Valid reports whether s is a known RMA status
func (s RMAStatus) Valid() bool {
	return s.rank() >= 0
}

// Next returns the single legal next status, or false when s is terminal
// or unknown
func (s RMAStatus) Next() (RMAStatus, bool) {
	r := s.rank()
	if r < 0 || r == len(rmaChain)-1 {
		return "", false
	}
	return rmaChain[r+1], true
}

// Before reports whether s comes strictly earlier in the chain than other
func (s RMAStatus) Before(other RMAStatus) bool {
	sr, or := s.rank(), other.rank()
	return sr >= 0 && or >= 0 && sr < or
}

func (s RMAStatus) rank() int {
	for i, st := range rmaChain {
		if st == s {
			return i
		}
	}
	return -1
}

func (s RMAStatus) String() string {
	return string(s)
}
