package enum

// TransactionType represents the direction of a stock ledger entry
type TransactionType string

const (
	TransactionTypeIssue  TransactionType = "issue"
	TransactionTypeReturn TransactionType = "return"
)

// Valid reports whether t is a known transaction type
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIssue || t == TransactionTypeReturn
}

func (t TransactionType) String() string {
	return string(t)
}

// TransactionStatus represents the state of stock covered by a ledger entry
type TransactionStatus string

const (
	TransactionStatusIssued   TransactionStatus = "issued"
	TransactionStatusReturned TransactionStatus = "returned"
	TransactionStatusUsed     TransactionStatus = "used"
)

// Valid reports whether s is a known transaction status
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusIssued, TransactionStatusReturned, TransactionStatusUsed:
		return true
	}
	return false
}

func (s TransactionStatus) String() string {
	return string(s)
}

// ValuationMethod labels a stock valuation run. Without a purchase-batch
// ledger both methods value stock at the blended purchase price; the label
// is carried through to the report only.
type ValuationMethod string

const (
	ValuationFIFO ValuationMethod = "FIFO"
	ValuationLIFO ValuationMethod = "LIFO"
)

// Valid reports whether m is a known valuation method
func (m ValuationMethod) Valid() bool {
	return m == ValuationFIFO || m == ValuationLIFO
}

func (m ValuationMethod) String() string {
	return string(m)
}
