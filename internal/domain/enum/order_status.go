package enum

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "Pending"
	OrderStatusInProgress   OrderStatus = "In Progress"
	OrderStatusCompleted    OrderStatus = "Completed"
	OrderStatusCancelled    OrderStatus = "Cancelled"
	OrderStatusAMCConverted OrderStatus = "AMC Converted"
)

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusAMCConverted:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// Valid reports whether s is a known payment status
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}

func (s PaymentStatus) String() string {
	return string(s)
}
