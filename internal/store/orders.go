package store

import (
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// AddOrder creates an order directly, without an originating estimate
func (s *Store) AddOrder(input entity.Order) entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if input.ID == "" {
		input.ID = s.nextSequenceID(PrefixOrder)
	}
	if input.Status == "" {
		input.Status = enum.OrderStatusPending
	}
	if input.PaymentStatus == "" {
		input.PaymentStatus = enum.PaymentStatusPending
	}
	input.Date = now
	input.CreatedAt = now
	input.IsActive = true
	input.AuditTrail = []entity.AuditEntry{{Action: "Created", At: now}}

	s.orders = append(s.orders, input)
	return input
}

// UpdateOrderStatus sets the order's status and optionally its payment
// status, appending an audit entry for each change
func (s *Store) UpdateOrderStatus(id string, status enum.OrderStatus, paymentStatus *enum.PaymentStatus) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(id)
	if order == nil {
		return entity.Order{}, apperror.NewNotFoundError("Order")
	}
	if !status.Valid() {
		return entity.Order{}, apperror.NewBadRequestError("Unknown order status")
	}

	now := s.now()
	if order.Status != status {
		order.AuditTrail = append(order.AuditTrail, entity.AuditEntry{
			Action:   "Status changed",
			OldValue: order.Status.String(),
			NewValue: status.String(),
			At:       now,
		})
		order.Status = status
	}
	if paymentStatus != nil {
		if !paymentStatus.Valid() {
			return entity.Order{}, apperror.NewBadRequestError("Unknown payment status")
		}
		if order.PaymentStatus != *paymentStatus {
			order.AuditTrail = append(order.AuditTrail, entity.AuditEntry{
				Action:   "Payment status changed",
				OldValue: order.PaymentStatus.String(),
				NewValue: paymentStatus.String(),
				At:       now,
			})
			order.PaymentStatus = *paymentStatus
		}
	}

	return *order, nil
}

// GetOrder returns the order with the given id
func (s *Store) GetOrder(id string) (entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.findOrder(id)
	if order == nil {
		return entity.Order{}, apperror.NewNotFoundError("Order")
	}
	return *order, nil
}

// ListOrders returns all orders, optionally including inactive ones
func (s *Store) ListOrders(includeInactive bool) []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if !includeInactive && !o.IsActive {
			continue
		}
		out = append(out, o)
	}
	return out
}

// DeactivateOrder soft-deletes an order
func (s *Store) DeactivateOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(id)
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	order.IsActive = false
	order.AuditTrail = append(order.AuditTrail, entity.AuditEntry{Action: "Deactivated", At: s.now()})
	return nil
}

func (s *Store) findOrder(id string) *entity.Order {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i]
		}
	}
	return nil
}
