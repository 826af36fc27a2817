package service

import (
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// SalesService handles estimates and orders
type SalesService struct {
	store *store.Store
}

// NewSalesService creates a new sales service
func NewSalesService(st *store.Store) *SalesService {
	return &SalesService{store: st}
}

// CreateEstimateInput represents the create estimate input
type CreateEstimateInput struct {
	Customer entity.CustomerInfo
	Items    []entity.LineItem
	Notes    string
}

// CreateEstimate builds a draft estimate, computing line totals and
// GST-inclusive totals from the submitted lines
func (s *SalesService) CreateEstimate(input *CreateEstimateInput) (entity.Estimate, error) {
	if input.Customer.Name == "" {
		return entity.Estimate{}, apperror.NewBadRequestError("Customer name is required")
	}
	if len(input.Items) == 0 {
		return entity.Estimate{}, apperror.NewBadRequestError("An estimate needs at least one line item")
	}

	items := make([]entity.LineItem, len(input.Items))
	var subtotal, tax float64
	for i, line := range input.Items {
		base := float64(line.Quantity) * line.UnitPrice
		lineTax := base * line.GST / 100
		line.Total = base + lineTax
		items[i] = line
		subtotal += base
		tax += lineTax
	}

	return s.store.AddEstimate(entity.Estimate{
		Customer:  input.Customer,
		Items:     items,
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal + tax,
		Notes:     input.Notes,
	}), nil
}

// UpdateEstimate applies a patch; the version bump and audit entry
// happen in the store
func (s *SalesService) UpdateEstimate(id string, patch store.EstimatePatch) (entity.Estimate, error) {
	return s.store.UpdateEstimate(id, patch, "")
}

// DeleteEstimate soft-deletes an estimate
func (s *SalesService) DeleteEstimate(id string) error {
	return s.store.DeactivateEstimate(id)
}

// GetEstimate retrieves an estimate by id
func (s *SalesService) GetEstimate(id string) (entity.Estimate, error) {
	return s.store.GetEstimate(id)
}

// ListEstimates lists estimates
func (s *SalesService) ListEstimates(includeInactive bool) []entity.Estimate {
	return s.store.ListEstimates(includeInactive)
}

// ConvertEstimateToOrder converts an estimate into a pending order
func (s *SalesService) ConvertEstimateToOrder(estimateID string) (entity.Order, error) {
	return s.store.ConvertToOrder(estimateID)
}

// CreateOrder creates an order directly, without an estimate
func (s *SalesService) CreateOrder(customer entity.CustomerInfo, items []entity.LineItem, total float64) (entity.Order, error) {
	if customer.Name == "" {
		return entity.Order{}, apperror.NewBadRequestError("Customer name is required")
	}
	return s.store.AddOrder(entity.Order{Customer: customer, Items: items, Total: total}), nil
}

// UpdateOrderStatus moves an order's status and optionally its payment
// status
func (s *SalesService) UpdateOrderStatus(id string, status enum.OrderStatus, paymentStatus *enum.PaymentStatus) (entity.Order, error) {
	if !status.Valid() {
		return entity.Order{}, apperror.NewBadRequestError("Unknown order status")
	}
	if paymentStatus != nil && !paymentStatus.Valid() {
		return entity.Order{}, apperror.NewBadRequestError("Unknown payment status")
	}
	return s.store.UpdateOrderStatus(id, status, paymentStatus)
}

// DeleteOrder soft-deletes an order
func (s *SalesService) DeleteOrder(id string) error {
	return s.store.DeactivateOrder(id)
}

// GetOrder retrieves an order by id
func (s *SalesService) GetOrder(id string) (entity.Order, error) {
	return s.store.GetOrder(id)
}

// ListOrders lists orders
func (s *SalesService) ListOrders(includeInactive bool) []entity.Order {
	return s.store.ListOrders(includeInactive)
}
