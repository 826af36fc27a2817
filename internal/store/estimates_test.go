package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

func TestUpdateEstimateBumpsVersion(t *testing.T) {
	s := newTestStore()

	notes := "revised pricing"
	updated, err := s.UpdateEstimate("EST-2026-001", EstimatePatch{Notes: &notes}, "")
	require.NoError(t, err)
	require.Equal(t, 2, updated.Version)
	require.Equal(t, "revised pricing", updated.Notes)
	require.Equal(t, "Updated", updated.AuditTrail[len(updated.AuditTrail)-1].Action)
}

func TestUpdateEstimateRejectsUnknownStatus(t *testing.T) {
	s := newTestStore()

	bogus := enum.EstimateStatus("Maybe")
	_, err := s.UpdateEstimate("EST-2026-001", EstimatePatch{Status: &bogus}, "")
	require.Error(t, err)

	est, err := s.GetEstimate("EST-2026-001")
	require.NoError(t, err)
	require.Equal(t, enum.EstimateStatusDraft, est.Status)
}

func TestConvertToOrder(t *testing.T) {
	s := newTestStore()

	order, err := s.ConvertToOrder("EST-2026-001")
	require.NoError(t, err)
	require.Equal(t, "ORD-2026-001", order.ID)
	require.Equal(t, "EST-2026-001", order.EstimateID)
	require.Equal(t, enum.OrderStatusPending, order.Status)
	require.Equal(t, enum.PaymentStatusPending, order.PaymentStatus)
	require.Equal(t, 2950.0, order.Total)
	require.Equal(t, "Acme Traders", order.Customer.Name)

	est, err := s.GetEstimate("EST-2026-001")
	require.NoError(t, err)
	require.Equal(t, enum.EstimateStatusConverted, est.Status)
	require.Equal(t, 2, est.Version)
	require.Equal(t, "Converted to ORD-2026-001", est.AuditTrail[len(est.AuditTrail)-1].Action)
}

func TestConvertToOrderTwiceConflicts(t *testing.T) {
	s := newTestStore()

	_, err := s.ConvertToOrder("EST-2026-001")
	require.NoError(t, err)

	_, err = s.ConvertToOrder("EST-2026-001")
	require.EqualError(t, err, "Estimate already converted")
	require.Len(t, s.ListOrders(false), 1)
}

func TestDeactivateEstimateHidesFromList(t *testing.T) {
	s := newTestStore()

	require.NoError(t, s.DeactivateEstimate("EST-2026-001"))
	require.Empty(t, s.ListEstimates(false))
	require.Len(t, s.ListEstimates(true), 1, "soft-deleted records stay retrievable")
}

func TestOrderStatusAudit(t *testing.T) {
	s := newTestStore()

	order, err := s.ConvertToOrder("EST-2026-001")
	require.NoError(t, err)

	paid := enum.PaymentStatusPaid
	updated, err := s.UpdateOrderStatus(order.ID, enum.OrderStatusCompleted, &paid)
	require.NoError(t, err)
	require.Equal(t, enum.OrderStatusCompleted, updated.Status)
	require.Equal(t, enum.PaymentStatusPaid, updated.PaymentStatus)
	require.Greater(t, len(updated.AuditTrail), 1)
}

func TestAddOrderDirect(t *testing.T) {
	s := newTestStore()

	order := s.AddOrder(entity.Order{
		Customer: entity.CustomerInfo{Name: "Walk-in"},
		Items:    []entity.LineItem{{Description: "Service charge", Quantity: 1, UnitPrice: 300, Total: 300}},
		Total:    300,
	})
	require.Equal(t, "ORD-2026-001", order.ID)
	require.Equal(t, enum.OrderStatusPending, order.Status)
	require.True(t, order.IsActive)
}
