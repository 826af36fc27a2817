package store

import (
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// EstimatePatch carries the updatable estimate fields; nil means unchanged
type EstimatePatch struct {
	Customer  *entity.CustomerInfo
	Items     *[]entity.LineItem
	Subtotal  *float64
	TaxAmount *float64
	Total     *float64
	Status    *enum.EstimateStatus
	Notes     *string
}

// AddEstimate creates an estimate with a generated id, version 1 and a
// "Created" audit entry. A caller-supplied id is kept as-is.
func (s *Store) AddEstimate(input entity.Estimate) entity.Estimate {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if input.ID == "" {
		input.ID = s.nextSequenceID(PrefixEstimate)
	}
	if input.Status == "" {
		input.Status = enum.EstimateStatusDraft
	}
	input.Version = 1
	input.Date = now
	input.CreatedAt = now
	input.IsActive = true
	input.AuditTrail = []entity.AuditEntry{{Action: "Created", At: now}}

	s.estimates = append(s.estimates, input)
	return input
}

// UpdateEstimate merges the patch, increments the version and appends an
// audit entry tagged with the action (default "Updated")
func (s *Store) UpdateEstimate(id string, patch EstimatePatch, action string) (entity.Estimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateEstimateLocked(id, patch, action)
}

func (s *Store) updateEstimateLocked(id string, patch EstimatePatch, action string) (entity.Estimate, error) {
	est := s.findEstimate(id)
	if est == nil {
		return entity.Estimate{}, apperror.NewNotFoundError("Estimate")
	}

	if patch.Customer != nil {
		est.Customer = *patch.Customer
	}
	if patch.Items != nil {
		est.Items = *patch.Items
	}
	if patch.Subtotal != nil {
		est.Subtotal = *patch.Subtotal
	}
	if patch.TaxAmount != nil {
		est.TaxAmount = *patch.TaxAmount
	}
	if patch.Total != nil {
		est.Total = *patch.Total
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return entity.Estimate{}, apperror.NewBadRequestError("Unknown estimate status")
		}
		est.Status = *patch.Status
	}
	if patch.Notes != nil {
		est.Notes = *patch.Notes
	}

	if action == "" {
		action = "Updated"
	}
	est.Version++
	est.AuditTrail = append(est.AuditTrail, entity.AuditEntry{Action: action, At: s.now()})

	return *est, nil
}

// DeactivateEstimate soft-deletes an estimate
func (s *Store) DeactivateEstimate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	est := s.findEstimate(id)
	if est == nil {
		return apperror.NewNotFoundError("Estimate")
	}
	est.IsActive = false
	est.AuditTrail = append(est.AuditTrail, entity.AuditEntry{Action: "Deactivated", At: s.now()})
	return nil
}

// GetEstimate returns the estimate with the given id
func (s *Store) GetEstimate(id string) (entity.Estimate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	est := s.findEstimate(id)
	if est == nil {
		return entity.Estimate{}, apperror.NewNotFoundError("Estimate")
	}
	return *est, nil
}

// ListEstimates returns all estimates, optionally including inactive ones
func (s *Store) ListEstimates(includeInactive bool) []entity.Estimate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Estimate, 0, len(s.estimates))
	for _, e := range s.estimates {
		if !includeInactive && !e.IsActive {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ConvertToOrder copies the estimate's customer, items and totals into a
// new pending order and marks the estimate Converted
func (s *Store) ConvertToOrder(estimateID string) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	est := s.findEstimate(estimateID)
	if est == nil {
		return entity.Order{}, apperror.NewNotFoundError("Estimate")
	}
	if est.Status == enum.EstimateStatusConverted {
		return entity.Order{}, apperror.NewConflictError("Estimate already converted")
	}

	now := s.now()
	order := entity.Order{
		ID:            s.nextSequenceID(PrefixOrder),
		EstimateID:    est.ID,
		Customer:      est.Customer,
		Items:         append([]entity.LineItem(nil), est.Items...),
		Total:         est.Total,
		Status:        enum.OrderStatusPending,
		PaymentStatus: enum.PaymentStatusPending,
		Date:          now,
		IsActive:      true,
		AuditTrail:    []entity.AuditEntry{{Action: "Created from " + est.ID, At: now}},
		CreatedAt:     now,
	}
	s.orders = append(s.orders, order)

	converted := enum.EstimateStatusConverted
	if _, err := s.updateEstimateLocked(est.ID, EstimatePatch{Status: &converted}, "Converted to "+order.ID); err != nil {
		return entity.Order{}, err
	}

	return order, nil
}

func (s *Store) findEstimate(id string) *entity.Estimate {
	for i := range s.estimates {
		if s.estimates[i].ID == id {
			return &s.estimates[i]
		}
	}
	return nil
}
