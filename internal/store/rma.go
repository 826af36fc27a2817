package store

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// OTPValidity is how long a generated RMA OTP remains usable
const OTPValidity = 24 * time.Hour

// AddRMA creates an RMA record in Inbox with its inbox date stamped
func (s *Store) AddRMA(input entity.RMARecord) entity.RMARecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	input.ID = s.nextSequenceID(PrefixRMA)
	input.Status = enum.RMAStatusInbox
	input.InboxDate = &now
	input.History = []entity.RMAHistoryEntry{{Status: enum.RMAStatusInbox, Note: "Received", At: now}}
	input.IsActive = true
	input.CreatedAt = now

	s.rmas = append(s.rmas, input)
	return input
}

// NextRMAStatus returns the single legal next status, or false when the
// current one is terminal or unknown
func (s *Store) NextRMAStatus(current enum.RMAStatus) (enum.RMAStatus, bool) {
	return current.Next()
}

// UpdateRMAStatus moves a record along the forward-only chain. The date
// field for each status is stamped the first time it is reached;
// reaching Delivered clears any outstanding OTP.
func (s *Store) UpdateRMAStatus(id string, status enum.RMAStatus) (entity.RMARecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateRMAStatusLocked(id, status)
}

func (s *Store) updateRMAStatusLocked(id string, status enum.RMAStatus) (entity.RMARecord, error) {
	rma := s.findRMA(id)
	if rma == nil {
		return entity.RMARecord{}, apperror.NewNotFoundError("RMA record")
	}
	if !status.Valid() {
		return entity.RMARecord{}, apperror.NewBadRequestError("Unknown RMA status")
	}
	if status.Before(rma.Status) {
		return entity.RMARecord{}, apperror.NewUnprocessableError(
			fmt.Sprintf("Cannot move RMA back from %s to %s", rma.Status, status))
	}

	now := s.now()
	prev := rma.Status
	rma.Status = status

	switch status {
	case enum.RMAStatusInbox:
		if rma.InboxDate == nil {
			rma.InboxDate = &now
		}
	case enum.RMAStatusInCompany:
		if rma.InCompanyDate == nil {
			rma.InCompanyDate = &now
		}
	case enum.RMAStatusOutbox:
		if rma.OutboxDate == nil {
			rma.OutboxDate = &now
		}
	case enum.RMAStatusDelivered:
		if rma.DeliveredDate == nil {
			rma.DeliveredDate = &now
		}
		rma.OTP = ""
		rma.OTPGeneratedAt = nil
	}

	rma.History = append(rma.History, entity.RMAHistoryEntry{
		Status: status,
		Note:   fmt.Sprintf("Moved from %s to %s", prev, status),
		At:     now,
	})

	return *rma, nil
}

// GenerateRMAOTP issues a fresh 4-digit OTP for the delivery handover,
// overwriting any previous unconsumed one
func (s *Store) GenerateRMAOTP(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rma := s.findRMA(id)
	if rma == nil {
		return "", apperror.NewNotFoundError("RMA record")
	}

	now := s.now()
	rma.OTP = fmt.Sprintf("%04d", rand.IntN(9000)+1000)
	rma.OTPGeneratedAt = &now
	rma.History = append(rma.History, entity.RMAHistoryEntry{Note: "Delivery OTP generated", At: now})

	return rma.OTP, nil
}

// VerifyRMAOTP checks the entered code against the stored one. Success
// does not transition the record or consume the OTP; callers follow up
// with UpdateRMAStatus, or use DeliverRMA which does both.
func (s *Store) VerifyRMAOTP(id, entered string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verifyRMAOTPLocked(id, entered)
}

func (s *Store) verifyRMAOTPLocked(id, entered string) error {
	rma := s.findRMA(id)
	if rma == nil {
		return apperror.NewNotFoundError("RMA record")
	}
	if rma.OTP == "" || rma.OTPGeneratedAt == nil {
		return apperror.NewBadRequestError("No OTP generated for this RMA")
	}
	if entered != rma.OTP {
		return apperror.NewUnprocessableError("Incorrect OTP")
	}
	if s.now().Sub(*rma.OTPGeneratedAt) > OTPValidity {
		return apperror.NewUnprocessableError("OTP expired")
	}
	return nil
}

// DeliverRMA atomically verifies the OTP and moves the record to
// Delivered, closing the two-call gap between verification and
// transition
func (s *Store) DeliverRMA(id, entered string) (entity.RMARecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.verifyRMAOTPLocked(id, entered); err != nil {
		return entity.RMARecord{}, err
	}
	return s.updateRMAStatusLocked(id, enum.RMAStatusDelivered)
}

// GetRMA returns the record with the given id
func (s *Store) GetRMA(id string) (entity.RMARecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rma := s.findRMA(id)
	if rma == nil {
		return entity.RMARecord{}, apperror.NewNotFoundError("RMA record")
	}
	return *rma, nil
}

// ListRMAs returns all records
func (s *Store) ListRMAs() []entity.RMARecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.RMARecord(nil), s.rmas...)
}

func (s *Store) findRMA(id string) *entity.RMARecord {
	for i := range s.rmas {
		if s.rmas[i].ID == id {
			return &s.rmas[i]
		}
	}
	return nil
}
