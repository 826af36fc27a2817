package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

func addTestRMA(s *Store) entity.RMARecord {
	return s.AddRMA(entity.RMARecord{
		Customer: entity.CustomerInfo{Name: "Acme Traders"},
		Product:  "Router TP-Link AX23",
		Reason:   "No power",
	})
}

func TestAddRMAStartsInInbox(t *testing.T) {
	s := newTestStore()

	rma := addTestRMA(s)
	require.Equal(t, "RMA-2026-001", rma.ID)
	require.Equal(t, enum.RMAStatusInbox, rma.Status)
	require.NotNil(t, rma.InboxDate)
	require.Len(t, rma.History, 1)
	require.Equal(t, "Received", rma.History[0].Note)
}

func TestRMAForwardOnlyChain(t *testing.T) {
	s := newTestStore()
	rma := addTestRMA(s)

	updated, err := s.UpdateRMAStatus(rma.ID, enum.RMAStatusInCompany)
	require.NoError(t, err)
	require.Equal(t, enum.RMAStatusInCompany, updated.Status)
	require.NotNil(t, updated.InCompanyDate)

	updated, err = s.UpdateRMAStatus(rma.ID, enum.RMAStatusOutbox)
	require.NoError(t, err)
	require.NotNil(t, updated.OutboxDate)

	_, err = s.UpdateRMAStatus(rma.ID, enum.RMAStatusInbox)
	require.EqualError(t, err, "Cannot move RMA back from Outbox to Inbox")
}

func TestRMARepeatStatusKeepsFirstDate(t *testing.T) {
	now := fixedNow
	clock := func() time.Time { return now }
	s := New(testSeed(), WithClock(clock))
	rma := addTestRMA(s)

	first, err := s.UpdateRMAStatus(rma.ID, enum.RMAStatusInCompany)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	second, err := s.UpdateRMAStatus(rma.ID, enum.RMAStatusInCompany)
	require.NoError(t, err)
	require.Equal(t, *first.InCompanyDate, *second.InCompanyDate, "status date stamps only once")
	require.Len(t, second.History, 3, "repeat moves still append history")
}

func TestRMAOTPLifecycle(t *testing.T) {
	s := newTestStore()
	rma := addTestRMA(s)

	require.EqualError(t, s.VerifyRMAOTP(rma.ID, "1234"), "No OTP generated for this RMA")

	otp, err := s.GenerateRMAOTP(rma.ID)
	require.NoError(t, err)
	require.Len(t, otp, 4)

	require.EqualError(t, s.VerifyRMAOTP(rma.ID, "0000"), "Incorrect OTP")
	require.NoError(t, s.VerifyRMAOTP(rma.ID, otp))

	// verification alone neither transitions nor consumes
	got, err := s.GetRMA(rma.ID)
	require.NoError(t, err)
	require.Equal(t, enum.RMAStatusInbox, got.Status)
	require.NoError(t, s.VerifyRMAOTP(rma.ID, otp))
}

func TestRMAOTPExpires(t *testing.T) {
	now := fixedNow
	clock := func() time.Time { return now }
	s := New(testSeed(), WithClock(clock))
	rma := addTestRMA(s)

	otp, err := s.GenerateRMAOTP(rma.ID)
	require.NoError(t, err)

	now = now.Add(25 * time.Hour)
	require.EqualError(t, s.VerifyRMAOTP(rma.ID, otp), "OTP expired")

	// a regenerated OTP is usable again
	otp, err = s.GenerateRMAOTP(rma.ID)
	require.NoError(t, err)
	require.NoError(t, s.VerifyRMAOTP(rma.ID, otp))
}

func TestDeliverRMA(t *testing.T) {
	s := newTestStore()
	rma := addTestRMA(s)

	_, err := s.UpdateRMAStatus(rma.ID, enum.RMAStatusInCompany)
	require.NoError(t, err)
	_, err = s.UpdateRMAStatus(rma.ID, enum.RMAStatusOutbox)
	require.NoError(t, err)

	otp, err := s.GenerateRMAOTP(rma.ID)
	require.NoError(t, err)

	_, err = s.DeliverRMA(rma.ID, "9999")
	require.EqualError(t, err, "Incorrect OTP")

	delivered, err := s.DeliverRMA(rma.ID, otp)
	require.NoError(t, err)
	require.Equal(t, enum.RMAStatusDelivered, delivered.Status)
	require.NotNil(t, delivered.DeliveredDate)
	require.Nil(t, delivered.OTPGeneratedAt, "delivery consumes the OTP")

	// OTP is gone, a second delivery attempt cannot verify
	_, err = s.DeliverRMA(rma.ID, otp)
	require.EqualError(t, err, "No OTP generated for this RMA")
}
