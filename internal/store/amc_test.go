package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

func addTestAMC(s *Store, endDate time.Time) entity.AMCContract {
	return s.AddAMC(entity.AMCContract{
		Customer:     entity.CustomerInfo{Name: "Sree Clinic"},
		DeviceSerial: "HPX774421",
		DeviceModel:  "HP LaserJet M126",
		StartDate:    endDate.AddDate(-1, 0, 0),
		EndDate:      endDate,
		Amount:       4500,
	})
}

func TestAddAMCDerivesQRCode(t *testing.T) {
	s := newTestStore()

	amc := addTestAMC(s, fixedNow.AddDate(0, 6, 0))
	require.Equal(t, "AMC-2026-001", amc.ID)
	require.Equal(t, "AMC-2026-001-HPX774421", amc.QRCodeID)
	require.Equal(t, enum.AMCStatusActive, amc.Status)
	require.Len(t, amc.RenewalReminders, 2)
	require.False(t, amc.RenewalReminders[0].Sent)
}

func TestIsAMCActive(t *testing.T) {
	s := newTestStore()

	current := addTestAMC(s, fixedNow.AddDate(0, 1, 0))
	require.True(t, s.IsAMCActive(current))

	// an end date of today still counts as in force
	today := addTestAMC(s, fixedNow)
	require.True(t, s.IsAMCActive(today))

	expired := addTestAMC(s, fixedNow.AddDate(0, 0, -1))
	require.False(t, s.IsAMCActive(expired))
}

func TestUpcomingRenewals(t *testing.T) {
	s := newTestStore()

	soon := addTestAMC(s, fixedNow.AddDate(0, 0, 10))
	addTestAMC(s, fixedNow.AddDate(0, 6, 0))
	addTestAMC(s, fixedNow.AddDate(0, 0, -5))

	due := s.UpcomingRenewals(0)
	require.Len(t, due, 1)
	require.Equal(t, soon.ID, due[0].ID)

	due = s.UpcomingRenewals(200)
	require.Len(t, due, 2, "expired contracts never show up as renewals")
}

func TestRenewAMC(t *testing.T) {
	s := newTestStore()

	amc := addTestAMC(s, fixedNow.AddDate(0, 0, 10))
	_, err := s.MarkReminderSent(amc.ID, 0)
	require.NoError(t, err)

	oldEnd := amc.EndDate
	newEnd := oldEnd.AddDate(1, 0, 0)
	amount := 5000.0
	renewed, err := s.RenewAMC(amc.ID, newEnd, &amount)
	require.NoError(t, err)
	require.Equal(t, oldEnd, renewed.StartDate, "old end date becomes the new start")
	require.Equal(t, newEnd, renewed.EndDate)
	require.Equal(t, 5000.0, renewed.Amount)
	require.False(t, renewed.RenewalReminders[0].Sent, "reminders reset on renewal")

	_, err = s.RenewAMC(amc.ID, oldEnd, nil)
	require.Error(t, err, "new end date must extend the contract")
}

func TestConvertOrderToAMC(t *testing.T) {
	s := newTestStore()

	order, err := s.ConvertToOrder("EST-2026-001")
	require.NoError(t, err)

	amc, err := s.ConvertOrderToAMC(order.ID, entity.AMCContract{
		DeviceSerial: "SSD-991",
		StartDate:    fixedNow,
		EndDate:      fixedNow.AddDate(1, 0, 0),
		Amount:       3000,
	})
	require.NoError(t, err)
	require.Equal(t, order.ID, amc.OrderID)
	require.Equal(t, "Acme Traders", amc.Customer.Name, "customer carries over from the order")

	got, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	require.Equal(t, enum.OrderStatusAMCConverted, got.Status)
	require.Equal(t, amc.ID, got.AMCID)

	_, err = s.ConvertOrderToAMC(order.ID, entity.AMCContract{DeviceSerial: "X"})
	require.EqualError(t, err, "Order already converted to AMC")
}

func TestAddServiceRecord(t *testing.T) {
	s := newTestStore()

	amc := addTestAMC(s, fixedNow.AddDate(1, 0, 0))
	updated, err := s.AddServiceRecord(amc.ID, entity.ServiceRecord{
		Description: "Quarterly cleaning",
		Technician:  "Arun",
	})
	require.NoError(t, err)
	require.Len(t, updated.ServiceHistory, 1)
	require.Equal(t, fixedNow, updated.ServiceHistory[0].Date, "missing date defaults to now")
}
