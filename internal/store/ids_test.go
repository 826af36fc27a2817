package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
)

func TestSequenceIDsPrimedFromSeed(t *testing.T) {
	s := newTestStore()

	// seed already holds EST-2026-001
	est := s.AddEstimate(entity.Estimate{Customer: entity.CustomerInfo{Name: "Next"}})
	require.Equal(t, "EST-2026-002", est.ID)
}

func TestSequenceIDsMonotonicAfterDeactivation(t *testing.T) {
	s := newTestStore()

	first := s.AddEstimate(entity.Estimate{Customer: entity.CustomerInfo{Name: "A"}})
	require.NoError(t, s.DeactivateEstimate(first.ID))

	second := s.AddEstimate(entity.Estimate{Customer: entity.CustomerInfo{Name: "B"}})
	require.Greater(t, second.ID, first.ID, "counters never reuse ids, even after deletion")
}

func TestSequenceIDsResetPerYear(t *testing.T) {
	now := fixedNow
	clock := func() time.Time { return now }
	s := New(testSeed(), WithClock(clock))

	ord := s.AddOrder(entity.Order{Customer: entity.CustomerInfo{Name: "A"}})
	require.Equal(t, "ORD-2026-001", ord.ID)

	now = now.AddDate(1, 0, 0)
	ord = s.AddOrder(entity.Order{Customer: entity.CustomerInfo{Name: "B"}})
	require.Equal(t, "ORD-2027-001", ord.ID)
}

func TestNumericIDsPrimedFromSeed(t *testing.T) {
	s := newTestStore()

	item, err := s.AddItem(entity.Item{
		Name: "New Part", Category: "Misc", PurchasePrice: 10, SellingPrice: 20, StockQty: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 3, item.ID, "seed tops out at item id 2")
}

func TestParseSequenceID(t *testing.T) {
	prefix, year, seq, ok := parseSequenceID("RMA-2026-017")
	require.True(t, ok)
	require.Equal(t, "RMA", prefix)
	require.Equal(t, 2026, year)
	require.Equal(t, 17, seq)

	_, _, _, ok = parseSequenceID("not-an-id-at-all")
	require.False(t, ok)
	_, _, _, ok = parseSequenceID("RMA-xx-01")
	require.False(t, ok)
}
