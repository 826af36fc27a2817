package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

func TestIssueStockReducesAvailable(t *testing.T) {
	s := newTestStore()

	txn, err := s.IssueStock(IssueStockInput{ItemID: 1, UserID: 7, Quantity: 6})
	require.NoError(t, err)
	require.Equal(t, "STK-2026-001", txn.ID)
	require.Equal(t, enum.TransactionTypeIssue, txn.Type)
	require.Equal(t, enum.TransactionStatusIssued, txn.Status)

	require.Equal(t, 4, s.AvailableStock(1))

	low := s.LowStockItems()
	ids := make([]int, 0, len(low))
	for _, it := range low {
		ids = append(ids, it.ID)
	}
	require.Contains(t, ids, 1, "item 1 should be at or below its reorder level")
}

func TestIssueStockInsufficient(t *testing.T) {
	s := newTestStore()

	_, err := s.IssueStock(IssueStockInput{ItemID: 1, UserID: 7, Quantity: 6})
	require.NoError(t, err)

	_, err = s.IssueStock(IssueStockInput{ItemID: 1, UserID: 7, Quantity: 5})
	require.Error(t, err)
	require.EqualError(t, err, "Only 4 units available")
	require.Equal(t, 4, s.AvailableStock(1), "failed issue must not change available stock")
}

func TestIssueStockUnknownItemOrUser(t *testing.T) {
	s := newTestStore()

	_, err := s.IssueStock(IssueStockInput{ItemID: 999, UserID: 7, Quantity: 1})
	require.True(t, apperror.IsNotFound(err))

	_, err = s.IssueStock(IssueStockInput{ItemID: 1, UserID: 999, Quantity: 1})
	require.True(t, apperror.IsNotFound(err))
}

func TestReturnStockConservation(t *testing.T) {
	s := newTestStore()

	_, err := s.IssueStock(IssueStockInput{ItemID: 1, UserID: 8, Quantity: 4})
	require.NoError(t, err)
	require.Equal(t, 4, s.UserStockForItem(8, 1))
	require.Equal(t, 6, s.AvailableStock(1))

	_, err = s.ReturnStock(ReturnStockInput{ItemID: 1, UserID: 8, Quantity: 3, Condition: "good"})
	require.NoError(t, err)
	require.Equal(t, 1, s.UserStockForItem(8, 1))
	require.Equal(t, 9, s.AvailableStock(1))

	// available + sum of holdings must equal the on-hand quantity
	item, err := s.GetItem(1)
	require.NoError(t, err)
	require.Equal(t, item.StockQty, s.AvailableStock(1)+s.UserStockForItem(8, 1))
}

func TestReturnStockExceedsHolding(t *testing.T) {
	s := newTestStore()

	_, err := s.IssueStock(IssueStockInput{ItemID: 1, UserID: 8, Quantity: 2})
	require.NoError(t, err)

	_, err = s.ReturnStock(ReturnStockInput{ItemID: 1, UserID: 8, Quantity: 3})
	require.EqualError(t, err, "Cannot return 3 units, only 2 held")
}

func TestUserStockFoldsSerialNumbers(t *testing.T) {
	s := newTestStore()

	_, err := s.IssueStock(IssueStockInput{
		ItemID: 1, UserID: 8, Quantity: 3,
		SerialNumbers: []string{"SN-A", "SN-B", "SN-C"},
	})
	require.NoError(t, err)

	_, err = s.ReturnStock(ReturnStockInput{
		ItemID: 1, UserID: 8, Quantity: 1,
		SerialNumbers: []string{"SN-B"},
	})
	require.NoError(t, err)

	holdings := s.UserStock(8)
	require.Len(t, holdings, 1)
	require.Equal(t, 1, holdings[0].ItemID)
	require.Equal(t, 2, holdings[0].Quantity)
	require.ElementsMatch(t, []string{"SN-A", "SN-C"}, holdings[0].SerialNumbers)
}

func TestUserStockDropsEmptyHoldings(t *testing.T) {
	s := newTestStore()

	_, err := s.IssueStock(IssueStockInput{ItemID: 1, UserID: 8, Quantity: 2})
	require.NoError(t, err)
	_, err = s.ReturnStock(ReturnStockInput{ItemID: 1, UserID: 8, Quantity: 2})
	require.NoError(t, err)

	require.Empty(t, s.UserStock(8))
}

func TestStockValuationBlended(t *testing.T) {
	s := newTestStore()

	fifo, err := s.StockValuation(enum.ValuationFIFO)
	require.NoError(t, err)
	// item 1: 10 * 500, item 2: 3 * 2000
	require.Equal(t, 11000.0, fifo.TotalValue)
	require.Len(t, fifo.Lines, 2)

	lifo, err := s.StockValuation(enum.ValuationLIFO)
	require.NoError(t, err)
	require.Equal(t, fifo.TotalValue, lifo.TotalValue, "no batch history, both methods value identically")

	_, err = s.StockValuation(enum.ValuationMethod("WAVG"))
	require.Error(t, err)
}

func TestStockSummaryByCategory(t *testing.T) {
	s := newTestStore()

	_, err := s.IssueStock(IssueStockInput{ItemID: 1, UserID: 7, Quantity: 2})
	require.NoError(t, err)

	summary := s.StockSummaryByCategory()
	require.Len(t, summary, 2)
	require.Equal(t, "Peripherals", summary[0].Category)
	require.Equal(t, 1, summary[0].ItemCount)
	require.Equal(t, 10, summary[0].TotalStock)
	require.Equal(t, 2, summary[0].TotalIssue)
	require.Equal(t, 4000.0, summary[0].Value)
}

func TestLedgerNewestFirst(t *testing.T) {
	s := newTestStore()

	_, err := s.IssueStock(IssueStockInput{ItemID: 1, UserID: 7, Quantity: 1})
	require.NoError(t, err)
	_, err = s.IssueStock(IssueStockInput{ItemID: 1, UserID: 7, Quantity: 2})
	require.NoError(t, err)

	txns := s.ListTransactions()
	require.Len(t, txns, 2)
	require.Equal(t, "STK-2026-002", txns[0].ID)
	require.Equal(t, "STK-2026-001", txns[1].ID)
}
