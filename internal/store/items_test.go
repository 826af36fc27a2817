package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
)

func TestAddItemRejectsUnderwaterPrice(t *testing.T) {
	s := newTestStore()

	_, err := s.AddItem(entity.Item{
		Name: "Loss Leader", Category: "Misc",
		PurchasePrice: 100, SellingPrice: 90, StockQty: 1,
	})
	require.EqualError(t, err, "Selling price cannot be below purchase price")
}

func TestUpdateItemCrossValidatesPrices(t *testing.T) {
	s := newTestStore()

	// item 1 sells at 700; a purchase price above that must be rejected
	purchase := 800.0
	_, err := s.UpdateItem(1, ItemPatch{PurchasePrice: &purchase}, nil)
	require.Error(t, err)

	// raising both together is fine
	selling := 950.0
	updated, err := s.UpdateItem(1, ItemPatch{PurchasePrice: &purchase, SellingPrice: &selling}, []entity.AuditEntry{
		{Action: "Updated", Field: "prices", By: "Asha"},
	})
	require.NoError(t, err)
	require.Equal(t, 800.0, updated.PurchasePrice)
	require.Equal(t, 950.0, updated.SellingPrice)
	require.Equal(t, "prices", updated.AuditTrail[len(updated.AuditTrail)-1].Field)
	require.False(t, updated.AuditTrail[len(updated.AuditTrail)-1].At.IsZero())
}

func TestDeactivateItemKeepsLedgerHistory(t *testing.T) {
	s := newTestStore()

	_, err := s.IssueStock(IssueStockInput{ItemID: 1, UserID: 7, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, s.DeactivateItem(1))
	require.Len(t, s.ListItems(false), 1)
	require.Len(t, s.ListItems(true), 2)
	require.Len(t, s.ListTransactions(), 1, "ledger survives item deactivation")

	_, err = s.GetItem(1)
	require.NoError(t, err, "inactive items stay readable by id")
}

func TestEffectiveReorderLevelDefault(t *testing.T) {
	s := newTestStore()

	// item 2 has no reorder level configured; default is 5 and stock is 3
	low := s.LowStockItems()
	ids := make([]int, 0, len(low))
	for _, it := range low {
		ids = append(ids, it.ID)
	}
	require.Contains(t, ids, 2)
	require.NotContains(t, ids, 1, "10 available against level 5 is not low")
}
