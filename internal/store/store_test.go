package store

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

// fixedNow is the frozen clock used by all store tests: Monday
// 2026-03-02 10:00 UTC
var fixedNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestStore(opts ...Option) *Store {
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	return New(testSeed(), opts...)
}

func testSeed() Seed {
	t := fixedNow.AddDate(0, -1, 0)
	return Seed{
		Roles: []entity.Role{
			{ID: 1, Name: RoleAdmin, IsBuiltIn: true, IsActive: true, Permissions: []string{"inventory:write", "leave:approve"}},
			{ID: 2, Name: RoleTechnician, IsBuiltIn: true, IsActive: true, Permissions: []string{"inventory:read"}},
		},
		Departments: []entity.Department{
			{ID: 1, Name: "Service", IsActive: true},
		},
		Items: []entity.Item{
			{
				ID: 1, SKU: "SKU-TEST0001", Name: "Test Keyboard", Category: "Peripherals",
				PurchasePrice: 500, SellingPrice: 700, StockQty: 10, ReorderLevel: 5,
				IsActive: true, CreatedAt: t, UpdatedAt: t,
			},
			{
				ID: 2, SKU: "SKU-TEST0002", Name: "Test SSD", Category: "Storage",
				PurchasePrice: 2000, SellingPrice: 2500, StockQty: 3,
				IsActive: true, CreatedAt: t, UpdatedAt: t,
			},
		},
		Users: []entity.User{
			{
				ID: 7, Name: "Asha", Email: "asha@test.local", Password: "secret1",
				Role: RoleAdmin, IsAdmin: true, Registered: true, IsActive: true,
				LeaveBalance: map[string]float64{"Casual": 10},
				CreatedAt:    t,
			},
			{
				ID: 8, Name: "Ravi", Email: "ravi@test.local", Password: "secret2",
				Role: RoleTechnician, Registered: true, IsActive: true,
				LeaveBalance: map[string]float64{"Casual": 10, "Sick": 5},
				CreatedAt:    t,
			},
			{
				ID: 9, Name: "Meera", Email: "meera@test.local",
				Role: RoleTechnician, Registered: false, IsActive: true,
				CreatedAt: t,
			},
		},
		Holidays: []entity.Holiday{
			{ID: 1, Date: "2026-03-25", Name: "Test Holiday"},
		},
		Estimates: []entity.Estimate{
			{
				ID:       "EST-2026-001",
				Customer: entity.CustomerInfo{Name: "Acme Traders"},
				Items: []entity.LineItem{
					{ItemID: 2, Description: "Test SSD", Quantity: 1, UnitPrice: 2500, GST: 18, Total: 2950},
				},
				Subtotal: 2500, TaxAmount: 450, Total: 2950,
				Status: enum.EstimateStatusDraft, Version: 1,
				Date: t, IsActive: true, CreatedAt: t,
			},
		},
	}
}
