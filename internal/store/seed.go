package store

import (
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
)

// Seed holds the initial contents of every collection
type Seed struct {
	Items         []entity.Item
	Users         []entity.User
	Roles         []entity.Role
	Departments   []entity.Department
	Estimates     []entity.Estimate
	Orders        []entity.Order
	Addons        []entity.Addon
	Combinations  []entity.Combination
	Contracts     []entity.AMCContract
	Jobs          []entity.Job
	RMAs          []entity.RMARecord
	Transactions  []entity.StockTransaction
	Leaves        []entity.LeaveRequest
	Holidays      []entity.Holiday
	AdminRequests []entity.AdminRequest
	Notifications []entity.Notification
}

// Built-in role names
const (
	RoleAdmin      = "Admin"
	RoleManager    = "Manager"
	RoleTechnician = "Technician"
	RoleSales      = "Sales"
)

// DefaultSeed returns the demo dataset the server boots with when no
// fixture file is supplied
func DefaultSeed() Seed {
	t := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

	return Seed{
		Roles: []entity.Role{
			{ID: 1, Name: RoleAdmin, IsBuiltIn: true, IsActive: true, Permissions: []string{
				"inventory:read", "inventory:write", "stock:issue", "stock:return",
				"estimates:read", "estimates:write", "orders:read", "orders:write",
				"amc:read", "amc:write", "jobs:read", "jobs:write",
				"rma:read", "rma:write", "leave:read", "leave:write", "leave:approve",
				"users:read", "users:write", "settings:write", "reports:read",
			}},
			{ID: 2, Name: RoleManager, IsBuiltIn: true, IsActive: true, Permissions: []string{
				"inventory:read", "inventory:write", "stock:issue", "stock:return",
				"estimates:read", "estimates:write", "orders:read", "orders:write",
				"amc:read", "amc:write", "jobs:read", "jobs:write",
				"rma:read", "rma:write", "leave:read", "leave:approve", "reports:read",
			}},
			{ID: 3, Name: RoleTechnician, IsBuiltIn: true, IsActive: true, Permissions: []string{
				"inventory:read", "stock:issue", "stock:return",
				"jobs:read", "jobs:write", "rma:read", "rma:write", "leave:read", "leave:write",
			}},
			{ID: 4, Name: RoleSales, IsBuiltIn: true, IsActive: true, Permissions: []string{
				"inventory:read", "estimates:read", "estimates:write",
				"orders:read", "orders:write", "amc:read", "leave:read", "leave:write",
			}},
		},
		Departments: []entity.Department{
			{ID: 1, Name: "Service", IsActive: true},
			{ID: 2, Name: "Sales", IsActive: true},
			{ID: 3, Name: "Accounts", IsActive: true},
		},
		Items: []entity.Item{
			{
				ID: 1, SKU: "SKU-8C41F2A0", PartID: "KB-LOG-K120", Name: "Logitech K120 Keyboard",
				Category: "Peripherals", Brand: "Logitech", Unit: "pcs",
				PurchasePrice: 650, SellingPrice: 899, StockQty: 24, ReorderLevel: 10,
				IsActive: true, CreatedAt: t, UpdatedAt: t,
			},
			{
				ID: 2, SKU: "SKU-1D9B03E7", PartID: "SSD-WD-480", Name: "WD Green 480GB SSD",
				Category: "Storage", Brand: "Western Digital", Unit: "pcs",
				PurchasePrice: 2100, SellingPrice: 2650, StockQty: 12, ReorderLevel: 5,
				IsActive: true, CreatedAt: t, UpdatedAt: t,
			},
			{
				ID: 3, SKU: "SKU-5A77C9D4", PartID: "RAM-CRU-8G", Name: "Crucial 8GB DDR4 RAM",
				Category: "Memory", Brand: "Crucial", Unit: "pcs",
				PurchasePrice: 1550, SellingPrice: 1950, StockQty: 4,
				IsActive: true, CreatedAt: t, UpdatedAt: t,
			},
			{
				ID: 4, SKU: "SKU-E20B6613", PartID: "PSU-COR-450", Name: "Corsair CV450 PSU",
				Category: "Power", Brand: "Corsair", Unit: "pcs",
				PurchasePrice: 2400, SellingPrice: 2950, StockQty: 7, ReorderLevel: 3,
				IsActive: true, CreatedAt: t, UpdatedAt: t,
			},
		},
		Users: []entity.User{
			{
				ID: 1, Name: "Priya Nair", Email: "priya@opsdesk.local", Password: "admin123",
				Role: RoleAdmin, Department: "Service", IsAdmin: true, Registered: true, IsActive: true,
				LeaveBalance: map[string]float64{"Casual": 12, "Sick": 8},
				CreatedAt:    t,
			},
			{
				ID: 2, Name: "Arun Menon", Email: "arun@opsdesk.local", Password: "tech123",
				Role: RoleTechnician, Department: "Service", Registered: true, IsActive: true,
				LeaveBalance: map[string]float64{"Casual": 12, "Sick": 8},
				CreatedAt:    t,
			},
			{
				ID: 3, Name: "Divya Pillai", Email: "divya@opsdesk.local",
				Role: RoleSales, Department: "Sales", Registered: false, IsActive: true,
				LeaveBalance: map[string]float64{"Casual": 12, "Sick": 8},
				CreatedAt:    t,
			},
		},
		Addons: []entity.Addon{
			{ID: 1, Name: "On-site installation", Unit: "visit", Price: 500, GST: 18, IsActive: true},
			{ID: 2, Name: "Data migration", Unit: "job", Price: 1200, GST: 18, IsActive: true},
		},
		Combinations: []entity.Combination{
			{ID: 1, Name: "Desktop upgrade kit", Parts: []int{2, 3}, IsActive: true},
		},
		Holidays: []entity.Holiday{
			{ID: 1, Date: "2026-01-26", Name: "Republic Day"},
			{ID: 2, Date: "2026-08-15", Name: "Independence Day"},
			{ID: 3, Date: "2026-10-02", Name: "Gandhi Jayanti"},
		},
		Estimates: []entity.Estimate{
			{
				ID:       "EST-2026-001",
				Customer: entity.CustomerInfo{Name: "Kairali Traders", Phone: "9847012345"},
				Items: []entity.LineItem{
					{ItemID: 2, Description: "WD Green 480GB SSD", Quantity: 2, UnitPrice: 2650, GST: 18, Total: 6254},
				},
				Subtotal: 5300, TaxAmount: 954, Total: 6254,
				Status: enum.EstimateStatusSent, Version: 1,
				Date: t, IsActive: true, CreatedAt: t,
				AuditTrail: []entity.AuditEntry{{Action: "Created", At: t}},
			},
		},
		Contracts: []entity.AMCContract{
			{
				ID: "AMC-2026-001", QRCodeID: "AMC-2026-001-HPX774421",
				Customer:     entity.CustomerInfo{Name: "Sree Clinic", Phone: "9895044332"},
				DeviceSerial: "HPX774421", DeviceModel: "HP LaserJet M126",
				StartDate:    time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
				EndDate:      time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
				Amount:       4500, Status: enum.AMCStatusActive,
				RenewalReminders: []entity.RenewalReminder{{DaysBefore: 30}, {DaysBefore: 7}},
				ServiceHistory:   []entity.ServiceRecord{},
				IsActive:         true, CreatedAt: t,
			},
		},
		Jobs: []entity.Job{
			{
				ID:       "JOB-2026-001",
				Customer: entity.CustomerInfo{Name: "Nisha Varma", Phone: "9745123987"},
				Device:   "Dell Inspiron 3501", SerialNumber: "DL3501X88",
				Issue:  "No display on boot",
				Status: enum.JobStatusInProgress, AssignedTo: 2,
				CreatedDate: t, IsActive: true,
			},
		},
	}
}
