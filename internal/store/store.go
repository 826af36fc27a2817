// Package store holds every entity collection for the lifetime of the
// process and is the only sanctioned way to read or mutate them. All
// state is seeded from fixtures and lost on restart; only the settings
// key-value keys (owned elsewhere) survive.
package store

import (
	"sync"
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
)

// Store aggregates the in-memory entity collections. A single mutex
// serializes operations so each one runs start-to-finish against a
// consistent view, matching the one-operation-at-a-time execution model
// the collections were designed for.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	items         []entity.Item
	users         []entity.User
	roles         []entity.Role
	departments   []entity.Department
	estimates     []entity.Estimate
	orders        []entity.Order
	addons        []entity.Addon
	combinations  []entity.Combination
	contracts     []entity.AMCContract
	jobs          []entity.Job
	rmas          []entity.RMARecord
	transactions  []entity.StockTransaction // newest first
	leaves        []entity.LeaveRequest
	holidays      []entity.Holiday
	adminRequests []entity.AdminRequest
	notifications []entity.Notification

	// per-prefix per-year counters for display ids (EST-2026-004, ...)
	seq map[string]map[int]int
	// per-collection counters for numeric ids
	nextID map[string]int
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the store's time source
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New builds a store from seed data
func New(seed Seed, opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.load(seed)
	return s
}

// Reset discards all collections and reloads the given seed
func (s *Store) Reset(seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(seed)
}

func (s *Store) load(seed Seed) {
	s.items = append([]entity.Item(nil), seed.Items...)
	s.users = append([]entity.User(nil), seed.Users...)
	s.roles = append([]entity.Role(nil), seed.Roles...)
	s.departments = append([]entity.Department(nil), seed.Departments...)
	s.estimates = append([]entity.Estimate(nil), seed.Estimates...)
	s.orders = append([]entity.Order(nil), seed.Orders...)
	s.addons = append([]entity.Addon(nil), seed.Addons...)
	s.combinations = append([]entity.Combination(nil), seed.Combinations...)
	s.contracts = append([]entity.AMCContract(nil), seed.Contracts...)
	s.jobs = append([]entity.Job(nil), seed.Jobs...)
	s.rmas = append([]entity.RMARecord(nil), seed.RMAs...)
	s.transactions = append([]entity.StockTransaction(nil), seed.Transactions...)
	s.leaves = append([]entity.LeaveRequest(nil), seed.Leaves...)
	s.holidays = append([]entity.Holiday(nil), seed.Holidays...)
	s.adminRequests = append([]entity.AdminRequest(nil), seed.AdminRequests...)
	s.notifications = append([]entity.Notification(nil), seed.Notifications...)
	s.primeSequences()
	s.primeNumericIDs()
}
