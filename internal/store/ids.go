package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Display id prefixes
const (
	PrefixEstimate    = "EST"
	PrefixOrder       = "ORD"
	PrefixAMC         = "AMC"
	PrefixJob         = "JOB"
	PrefixRMA         = "RMA"
	PrefixTransaction = "STK"
)

// Numeric id collections
const (
	colItems         = "items"
	colUsers         = "users"
	colRoles         = "roles"
	colDepartments   = "departments"
	colAddons        = "addons"
	colCombinations  = "combinations"
	colLeaves        = "leaves"
	colHolidays      = "holidays"
	colAdminRequests = "admin_requests"
	colNotifications = "notifications"
)

// nextSequenceID returns the next PREFIX-{year}-{seq:03d} id for the
// current calendar year. Counters are explicit state primed from the
// seed, so generation stays monotonic even when collections are
// filtered or sparse. Callers must hold the write lock.
func (s *Store) nextSequenceID(prefix string) string {
	year := s.now().Year()
	if s.seq[prefix] == nil {
		s.seq[prefix] = make(map[int]int)
	}
	s.seq[prefix][year]++
	return fmt.Sprintf("%s-%d-%03d", prefix, year, s.seq[prefix][year])
}

// nextNumericID returns the next numeric id for a collection. Callers
// must hold the write lock.
func (s *Store) nextNumericID(collection string) int {
	s.nextID[collection]++
	return s.nextID[collection]
}

// primeSequences rebuilds the per-prefix per-year counters from the ids
// already present in the collections
func (s *Store) primeSequences() {
	s.seq = make(map[string]map[int]int)

	record := func(id string) {
		prefix, year, n, ok := parseSequenceID(id)
		if !ok {
			return
		}
		if s.seq[prefix] == nil {
			s.seq[prefix] = make(map[int]int)
		}
		if n > s.seq[prefix][year] {
			s.seq[prefix][year] = n
		}
	}

	for _, e := range s.estimates {
		record(e.ID)
	}
	for _, o := range s.orders {
		record(o.ID)
	}
	for _, c := range s.contracts {
		record(c.ID)
	}
	for _, j := range s.jobs {
		record(j.ID)
	}
	for _, r := range s.rmas {
		record(r.ID)
	}
	for _, t := range s.transactions {
		record(t.ID)
	}
}

// primeNumericIDs rebuilds the per-collection numeric counters from the
// highest id present in each collection
func (s *Store) primeNumericIDs() {
	s.nextID = make(map[string]int)

	max := func(collection string, id int) {
		if id > s.nextID[collection] {
			s.nextID[collection] = id
		}
	}

	for _, it := range s.items {
		max(colItems, it.ID)
	}
	for _, u := range s.users {
		max(colUsers, u.ID)
	}
	for _, r := range s.roles {
		max(colRoles, r.ID)
	}
	for _, d := range s.departments {
		max(colDepartments, d.ID)
	}
	for _, a := range s.addons {
		max(colAddons, a.ID)
	}
	for _, c := range s.combinations {
		max(colCombinations, c.ID)
	}
	for _, l := range s.leaves {
		max(colLeaves, l.ID)
	}
	for _, h := range s.holidays {
		max(colHolidays, h.ID)
	}
	for _, r := range s.adminRequests {
		max(colAdminRequests, r.ID)
	}
	for _, n := range s.notifications {
		max(colNotifications, n.ID)
	}
}

// parseSequenceID splits PREFIX-{year}-{seq} ids; ok is false for ids in
// any other shape
func parseSequenceID(id string) (prefix string, year, seq int, ok bool) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return "", 0, 0, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, false
	}
	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, false
	}
	return parts[0], year, seq, true
}
