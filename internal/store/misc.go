package store

import (
	"strings"
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// --- addons ---

// AddAddon creates a billable add-on line (services, consumables)
func (s *Store) AddAddon(input entity.Addon) (entity.Addon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	input.ID = s.nextNumericID(colAddons)
	input.IsActive = true
	s.addons = append(s.addons, input)
	return input, nil
}

// UpdateAddon replaces the mutable addon fields
func (s *Store) UpdateAddon(id int, name, unit string, price, gst float64) (entity.Addon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.addons {
		if s.addons[i].ID == id {
			s.addons[i].Name = name
			s.addons[i].Unit = unit
			s.addons[i].Price = price
			s.addons[i].GST = gst
			return s.addons[i], nil
		}
	}
	return entity.Addon{}, apperror.NewNotFoundError("Addon")
}

// DeactivateAddon soft-deletes an addon
func (s *Store) DeactivateAddon(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.addons {
		if s.addons[i].ID == id {
			s.addons[i].IsActive = false
			return nil
		}
	}
	return apperror.NewNotFoundError("Addon")
}

// ListAddons returns addons, optionally including inactive ones
func (s *Store) ListAddons(includeInactive bool) []entity.Addon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Addon, 0, len(s.addons))
	for _, a := range s.addons {
		if !includeInactive && !a.IsActive {
			continue
		}
		out = append(out, a)
	}
	return out
}

// --- combinations ---

// AddCombination groups item ids used together. Parts must reference
// existing items.
func (s *Store) AddCombination(input entity.Combination) (entity.Combination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, part := range input.Parts {
		if s.findItem(part) == nil {
			return entity.Combination{}, apperror.NewNotFoundError("Item")
		}
	}

	input.ID = s.nextNumericID(colCombinations)
	input.IsActive = true
	input.Parts = append([]int(nil), input.Parts...)
	s.combinations = append(s.combinations, input)
	return input, nil
}

// DeactivateCombination soft-deletes a combination
func (s *Store) DeactivateCombination(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.combinations {
		if s.combinations[i].ID == id {
			s.combinations[i].IsActive = false
			return nil
		}
	}
	return apperror.NewNotFoundError("Combination")
}

// ListCombinations returns combinations, optionally including inactive ones
func (s *Store) ListCombinations(includeInactive bool) []entity.Combination {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Combination, 0, len(s.combinations))
	for _, c := range s.combinations {
		if !includeInactive && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out
}

// --- holidays ---

// AddHoliday records a company holiday. Date must be an ISO date
// (2006-01-02); duplicates on the same date are rejected.
func (s *Store) AddHoliday(date, name string) (entity.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return entity.Holiday{}, apperror.NewBadRequestError("Holiday date must be in YYYY-MM-DD format")
	}
	for _, h := range s.holidays {
		if h.Date == date {
			return entity.Holiday{}, apperror.NewConflictError("A holiday already exists on this date")
		}
	}

	holiday := entity.Holiday{
		ID:   s.nextNumericID(colHolidays),
		Date: date,
		Name: name,
	}
	s.holidays = append(s.holidays, holiday)
	return holiday, nil
}

// RemoveHoliday deletes a holiday. Holidays are removed outright, not
// soft-deleted; leave calculations read the live list.
func (s *Store) RemoveHoliday(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.holidays {
		if s.holidays[i].ID == id {
			s.holidays = append(s.holidays[:i], s.holidays[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFoundError("Holiday")
}

// ListHolidays returns holidays sorted by date
func (s *Store) ListHolidays() []entity.Holiday {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]entity.Holiday(nil), s.holidays...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && strings.Compare(out[j].Date, out[j-1].Date) < 0; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// --- notifications ---

// AddNotification records an in-app notification
func (s *Store) AddNotification(notifType, message string) entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNotificationLocked(notifType, message)
}

func (s *Store) addNotificationLocked(notifType, message string) entity.Notification {
	n := entity.Notification{
		ID:        s.nextNumericID(colNotifications),
		Type:      notifType,
		Message:   message,
		CreatedAt: s.now(),
	}
	s.notifications = append(s.notifications, n)
	return n
}

// MarkNotificationRead flags a notification as read
func (s *Store) MarkNotificationRead(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return nil
		}
	}
	return apperror.NewNotFoundError("Notification")
}

// ListNotifications returns notifications newest first, optionally
// filtered to unread
func (s *Store) ListNotifications(unreadOnly bool) []entity.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Notification, 0, len(s.notifications))
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if unreadOnly && s.notifications[i].IsRead {
			continue
		}
		out = append(out, s.notifications[i])
	}
	return out
}
