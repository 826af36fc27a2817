package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/repository"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// SettingsService handles the durable configuration keys: company
// profile, invoice numbering, tax defaults. These survive restarts;
// nothing else does.
type SettingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the raw JSON value stored under a key
func (s *SettingsService) Get(ctx context.Context, key string) (*entity.Setting, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, apperror.NewNotFoundError("Setting")
	}
	return setting, nil
}

// GetInto unmarshals the value stored under a key into out
func (s *SettingsService) GetInto(ctx context.Context, key string, out any) error {
	setting, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(setting.Value), out); err != nil {
		return apperror.NewAppError(500, "Corrupt setting value for "+key)
	}
	return nil
}

// Put stores a JSON-serializable value under a key
func (s *SettingsService) Put(ctx context.Context, key string, value any) (*entity.Setting, error) {
	if key == "" {
		return nil, apperror.NewBadRequestError("Setting key is required")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, apperror.NewBadRequestError("Setting value must be JSON-serializable")
	}
	setting := &entity.Setting{Key: key, Value: string(raw), UpdatedAt: time.Now()}
	if err := s.repo.Put(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

// List returns all settings
func (s *SettingsService) List(ctx context.Context) ([]entity.Setting, error) {
	return s.repo.List(ctx)
}

// Delete removes a setting
func (s *SettingsService) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}
