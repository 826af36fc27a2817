package repository

import (
	"context"

	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
)

// SettingsRepository defines the interface for durable settings access.
// Settings are the only state that survives a restart; everything else
// lives in the in-memory store.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (*entity.Setting, error)
	Put(ctx context.Context, setting *entity.Setting) error
	List(ctx context.Context) ([]entity.Setting, error)
	Delete(ctx context.Context, key string) error
}
