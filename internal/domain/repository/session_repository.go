package repository

import (
	"context"

	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// SessionRepository define el puerto de persistencia para sesiones. Sobrevive
// reinicios del proceso: Restore del Session Manager re-resuelve contra esto.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.SessionRecord) error
	GetByID(ctx context.Context, id string) (*entity.SessionRecord, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
