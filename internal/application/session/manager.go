package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
	"github.com/jhoicas/Negocios-api/internal/domain/repository"
)

// Manager administra las sesiones: las persiste para sobrevivir reinicios,
// cachea el snapshot de capacidades efectivas calculado al crearlas y es el
// ÚNICO escritor de ese estado. Los snapshots son inmutables después de
// construidos: un guard siempre observa una sesión completa, nunca una a
// medio actualizar.
type Manager struct {
	mu    sync.RWMutex
	cache map[string]*authz.Session // snapshot por session id

	sessions   repository.SessionRepository
	users      repository.UserRepository
	businesses repository.BusinessRepository
	ttl        time.Duration
}

// NewManager construye el manager de sesiones.
func NewManager(sessions repository.SessionRepository, users repository.UserRepository, businesses repository.BusinessRepository, ttl time.Duration) *Manager {
	return &Manager{
		cache:      make(map[string]*authz.Session),
		sessions:   sessions,
		users:      users,
		businesses: businesses,
		ttl:        ttl,
	}
}

// Start crea y persiste una sesión para el usuario en su negocio, calculando
// las capacidades efectivas una sola vez (no en cada check).
func (m *Manager) Start(ctx context.Context, user *entity.User, business *entity.Business) (*authz.Session, error) {
	now := time.Now()
	record := &entity.SessionRecord{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		BusinessID: business.ID,
		IssuedAt:   now,
		ExpiresAt:  now.Add(m.ttl),
	}
	if err := m.sessions.Create(ctx, record); err != nil {
		return nil, err
	}
	sess := buildSession(record, user, business)
	m.mu.Lock()
	m.cache[sess.ID] = sess
	m.mu.Unlock()
	return sess, nil
}

// Restore re-resuelve la sesión persistida contra el registro. Si la sesión,
// el usuario o el negocio ya no resuelven, o el usuario no está activo, la
// sesión se descarta y se devuelve ErrOrphanedSession: el llamador debe pedir
// re-autenticación, nunca entregar una sesión "autenticada pero sin
// capacidades". Un fallo de lectura del storage recibe el mismo trato (fail
// safe a deslogueado, jamás una pantalla de crash).
func (m *Manager) Restore(ctx context.Context, sessionID string) (*authz.Session, error) {
	record, err := m.sessions.GetByID(ctx, sessionID)
	if err != nil || record == nil {
		m.evict(sessionID)
		return nil, domain.ErrOrphanedSession
	}
	if record.Expired(time.Now()) {
		m.discard(ctx, sessionID)
		return nil, domain.ErrOrphanedSession
	}
	user, err := m.users.GetByID(ctx, record.UserID)
	if err != nil || user == nil || user.Status != entity.StatusActive {
		m.discard(ctx, sessionID)
		return nil, domain.ErrOrphanedSession
	}
	business, err := m.businesses.GetByID(ctx, record.BusinessID)
	if err != nil || business == nil {
		m.discard(ctx, sessionID)
		return nil, domain.ErrOrphanedSession
	}

	// Snapshot cacheado: se reutiliza hasta que un hook de invalidación lo
	// saque (cambio de rol o de tipo de negocio). Restauraciones sucesivas
	// sin cambios devuelven sesiones equivalentes.
	m.mu.RLock()
	cached := m.cache[sessionID]
	m.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	sess := buildSession(record, user, business)
	m.mu.Lock()
	m.cache[sessionID] = sess
	m.mu.Unlock()
	return sess, nil
}

// End cierra la sesión: borra el registro persistido y el snapshot.
func (m *Manager) End(ctx context.Context, sessionID string) error {
	m.evict(sessionID)
	return m.sessions.Delete(ctx, sessionID)
}

// InvalidateUser descarta los snapshots de un usuario para que el próximo
// Restore recalcule sus capacidades. Se llama al cambiarle el rol: una sesión
// larga no puede seguir actuando con un snapshot viejo después de una
// degradación.
func (m *Manager) InvalidateUser(userID string) {
	m.mu.Lock()
	for id, s := range m.cache {
		if s.UserID == userID {
			delete(m.cache, id)
		}
	}
	m.mu.Unlock()
}

// InvalidateBusiness descarta los snapshots de todo un negocio (cambio de
// tipo de negocio: los vocabularios de rol y los mapeos cambian).
func (m *Manager) InvalidateBusiness(businessID string) {
	m.mu.Lock()
	for id, s := range m.cache {
		if s.BusinessID == businessID {
			delete(m.cache, id)
		}
	}
	m.mu.Unlock()
}

// EndAllForUser cierra todas las sesiones persistidas de un usuario
// (suspensión o remoción de personal).
func (m *Manager) EndAllForUser(ctx context.Context, userID string) error {
	m.InvalidateUser(userID)
	return m.sessions.DeleteByUser(ctx, userID)
}

// discard borra registro y snapshot de una sesión huérfana (best effort).
func (m *Manager) discard(ctx context.Context, sessionID string) {
	m.evict(sessionID)
	_ = m.sessions.Delete(ctx, sessionID)
}

func (m *Manager) evict(sessionID string) {
	m.mu.Lock()
	delete(m.cache, sessionID)
	m.mu.Unlock()
}

// buildSession arma el snapshot inmutable que consultan los guards.
func buildSession(record *entity.SessionRecord, user *entity.User, business *entity.Business) *authz.Session {
	return &authz.Session{
		ID:           record.ID,
		UserID:       user.ID,
		BusinessID:   business.ID,
		BusinessType: business.BusinessType,
		Role:         user.Role,
		IsOwner:      user.IsOwner,
		Capabilities: authz.CapabilitiesFor(business.BusinessType, user.Role),
		IssuedAt:     record.IssuedAt,
	}
}
