package authz

import "time"

// Session es la identidad viva que consulta todo guard: referencias al
// usuario y al negocio más el snapshot de capacidades efectivas calculado al
// crearla. Tiene un solo escritor (el Session Manager) y muchos lectores.
type Session struct {
	ID           string
	UserID       string
	BusinessID   string
	BusinessType string
	Role         string
	IsOwner      bool
	Capabilities CapabilitySet
	IssuedAt     time.Time
}

// Active informa si la sesión existe. Una sesión que el manager entrega
// siempre referencia un usuario activo; la que no resuelve nunca llega aquí.
func (s *Session) Active() bool {
	return s != nil && s.UserID != ""
}

// Tipos de requisito. La unión etiquetada reemplaza los checks imperativos
// dispersos: toda superficie protegida declara su Requirement y una sola
// función Allow lo interpreta.
type requirementKind int

const (
	reqNone requirementKind = iota
	reqCapability
	reqOwnerOnly
)

// Requirement requisito declarativo de una ruta o acción protegida.
type Requirement struct {
	kind requirementKind
	cap  Capability
}

// RequireNone cualquier sesión activa pasa.
func RequireNone() Requirement { return Requirement{kind: reqNone} }

// RequireCapability pasa solo si la capacidad está en el set efectivo.
func RequireCapability(c Capability) Requirement {
	return Requirement{kind: reqCapability, cap: c}
}

// RequireOwner pasa solo si la sesión pertenece al dueño del tenant.
func RequireOwner() Requirement { return Requirement{kind: reqOwnerOnly} }

// Capability devuelve la capacidad exigida ("" si el requisito no es de capacidad).
func (r Requirement) Capability() Capability {
	if r.kind == reqCapability {
		return r.cap
	}
	return ""
}

// Allow decide si la sesión satisface el requisito. Es el único camino de
// decisión: rutas y controles individuales consultan exactamente esta
// función, así nivel-ruta y nivel-control no pueden divergir.
//
// El bypass de owner es intencional: el dueño es la identidad raíz del tenant
// y nunca debe quedar fuera de su propio negocio por un mapeo incompleto.
func Allow(req Requirement, s *Session) bool {
	if !s.Active() {
		return false
	}
	switch req.kind {
	case reqNone:
		return true
	case reqCapability:
		if s.IsOwner {
			return true
		}
		return s.Capabilities.Has(req.cap)
	case reqOwnerOnly:
		return s.IsOwner
	default:
		return false
	}
}

// AllowAll composición "estricta gana": pasa solo si TODOS los requisitos
// pasan. No existe composición "cualquiera-de" en el diseño base.
func AllowAll(s *Session, reqs ...Requirement) bool {
	for _, r := range reqs {
		if !Allow(r, s) {
			return false
		}
	}
	return s.Active()
}
