package registry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Negocios-api/internal/application/dto"
	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
	"github.com/jhoicas/Negocios-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Lo implementa postgres.TxRunner; la interfaz evita el import circular.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		businessRepo repository.BusinessRepository,
		userRepo repository.UserRepository,
	) error) error
}

// Registry registro de credenciales y tenants: alta de negocio con doble
// secreto, enrolamiento de personal, ingreso y rotación de secretos. Solo se
// invoca en las fronteras de signup/enrolamiento, no en cada request.
type Registry struct {
	businessRepo repository.BusinessRepository
	userRepo     repository.UserRepository
	tx           TxRunner
}

// NewRegistry construye el registro.
func NewRegistry(businessRepo repository.BusinessRepository, userRepo repository.UserRepository, tx TxRunner) *Registry {
	return &Registry{businessRepo: businessRepo, userRepo: userRepo, tx: tx}
}

// CreateTenant crea un negocio con sus dos secretos independientes y su único
// usuario owner, atómicamente: o existen ambos registros o ninguno. Una vez
// que empieza a escribir corre hasta completar o revierte por completo; nunca
// queda un tenant a medias para reintentos.
func (r *Registry) CreateTenant(ctx context.Context, in dto.CreateBusinessRequest) (*entity.Business, *entity.User, error) {
	if in.Name == "" {
		return nil, nil, domain.NewValidationError("name", "el nombre es requerido")
	}
	if !entity.ValidBusinessType(in.BusinessType) {
		return nil, nil, domain.NewValidationError("business_type", "tipo de negocio desconocido")
	}
	if in.OwnerEmail == "" {
		return nil, nil, domain.NewValidationError("owner_email", "el email del dueño es requerido")
	}
	if err := validateSecretStrength("owner_secret", in.OwnerSecret); err != nil {
		return nil, nil, err
	}
	if err := validateSecretStrength("staff_secret", in.StaffSecret); err != nil {
		return nil, nil, err
	}
	// Invariante: los dos secretos jamás pueden colapsar al mismo valor.
	if in.OwnerSecret == in.StaffSecret {
		return nil, nil, domain.NewValidationError("staff_secret", "el secreto de staff debe ser distinto al del dueño")
	}

	// El nombre identifica al negocio en las pantallas de ingreso: no se
	// permiten dos tenants con el mismo nombre exacto.
	existing, err := r.businessRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrDuplicate
	}

	ownerHash, err := bcrypt.GenerateFromPassword([]byte(in.OwnerSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	staffHash, err := bcrypt.GenerateFromPassword([]byte(in.StaffSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	business := &entity.Business{
		ID:              uuid.New().String(),
		Name:            in.Name,
		BusinessType:    in.BusinessType,
		OwnerSecretHash: string(ownerHash),
		StaffSecretHash: string(staffHash),
		Status:          entity.StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	ownerName := in.OwnerName
	if ownerName == "" {
		ownerName = in.OwnerEmail
	}
	owner := &entity.User{
		ID:         uuid.New().String(),
		BusinessID: business.ID,
		Name:       ownerName,
		Email:      in.OwnerEmail,
		Phone:      in.OwnerPhone,
		Role:       authz.RoleOwner,
		Status:     entity.StatusActive,
		IsOwner:    true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = r.tx.Run(ctx, func(businessRepo repository.BusinessRepository, userRepo repository.UserRepository) error {
		if err := businessRepo.Create(ctx, business); err != nil {
			return err
		}
		return userRepo.Create(ctx, owner)
	})
	if err != nil {
		return nil, nil, err
	}
	return business, owner, nil
}

// Enroll verifica el secreto de staff contra el hash almacenado del negocio y
// crea un usuario no-owner. "Negocio desconocido" y "secreto incorrecto"
// devuelven el MISMO error hacia afuera (ErrInvalidCredential): la diferencia
// permitiría enumerar tenants.
func (r *Registry) Enroll(ctx context.Context, in dto.EnrollRequest) (*entity.User, error) {
	if in.Email == "" {
		return nil, domain.NewValidationError("email", "el email es requerido")
	}
	business, err := r.businessRepo.GetByID(ctx, in.BusinessID)
	if err != nil || business == nil || business.Status != entity.StatusActive {
		return nil, domain.ErrInvalidCredential
	}
	if bcrypt.CompareHashAndPassword([]byte(business.StaffSecretHash), []byte(in.StaffSecret)) != nil {
		return nil, domain.ErrInvalidCredential
	}

	role := in.Role
	if role == "" {
		role = authz.DefaultRole
	}
	if !authz.AssignableRole(business.BusinessType, role) {
		return nil, domain.NewValidationError("role", "rol no válido para este tipo de negocio")
	}

	existing, err := r.userRepo.GetByEmailAndBusiness(ctx, in.Email, business.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:         uuid.New().String(),
		BusinessID: business.ID,
		Name:       name,
		Email:      in.Email,
		Phone:      in.Phone,
		Role:       role,
		Status:     entity.StatusActive,
		IsOwner:    false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn verifica negocio + email + secreto compartido y devuelve el usuario
// y su negocio. El secreto de staff ingresa a cualquier usuario enrolado; el
// de owner solo al dueño. Toda falla — tenant inexistente, email desconocido,
// secreto equivocado, cuenta no activa — es el mismo ErrInvalidCredential.
func (r *Registry) SignIn(ctx context.Context, in dto.SignInRequest) (*entity.User, *entity.Business, error) {
	business, err := r.businessRepo.GetByID(ctx, in.BusinessID)
	if err != nil || business == nil || business.Status != entity.StatusActive {
		return nil, nil, domain.ErrInvalidCredential
	}
	user, err := r.userRepo.GetByEmailAndBusiness(ctx, in.Email, business.ID)
	if err != nil || user == nil {
		return nil, nil, domain.ErrInvalidCredential
	}
	hash := business.StaffSecretHash
	if user.IsOwner {
		hash = business.OwnerSecretHash
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Secret)) != nil {
		return nil, nil, domain.ErrInvalidCredential
	}
	if !user.CanSignIn() {
		return nil, nil, domain.ErrInvalidCredential
	}
	return user, business, nil
}

// RotateSecret cambia uno de los dos secretos del negocio. Solo afecta
// enrolamientos e ingresos futuros: las sesiones ya emitidas están atadas al
// registro User, no al secreto con el que se crearon. Re-verifica la
// distinción owner/staff contra el hash del otro secreto.
func (r *Registry) RotateSecret(ctx context.Context, businessID string, in dto.RotateSecretRequest) error {
	if in.Which != "owner" && in.Which != "staff" {
		return domain.NewValidationError("which", "debe ser owner o staff")
	}
	if err := validateSecretStrength("new_secret", in.NewSecret); err != nil {
		return err
	}
	business, err := r.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	if business == nil {
		return domain.ErrNotFound
	}

	otherHash := business.StaffSecretHash
	if in.Which == "staff" {
		otherHash = business.OwnerSecretHash
	}
	if bcrypt.CompareHashAndPassword([]byte(otherHash), []byte(in.NewSecret)) == nil {
		return domain.NewValidationError("new_secret", "los secretos de dueño y staff no pueden coincidir")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(in.NewSecret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	ownerHash, staffHash := business.OwnerSecretHash, business.StaffSecretHash
	if in.Which == "owner" {
		ownerHash = string(newHash)
	} else {
		staffHash = string(newHash)
	}
	return r.businessRepo.UpdateSecrets(ctx, business.ID, ownerHash, staffHash)
}
