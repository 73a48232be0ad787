package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mibarra/mibarra-api/internal/application/dto"
	"github.com/mibarra/mibarra-api/internal/domain"
	"github.com/mibarra/mibarra-api/internal/domain/entity"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
	"github.com/mibarra/mibarra-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	barRepo  repository.BarRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, barRepo repository.BarRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, barRepo: barRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea el usuario y su barra: hashea password con bcrypt y
// persiste ambos. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	barName := in.BarName
	if barName == "" {
		barName = "Mi Barra"
	}
	bar := &entity.Bar{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Name:      barName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.barRepo.Create(ctx, bar); err != nil {
		return nil, err
	}
	return toUserResponse(user, bar), nil
}

// Login verifica email/password, genera JWT con el barID y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	bar, err := uc.barRepo.GetByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if bar == nil {
		return nil, domain.ErrNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, bar.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user, bar),
	}, nil
}

func toUserResponse(u *entity.User, b *entity.Bar) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
	if b != nil {
		resp.BarID = b.ID
		resp.BarName = b.Name
	}
	return resp
}
