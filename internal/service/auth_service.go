package service

import (
	"context"
	"time"

	"personal-crm-be/internal/config"
	"personal-crm-be/internal/dto"
	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/pkg/serverutils"
	"personal-crm-be/internal/repository/memory"
	"personal-crm-be/internal/repository/specification"
	"personal-crm-be/internal/repository/unitofwork"
	"personal-crm-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionId string) error
	Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	authCfg    config.AuthConfig
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, sessions *memory.SessionRepository, authCfg config.AuthConfig) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		sessions:   sessions,
		authCfg:    authCfg,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, serverutils.NewPersistenceError("Failed to check existing user", err)
	}
	if existing != nil {
		return nil, serverutils.NewConflictError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         "user",
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, serverutils.NewPersistenceError("Failed to create user", err)
	}

	return &dto.RegisterResponse{
		Id:    user.Id,
		Email: user.Email,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, serverutils.NewPersistenceError("Failed to look up user", err)
	}
	if user == nil {
		return nil, serverutils.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorizedError("Invalid credentials")
	}

	now := time.Now()
	expiresAt := now.Add(s.authCfg.TokenTTL)
	sessionId := uuid.NewString()

	claims := jwt.MapClaims{
		"jti":     sessionId,
		"user_id": user.Id.String(),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.authCfg.JwtSecret))
	if err != nil {
		return nil, err
	}

	s.sessions.Save(&store.Session{
		ID:        sessionId,
		UserID:    user.Id.String(),
		Email:     user.Email,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	})

	return &dto.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionId string) error {
	s.sessions.Delete(sessionId)
	return nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, serverutils.NewPersistenceError("Failed to look up user", err)
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}

	return &dto.MeResponse{
		Id:       user.Id,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
