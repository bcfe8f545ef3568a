package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vlog-hub/internal/entity"
	"vlog-hub/internal/repo/persistent"
	"vlog-hub/pkg/apperror"
	"vlog-hub/pkg/jwt"
	"vlog-hub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// TokenRevoker remembers token IDs that were logged out before expiring.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	ResolveActor(ctx context.Context, token string) (*entity.Actor, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, actor *entity.Actor) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	revoker    TokenRevoker
	logger     *logger.Logger
	now        func() time.Time
}

// NewAuthUseCase builds the credential service. revoker may be nil, in
// which case logout is left to the client.
func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	revoker TokenRevoker,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		revoker:    revoker,
		logger:     logger,
		now:        time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *authUseCase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, apperror.Validation("name, email, and password are required")
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperror.ErrDuplicateEmail
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, classify(uc.logger, "register", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, classify(uc.logger, "register", err)
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         entity.RoleCustomer,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, classify(uc.logger, "register", err)
	}

	uc.logger.Info("User registered: user_id=%s", user.ID)
	user.PasswordHash = ""
	return user, nil
}

// Login answers ErrInvalidCredentials for both an unknown email and a wrong
// password.
func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", apperror.Validation("email and password are required")
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, "", apperror.ErrInvalidCredentials
		}
		return nil, "", classify(uc.logger, "login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", classify(uc.logger, "login", err)
	}

	user.PasswordHash = ""
	return user, token, nil
}

// ResolveActor validates token and loads the user it names. Name and role
// come from the stored user, not from the token.
func (uc *authUseCase) ResolveActor(ctx context.Context, token string) (*entity.Actor, error) {
	claims, err := uc.validate(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.New(apperror.CodeInvalidToken, "invalid token - user not found")
		}
		return nil, classify(uc.logger, "resolve actor", err)
	}

	return &entity.Actor{
		ID:   user.ID,
		Name: user.Name,
		Role: entity.NormalizeRole(string(user.Role)),
	}, nil
}

func (uc *authUseCase) Logout(ctx context.Context, token string) error {
	claims, err := uc.validate(ctx, token)
	if err != nil {
		return err
	}
	if uc.revoker == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	ttl := claims.ExpiresAt.Time.Sub(uc.now())
	if err := uc.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return classify(uc.logger, "logout", err)
	}
	uc.logger.Info("Token revoked: user_id=%s", claims.UserID)
	return nil
}

func (uc *authUseCase) Profile(ctx context.Context, actor *entity.Actor) (*entity.User, error) {
	if actor == nil {
		return nil, apperror.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, classify(uc.logger, "profile", err)
	}
	user.PasswordHash = ""
	return user, nil
}

func (uc *authUseCase) validate(ctx context.Context, token string) (*jwt.Claims, error) {
	if token == "" {
		return nil, apperror.ErrUnauthorized
	}

	claims, err := uc.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInvalidToken, "invalid or expired token", err)
	}

	if uc.revoker != nil && claims.ID != "" {
		revoked, err := uc.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, classify(uc.logger, "check token revocation", err)
		}
		if revoked {
			return nil, apperror.New(apperror.CodeInvalidToken, "token has been revoked")
		}
	}
	return claims, nil
}

// SeedAdmin creates an admin account unless the email is already taken. It
// reports whether a user was created.
func SeedAdmin(ctx context.Context, userRepo persistent.UserRepository, name, email, password string) (*entity.User, bool, error) {
	email = normalizeEmail(email)
	if strings.TrimSpace(name) == "" || email == "" || password == "" {
		return nil, false, apperror.Validation("admin name, email and password are required")
	}

	existing, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, false, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	admin := &entity.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         entity.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return nil, false, err
	}
	return admin, true, nil
}
