package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iho/flowtrack/internal/domain"
)

const userCacheTTL = 5 * time.Minute

// UserUseCase handles registration and credential checks. A cache, if
// provided, fronts profile reads; profiles are immutable after
// registration so staleness is not a concern.
type UserUseCase struct {
	userRepo UserRepository
	idGen    IDGenerator
	cache    Cache
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, idGen IDGenerator, cache Cache) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		idGen:    idGen,
		cache:    cache,
	}
}

// RegisterInput represents input for registering a user.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Register creates a user with a bcrypt-hashed password.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, domain.NewValidationError("name", "cannot be empty")
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.NewValidationError("email", "already registered")
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Email:          input.Email,
		Name:           input.Name,
		HashedPassword: string(hashed),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return sanitized(user), nil
}

// AuthenticateInput represents credential input.
type AuthenticateInput struct {
	Email    string
	Password string
}

// Authenticate verifies credentials and returns the user.
func (uc *UserUseCase) Authenticate(ctx context.Context, input AuthenticateInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	return sanitized(user), nil
}

// GetUser retrieves a user profile, read-through cached.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	cacheKey := "user:" + id

	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cacheKey); err == nil {
			var user domain.User
			if err := json.Unmarshal(raw, &user); err == nil {
				return &user, nil
			}
		}
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := sanitized(user)

	if uc.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, raw, userCacheTTL)
		}
	}

	return out, nil
}

// sanitized returns a copy safe to hand outside the use case. The
// repository keeps the original pointer, so the stored hash must not
// be wiped in place.
func sanitized(user *domain.User) *domain.User {
	out := *user
	out.HashedPassword = ""
	return &out
}
