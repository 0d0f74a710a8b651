package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forkwell/mealvault/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// The app ships with a single stubbed account; there is no registration
// flow. Login checks these credentials against the seeded user row and hands
// back a JWT.
const (
	DemoEmail    = "demo@mealvault.app"
	DemoPassword = "mealvault-demo"

	tokenTTL = 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
)

// TokenClaims are the JWT claims issued at login.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

type AuthService struct {
	db        *gorm.DB
	redis     *redis.Client
	jwtSecret string
}

// NewAuthService creates a new AuthService. redisClient may be nil, in which
// case logout revocation is skipped.
func NewAuthService(db *gorm.DB, redisClient *redis.Client, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		redis:     redisClient,
		jwtSecret: jwtSecret,
	}
}

// SeedDemoUser creates the stub account if it does not exist yet.
func (s *AuthService) SeedDemoUser(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        DemoEmail,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("seed demo user: %w", err)
	}
	return nil
}

// Login checks the credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(&user)
}

// ValidateToken parses and verifies a token, rejecting revoked ones.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if s.redis != nil && claims.ID != "" {
		revoked, err := s.redis.Exists(ctx, revocationKey(claims.ID)).Result()
		if err != nil {
			return nil, fmt.Errorf("check token revocation: %w", err)
		}
		if revoked > 0 {
			return nil, ErrTokenRevoked
		}
	}
	return claims, nil
}

// Logout revokes the token until it expires. Without a revocation store the
// call is a no-op and the token simply runs out its TTL.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.ValidateToken(ctx, tokenString)
	if err != nil {
		return err
	}
	if s.redis == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.redis.Set(ctx, revocationKey(claims.ID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func revocationKey(tokenID string) string {
	return "revoked:" + tokenID
}
