package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"temanikan/internal/models"
	"temanikan/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenTTL   = 24 * time.Hour
	DefaultAdminEmail = "admin@temanikan.com"

	defaultSigningKey = "temanikan-dev-key"
)

const (
	avatarMember = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=40&h=40&fit=crop&crop=face"
	avatarAdmin  = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=40&h=40&fit=crop&crop=face"
	avatarNew    = "https://images.unsplash.com/photo-1494790108755-2616b612b8fd?w=40&h=40&fit=crop&crop=face"
)

// Domain errors for auth flows.
var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidToken     = errors.New("invalid token")
	ErrPasswordMismatch = errors.New("password tidak cocok")
	ErrEmptyPassword    = errors.New("password is empty")
	ErrDemoDisabled     = errors.New("demo access is disabled")
	ErrInvalidDemoRole  = errors.New("demo login requires member or admin role")
)

// Verifier checks sign-in credentials and produces the resulting user.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (models.User, error)
}

// DemoVerifier accepts any credentials. The configured admin email signs in
// as admin, every other email as a member.
type DemoVerifier struct {
	AdminEmail string
}

func (v DemoVerifier) Verify(_ context.Context, email, _ string) (models.User, error) {
	email = strings.TrimSpace(email)
	avatar := avatarMember
	if strings.EqualFold(email, v.AdminEmail) {
		return models.User{ID: 1, Name: "Admin", Email: email, Role: models.RoleAdmin, Avatar: &avatar}, nil
	}
	return models.User{ID: 1, Name: "User Demo", Email: email, Role: models.RoleMember, Avatar: &avatar}, nil
}

// AccountVerifier checks registered accounts against their bcrypt hash.
type AccountVerifier struct {
	repo repository.Authorization
}

func (v AccountVerifier) Verify(ctx context.Context, email, password string) (models.User, error) {
	u, err := v.repo.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return models.User{}, ErrInvalidPassword
	}
	return *u, nil
}

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type AuthConfig struct {
	DemoMode   bool
	AdminEmail string
	SigningKey string
	TokenTTL   time.Duration
}

// AuthService handles the mock login flows and session tokens.
type AuthService struct {
	authRepo repository.Authorization
	events   EventLog
	verifier Verifier
	cfg      AuthConfig
	now      func() time.Time
}

func NewAuthService(repo repository.Authorization, events EventLog, cfg AuthConfig) *AuthService {
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = DefaultAdminEmail
	}
	if cfg.SigningKey == "" {
		cfg.SigningKey = defaultSigningKey
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	var v Verifier = AccountVerifier{repo: repo}
	if cfg.DemoMode {
		v = DemoVerifier{AdminEmail: cfg.AdminEmail}
	}
	return &AuthService{authRepo: repo, events: events, verifier: v, cfg: cfg, now: time.Now}
}

// SignIn verifies credentials with the configured Verifier.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Register creates a member account. Mismatched passwords fail before
// anything is stored.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	if in.Password != in.ConfirmPassword {
		return models.User{}, ErrPasswordMismatch
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}
	avatar := avatarNew
	u := models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Role:         models.RoleMember,
		Avatar:       &avatar,
		PasswordHash: hash,
	}
	id, err := s.authRepo.Create(ctx, u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	s.events.Record(ctx, models.EventRegister, "account registered", map[string]any{"user_id": id})
	return u, nil
}

// DemoLogin returns one of the two hardcoded demo users.
func (s *AuthService) DemoLogin(role models.Role) (models.User, error) {
	if !s.cfg.DemoMode {
		return models.User{}, ErrDemoDisabled
	}
	switch role {
	case models.RoleAdmin:
		avatar := avatarAdmin
		return models.User{ID: 999, Name: "Admin Demo", Email: s.cfg.AdminEmail, Role: models.RoleAdmin, Avatar: &avatar}, nil
	case models.RoleMember:
		avatar := avatarMember
		return models.User{ID: 123, Name: "Member Demo", Email: "member@temanikan.com", Role: models.RoleMember, Avatar: &avatar}, nil
	default:
		return models.User{}, ErrInvalidDemoRole
	}
}

// AdminCredentials is the helper card shown to testers in demo mode.
func (s *AuthService) AdminCredentials() (models.AdminCredentials, error) {
	if !s.cfg.DemoMode {
		return models.AdminCredentials{}, ErrDemoDisabled
	}
	return models.AdminCredentials{
		Email: s.cfg.AdminEmail,
		Roles: map[models.Role][]string{
			models.RoleGuest:  {"Beranda", "Ensiklopedia", "Panduan", "Shop (view only)"},
			models.RoleMember: {"Semua fitur", "Forum", "Diagnosa AI", "Transaksi"},
			models.RoleAdmin:  {"Semua fitur", "Dashboard Admin lengkap"},
		},
		Note: `Login dengan email admin dan password apa saja, atau klik "Demo Admin".`,
	}, nil
}

// Claims defines JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// IssueToken signs a token bound to a session.
func (s *AuthService) IssueToken(sessionID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		SessionID: sessionID,
	})
	signed, err := token.SignedString([]byte(s.cfg.SigningKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a token and returns its session id.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
