package auth

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sriram31Mech/EventHubPro-1/config"
	"github.com/Sriram31Mech/EventHubPro-1/internal/apperror"
)

// ===========================
// 🎯 Auth Service
// ===========================

type Service interface {
	Register(req RegisterRequest) (*User, string, error)
	Login(req LoginRequest) (*User, string, error)
	Me(userID string) (*User, error)
}

type service struct {
	repo Repository
	cfg  *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{repo: repo, cfg: cfg}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register creates an account and issues a token in the same call so the
// client can proceed without a follow-up login.
func (s *service) Register(req RegisterRequest) (*User, string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Role == "" {
		req.Role = "user"
	}

	if fields := s.validateRegister(req); len(fields) > 0 {
		return nil, "", apperror.NewValidation(fields)
	}

	existing, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("email %w", apperror.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials. A wrong password and an unknown email return
// the same error so the response never reveals which accounts exist.
func (s *service) Login(req LoginRequest) (*User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", apperror.NewValidation(map[string]string{
			"credentials": "email and password are required",
		})
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", apperror.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) Me(userID string) (*User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

func (s *service) validateRegister(req RegisterRequest) map[string]string {
	fields := map[string]string{}

	if len(req.Name) < 2 || len(req.Name) > 100 {
		fields["name"] = "name must be between 2 and 100 characters"
	}
	if !emailPattern.MatchString(req.Email) {
		fields["email"] = "email must be a valid address"
	}
	if len(req.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	} else if s.cfg.PasswordStrict && !isStrongPassword(req.Password) {
		fields["password"] = "password must contain upper, lower, digit and special characters"
	}
	if req.Role != "admin" && req.Role != "user" {
		fields["role"] = "role must be admin or user"
	}

	return fields
}

func isStrongPassword(pw string) bool {
	var upper, lower, digit, special bool
	for _, c := range pw {
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

func (s *service) generateToken(user *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Duration(s.cfg.JWTTTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
