package auth

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sriram31Mech/EventHubPro-1/config"
	"github.com/Sriram31Mech/EventHubPro-1/internal/apperror"
)

// ===========================
// 🧪 Fake Repository
// ===========================

type fakeUserRepo struct {
	users []*User
}

func (f *fakeUserRepo) Create(user *User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(id string) (*User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTTTLHours: 24}
}

// ===========================
// 🧪 Register
// ===========================

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo, testConfig())

	user, token, err := svc.Register(RegisterRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "supersecret1",
		Role:     "admin",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "alice@example.com", user.Email, "email should be stored lowercased")
	assert.NotEqual(t, "supersecret1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret1")))

	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo, testConfig())

	_, _, err := svc.Register(RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "supersecret1", Role: "user",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(RegisterRequest{
		Name: "Evil Alice", Email: "ALICE@example.com", Password: "othersecret2", Role: "user",
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestRegisterCollectsAllValidationErrors(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, testConfig())

	_, _, err := svc.Register(RegisterRequest{
		Name:     "A",
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	})
	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 4)
	assert.Contains(t, ve.Fields, "name")
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "password")
	assert.Contains(t, ve.Fields, "role")
}

func TestRegisterStrictPasswordPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.PasswordStrict = true
	svc := NewService(&fakeUserRepo{}, cfg)

	_, _, err := svc.Register(RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "alllowercase", Role: "user",
	})
	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "password")

	_, _, err = svc.Register(RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "Str0ng!pass", Role: "user",
	})
	assert.NoError(t, err)
}

func TestRegisterDefaultsRoleToUser(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, testConfig())

	user, _, err := svc.Register(RegisterRequest{
		Name: "Bob", Email: "bob@example.com", Password: "supersecret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)
}

// ===========================
// 🧪 Login
// ===========================

func TestLoginIndistinguishableFailures(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo, testConfig())

	_, _, err := svc.Register(RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "supersecret1", Role: "user",
	})
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	_, _, unknownEmail := svc.Login(LoginRequest{Email: "nobody@example.com", Password: "supersecret1"})

	assert.ErrorIs(t, wrongPassword, apperror.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, apperror.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error(),
		"login failures must not reveal which accounts exist")
}

func TestLoginSucceedsWithMixedCaseEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo, testConfig())

	_, _, err := svc.Register(RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "supersecret1", Role: "admin",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(LoginRequest{Email: "ALICE@Example.com", Password: "supersecret1"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, token)
}

func TestMeUnknownUser(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, testConfig())

	_, err := svc.Me("missing-id")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
