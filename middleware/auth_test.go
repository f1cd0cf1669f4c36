package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sriram31Mech/EventHubPro-1/config"
)

func testRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "role": identity.Role})
	})
	r.GET("/admin", AuthMiddleware(cfg), RequireRoles(RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingTokenIs401(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "secret"})

	w := doRequest(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, "/protected", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidOrExpiredTokenIs403(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := testRouter(cfg)

	w := doRequest(r, "/protected", "Bearer not-a-token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	expired := signToken(t, "secret", jwt.MapClaims{
		"user_id": "u-1", "email": "a@b.c", "role": "user",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	w = doRequest(r, "/protected", "Bearer "+expired)
	assert.Equal(t, http.StatusForbidden, w.Code)

	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "u-1", "role": "user",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w = doRequest(r, "/protected", "Bearer "+wrongKey)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUnsignedTokenIsRejected(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "secret"})

	// alg=none must never pass, whatever the claims say.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "u-1", "email": "a@b.c", "role": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := doRequest(r, "/protected", "Bearer "+unsigned)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestValidTokenExposesIdentityWithoutDatabase(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "secret"})

	token := signToken(t, "secret", jwt.MapClaims{
		"user_id": "u-1", "email": "a@b.c", "role": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(r, "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"u-1"`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestRequireRolesBlocksNonAdmins(t *testing.T) {
	r := testRouter(&config.Config{JWTSecret: "secret"})

	userToken := signToken(t, "secret", jwt.MapClaims{
		"user_id": "u-1", "email": "a@b.c", "role": "user",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(r, "/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := signToken(t, "secret", jwt.MapClaims{
		"user_id": "u-2", "email": "x@y.z", "role": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w = doRequest(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientIPFromForwardedHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuditMiddleware())
	r.GET("/ip", func(c *gin.Context) {
		c.String(http.StatusOK, GetIPFromContext(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "203.0.113.7", w.Body.String())
}
