package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Martokim/TamuCuts-api/models"
)

func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	r := gin.New()
	r.POST("/api/auth/register", RegisterHandler(db))
	r.POST("/api/token/", ObtainTokenPairHandler(db))
	r.POST("/api/token/refresh/", RefreshTokenHandler(db))
	return db, r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, username string) {
	t.Helper()
	w := postJSON(t, r, "/api/auth/register", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestRegisterTokenRefreshRoundTrip(t *testing.T) {
	_, r := setupTest(t)
	registerUser(t, r, "wanjiku")

	w := postJSON(t, r, "/api/token/", gin.H{"username": "wanjiku", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var pair map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	require.NotEmpty(t, pair["access"])
	require.NotEmpty(t, pair["refresh"])

	claims, err := ParseToken(pair["access"])
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, models.RoleCustomer, claims.Role)

	w = postJSON(t, r, "/api/token/refresh/", gin.H{"refresh": pair["refresh"]})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var refreshed map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	claims, err = ParseToken(refreshed["access"])
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
}

func TestRegisterDefaultsToCustomerRole(t *testing.T) {
	db, r := setupTest(t)
	registerUser(t, r, "otieno")

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "otieno").Error)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "hunter22", user.PasswordHash, "password must be stored hashed")
}

func TestRegisterIgnoresClientSuppliedRole(t *testing.T) {
	db, r := setupTest(t)

	// A caller asking for admin at registration still gets customer.
	w := postJSON(t, r, "/api/auth/register", gin.H{
		"username": "mallory",
		"email":    "mallory@example.com",
		"password": "hunter22",
		"role":     "admin",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "mallory").Error)
	assert.Equal(t, models.RoleCustomer, user.Role)

	w = postJSON(t, r, "/api/token/", gin.H{"username": "mallory", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	var pair map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	claims, err := ParseToken(pair["access"])
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, claims.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	_, r := setupTest(t)
	registerUser(t, r, "njeri")

	w := postJSON(t, r, "/api/auth/register", gin.H{
		"username": "njeri",
		"email":    "other@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already in use")
}

func TestObtainTokenWrongPassword(t *testing.T) {
	_, r := setupTest(t)
	registerUser(t, r, "wanjiku")

	w := postJSON(t, r, "/api/token/", gin.H{"username": "wanjiku", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, r, "/api/token/", gin.H{"username": "nobody", "password": "hunter22"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	_, r := setupTest(t)
	registerUser(t, r, "wanjiku")

	w := postJSON(t, r, "/api/token/", gin.H{"username": "wanjiku", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)
	var pair map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))

	// An access token must not be accepted on the refresh endpoint.
	w = postJSON(t, r, "/api/token/refresh/", gin.H{"refresh": pair["access"]})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := models.User{Role: models.RoleStaff}
	user.ID = 7

	token, err := IssueToken(user, "access", AccessTokenTTL)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}
