package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dresspalette/backend/internal/handler"
	"github.com/dresspalette/backend/internal/middleware"
	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/repository"
	"github.com/dresspalette/backend/internal/service"
	"github.com/dresspalette/backend/internal/testutil"
	"github.com/dresspalette/backend/internal/utils"
	"github.com/dresspalette/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key"

type AuthHandlerIntegrationTestSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	router *gin.Engine
}

func (s *AuthHandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	userRepo := repository.NewUserRepository(s.testDB.DB)
	dressRepo := repository.NewDressRepository(s.testDB.DB)
	bookingRepo := repository.NewBookingRepository(s.testDB.DB)
	makeupRepo := repository.NewMakeupRepository(s.testDB.DB)
	messageRepo := repository.NewMessageRepository(s.testDB.DB)

	authService := service.NewAuthService(userRepo, testJWTSecret, 1*time.Hour)
	dashboardService := service.NewDashboardService(userRepo, dressRepo, bookingRepo, makeupRepo, messageRepo)

	authHandler := handler.NewAuthHandler(authService, false)
	adminHandler := handler.NewAdminHandler(dashboardService, authService)

	s.router = gin.New()
	s.router.POST("/api/auth/register", authHandler.Register)
	s.router.POST("/api/auth/login", authHandler.Login)

	protected := s.router.Group("/api")
	protected.Use(middleware.AuthMiddleware(testJWTSecret))
	protected.GET("/auth/me", authHandler.Me)

	admin := s.router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(testJWTSecret), middleware.AdminMiddleware())
	admin.GET("/overview", adminHandler.Overview)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
}

func (s *AuthHandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *AuthHandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *AuthHandlerIntegrationTestSuite) postJSON(path string, body map[string]string) *httptest.ResponseRecorder {
	bodyBytes, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerIntegrationTestSuite) tokenFor(user *models.User) string {
	token, err := utils.GenerateToken(user, testJWTSecret, 1*time.Hour)
	require.NoError(s.T(), err)
	return token
}

func (s *AuthHandlerIntegrationTestSuite) TestRegister_Success() {
	w := s.postJSON("/api/auth/register", map[string]string{
		"email":            "newuser@example.com",
		"password":         "SecurePass123",
		"confirm_password": "SecurePass123",
		"full_name":        "New User",
	})

	assert.Equal(s.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))

	user := response["user"].(map[string]interface{})
	assert.Equal(s.T(), "newuser@example.com", user["email"])
	assert.Equal(s.T(), "user", user["role"], "Registration always yields the user role")

	var tokenCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			tokenCookie = cookie
			break
		}
	}
	require.NotNil(s.T(), tokenCookie, "Register should set the session cookie")
	assert.True(s.T(), tokenCookie.HttpOnly)
}

func (s *AuthHandlerIntegrationTestSuite) TestRegister_ShortPasswordRejectedBeforeStore() {
	w := s.postJSON("/api/auth/register", map[string]string{
		"email":            "short@example.com",
		"password":         "short",
		"confirm_password": "short",
	})

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	var count int64
	s.testDB.DB.Model(&models.User{}).Count(&count)
	assert.Equal(s.T(), int64(0), count, "Invalid registration must not create an account")
}

func (s *AuthHandlerIntegrationTestSuite) TestRegister_PasswordMismatch() {
	w := s.postJSON("/api/auth/register", map[string]string{
		"email":            "mismatch@example.com",
		"password":         "SecurePass123",
		"confirm_password": "DifferentPass123",
	})

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerIntegrationTestSuite) TestRegister_DuplicateEmail() {
	existing, err := testutil.CreateTestUser("taken@example.com", "Pass12345", "Existing", models.RoleUser)
	require.NoError(s.T(), err)
	s.testDB.DB.Create(existing)

	w := s.postJSON("/api/auth/register", map[string]string{
		"email":            "taken@example.com",
		"password":         "SecurePass123",
		"confirm_password": "SecurePass123",
	})

	assert.Equal(s.T(), http.StatusConflict, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(s.T(), response["error"], "email already exists")
}

func (s *AuthHandlerIntegrationTestSuite) TestLogin_Success() {
	user, err := testutil.CreateTestUser("member@example.com", "SecurePass123", "Member", models.RoleUser)
	require.NoError(s.T(), err)
	s.testDB.DB.Create(user)

	w := s.postJSON("/api/auth/login", map[string]string{
		"email":    "member@example.com",
		"password": "SecurePass123",
	})

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var tokenCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			tokenCookie = cookie
			break
		}
	}
	require.NotNil(s.T(), tokenCookie)
	assert.True(s.T(), tokenCookie.HttpOnly)
}

func (s *AuthHandlerIntegrationTestSuite) TestLogin_WrongPassword() {
	user, err := testutil.CreateTestUser("member@example.com", "SecurePass123", "Member", models.RoleUser)
	require.NoError(s.T(), err)
	s.testDB.DB.Create(user)

	w := s.postJSON("/api/auth/login", map[string]string{
		"email":    "member@example.com",
		"password": "WrongPass123",
	})

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

// The same error comes back whether the account exists or not.
func (s *AuthHandlerIntegrationTestSuite) TestLogin_UnknownEmailSameError() {
	user, err := testutil.CreateTestUser("member@example.com", "SecurePass123", "Member", models.RoleUser)
	require.NoError(s.T(), err)
	s.testDB.DB.Create(user)

	wWrongPass := s.postJSON("/api/auth/login", map[string]string{
		"email":    "member@example.com",
		"password": "WrongPass123",
	})
	wUnknown := s.postJSON("/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "SecurePass123",
	})

	assert.Equal(s.T(), http.StatusUnauthorized, wWrongPass.Code)
	assert.Equal(s.T(), http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(s.T(), wWrongPass.Body.String(), wUnknown.Body.String())
}

func (s *AuthHandlerIntegrationTestSuite) TestMe_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerIntegrationTestSuite) TestMe_WithCookie() {
	user, err := testutil.CreateTestUser("member@example.com", "SecurePass123", "Member", models.RoleUser)
	require.NoError(s.T(), err)
	s.testDB.DB.Create(user)

	req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: s.tokenFor(user)})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
	profile := response["user"].(map[string]interface{})
	assert.Equal(s.T(), "member@example.com", profile["email"])
	assert.NotContains(s.T(), profile, "password_hash", "Password hash must never appear in responses")
}

func (s *AuthHandlerIntegrationTestSuite) TestAdminRoutes_Unauthenticated() {
	paths := []string{"/api/admin/overview", "/api/admin/users"}
	for _, path := range paths {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(s.T(), http.StatusUnauthorized, w.Code, "%s should require authentication", path)
	}
}

func (s *AuthHandlerIntegrationTestSuite) TestAdminRoutes_NonAdminForbidden() {
	user, err := testutil.CreateTestUser("member@example.com", "SecurePass123", "Member", models.RoleUser)
	require.NoError(s.T(), err)
	s.testDB.DB.Create(user)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer "+s.tokenFor(user))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusForbidden, w.Code, "A member token must not open the admin console")
}

func (s *AuthHandlerIntegrationTestSuite) TestAdminRoutes_AdminAllowed() {
	admin, err := testutil.DefaultAdminUser()
	require.NoError(s.T(), err)
	s.testDB.DB.Create(admin)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer "+s.tokenFor(admin))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(s.T(), response, "overview")
}

func (s *AuthHandlerIntegrationTestSuite) TestUpdateUserRole() {
	admin, err := testutil.DefaultAdminUser()
	require.NoError(s.T(), err)
	s.testDB.DB.Create(admin)

	user, err := testutil.CreateTestUser("promote@example.com", "SecurePass123", "Promotee", models.RoleUser)
	require.NoError(s.T(), err)
	s.testDB.DB.Create(user)

	body, _ := json.Marshal(map[string]string{"role": "admin"})
	req, _ := http.NewRequest(http.MethodPut, "/api/admin/users/"+user.ID.String()+"/role", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.tokenFor(admin))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var stored models.User
	s.testDB.DB.First(&stored, "id = ?", user.ID)
	assert.Equal(s.T(), models.RoleAdmin, stored.Role)
}

func (s *AuthHandlerIntegrationTestSuite) TestUpdateUserRole_InvalidRole() {
	admin, err := testutil.DefaultAdminUser()
	require.NoError(s.T(), err)
	s.testDB.DB.Create(admin)

	user, err := testutil.CreateTestUser("member@example.com", "SecurePass123", "Member", models.RoleUser)
	require.NoError(s.T(), err)
	s.testDB.DB.Create(user)

	body, _ := json.Marshal(map[string]string{"role": "superuser"})
	req, _ := http.NewRequest(http.MethodPut, "/api/admin/users/"+user.ID.String()+"/role", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.tokenFor(admin))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func TestAuthHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerIntegrationTestSuite))
}
