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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingHandlerIntegrationTestSuite struct {
	suite.Suite
	testDB    *testutil.TestDatabase
	router    *gin.Engine
	testUser  *models.User
	testAdmin *models.User
	testDress *models.Dress
}

func (s *BookingHandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	bookingRepo := repository.NewBookingRepository(s.testDB.DB)
	dressRepo := repository.NewDressRepository(s.testDB.DB)
	makeupRepo := repository.NewMakeupRepository(s.testDB.DB)

	bookingService := service.NewBookingService(bookingRepo, dressRepo, makeupRepo)
	catalogService := service.NewCatalogService(dressRepo, makeupRepo)

	bookingHandler := handler.NewBookingHandler(bookingService)
	dressHandler := handler.NewDressHandler(catalogService)

	s.router = gin.New()
	s.router.GET("/api/dresses", dressHandler.List)

	protected := s.router.Group("/api")
	protected.Use(middleware.AuthMiddleware(testJWTSecret))
	protected.POST("/bookings", bookingHandler.CreateBooking)
	protected.GET("/bookings", bookingHandler.ListMyBookings)

	admin := s.router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(testJWTSecret), middleware.AdminMiddleware())
	admin.PUT("/bookings/:id/status", bookingHandler.UpdateBookingStatus)
}

func (s *BookingHandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *BookingHandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	var err error
	s.testUser, err = testutil.DefaultTestUser()
	require.NoError(s.T(), err)
	s.testDB.DB.Create(s.testUser)

	s.testAdmin, err = testutil.DefaultAdminUser()
	require.NoError(s.T(), err)
	s.testDB.DB.Create(s.testAdmin)

	s.testDress = testutil.CreateTestDress("Emerald Cocktail Dress", models.DressParty)
	s.testDB.DB.Create(s.testDress)
}

func (s *BookingHandlerIntegrationTestSuite) doJSON(method, path string, body interface{}, user *models.User) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		token, err := utils.GenerateToken(user, testJWTSecret, 1*time.Hour)
		require.NoError(s.T(), err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerIntegrationTestSuite) TestCreateBooking_Success() {
	w := s.doJSON(http.MethodPost, "/api/bookings", map[string]string{
		"dress_id":   s.testDress.ID.String(),
		"start_date": "2026-09-10",
		"end_date":   "2026-09-12",
	}, s.testUser)

	assert.Equal(s.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
	booking := response["booking"].(map[string]interface{})
	assert.Equal(s.T(), "pending", booking["status"], "A new booking is always pending")
}

// The status field in the request body is ignored; bookings start pending
// no matter what the client sends.
func (s *BookingHandlerIntegrationTestSuite) TestCreateBooking_ClientCannotChooseStatus() {
	w := s.doJSON(http.MethodPost, "/api/bookings", map[string]string{
		"dress_id":   s.testDress.ID.String(),
		"start_date": "2026-09-10",
		"end_date":   "2026-09-12",
		"status":     "confirmed",
	}, s.testUser)

	assert.Equal(s.T(), http.StatusCreated, w.Code)

	var stored models.DressBooking
	s.testDB.DB.First(&stored)
	assert.Equal(s.T(), models.StatusPending, stored.Status)
}

func (s *BookingHandlerIntegrationTestSuite) TestCreateBooking_BadDressID() {
	w := s.doJSON(http.MethodPost, "/api/bookings", map[string]string{
		"dress_id":   "not-a-uuid",
		"start_date": "2026-09-10",
		"end_date":   "2026-09-12",
	}, s.testUser)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerIntegrationTestSuite) TestCreateBooking_BadDateRange() {
	w := s.doJSON(http.MethodPost, "/api/bookings", map[string]string{
		"dress_id":   s.testDress.ID.String(),
		"start_date": "2026-09-12",
		"end_date":   "2026-09-10",
	}, s.testUser)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerIntegrationTestSuite) TestCreateBooking_RequiresAuth() {
	w := s.doJSON(http.MethodPost, "/api/bookings", map[string]string{
		"dress_id":   s.testDress.ID.String(),
		"start_date": "2026-09-10",
		"end_date":   "2026-09-12",
	}, nil)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *BookingHandlerIntegrationTestSuite) TestUpdateStatus_InvalidTransitionConflict() {
	w := s.doJSON(http.MethodPost, "/api/bookings", map[string]string{
		"dress_id":   s.testDress.ID.String(),
		"start_date": "2026-09-10",
		"end_date":   "2026-09-12",
	}, s.testUser)
	require.Equal(s.T(), http.StatusCreated, w.Code)

	var stored models.DressBooking
	s.testDB.DB.First(&stored)

	path := "/api/admin/bookings/" + stored.ID.String() + "/status"

	w = s.doJSON(http.MethodPut, path, map[string]string{"status": "completed"}, s.testAdmin)
	assert.Equal(s.T(), http.StatusConflict, w.Code, "pending -> completed is not a legal transition")

	w = s.doJSON(http.MethodPut, path, map[string]string{"status": "confirmed"}, s.testAdmin)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *BookingHandlerIntegrationTestSuite) TestUpdateStatus_UnknownBooking() {
	path := "/api/admin/bookings/" + uuid.NewString() + "/status"
	w := s.doJSON(http.MethodPut, path, map[string]string{"status": "confirmed"}, s.testAdmin)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *BookingHandlerIntegrationTestSuite) TestListMyBookings() {
	w := s.doJSON(http.MethodPost, "/api/bookings", map[string]string{
		"dress_id":   s.testDress.ID.String(),
		"start_date": "2026-09-10",
		"end_date":   "2026-09-12",
	}, s.testUser)
	require.Equal(s.T(), http.StatusCreated, w.Code)

	w = s.doJSON(http.MethodGet, "/api/bookings", nil, s.testUser)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response struct {
		Bookings []models.DressBooking `json:"bookings"`
	}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(s.T(), response.Bookings, 1)
	assert.Equal(s.T(), s.testUser.ID, response.Bookings[0].UserID)
}

func (s *BookingHandlerIntegrationTestSuite) TestDressList_Filters() {
	bridal := testutil.CreateTestDress("Ivory Gown", models.DressBridal)
	bridal.Featured = true
	s.testDB.DB.Create(bridal)

	w := s.doJSON(http.MethodGet, "/api/dresses?category=bridal", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response struct {
		Dresses []models.Dress `json:"dresses"`
	}
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(s.T(), response.Dresses, 1)
	assert.Equal(s.T(), "Ivory Gown", response.Dresses[0].Title)

	w = s.doJSON(http.MethodGet, "/api/dresses?category=ballgown", nil, nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code, "Unknown categories are rejected, not ignored")

	w = s.doJSON(http.MethodGet, "/api/dresses?featured=true", nil, nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	response.Dresses = nil
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(s.T(), response.Dresses, 1)
	assert.True(s.T(), response.Dresses[0].Featured)
}

func TestBookingHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerIntegrationTestSuite))
}
