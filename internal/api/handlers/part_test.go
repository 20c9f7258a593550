package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"aircraft-manufacturing-backend/internal/api/handlers"
	apperrors "aircraft-manufacturing-backend/internal/errors"
	"aircraft-manufacturing-backend/internal/mocks"
	"aircraft-manufacturing-backend/internal/service"
	"aircraft-manufacturing-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PartHandlerTestSuite defines the test suite for PartHandler
type PartHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPartServiceInterface
	handler     *handlers.PartHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *PartHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPartServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPartHandler(suite.mockService)
	suite.userID = uuid.New()

	// Routes behind the same context keys the auth middleware would set
	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(testutils.AuthContext(suite.userID.String(), false))
	parts := v1.Group("/parts")
	{
		parts.POST("", suite.handler.CreatePart)
		parts.GET("", suite.handler.ListParts)
		parts.GET("/:id", suite.handler.GetPart)
		parts.DELETE("/:id", suite.handler.RecyclePart)
		parts.GET("/by-serial/:serial", suite.handler.GetPartBySerialNumber)
	}
}

// TearDownTest cleans up after each test
func (suite *PartHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePart tests the CreatePart handler
func (suite *PartHandlerTestSuite) TestCreatePart() {
	suite.T().Run("Success", func(t *testing.T) {
		partTypeID := uuid.New()
		aircraftTypeID := uuid.New()
		partID := uuid.New()

		requestBody := map[string]interface{}{
			"part_type_id":     partTypeID.String(),
			"aircraft_type_id": aircraftTypeID.String(),
		}

		expectedResponse := &service.PartResponse{
			ID:             partID,
			SerialNumber:   "P-1A2B3C4D",
			PartTypeID:     partTypeID,
			AircraftTypeID: aircraftTypeID,
			IsUsed:         false,
		}

		suite.mockService.EXPECT().
			CreatePart(suite.userID, gomock.Any()).
			Return(expectedResponse, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", requestBody)

		var response service.PartResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, partID, response.ID)
		assert.Equal(t, "P-1A2B3C4D", response.SerialNumber)
	})

	suite.T().Run("PermissionDenied", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"part_type_id":     uuid.New().String(),
			"aircraft_type_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			CreatePart(suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrPartCreateDenied)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", requestBody)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("NoTeamMembership", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"part_type_id":     uuid.New().String(),
			"aircraft_type_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			CreatePart(suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrNoTeamMembership)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", requestBody)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("UnknownPartType", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"part_type_id":     uuid.New().String(),
			"aircraft_type_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			CreatePart(suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrPartTypeNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", requestBody)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/parts", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Unauthenticated", func(t *testing.T) {
		// No auth middleware on this router, so no user_id in context.
		bare := testutils.SetupHTTPTest()
		bare.Router.POST("/api/v1/parts", suite.handler.CreatePart)

		recorder := bare.MakeRequest("POST", "/api/v1/parts", map[string]interface{}{})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

// TestGetPart tests the GetPart handler
func (suite *PartHandlerTestSuite) TestGetPart() {
	suite.T().Run("Success", func(t *testing.T) {
		partID := uuid.New()
		expectedResponse := &service.PartResponse{
			ID:           partID,
			SerialNumber: "P-00FF00FF",
		}

		suite.mockService.EXPECT().
			GetPartByID(partID).
			Return(expectedResponse, nil)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/parts/%s", partID), nil)

		var response service.PartResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, partID, response.ID)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts/not-a-uuid", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid part ID")
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		partID := uuid.New()

		suite.mockService.EXPECT().
			GetPartByID(partID).
			Return(nil, apperrors.ErrPartNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/parts/%s", partID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestGetPartBySerialNumber tests the GetPartBySerialNumber handler
func (suite *PartHandlerTestSuite) TestGetPartBySerialNumber() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.PartResponse{
			ID:           uuid.New(),
			SerialNumber: "P-12345678",
		}

		suite.mockService.EXPECT().
			GetPartBySerialNumber("P-12345678").
			Return(expectedResponse, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts/by-serial/P-12345678", nil)

		var response service.PartResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "P-12345678", response.SerialNumber)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetPartBySerialNumber("P-DEADBEEF").
			Return(nil, apperrors.ErrPartNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts/by-serial/P-DEADBEEF", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestListParts tests the ListParts handler
func (suite *PartHandlerTestSuite) TestListParts() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.PartListResponse{
			Parts: []service.PartResponse{
				{ID: uuid.New(), SerialNumber: "P-AAAA1111"},
				{ID: uuid.New(), SerialNumber: "P-BBBB2222"},
			},
			Total:  2,
			Limit:  20,
			Offset: 0,
		}

		suite.mockService.EXPECT().
			ListParts(gomock.Any(), 20, 0).
			Return(expectedResponse, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts", nil)

		var response service.PartListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(2), response.Total)
		assert.Len(t, response.Parts, 2)
	})

	suite.T().Run("FilterByUsage", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListParts(gomock.Any(), 20, 0).
			DoAndReturn(func(filter service.PartListFilter, limit, offset int) (*service.PartListResponse, error) {
				assert.NotNil(t, filter.IsUsed)
				assert.False(t, *filter.IsUsed)
				return &service.PartListResponse{Limit: limit, Offset: offset}, nil
			})

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts?is_used=false", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidFilter", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts?part_type_id=nope", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid part type ID")
	})
}

// TestRecyclePart tests the RecyclePart handler
func (suite *PartHandlerTestSuite) TestRecyclePart() {
	suite.T().Run("Success", func(t *testing.T) {
		partID := uuid.New()

		suite.mockService.EXPECT().
			RecyclePart(suite.userID, partID).
			Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/parts/%s", partID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("UsedPartConflict", func(t *testing.T) {
		partID := uuid.New()

		suite.mockService.EXPECT().
			RecyclePart(suite.userID, partID).
			Return(apperrors.NewPartInUseError("P-1A2B3C4D"))

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/parts/%s", partID), nil)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("OtherTeamForbidden", func(t *testing.T) {
		partID := uuid.New()

		suite.mockService.EXPECT().
			RecyclePart(suite.userID, partID).
			Return(apperrors.ErrNotPartOwnerTeam)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/parts/%s", partID), nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		partID := uuid.New()

		suite.mockService.EXPECT().
			RecyclePart(suite.userID, partID).
			Return(apperrors.ErrPartNotFound)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/parts/%s", partID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestPartHandlerTestSuite runs the test suite
func TestPartHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartHandlerTestSuite))
}
