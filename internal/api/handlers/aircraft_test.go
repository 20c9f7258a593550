package handlers_test

import (
	"fmt"
	"net/http"
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

// AircraftHandlerTestSuite defines the test suite for AircraftHandler
type AircraftHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAssemblyServiceInterface
	handler     *handlers.AircraftHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AircraftHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAssemblyServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAircraftHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(testutils.AuthContext(suite.userID.String(), false))
	aircraft := v1.Group("/aircraft")
	{
		aircraft.POST("", suite.handler.AssembleAircraft)
		aircraft.GET("", suite.handler.ListAircraft)
		aircraft.GET("/:id", suite.handler.GetAircraft)
		aircraft.PUT("/:id", suite.handler.MethodNotAllowed)
		aircraft.PATCH("/:id", suite.handler.MethodNotAllowed)
		aircraft.DELETE("/:id", suite.handler.DeleteAircraft)
		aircraft.GET("/by-serial/:serial", suite.handler.GetAircraftBySerialNumber)
	}
}

// TearDownTest cleans up after each test
func (suite *AircraftHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestAssembleAircraft tests the AssembleAircraft handler
func (suite *AircraftHandlerTestSuite) TestAssembleAircraft() {
	suite.T().Run("Success", func(t *testing.T) {
		aircraftTypeID := uuid.New()
		aircraftID := uuid.New()
		partIDs := []uuid.UUID{uuid.New(), uuid.New()}

		requestBody := map[string]interface{}{
			"aircraft_type_id": aircraftTypeID.String(),
			"part_ids":         []string{partIDs[0].String(), partIDs[1].String()},
		}

		expectedResponse := &service.AircraftResponse{
			ID:             aircraftID,
			SerialNumber:   "A-1A2B3C4D",
			AircraftTypeID: aircraftTypeID,
			UsedParts: []service.PartResponse{
				{ID: partIDs[0], IsUsed: true},
				{ID: partIDs[1], IsUsed: true},
			},
		}

		suite.mockService.EXPECT().
			AssembleAircraft(suite.userID, gomock.Any()).
			Return(expectedResponse, nil)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/aircraft", requestBody)

		var response service.AircraftResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, aircraftID, response.ID)
		assert.Len(t, response.UsedParts, 2)
	})

	suite.T().Run("AssemblyDenied", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"aircraft_type_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			AssembleAircraft(suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrAssemblyDenied)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/aircraft", requestBody)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("PartNotAvailable", func(t *testing.T) {
		partID := uuid.New()
		requestBody := map[string]interface{}{
			"aircraft_type_id": uuid.New().String(),
			"part_ids":         []string{partID.String()},
		}

		suite.mockService.EXPECT().
			AssembleAircraft(suite.userID, gomock.Any()).
			Return(nil, apperrors.NewPartNotAvailableError(partID.String(), "part is already used"))

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/aircraft", requestBody)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("LostRaceConflict", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"aircraft_type_id": uuid.New().String(),
			"part_ids":         []string{uuid.New().String()},
		}

		suite.mockService.EXPECT().
			AssembleAircraft(suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrPartConsumedConcurrently)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/aircraft", requestBody)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestGetAircraft tests the GetAircraft handler
func (suite *AircraftHandlerTestSuite) TestGetAircraft() {
	suite.T().Run("Success", func(t *testing.T) {
		aircraftID := uuid.New()
		expectedResponse := &service.AircraftResponse{
			ID:           aircraftID,
			SerialNumber: "A-00FF00FF",
		}

		suite.mockService.EXPECT().
			GetAircraftByID(aircraftID).
			Return(expectedResponse, nil)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/aircraft/%s", aircraftID), nil)

		var response service.AircraftResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, aircraftID, response.ID)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/aircraft/not-a-uuid", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid aircraft ID")
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		aircraftID := uuid.New()

		suite.mockService.EXPECT().
			GetAircraftByID(aircraftID).
			Return(nil, apperrors.ErrAircraftNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/aircraft/%s", aircraftID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestImmutableAfterAssembly verifies update verbs are rejected outright
func (suite *AircraftHandlerTestSuite) TestImmutableAfterAssembly() {
	aircraftID := uuid.New()

	for _, method := range []string{"PUT", "PATCH"} {
		suite.T().Run(method, func(t *testing.T) {
			recorder := suite.httpSuite.MakeRequest(method, fmt.Sprintf("/api/v1/aircraft/%s", aircraftID), map[string]interface{}{
				"serial_number": "A-HACKED00",
			})
			assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
		})
	}
}

// TestListAircraft tests the ListAircraft handler
func (suite *AircraftHandlerTestSuite) TestListAircraft() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.AircraftListResponse{
			Aircraft: []service.AircraftResponse{
				{ID: uuid.New(), SerialNumber: "A-AAAA1111"},
			},
			Total:  1,
			Limit:  20,
			Offset: 0,
		}

		suite.mockService.EXPECT().
			ListAircraft(gomock.Nil(), 20, 0).
			Return(expectedResponse, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/aircraft", nil)

		var response service.AircraftListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(1), response.Total)
	})

	suite.T().Run("FilterByType", func(t *testing.T) {
		aircraftTypeID := uuid.New()

		suite.mockService.EXPECT().
			ListAircraft(gomock.Any(), 20, 0).
			DoAndReturn(func(typeID *uuid.UUID, limit, offset int) (*service.AircraftListResponse, error) {
				assert.NotNil(t, typeID)
				assert.Equal(t, aircraftTypeID, *typeID)
				return &service.AircraftListResponse{Limit: limit, Offset: offset}, nil
			})

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/aircraft?aircraft_type_id="+aircraftTypeID.String(), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestDeleteAircraft tests the DeleteAircraft handler
func (suite *AircraftHandlerTestSuite) TestDeleteAircraft() {
	suite.T().Run("Success", func(t *testing.T) {
		aircraftID := uuid.New()

		suite.mockService.EXPECT().
			DeleteAircraft(suite.userID, aircraftID).
			Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/aircraft/%s", aircraftID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Forbidden", func(t *testing.T) {
		aircraftID := uuid.New()

		suite.mockService.EXPECT().
			DeleteAircraft(suite.userID, aircraftID).
			Return(apperrors.ErrAssemblyDenied)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/aircraft/%s", aircraftID), nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		aircraftID := uuid.New()

		suite.mockService.EXPECT().
			DeleteAircraft(suite.userID, aircraftID).
			Return(apperrors.ErrAircraftNotFound)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/aircraft/%s", aircraftID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestAircraftHandlerTestSuite runs the test suite
func TestAircraftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AircraftHandlerTestSuite))
}
