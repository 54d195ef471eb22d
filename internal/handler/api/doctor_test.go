//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/api"
	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	resdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/response"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/middleware"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"
	"github.com/TARIFUDDIN/swasthalink/tests/common/builder"
	"github.com/TARIFUDDIN/swasthalink/tests/common/httptest"
	commandsmock "github.com/TARIFUDDIN/swasthalink/tests/mock/commands"
	queriesmock "github.com/TARIFUDDIN/swasthalink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DoctorHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockDoctorCommands
	mockQueries      *queriesmock.MockDoctorQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	doctorID         uuid.UUID
}

func (s *DoctorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDoctorCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDoctorQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	h := api.NewDoctorHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	s.doctorID = uuid.New()
	s.router.GET("/doctors", h.List)
	s.router.GET("/doctors/:id", h.Get)
	s.router.GET("/doctors/:id/availability", h.Availability)
	s.router.PUT("/doctors/me/availability", func(c *gin.Context) {
		middleware.SetAuthContext(c, s.doctorID, user.RoleDoctor)
		h.UpdateMyAvailability(c)
	})
}

func (s *DoctorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDoctorHandlerSuite(t *testing.T) {
	suite.Run(t, new(DoctorHandlerTestSuite))
}

func (s *DoctorHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	url := "/doctors/" + id.String() + "/availability"
	monday := availability.NewDate(2030, 1, 7)

	s.Run("success: returns free slots for the date", func() {
		s.mockAvailability.EXPECT().Resolve(gomock.Any(), id, monday).
			Return([]string{"09:00", "11:00"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2030-01-07", nil, "")

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		want := resdto.AvailabilityResponse{DoctorID: id, Date: "2030-01-07", Weekday: "monday", AvailableSlots: []string{"09:00", "11:00"}}
		s.Empty(cmp.Diff(want, res))
	})

	s.Run("success: an empty result is serialized as []", func() {
		s.mockAvailability.EXPECT().Resolve(gomock.Any(), id, monday).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2030-01-07", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"availableSlots":[]`)
	})

	s.Run("error: request validation", func() {
		testCases := []struct {
			name        string
			path        string
			expectedMsg string
		}{
			{name: "malformed doctor id", path: "/doctors/abc/availability?date=2030-01-07", expectedMsg: "Invalid doctor ID format"},
			{name: "missing date", path: url, expectedMsg: "Date is required"},
			{name: "unparseable date", path: url + "?date=07-01-2030", expectedMsg: "Invalid date format"},
			{name: "impossible calendar date", path: url + "?date=2030-02-30", expectedMsg: "Invalid date format"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})

	s.Run("error: maps resolver errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queryErr       error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown doctor", queryErr: queries.ErrDoctorNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Doctor not found"},
			{name: "store failure", queryErr: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Failed to resolve availability"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().Resolve(gomock.Any(), id, monday).Return(nil, tc.queryErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2030-01-07", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *DoctorHandlerTestSuite) TestGetAndList() {
	doc := builder.NewDoctorBuilder()

	s.Run("success: get returns the profile with its template", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), doc.ID).Return(doc.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/doctors/"+doc.ID.String(), nil, "")

		var res map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(doc.Email, res["email"])
		s.Contains(rec.Body.String(), `"monday":["09:00","10:00","11:00"]`)
	})

	s.Run("error: get returns 404 for unknown doctor", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), doc.ID).Return(nil, queries.ErrDoctorNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/doctors/"+doc.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Doctor not found")
	})

	s.Run("success: list passes the specialization filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "cardio").
			Return([]*queries.DoctorListItem{doc.BuildListItem("2030-01-07-09:00")}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/doctors?specialization=cardio", nil, "")

		var res []resdto.DoctorListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal([]string{"2030-01-07-09:00"}, res[0].BookedSlots)
	})
}

func (s *DoctorHandlerTestSuite) TestUpdateMyAvailability() {
	url := "/doctors/me/availability"
	body := reqdto.UpdateAvailabilityRequest{"friday": {"14:00"}}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateAvailability(gomock.Any(), s.doctorID, body).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid schedule", commandsError: commands.ErrInvalidSchedule, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid availability schedule"},
			{name: "doctor missing", commandsError: commands.ErrDoctorNotFoundCmd, expectedStatus: http.StatusNotFound, expectedMsg: "Doctor not found"},
			{name: "internal", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateAvailability(gomock.Any(), s.doctorID, body).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 on non-object body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, []string{"09:00"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
