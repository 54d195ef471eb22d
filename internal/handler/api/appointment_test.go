//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/appointment"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/api"
	resdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/response"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/middleware"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"
	"github.com/TARIFUDDIN/swasthalink/tests/common/builder"
	"github.com/TARIFUDDIN/swasthalink/tests/common/httptest"
	"github.com/TARIFUDDIN/swasthalink/tests/common/testutil"
	commandsmock "github.com/TARIFUDDIN/swasthalink/tests/mock/commands"
	queriesmock "github.com/TARIFUDDIN/swasthalink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	actorID      uuid.UUID
	actorRole    user.Role
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	h := api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RolePatient
	auth := func(c *gin.Context) {
		middleware.SetAuthContext(c, s.actorID, s.actorRole)
		c.Next()
	}

	g := s.router.Group("/appointments", auth)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("/:id/cancel", h.Cancel)
	g.POST("/:id/complete", h.Complete)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/appointments"
	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the stored appointment", func() {
		b.PatientID = s.actorID
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.actorID).Return(b.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, s.actorID, user.RolePatient).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(b.ID, res.ID)
		s.Equal("2030-01-07", res.Date)
		s.Equal("scheduled", res.Status)
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"doctorId", "date", "time"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown doctor", commandsError: queries.ErrDoctorNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Doctor not found"},
			{name: "slot taken", commandsError: appointment.ErrSlotUnavailable, expectedStatus: http.StatusConflict, expectedMsg: "Time slot is not available"},
			{name: "bad date", commandsError: commands.ErrInvalidAppointment, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid appointment request"},
			{name: "date in past", commandsError: appointment.ErrDateInPast, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid appointment request"},
			{name: "beyond horizon", commandsError: appointment.ErrDateBeyondHorizon, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid appointment request"},
			{name: "self booking", commandsError: appointment.ErrSelfBooking, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid appointment request"},
			{name: "internal", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Failed to book appointment"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.actorID).Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestListAndGet() {
	b := builder.NewAppointmentBuilder()

	s.Run("success: list is scoped to the caller", func() {
		s.mockQueries.EXPECT().ListForActor(gomock.Any(), s.actorID, user.RolePatient).
			Return([]*queries.AppointmentView{b.BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "")

		var res []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal("Anil Sharma", res[0].DoctorName)
	})

	s.Run("error: get maps read errors", func() {
		testCases := []struct {
			name           string
			queryErr       error
			expectedStatus int
		}{
			{name: "not found", queryErr: queries.ErrAppointmentNotFound, expectedStatus: http.StatusNotFound},
			{name: "not a participant", queryErr: queries.ErrAppointmentAccess, expectedStatus: http.StatusForbidden},
			{name: "internal", queryErr: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID, s.actorID, user.RolePatient).Return(nil, tc.queryErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+b.ID.String(), nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/xyz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID format")
	})
}

func (s *AppointmentHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	s.Run("success: cancel returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.actorID, user.RolePatient).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/cancel", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: complete returns 204", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), id, s.actorID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/complete", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps transition errors", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "missing", commandsError: commands.ErrAppointmentNotFoundWrite, expectedStatus: http.StatusNotFound},
			{name: "not a participant", commandsError: commands.ErrAppointmentForbidden, expectedStatus: http.StatusForbidden},
			{name: "already cancelled", commandsError: appointment.ErrInvalidTransition, expectedStatus: http.StatusConflict},
			{name: "internal", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.actorID, user.RolePatient).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/cancel", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
