//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/api"
	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	resdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/response"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/middleware"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"
	"github.com/TARIFUDDIN/swasthalink/tests/common/httptest"
	commandsmock "github.com/TARIFUDDIN/swasthalink/tests/mock/commands"
	queriesmock "github.com/TARIFUDDIN/swasthalink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HealthRecordHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHealthRecordCommands
	mockQueries  *queriesmock.MockHealthRecordQueries
	userID       uuid.UUID
}

func (s *HealthRecordHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHealthRecordCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHealthRecordQueries(s.mockCtrl)
	h := api.NewHealthRecordHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	g := s.router.Group("/health-records", func(c *gin.Context) {
		middleware.SetAuthContext(c, s.userID, user.RolePatient)
		c.Next()
	})
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
}

func (s *HealthRecordHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHealthRecordHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthRecordHandlerTestSuite))
}

func (s *HealthRecordHandlerTestSuite) view() *queries.HealthRecordView {
	return &queries.HealthRecordView{
		ID:        uuid.New(),
		UserID:    s.userID,
		Date:      time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC),
		Diagnosis: "Seasonal flu",
	}
}

func (s *HealthRecordHandlerTestSuite) TestList() {
	s.Run("success: sets the next cursor header", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, (*queries.Cursor)(nil), 2).
			Return([]*queries.HealthRecordView{s.view(), s.view()}, &queries.Cursor{After: "next-page"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health-records?limit=2", nil, "")

		var res []resdto.HealthRecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 2)
		s.Equal([]string{}, res[0].Medicines)
		s.Equal("next-page", rec.Header().Get(api.NextCursorHeader))
	})

	s.Run("success: forwards the cursor and omits the header on the last page", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 0).
			Return([]*queries.HealthRecordView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health-records?after=abc", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Empty(rec.Header().Get(api.NextCursorHeader))
	})

	s.Run("error: 400 on bad limit or cursor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health-records?limit=ten", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")

		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health-records?after=zzz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *HealthRecordHandlerTestSuite) TestCreateAndGet() {
	body := reqdto.CreateHealthRecordRequest{Diagnosis: "Seasonal flu", Medicines: []string{"Paracetamol"}}

	s.Run("success: returns 201 Created", func() {
		v := s.view()
		s.mockCommands.EXPECT().Create(gomock.Any(), body, s.userID).Return(v.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), v.ID, s.userID).Return(v, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/health-records", body, "")

		var res resdto.HealthRecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(v.ID, res.ID)
	})

	s.Run("error: 400 on invalid record", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), body, s.userID).Return(uuid.Nil, commands.ErrInvalidHealthRecord).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/health-records", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid health record")
	})

	s.Run("error: get maps not found and internal errors", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.userID).Return(nil, queries.ErrHealthRecordNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health-records/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Health record not found")

		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.userID).Return(nil, errors.New("boom")).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health-records/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
