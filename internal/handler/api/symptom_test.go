//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/TARIFUDDIN/swasthalink/internal/handler/api"
	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	resdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/response"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"
	"github.com/TARIFUDDIN/swasthalink/tests/common/httptest"
	commandsmock "github.com/TARIFUDDIN/swasthalink/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSymptomHandler_Analyze(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := reqdto.SymptomCheckRequest{Symptoms: "headache and fever", Language: "hi"}

	tests := []struct {
		name           string
		body           any
		commandsResult string
		commandsError  error
		callsCommands  bool
		expectedStatus int
		expectedMsg    string
	}{
		{name: "success", body: body, commandsResult: "<conditions>Viral fever</conditions>", callsCommands: true, expectedStatus: http.StatusOK},
		{name: "missing symptoms", body: map[string]string{"language": "en"}, expectedStatus: http.StatusBadRequest, expectedMsg: "Symptoms are required"},
		{name: "rejected query", body: body, commandsError: commands.ErrInvalidSymptomQuery, callsCommands: true, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid symptom description"},
		{name: "checker disabled", body: body, commandsError: commands.ErrAdviceUnavailable, callsCommands: true, expectedStatus: http.StatusServiceUnavailable, expectedMsg: "Symptom checker is not available"},
		{name: "upstream failure", body: body, commandsError: errors.New("quota exceeded"), callsCommands: true, expectedStatus: http.StatusBadGateway, expectedMsg: "Failed to analyze symptoms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := commandsmock.NewMockSymptomCommands(ctrl)
			if tt.callsCommands {
				m.EXPECT().Analyze(gomock.Any(), body).Return(tt.commandsResult, tt.commandsError).Times(1)
			}

			router := gin.New()
			router.POST("/ai-symptoms", api.NewSymptomHandler(m).Analyze)

			rec := httptest.PerformRequest(t, router, http.MethodPost, "/ai-symptoms", tt.body, "")
			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tt.expectedStatus, tt.expectedMsg)
				return
			}

			var res resdto.SymptomAdviceResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
			require.Equal(t, tt.commandsResult, res.Advice)
		})
	}
}
