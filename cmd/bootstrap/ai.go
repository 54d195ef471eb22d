package bootstrap

import (
	"context"
	"log/slog"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/symptom"
	"github.com/TARIFUDDIN/swasthalink/internal/infra/gemini"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/config"

	"go.uber.org/fx"
)

var AIModule = fx.Module("ai",
	fx.Provide(
		NewSymptomAdvisor,
	),
)

// NewSymptomAdvisor falls back to a disabled advisor when no API key is set,
// so the rest of the API still starts.
func NewSymptomAdvisor(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (symptom.Advisor, error) {
	if cfg.AI.APIKey == "" {
		logger.Warn("GOOGLE_AI_API_KEY が未設定のため症状チェッカーを無効化します")
		return gemini.Disabled{}, nil
	}

	client, err := gemini.NewClient(context.Background(), cfg.AI)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
