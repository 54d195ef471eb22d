package gemini

import (
	"context"
	"strings"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/symptom"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/config"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/errs"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errs.New("gemini returned no text")

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
	cfg    config.AIConfig
}

// NewClient needs a non-empty API key; callers without one use Disabled.
func NewClient(ctx context.Context, cfg config.AIConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create Gemini client")
	}

	return &Client{
		client: client,
		model:  client.GenerativeModel(cfg.Model),
		cfg:    cfg,
	}, nil
}

func (c *Client) Advise(ctx context.Context, prompt string) (string, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errs.Wrap(err, "gemini generate error")
	}
	return textFromResponse(resp)
}

func (c *Client) Close() error {
	return c.client.Close()
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

// Disabled stands in when no API key is configured.
type Disabled struct{}

func (Disabled) Advise(context.Context, string) (string, error) {
	return "", symptom.ErrAdvisorDisabled
}
