package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/symptom"
	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/errs"
)

var (
	ErrInvalidSymptomQuery = errs.New("invalid symptom query")
	ErrAdviceUnavailable   = errs.New("symptom advice unavailable")
	ErrAdviceFailed        = errs.New("symptom advice failed")
)

type SymptomCommands interface {
	Analyze(ctx context.Context, req reqdto.SymptomCheckRequest) (string, error)
}

type symptomCommandsImpl struct {
	advisor symptom.Advisor
}

func NewSymptomCommands(advisor symptom.Advisor) SymptomCommands {
	return &symptomCommandsImpl{advisor: advisor}
}

func (uc *symptomCommandsImpl) Analyze(ctx context.Context, req reqdto.SymptomCheckRequest) (string, error) {
	query, err := req.ToDomain()
	if err != nil {
		return "", errs.Mark(err, ErrInvalidSymptomQuery)
	}

	advice, err := uc.advisor.Advise(ctx, symptom.BuildPrompt(query))
	if err != nil {
		if errors.Is(err, symptom.ErrAdvisorDisabled) {
			return "", errs.Mark(err, ErrAdviceUnavailable)
		}
		slog.Error("symptom advisor failed", "language", query.Language(), "error", err.Error())
		return "", errs.Mark(err, ErrAdviceFailed)
	}
	return advice, nil
}
