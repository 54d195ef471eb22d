package commands

import (
	"context"

	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/clock"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/errs"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidSchedule   = errs.New("invalid availability schedule")
	ErrDoctorNotFoundCmd = errs.New("doctor not found")
)

type DoctorCommands interface {
	UpdateAvailability(ctx context.Context, doctorID uuid.UUID, req reqdto.UpdateAvailabilityRequest) error
}

type doctorCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDoctorCommands(uow shared.UnitOfWork, clk clock.Clock) DoctorCommands {
	return &doctorCommandsImpl{uow: uow, clock: clk}
}

// UpdateAvailability replaces the whole weekly template. Existing
// appointments are left as they are.
func (uc *doctorCommandsImpl) UpdateAvailability(ctx context.Context, doctorID uuid.UUID, req reqdto.UpdateAvailabilityRequest) error {
	schedule, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrInvalidSchedule)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Doctors().UpdateAvailability(ctx, tx.DB(), doctorID, schedule, uc.clock.Now())
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrDoctorNotFoundCmd
	}
	return err
}
