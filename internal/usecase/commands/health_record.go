package commands

import (
	"context"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/healthrecord"
	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/clock"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/errs"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidHealthRecord = errs.New("invalid health record")

type HealthRecordCommands interface {
	Create(ctx context.Context, req reqdto.CreateHealthRecordRequest, userID uuid.UUID) (uuid.UUID, error)
}

type healthRecordCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHealthRecordCommands(uow shared.UnitOfWork, clk clock.Clock) HealthRecordCommands {
	return &healthRecordCommandsImpl{uow: uow, clock: clk}
}

func (uc *healthRecordCommandsImpl) Create(ctx context.Context, req reqdto.CreateHealthRecordRequest, userID uuid.UUID) (uuid.UUID, error) {
	rec, err := healthrecord.NewRecord(userID, req.Diagnosis, req.Medicines, req.Notes, req.DoctorName, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidHealthRecord)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.HealthRecords().Create(ctx, tx.DB(), rec)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}
