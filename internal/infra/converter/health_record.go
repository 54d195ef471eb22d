package converter

import (
	"github.com/TARIFUDDIN/swasthalink/internal/domain/healthrecord"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/pgconv"
)

func HealthRecordToCreateParams(rec *healthrecord.Record) sqlc.CreateHealthRecordParams {
	return sqlc.CreateHealthRecordParams{
		ID:         rec.ID(),
		UserID:     rec.UserID(),
		Date:       pgconv.TimeToPgtype(rec.Date()),
		Diagnosis:  rec.Diagnosis(),
		Medicines:  pgconv.NonNilStrings(rec.Medicines()),
		Notes:      rec.Notes(),
		DoctorName: rec.DoctorName(),
		CreatedAt:  pgconv.TimeToPgtype(rec.CreatedAt()),
	}
}
