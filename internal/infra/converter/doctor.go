package converter

import (
	"encoding/json"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/doctor"
	sqlc "github.com/TARIFUDDIN/swasthalink/internal/infra/sqlc/generated"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/pgconv"
)

func DoctorToCreateParams(d *doctor.Doctor) (sqlc.CreateDoctorParams, error) {
	schedule, err := TemplateToJSON(d.Schedule())
	if err != nil {
		return sqlc.CreateDoctorParams{}, err
	}
	account := d.Account()
	profile := d.Profile()
	return sqlc.CreateDoctorParams{
		ID:             account.ID(),
		Email:          account.Email().Value(),
		PasswordHash:   account.PasswordHash(),
		FirstName:      account.Name().First(),
		LastName:       account.Name().Last(),
		Specialization: pgconv.StringToPgtype(profile.Specialization),
		Experience:     pgconv.Int32ToPgtype(int32(profile.Experience)), // #nosec G115 -- bounded by domain validation
		Languages:      profile.Languages,
		Availability:   schedule,
		CreatedAt:      pgconv.TimeToPgtype(account.CreatedAt()),
	}, nil
}

func TemplateToJSON(t availability.Template) ([]byte, error) {
	return json.Marshal(t)
}

// TemplateFromJSON treats a NULL column as a doctor with no schedule.
func TemplateFromJSON(b []byte) (availability.Template, error) {
	var t availability.Template
	if len(b) == 0 {
		return t, nil
	}
	if err := json.Unmarshal(b, &t); err != nil {
		return availability.Template{}, err
	}
	return t, nil
}
