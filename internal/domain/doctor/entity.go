package doctor

import (
	"errors"
	"strings"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrEmptySpecialization = errors.New("specialization is required")
	ErrNegativeExperience  = errors.New("experience cannot be negative")
	ErrNotADoctor          = errors.New("user is not a doctor")
)

// DefaultLanguages is what a doctor profile shows when none were recorded.
var DefaultLanguages = []string{"Hindi", "English"}

type Profile struct {
	Specialization string
	Experience     int
	Languages      []string
}

// Doctor is a user with role doctor plus the profile patients browse.
type Doctor struct {
	account  *user.User
	profile  Profile
	schedule availability.Template
}

func NewDoctor(account *user.User, profile Profile, schedule availability.Template) (*Doctor, error) {
	if account.Role() != user.RoleDoctor {
		return nil, ErrNotADoctor
	}
	profile.Specialization = strings.TrimSpace(profile.Specialization)
	if profile.Specialization == "" {
		return nil, ErrEmptySpecialization
	}
	if profile.Experience < 0 {
		return nil, ErrNegativeExperience
	}
	profile.Languages = NormalizeLanguages(profile.Languages)
	return &Doctor{account: account, profile: profile, schedule: schedule}, nil
}

// NormalizeLanguages trims, drops blanks and duplicates, and falls back
// to DefaultLanguages when nothing is left.
func NormalizeLanguages(langs []string) []string {
	out := make([]string, 0, len(langs))
	seen := make(map[string]struct{}, len(langs))
	for _, l := range langs {
		l = strings.TrimSpace(l)
		key := strings.ToLower(l)
		if l == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultLanguages...)
	}
	return out
}

func (d *Doctor) ID() uuid.UUID                   { return d.account.ID() }
func (d *Doctor) Account() *user.User             { return d.account }
func (d *Doctor) Profile() Profile                { return d.profile }
func (d *Doctor) Schedule() availability.Template { return d.schedule }
