package seed

import (
	"context"
	"log/slog"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/doctor"
	"github.com/TARIFUDDIN/swasthalink/internal/domain/user"
	"github.com/TARIFUDDIN/swasthalink/internal/infra"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/clock"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/errs"
	"github.com/TARIFUDDIN/swasthalink/internal/pkg/password"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/shared"
)

type Account struct {
	Email     string
	FirstName string
	LastName  string
	Role      user.Role
}

type DoctorSeed struct {
	Account
	Specialization string
	Experience     int
	Languages      []string
}

type PharmacySeed struct {
	shared.PharmacyInput
	Stock map[string]int32
}

type Data struct {
	Accounts   []Account
	Doctors    []DoctorSeed
	Pharmacies []PharmacySeed
}

// Result counts rows actually inserted; existing accounts are skipped.
type Result struct {
	Accounts   int
	Doctors    int
	Pharmacies int
}

type Seeder struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewSeeder(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) *Seeder {
	return &Seeder{uow: uow, clock: clk, logger: logger}
}

// Run inserts every entry in its own transaction so one duplicate does not
// roll back the rest. All seeded accounts share plainPassword.
func (s *Seeder) Run(ctx context.Context, data Data, plainPassword string) (Result, error) {
	var res Result

	pw, err := user.NewPassword(plainPassword)
	if err != nil {
		return res, errs.Wrap(err, "invalid seed password")
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return res, errs.Wrap(err, "failed to hash seed password")
	}

	for _, a := range data.Accounts {
		u, err := s.newUser(a, hash)
		if err != nil {
			return res, err
		}
		created, err := s.insert(ctx, a.Email, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Users().Create(ctx, tx.DB(), u)
			return err
		})
		if err != nil {
			return res, err
		}
		if created {
			res.Accounts++
		}
	}

	for _, d := range data.Doctors {
		d.Role = user.RoleDoctor
		u, err := s.newUser(d.Account, hash)
		if err != nil {
			return res, err
		}
		doc, err := doctor.NewDoctor(u, doctor.Profile{
			Specialization: d.Specialization,
			Experience:     d.Experience,
			Languages:      d.Languages,
		}, availability.DefaultTemplate())
		if err != nil {
			return res, errs.Wrapf(err, "invalid doctor seed %s", d.Email)
		}
		created, err := s.insert(ctx, d.Email, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Doctors().Create(ctx, tx.DB(), doc)
			return err
		})
		if err != nil {
			return res, err
		}
		if created {
			res.Doctors++
		}
	}

	for _, p := range data.Pharmacies {
		err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			id, err := tx.Pharmacies().Create(ctx, tx.DB(), p.PharmacyInput)
			if err != nil {
				return err
			}
			for name, stock := range p.Stock {
				if err := tx.Pharmacies().SetStock(ctx, tx.DB(), id, name, stock); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return res, errs.Wrapf(err, "failed to seed pharmacy %s", p.Name)
		}
		res.Pharmacies++
	}

	return res, nil
}

func (s *Seeder) newUser(a Account, hash string) (*user.User, error) {
	email, err := user.NewEmail(a.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid seed email %q", a.Email)
	}
	name, err := user.NewName(a.FirstName, a.LastName)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid seed name for %s", a.Email)
	}
	role := a.Role
	if role == "" {
		role = user.RolePatient
	}
	return user.NewUser(email, hash, role, name, s.clock.Now()), nil
}

func (s *Seeder) insert(ctx context.Context, email string, fn func(ctx context.Context, tx shared.Tx) error) (bool, error) {
	err := s.uow.Within(ctx, fn)
	if infra.IsKind(err, infra.KindDuplicateKey) {
		s.logger.Info("seed account already exists, skipping", "email", email)
		return false, nil
	}
	if err != nil {
		return false, errs.Wrapf(err, "failed to seed %s", email)
	}
	return true, nil
}
