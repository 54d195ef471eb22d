//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/TARIFUDDIN/swasthalink/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPasswordWithCost(DefaultPassword, bcrypt.MinCost)
		if err == nil {
			passwordHash = h
		}
	})
	require.NotEmpty(t, passwordHash, "failed to hash default password")
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, first_name, last_name, is_active)
		VALUES ($1, $2, $3, $4, 'Test', 'User', true)
		ON CONFLICT (lower(email)) WHERE is_active DO NOTHING`,
		userID, email, defaultPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1) AND is_active", email).Scan(&userID)
	}

	return userID
}

// CreateTestDoctor inserts a doctor; a nil schedule leaves availability NULL.
func CreateTestDoctor(t *testing.T, db DBLike, email string, schedule map[string][]string) uuid.UUID {
	t.Helper()

	var raw []byte
	if schedule != nil {
		var err error
		raw, err = json.Marshal(schedule)
		require.NoError(t, err)
	}

	doctorID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO users
		(id, email, password_hash, role, first_name, last_name, specialization, experience, languages, availability, is_active)
		VALUES ($1, $2, $3, 'doctor', 'Anil', 'Sharma', 'General Physician', 10, '{}', $4, true)`,
		doctorID, email, defaultPasswordHash(t), raw)
	require.NoError(t, err)
	return doctorID
}

func CreateTestAppointment(t *testing.T, db DBLike, patientID, doctorID uuid.UUID, date, timeLabel, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO appointments
		(id, patient_id, doctor_id, date, time, symptoms, meeting_url, status)
		VALUES ($1, $2, $3, $4::date, $5, '', '', $6)`,
		id, patientID, doctorID, date, timeLabel, status)
	require.NoError(t, err)
	return id
}

func CreateTestPharmacy(t *testing.T, db DBLike, name, village string, stock map[string]int32) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	id := uuid.New()
	_, err := db.Exec(ctx, `INSERT INTO pharmacies (id, name, village, address, phone) VALUES ($1, $2, $3, '', '')`, id, name, village)
	require.NoError(t, err)
	for medicine, n := range stock {
		_, err := db.Exec(ctx, `INSERT INTO medicines (pharmacy_id, name, stock) VALUES ($1, $2, $3)`, id, medicine, n)
		require.NoError(t, err)
	}
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
