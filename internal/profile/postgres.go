// internal/profile/postgres.go
package profile

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	"career-workers/internal/models"

	"github.com/lib/pq"
)

const (
	tierQuery = `SELECT certification_tier FROM worker_profiles WHERE user_id = $1`

	qualificationsQuery = `SELECT qualification_name, date_achieved
		FROM worker_qualifications WHERE user_id = $1 ORDER BY id`

	skillsQuery = `SELECT skill_name, skill_level, years_experience
		FROM worker_skills WHERE user_id = $1 ORDER BY id`

	workHistoryQuery = `SELECT job_title, description
		FROM worker_work_history WHERE user_id = $1 ORDER BY start_date DESC NULLS LAST, id`
)

// PGRepository reads profiles from Postgres. Collections keep insertion order.
type PGRepository struct {
	DB           *sql.DB
	QueryTimeout time.Duration
}

func NewPGRepository(db *sql.DB, queryTimeout time.Duration) *PGRepository {
	return &PGRepository{DB: db, QueryTimeout: queryTimeout}
}

func (r *PGRepository) Get(ctx context.Context, userID string) (*models.WorkerProfile, error) {
	if r.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.QueryTimeout)
		defer cancel()
	}

	var tier sql.NullString
	if err := r.DB.QueryRowContext(ctx, tierQuery, userID).Scan(&tier); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load tier: %w", err)
	}

	p := &models.WorkerProfile{
		UserID:            userID,
		CertificationTier: tier.String,
	}

	var err error
	if p.Qualifications, err = r.qualifications(ctx, userID); err != nil {
		return nil, err
	}
	if p.Skills, err = r.skills(ctx, userID); err != nil {
		return nil, err
	}
	if p.WorkHistory, err = r.workHistory(ctx, userID); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PGRepository) qualifications(ctx context.Context, userID string) ([]models.Qualification, error) {
	rows, err := r.DB.QueryContext(ctx, qualificationsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("load qualifications: %w", err)
	}
	defer rows.Close()

	out := []models.Qualification{}
	for rows.Next() {
		var (
			name     string
			achieved sql.NullString
		)
		if err := rows.Scan(&name, &achieved); err != nil {
			return nil, fmt.Errorf("scan qualification: %w", err)
		}
		q := models.Qualification{QualificationName: name}
		if achieved.Valid {
			q.DateAchieved = &achieved.String
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load qualifications: %w", err)
	}
	return out, nil
}

func (r *PGRepository) skills(ctx context.Context, userID string) ([]models.Skill, error) {
	rows, err := r.DB.QueryContext(ctx, skillsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	defer rows.Close()

	out := []models.Skill{}
	for rows.Next() {
		var (
			name  string
			level sql.NullString
			years sql.NullFloat64
		)
		if err := rows.Scan(&name, &level, &years); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		out = append(out, models.Skill{
			SkillName:       name,
			SkillLevel:      level.String,
			YearsExperience: years.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	return out, nil
}

func (r *PGRepository) workHistory(ctx context.Context, userID string) ([]models.WorkHistoryEntry, error) {
	rows, err := r.DB.QueryContext(ctx, workHistoryQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("load work history: %w", err)
	}
	defer rows.Close()

	out := []models.WorkHistoryEntry{}
	for rows.Next() {
		var title, description sql.NullString
		if err := rows.Scan(&title, &description); err != nil {
			return nil, fmt.Errorf("scan work history: %w", err)
		}
		out = append(out, models.WorkHistoryEntry{
			JobTitle:    nullable(title),
			Description: nullable(description),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load work history: %w", err)
	}
	return out, nil
}

// IsConnectionError reports whether err means Postgres could not be reached or
// dropped the connection, as opposed to a failed query on a healthy session.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// SQLSTATE class 08: connection exception
		return pqErr.Code.Class() == "08"
	}
	return false
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
