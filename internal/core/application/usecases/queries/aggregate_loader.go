package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadJob reads a single job row and rebuilds the aggregate.
// Returns ObjectNotFoundError when no row matches the ID.
func loadJob(ctx context.Context, db *gorm.DB, id kernel.UUID) (*job.Job, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT
			id,
			contractor_id,
			title,
			budget,
			min_rating,
			location_latitude,
			location_longitude,
			scheduled_at,
			duration_minutes,
			pickup_required,
			pickup_latitude,
			pickup_longitude,
			status
		FROM jobs
		WHERE id = ?
	`, id.Bytes()).Row()

	var (
		rawID           uuid.UUID
		rawContractorID uuid.NullUUID
		title           string
		budget          float64
		minRating       float64
		latitude        float64
		longitude       float64
		scheduledAt     sql.NullTime
		durationMinutes int
		pickupRequired  bool
		pickupLatitude  sql.NullFloat64
		pickupLongitude sql.NullFloat64
		status          int
	)

	err := row.Scan(
		&rawID,
		&rawContractorID,
		&title,
		&budget,
		&minRating,
		&latitude,
		&longitude,
		&scheduledAt,
		&durationMinutes,
		&pickupRequired,
		&pickupLatitude,
		&pickupLongitude,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	jobID, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoLocation(latitude, longitude)
	if err != nil {
		return nil, err
	}

	var contractorID *kernel.UUID
	if rawContractorID.Valid {
		cID, cErr := kernel.UUIDFromBytes(rawContractorID.UUID[:])
		if cErr != nil {
			return nil, cErr
		}
		contractorID = &cID
	}

	var pickup *kernel.GeoLocation
	if pickupLatitude.Valid && pickupLongitude.Valid {
		p, pErr := kernel.NewGeoLocation(pickupLatitude.Float64, pickupLongitude.Float64)
		if pErr != nil {
			return nil, pErr
		}
		pickup = &p
	}

	skills, err := loadSkills(ctx, db, "SELECT name FROM job_skills WHERE job_id = ? ORDER BY name", rawID)
	if err != nil {
		return nil, err
	}

	var scheduled *time.Time
	if scheduledAt.Valid {
		t := scheduledAt.Time
		scheduled = &t
	}

	return job.RestoreJob(
		jobID,
		title,
		budget,
		skills,
		minRating,
		location,
		scheduled,
		durationMinutes,
		pickupRequired,
		pickup,
		job.Status(status),
		contractorID,
	)
}

// loadAssignedJobs reads all jobs held by the given contractor and rebuilds the aggregates.
func loadAssignedJobs(ctx context.Context, db *gorm.DB, contractorID kernel.UUID) ([]*job.Job, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT id
		FROM jobs
		WHERE status = ? AND contractor_id = ?
		ORDER BY id
	`, int(job.Assigned), contractorID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var rawID uuid.UUID
		if err = rows.Scan(&rawID); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(ids))
	for _, id := range ids {
		j, jobErr := loadJob(ctx, db, id)
		if jobErr != nil {
			return nil, jobErr
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}

// loadAvailableContractors reads every active contractor that is free to take
// work and rebuilds the aggregates. Mirrors the repository's availability rule:
// marked available and holding no job in Assigned status.
func loadAvailableContractors(ctx context.Context, db *gorm.DB) ([]*contractor.Contractor, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			contractors.id,
			contractors.name,
			contractors.grade,
			contractors.rating,
			contractors.active,
			contractors.available,
			contractors.location_latitude,
			contractors.location_longitude,
			contractors.estimated_cost
		FROM contractors
		LEFT JOIN jobs ON contractors.id = jobs.contractor_id AND jobs.status = ?
		WHERE jobs.contractor_id IS NULL
			AND contractors.active = true
			AND contractors.available = true
		ORDER BY contractors.name
	`, int(job.Assigned)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type contractorRow struct {
		id            uuid.UUID
		name          string
		grade         int
		rating        float64
		active        bool
		available     bool
		latitude      float64
		longitude     float64
		estimatedCost float64
	}

	loaded := make([]contractorRow, 0)
	for rows.Next() {
		var r contractorRow
		err = rows.Scan(
			&r.id,
			&r.name,
			&r.grade,
			&r.rating,
			&r.active,
			&r.available,
			&r.latitude,
			&r.longitude,
			&r.estimatedCost,
		)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	pool := make([]*contractor.Contractor, 0, len(loaded))
	for _, r := range loaded {
		id, idErr := kernel.UUIDFromBytes(r.id[:])
		if idErr != nil {
			return nil, idErr
		}

		location, locErr := kernel.NewGeoLocation(r.latitude, r.longitude)
		if locErr != nil {
			return nil, locErr
		}

		skills, skillErr := loadSkills(
			ctx, db, "SELECT name FROM contractor_skills WHERE contractor_id = ? ORDER BY name", r.id,
		)
		if skillErr != nil {
			return nil, skillErr
		}

		c, restoreErr := contractor.RestoreContractor(
			id, r.name, contractor.Grade(r.grade), r.rating,
			r.active, r.available, skills, location, r.estimatedCost,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		pool = append(pool, c)
	}

	return pool, nil
}

// loadSkills reads skill names for a parent row.
func loadSkills(ctx context.Context, db *gorm.DB, query string, parentID uuid.UUID) ([]string, error) {
	rows, err := db.WithContext(ctx).Raw(query, parentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		skills = append(skills, name)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return skills, nil
}
