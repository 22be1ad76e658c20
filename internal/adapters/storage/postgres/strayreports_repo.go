package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"straysense/internal/domain/strayreports"
)

type StrayReportsRepo struct {
	db *sql.DB
}

func NewStrayReportsRepo(db *sql.DB) *StrayReportsRepo {
	return &StrayReportsRepo{db: db}
}

const reportColumns = `
	r.report_id, r.user_id, r.description,
	COALESCE(r.animal_type,''), COALESCE(r.animal_size,''), COALESCE(r.visible_injuries,''),
	COALESCE(r.province,''), COALESCE(r.city,''), r.latitude, r.longitude,
	r.status, r.report_date, r.accepted_date, r.processed_animal_id`

func scanReport(row interface{ Scan(...any) error }, withReporter bool) (strayreports.Report, error) {
	var rep strayreports.Report
	var status string

	dest := []any{
		&rep.ID,
		&rep.UserID,
		&rep.Description,
		&rep.AnimalType,
		&rep.AnimalSize,
		&rep.VisibleInjuries,
		&rep.Province,
		&rep.City,
		&rep.Latitude,
		&rep.Longitude,
		&status,
		&rep.ReportDate,
		&rep.AcceptedDate,
		&rep.ProcessedAnimalID,
	}
	if withReporter {
		dest = append(dest, &rep.ReporterFirstName, &rep.ReporterLastName)
	}

	if err := row.Scan(dest...); err != nil {
		return strayreports.Report{}, err
	}
	rep.Status = strayreports.Status(status)
	return rep, nil
}

func (r *StrayReportsRepo) Create(ctx context.Context, rep strayreports.Report) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stray_reports (
			report_id, user_id, description,
			animal_type, animal_size, visible_injuries,
			province, city, latitude, longitude,
			status, report_date, accepted_date, processed_animal_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		rep.ID,
		rep.UserID,
		rep.Description,
		rep.AnimalType,
		rep.AnimalSize,
		rep.VisibleInjuries,
		rep.Province,
		rep.City,
		rep.Latitude,
		rep.Longitude,
		string(rep.Status),
		rep.ReportDate,
		rep.AcceptedDate,
		rep.ProcessedAnimalID,
	)
	return err
}

func (r *StrayReportsRepo) Update(ctx context.Context, rep strayreports.Report) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE stray_reports SET
			description = $2, animal_type = $3, animal_size = $4,
			visible_injuries = $5, province = $6, city = $7,
			latitude = $8, longitude = $9,
			status = $10, accepted_date = $11, processed_animal_id = $12
		WHERE report_id = $1
	`,
		rep.ID,
		rep.Description,
		rep.AnimalType,
		rep.AnimalSize,
		rep.VisibleInjuries,
		rep.Province,
		rep.City,
		rep.Latitude,
		rep.Longitude,
		string(rep.Status),
		rep.AcceptedDate,
		rep.ProcessedAnimalID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return strayreports.ErrNotFound
	}
	return nil
}

func (r *StrayReportsRepo) GetByID(ctx context.Context, id string) (strayreports.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return strayreports.Report{}, strayreports.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT `+reportColumns+` FROM stray_reports r WHERE r.report_id = $1`, id)

	rep, err := scanReport(row, false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return strayreports.Report{}, strayreports.ErrNotFound
		}
		return strayreports.Report{}, err
	}
	return rep, nil
}

func (r *StrayReportsRepo) ListByUser(ctx context.Context, userID string) ([]strayreports.Report, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reportColumns+`
		FROM stray_reports r
		WHERE r.user_id = $1
		ORDER BY r.report_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]strayreports.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows, false)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

// List devuelve todos los reportes con el nombre del reportante (vista admin).
func (r *StrayReportsRepo) List(ctx context.Context) ([]strayreports.Report, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reportColumns+`, u.first_name, u.last_name
		FROM stray_reports r
		JOIN users u ON u.user_id = r.user_id
		ORDER BY r.report_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]strayreports.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}
