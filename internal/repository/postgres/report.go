package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"edl-backend/internal/domain"
	"edl-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

const reportColumns = `id, rental_id, direction, mileage, fuel_level, cleanliness_level, comments, agent_name,
	client_signature_url, agent_signature_url, document_url, completed_at, created_on, updated_on`

func (r *reportRepository) Create(ctx context.Context, report *domain.ConditionReport) error {
	query := `INSERT INTO condition_reports (id, rental_id, direction, mileage, fuel_level, cleanliness_level, comments, agent_name, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING created_on, updated_on`
	now := time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		report.ID, report.RentalID, report.Direction, report.Mileage, report.FuelLevel,
		report.CleanlinessLevel, nullString(report.Comments), nullString(report.AgentName), now, now,
	).Scan(&report.CreatedOn, &report.UpdatedOn)
}

func (r *reportRepository) Update(ctx context.Context, report *domain.ConditionReport) error {
	query := `UPDATE condition_reports
	          SET mileage=$2, fuel_level=$3, cleanliness_level=$4, comments=$5, agent_name=$6, updated_on=$7
	          WHERE id=$1 AND completed_at IS NULL`
	res, err := r.db.ExecContext(ctx, query,
		report.ID, report.Mileage, report.FuelLevel, report.CleanlinessLevel,
		nullString(report.Comments), nullString(report.AgentName), time.Now().UTC())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return r.missingOrTerminal(ctx, report.ID)
	}
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.ConditionReport, error) {
	query := `SELECT ` + reportColumns + ` FROM condition_reports WHERE id = $1`
	report, err := scanReport(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *reportRepository) GetByRentalAndDirection(ctx context.Context, rentalID string, direction domain.Direction) (*domain.ConditionReport, error) {
	query := `SELECT ` + reportColumns + ` FROM condition_reports WHERE rental_id = $1 AND direction = $2`
	report, err := scanReport(r.db.QueryRowContext(ctx, query, rentalID, direction))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Finalize is the single state transition from draft to terminal. The
// conditional WHERE keeps it all-or-nothing: a second finalize on the same
// row matches nothing and surfaces as ErrConflict.
func (r *reportRepository) Finalize(ctx context.Context, id, clientSigURL, agentSigURL string, completedAt time.Time) (*domain.ConditionReport, error) {
	query := `UPDATE condition_reports
	          SET client_signature_url=$2, agent_signature_url=$3, completed_at=$4, updated_on=$4
	          WHERE id=$1 AND completed_at IS NULL
	          RETURNING ` + reportColumns
	report, err := scanReport(r.db.QueryRowContext(ctx, query, id, clientSigURL, agentSigURL, completedAt))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.missingOrTerminal(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *reportRepository) SetDocumentURL(ctx context.Context, id, url string) error {
	query := `UPDATE condition_reports SET document_url=$2, updated_on=$3 WHERE id=$1`
	_, err := r.db.ExecContext(ctx, query, id, url, time.Now().UTC())
	return err
}

// missingOrTerminal disambiguates a zero-row conditional update.
func (r *reportRepository) missingOrTerminal(ctx context.Context, id string) error {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM condition_reports WHERE id = $1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	return domain.ErrConflict
}

func (r *reportRepository) GetSnapshot(ctx context.Context, id string) (*domain.Snapshot, error) {
	report, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + rentalDetailsColumns + rentalDetailsFrom + ` WHERE r.id = $1`
	details, err := scanRentalDetails(r.db.QueryRowContext(ctx, query, report.RentalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	damages, err := r.ListDamages(ctx, id)
	if err != nil {
		return nil, err
	}
	photos, err := r.ListPhotos(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Report:  *report,
		Rental:  details.Rental,
		Client:  details.Client,
		Vehicle: details.Vehicle,
		Agency:  details.Agency,
		Damages: damages,
		Photos:  photos,
	}, nil
}

func (r *reportRepository) AddDamage(ctx context.Context, damage *domain.Damage) error {
	query := `INSERT INTO damages (id, report_id, location, description, severity, is_new, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_on`
	return r.db.QueryRowContext(ctx, query,
		damage.ID, damage.ReportID, damage.Location, damage.Description, damage.Severity, damage.IsNew, time.Now().UTC(),
	).Scan(&damage.CreatedOn)
}

func (r *reportRepository) RemoveDamage(ctx context.Context, reportID, damageID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM damages WHERE id = $1 AND report_id = $2`, damageID, reportID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reportRepository) ListDamages(ctx context.Context, reportID string) ([]domain.Damage, error) {
	query := `SELECT id, report_id, location, description, severity, is_new, created_on
	          FROM damages WHERE report_id = $1 ORDER BY created_on, id`
	rows, err := r.db.QueryContext(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var damages []domain.Damage
	for rows.Next() {
		var d domain.Damage
		if err := rows.Scan(&d.ID, &d.ReportID, &d.Location, &d.Description, &d.Severity, &d.IsNew, &d.CreatedOn); err != nil {
			return nil, err
		}
		damages = append(damages, d)
	}
	return damages, rows.Err()
}

func (r *reportRepository) AddPhoto(ctx context.Context, photo *domain.Photo) error {
	query := `INSERT INTO report_photos (id, report_id, photo_url, category, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_on`
	return r.db.QueryRowContext(ctx, query,
		photo.ID, photo.ReportID, photo.PhotoURL, photo.Category, nullString(photo.Description), time.Now().UTC(),
	).Scan(&photo.CreatedOn)
}

func (r *reportRepository) ListPhotos(ctx context.Context, reportID string) ([]domain.Photo, error) {
	query := `SELECT id, report_id, photo_url, category, description, created_on
	          FROM report_photos WHERE report_id = $1 ORDER BY created_on, id`
	rows, err := r.db.QueryContext(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []domain.Photo
	for rows.Next() {
		var p domain.Photo
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.ReportID, &p.PhotoURL, &p.Category, &description, &p.CreatedOn); err != nil {
			return nil, err
		}
		p.Description = description.String
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func scanReport(row rowScanner) (*domain.ConditionReport, error) {
	report := &domain.ConditionReport{}
	var (
		comments, agentName, clientSig, agentSig, documentURL sql.NullString
		completedAt                                           sql.NullTime
	)
	err := row.Scan(
		&report.ID, &report.RentalID, &report.Direction,
		&report.Mileage, &report.FuelLevel, &report.CleanlinessLevel,
		&comments, &agentName, &clientSig, &agentSig, &documentURL,
		&completedAt, &report.CreatedOn, &report.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	report.Comments = comments.String
	report.AgentName = agentName.String
	report.ClientSignatureURL = clientSig.String
	report.AgentSignatureURL = agentSig.String
	report.DocumentURL = documentURL.String
	if completedAt.Valid {
		t := completedAt.Time
		report.CompletedAt = &t
	}
	return report, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
