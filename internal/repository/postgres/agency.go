package postgres

import (
	"context"
	"database/sql"
	"errors"

	"edl-backend/internal/domain"
	"edl-backend/internal/repository"
)

type agencyRepository struct {
	db *sql.DB
}

func NewAgencyRepository(db *sql.DB) repository.AgencyRepository {
	return &agencyRepository{db: db}
}

func (r *agencyRepository) List(ctx context.Context) ([]domain.Agency, error) {
	query := `SELECT id, name, address, phone, email, created_on FROM agencies ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agencies []domain.Agency
	for rows.Next() {
		a, err := scanAgency(rows)
		if err != nil {
			return nil, err
		}
		agencies = append(agencies, *a)
	}
	return agencies, rows.Err()
}

func (r *agencyRepository) GetByID(ctx context.Context, id string) (*domain.Agency, error) {
	query := `SELECT id, name, address, phone, email, created_on FROM agencies WHERE id = $1`
	a, err := scanAgency(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAgency(row rowScanner) (*domain.Agency, error) {
	a := &domain.Agency{}
	var address, phone, email sql.NullString
	if err := row.Scan(&a.ID, &a.Name, &address, &phone, &email, &a.CreatedOn); err != nil {
		return nil, err
	}
	a.Address = address.String
	a.Phone = phone.String
	a.Email = email.String
	return a, nil
}
