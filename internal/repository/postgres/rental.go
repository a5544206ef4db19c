package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"edl-backend/internal/domain"
	"edl-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalDetailsColumns = `r.id, r.client_id, r.vehicle_id, r.agency_id, r.departure_date, r.return_date, r.status, r.external_reference, r.created_on, r.updated_on,
	c.first_name, c.last_name, c.email, c.phone, c.address, c.created_on,
	v.registration, v.brand, v.model, v.color, v.year, v.agency_id, v.created_on,
	a.name, a.address, a.phone, a.email, a.created_on`

const rentalDetailsFrom = ` FROM rentals r
	JOIN clients c ON r.client_id = c.id
	JOIN vehicles v ON r.vehicle_id = v.id
	JOIN agencies a ON r.agency_id = a.id`

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.RentalDetails, error) {
	query := `SELECT ` + rentalDetailsColumns + rentalDetailsFrom + ` WHERE r.id = $1`
	details, err := scanRentalDetails(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.attachReports(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *rentalRepository) ListByDate(ctx context.Context, direction domain.Direction, from, to time.Time) ([]domain.RentalDetails, error) {
	dateColumn := "r.departure_date"
	if direction == domain.DirectionReturn {
		dateColumn = "r.return_date"
	}
	query := `SELECT ` + rentalDetailsColumns + rentalDetailsFrom +
		fmt.Sprintf(` WHERE %s >= $1 AND %s < $2 ORDER BY %s ASC`, dateColumn, dateColumn, dateColumn)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *rentalRepository) Search(ctx context.Context, filter domain.RentalFilter) ([]domain.RentalDetails, error) {
	query := `SELECT ` + rentalDetailsColumns + rentalDetailsFrom
	var conds []string
	var args []interface{}

	addArg := func(cond string, value interface{}) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.AgencyID != "" {
		addArg("r.agency_id = $%d", filter.AgencyID)
	}
	if filter.ClientName != "" {
		addArg("(c.first_name ILIKE $%d OR c.last_name ILIKE $%[1]d)", "%"+filter.ClientName+"%")
	}
	if filter.VehicleRegistration != "" {
		addArg("v.registration ILIKE $%d", "%"+filter.VehicleRegistration+"%")
	}
	if filter.DateFrom != nil {
		addArg("r.departure_date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addArg("r.return_date <= $%d", *filter.DateTo)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY r.departure_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *rentalRepository) collect(ctx context.Context, rows *sql.Rows) ([]domain.RentalDetails, error) {
	var rentals []domain.RentalDetails
	for rows.Next() {
		details, err := scanRentalDetails(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *details)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range rentals {
		if err := r.attachReports(ctx, &rentals[i]); err != nil {
			return nil, err
		}
	}
	return rentals, nil
}

// attachReports loads any existing condition reports for both directions.
func (r *rentalRepository) attachReports(ctx context.Context, details *domain.RentalDetails) error {
	query := `SELECT ` + reportColumns + ` FROM condition_reports WHERE rental_id = $1`
	rows, err := r.db.QueryContext(ctx, query, details.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return err
		}
		switch report.Direction {
		case domain.DirectionDeparture:
			details.DepartureReport = report
		case domain.DirectionReturn:
			details.ReturnReport = report
		}
	}
	return rows.Err()
}

func scanRentalDetails(row rowScanner) (*domain.RentalDetails, error) {
	d := &domain.RentalDetails{}
	var (
		externalRef                            sql.NullString
		clientPhone, clientAddress             sql.NullString
		vehicleColor, vehicleAgency            sql.NullString
		vehicleYear                            sql.NullInt32
		agencyAddress, agencyPhone, agencyMail sql.NullString
	)
	err := row.Scan(
		&d.ID, &d.ClientID, &d.VehicleID, &d.AgencyID, &d.DepartureDate, &d.ReturnDate, &d.Status, &externalRef, &d.CreatedOn, &d.UpdatedOn,
		&d.Client.FirstName, &d.Client.LastName, &d.Client.Email, &clientPhone, &clientAddress, &d.Client.CreatedOn,
		&d.Vehicle.Registration, &d.Vehicle.Brand, &d.Vehicle.Model, &vehicleColor, &vehicleYear, &vehicleAgency, &d.Vehicle.CreatedOn,
		&d.Agency.Name, &agencyAddress, &agencyPhone, &agencyMail, &d.Agency.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	d.ExternalReference = externalRef.String
	d.Client.ID = d.ClientID
	d.Client.Phone = clientPhone.String
	d.Client.Address = clientAddress.String
	d.Vehicle.ID = d.VehicleID
	d.Vehicle.Color = vehicleColor.String
	d.Vehicle.Year = vehicleYear.Int32
	d.Vehicle.AgencyID = vehicleAgency.String
	d.Agency.ID = d.AgencyID
	d.Agency.Address = agencyAddress.String
	d.Agency.Phone = agencyPhone.String
	d.Agency.Email = agencyMail.String
	return d, nil
}
