package repositories

import (
	"colis-service/internal/domain"
	"colis-service/internal/platform/obs"
	"colis-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var _ ports.Loader[domain.Passenger] = (*SQLPassengerRepository)(nil)

type SQLPassengerRepository struct{ DB *sql.DB }

func NewSQLPassengerRepository(db *sql.DB) *SQLPassengerRepository {
	return &SQLPassengerRepository{DB: db}
}

// Return all passengers, newest (highest id) first.
func (s *SQLPassengerRepository) Load(ctx context.Context) (_ []domain.Passenger, err error) {
	defer obs.Time(ctx, "passengers.repository.Load")(&err)

	if s.DB == nil {
		return nil, errors.New("sql passenger repository: DB is nil")
	}

	query := `
	SELECT id, name, phone, identity_no
	FROM passengers
	ORDER BY id DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load passengers: query passengers table: %w", err)
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0, 64)
	for rows.Next() {
		var p domain.Passenger
		var identityNo sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &identityNo); err != nil {
			return nil, fmt.Errorf("load passengers: scan row: %w", err)
		}
		p.IdentityNo = nullString(identityNo)
		passengers = append(passengers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load passengers: row iteration: %w", err)
	}

	return passengers, nil
}
