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

var _ ports.Loader[domain.Parcel] = (*SQLParcelRepository)(nil)

// SQL-backed parcel loader. The query is portable across SQLite and
// PostgreSQL.
type SQLParcelRepository struct{ DB *sql.DB }

func NewSQLParcelRepository(db *sql.DB) *SQLParcelRepository {
	return &SQLParcelRepository{DB: db}
}

// Return all parcels, newest (highest id) first.
func (s *SQLParcelRepository) Load(ctx context.Context) (_ []domain.Parcel, err error) {
	defer obs.Time(ctx, "parcels.repository.Load")(&err)

	if s.DB == nil {
		return nil, errors.New("sql parcel repository: DB is nil")
	}

	query := `
	SELECT
		id, code, sender, recipient, sender_phone, recipient_phone,
		weight, volume, origin_city, destination_city, tariff, status
	FROM parcels
	ORDER BY id DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load parcels: query parcels table: %w", err)
	}
	defer rows.Close()

	parcels := make([]domain.Parcel, 0, 64)
	for rows.Next() {
		var (
			p                           domain.Parcel
			status                      string
			senderPhone, recipientPhone sql.NullString
			originCity, destinationCity sql.NullString
			volume                      sql.NullFloat64
		)
		err := rows.Scan(
			&p.ID, &p.Code, &p.Sender, &p.Recipient, &senderPhone, &recipientPhone,
			&p.Weight, &volume, &originCity, &destinationCity, &p.Tariff, &status,
		)
		if err != nil {
			return nil, fmt.Errorf("load parcels: scan row: %w", err)
		}
		p.Status = domain.ParcelStatus(status)
		p.SenderPhone = nullString(senderPhone)
		p.RecipientPhone = nullString(recipientPhone)
		p.OriginCity = nullString(originCity)
		p.DestinationCity = nullString(destinationCity)
		if volume.Valid {
			v := volume.Float64
			p.Volume = &v
		}
		parcels = append(parcels, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load parcels: row iteration: %w", err)
	}

	return parcels, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
