package repositories

import (
	"colis-service/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Initialize the database schema. The DDL is valid for both SQLite and
// PostgreSQL.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createParcelsQuery := `
	CREATE TABLE IF NOT EXISTS parcels (
		id BIGINT PRIMARY KEY,
		code TEXT NOT NULL,
		sender TEXT NOT NULL,
		recipient TEXT NOT NULL,
		sender_phone TEXT,
		recipient_phone TEXT,
		weight DOUBLE PRECISION NOT NULL,
		volume DOUBLE PRECISION,
		origin_city TEXT,
		destination_city TEXT,
		tariff DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL
	);
	`

	createPassengersQuery := `
	CREATE TABLE IF NOT EXISTS passengers (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		identity_no TEXT
	);
	`

	createKeyValueQuery := `
	CREATE TABLE IF NOT EXISTS kv_store (
		name TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_parcels_route
	ON parcels(origin_city, destination_city);
	`

	statements := []string{
		createParcelsQuery,
		createPassengersQuery,
		createKeyValueQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ParcelSeed struct {
	ID              int64    `json:"id" yaml:"id"`
	Sender          string   `json:"expediteur" yaml:"expediteur"`
	Recipient       string   `json:"destinataire" yaml:"destinataire"`
	SenderPhone     *string  `json:"telephoneExpediteur" yaml:"telephoneExpediteur"`
	RecipientPhone  *string  `json:"telephoneDestinataire" yaml:"telephoneDestinataire"`
	Weight          float64  `json:"poids" yaml:"poids"`
	Volume          *float64 `json:"volume" yaml:"volume"`
	OriginCity      *string  `json:"villeDepart" yaml:"villeDepart"`
	DestinationCity *string  `json:"villeArrivee" yaml:"villeArrivee"`
	Tariff          float64  `json:"tarif" yaml:"tarif"`
	Status          string   `json:"statut" yaml:"statut"`
}

type PassengerSeed struct {
	ID         int64   `json:"id" yaml:"id"`
	Name       string  `json:"nom" yaml:"nom"`
	Phone      string  `json:"telephone" yaml:"telephone"`
	IdentityNo *string `json:"nniPassport" yaml:"nniPassport"`
}

// Seed is the content of a seed file.
type Seed struct {
	Parcels    []ParcelSeed    `json:"colis" yaml:"colis"`
	Passengers []PassengerSeed `json:"passagers" yaml:"passagers"`
}

// ReadSeed parses a JSON or YAML (.yaml/.yml) seed file.
func ReadSeed(path string) (Seed, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: read %q: %w", path, err)
	}

	var data Seed
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &data); err != nil {
			return Seed{}, fmt.Errorf("read seed: parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(bytes, &data); err != nil {
			return Seed{}, fmt.Errorf("read seed: parse json: %w", err)
		}
	}

	return data, nil
}

// Populate the database with the records of a seed file. Parcel codes are
// minted from the seeded id and cities; existing rows are replaced.
func SeedFromFile(db *sql.DB, dialect Dialect, path string) error {
	data, err := ReadSeed(path)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return SeedRecords(db, dialect, data)
}

func SeedRecords(db *sql.DB, dialect Dialect, data Seed) error {
	if db == nil {
		return errors.New("seed: DB is nil")
	}

	for i, p := range data.Parcels {
		if p.ID <= 0 {
			return fmt.Errorf("seed: invalid parcel id at index %d: %d", i+1, p.ID)
		}
		if !domain.ParcelStatus(p.Status).Valid() {
			return fmt.Errorf("seed: parcel id=%d: invalid status %q", p.ID, p.Status)
		}
	}
	for i, p := range data.Passengers {
		if p.ID <= 0 {
			return fmt.Errorf("seed: invalid passenger id at index %d: %d", i+1, p.ID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	b := dialect.Bind
	parcelQuery := fmt.Sprintf(`
	INSERT INTO parcels (
		id, code, sender, recipient, sender_phone, recipient_phone,
		weight, volume, origin_city, destination_city, tariff, status
	)
	VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
	ON CONFLICT (id) DO UPDATE
	SET code = EXCLUDED.code,
		sender = EXCLUDED.sender,
		recipient = EXCLUDED.recipient,
		sender_phone = EXCLUDED.sender_phone,
		recipient_phone = EXCLUDED.recipient_phone,
		weight = EXCLUDED.weight,
		volume = EXCLUDED.volume,
		origin_city = EXCLUDED.origin_city,
		destination_city = EXCLUDED.destination_city,
		tariff = EXCLUDED.tariff,
		status = EXCLUDED.status;
	`, b(1), b(2), b(3), b(4), b(5), b(6), b(7), b(8), b(9), b(10), b(11), b(12))

	parcelStmt, err := tx.Prepare(parcelQuery)
	if err != nil {
		return fmt.Errorf("seed: prepare parcel insert: %w", err)
	}
	defer parcelStmt.Close()

	for _, p := range data.Parcels {
		code := domain.ParcelCode(p.ID, p.OriginCity, p.DestinationCity)
		if _, err := parcelStmt.Exec(
			p.ID, code, p.Sender, p.Recipient, p.SenderPhone, p.RecipientPhone,
			p.Weight, p.Volume, p.OriginCity, p.DestinationCity, p.Tariff, p.Status,
		); err != nil {
			return fmt.Errorf("seed: insert parcel id=%d: %w", p.ID, err)
		}
	}

	passengerQuery := fmt.Sprintf(`
	INSERT INTO passengers (id, name, phone, identity_no)
	VALUES (%s, %s, %s, %s)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		phone = EXCLUDED.phone,
		identity_no = EXCLUDED.identity_no;
	`, b(1), b(2), b(3), b(4))

	passengerStmt, err := tx.Prepare(passengerQuery)
	if err != nil {
		return fmt.Errorf("seed: prepare passenger insert: %w", err)
	}
	defer passengerStmt.Close()

	for _, p := range data.Passengers {
		if _, err := passengerStmt.Exec(p.ID, p.Name, p.Phone, p.IdentityNo); err != nil {
			return fmt.Errorf("seed: insert passenger id=%d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}
