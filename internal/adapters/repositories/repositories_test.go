package repositories

import (
	"colis-service/internal/domain"
	"colis-service/internal/platform/db"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, InitSchema(conn))
	return conn
}

func strp(s string) *string { return &s }

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{"": SQLite, "sqlite": SQLite, "pgx": Postgres, "postgres": Postgres} {
		got, err := ParseDialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDialect("mysql")
	assert.Error(t, err)

	assert.Equal(t, "?", SQLite.Bind(3))
	assert.Equal(t, "$3", Postgres.Bind(3))
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	conn := openTestDB(t)
	assert.NoError(t, InitSchema(conn))
}

func TestSeedAndLoad(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	vol := 0.4
	seed := Seed{
		Parcels: []ParcelSeed{
			{ID: 1, Sender: "Ahmed", Recipient: "Mariem", Weight: 3, OriginCity: strp("Nouakchott"), DestinationCity: strp("Rosso"), Tariff: 1500, Status: "En transit"},
			{ID: 5, Sender: "Sidi", Recipient: "Khadija", Weight: 1.2, Volume: &vol, Tariff: 700, Status: "Livré", SenderPhone: strp("22 00 11 22")},
		},
		Passengers: []PassengerSeed{
			{ID: 2, Name: "Aicha", Phone: "36 11 22 33", IdentityNo: strp("1234567890")},
			{ID: 9, Name: "Brahim", Phone: "44 55 66 77"},
		},
	}
	require.NoError(t, SeedRecords(conn, SQLite, seed))
	// Seeding again upserts instead of failing on the primary key.
	require.NoError(t, SeedRecords(conn, SQLite, seed))

	parcels, err := NewSQLParcelRepository(conn).Load(ctx)
	require.NoError(t, err)
	require.Len(t, parcels, 2)
	assert.Equal(t, int64(5), parcels[0].ID, "newest first")
	assert.Equal(t, "CLS-XXX-XXX-0005", parcels[0].Code)
	assert.Nil(t, parcels[0].OriginCity)
	assert.Equal(t, domain.ParcelDelivered, parcels[0].Status)
	require.NotNil(t, parcels[0].Volume)
	assert.Equal(t, 0.4, *parcels[0].Volume)
	assert.Equal(t, "CLS-NOU-ROS-0001", parcels[1].Code)
	assert.Equal(t, "Rosso", *parcels[1].DestinationCity)
	assert.Nil(t, parcels[1].Volume)

	passengers, err := NewSQLPassengerRepository(conn).Load(ctx)
	require.NoError(t, err)
	require.Len(t, passengers, 2)
	assert.Equal(t, int64(9), passengers[0].ID)
	assert.Nil(t, passengers[0].IdentityNo)
	assert.Equal(t, "1234567890", *passengers[1].IdentityNo)
}

func TestSeedRejectsInvalidRecords(t *testing.T) {
	conn := openTestDB(t)

	err := SeedRecords(conn, SQLite, Seed{Parcels: []ParcelSeed{{ID: 0, Status: "En transit"}}})
	assert.Error(t, err)

	err = SeedRecords(conn, SQLite, Seed{Parcels: []ParcelSeed{{ID: 1, Status: "Perdu"}}})
	assert.Error(t, err)

	err = SeedRecords(conn, SQLite, Seed{Passengers: []PassengerSeed{{ID: -3}}})
	assert.Error(t, err)
}

func TestSeedFromYAMLFile(t *testing.T) {
	conn := openTestDB(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
colis:
  - id: 3
    expediteur: Ahmed
    destinataire: Mariem
    poids: 2
    villeDepart: Kiffa
    villeArrivee: Atar
    tarif: 900
    statut: En transit
passagers:
  - id: 1
    nom: Fatimetou
    telephone: "36 00 00 01"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, SeedFromFile(conn, SQLite, path))

	parcels, err := NewSQLParcelRepository(conn).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, parcels, 1)
	assert.Equal(t, "CLS-KIF-ATA-0003", parcels[0].Code)

	passengers, err := NewSQLPassengerRepository(conn).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, passengers, 1)
	assert.Equal(t, "36 00 00 01", passengers[0].Phone)
}

func TestReadSeedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"colis":[{"id":1,"statut":"Livré","tarif":10}],"passagers":[]}`), 0o600))

	data, err := ReadSeed(path)
	require.NoError(t, err)
	require.Len(t, data.Parcels, 1)
	assert.Equal(t, "Livré", data.Parcels[0].Status)

	_, err = ReadSeed(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
