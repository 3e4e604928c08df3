package db_test

import (
	"testing"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_AppliesSchema(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{"users", "submissions", "user_metrics", "error_logs", "notifications", "dms_documents"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.Migrate(database))
}

func TestSchema_RejectsUnknownStatus(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO submissions (id, title, team, status, created_date, last_tick, created_at, updated_at)
		VALUES ('s1', 'x', 'Agency', 'Done', '2025-06-15', '2025-06-15T00:00:00Z', '2025-06-15T00:00:00Z', '2025-06-15T00:00:00Z')`)
	require.Error(t, err, "status outside the enum must be rejected")
}

func TestSchema_OneLedgerRowPerUserDay(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO user_metrics (id, user_id, day, hours) VALUES ('m1', 'u1', '2025-06-15', 1.5)`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO user_metrics (id, user_id, day, hours) VALUES ('m2', 'u1', '2025-06-15', 2.0)`)
	require.Error(t, err, "second row for the same (user, day) must violate the unique index")
}
