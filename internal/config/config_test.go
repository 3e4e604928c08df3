package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeSeed(t, `
users:
  - name: Hemanth
    password: hunter2
    role: admin
  - name: Krishna
    password: pw
    role: member
    team: Agency
teams:
  - name: Agency
    lead: Theresa
    build_team:
      - name: Krishna
        buddy: Hemanth, Niharika
        notes: "-"
    qa_team:
      - name: Priya
        buddy: Shahzad
        notes: QM1P
submissions:
  - title: Agency Site Build
    task_title: Homepage
    team: Agency
    status: In Progress
    created_date: 2026-01-05
`)

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Users, 2)
	assert.Equal(t, "Hemanth", seed.Users[0].Name)
	assert.Equal(t, "admin", seed.Users[0].Role)
	require.Len(t, seed.Submissions, 1)
	assert.Equal(t, "In Progress", seed.Submissions[0].Status)

	structures := seed.TeamStructures()
	require.Len(t, structures, 1)
	assert.Equal(t, domain.TeamAgency, structures[0].Name)
	assert.Equal(t, "Theresa", structures[0].Lead)
	require.Len(t, structures[0].BuildTeam, 1)
	assert.Equal(t, "Krishna", structures[0].BuildTeam[0].Name)
	assert.Equal(t, "Hemanth, Niharika", structures[0].BuildTeam[0].Buddy)
	require.Len(t, structures[0].QATeam, 1)
	assert.Equal(t, "QM1P", structures[0].QATeam[0].Notes)
}

func TestLoadSeed_EnvSubstitution(t *testing.T) {
	t.Setenv("SEED_ADMIN_PASSWORD", "from-env")
	path := writeSeed(t, `
users:
  - name: Admin
    password: ${SEED_ADMIN_PASSWORD}
    role: admin
`)

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Users, 1)
	assert.Equal(t, "from-env", seed.Users[0].Password)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
