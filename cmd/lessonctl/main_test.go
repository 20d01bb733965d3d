package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldenhand-backend/internal/services"
)

type cliEnv struct {
	dsn      string
	cacheDir string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("LOG_MODE", "dev")
	return cliEnv{dsn: filepath.Join(dir, "cli.db"), cacheDir: filepath.Join(dir, "cache")}
}

func (e cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--driver", "sqlite", "--dsn", e.dsn, "--cache-dir", e.cacheDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateIsIdempotent(t *testing.T) {
	env := newCLIEnv(t)
	out, err := env.run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "applied V1__lessons.sql")

	out, err = env.run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema is up to date")
}

func TestMigrateExport(t *testing.T) {
	env := newCLIEnv(t)
	exportDir := filepath.Join(t.TempDir(), "sql")
	_, err := env.run(t, "migrate", "--export", exportDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(exportDir, "V1__lessons.sql"))
}

func TestLessonThenCacheCommands(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run(t, "migrate")
	require.NoError(t, err)

	out, err := env.run(t, "lesson", "--subject", "Mathematics", "--topic", "Fractions", "--grade", "5")
	require.NoError(t, err)
	var view struct {
		ID         string `json:"id"`
		GradeLevel int    `json:"grade_level"`
		Difficulty string `json:"difficulty"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.NotEmpty(t, view.ID)
	assert.Equal(t, 5, view.GradeLevel)
	assert.Equal(t, "intermediate", view.Difficulty)
	cacheFile := filepath.Join(env.cacheDir, "lesson_"+view.ID+".json")
	assert.FileExists(t, cacheFile)

	out, err = env.run(t, "cache", "invalidate", view.ID)
	require.NoError(t, err)
	assert.Contains(t, out, view.ID)
	_, statErr := os.Stat(cacheFile)
	assert.True(t, os.IsNotExist(statErr))

	_, err = env.run(t, "lesson", "--subject", "Science", "--topic", "Forces", "--grade", "8")
	require.NoError(t, err)
	_, err = env.run(t, "cache", "clear")
	require.NoError(t, err)
	files, err := filepath.Glob(filepath.Join(env.cacheDir, "lesson_*.json"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLessonRejectsBadInput(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run(t, "migrate")
	require.NoError(t, err)

	_, err = env.run(t, "lesson", "--subject", "Mathematics", "--topic", "Fractions", "--grade", "13")
	assert.Error(t, err)
	_, err = env.run(t, "lesson", "--subject", "Art", "--topic", "Color", "--grade", "5")
	assert.ErrorContains(t, err, "No agent available for subject: Art")
}

func TestCurriculumPlan(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run(t, "migrate")
	require.NoError(t, err)

	out, err := env.run(t, "curriculum", "--subject", "Technology", "--grades", "4,5", "--plan")
	require.NoError(t, err)
	var plan struct {
		Subject string `json:"subject"`
		Grades  []struct {
			GradeLevel int      `json:"grade_level"`
			Topics     []string `json:"topics"`
		} `json:"grade_levels"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "Technology", plan.Subject)
	require.Len(t, plan.Grades, 2)
	assert.NotEmpty(t, plan.Grades[0].Topics)
}

func TestTokenCommand(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run(t, "token", "--user", "admin-1")
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "cli-secret")
	out, err := env.run(t, "token", "--user", "admin-1", "--roles", "admin, teacher")
	require.NoError(t, err)

	tokens := services.TokenService{Secret: []byte("cli-secret"), Issuer: "goldenhand", AccessTTL: time.Hour}
	principal, err := tokens.Authenticate(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "admin-1", principal.UserID)
	assert.Equal(t, []string{"ADMIN", "TEACHER"}, principal.Roles)
}
