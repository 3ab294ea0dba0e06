package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`
# comment
jwt_secret = "s3cret"
APP_PORT=9090
BROKEN_LINE
`), 0o644))

	out := map[string]string{}
	require.NoError(t, mergeDotEnv(path, out))

	assert.Equal(t, "s3cret", out["JWT_SECRET"])
	assert.Equal(t, "9090", out["APP_PORT"])
	assert.NotContains(t, out, "BROKEN_LINE")
}

func TestMergeJSONConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"db_driver":"postgres","notify_workers":4,"auto_migrate":false}`), 0o644))

	out := map[string]string{}
	require.NoError(t, mergeJSONConfig(path, out))

	assert.Equal(t, "postgres", out["DB_DRIVER"])
	assert.Equal(t, "4", out["NOTIFY_WORKERS"])
	assert.Equal(t, "false", out["AUTO_MIGRATE"])
}

func TestTypedGetters(t *testing.T) {
	Set("JWT_TTL", "90m")
	Set("NOTIFY_WORKERS", "not-a-number")
	Set("CORS_ORIGINS", " https://a.example , ,https://b.example")

	assert.Equal(t, 90*time.Minute, JWTTTL())
	assert.Equal(t, 2, NotifyWorkers())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, CORSOrigins())
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	Set("APP_ENV", "production")
	Set("JWT_SECRET", defaultJWTSecret)
	t.Cleanup(func() { Set("APP_ENV", defaultAppEnv) })

	assert.Error(t, Validate())

	Set("JWT_SECRET", "a-real-secret")
	assert.NoError(t, Validate())
}
