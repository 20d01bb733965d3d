package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{"lesson_id", "abc", "access_token", "eyJ", "dangling"})
	assert.Equal(t, []interface{}{"lesson_id", "abc", "access_token", "[REDACTED]", "dangling"}, out)
}

func TestNopLoggerAcceptsCalls(t *testing.T) {
	log := Nop().With("component", "test")
	log.Info("hello", "k", 1)
	log.Warn("odd", "k")
	log.Sync()
}

func TestNewWriterEncodesJSONInProd(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter("prod", &buf)
	log.Info("lesson cached", "lesson_id", "l-1", "jwt_secret", "s3cr3t")
	log.Sync()
	out := buf.String()
	assert.Contains(t, out, `"msg":"lesson cached"`)
	assert.Contains(t, out, `"lesson_id":"l-1"`)
	assert.NotContains(t, out, "s3cr3t")
}
