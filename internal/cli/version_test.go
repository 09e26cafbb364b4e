package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVersionInfo_LdflagsOverride(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	version, commit, date = "1.2.3", "abc123", "2026-01-01"
	v, c, d := resolveVersionInfo()
	assert.Equal(t, "1.2.3", v)
	assert.Equal(t, "abc123", c)
	assert.Equal(t, "2026-01-01", d)
}

func TestResolveVersionInfo_DevFallback(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	version, commit, date = "dev", "unknown", "unknown"
	v, c, d := resolveVersionInfo()

	assert.NotEmpty(t, v)
	// In a test binary, ReadBuildInfo returns test module info.
	t.Logf("resolved: version=%s commit=%s date=%s", v, c, d)
}
