package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PINPOINT_CONFIG", "")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, "SSO_USER", c.SSO.Header)
	assert.True(t, c.Web.SendUsage)
	assert.False(t, c.SSO.Required)
	assert.Empty(t, c.Users)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pinpoint-web.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[web]
send_usage = false
security_guide_url = "https://guide.example.com"

[sso]
required = true
login_url = "https://sso.example.com/login"

[[users]]
id = "kim"
name = "Kim"
department = "APM"
`), 0o644))

	t.Setenv("PINPOINT_CONFIG", path)
	t.Setenv("PINPOINT_SERVER_ADDR", ":9090")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Server.Addr)
	assert.False(t, c.Web.SendUsage)
	assert.Equal(t, "https://guide.example.com", c.Web.SecurityGuideURL)
	assert.True(t, c.SSO.Required)
	assert.Equal(t, "https://sso.example.com/login", c.SSO.LoginURL)
	assert.Equal(t, []UserConfig{{ID: "kim", Name: "Kim", Department: "APM"}}, c.Users)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("PINPOINT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load()
	assert.Error(t, err)
}
