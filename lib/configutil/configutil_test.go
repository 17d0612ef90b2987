package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl   string   `json:"base_url"`
	Countries []string `json:"countries"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "covidtrends.json5")
	writeFile(t, path, `{
		// comments are allowed
		base_url: "https://example.com",
		countries: ["Philippines"],
	}`)

	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", config.BaseUrl)
	require.Equal(t, []string{"Philippines"}, config.Countries)
}

func TestReadConfigLocalOverrideWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "covidtrends.json5"), `{
		base_url: "https://example.com",
		countries: ["Philippines", "China"],
	}`)
	writeFile(t, filepath.Join(dir, "covidtrends.local.json5"), `{
		base_url: "http://localhost:8080",
	}`)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "covidtrends.json5"))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", config.BaseUrl)
	require.Equal(t, []string{"Philippines", "China"}, config.Countries)
}

func TestReadConfigOnlyLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "covidtrends.local.json5"), `{
		base_url: "http://localhost:8080",
	}`)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "covidtrends.json5"))
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", config.BaseUrl)
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadConfig[testConfig](filepath.Join(dir, "covidtrends.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
