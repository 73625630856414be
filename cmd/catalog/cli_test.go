package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_LOG_LEVEL", "silent")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCatalogCommands(t *testing.T) {
	setupEnv(t)
	const guide = "https://example.org/guides/ridge"

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "route_guides")

	out, err = run(t, "import", filepath.Join("..", "..", "internal", "bundle", "testdata", "ridge.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Imported "+guide+" (2 segments, 3 points)")

	out, err = run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "No violations found")

	out, err = run(t, "export-geojson", guide)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "FeatureCollection", doc["type"])

	out, err = run(t, "export-geojson", "--format", "wkb", guide)
	require.NoError(t, err)
	track := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(track, "0102000000"), out)

	out, err = run(t, "decode-track", track)
	require.NoError(t, err)
	var line map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &line))
	assert.Equal(t, "LineString", line["type"])
	assert.NotEmpty(t, line["coordinates"])

	_, err = run(t, "export-geojson", "--format", "kml", guide)
	assert.ErrorContains(t, err, `unknown format "kml"`)

	// A fresh root command starts from the flag defaults.
	out, err = run(t, "export-geojson", guide)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "FeatureCollection", doc["type"])

	out, err = run(t, "delete-guide", guide)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted "+guide)
	assert.Contains(t, out, "route_points")

	_, err = run(t, "delete-guide", guide)
	assert.ErrorContains(t, err, "record not found")
}

func TestDecodeTrack(t *testing.T) {
	// LINESTRING(-3 54, -3.1 54.1), little endian.
	const track = "010200000002000000" +
		"00000000000008c0" + "0000000000004b40" +
		"cdcccccccccc08c0" + "cdcccccccc0c4b40"

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(track + "\n"))
	cmd.SetArgs([]string{"decode-track", "-"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"type":"LineString"`)
	assert.Contains(t, out.String(), `[[-3,54],[-3.1,54.1]]`)

	_, err := run(t, "decode-track", "not-hex")
	assert.ErrorContains(t, err, "track is not hex")

	// A point is valid WKB but not a track.
	_, err = run(t, "decode-track", "0101000000000000000000f03f0000000000000040")
	assert.ErrorContains(t, err, "want a line string")
}
