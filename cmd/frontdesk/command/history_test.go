package command

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasbasham/frontdesk"
	"github.com/tomasbasham/frontdesk/archive"
	"github.com/tomasbasham/frontdesk/internal/config"
)

func writeConfig(t *testing.T, archivePath string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "frontdesk.yaml")
	body := "archive:\n  driver: file\n  path: " + archivePath + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestHistoryCommand(t *testing.T) {
	dat := filepath.Join(t.TempDir(), "people.dat")
	require.NoError(t, archive.NewFile(dat).Append(context.Background(), []frontdesk.Person{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Age: 36, Phone: "555-0101", ServiceDate: "monday"},
		{ID: 2, FirstName: "Charles", LastName: "Babbage", Age: 79, Phone: "555-0102", ServiceDate: "tuesday"},
	}))

	configPath := writeConfig(t, dat)
	c := History{ConfigPath: &configPath}.Command(context.Background())

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{})
	require.NoError(t, c.Execute())

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "SERVICE DATE")
	assert.Contains(t, string(lines[1]), "Charles Babbage")
	assert.Contains(t, string(lines[1]), "high")
	assert.Contains(t, string(lines[2]), "Ada Lovelace")
	assert.Contains(t, string(lines[2]), "low")
}

func TestHistoryCommand_JSON(t *testing.T) {
	dat := filepath.Join(t.TempDir(), "people.dat")
	require.NoError(t, archive.NewFile(dat).Append(context.Background(), []frontdesk.Person{
		{ID: 5, FirstName: "Grace", Age: 85},
	}))

	configPath := writeConfig(t, dat)
	c := History{ConfigPath: &configPath}.Command(context.Background())

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--json"})
	require.NoError(t, c.Execute())

	var entries []struct {
		FirstName string         `json:"first_name"`
		Tier      frontdesk.Tier `json:"tier"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Grace", entries[0].FirstName)
	assert.Equal(t, frontdesk.Tiers.High, entries[0].Tier)
	assert.Contains(t, out.String(), `"tier": "high"`)
}

func TestHistoryCommand_TierFilter(t *testing.T) {
	dat := filepath.Join(t.TempDir(), "people.dat")
	require.NoError(t, archive.NewFile(dat).Append(context.Background(), []frontdesk.Person{
		{ID: 1, FirstName: "Ada", Age: 36},
		{ID: 2, FirstName: "Charles", Age: 79},
		{ID: 3, FirstName: "Mary", Age: 50},
		{ID: 4, FirstName: "Alan", Age: 41},
	}))
	configPath := writeConfig(t, dat)

	tests := map[string]struct {
		tier string
		want []string
	}{
		"by name": {
			tier: "mid",
			want: []string{"Alan", "Mary"},
		},
		"by ordinal": {
			tier: "1",
			want: []string{"Charles"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := History{ConfigPath: &configPath}.Command(context.Background())

			var out bytes.Buffer
			c.SetOut(&out)
			c.SetArgs([]string{"--json", "--tier", tt.tier})
			require.NoError(t, c.Execute())

			var people []frontdesk.Person
			require.NoError(t, json.Unmarshal(out.Bytes(), &people))

			got := make([]string, 0, len(people))
			for _, p := range people {
				got = append(got, p.FirstName)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistoryCommand_UnknownTier(t *testing.T) {
	configPath := writeConfig(t, filepath.Join(t.TempDir(), "people.dat"))
	c := History{ConfigPath: &configPath}.Command(context.Background())
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{"--tier", "urgent"})

	err := c.Execute()
	assert.ErrorIs(t, err, frontdesk.ErrUnknownTier)
}

func TestPrintHistory_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printHistory(&out, nil, false))
	assert.Equal(t, "There are no people in attendance\n", out.String())
}

func TestOpenArchive(t *testing.T) {
	cfg := &config.Config{Archive: config.Archive{Driver: config.FileDriver, Path: "x.dat"}}

	store, closeStore, err := openArchive(cfg)
	require.NoError(t, err)
	require.NoError(t, closeStore())
	assert.IsType(t, &archive.File{}, store)

	cfg.Archive.Driver = "tape"
	_, _, err = openArchive(cfg)
	assert.ErrorContains(t, err, `archive driver "tape" is not supported`)
}
