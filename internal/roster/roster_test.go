package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeRoster(t, `
participants:
  - id: alice
    label: Alice A.
  - id: bob
`)

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []entities.Participant{
		{ID: "alice", Label: "Alice A."},
		{ID: "bob"},
	}, got)
	require.Equal(t, "bob", got[1].DisplayLabel())
}

func TestLoadEmptyRoster(t *testing.T) {
	path := writeRoster(t, "participants: []\n")
	_, err := Load(path)
	require.ErrorIs(t, err, entities.ErrRosterEmpty)
}

func TestLoadMissingID(t *testing.T) {
	path := writeRoster(t, "participants:\n  - label: Nameless\n")
	_, err := Load(path)
	require.ErrorIs(t, err, entities.ErrRosterInvalid)
}

func TestLoadDuplicateID(t *testing.T) {
	path := writeRoster(t, "participants:\n  - id: alice\n  - id: alice\n")
	_, err := Load(path)
	require.ErrorIs(t, err, entities.ErrRosterInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeRoster(t, "participants: [unbalanced")
	_, err := Load(path)
	require.Error(t, err)
}
