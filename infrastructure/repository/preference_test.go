package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePreferenceRepository_MissingFileIsNotAnError(t *testing.T) {
	repo := NewFilePreferenceRepository(filepath.Join(t.TempDir(), "preferences.json"))

	value, found, err := repo.Get("dashboard.theme")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestFilePreferenceRepository_RoundTrip(t *testing.T) {
	repo := NewFilePreferenceRepository(filepath.Join(t.TempDir(), "preferences.json"))

	require.NoError(t, repo.Set("dashboard.theme", "dark"))

	value, found, err := repo.Get("dashboard.theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
}

func TestFilePreferenceRepository_SetPreservesOtherKeys(t *testing.T) {
	repo := NewFilePreferenceRepository(filepath.Join(t.TempDir(), "preferences.json"))

	require.NoError(t, repo.Set("dashboard.theme", "dark"))
	require.NoError(t, repo.Set("dashboard.locale", "pt-BR"))
	require.NoError(t, repo.Set("dashboard.theme", "light"))

	theme, found, err := repo.Get("dashboard.theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", theme)

	locale, found, err := repo.Get("dashboard.locale")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "pt-BR", locale)
}

func TestFilePreferenceRepository_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")

	require.NoError(t, NewFilePreferenceRepository(path).Set("dashboard.theme", "dark"))

	value, found, err := NewFilePreferenceRepository(path).Get("dashboard.theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
}

func TestFilePreferenceRepository_CreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "preferences.json")

	repo := NewFilePreferenceRepository(path)
	require.NoError(t, repo.Set("dashboard.theme", "dark"))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFilePreferenceRepository_CorruptFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrompido"), 0o644))

	repo := NewFilePreferenceRepository(path)

	_, _, err := repo.Get("dashboard.theme")
	assert.Error(t, err)
}
