package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("testdata", func(t *testing.T) {
		home, err := filepath.Abs("testdata/home")
		require.NoError(t, err)

		got, err := LoadSettings(afero.NewOsFs(), home, filepath.Join(home, DefaultFileName))
		require.NoError(t, err)
		require.Equal(t, &Settings{
			Path:              filepath.Join(home, DefaultFileName),
			AnsibleConfigPath: filepath.Join(home, "ansible.cfg"),
			IdentityList:      "alice@id1, bob@id2",
		}, got)
	})

	t.Run("relative ansible path is under home", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/home/me/.abv.cfg", []byte("ansible:\n  config_file_path: ansible.cfg\n"), 0644))
		require.NoError(t, afero.WriteFile(fs, "/home/me/ansible.cfg", []byte("defaults:\n  vault_identity_list: \"alice@id1, bob@id2\"\n"), 0644))

		got, err := LoadSettings(fs, "/home/me", "/home/me/.abv.cfg")
		require.NoError(t, err)
		require.Equal(t, "/home/me/ansible.cfg", got.AnsibleConfigPath)
		require.Equal(t, "alice@id1, bob@id2", got.IdentityList)
	})

	t.Run("missing abv config", func(t *testing.T) {
		_, err := LoadSettings(afero.NewMemMapFs(), "/home/me", "/home/me/.abv.cfg")
		require.ErrorIs(t, err, ErrConfigRead)
	})

	t.Run("missing ansible config", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/home/me/.abv.cfg", []byte("ansible:\n  config_file_path: /nope.cfg\n"), 0644))

		_, err := LoadSettings(fs, "/home/me", "/home/me/.abv.cfg")
		require.ErrorIs(t, err, ErrConfigRead)
	})

	t.Run("missing identity list", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/home/me/.abv.cfg", []byte("ansible:\n  config_file_path: ansible.cfg\n"), 0644))
		require.NoError(t, afero.WriteFile(fs, "/home/me/ansible.cfg", []byte("[defaults]\nforks = 5\n"), 0644))

		_, err := LoadSettings(fs, "/home/me", "/home/me/.abv.cfg")
		require.ErrorIs(t, err, ErrConfigParse)
	})

	t.Run("wrong shape", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/home/me/.abv.cfg", []byte("config_file_path: ansible.cfg\n"), 0644))

		_, err := LoadSettings(fs, "/home/me", "/home/me/.abv.cfg")
		require.ErrorIs(t, err, ErrConfigParse)
	})
}
