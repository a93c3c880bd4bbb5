package config

import (
	"fmt"

	"github.com/spf13/afero"
)

const (
	DefaultFileName = ".abv.cfg"

	AnsibleSection    = "ansible"
	ConfigFilePathKey = "config_file_path"

	DefaultsSection      = "defaults"
	VaultIdentityListKey = "vault_identity_list"
)

type Settings struct {
	Path              string
	AnsibleConfigPath string
	IdentityList      string
}

// LoadSettings reads the abv config at path, then the ansible config it
// points at.
func LoadSettings(fs afero.Fs, home string, path string) (*Settings, error) {
	abvDoc, err := Load(fs, path)
	if err != nil {
		return nil, err
	}

	ansiblePath, err := abvDoc.String(AnsibleSection, ConfigFilePathKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ansiblePath = ResolvePath(ansiblePath, home)

	ansibleDoc, err := Load(fs, ansiblePath)
	if err != nil {
		return nil, err
	}

	identities, err := ansibleDoc.String(DefaultsSection, VaultIdentityListKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ansiblePath, err)
	}

	return &Settings{
		Path:              path,
		AnsibleConfigPath: ansiblePath,
		IdentityList:      identities,
	}, nil
}
