package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nicjohnson145/abv/internal/config"
	"github.com/nicjohnson145/abv/internal/identity"
	"github.com/nicjohnson145/abv/internal/vault"
	"github.com/nicjohnson145/abv/internal/vaultfile"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

var (
	ErrMissingHome          = errors.New("home directory not found in environment")
	ErrUnknownVaultIdentity = errors.New("vault id not found in vault_identity_list")
)

type CLIConfig struct {
	Logger     zerolog.Logger
	Fs         afero.Fs
	Home       string
	ConfigPath string
	Decrypter  vault.Decrypter
}

func NewCLI(conf CLIConfig) (*CLI, error) {
	if conf.Home == "" {
		return nil, ErrMissingHome
	}

	configPath := conf.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(conf.Home, config.DefaultFileName)
	}

	return &CLI{
		log:        conf.Logger,
		fs:         conf.Fs,
		home:       conf.Home,
		configPath: configPath,
		decrypter:  conf.Decrypter,
	}, nil
}

type CLI struct {
	log        zerolog.Logger
	fs         afero.Fs
	home       string
	configPath string
	decrypter  vault.Decrypter
}

// Decrypt finds vaultName in vaultFile and returns its plaintext
func (c *CLI) Decrypt(ctx context.Context, vaultName string, vaultFile string) (string, error) {
	settings, err := config.LoadSettings(c.fs, c.home, c.configPath)
	if err != nil {
		return "", err
	}
	c.log.Debug().Str("ansible_config", settings.AnsibleConfigPath).Msg("loaded settings")

	table := c.identities(settings.IdentityList)

	entry, err := vaultfile.Locate(c.fs, vaultFile, vaultName)
	if err != nil {
		return "", err
	}
	c.log.Debug().Int("line", entry.Line).Str("vault_id", entry.VaultID).Msg("located vault")

	passwordFile, err := c.passwordFile(table, entry.VaultID)
	if err != nil {
		return "", err
	}

	return c.decrypter.Decrypt(ctx, passwordFile, entry.Payload)
}

func (c *CLI) identities(list string) identity.Table {
	table, dropped := identity.Parse(list)
	for _, token := range dropped {
		c.log.Warn().Str("token", token).Msg("ignoring malformed vault identity, expected identity@vaultid")
	}
	c.log.Debug().Strs("vault_ids", table.IDs()).Msg("parsed vault identities")
	return table
}

func (c *CLI) passwordFile(table identity.Table, vaultID string) (string, error) {
	fragment, ok := table.Lookup(vaultID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVaultIdentity, vaultID)
	}
	return PasswordFilePath(fragment, c.home), nil
}

// PasswordFilePath joins home onto the identity fragment, in that order. This
// matches how existing abv configs resolve, see TestPasswordFilePath.
func PasswordFilePath(fragment string, home string) string {
	return filepath.Join(fragment, home)
}
