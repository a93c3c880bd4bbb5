package vault

import (
	"context"
	"fmt"

	"github.com/nicjohnson145/abv/internal/util"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

type AnsibleVaultConfig struct {
	Logger zerolog.Logger
	Fs     afero.Fs
	Binary string
}

func NewAnsibleVault(conf AnsibleVaultConfig) *AnsibleVault {
	return &AnsibleVault{
		log:    conf.Logger,
		fs:     conf.Fs,
		binary: conf.Binary,
	}
}

// AnsibleVault decrypts by shelling out to the ansible-vault binary. The call
// blocks until the binary exits and is never retried.
type AnsibleVault struct {
	log    zerolog.Logger
	fs     afero.Fs
	binary string
}

func (a *AnsibleVault) Decrypt(ctx context.Context, passwordFile string, payload string) (string, error) {
	if exists, err := util.PathExists(a.fs, passwordFile); err != nil {
		a.log.Debug().Err(err).Str("path", passwordFile).Msg("unable to stat password file")
	} else if !exists {
		a.log.Warn().Str("path", passwordFile).Msg("password file does not exist, handing off to ansible-vault anyway")
	}

	args := []string{"decrypt", "--vault-password-file", passwordFile}
	a.log.Debug().Str("binary", a.binary).Strs("args", args).Msg("running decrypt")

	result, err := ExecuteOSCommand(ctx, payload, a.binary, args...)
	if err != nil {
		return "", fmt.Errorf("error running %v: %w", a.binary, err)
	}

	if result.ExitCode != 0 {
		a.log.Debug().Int("exit_code", result.ExitCode).Msg("decrypt failed")
		return "", &DecryptError{
			Stderr:   result.Stderr,
			ExitCode: result.ExitCode,
		}
	}

	return result.Stdout, nil
}
