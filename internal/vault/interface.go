package vault

import (
	"context"
	"fmt"

	"github.com/nicjohnson145/abv/internal/config"
	"github.com/nicjohnson145/hlp"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type Decrypter interface {
	Decrypt(ctx context.Context, passwordFile string, payload string) (string, error)
}

// DecryptError is a decryption failure reported by the backend itself, as
// opposed to a failure to run it
type DecryptError struct {
	Stderr   string
	ExitCode int
}

func (e *DecryptError) Error() string {
	return fmt.Sprintf("error decrypting vault: exit status %d", e.ExitCode)
}

func NewFromEnv(logger zerolog.Logger, fs afero.Fs) (Decrypter, error) {
	kind, err := config.ParseBackendKind(viper.GetString(config.DecryptBackend))
	if err != nil {
		return nil, err
	}
	kind = hlp.Ternary(viper.GetBool(config.DryRun), config.BackendKindNoop, kind)

	binary := viper.GetString(config.DecryptBinary)

	switch kind {
	case config.BackendKindNative:
		return NewNative(NativeConfig{
			Logger: logger,
			Fs:     fs,
		}), nil
	case config.BackendKindNoop:
		return NewNoop(NoopConfig{
			Logger: logger,
			Binary: binary,
		}), nil
	default:
		return NewAnsibleVault(AnsibleVaultConfig{
			Logger: logger,
			Fs:     fs,
			Binary: binary,
		}), nil
	}
}
