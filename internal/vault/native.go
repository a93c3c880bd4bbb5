package vault

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	ansiblevault "github.com/sosedoff/ansible-vault-go"
	"github.com/spf13/afero"
)

const legacyHeader = "$ANSIBLE_VAULT;1.1;AES256"

type NativeConfig struct {
	Logger zerolog.Logger
	Fs     afero.Fs
}

func NewNative(conf NativeConfig) *Native {
	return &Native{
		log: conf.Logger,
		fs:  conf.Fs,
	}
}

// Native decrypts in process, without needing ansible installed
type Native struct {
	log zerolog.Logger
	fs  afero.Fs
}

func (n *Native) Decrypt(ctx context.Context, passwordFile string, payload string) (string, error) {
	password, err := afero.ReadFile(n.fs, passwordFile)
	if err != nil {
		return "", fmt.Errorf("error reading vault password file: %w", err)
	}

	n.log.Debug().Str("path", passwordFile).Msg("decrypting in process")

	plain, err := ansiblevault.Decrypt(normalizePayload(payload), strings.TrimSpace(string(password)))
	if err != nil {
		return "", &DecryptError{
			Stderr:   fmt.Sprintf("ERROR! Decryption failed: %v\n", err),
			ExitCode: 1,
		}
	}

	return plain, nil
}

// normalizePayload rewrites a 1.2 header (which only adds the vault id label)
// to the 1.1 form the library expects, and drops anything before the header
// on a single line entry.
func normalizePayload(payload string) string {
	lines := strings.Split(strings.TrimSpace(payload), "\n")
	if idx := strings.Index(lines[0], "$ANSIBLE_VAULT;"); idx >= 0 {
		header := strings.TrimSpace(lines[0][idx:])
		if strings.HasPrefix(header, "$ANSIBLE_VAULT;1.2;AES256") {
			header = legacyHeader
		}
		lines[0] = header
	}
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, "\n")
}
