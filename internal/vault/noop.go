package vault

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type NoopConfig struct {
	Logger zerolog.Logger
	Binary string
}

func NewNoop(conf NoopConfig) *Noop {
	return &Noop{
		log:    conf.Logger,
		binary: conf.Binary,
	}
}

type Noop struct {
	log    zerolog.Logger
	binary string
}

func (n *Noop) Decrypt(ctx context.Context, passwordFile string, payload string) (string, error) {
	n.log.Debug().Msg("noop decrypter, returning the command that would have run")
	return fmt.Sprintf("%v decrypt --vault-password-file %v", n.binary, passwordFile), nil
}
