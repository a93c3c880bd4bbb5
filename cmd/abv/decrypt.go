package main

import (
	"errors"
	"fmt"

	"github.com/nicjohnson145/abv/internal/cli"
	"github.com/nicjohnson145/abv/internal/config"
	"github.com/nicjohnson145/abv/internal/logging"
	"github.com/nicjohnson145/abv/internal/vault"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var flagKeys = map[string]string{
	"config":     config.ConfigPath,
	"backend":    config.DecryptBackend,
	"binary":     config.DecryptBinary,
	"dry-run":    config.DryRun,
	"log-level":  config.LoggingLevel,
	"log-format": config.LoggingFormat,
}

func bindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

func decrypt(cmd *cobra.Command, args []string) error {
	if err := config.InitConfig(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error initializing config: %v\n", err)
		return err
	}
	if err := bindFlags(cmd.Flags()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error binding flags: %v\n", err)
		return err
	}

	level, err := logging.ParseLogLevel(viper.GetString(config.LoggingLevel))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error parsing log level: %v\n", err)
		return err
	}
	format, err := logging.ParseLogFormat(viper.GetString(config.LoggingFormat))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error parsing log format: %v\n", err)
		return err
	}

	logger := logging.Init(&logging.LoggingConfig{
		Level:  level,
		Format: format,
		Out:    cmd.ErrOrStderr(),
	})
	// Ties the failure line to the tool output echoed just before it
	logger = logger.With().Str("run_id", ulid.Make().String()).Logger()

	fs := afero.NewOsFs()

	decrypter, err := vault.NewFromEnv(logging.Component(logger, "vault"), fs)
	if err != nil {
		logger.Err(err).Msg("error initializing decrypter")
		return err
	}

	c, err := cli.NewCLI(cli.CLIConfig{
		Logger:     logging.Component(logger, "cli"),
		Fs:         fs,
		Home:       viper.GetString(config.Home),
		ConfigPath: viper.GetString(config.ConfigPath),
		Decrypter:  decrypter,
	})
	if err != nil {
		logger.Err(err).Msg("error initializing cli")
		return err
	}

	plain, err := c.Decrypt(cmd.Context(), args[0], args[1])
	if err != nil {
		var decryptErr *vault.DecryptError
		if errors.As(err, &decryptErr) {
			// Surface ansible-vault's own message as is
			fmt.Fprint(cmd.ErrOrStderr(), decryptErr.Stderr)
		}
		logger.Err(err).Str("vault", args[0]).Msg("error decrypting vault")
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), plain)
	return nil
}
