package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := root().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abv <vault-name> <vault-file>",
		Short: "Decrypt a single ansible vault by name",
		Long: "Find the named vault in a vars file, resolve its password file from " +
			"the vault_identity_list in your ansible config, and print the decrypted value",
		Args: cobra.MatchAll(cobra.ExactArgs(2), nonEmptyArgs),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// So we don't print usage messages on execution errors
			cmd.SilenceUsage = true
			// So we dont double report errors
			cmd.SilenceErrors = true
		},
		RunE: decrypt,
	}

	cmd.Flags().String("config", "", "path to the abv config (default $HOME/.abv.cfg)")
	cmd.Flags().String("backend", "", "decryption backend, one of exec|native|noop (default exec)")
	cmd.Flags().String("binary", "", "ansible-vault binary used by the exec backend (default ansible-vault)")
	cmd.Flags().Bool("dry-run", false, "print the decrypt command instead of running it")
	cmd.Flags().String("log-level", "", "log level, one of trace|debug|info|warn|error (default warn)")
	cmd.Flags().String("log-format", "", "log format, one of human|json (default human)")

	return cmd
}

func nonEmptyArgs(cmd *cobra.Command, args []string) error {
	names := []string{"vault name", "vault file path"}
	for i, arg := range args {
		if arg == "" {
			return fmt.Errorf("%v must not be empty", names[i])
		}
	}
	return nil
}
