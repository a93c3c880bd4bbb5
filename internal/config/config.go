package config

import (
	"strings"

	"github.com/nicjohnson145/abv/internal/logging"
	"github.com/spf13/viper"
)

//go:generate go-enum -f $GOFILE -marshal -names

/*
ENUM(
exec
native
noop
)
*/
type BackendKind string

const (
	Home = "home"

	ConfigPath = "config"

	LoggingLevel  = "log.level"
	LoggingFormat = "log.format"

	DecryptBackend = "backend"
	DecryptBinary  = "binary"
	DryRun         = "dry_run"
)

var (
	DefaultLogLevel  = logging.LogLevelWarn.String()
	DefaultLogFormat = logging.LogFormatHuman.String()

	DefaultDecryptBackend = BackendKindExec.String()
	DefaultDecryptBinary  = "ansible-vault"
	DefaultDryRun         = false
)

func InitConfig() error {
	viper.SetDefault(LoggingLevel, DefaultLogLevel)
	viper.SetDefault(LoggingFormat, DefaultLogFormat)

	viper.SetDefault(DecryptBackend, DefaultDecryptBackend)
	viper.SetDefault(DecryptBinary, DefaultDecryptBinary)
	viper.SetDefault(DryRun, DefaultDryRun)

	viper.SetEnvPrefix("abv")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return viper.BindEnv(Home, "HOME")
}
