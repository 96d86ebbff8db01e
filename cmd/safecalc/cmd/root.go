package cmd

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cobalamin/safe-int/safeint/log"
	safezap "github.com/cobalamin/safe-int/safeint/zap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix   = "SAFECALC"
	libraryName = "github.com/cobalamin/safe-int/cmd/safecalc"

	logFormatJSON  = "json"
	logFormatPlain = "plain"
)

// config is the resolved configuration, from lowest to highest precedence:
// defaults, config file, SAFECALC_* environment variables, flags.
type config struct {
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	Output      string `mapstructure:"output"`
}

// app carries state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config

	// Parsed from cfg by loadConfig.
	env   safezap.Environment
	level log.Level

	logger log.Logger
}

// Execute runs the safecalc command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: log.NewNop()}

	root := &cobra.Command{
		Use:   "safecalc",
		Short: "Evaluate integer expressions without overflow or division faults",
		Long: `safecalc evaluates integer expressions using safe arithmetic: overflow,
division or modulo by zero and negative exponents produce an Invalid result
instead of a wrong number or a crash.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initialize,
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = a.logger.Sync(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.safecalc/config.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", "", "log format on stderr: json or plain")
	root.PersistentFlags().StringP("output", "o", outputText, "output format: text, table, json or yaml")

	_ = a.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", root.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("output", root.PersistentFlags().Lookup("output"))

	root.AddCommand(newEvalCmd(a))

	return root
}

func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	logger, err := a.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	a.logger = logger

	return nil
}

//nolint:ireturn
func (a *app) newLogger(stderr io.Writer) (log.Logger, error) {
	if a.cfg.LogFormat == logFormatPlain {
		return log.NewPlain(stdlog.New(stderr, "", stdlog.LstdFlags), a.level), nil
	}

	logger, err := safezap.New(stderr, safezap.Config{
		Environment:     a.env,
		Level:           a.level.String(),
		OTelLibraryName: libraryName,
	})
	if err != nil {
		return nil, err
	}

	return logger, nil
}

func (a *app) loadConfig() error {
	a.v.SetDefault("environment", string(safezap.EnvironmentProduction))
	a.v.SetDefault("log_level", "warn")
	a.v.SetDefault("log_format", logFormatJSON)
	a.v.SetDefault("output", outputText)

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".safecalc"))
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	env, err := safezap.ParseEnvironment(a.cfg.Environment)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}

	a.env, a.level = env, level

	if a.cfg.LogFormat != logFormatJSON && a.cfg.LogFormat != logFormatPlain {
		return fmt.Errorf("unsupported log format %q", a.cfg.LogFormat)
	}

	if !isOutputFormat(a.cfg.Output) {
		return fmt.Errorf("unsupported output format %q", a.cfg.Output)
	}

	return nil
}
