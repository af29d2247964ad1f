package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bitbuf"
	"github.com/spacemeshos/bitbuf/config"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""
)

const envPrefix = "BITCLI"

// app holds the state shared by the commands of one root command.
type app struct {
	vip    *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{
		vip:    viper.New(),
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "bitcli",
		Short: "Inspect and transform bit strings",
		Long: `bitcli works on bit strings of any length, not only whole bytes.
Values are given as literals with a radix prefix: 0x (hex), 0b (binary) or 0o (octal),
optionally followed by a bit range, e.g. 0xdeadbeef[4:12].`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	def := config.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to configuration file")
	flags.String("format", def.Format, "Output radix: auto, hex, bin or oct")
	flags.Bool("aligned", def.Aligned, "Only consider byte-aligned positions when searching")
	flags.Uint64("max-display-bits", def.MaxDisplayBits, "Number of bits shown by previews")
	flags.String("log-level", def.LogLevel, "Log level (debug, info, warn, error)")

	if err := a.vip.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("bitcli {{.Version}} (%s)\n", Commit))
	rootCmd.AddCommand(
		newConvertCmd(a),
		newInspectCmd(a),
		newSliceCmd(a),
		newIndexCmd(a),
		newJoinCmd(a),
		newFindCmd(a),
		newLogicCmd(a, "and", "AND", bitbuf.Buffer.And),
		newLogicCmd(a, "or", "OR", bitbuf.Buffer.Or),
		newLogicCmd(a, "xor", "XOR", bitbuf.Buffer.Xor),
		newReverseCmd(a),
		newInvertCmd(a),
		newSetCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// load merges the config file, BITCLI_ environment variables and flags, in
// increasing priority, and builds the logger.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	a.vip.SetEnvPrefix(envPrefix)
	a.vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.vip.AutomaticEnv()

	if path := a.vip.GetString("config"); path != "" {
		a.vip.SetConfigFile(path)
		if err := a.vip.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := config.DefaultConfig()
	if err := a.vip.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	a.logger = logger.Named(cmd.Name())
	cmd.Flags().Visit(func(f *pflag.Flag) {
		a.logger.Debug("flag set", zap.String("name", f.Name), zap.Stringer("value", f.Value))
	})
	a.logger.Debug("loaded config",
		zap.String("file", a.vip.ConfigFileUsed()),
		zap.String("format", cfg.Format),
		zap.Bool("aligned", cfg.Aligned),
		zap.Uint64("max-display-bits", cfg.MaxDisplayBits),
	)
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(lvl),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize zap logger: %w", err)
	}
	return logger, nil
}

// print writes b to the command's output in the configured radix.
func (a *app) print(cmd *cobra.Command, b bitbuf.Buffer) error {
	s, err := formatValue(b, a.cfg.Format)
	if err != nil {
		return err
	}
	a.logger.Debug("result", zap.Stringer("value", b))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

// values parses every argument as a literal.
func (a *app) values(args []string) ([]bitbuf.Buffer, error) {
	out := make([]bitbuf.Buffer, 0, len(args))
	for _, arg := range args {
		b, err := parseValue(arg)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("parsed value", zap.String("arg", arg), zap.Stringer("value", b))
		out = append(out, b)
	}
	return out, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
