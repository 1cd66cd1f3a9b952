package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// logLevels are the accepted values of --log-level.
var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}

func newRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "symbolic",
		Short:         "Reduce symbolic expression trees",
		Long:          "Reduce symbolic expression trees read from YAML or JSON documents.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, v)
		},
	}
	pFlags := root.PersistentFlags()
	pFlags.String("config", "", "config file (default symbolic.yaml in the working directory, if present)")
	pFlags.String("log-level", "warn", fmt.Sprintf("Log messages above specified level (%s)", strings.Join(logLevels, ", ")))

	root.AddCommand(
		newReduceCommand(v),
		newVarsCommand(v),
		newOperatorsCommand(),
	)
	return root
}

// setup loads configuration and configures logging before any subcommand
// runs. Flags take precedence over the environment, which takes precedence
// over the config file.
func setup(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	v.SetEnvPrefix("SYMBOLIC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", cfg)
		}
	} else {
		v.SetConfigName("symbolic")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return errors.Wrap(err, "reading config")
			}
		}
	}
	if f := v.ConfigFileUsed(); f != "" {
		logrus.Debugf("using config file %s", f)
	}

	logLevel := v.GetString("log-level")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return errors.Errorf("log level %q is not supported, choose from: %s", logLevel, strings.Join(logLevels, ", "))
	}
	logrus.SetLevel(level)
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.Debugf("Called %s.PersistentPreRunE(%s)", cmd.Name(), strings.Join(cmd.Flags().Args(), " "))
	return nil
}

// addInputFlags adds the flags shared by commands that read documents.
func addInputFlags(flags *pflag.FlagSet) {
	flags.String("format", "", "input format, yaml or json (default by file extension)")
}
