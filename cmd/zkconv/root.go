package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/zkconv"
	"github.com/aretw0/zkconv/internal/platform"
)

// newRootCmd builds the command tree. Flags are bound to v so the same keys
// can come from a zkconv.yaml config file.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "zkconv",
		Short: "Convert a zettelkasten between plain text and tables",
		Long: `zkconv splits a plain-text note archive into sections and notes and
writes them as a semicolon separated table, or turns a comma separated table
back into the text form.

Sections are short heading lines followed by a blank line. Notes start at an
[index] marker and carry [title], [zettel], [reference], [keyword] and
[parent] fields.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cmd, v); err != nil {
				return err
			}

			level := slog.LevelInfo
			if v.GetBool("verbose") || v.GetBool("diagnostics") {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: nearest "+platform.ConfigFileName+")")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.Bool("diagnostics", false, "Log input previews and the converter state")
	flags.Bool("prune", true, "Drop records without title and body")
	flags.Int("explicit-key-min", 0, "Shortest [index] content kept verbatim as a key (default 10)")
	for _, name := range []string{"verbose", "diagnostics", "prune", "explicit-key-min"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(newConvertCmd(v))
	rootCmd.AddCommand(newShowCmd(v))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		found, err := platform.FindConfig(wd)
		if err != nil {
			return nil
		}
		cfgFile = found
	}

	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

// jobOptions turns the bound flags and config keys into conversion options.
func jobOptions(v *viper.Viper) []zkconv.Option {
	return []zkconv.Option{
		zkconv.WithLogger(slog.Default()),
		zkconv.WithDiagnostics(v.GetBool("diagnostics")),
		zkconv.WithPruneEmpty(v.GetBool("prune")),
		zkconv.WithExplicitKeyMinLen(v.GetInt("explicit-key-min")),
	}
}
