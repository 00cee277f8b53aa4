package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/zkconv"
)

func newConvertCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file|glob]",
		Short: "Convert an archive between .txt and .csv",
		Long: `Convert reads one .txt or .csv archive and writes it in the other format
next to it, as <name>_<timestamp>.<ext>. The argument may be a glob such as
"notes/**/zettelkasten*.txt" as long as it matches exactly one file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := append(jobOptions(v),
				zkconv.WithSource(v.GetString("from")),
				zkconv.WithTarget(v.GetString("to")),
				zkconv.WithOutputStem(v.GetString("out")),
				zkconv.WithHeader(v.GetBool("header")),
			)

			res, err := zkconv.Convert(args[0], opts...)
			if err != nil {
				return err
			}

			if len(res.Issues) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d issue(s) reported, see log above\n", len(res.Issues))
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("from", "", "Required input format: txt or csv (default: any supported)")
	flags.String("to", "", "Target format: txt or csv (default: the other one)")
	flags.String("out", "", "Output path stem (default: input path without extension)")
	flags.Bool("header", false, "Write a header row in exported tables")
	for _, name := range []string{"from", "to", "out", "header"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	return cmd
}
