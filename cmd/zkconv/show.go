package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/zkconv"
	"github.com/aretw0/zkconv/pkg/core"
)

func newShowCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [file|glob]",
		Short: "Display records of an archive",
		Long:  `Show imports an archive and prints a window of its records. Nothing is written.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := zkconv.Load(args[0], jobOptions(v)...)
			if err != nil {
				return err
			}

			records := window(lib, v.GetInt("offset"), v.GetInt("limit"))
			out := cmd.OutOrStdout()

			switch format := v.GetString("format"); format {
			case "text":
				for _, z := range records {
					fmt.Fprintf(out, "[index] %s [parent] %s [title] %s\n", z.Key, z.Parent, z.Title)
				}
			case "yaml":
				encoder := yaml.NewEncoder(out)
				encoder.SetIndent(2)
				if err := encoder.Encode(records); err != nil {
					return fmt.Errorf("failed to encode yaml: %w", err)
				}
				if err := encoder.Close(); err != nil {
					return err
				}
			case "json":
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(records); err != nil {
					return fmt.Errorf("failed to encode json: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
			}

			slog.Info("records", "total", lib.Len(), "shown", len(records))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("limit", 10, "Number of records to show (0 for all)")
	flags.Int("offset", 0, "Index of the first record to show")
	flags.String("format", "text", "Output format: text, yaml or json")
	for _, name := range []string{"limit", "offset", "format"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	return cmd
}

// window returns up to limit records starting at offset, in library order.
func window(lib *core.Library, offset, limit int) []*core.Zettel {
	records := make([]*core.Zettel, 0)
	i := 0
	for _, z := range lib.All() {
		if i >= offset && (limit <= 0 || len(records) < limit) {
			records = append(records, z)
		}
		i++
	}
	return records
}
