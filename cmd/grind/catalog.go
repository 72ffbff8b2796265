package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tab/holy-grind/pkg/catalog"
	"github.com/tab/holy-grind/pkg/config"
)

func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		Short:   "Inspect or convert the grinder catalog",
		GroupID: gCatalog,
	}

	cmd.AddCommand(
		newCatalogInfoCommand(),
		newCatalogExportCommand(),
	)

	return cmd
}

func newCatalogInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print catalog version, source and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := newBackend()
			if err != nil {
				return err
			}

			info, err := b.Info()
			if err != nil {
				return fmt.Errorf("failed to get catalog info: %w", err)
			}

			lang := messages.Fallback()
			cmd.Printf("%s %s\n", messages.T(lang, "app.version"), bold("%s", info.Version))
			cmd.Printf("%s %s\n", messages.T(lang, "app.source"), info.Source)
			cmd.Printf("Grinders: %s\n", bold("%d", info.Count))
			return nil
		},
	}
}

func newCatalogExportCommand() *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog in JSON or MessagePack",
		Long: `Write the catalog in JSON or MessagePack.

The catalog is read from --catalog, or from the configured catalog path. The
output format defaults to the extension of --out (.msgpack or .mpk for
MessagePack, JSON otherwise).`,
		Example: `  grind catalog export --catalog data.json --out data.msgpack
  grind catalog export --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := catalogPath
			if src == "" {
				conf, err := config.NewFile(configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				src = conf.CatalogPath()
			}

			c, err := catalog.Load(src)
			if err != nil {
				return err
			}

			f := catalog.FormatFromPath(out)
			if format != "" {
				f, err = catalog.ParseFormat(format)
				if err != nil {
					return err
				}
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				fp, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer func() {
					if err := fp.Close(); err != nil {
						logrus.Warnf("failed to close file %s", out)
					}
				}()
				w = fp
			}

			if err := catalog.Encode(w, c, f); err != nil {
				return err
			}

			logrus.WithFields(c.LogrusFields()).WithField("format", f).Infof("exported catalog from %s", src)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format (json, msgpack)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, stdout when empty")

	return cmd
}
