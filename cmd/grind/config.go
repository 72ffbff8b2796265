package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tab/holy-grind/pkg/config"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show or change the configuration file",
		GroupID: gCatalog,
	}

	cmd.AddCommand(
		newConfigShowCommand(),
		newConfigSetCommand(),
	)

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration: the config file merged with defaults
and GRIND_* environment overrides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.NewFile(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if jsonOut {
				raw, err := config.NewRawFileConfigFromConfig(conf)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), raw)
			}

			cmd.Printf("Config file: %s\n", configPath)
			cmd.Printf("  Catalog: %s\n", bold("%s", conf.CatalogPath()))
			cmd.Printf("  Listen: %s\n", bold("%s", conf.Listen()))
			cmd.Printf("  Language: %s\n", bold("%s", conf.Language()))
			cmd.Printf("  Allow non-root users to access the daemon: %s\n", bool2Text(conf.AllowNonRootAccess()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the configuration as JSON")

	return cmd
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting and save the config file",
		Long: `Change one setting and save the config file.

Keys: catalog, listen, language, allow-non-root-access.

The daemon picks up changes on restart or SIGHUP.`,
		Example: `  grind config set catalog /usr/local/share/grind/data.json
  grind config set language ru`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			conf, err := config.NewFile(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := setConfigValue(conf, args[0], args[1]); err != nil {
				return err
			}

			if err := conf.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			logrus.Infof("successfully set %s to %s", args[0], args[1])
			return nil
		},
	}
}

func setConfigValue(conf config.Config, key, value string) error {
	switch key {
	case "catalog":
		p, err := filepath.Abs(value)
		if err != nil {
			return fmt.Errorf("invalid catalog path: %v", err)
		}
		conf.SetCatalogPath(p)
	case "listen":
		conf.SetListen(value)
	case "language":
		lang := messages.Match(value)
		if lang != value {
			logrus.Warnf("language %q is not supported, using %q", value, lang)
		}
		conf.SetLanguage(lang)
	case "allow-non-root-access":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", key, err)
		}
		conf.SetAllowNonRootAccess(b)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
