package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tab/holy-grind/pkg/catalog"
	"github.com/tab/holy-grind/pkg/client"
	"github.com/tab/holy-grind/pkg/config"
	"github.com/tab/holy-grind/pkg/version"
)

var (
	logLevel     = "info"
	daemonSocket = "/tmp/grind.sock"
	configPath   = defaultConfigPath()
)

var apiClient = client.NewClient(daemonSocket)

var (
	gBasic        = "Basic:"
	gCatalog      = "Catalog:"
	gDaemon       = "Daemon:"
	commandGroups = []string{
		gBasic,
		gCatalog,
		gDaemon,
	}
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "grind.json"
	}
	return filepath.Join(dir, "grind", "config.json")
}

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	switch {
	case errors.Is(err, client.ErrDaemonNotRunning):
		fmt.Fprintln(os.Stderr, "\nError: grind daemon is not running")
		fmt.Fprintln(os.Stderr, "  - Start it with 'grind daemon'")
		fmt.Fprintln(os.Stderr, "  - Or pass '--catalog FILE' to convert without a daemon")
	case errors.Is(err, client.ErrPermissionDenied):
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "  - Try running the command again with 'sudo'")
		fmt.Fprintln(os.Stderr, "  - Or restart the daemon with the '--allow-non-root-access' flag")
	case errors.Is(err, catalog.ErrGrinderNotFound), errors.Is(err, client.ErrNotFound):
		fmt.Fprintln(os.Stderr, "\nUse 'grind list [QUERY]' to find grinder ids.")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grind",
		Short: "grind converts grind settings between coffee grinders",
		Long: `grind converts grind settings between coffee grinders.

Conversions use a catalog of calibration data. The catalog is served by
'grind daemon', or read directly with '--catalog FILE'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			err := setupLogger()
			if err != nil {
				return err
			}

			addr := daemonSocket
			if !cmd.Flags().Changed("daemon-socket") {
				if conf, err := config.NewFile(configPath); err == nil {
					addr = conf.Listen()
				} else {
					logrus.Debugf("failed to load config %s: %v", configPath, err)
				}
			}
			apiClient = client.NewClient(addr)

			return nil
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path")
	globalFlags.StringVar(&daemonSocket, "daemon-socket", daemonSocket, "grind daemon socket path or tcp address")
	globalFlags.StringVar(&catalogPath, "catalog", "", "read this catalog file instead of asking the daemon")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewConvertCommand(),
		NewListCommand(),
		NewRangeCommand(),
		NewCatalogCommand(),
		NewConfigCommand(),
		NewDaemonCommand(),
		NewReloadCommand(),
		NewWatchCommand(),
		NewInstallCommand(),
		NewUninstallCommand(),
		NewVersionCommand(),
	)

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)

			daemonVersion, err := apiClient.GetVersion()
			if err != nil {
				logrus.Debugf("failed to get daemon version: %v", err)
				return
			}
			if daemonVersion != version.Version {
				logrus.WithFields(logrus.Fields{
					"clientVersion": version.Version,
					"daemonVersion": daemonVersion,
				}).Warn("Version mismatch between client and daemon. Restart the daemon after upgrading.")
			}
		},
	}
}
