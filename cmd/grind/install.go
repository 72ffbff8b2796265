package main

import (
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tab/holy-grind/pkg/config"
	daemonutils "github.com/tab/holy-grind/pkg/utils/daemon"
)

// NewInstallCommand .
func NewInstallCommand() *cobra.Command {
	allowNonRootAccess := false

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install grind daemon as a systemd user service",
		GroupID: gDaemon,
		Long: `Install grind daemon as a systemd user service.

This makes the daemon run in the background and start on login. The service
reads the config file given by --config, which is saved first so the daemon
and the client agree on the catalog and socket.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.NewFile(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("allow-non-root-access") {
				conf.SetAllowNonRootAccess(allowNonRootAccess)
			}
			if catalogPath != "" {
				if err := setConfigValue(conf, "catalog", catalogPath); err != nil {
					return err
				}
			}

			err = conf.Save()
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to save config")
			}

			err = (&daemonutils.Installer{}).Install(configPath)
			if err != nil {
				return fmt.Errorf("failed to install daemon: %w", err)
			}

			logrus.Infof("installation succeeded")

			exePath, _ := os.Executable()

			cmd.Printf("systemd will run the current binary (%s). If you move or delete it, run 'grind install' again.\n", exePath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&allowNonRootAccess, "allow-non-root-access", false, "Allow other users to access the daemon socket.")

	return cmd
}

// NewUninstallCommand .
func NewUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   "Stop and remove the grind daemon service",
		GroupID: gDaemon,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			err := (&daemonutils.Installer{}).Uninstall()
			if err != nil {
				return fmt.Errorf("failed to uninstall daemon: %w", err)
			}

			logrus.Infof("successfully uninstalled grind daemon")
			return nil
		},
	}
}
