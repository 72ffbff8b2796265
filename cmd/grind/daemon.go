package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tab/holy-grind/pkg/daemon"
	"github.com/tab/holy-grind/pkg/events"
	"github.com/tab/holy-grind/pkg/version"
)

var (
	// alwaysAllowNonRootAccess indicates whether to always allow non-root users to access the grind daemon.
	alwaysAllowNonRootAccess = false
)

func NewDaemonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "daemon",
		Short:   "Run grind daemon in the foreground",
		GroupID: gDaemon,
		Long: `Run grind daemon in the foreground.

The daemon loads the configured catalog and answers conversions over HTTP on
a unix socket or tcp address. Send SIGHUP or run 'grind reload' to re-read the
catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("grind daemon starting")

			listen := ""
			if cmd.Flags().Changed("daemon-socket") {
				listen = daemonSocket
			}
			return daemon.Run(configPath, listen, alwaysAllowNonRootAccess)
		},
	}

	f := cmd.Flags()

	f.BoolVar(&alwaysAllowNonRootAccess, "allow-non-root-access", false,
		"Always allow non-root users to access the daemon.")

	return cmd
}

func NewReloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "reload",
		Short:   "Make the daemon re-read its catalog",
		GroupID: gDaemon,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ret, err := apiClient.Reload()
			if err != nil {
				return fmt.Errorf("failed to reload catalog: %w", err)
			}

			if ret != "" {
				logrus.Infof("daemon responded: %s", ret)
			}

			return nil
		},
	}
}

func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   "Print daemon events as they happen",
		GroupID: gDaemon,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ch, err := apiClient.Events(ctx)
			if err != nil {
				return err
			}

			for ev := range ch {
				switch ev.Name {
				case events.CatalogReloaded:
					e, err := events.DecodeAs[events.CatalogReloadedEvent](ev)
					if err != nil {
						logrus.Warnf("failed to decode %s event: %v", ev.Name, err)
						continue
					}
					cmd.Printf("%s catalog reloaded: version %s, %d grinders\n",
						time.Unix(e.Ts, 0).Format(time.Kitchen), bold("%s", e.Version), e.Count)
				default:
					logrus.Debugf("ignoring event %s", ev.Name)
				}
			}

			return nil
		},
	}
}
