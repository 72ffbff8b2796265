package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tab/holy-grind/pkg/config"
	"github.com/tab/holy-grind/pkg/events"
	"github.com/tab/holy-grind/pkg/i18n"
	"github.com/tab/holy-grind/pkg/utils/sockaddr"
)

var (
	conf     config.Config
	store    = &catalogStore{}
	sseHub   = events.NewEventHub()
	messages = i18n.Default()
)

func setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/version", getVersion)
	router.GET("/catalog", getCatalog)
	router.POST("/reload", reloadCatalog)
	router.GET("/grinders", listGrinders)
	router.GET("/grinders/:id", getGrinder)
	router.GET("/grinders/:id/range", getRange)
	router.GET("/convert", convert)
	for _, l := range messages.Supported() {
		router.GET("/"+l+"/convert", convert)
	}
	router.GET("/events", streamEvents)

	return router
}

// Run loads the config and catalog and serves the HTTP API until SIGINT or
// SIGTERM. A non-empty listen overrides the configured address.
func Run(configPath string, listen string, allowNonRoot bool) error {
	var err error
	conf, err = config.NewFile(configPath)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to parse config during startup")
	}
	logrus.WithFields(conf.LogrusFields()).Infof("config loaded")

	if listen == "" {
		listen = conf.Listen()
	}

	c, err := store.Load(conf.CatalogPath())
	if err != nil {
		return err
	}
	logrus.WithFields(c.LogrusFields()).Info("catalog loaded")

	// Receive SIGHUP to reload config and catalog
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			if err := conf.Load(); err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			c, err := store.Load(conf.CatalogPath())
			if err != nil {
				logrus.Errorf("failed to reload catalog, keeping the current one: %v", err)
				continue
			}
			logrus.WithFields(c.LogrusFields()).Infof("config and catalog reloaded")
		}
	}()

	srv := &http.Server{
		Handler:           setupRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.RegisterOnShutdown(sseHub.Close)

	network, address := sockaddr.Parse(listen)
	if network == "unix" {
		removeStaleSocket(address)
	}

	l, err := net.Listen(network, address)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to listen on %s", listen)
	}

	if network == "unix" && (conf.AllowNonRootAccess() || allowNonRoot) {
		logrus.Infof("non-root access is allowed, changing permissions of %s to 0777", address)
		if err := os.Chmod(address, 0777); err != nil {
			_ = l.Close()
			return pkgerrors.Wrapf(err, "failed to change permissions of %s", address)
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigc:
		logrus.Infof("caught signal \"%s\": shutting down.", sig)
	case err := <-serveErr:
		logrus.Errorf("http server failed: %v", err)
	}

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = srv.Shutdown(ctx)
	if err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}
	cancel()

	if network == "unix" {
		if err := os.Remove(address); err != nil && !os.IsNotExist(err) {
			logrus.Warnf("failed to remove socket %s: %v", address, err)
		}
	}

	logrus.Info("exiting")
	return nil
}

// removeStaleSocket deletes a socket file left behind by a daemon that did
// not shut down cleanly. Anything that is not a socket, or a socket someone
// is still listening on, is left alone so net.Listen reports it.
func removeStaleSocket(path string) {
	fi, err := os.Lstat(path)
	if err != nil || fi.Mode()&os.ModeSocket == 0 {
		return
	}
	if conn, err := net.Dial("unix", path); err == nil {
		_ = conn.Close()
		return
	}
	logrus.Warnf("removing stale socket %s", path)
	if err := os.Remove(path); err != nil {
		logrus.Warnf("failed to remove stale socket %s: %v", path, err)
	}
}
