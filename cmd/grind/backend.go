package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tab/holy-grind/pkg/catalog"
	"github.com/tab/holy-grind/pkg/client"
	"github.com/tab/holy-grind/pkg/config"
	"github.com/tab/holy-grind/pkg/converter"
	"github.com/tab/holy-grind/pkg/grind"
	"github.com/tab/holy-grind/pkg/types"
)

// catalogPath is set by --catalog. When empty, commands ask the daemon.
var catalogPath string

// backend answers catalog queries, either from the daemon or from a catalog
// file read by this process.
type backend interface {
	Info() (*types.CatalogInfo, error)
	Search(query string) ([]types.GrinderSummary, error)
	Grinder(id string) (*grind.Grinder, error)
	Range(id string) (*grind.Range, error)
	Convert(from, to, value, lang string, swap bool) (*types.ConvertResponse, error)
}

type daemonBackend struct {
	c *client.Client
}

func (b daemonBackend) Info() (*types.CatalogInfo, error) { return b.c.GetCatalogInfo() }

func (b daemonBackend) Search(query string) ([]types.GrinderSummary, error) {
	return b.c.SearchGrinders(query)
}

func (b daemonBackend) Grinder(id string) (*grind.Grinder, error) { return b.c.GetGrinder(id) }

func (b daemonBackend) Range(id string) (*grind.Range, error) { return b.c.GetRange(id) }

func (b daemonBackend) Convert(from, to, value, lang string, swap bool) (*types.ConvertResponse, error) {
	return b.c.Convert(from, to, value, lang, swap)
}

type localBackend struct {
	svc  *converter.Service
	lang string
}

func newLocalBackend(path, lang string) (*localBackend, error) {
	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(c.LogrusFields()).Debug("catalog loaded")

	return &localBackend{
		svc:  converter.New(c, nil),
		lang: lang,
	}, nil
}

func (b *localBackend) Info() (*types.CatalogInfo, error) {
	info := b.svc.Info()
	return &info, nil
}

func (b *localBackend) Search(query string) ([]types.GrinderSummary, error) {
	return b.svc.Search(query), nil
}

func (b *localBackend) Grinder(id string) (*grind.Grinder, error) {
	return b.svc.Catalog().Find(id)
}

func (b *localBackend) Range(id string) (*grind.Range, error) {
	g, err := b.svc.Catalog().Find(id)
	if err != nil {
		return nil, err
	}
	r, ok := grind.GetRange(g)
	if !ok {
		return nil, fmt.Errorf("grinder %s has no calibration data", id)
	}
	return &r, nil
}

func (b *localBackend) Convert(from, to, value, lang string, swap bool) (*types.ConvertResponse, error) {
	if lang == "" {
		lang = b.lang
	}
	return b.svc.Convert(from, to, value, lang, swap)
}

// newBackend picks where catalog queries go. An explicit --catalog reads that
// file. Otherwise the daemon is used, falling back to the configured catalog
// file when the daemon is not running.
func newBackend() (backend, error) {
	conf, err := config.NewFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	lang := messages.Match(conf.Language())

	if catalogPath != "" {
		b, err := newLocalBackend(catalogPath, lang)
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	_, err = apiClient.GetVersion()
	if err == nil {
		return daemonBackend{c: apiClient}, nil
	}
	if !errors.Is(err, client.ErrDaemonNotRunning) {
		return nil, err
	}

	logrus.WithField("catalog", conf.CatalogPath()).Debug("daemon not running, reading catalog directly")
	b, lerr := newLocalBackend(conf.CatalogPath(), lang)
	if lerr != nil {
		logrus.Debugf("failed to load configured catalog: %v", lerr)
		return nil, err
	}
	return b, nil
}
