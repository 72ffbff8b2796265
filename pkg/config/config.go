package config

import "github.com/sirupsen/logrus"

type Config interface {
	// CatalogPath is the grinder catalog the daemon serves.
	CatalogPath() string
	// Listen is the daemon address: a unix socket path, unix://path,
	// tcp://host:port or host:port.
	Listen() string
	// Language is used for messages when a request does not ask for one.
	Language() string
	AllowNonRootAccess() bool

	SetCatalogPath(string)
	SetListen(string)
	SetLanguage(string)
	SetAllowNonRootAccess(bool)

	LogrusFields() logrus.Fields

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
