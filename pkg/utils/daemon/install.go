// Package daemon installs the grind daemon as a systemd user service.
package daemon

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"text/template"

	"github.com/sirupsen/logrus"
)

const unitName = "grind.service"

var unitTemplate = template.Must(template.New(unitName).Parse(`[Unit]
Description=grind setting conversion daemon
After=network.target

[Service]
Type=simple
ExecStart={{ .Exe }} daemon --config {{ .Config }}
ExecReload=/bin/kill -HUP $MAINPID
Restart=on-failure

[Install]
WantedBy=default.target
`))

// Installer writes the unit file and drives systemctl. The zero value
// installs into the user's systemd directory.
type Installer struct {
	// Dir is where the unit file goes, ~/.config/systemd/user when empty.
	Dir string
	// Systemctl runs systemctl with the given arguments.
	Systemctl func(args ...string) error
}

func (i *Installer) dir() (string, error) {
	if i.Dir != "" {
		return i.Dir, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find user config dir: %w", err)
	}
	return filepath.Join(cfg, "systemd", "user"), nil
}

func (i *Installer) systemctl(args ...string) error {
	if i.Systemctl != nil {
		return i.Systemctl(args...)
	}
	out, err := exec.Command("systemctl", append([]string{"--user"}, args...)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl %v: %w: %s", args, err, bytes.TrimSpace(out))
	}
	return nil
}

// UnitPath is where Install writes the unit file.
func (i *Installer) UnitPath() (string, error) {
	dir, err := i.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, unitName), nil
}

// Render returns the unit file that runs exePath as a daemon with configPath.
func Render(exePath, configPath string) (string, error) {
	var b bytes.Buffer
	err := unitTemplate.Execute(&b, struct{ Exe, Config string }{exePath, configPath})
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", unitName, err)
	}
	return b.String(), nil
}

// Install registers the current executable as a service reading configPath,
// then starts it.
func (i *Installer) Install(configPath string) error {
	// Get the path to the current executable
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get the path to the current executable: %w", err)
	}
	exePath, err = filepath.Abs(exePath)
	if err != nil {
		return fmt.Errorf("failed to get the absolute path to the current executable: %w", err)
	}
	configPath, err = filepath.Abs(configPath)
	if err != nil {
		return fmt.Errorf("failed to get the absolute path to the config: %w", err)
	}

	logrus.Infof("current executable path: %s", exePath)

	unit, err := Render(exePath, configPath)
	if err != nil {
		return err
	}

	p, err := i.UnitPath()
	if err != nil {
		return err
	}

	logrus.Infof("writing %s", p)

	err = os.MkdirAll(filepath.Dir(p), 0755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(p), err)
	}

	// warn if the file already exists
	if _, err := os.Stat(p); err == nil {
		logrus.Warnf("%s already exists, overwriting", p)
	}

	err = os.WriteFile(p, []byte(unit), 0644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}

	logrus.Infof("starting grind daemon")

	if err := i.systemctl("daemon-reload"); err != nil {
		return err
	}
	return i.systemctl("enable", "--now", unitName)
}
