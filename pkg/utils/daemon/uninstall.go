package daemon

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Uninstall stops the service and removes its unit file. A unit that is not
// installed is not an error.
func (i *Installer) Uninstall() error {
	p, err := i.UnitPath()
	if err != nil {
		return err
	}

	// if the file doesn't exist, we don't need to remove it
	_, err = os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Infof("%s is not installed", unitName)
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", p, err)
	}

	logrus.Infof("stopping grind daemon")

	err = i.systemctl("disable", "--now", unitName)
	if err != nil {
		return fmt.Errorf("failed to stop %s: %w", unitName, err)
	}

	logrus.Infof("removing %s", p)

	err = os.Remove(p)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", p, err)
	}

	return i.systemctl("daemon-reload")
}
