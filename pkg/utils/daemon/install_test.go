package daemon

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type recorder struct {
	calls [][]string
}

func (r *recorder) run(args ...string) error {
	r.calls = append(r.calls, args)
	return nil
}

func TestRender(t *testing.T) {
	got, err := Render("/usr/local/bin/grind", "/home/me/.config/grind/config.json")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "ExecStart=/usr/local/bin/grind daemon --config /home/me/.config/grind/config.json\n"
	if !strings.Contains(got, want) {
		t.Errorf("Render() = %q, want it to contain %q", got, want)
	}
}

func TestInstallUninstall(t *testing.T) {
	rec := &recorder{}
	i := &Installer{Dir: filepath.Join(t.TempDir(), "user"), Systemctl: rec.run}

	if err := i.Install("config.json"); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	p, _ := i.UnitPath()
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("unit file not written: %v", err)
	}
	if !strings.Contains(string(b), "daemon --config /") {
		t.Errorf("unit = %q, want an absolute config path", b)
	}

	if err := i.Uninstall(); err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Errorf("unit file still exists: %v", err)
	}

	want := [][]string{
		{"daemon-reload"},
		{"enable", "--now", "grind.service"},
		{"disable", "--now", "grind.service"},
		{"daemon-reload"},
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("systemctl calls = %v, want %v", rec.calls, want)
	}

	// A second uninstall finds nothing to do.
	if err := i.Uninstall(); err != nil {
		t.Errorf("Uninstall() again error = %v", err)
	}
	if len(rec.calls) != len(want) {
		t.Errorf("systemctl called %d times, want %d", len(rec.calls), len(want))
	}
}
