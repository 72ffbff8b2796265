package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFile_Defaults(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}

	if got := f.CatalogPath(); got != "data.json" {
		t.Errorf("CatalogPath() = %q, want %q", got, "data.json")
	}
	if got := f.Listen(); got != "/tmp/grind.sock" {
		t.Errorf("Listen() = %q, want %q", got, "/tmp/grind.sock")
	}
	if got := f.Language(); got != "en" {
		t.Errorf("Language() = %q, want %q", got, "en")
	}
	if f.AllowNonRootAccess() {
		t.Errorf("AllowNonRootAccess() = true, want false")
	}
}

func TestFile_EmptyFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "grind.json")
	if err := os.WriteFile(p, []byte("\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := NewFile(p)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	if got := f.Language(); got != "en" {
		t.Errorf("Language() = %q, want %q", got, "en")
	}
}

func TestFile_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "nested", "grind.json")

	f, err := NewFile(p)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}
	f.SetCatalogPath("catalog.msgpack")
	f.SetListen("127.0.0.1:8790")
	f.SetLanguage("ru")
	f.SetAllowNonRootAccess(true)
	if err := f.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := NewFile(p)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{name: "catalog", got: loaded.CatalogPath(), want: filepath.Join(dir, "nested", "catalog.msgpack")},
		{name: "listen", got: loaded.Listen(), want: "127.0.0.1:8790"},
		{name: "language", got: loaded.Language(), want: "ru"},
		{name: "allowNonRootAccess", got: loaded.AllowNonRootAccess(), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestFile_EnvOverrides(t *testing.T) {
	p := filepath.Join(t.TempDir(), "grind.json")
	if err := os.WriteFile(p, []byte(`{"language": "ru", "listen": "/run/grind.sock"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GRIND_LANGUAGE", "en")
	t.Setenv("GRIND_CATALOG", "/srv/grind/data.json")

	f, err := NewFile(p)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}

	if got := f.Language(); got != "en" {
		t.Errorf("Language() = %q, want env override %q", got, "en")
	}
	if got := f.CatalogPath(); got != "/srv/grind/data.json" {
		t.Errorf("CatalogPath() = %q, want env override", got)
	}
	if got := f.Listen(); got != "/run/grind.sock" {
		t.Errorf("Listen() = %q, want file value", got)
	}
}

func TestFile_BrokenFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "grind.json")
	if err := os.WriteFile(p, []byte(`{"language": `), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFile(p); err == nil {
		t.Errorf("NewFile() error = nil, want error")
	}
}
