package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tab/holy-grind/pkg/grind"
)

// Format is a catalog encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat accepts "json", "msgpack" or "mpk".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "msgpack", "mpk":
		return FormatMsgpack, nil
	default:
		return "", pkgerrors.Errorf("unknown catalog format %q", s)
	}
}

// FormatFromPath picks the encoding from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

// Load reads a catalog file, choosing the decoder from its extension.
func Load(path string) (*Catalog, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", path)
		}
	}(fp)

	c, err := Decode(fp, FormatFromPath(path))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to load catalog %s", path)
	}
	return c, nil
}

// Decode reads a whole catalog document.
func Decode(r io.Reader, f Format) (*Catalog, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read catalog")
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, pkgerrors.New("catalog is empty")
	}

	switch f {
	case FormatJSON:
		c := &Catalog{}
		if err := json.Unmarshal(b, c); err != nil {
			return nil, pkgerrors.Wrap(err, "failed to unmarshal catalog")
		}
		return c, nil
	case FormatMsgpack:
		var w wireCatalog
		if err := msgpack.Unmarshal(b, &w); err != nil {
			return nil, pkgerrors.Wrap(err, "failed to unmarshal catalog")
		}
		return w.catalog(), nil
	default:
		return nil, pkgerrors.Errorf("unknown catalog format %q", f)
	}
}

// Encode writes c in the given format. JSON output is indented.
func Encode(w io.Writer, c *Catalog, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return pkgerrors.Wrap(enc.Encode(c), "failed to encode catalog")
	case FormatMsgpack:
		return pkgerrors.Wrap(msgpack.NewEncoder(w).Encode(newWireCatalog(c)), "failed to encode catalog")
	default:
		return pkgerrors.Errorf("unknown catalog format %q", f)
	}
}

// wireCatalog is the MessagePack shape. Every present setting is a
// {value, display} pair; display is empty for numeric grinders.
type wireCatalog struct {
	Version  string        `msgpack:"version"`
	Source   string        `msgpack:"source"`
	Grinders []wireGrinder `msgpack:"grinders"`
}

type wireGrinder struct {
	ID       string         `msgpack:"id"`
	Name     string         `msgpack:"name"`
	Numeric  bool           `msgpack:"numeric"`
	Settings []*wireSetting `msgpack:"settings"`
}

type wireSetting struct {
	Value   float64 `msgpack:"value"`
	Display string  `msgpack:"display,omitempty"`
}

func newWireCatalog(c *Catalog) *wireCatalog {
	w := &wireCatalog{
		Version:  c.Version,
		Source:   c.Source,
		Grinders: make([]wireGrinder, len(c.Grinders)),
	}
	for i, g := range c.Grinders {
		settings := make([]*wireSetting, len(g.Settings))
		for j, s := range g.Settings {
			switch s := s.(type) {
			case grind.Number:
				settings[j] = &wireSetting{Value: float64(s)}
			case grind.Label:
				settings[j] = &wireSetting{Value: s.Value, Display: s.Display}
			}
		}
		w.Grinders[i] = wireGrinder{
			ID:       g.ID,
			Name:     g.Name,
			Numeric:  g.Numeric,
			Settings: settings,
		}
	}
	return w
}

func (w *wireCatalog) catalog() *Catalog {
	c := &Catalog{
		Version:  w.Version,
		Source:   w.Source,
		Grinders: make([]grind.Grinder, len(w.Grinders)),
	}
	for i, wg := range w.Grinders {
		settings := make([]grind.Setting, len(wg.Settings))
		for j, ws := range wg.Settings {
			if ws == nil {
				continue
			}
			if wg.Numeric {
				settings[j] = grind.Number(ws.Value)
			} else {
				settings[j] = grind.Label{Value: ws.Value, Display: ws.Display}
			}
		}
		c.Grinders[i] = grind.Grinder{
			ID:       wg.ID,
			Name:     wg.Name,
			Numeric:  wg.Numeric,
			Settings: settings,
		}
	}
	return c
}
