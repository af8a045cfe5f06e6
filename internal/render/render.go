// Package render turns a genealogy into text, JSON or YAML.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/genealogy/internal/virus"
)

// Source is the read-only view of a genealogy the renderers need.
// *genealogy.Genealogy[string, *virus.Virus] satisfies it.
type Source interface {
	StemID() string
	Get(id string) (*virus.Virus, error)
	IDs() []string
	Parents(id string) ([]string, error)
	ChildIDs(id string) ([]string, error)
}

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(name))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected one of %v", name, Formats)
	}
}

// Write renders src to w in format f.
func Write(w io.Writer, src Source, f Format, opts TextOptions) error {
	switch f {
	case FormatText:
		out, err := Text(src, opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case FormatJSON:
		snap, err := Take(src)
		if err != nil {
			return err
		}
		return snap.WriteJSON(w)
	case FormatYAML:
		snap, err := Take(src)
		if err != nil {
			return err
		}
		return snap.WriteYAML(w)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
