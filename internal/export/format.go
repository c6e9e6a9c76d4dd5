package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

var Formats = struct {
	JSON     Format
	YAML     Format
	Markdown Format
}{
	JSON:     "json",
	YAML:     "yaml",
	Markdown: "md",
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return Formats.JSON, nil
	case "yaml", "yml":
		return Formats.YAML, nil
	case "md", "markdown":
		return Formats.Markdown, nil
	default:
		return "", fmt.Errorf("unknown export format: %q", s)
	}
}

func (f Format) MimeType() string {
	switch f {
	case Formats.YAML:
		return "application/yaml"
	case Formats.Markdown:
		return "text/markdown"
	default:
		return "application/json"
	}
}

// FileName is the backup file name for a snapshot, e.g. liftstats-serj-2025-03-01.json.
func FileName(snap Snapshot, f Format) string {
	return fmt.Sprintf("liftstats-%s-%s.%s", snap.Username, snap.ExportedAt.Format(dateLayout), f)
}

// Encode writes the snapshot to w in the given format.
func Encode(w io.Writer, snap Snapshot, f Format) error {
	switch f {
	case Formats.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case Formats.YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case Formats.Markdown:
		return writeMarkdown(w, snap)
	default:
		return fmt.Errorf("unknown export format: %q", f)
	}
}
