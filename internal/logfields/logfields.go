package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyPage       = "page"
	KeyURL        = "url"
	KeyFile       = "file"
	KeyPath       = "path"
	KeyReference  = "reference"
	KeyKind       = "kind"
	KeySection    = "section"
	KeyTheme      = "theme"
	KeyProvider   = "provider"
	KeyCount      = "count"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func Page(source string) slog.Attr     { return slog.String(KeyPage, source) }
func URL(u string) slog.Attr           { return slog.String(KeyURL, u) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Reference(ref string) slog.Attr   { return slog.String(KeyReference, ref) }
func Kind(k string) slog.Attr          { return slog.String(KeyKind, k) }
func Section(s string) slog.Attr       { return slog.String(KeySection, s) }
func Theme(name string) slog.Attr      { return slog.String(KeyTheme, name) }
func Provider(name string) slog.Attr   { return slog.String(KeyProvider, name) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
