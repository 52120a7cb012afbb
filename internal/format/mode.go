package format

import "fmt"

// Mode selects the output style.
type Mode uint8

const (
	// ModeAnnotated keeps comments and blank lines (jsonc).
	ModeAnnotated Mode = iota
	// ModePretty is strict JSON, indented.
	ModePretty
	// ModeCompact is strict JSON with no insignificant whitespace.
	ModeCompact
)

func (m Mode) String() string {
	switch m {
	case ModeAnnotated:
		return "annotated"
	case ModePretty:
		return "pretty"
	case ModeCompact:
		return "compact"
	}
	return "unknown"
}

// ParseMode converts a CLI argument into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "annotated", "jsonc":
		return ModeAnnotated, nil
	case "pretty", "json":
		return ModePretty, nil
	case "compact":
		return ModeCompact, nil
	}
	return ModeAnnotated, fmt.Errorf("unknown format mode %q (want annotated, pretty, or compact)", s)
}

type Options struct {
	Mode        Mode
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}
