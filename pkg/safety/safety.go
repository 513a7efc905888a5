// Package safety classifies toolchain utilities by whether a wrapper may
// pass them architecture flags. Lookups use canonical tool names only.
package safety

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is the three-way classification of a tool.
type Kind int

const (
	// Unknown means the tool is untested; its wrapper carries a runtime
	// warning and injects no flags.
	Unknown Kind = iota
	// SafeNoFlags means the tool is known safe and needs no flags.
	SafeNoFlags
	// SafeNamedFlags means the tool is known safe and takes the flags
	// from one of the architecture's named flag sets.
	SafeNamedFlags
)

// Classification is a tool's safety entry. FlagSet names the
// architecture flag set to inject and is meaningful only for
// SafeNamedFlags.
type Classification struct {
	Kind    Kind
	FlagSet string
}

// NoFlags returns the known-safe, no-flags classification.
func NoFlags() Classification {
	return Classification{Kind: SafeNoFlags}
}

// NamedFlags returns a known-safe classification drawing flags from the
// named architecture flag set.
func NamedFlags(set string) Classification {
	return Classification{Kind: SafeNamedFlags, FlagSet: set}
}

// Classify looks up the canonical tool name in table. A missing entry is
// an Unknown classification.
func Classify(canonicalTool string, table map[string]Classification) Classification {
	return table[canonicalTool]
}

// String renders the classification in the same compact form the YAML
// override files use: "unknown", "safe", or "flags:<set>".
func (c Classification) String() string {
	switch c.Kind {
	case SafeNoFlags:
		return "safe"
	case SafeNamedFlags:
		return "flags:" + c.FlagSet
	default:
		return "unknown"
	}
}

// Parse is the inverse of String.
func Parse(s string) (Classification, error) {
	switch {
	case s == "unknown":
		return Classification{}, nil
	case s == "safe":
		return NoFlags(), nil
	case strings.HasPrefix(s, "flags:"):
		set := strings.TrimPrefix(s, "flags:")
		if set == "" {
			return Classification{}, fmt.Errorf("classification %q names no flag set", s)
		}
		return NamedFlags(set), nil
	default:
		return Classification{}, fmt.Errorf("unknown classification %q", s)
	}
}

// UnmarshalYAML accepts the compact string form in table override files.
func (c *Classification) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
