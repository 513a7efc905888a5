package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/o11c/toolchain-arch-wrappers/pkg/arch"
	"github.com/o11c/toolchain-arch-wrappers/pkg/safety"
)

// Overrides is the YAML schema for extending the built-in tables.
// Tools and blacklist entries are appended; safety and arch entries are
// merged over the defaults, last writer wins.
type Overrides struct {
	Tools     []string                         `yaml:"tools"`
	Blacklist []string                         `yaml:"blacklist"`
	Safety    map[string]safety.Classification `yaml:"safety"`
	Arches    map[string]arch.Info             `yaml:"arches"`
}

// LoadOverrides reads an override document from path.
func LoadOverrides(path string) (Overrides, error) {
	var o Overrides
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read table overrides: %w", err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("parse table overrides %s: %w", path, err)
	}
	return o, nil
}

// WithOverrides returns a copy of t with o merged in. The receiver is
// not modified.
func (t Tables) WithOverrides(o Overrides) Tables {
	merged := Tables{
		Tools:     make([]string, 0, len(t.Tools)+len(o.Tools)),
		Blacklist: make(map[string]bool, len(t.Blacklist)+len(o.Blacklist)),
		Safety:    make(map[string]safety.Classification, len(t.Safety)+len(o.Safety)),
		Arches:    make(map[string]arch.Info, len(t.Arches)+len(o.Arches)),
	}

	merged.Tools = append(merged.Tools, t.Tools...)
	seen := make(map[string]bool, len(t.Tools))
	for _, tool := range t.Tools {
		seen[tool] = true
	}
	for _, tool := range o.Tools {
		if !seen[tool] {
			merged.Tools = append(merged.Tools, tool)
			seen[tool] = true
		}
	}

	for name := range t.Blacklist {
		merged.Blacklist[name] = true
	}
	for _, name := range o.Blacklist {
		merged.Blacklist[name] = true
	}

	for name, class := range t.Safety {
		merged.Safety[name] = class
	}
	for name, class := range o.Safety {
		merged.Safety[name] = class
	}

	for triple, info := range t.Arches {
		merged.Arches[triple] = info
	}
	for triple, info := range o.Arches {
		merged.Arches[triple] = info
	}

	return merged
}
