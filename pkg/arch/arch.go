// Package arch resolves requested architecture triples to the metadata
// describing the toolchain actually being wrapped.
package arch

import (
	"fmt"

	"github.com/o11c/toolchain-arch-wrappers/pkg/fixup"
)

// Info describes one canonical architecture triple: the triple of the
// installed toolchain its wrappers forward to, and named flag sets
// injected into flag-accepting tools (e.g. "gcc_flags" for multilib
// selection).
type Info struct {
	Wraps    string            `yaml:"wraps"`
	FlagSets map[string]string `yaml:"flags"`
}

// FlagSet returns the named flag string, or "" when the set is not
// defined for this architecture.
func (i Info) FlagSet(name string) string {
	return i.FlagSets[name]
}

// UnresolvedArchError reports a triple that, after normalization, has no
// table entry. It is fatal: no wrapper may be emitted for an unresolved
// architecture.
type UnresolvedArchError struct {
	Triple    string
	Canonical string
}

func (e *UnresolvedArchError) Error() string {
	if e.Canonical != e.Triple {
		return fmt.Sprintf("unresolved architecture %q (canonicalized to %q)", e.Triple, e.Canonical)
	}
	return fmt.Sprintf("unresolved architecture %q", e.Triple)
}

var rules = []fixup.Rule{
	fixup.Literal(`-pc-`, "-"),
	fixup.Literal(`-unknown-`, "-"),
	// legacy 32-bit x86 triples are all one architecture here
	fixup.Literal(`^i[456]86-`, "i386-"),
}

// Normalize returns the canonical table key for triple.
func Normalize(triple string) string {
	return fixup.Apply(triple, rules)
}

// Resolve normalizes triple and looks it up in table.
func Resolve(triple string, table map[string]Info) (Info, error) {
	canonical := Normalize(triple)
	info, ok := table[canonical]
	if !ok {
		return Info{}, &UnresolvedArchError{Triple: triple, Canonical: canonical}
	}
	return info, nil
}
