// Package toolname canonicalizes toolchain utility names for
// classification and blacklist lookups. The canonical form never feeds
// into the name of the real executable a wrapper invokes; that always
// uses the name as requested.
package toolname

import "github.com/o11c/toolchain-arch-wrappers/pkg/fixup"

var rules = []fixup.Rule{
	// strip trailing version suffixes, e.g. gcc-7.3.1 -> gcc
	fixup.Literal(`-[0-9.]+$`, ""),
	fixup.Literal(`^(gold|ld\.(bfd|gold))$`, "ld"),
	fixup.Groups(`^gcc-(ar|nm|ranlib)$`, func(groups []string) string {
		return groups[1]
	}),
}

// Normalize returns the canonical form of tool.
func Normalize(tool string) string {
	return fixup.Apply(tool, rules)
}
