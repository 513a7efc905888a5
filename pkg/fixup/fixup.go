// Package fixup applies ordered regular-expression substitution rules to
// identifier strings. Both tool names and architecture triples are
// canonicalized through rule chains before any table lookup.
package fixup

import "regexp"

// Rule rewrites every match of Pattern. Exactly one replacement arm is
// set: Groups, a function of the match's captured groups, takes
// precedence; otherwise Literal is substituted verbatim.
type Rule struct {
	Pattern *regexp.Regexp
	Literal string
	Groups  func(groups []string) string
}

func (r Rule) apply(s string) string {
	if r.Groups == nil {
		return r.Pattern.ReplaceAllString(s, r.Literal)
	}
	return r.Pattern.ReplaceAllStringFunc(s, func(match string) string {
		return r.Groups(r.Pattern.FindStringSubmatch(match))
	})
}

// Literal returns a rule substituting repl for every match of pattern.
func Literal(pattern, repl string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Literal: repl}
}

// Groups returns a rule whose replacement is computed from the captured
// groups of each match. groups[0] is the whole match.
func Groups(pattern string, repl func(groups []string) string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Groups: repl}
}

// Apply runs each rule in order; every rule sees the previous rule's
// output.
func Apply(s string, rules []Rule) string {
	for _, r := range rules {
		s = r.apply(s)
	}
	return s
}
