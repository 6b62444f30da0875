// Package tagexpr parses the restricted boolean tag grammar used to select
// test scenarios: @tag tokens joined by a single combinator ("and" / "or"),
// with "not @tag" exclusions. Anything beyond that subset — parentheses or
// mixed combinators — is reported as unsupported rather than guessed at.
package tagexpr

import (
	"regexp"
	"strings"
)

// Mode says how positive tags combine when matching scenarios
type Mode string

const (
	ModeAny Mode = "any"
	ModeAll Mode = "all"
)

// Criteria is the parsed form of a tag expression. When Supported is
// false the remaining fields are best-effort placeholders and must not
// drive a scenario-count query.
type Criteria struct {
	Tags        []string
	ExcludeTags []string
	Mode        Mode
	Supported   bool
}

var (
	tagPattern     = regexp.MustCompile(`@([a-z0-9_-]+)`)
	excludePattern = regexp.MustCompile(`\bnot\s+@([a-z0-9_-]+)`)
	andPattern     = regexp.MustCompile(`\band\b`)
	orPattern      = regexp.MustCompile(`\bor\b`)
)

// Analyze parses a raw tag expression. It is total: malformed input yields
// Supported=false, never an error. Word-boundary matching keeps substrings
// like the "and" in "bandana" from being read as a combinator.
func Analyze(expression string) Criteria {
	expr := strings.ToLower(strings.TrimSpace(expression))
	if expr == "" {
		return Criteria{Mode: ModeAny, Supported: true}
	}

	if strings.ContainsAny(expr, "()") {
		return Criteria{Mode: ModeAny, Supported: false}
	}

	hasAnd := andPattern.MatchString(expr)
	hasOr := orPattern.MatchString(expr)
	mode := ModeAny
	if hasAnd {
		mode = ModeAll
	}
	if hasAnd && hasOr {
		return Criteria{Mode: mode, Supported: false}
	}

	var tags []string
	for _, match := range tagPattern.FindAllStringSubmatch(expr, -1) {
		tags = appendUnique(tags, match[1])
	}
	if len(tags) == 0 {
		return Criteria{Mode: mode, Supported: false}
	}

	var excluded []string
	for _, match := range excludePattern.FindAllStringSubmatch(expr, -1) {
		excluded = appendUnique(excluded, match[1])
		tags = remove(tags, match[1])
	}

	return Criteria{
		Tags:        tags,
		ExcludeTags: excluded,
		Mode:        mode,
		Supported:   true,
	}
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}

func remove(list []string, value string) []string {
	out := list[:0]
	for _, existing := range list {
		if existing != value {
			out = append(out, existing)
		}
	}
	return out
}
