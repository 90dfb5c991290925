package archive

import (
	"os"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// RuleSet is a compiled gitignore-style matcher for one archive operation.
// It is rebuilt per invocation because the underlying rule file may change
// between runs.
type RuleSet struct {
	patterns []string
	matcher  *ignore.GitIgnore
}

// ParseRules builds a RuleSet from the contents of a gitignore-style rule
// file. Blank lines and comment lines are skipped; inline comments are
// stripped at the first unescaped '#'.
//
// Every surviving rule is registered verbatim and then widened with
// compatibility variants covering the ambiguous anchoring shapes a rule can
// take (leading and trailing slash combinations). The widening only ever adds
// patterns, so any path excluded under a standard reading of the original
// rule stays excluded. Negated rules keep their '!' prefix on each variant;
// the final decision is the matcher's usual last-match-wins.
func ParseRules(contents string) *RuleSet {
	var patterns []string
	for line := range strings.Lines(contents) {
		rule := cleanRuleLine(line)
		if rule == "" {
			continue
		}
		patterns = append(patterns, expandRule(rule)...)
	}

	rs := &RuleSet{patterns: patterns}
	if len(patterns) > 0 {
		rs.matcher = ignore.CompileIgnoreLines(patterns...)
	}
	return rs
}

// LoadRuleFile reads and parses a rule file from disk. An unreadable file
// fails open: the returned RuleSet matches nothing, because inclusion is the
// safe default when packaging.
func LoadRuleFile(path string, logger *zap.Logger) *RuleSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("rule file unreadable, excluding nothing",
			zap.String("path", path),
			zap.Error(err))
		return &RuleSet{}
	}
	return ParseRules(string(data))
}

// Matches reports whether the slash-separated relative path is excluded by
// the rule set. An empty rule set matches nothing.
func (rs *RuleSet) Matches(relPath string) bool {
	if rs == nil || rs.matcher == nil {
		return false
	}
	return rs.matcher.MatchesPath(relPath)
}

// Patterns returns the registered patterns, compatibility variants included,
// in registration order.
func (rs *RuleSet) Patterns() []string {
	if rs == nil {
		return nil
	}
	return rs.patterns
}

// cleanRuleLine strips line endings, comments, and surrounding whitespace.
// It returns "" for lines that carry no rule.
func cleanRuleLine(line string) string {
	line = strings.TrimRight(line, "\r\n")
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return ""
	}
	if i := indexUnescapedHash(line); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// indexUnescapedHash finds the first '#' not escaped by a backslash.
func indexUnescapedHash(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] == '#' && (i == 0 || line[i-1] != '\\') {
			return i
		}
	}
	return -1
}

// expandRule returns the rule followed by its compatibility variants. The
// four anchoring shapes are widened as follows:
//
//	"name/"   -> also "name"
//	"name"    -> also "name/"
//	"/name"   -> also "name" and "name/"
//	"/name/"  -> also "name", "name/", and "/name"
func expandRule(rule string) []string {
	negated := false
	body := rule
	if strings.HasPrefix(body, "!") {
		negated = true
		body = body[1:]
	}
	if body == "" || body == "/" {
		return nil
	}

	variants := []string{body}
	leading := strings.HasPrefix(body, "/")
	trailing := strings.HasSuffix(body, "/")

	switch {
	case trailing && !leading:
		variants = append(variants, strings.TrimSuffix(body, "/"))
	case !trailing && !leading:
		variants = append(variants, body+"/")
	case leading && !trailing:
		stripped := strings.TrimPrefix(body, "/")
		variants = append(variants, stripped, stripped+"/")
	default:
		variants = append(variants,
			strings.Trim(body, "/"),
			strings.TrimPrefix(body, "/"),
			strings.TrimSuffix(body, "/"))
	}

	if negated {
		for i := range variants {
			variants[i] = "!" + variants[i]
		}
	}
	return variants
}
