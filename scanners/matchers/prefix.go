package matchers

import "strings"

type prefixMatcher struct {
	prefix string
}

func Prefix(prefix string) Matcher {
	return &prefixMatcher{
		prefix: prefix,
	}
}

func (m *prefixMatcher) Match(line string) bool {
	return strings.HasPrefix(line, m.prefix)
}

type blankMatcher struct{}

func Blank() Matcher {
	return &blankMatcher{}
}

func (m *blankMatcher) Match(line string) bool {
	return strings.TrimSpace(line) == ""
}
