package matchers

//go:generate counterfeiter . Matcher

type Matcher interface {
	Match(line string) bool
}
