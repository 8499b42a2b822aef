package scanners

import (
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-audit/scanners/matchers"
)

// Each hands every trimmed line that skip does not match to handle and
// returns how many it handed over.
func Each(logger lager.Logger, scanner Scanner, skip matchers.Matcher, handle func(string)) (int, error) {
	var count int
	for scanner.Scan(logger) {
		line := strings.TrimSpace(scanner.Line(logger).Content)
		if skip.Match(line) {
			continue
		}

		handle(line)
		count++
	}

	return count, scanner.Err()
}
