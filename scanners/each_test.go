package scanners_test

import (
	"errors"
	"strings"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-audit/scanners"
	"github.com/pivotal-cf/pass-audit/scanners/linescanner"
	"github.com/pivotal-cf/pass-audit/scanners/matchers"
	"github.com/pivotal-cf/pass-audit/scanners/matchers/matchersfakes"
	"github.com/pivotal-cf/pass-audit/scanners/scannersfakes"
)

var _ = Describe("Each", func() {
	var (
		logger *lagertest.TestLogger
		lines  []string
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("each")
		lines = nil
	})

	collect := func(line string) {
		lines = append(lines, line)
	}

	It("trims lines and skips the ones the matcher matches", func() {
		input := "# header\n  password \n\n123456\n\t\n#another\nqwerty"
		scanner := linescanner.New(strings.NewReader(input), "input")

		count, err := scanners.Each(logger, scanner, matchers.Ignorable(), collect)
		Expect(err).NotTo(HaveOccurred())

		Expect(count).To(Equal(3))
		Expect(lines).To(Equal([]string{"password", "123456", "qwerty"}))
	})

	It("returns the scanner's error", func() {
		scanner := linescanner.New(strings.NewReader("ok\n\xff\xfe\n"), "input")

		_, err := scanners.Each(logger, scanner, matchers.Ignorable(), collect)
		Expect(err).To(HaveOccurred())
	})

	Context("with a fake scanner", func() {
		var (
			scanner *scannersfakes.FakeScanner
			skip    *matchersfakes.FakeMatcher
		)

		BeforeEach(func() {
			scanner = &scannersfakes.FakeScanner{}
			scanner.ScanReturnsOnCall(0, true)
			scanner.ScanReturnsOnCall(1, true)
			scanner.ScanReturnsOnCall(2, false)
			scanner.LineReturnsOnCall(0, &scanners.Line{Content: " keep "})
			scanner.LineReturnsOnCall(1, &scanners.Line{Content: "drop"})

			skip = &matchersfakes.FakeMatcher{}
			skip.MatchStub = func(line string) bool {
				return line == "drop"
			}
		})

		It("asks the matcher about trimmed lines only", func() {
			count, err := scanners.Each(logger, scanner, skip, collect)
			Expect(err).NotTo(HaveOccurred())

			Expect(count).To(Equal(1))
			Expect(lines).To(Equal([]string{"keep"}))
			Expect(skip.MatchCallCount()).To(Equal(2))
			Expect(skip.MatchArgsForCall(0)).To(Equal("keep"))
		})

		It("passes its logger to the scanner", func() {
			scanners.Each(logger, scanner, skip, collect)

			Expect(scanner.ScanCallCount()).To(Equal(3))
			Expect(scanner.ScanArgsForCall(0)).To(Equal(logger))
		})

		It("returns what the scanner failed with after the last line", func() {
			scanner.ErrReturns(errors.New("disk on fire"))

			count, err := scanners.Each(logger, scanner, skip, collect)
			Expect(err).To(MatchError("disk on fire"))
			Expect(count).To(Equal(1))
		})
	})
})
