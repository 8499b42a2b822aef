package analyzer_test

import (
	"context"
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-audit/analyzer"
	"github.com/pivotal-cf/pass-audit/analyzer/analyzerfakes"
	"github.com/pivotal-cf/pass-audit/breach"
	"github.com/pivotal-cf/pass-audit/digest"
	"github.com/pivotal-cf/pass-audit/generator"
	"github.com/pivotal-cf/pass-audit/oracle"
	"github.com/pivotal-cf/pass-audit/oracle/oraclefakes"
	"github.com/pivotal-cf/pass-audit/strength"
)

var _ = Describe("Analyzer", func() {
	var (
		logger     *lagertest.TestLogger
		index      *analyzerfakes.FakeIndex
		fakeOracle *oraclefakes.FakeOracle
		subject    *analyzer.Analyzer
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("analyzer")
		index = &analyzerfakes.FakeIndex{}
		fakeOracle = &oraclefakes.FakeOracle{}
		fakeOracle.EvaluateReturns(oracle.Result{
			Score:       3,
			Warning:     "",
			Suggestions: []string{},
			Sequence: []oracle.Match{
				{Pattern: "dictionary", Token: "tulip", DictionaryName: "English"},
				{Pattern: "date", Token: "1.1.1991", Year: 1991},
				{Pattern: "digits", Token: "42"},
			},
			CrackTimesDisplay: map[string]string{
				oracle.OnlineThrottling: "centuries",
			},
		})

		subject = analyzer.New(logger, index, fakeOracle)
	})

	Describe("Analyze", func() {
		It("asks the oracle exactly once", func() {
			subject.Analyze("Tulip-1.1.1991-42")

			Expect(fakeOracle.EvaluateCallCount()).To(Equal(1))
			Expect(fakeOracle.EvaluateArgsForCall(0)).To(Equal("Tulip-1.1.1991-42"))
		})

		It("assembles the result", func() {
			result := subject.Analyze("Tulip-1.1.1991-42")

			Expect(result.Length).To(Equal(17))
			Expect(result.Score).To(Equal(strength.Strong))
			Expect(result.IsBreached).To(BeFalse())
			Expect(result.Digest).To(Equal(digest.Sum("Tulip-1.1.1991-42")))
			Expect(result.Entropy).To(BeNumerically(">", 0))
			Expect(result.CrackTimes).To(Equal(map[string]string{oracle.OnlineThrottling: "centuries"}))
		})

		It("normalizes the pattern kinds", func() {
			result := subject.Analyze("Tulip-1.1.1991-42")

			Expect(result.Patterns).To(Equal([]analyzer.Pattern{
				{Kind: "dictionary", Token: "tulip", DictionaryName: "English"},
				{Kind: "date", Token: "1.1.1991", Year: 1991},
				{Kind: "unknown", Token: "42"},
			}))
		})

		It("scores breached passwords as very weak and says so first", func() {
			index.ContainsReturns(true)

			result := subject.Analyze("Tulip-1.1.1991-42")

			Expect(result.IsBreached).To(BeTrue())
			Expect(result.Score).To(Equal(strength.VeryWeak))
			Expect(result.Feedback[0]).To(Equal(strength.BreachedWarning))
		})

		It("counts the length in characters", func() {
			Expect(subject.Analyze("pässwörd").Length).To(Equal(8))
		})

		It("does not log the password", func() {
			subject.Analyze("hunter2-secret")
			_, err := subject.AnalyzeBatch(context.Background(), []string{"hunter2-secret"}, 2)
			Expect(err).NotTo(HaveOccurred())

			Expect(string(logger.Buffer().Contents())).NotTo(ContainSubstring("hunter2"))
		})

		It("counts the analyses", func() {
			subject.Analyze("a")
			subject.Analyze("b")

			Expect(subject.Stats().TotalAnalyses).To(Equal(int64(2)))
		})
	})

	Describe("AnalyzeBatch", func() {
		It("returns an empty result for no passwords", func() {
			results, err := subject.AnalyzeBatch(context.Background(), nil, 4)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(BeEmpty())
			Expect(fakeOracle.EvaluateCallCount()).To(Equal(0))
		})

		It("keeps the input order", func() {
			candidates := make([]string, 100)
			for i := range candidates {
				candidates[i] = strings.Repeat("x", i+1)
			}

			results, err := subject.AnalyzeBatch(context.Background(), candidates, 8)
			Expect(err).NotTo(HaveOccurred())

			Expect(results).To(HaveLen(100))
			for i, result := range results {
				Expect(result.Length).To(Equal(i + 1))
				Expect(result.Digest).To(Equal(digest.Sum(candidates[i])))
			}
			Expect(subject.Stats().TotalAnalyses).To(Equal(int64(100)))
		})

		It("runs with a single worker when asked for none", func() {
			results, err := subject.AnalyzeBatch(context.Background(), []string{"a", "b"}, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			results, err := subject.AnalyzeBatch(ctx, []string{"a", "b", "c"}, 2)
			Expect(err).To(MatchError(context.Canceled))
			Expect(results).To(BeNil())
		})
	})

	Context("with a real index and oracle", func() {
		BeforeEach(func() {
			idx, err := breach.Build(logger, breach.ReaderSource("common", strings.NewReader("# top\npassword\n123456\nqwerty\n")))
			Expect(err).NotTo(HaveOccurred())

			subject = analyzer.New(logger, idx, oracle.NewZxcvbn())
		})

		It("finds a breached password", func() {
			result := subject.Analyze("password")

			Expect(result.IsBreached).To(BeTrue())
			Expect(result.Score).To(Equal(strength.VeryWeak))
			Expect(result.Feedback).To(ContainElement(strength.BreachedWarning))
			Expect(result.Feedback).To(ContainElement(strength.MinimumLengthAdvice))
		})

		It("passes a long passphrase", func() {
			result := subject.Analyze("Correct-Horse-Battery-Staple-Orbit-Lantern")

			Expect(result.IsBreached).To(BeFalse())
			Expect(result.Entropy).To(BeNumerically(">=", 77))
			Expect(result.Feedback).NotTo(ContainElement(strength.BreachedWarning))
			Expect(result.CrackTimes).To(HaveLen(4))
		})

		It("scores a generated passphrase as unbreached and high entropy", func() {
			gen := generator.NewWithWords(nil, "")
			Expect(gen.Info().Source).To(Equal(generator.FallbackSource))

			bits := int(6 * gen.Info().BitsPerWord)
			passphrase, err := gen.Passphrase(bits, "-", true, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Split(passphrase, "-")).To(HaveLen(6))
			Expect(passphrase).To(MatchRegexp(`^[A-Z].*[1-9][0-9]$`))

			result := subject.Analyze(passphrase)

			Expect(result.IsBreached).To(BeFalse())
			Expect(result.Entropy).To(BeNumerically(">=", 77))
			Expect(result.Feedback).NotTo(ContainElement(strength.BreachedWarning))
		})

		It("analyzes a batch concurrently against the same index", func() {
			candidates := make([]string, 50)
			for i := range candidates {
				candidates[i] = fmt.Sprintf("candidate-%d", i)
			}
			candidates[25] = "qwerty"

			results, err := subject.AnalyzeBatch(context.Background(), candidates, 4)
			Expect(err).NotTo(HaveOccurred())

			for i, result := range results {
				Expect(result.IsBreached).To(Equal(i == 25))
			}
		})
	})
})
