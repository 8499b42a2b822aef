package report_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-audit/analyzer"
	"github.com/pivotal-cf/pass-audit/report"
	"github.com/pivotal-cf/pass-audit/strength"
)

var _ = Describe("Summarize", func() {
	It("is the zero summary for no results", func() {
		Expect(report.Summarize(nil)).To(Equal(report.Summary{}))
		Expect(report.Summarize([]analyzer.Result{})).To(Equal(report.Summary{}))
	})

	It("aggregates the batch", func() {
		summary := report.Summarize([]analyzer.Result{
			{Length: 8, Score: strength.VeryWeak, IsBreached: true, Entropy: 37.6},
			{Length: 12, Score: strength.Weak, Entropy: 60.0},
			{Length: 20, Score: strength.VeryStrong, Entropy: 131.1},
		})

		Expect(summary.TotalAnalyzed).To(Equal(3))
		Expect(summary.CommonPasswords).To(Equal(1))
		Expect(summary.CommonPercentage).To(BeNumerically("~", 33.333, 0.001))
		Expect(summary.AverageLength).To(Equal(13.3))
		Expect(summary.AverageEntropy).To(Equal(76.2))
		Expect(summary.AverageScore).To(Equal(1.67))
		Expect(summary.ScoreDistribution).To(Equal(map[int]int{0: 1, 1: 1, 2: 0, 3: 0, 4: 1}))
		Expect(summary.WeakPasswords).To(Equal(2))
	})
})
