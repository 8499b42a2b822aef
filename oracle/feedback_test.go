package oracle

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("feedback", func() {
	dictionary := func(name, token string, entropy float64) scoredMatch {
		return scoredMatch{
			Match:   Match{Pattern: "dictionary", Token: token, DictionaryName: name},
			entropy: entropy,
		}
	}

	It("gives nothing to strong passwords", func() {
		warning, suggestions := feedback(3, []scoredMatch{dictionary("Passwords", "password", 1)})

		Expect(warning).To(BeEmpty())
		Expect(suggestions).To(BeEmpty())
	})

	It("uses the longest match", func() {
		sequence := []scoredMatch{
			{Match: Match{Pattern: "sequence", Token: "abc"}},
			{Match: Match{Pattern: "spatial", Token: "qwerty"}},
		}

		warning, suggestions := feedback(1, sequence)

		Expect(warning).To(Equal("Short keyboard patterns are easy to guess."))
		Expect(suggestions).To(Equal([]string{
			"Add another word or two. Uncommon words are better.",
			"Use a longer keyboard pattern with more turns.",
		}))
	})

	It("only suggests more words for brute force", func() {
		warning, suggestions := feedback(0, []scoredMatch{{Match: Match{Pattern: "bruteforce", Token: "x"}}})

		Expect(warning).To(BeEmpty())
		Expect(suggestions).To(Equal([]string{"Add another word or two. Uncommon words are better."}))
	})

	DescribeTable("common passwords by rank",
		func(entropy float64, expected string) {
			warning, _ := feedback(0, []scoredMatch{dictionary("Passwords", "password", entropy)})
			Expect(warning).To(Equal(expected))
		},
		Entry("top 10", 1.0, "This is a top-10 common password."),
		Entry("top 100", 6.0, "This is a top-100 common password."),
		Entry("further down", 12.0, "This is a very common password."),
	)

	It("calls out names", func() {
		warning, _ := feedback(0, []scoredMatch{dictionary("Surnames", "smith", 8)})
		Expect(warning).To(Equal("Names and surnames by themselves are easy to guess."))

		warning, _ = feedback(0, []scoredMatch{
			dictionary("FemaleNames", "alice", 8),
			{Match: Match{Pattern: "bruteforce", Token: "1"}},
		})
		Expect(warning).To(Equal("Common names and surnames are easy to guess."))
	})

	It("notices capitalization", func() {
		_, suggestions := feedback(0, []scoredMatch{dictionary("English", "Monkey", 8)})
		Expect(suggestions).To(ContainElement("Capitalization doesn't help very much."))

		_, suggestions = feedback(0, []scoredMatch{dictionary("English", "MONKEY", 8)})
		Expect(suggestions).To(ContainElement("All-uppercase is almost as easy to guess as all-lowercase."))
		Expect(suggestions).NotTo(ContainElement("Capitalization doesn't help very much."))
	})

	It("does not call mixed case capitalization", func() {
		_, suggestions := feedback(0, []scoredMatch{dictionary("English", "MonKey", 8)})
		Expect(suggestions).NotTo(ContainElement("Capitalization doesn't help very much."))
		Expect(suggestions).NotTo(ContainElement("All-uppercase is almost as easy to guess as all-lowercase."))
	})

	It("tells single character repeats apart", func() {
		warning, _ := feedback(0, []scoredMatch{{Match: Match{Pattern: "repeat", Token: "aaaa"}}})
		Expect(warning).To(Equal(`Repeats like "aaa" are easy to guess.`))

		warning, _ = feedback(0, []scoredMatch{{Match: Match{Pattern: "repeat", Token: "abab"}}})
		Expect(warning).To(Equal(`Repeats like "abcabcabc" are only slightly harder to guess than "abc".`))
	})
})

var _ = Describe("yearOf", func() {
	DescribeTable("reading years from date tokens",
		func(token string, expected int) {
			Expect(yearOf(token)).To(Equal(expected))
		},
		Entry("four digit year", "13.3.1997", 1997),
		Entry("eight digits", "01011997", 1997),
		Entry("year first", "19970101", 1997),
		Entry("two digit last century", "1/1/91", 1991),
		Entry("two digit this century", "1-1-12", 2012),
		Entry("no digits", "--", 0),
	)
})
