package matchers_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-audit/scanners/matchers"
)

var _ = Describe("Prefix", func() {
	var matcher matchers.Matcher

	BeforeEach(func() {
		matcher = matchers.Prefix("#")
	})

	It("matches lines starting with the prefix", func() {
		Expect(matcher.Match("# a comment")).To(BeTrue())
		Expect(matcher.Match("#nospace")).To(BeTrue())
	})

	It("does not match the prefix elsewhere in the line", func() {
		Expect(matcher.Match("pass#word")).To(BeFalse())
		Expect(matcher.Match(" #indented")).To(BeFalse())
	})
})

var _ = Describe("Multi", func() {
	It("returns false with no matchers", func() {
		Expect(matchers.Multi().Match("anything")).To(BeFalse())
	})

	It("returns true if any matcher matches", func() {
		m := matchers.Multi(matchers.Prefix("a"), matchers.Prefix("b"))
		Expect(m.Match("banana")).To(BeTrue())
		Expect(m.Match("cherry")).To(BeFalse())
	})
})

var _ = Describe("Ignorable", func() {
	var matcher matchers.Matcher

	BeforeEach(func() {
		matcher = matchers.Ignorable()
	})

	DescribeTable("skipped lines",
		func(line string) {
			Expect(matcher.Match(line)).To(BeTrue())
		},
		Entry("empty", ""),
		Entry("whitespace only", " \t "),
		Entry("comment", "# Sample password dictionary"),
		Entry("bare hash", "#"),
	)

	DescribeTable("kept lines",
		func(line string) {
			Expect(matcher.Match(line)).To(BeFalse())
		},
		Entry("a password", "password"),
		Entry("digits", "123456"),
		Entry("hash inside", "abc#123"),
	)
})
