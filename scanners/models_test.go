package scanners_test

import (
	"code.cloudfoundry.org/lager"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-audit/scanners"
)

var _ = Describe("Line", func() {
	var line scanners.Line

	BeforeEach(func() {
		line = scanners.Line{
			Path:       "dictionaries/rockyou.txt",
			LineNumber: 12,
			Content:    "hunter2",
		}
	})

	Describe("Location", func() {
		It("returns where the line came from", func() {
			Expect(line.Location()).To(Equal(lager.Data{
				"path": "dictionaries/rockyou.txt",
				"line": 12,
			}))
		})

		It("never includes the content", func() {
			for _, v := range line.Location() {
				Expect(v).NotTo(Equal("hunter2"))
			}
		})
	})
})
