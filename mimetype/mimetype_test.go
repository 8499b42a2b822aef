package mimetype_test

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-audit/mimetype"
)

var _ = Describe("IsArchive", func() {
	DescribeTable("archive extensions",
		func(name, expected string) {
			mime, ok := mimetype.IsArchive(name)
			Expect(ok).To(BeTrue())
			Expect(mime).To(Equal(expected))
		},
		Entry("tar", "rockyou.tar", mimetype.Tar),
		Entry("tar.gz", "rockyou.tar.gz", mimetype.Tar),
		Entry("tgz", "rockyou.tgz", mimetype.Tar),
		Entry("zip", "SecLists.zip", mimetype.Zip),
		Entry("gz", "rockyou.txt.gz", mimetype.Gzip),
	)

	It("does not treat plain text as an archive", func() {
		_, ok := mimetype.IsArchive("10k-most-common.txt")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Sniff", func() {
	It("does not treat plain text as an archive", func() {
		br := bufio.NewReader(strings.NewReader("password\n123456\n"))
		_, ok := mimetype.Sniff(br)
		Expect(ok).To(BeFalse())
	})

	It("does not consume the header", func() {
		br := bufio.NewReader(strings.NewReader("password\n"))
		mimetype.Sniff(br)

		line, err := br.ReadString('\n')
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("password\n"))
	})

	It("treats an empty stream as plain", func() {
		_, ok := mimetype.Sniff(bufio.NewReader(strings.NewReader("")))
		Expect(ok).To(BeFalse())
	})

	It("recognises gzip streams", func() {
		buf := &bytes.Buffer{}
		w := gzip.NewWriter(buf)
		_, err := w.Write([]byte("password\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Close()).To(Succeed())

		mime, ok := mimetype.Sniff(bufio.NewReader(buf))
		Expect(ok).To(BeTrue())
		Expect(mime).To(Equal(mimetype.Gzip))
	})
})
