package config_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-audit/config"
)

var _ = Describe("Config", func() {
	Describe("LoadConfig", func() {
		It("reads yaml", func() {
			c, err := config.LoadConfig([]byte(`
data_dir: /opt/pass-audit/data
dictionaries:
- /etc/breaches/rockyou.txt.gz
- /etc/breaches/custom.txt
wordlist: /opt/words.txt
workers: 8
no_defaults: true
`))
			Expect(err).NotTo(HaveOccurred())

			Expect(c).To(Equal(&config.Config{
				DataDir:      "/opt/pass-audit/data",
				Dictionaries: []string{"/etc/breaches/rockyou.txt.gz", "/etc/breaches/custom.txt"},
				Wordlist:     "/opt/words.txt",
				Workers:      8,
				NoDefaults:   true,
			}))
		})

		It("fails on malformed yaml", func() {
			_, err := config.LoadConfig([]byte("workers: [nope"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Merge", func() {
		var c, other *config.Config

		BeforeEach(func() {
			c = &config.Config{
				DataDir: "orig-data-dir",
				Workers: 2,
			}

			other = &config.Config{
				Workers:      6,
				Dictionaries: []string{"extra.txt"},
			}
		})

		It("replaces values on the destination when a non-default value is present on the source", func() {
			Expect(c.Merge(other)).To(Succeed())

			Expect(c).To(Equal(&config.Config{
				DataDir:      "orig-data-dir",
				Workers:      6,
				Dictionaries: []string{"extra.txt"},
			}))
		})
	})

	Describe("Validate", func() {
		It("accepts the zero config", func() {
			Expect((&config.Config{}).Validate()).To(BeEmpty())
		})

		It("collects every problem", func() {
			c := &config.Config{
				Workers:    -1,
				NoDefaults: true,
			}

			Expect(c.Validate()).To(HaveLen(2))
		})

		It("rejects empty dictionary paths", func() {
			c := &config.Config{Dictionaries: []string{"a.txt", ""}}
			Expect(c.Validate()).To(HaveLen(1))
		})
	})

	Describe("ApplyDefaults", func() {
		It("fills in the wordlist and worker count from the data dir", func() {
			c := &config.Config{DataDir: "/data"}
			Expect(c.ApplyDefaults()).To(Succeed())

			Expect(c.Wordlist).To(Equal(filepath.Join("/data", "eff_large_wordlist.txt")))
			Expect(c.Workers).To(Equal(config.DefaultWorkers))
		})

		It("keeps what was set", func() {
			c := &config.Config{DataDir: "/data", Wordlist: "/w.txt", Workers: 1}
			Expect(c.ApplyDefaults()).To(Succeed())

			Expect(c.Wordlist).To(Equal("/w.txt"))
			Expect(c.Workers).To(Equal(1))
		})

		It("defaults the data dir to next to the executable", func() {
			c := &config.Config{}
			Expect(c.ApplyDefaults()).To(Succeed())

			Expect(filepath.Base(c.DataDir)).To(Equal("data"))
		})
	})

	Describe("DictionaryPaths", func() {
		It("puts the bundled dictionaries first", func() {
			c := &config.Config{DataDir: "/data", Dictionaries: []string{"/extra.txt"}}

			Expect(c.DictionaryPaths()).To(Equal([]string{
				filepath.Join("/data", "10k-most-common.txt"),
				filepath.Join("/data", "10-million-password-list-top-1000000.txt"),
				filepath.Join("/data", "500-worst-passwords.txt"),
				"/extra.txt",
			}))
		})

		It("skips them with no defaults", func() {
			c := &config.Config{DataDir: "/data", NoDefaults: true, Dictionaries: []string{"/extra.txt"}}

			Expect(c.DictionaryPaths()).To(Equal([]string{"/extra.txt"}))
		})
	})
})
