package main

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var manifest = []byte(`Version: 1.2.0
APIVersion: "2016-10-06"
GitHash: 5d3c1a0
BuiltBy: release
BuiltAt: 2020-08-01T10:00:00Z
`)

var _ = Describe("Version check", func() {

	It("reports an up to date version", func() {
		result, err := compareVersion(manifest, "1.2.0")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.IsUpToDate).To(BeTrue())
		Expect(result.LatestVersion.APIVersion).To(Equal("2016-10-06"))
	})

	It("reports a newer version", func() {
		result, err := compareVersion(manifest, "1.1.0")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.IsUpToDate).To(BeFalse())
		Expect(result.LatestVersion.Version).To(Equal("1.2.0"))
	})

	It("rejects malformed manifests", func() {
		_, err := compareVersion([]byte("Version: [1.2.0"), "1.2.0")
		Expect(err).To(HaveOccurred())
	})

})
