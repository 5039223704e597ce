package codebuild

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Hashing", func() {

	It("panics on values that cannot be encoded", func() {
		Expect(func() { hashShape(func() {}) }).To(Panic())
	})

	It("hashes equal values to the same code", func() {
		a := map[string]*int64{"SUCCEEDED": new(int64), "FAILED": new(int64)}
		b := map[string]*int64{"FAILED": new(int64), "SUCCEEDED": new(int64)}
		Expect(hashShape(a)).To(Equal(hashShape(b)))
	})

})
