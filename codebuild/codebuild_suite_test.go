package codebuild_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestCodebuild(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CodeBuild Model Suite")
}
