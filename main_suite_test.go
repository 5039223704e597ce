package main

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestCodebuildModel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CodeBuild Model CLI Suite")
}
