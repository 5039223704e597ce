package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/awslabs/aws-codebuild-model/codebuild"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validating requests", func() {

	It("accepts valid requests", func() {
		_, in, err := loadInput("CreateProject", "testdata/create-project.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(violations(in)).To(BeEmpty())
	})

	It("reports every violated constraint", func() {
		_, in, err := loadInput("CreateProject", "testdata/invalid-create-project.json")
		Expect(err).NotTo(HaveOccurred())

		lines := violations(in)
		Expect(lines).To(HaveLen(6))

		report := strings.Join(lines, "\n")
		for _, field := range []string{"Artifacts", "Name", "ServiceRole", "TimeoutInMinutes", "Source.Type", "SecondarySources[1].Type"} {
			Expect(report).To(ContainSubstring(field + ":"))
		}
	})

	It("reports nothing for outputs", func() {
		Expect(violations(&codebuild.StartBuildOutput{})).To(BeEmpty())
	})

})

var _ = Describe("Describing requests", func() {

	It("prints the request with its hash code", func() {
		op, in, err := loadInput("StartBuild", "testdata/start-build.json")
		Expect(err).NotTo(HaveOccurred())

		var out bytes.Buffer
		Expect(describeInput(&out, op, in, "text")).To(Succeed())
		Expect(out.String()).To(HavePrefix("StartBuildInput {"))
		Expect(out.String()).To(ContainSubstring(`ProjectName: "example-project"`))
		Expect(out.String()).To(ContainSubstring(fmt.Sprintf("HashCode: %016x", in.(*codebuild.StartBuildInput).HashCode())))
	})

	It("prints equal requests with equal hash codes", func() {
		op, first, err := loadInput("StartBuild", "testdata/start-build.json")
		Expect(err).NotTo(HaveOccurred())
		_, second, err := loadInput("StartBuild", "testdata/start-build.json")
		Expect(err).NotTo(HaveOccurred())

		var a, b bytes.Buffer
		Expect(describeInput(&a, op, first, "")).To(Succeed())
		Expect(describeInput(&b, op, second, "")).To(Succeed())
		Expect(a.String()).To(Equal(b.String()))
	})

	It("prints the request as YAML", func() {
		op, in, err := loadInput("StartBuild", "testdata/start-build.json")
		Expect(err).NotTo(HaveOccurred())

		var out bytes.Buffer
		Expect(describeInput(&out, op, in, "yaml")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("projectName: example-project"))
	})

})

var _ = Describe("Listing operations", func() {

	It("lists every operation", func() {
		var out bytes.Buffer
		writeOperations(&out, false)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(lines).To(HaveLen(len(codebuild.OperationNames()) + 1))
		Expect(lines[0]).To(Equal("OPERATION\tINPUT\tOUTPUT\tPAGINATED"))
		Expect(lines).To(ContainElement("StartBuild\tStartBuildInput\tStartBuildOutput\tno"))
		Expect(lines).To(ContainElement("ListProjects\tListProjectsInput\tListProjectsOutput\tyes"))
	})

	It("lists paginated operations only", func() {
		var out bytes.Buffer
		writeOperations(&out, true)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		Expect(lines).To(HaveLen(10))
		for _, line := range lines[1:] {
			Expect(line).To(HaveSuffix("\tyes"))
		}
	})

})
