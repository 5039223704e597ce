package main

import (
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"

	"github.com/awslabs/aws-codebuild-model/codebuild"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Request documents", func() {

	AfterEach(func() {
		stdin = os.Stdin
	})

	It("reads JSON documents from files", func() {
		op, in, err := loadInput("StartBuild", "testdata/start-build.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(op.Name).To(Equal("StartBuild"))

		build := in.(*codebuild.StartBuildInput)
		Expect(aws.StringValue(build.ProjectName)).To(Equal("example-project"))
		Expect(build.EnvironmentVariablesOverride).To(HaveLen(2))
	})

	It("reads YAML documents from files", func() {
		_, in, err := loadInput("CreateProject", "testdata/create-project.yaml")
		Expect(err).NotTo(HaveOccurred())

		project := in.(*codebuild.CreateProjectInput)
		Expect(aws.StringValue(project.Source.Type)).To(Equal(codebuild.SourceTypeGithub))
		Expect(aws.BoolValue(project.Environment.PrivilegedMode)).To(BeTrue())
		Expect(aws.Int64Value(project.TimeoutInMinutes)).To(BeEquivalentTo(60))
	})

	It("reads documents from stdin", func() {
		stdin = strings.NewReader("projectName: from-stdin\n")
		_, in, err := loadInput("StartBuild", "-")
		Expect(err).NotTo(HaveOccurred())
		Expect(aws.StringValue(in.(*codebuild.StartBuildInput).ProjectName)).To(Equal("from-stdin"))
	})

	It("rejects unknown operations", func() {
		_, _, err := decodeInput("StartBuilds", []byte("{}"))
		Expect(err).To(MatchError(`unknown operation "StartBuilds"`))
	})

	It("rejects documents that do not fit the input structure", func() {
		_, _, err := decodeInput("StartBuild", []byte(`{"projectName": 42}`))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("could not decode StartBuildInput"))
	})

	It("rejects unknown members", func() {
		_, _, err := decodeInput("StartBuild", []byte(`{"projectName": "example-project", "imageOverides": "aws/codebuild/standard:4.0"}`))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("could not decode StartBuildInput"))

		_, _, err = decodeInput("CreateProject", []byte(`{"name": "example-project", "source": {"type": "S3", "location": "bucket/src.zip", "buildSpec": "buildspec.yml"}}`))
		Expect(err).To(HaveOccurred())
	})

	It("matches member names exactly", func() {
		_, _, err := decodeInput("StartBuild", []byte(`{"projectname": "example-project"}`))
		Expect(err).To(HaveOccurred())

		_, in, err := decodeInput("StartBuild", []byte(`{"projectName": "example-project"}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(aws.StringValue(in.(*codebuild.StartBuildInput).ProjectName)).To(Equal("example-project"))
	})

	It("rejects missing files", func() {
		_, err := readDocument("testdata/missing.json")
		Expect(err).To(HaveOccurred())
	})

	It("encodes documents as JSON and YAML", func() {
		in := (&codebuild.StartBuildInput{}).SetProjectName("example-project")

		data, err := encodeDocument(in, "json")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(MatchJSON(`{"projectName": "example-project"}`))

		data, err = encodeDocument(in, "yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(MatchYAML("projectName: example-project"))

		_, err = encodeDocument(in, "xml")
		Expect(err).To(HaveOccurred())
	})

})
