package main

import (
	"bytes"

	"github.com/aws/aws-sdk-go/aws"

	"github.com/awslabs/aws-codebuild-model/codebuild"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var sampleData = map[string]interface{}{
	"Name":          "example-project",
	"SourceType":    codebuild.SourceTypeGithub,
	"Location":      "https://github.com/example/repo.git",
	"Image":         "aws/codebuild/standard:4.0",
	"ServiceRole":   "arn:aws:iam::123456789012:role/codebuild",
	"Tags":          []sampleTag{{Key: "team", Value: "ci"}, {Key: "env", Value: `"quoted"`}},
	"SourceVersion": "refs/heads/main",
	"Branch":        "^refs/heads/main$",
	"Bucket":        "example-bucket",
	"ServerType":    codebuild.ServerTypeGithub,
	"Token":         "example-token",
	"Status":        codebuild.ReportStatusTypeSucceeded,
	"MaxResults":    50,
	"ResourceArn":   "arn:aws:codebuild:us-east-1:123456789012:project/example-project",
	"Principal":     "arn:aws:iam::210987654321:root",
	"Region":        "us-east-1",
}

var _ = Describe("Generating sample requests", func() {

	for operation := range requests {
		operation := operation

		It("renders a valid "+operation+" request", func() {
			var out bytes.Buffer
			Expect(renderRequest(&out, operation, sampleData)).To(Succeed())

			_, in, err := decodeInput(operation, out.Bytes())
			Expect(err).NotTo(HaveOccurred())
			Expect(violations(in)).To(BeEmpty())
		})
	}

	It("escapes values", func() {
		var out bytes.Buffer
		Expect(renderRequest(&out, "CreateProject", sampleData)).To(Succeed())

		_, in, err := decodeInput("CreateProject", out.Bytes())
		Expect(err).NotTo(HaveOccurred())
		Expect(tagPairs(in.(*codebuild.CreateProjectInput).Tags)).To(Equal([][2]string{{"team", "ci"}, {"env", `"quoted"`}}))
	})

	It("renders a project without tags", func() {
		data := map[string]interface{}{}
		for k, v := range sampleData {
			data[k] = v
		}
		data["Tags"] = []sampleTag{}

		var out bytes.Buffer
		Expect(renderRequest(&out, "CreateProject", data)).To(Succeed())

		_, in, err := decodeInput("CreateProject", out.Bytes())
		Expect(err).NotTo(HaveOccurred())
		Expect(in.(*codebuild.CreateProjectInput).Tags).To(BeEmpty())
		Expect(aws.StringValue(in.(*codebuild.CreateProjectInput).Name)).To(Equal("example-project"))
	})

	It("rejects operations without a sample", func() {
		var out bytes.Buffer
		Expect(renderRequest(&out, "DeleteProject", sampleData)).To(MatchError("unsupported request type: DeleteProject"))
	})

})
