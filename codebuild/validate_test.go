package codebuild_test

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"

	"github.com/awslabs/aws-codebuild-model/codebuild"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func invalidFields(err error) []string {
	Expect(err).To(BeAssignableToTypeOf(request.ErrInvalidParams{}))
	params := err.(request.ErrInvalidParams)
	fields := []string{}
	for _, e := range params.OrigErrs() {
		field := e.(request.ErrInvalidParam).Field()
		fields = append(fields, strings.TrimPrefix(field, params.Context+"."))
	}
	return fields
}

func validProject() *codebuild.CreateProjectInput {
	return (&codebuild.CreateProjectInput{}).
		SetName("my-project").
		SetServiceRole("arn:aws:iam::123456789012:role/codebuild").
		SetSource((&codebuild.ProjectSource{}).
			SetType(codebuild.SourceTypeGithub).
			SetLocation("https://github.com/example/repo.git")).
		SetArtifacts((&codebuild.ProjectArtifacts{}).SetType(codebuild.ArtifactsTypeNoArtifacts)).
		SetEnvironment((&codebuild.ProjectEnvironment{}).
			SetType(codebuild.EnvironmentTypeLinuxContainer).
			SetComputeType(codebuild.ComputeTypeBuildGeneral1Small).
			SetImage("aws/codebuild/standard:4.0"))
}

var _ = Describe("Request validation", func() {

	Context("with a complete create project request", func() {

		It("passes", func() {
			Expect(validProject().Validate()).To(Succeed())
		})

	})

	Context("with missing required members", func() {

		It("reports every missing member", func() {
			err := (&codebuild.CreateProjectInput{}).Validate()
			Expect(err).To(HaveOccurred())
			Expect(invalidFields(err)).To(ConsistOf("Artifacts", "Environment", "Name", "ServiceRole", "Source"))
		})

		It("reports members of nested structures with their path", func() {
			in := validProject().
				SetSource(&codebuild.ProjectSource{}).
				AppendSecondarySources(
					(&codebuild.ProjectSource{}).SetType(codebuild.SourceTypeS3),
					&codebuild.ProjectSource{},
				)
			err := in.Validate()
			Expect(err).To(HaveOccurred())
			Expect(invalidFields(err)).To(ConsistOf("Source.Type", "SecondarySources[1].Type"))
		})

		It("reports members of filter groups with both indexes", func() {
			in := (&codebuild.CreateWebhookInput{}).
				SetProjectName("my-project").
				AppendFilterGroups(
					[]*codebuild.WebhookFilter{
						{Type: aws.String(codebuild.WebhookFilterTypeEvent), Pattern: aws.String("PUSH")},
						{Type: aws.String(codebuild.WebhookFilterTypeHeadRef)},
					},
				)
			Expect(invalidFields(in.Validate())).To(ConsistOf("FilterGroups[0][1].Pattern"))
		})

	})

	Context("with values below their minimum", func() {

		It("reports short strings and small numbers", func() {
			in := validProject().
				SetName("x").
				SetTimeoutInMinutes(4)
			Expect(invalidFields(in.Validate())).To(ConsistOf("Name", "TimeoutInMinutes"))
		})

		It("reports empty required lists", func() {
			err := (&codebuild.BatchGetBuildsInput{}).SetIds([]*string{}).Validate()
			Expect(invalidFields(err)).To(ConsistOf("Ids"))
		})

		It("accepts a git clone depth of zero", func() {
			in := validProject()
			in.Source.SetGitCloneDepth(0)
			Expect(in.Validate()).To(Succeed())
		})

		It("reports a paging limit below one", func() {
			err := (&codebuild.ListReportsInput{}).SetMaxResults(0).Validate()
			Expect(invalidFields(err)).To(ConsistOf("MaxResults"))
		})

	})

	Context("with members of a test report summary", func() {

		It("requires every member", func() {
			Expect(invalidFields((&codebuild.TestReportSummary{}).Validate())).
				To(ConsistOf("DurationInNanoSeconds", "StatusCounts", "Total"))
		})

	})

})
