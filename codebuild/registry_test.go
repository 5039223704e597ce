package codebuild_test

import (
	"github.com/awslabs/aws-codebuild-model/codebuild"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Operation registry", func() {

	It("registers every operation of the API", func() {
		Expect(codebuild.OperationNames()).To(HaveLen(34))
		Expect(codebuild.Operations()).To(HaveLen(34))
		Expect(codebuild.OperationNames()[0]).To(Equal("BatchDeleteBuilds"))
	})

	It("describes operations as JSON POST requests", func() {
		for _, op := range codebuild.Operations() {
			Expect(op.HTTPMethod).To(Equal("POST"))
			Expect(op.HTTPPath).To(Equal("/"))
			Expect(op.Documentation).To(HavePrefix(op.Name + " "))
		}
	})

	It("constructs the input and output of an operation", func() {
		op, ok := codebuild.LookupOperation("StartBuild")
		Expect(ok).To(BeTrue())
		Expect(op.NewInput()).To(BeAssignableToTypeOf(&codebuild.StartBuildInput{}))
		Expect(op.NewOutput()).To(BeAssignableToTypeOf(&codebuild.StartBuildOutput{}))
		Expect(op.InputName()).To(Equal("StartBuildInput"))
		Expect(op.OutputName()).To(Equal("StartBuildOutput"))
		Expect(op.Paginated()).To(BeFalse())
	})

	It("returns false for an unknown operation", func() {
		_, ok := codebuild.LookupOperation("LaunchRocket")
		Expect(ok).To(BeFalse())
	})

	Context("with paginated operations", func() {

		It("uses the next token as input and output token", func() {
			paginated := []string{}
			for _, op := range codebuild.Operations() {
				if op.Paginated() {
					paginated = append(paginated, op.Name)
					Expect(op.InputTokens).To(Equal([]string{"nextToken"}))
					Expect(op.OutputTokens).To(Equal([]string{"nextToken"}))
				}
			}
			Expect(paginated).To(ConsistOf(
				"DescribeTestCases", "ListBuilds", "ListBuildsForProject", "ListProjects",
				"ListReportGroups", "ListReports", "ListReportsForReportGroup",
				"ListSharedProjects", "ListSharedReportGroups",
			))
		})

		It("records the page size limit where the operation has one", func() {
			op, _ := codebuild.LookupOperation("ListReports")
			Expect(op.LimitToken).To(Equal("maxResults"))

			op, _ = codebuild.LookupOperation("ListBuilds")
			Expect(op.LimitToken).To(BeEmpty())
		})

	})

	It("lists the fixed values of an enumeration", func() {
		Expect(codebuild.StatusType_Values()).To(Equal([]string{
			"SUCCEEDED", "FAILED", "FAULT", "TIMED_OUT", "IN_PROGRESS", "STOPPED",
		}))
		Expect(codebuild.ComputeTypeBuildGeneral12xlarge).To(Equal("BUILD_GENERAL1_2XLARGE"))
	})

	It("lists the service error codes", func() {
		Expect(codebuild.ErrorCodes()).To(ContainElement(codebuild.ErrCodeResourceNotFoundException))
		Expect(codebuild.ErrorCodes()).To(HaveLen(5))
	})

})
