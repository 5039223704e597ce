package codebuild_test

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/pkg/errors"

	"github.com/awslabs/aws-codebuild-model/codebuild"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

var _ = Describe("CodeBuild model", func() {

	Context("with build artifacts", func() {

		It("returns the values that were set and nil for the rest", func() {
			artifacts := (&codebuild.BuildArtifacts{}).
				SetLocation("s3://bucket/key").
				SetSha256sum("abc123").
				SetEncryptionDisabled(false)

			Expect(aws.StringValue(artifacts.GetLocation())).To(Equal("s3://bucket/key"))
			Expect(aws.StringValue(artifacts.GetSha256sum())).To(Equal("abc123"))
			Expect(artifacts.GetEncryptionDisabled()).To(Equal(aws.Bool(false)))
			Expect(artifacts.IsEncryptionDisabled()).To(BeFalse())
			Expect(artifacts.GetMd5sum()).To(BeNil())
			Expect(artifacts.GetArtifactIdentifier()).To(BeNil())
		})

		It("reports an unset boolean as false", func() {
			artifacts := &codebuild.BuildArtifacts{}
			Expect(artifacts.GetOverrideArtifactName()).To(BeNil())
			Expect(artifacts.IsOverrideArtifactName()).To(BeFalse())
			Expect(artifacts.SetOverrideArtifactName(true).IsOverrideArtifactName()).To(BeTrue())
		})

		It("returns nil from getters on a nil receiver", func() {
			var artifacts *codebuild.BuildArtifacts
			Expect(artifacts.GetLocation()).To(BeNil())
			Expect(artifacts.IsEncryptionDisabled()).To(BeFalse())
		})

	})

	Context("with a list reports request", func() {

		It("leaves the pagination token unset", func() {
			in := (&codebuild.ListReportsInput{}).
				SetSortOrder(codebuild.SortOrderTypeAscending).
				SetMaxResults(50)

			Expect(in.GetNextToken()).To(BeNil())
			Expect(aws.Int64Value(in.GetMaxResults())).To(Equal(int64(50)))
			Expect(aws.StringValue(in.GetSortOrder())).To(Equal("ASCENDING"))
		})

		It("stores enum values outside the known set as given", func() {
			in := (&codebuild.ListReportsInput{}).SetSortOrder("SIDEWAYS")
			Expect(aws.StringValue(in.SortOrder)).To(Equal("SIDEWAYS"))
			Expect(codebuild.SortOrderType_Values()).NotTo(ContainElement("SIDEWAYS"))
		})

	})

	Context("with a test report summary", func() {

		var summary *codebuild.TestReportSummary
		BeforeEach(func() {
			summary = (&codebuild.TestReportSummary{}).SetTotal(10)
			Expect(summary.AddStatusCountsEntry(codebuild.StatusTypeSucceeded, 7)).To(Succeed())
			Expect(summary.AddStatusCountsEntry(codebuild.StatusTypeFailed, 3)).To(Succeed())
		})

		It("holds exactly the added entries", func() {
			Expect(aws.Int64Value(summary.GetTotal())).To(Equal(int64(10)))
			Expect(summary.GetStatusCounts()).To(HaveLen(2))
			Expect(summary.GetStatusCounts()).To(HaveKeyWithValue("SUCCEEDED", aws.Int64(7)))
			Expect(summary.GetStatusCounts()).To(HaveKeyWithValue("FAILED", aws.Int64(3)))
		})

		It("rejects a duplicate key and keeps the existing entry", func() {
			err := summary.AddStatusCountsEntry("SUCCEEDED", 1)
			Expect(err).To(HaveOccurred())
			Expect(errors.Cause(err)).To(Equal(codebuild.ErrDuplicateKey))
			Expect(err.Error()).To(ContainSubstring("SUCCEEDED"))
			Expect(summary.GetStatusCounts()).To(HaveKeyWithValue("SUCCEEDED", aws.Int64(7)))
		})

		It("clears all entries", func() {
			summary.ClearStatusCountsEntries()
			Expect(summary.GetStatusCounts()).To(BeNil())
			Expect(summary.AddStatusCountsEntry("FAILED", 1)).To(Succeed())
			Expect(summary.GetStatusCounts()).To(HaveLen(1))
		})

		It("copies the map passed to the setter", func() {
			counts := map[string]*int64{"FAILED": aws.Int64(1)}
			summary.SetStatusCounts(counts)
			counts["SUCCEEDED"] = aws.Int64(2)
			Expect(summary.GetStatusCounts()).To(HaveLen(1))
		})

	})

	Context("with collection fields", func() {

		It("clears a collection when set to nil", func() {
			build := (&codebuild.Build{}).AppendReportArns("arn:1")
			build.SetReportArns(nil)
			Expect(build.GetReportArns()).To(BeNil())
		})

		It("initializes an unset collection on append, keeping order", func() {
			build := &codebuild.Build{}
			build.AppendReportArns("arn:1", "arn:2").AppendReportArns("arn:3")
			Expect(aws.StringValueSlice(build.GetReportArns())).To(Equal([]string{"arn:1", "arn:2", "arn:3"}))
		})

		It("initializes an empty collection when appending nothing", func() {
			build := (&codebuild.Build{}).AppendPhases()
			Expect(build.GetPhases()).NotTo(BeNil())
			Expect(build.GetPhases()).To(BeEmpty())
		})

		It("does not share the caller's slice", func() {
			ids := aws.StringSlice([]string{"a", "b"})
			in := (&codebuild.BatchGetBuildsInput{}).SetIds(ids)
			ids[0] = aws.String("z")
			ids = append(ids, aws.String("c"))
			Expect(aws.StringValueSlice(in.GetIds())).To(Equal([]string{"a", "b"}))
		})

		It("copies the inner lists of filter groups", func() {
			group := []*codebuild.WebhookFilter{
				{Type: aws.String(codebuild.WebhookFilterTypeEvent), Pattern: aws.String("PUSH")},
			}
			hook := (&codebuild.Webhook{}).SetFilterGroups([][]*codebuild.WebhookFilter{group})
			group[0] = &codebuild.WebhookFilter{Type: aws.String(codebuild.WebhookFilterTypeHeadRef), Pattern: aws.String("^refs/heads/main$")}

			Expect(hook.GetFilterGroups()).To(HaveLen(1))
			Expect(aws.StringValue(hook.GetFilterGroups()[0][0].Pattern)).To(Equal("PUSH"))
		})

	})

	Context("with equality, hashing and copies", func() {

		newBuild := func() *codebuild.Build {
			return (&codebuild.Build{}).
				SetId("project:1234").
				SetBuildNumber(7).
				SetBuildStatus(codebuild.StatusTypeInProgress).
				SetStartTime(time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)).
				AppendPhases((&codebuild.BuildPhase{}).
					SetPhaseType(codebuild.BuildPhaseTypeSubmitted).
					SetPhaseStatus(codebuild.StatusTypeSucceeded).
					AppendContexts((&codebuild.PhaseContext{}).SetMessage("ok"))).
				SetSource((&codebuild.ProjectSource{}).SetType(codebuild.SourceTypeGithub))
		}

		It("treats identical values as equal with equal hashes", func() {
			a, b := newBuild(), newBuild()
			Expect(a.Equal(b)).To(BeTrue())
			Expect(a.HashCode()).To(Equal(b.HashCode()))
		})

		It("detects differences in nested values", func() {
			a, b := newBuild(), newBuild()
			b.Phases[0].Contexts[0].SetMessage("changed")
			Expect(a.Equal(b)).To(BeFalse())
			Expect(a.HashCode()).NotTo(Equal(b.HashCode()))
		})

		It("treats two nil values as equal", func() {
			var a, b *codebuild.Build
			Expect(a.Equal(b)).To(BeTrue())
			Expect(a.Equal(newBuild())).To(BeFalse())
		})

		It("hashes map fields independently of insertion order", func() {
			a, b := &codebuild.TestReportSummary{}, &codebuild.TestReportSummary{}
			Expect(a.AddStatusCountsEntry("FAILED", 1)).To(Succeed())
			Expect(a.AddStatusCountsEntry("SUCCEEDED", 2)).To(Succeed())
			Expect(b.AddStatusCountsEntry("SUCCEEDED", 2)).To(Succeed())
			Expect(b.AddStatusCountsEntry("FAILED", 1)).To(Succeed())
			Expect(a.HashCode()).To(Equal(b.HashCode()))
		})

		It("hashes shapes holding maps and scalars together", func() {
			newSummary := func() *codebuild.TestReportSummary {
				summary := (&codebuild.TestReportSummary{}).SetTotal(10).SetDurationInNanoSeconds(1500)
				Expect(summary.AddStatusCountsEntry("SUCCEEDED", 7)).To(Succeed())
				Expect(summary.AddStatusCountsEntry("FAILED", 3)).To(Succeed())
				return summary
			}
			a, b := newSummary(), newSummary()
			Expect(a.HashCode()).NotTo(BeZero())
			Expect(a.HashCode()).To(Equal(b.HashCode()))

			b.SetTotal(11)
			Expect(a.HashCode()).NotTo(Equal(b.HashCode()))
		})

		It("makes copies that do not share state with the original", func() {
			original := newBuild()
			copied := original.Copy()
			Expect(copied.Equal(original)).To(BeTrue())

			copied.SetId("project:5678")
			copied.Phases[0].Contexts[0].SetMessage("changed")
			copied.Source.SetLocation("https://github.com/example/repo")
			copied.AppendReportArns("arn:report")

			Expect(aws.StringValue(original.Id)).To(Equal("project:1234"))
			Expect(aws.StringValue(original.Phases[0].Contexts[0].Message)).To(Equal("ok"))
			Expect(original.Source.Location).To(BeNil())
			Expect(original.ReportArns).To(BeNil())
			Expect(aws.TimeValue(copied.StartTime)).To(Equal(aws.TimeValue(original.StartTime)))
		})

		It("copies nil as nil", func() {
			var build *codebuild.Build
			Expect(build.Copy()).To(BeNil())
		})

	})

	Context("with a string representation", func() {

		It("prints the fields that are set", func() {
			source := (&codebuild.ProjectSource{}).
				SetType(codebuild.SourceTypeCodecommit).
				SetGitCloneDepth(1)
			Expect(source.String()).To(ContainSubstring(`Type: "CODECOMMIT"`))
			Expect(source.String()).To(ContainSubstring("GitCloneDepth: 1"))
			Expect(source.String()).NotTo(ContainSubstring("Location"))
			Expect(source.GoString()).To(Equal(source.String()))
		})

	})

	Context("with a fluent start build request", func() {

		It("chains setters across every field kind", func() {
			in := (&codebuild.StartBuildInput{}).
				SetProjectName("my-project").
				SetPrivilegedModeOverride(true).
				SetTimeoutInMinutesOverride(60).
				SetSourceAuthOverride((&codebuild.SourceAuth{}).SetType(codebuild.SourceAuthTypeOauth)).
				AppendEnvironmentVariablesOverride(&codebuild.EnvironmentVariable{
					Name:  aws.String("STAGE"),
					Value: aws.String("beta"),
				})

			Expect(*in).To(MatchFields(IgnoreExtras, Fields{
				"ProjectName":              PointTo(Equal("my-project")),
				"PrivilegedModeOverride":   PointTo(BeTrue()),
				"TimeoutInMinutesOverride": PointTo(Equal(int64(60))),
				"SourceAuthOverride":       PointTo(MatchFields(IgnoreExtras, Fields{"Type": PointTo(Equal("OAUTH"))})),
				"EnvironmentVariablesOverride": ConsistOf(PointTo(MatchFields(IgnoreExtras, Fields{
					"Name":  PointTo(Equal("STAGE")),
					"Value": PointTo(Equal("beta")),
				}))),
			}))
		})

	})

})
