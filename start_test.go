package main

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/google/uuid"
	"github.com/imdario/mergo"

	"github.com/awslabs/aws-codebuild-model/codebuild"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Preparing StartBuild requests", func() {

	var in *codebuild.StartBuildInput
	BeforeEach(func() {
		os.Unsetenv("STAGE")
		os.Unsetenv("DB_PASSWORD")
		_, shape, err := loadInput("StartBuild", "testdata/start-build.json")
		Expect(err).NotTo(HaveOccurred())
		in = shape.(*codebuild.StartBuildInput)
	})

	It("leaves the request untouched", func() {
		original := in.Copy()
		_, err := prepareStartBuild(in, StartBuildOptions{
			EnvOverrideFile:  "testdata/environment-overrides.json",
			IdempotencyToken: "auto",
			Defaults:         &StartBuildDefaults{Image: "aws/codebuild/standard:4.0"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Equal(original)).To(BeTrue())
	})

	It("fills unset fields from the defaults", func() {
		out, err := prepareStartBuild(in, StartBuildOptions{
			Defaults: &StartBuildDefaults{
				ComputeType:      codebuild.ComputeTypeBuildGeneral1Small,
				Image:            "aws/codebuild/standard:4.0",
				TimeoutInMinutes: 45,
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(aws.StringValue(out.ComputeTypeOverride)).To(Equal(codebuild.ComputeTypeBuildGeneral1Large))
		Expect(aws.StringValue(out.ImageOverride)).To(Equal("aws/codebuild/standard:4.0"))
		Expect(aws.Int64Value(out.TimeoutInMinutesOverride)).To(BeEquivalentTo(45))
		Expect(out.PrivilegedModeOverride).To(BeNil())
	})

	It("keeps explicit false and zero values", func() {
		in.SetPrivilegedModeOverride(false)
		in.SetTimeoutInMinutesOverride(0)
		in.SetImageOverride("")
		out, err := prepareStartBuild(in, StartBuildOptions{
			Defaults: &StartBuildDefaults{
				PrivilegedMode:   true,
				TimeoutInMinutes: 60,
				Image:            "aws/codebuild/standard:4.0",
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.PrivilegedModeOverride).To(Equal(aws.Bool(false)))
		Expect(out.TimeoutInMinutesOverride).To(Equal(aws.Int64(0)))
		Expect(out.ImageOverride).To(Equal(aws.String("")))
	})

	It("does not share default values with the request", func() {
		defaults := (&StartBuildDefaults{Image: "aws/codebuild/standard:4.0"}).Input()
		out := &codebuild.StartBuildInput{}
		Expect(mergo.Merge(out, defaults, mergo.WithTransformers(startBuildDefaults{}))).To(Succeed())
		Expect(out.ImageOverride).To(Equal(defaults.ImageOverride))
		Expect(out.ImageOverride).NotTo(BeIdenticalTo(defaults.ImageOverride))

		out.SetImageOverride("changed")
		Expect(aws.StringValue(defaults.ImageOverride)).To(Equal("aws/codebuild/standard:4.0"))
	})

	It("applies environment variable overrides", func() {
		out, err := prepareStartBuild(in, StartBuildOptions{EnvOverrideFile: "testdata/environment-overrides.json"})
		Expect(err).NotTo(HaveOccurred())
		Expect(variableNames(out)).To(Equal([]string{"STAGE", "DB_PASSWORD", "API_URL", "ZONE"}))
		Expect(variables(out)).To(HaveKeyWithValue("STAGE", "override"))
	})

	It("generates an idempotency token", func() {
		out, err := prepareStartBuild(in, StartBuildOptions{IdempotencyToken: "auto"})
		Expect(err).NotTo(HaveOccurred())
		_, err = uuid.Parse(aws.StringValue(out.IdempotencyToken))
		Expect(err).NotTo(HaveOccurred())

		other, err := prepareStartBuild(in, StartBuildOptions{IdempotencyToken: "auto"})
		Expect(err).NotTo(HaveOccurred())
		Expect(other.IdempotencyToken).NotTo(Equal(out.IdempotencyToken))
	})

	It("keeps a given idempotency token", func() {
		out, err := prepareStartBuild(in, StartBuildOptions{IdempotencyToken: "build-42"})
		Expect(err).NotTo(HaveOccurred())
		Expect(aws.StringValue(out.IdempotencyToken)).To(Equal("build-42"))
	})

	It("leaves the idempotency token unset by default", func() {
		out, err := prepareStartBuild(in, StartBuildOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.IdempotencyToken).To(BeNil())
		Expect(out.Equal(in)).To(BeTrue())
	})

})
