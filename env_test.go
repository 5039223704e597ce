package main

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"

	"github.com/awslabs/aws-codebuild-model/codebuild"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func variables(in *codebuild.StartBuildInput) map[string]string {
	result := map[string]string{}
	for _, v := range in.EnvironmentVariablesOverride {
		result[aws.StringValue(v.Name)] = aws.StringValue(v.Value)
	}
	return result
}

func variableNames(in *codebuild.StartBuildInput) []string {
	names := []string{}
	for _, v := range in.EnvironmentVariablesOverride {
		names = append(names, aws.StringValue(v.Name))
	}
	return names
}

var _ = Describe("Environment Variables", func() {

	Context("with a request that has environment variables defined", func() {

		var in *codebuild.StartBuildInput
		BeforeEach(func() {
			os.Unsetenv("STAGE")
			in = (&codebuild.StartBuildInput{}).
				SetProjectName("example-project").
				SetEnvironmentVariablesOverride([]*codebuild.EnvironmentVariable{
					(&codebuild.EnvironmentVariable{}).SetName("STAGE").SetValue("test").SetType(codebuild.EnvironmentVariableTypePlaintext),
					(&codebuild.EnvironmentVariable{}).SetName("CB_MODEL_TEST_SECRET").SetValue("/example/secret").SetType(codebuild.EnvironmentVariableTypeParameterStore),
				})
		})

		It("returns those defined in the request", func() {
			applyEnvironmentVariables(in, "")
			Expect(variables(in)).To(Equal(map[string]string{
				"STAGE":                "test",
				"CB_MODEL_TEST_SECRET": "/example/secret",
			}))
		})

		It("overrides the request with environment variables", func() {
			os.Setenv("CB_MODEL_TEST_SECRET", "from-shell")
			defer os.Unsetenv("CB_MODEL_TEST_SECRET")

			applyEnvironmentVariables(in, "")
			Expect(variables(in)).To(HaveKeyWithValue("CB_MODEL_TEST_SECRET", "from-shell"))
			Expect(aws.StringValue(in.EnvironmentVariablesOverride[1].Type)).To(Equal(codebuild.EnvironmentVariableTypePlaintext))
		})

		It("does not add variables from the environment the request does not name", func() {
			os.Setenv("CB_MODEL_TEST_UNNAMED", "value")
			defer os.Unsetenv("CB_MODEL_TEST_UNNAMED")

			applyEnvironmentVariables(in, "")
			Expect(variables(in)).NotTo(HaveKey("CB_MODEL_TEST_UNNAMED"))
		})

		It("overrides request and environment with customer overrides", func() {
			os.Setenv("STAGE", "from-shell")
			defer os.Unsetenv("STAGE")

			applyEnvironmentVariables(in, "testdata/environment-overrides.json")
			Expect(variables(in)).To(HaveKeyWithValue("STAGE", "override"))
		})

		It("appends new variables from the overrides in name order", func() {
			applyEnvironmentVariables(in, "testdata/environment-overrides.json")
			Expect(variableNames(in)).To(Equal([]string{"STAGE", "CB_MODEL_TEST_SECRET", "API_URL", "ZONE"}))
			Expect(aws.StringValue(in.EnvironmentVariablesOverride[3].Type)).To(Equal(codebuild.EnvironmentVariableTypePlaintext))
		})

		It("ignores overrides of other projects", func() {
			in.SetProjectName("unknown-project")
			applyEnvironmentVariables(in, "testdata/environment-overrides.json")
			Expect(variableNames(in)).To(Equal([]string{"STAGE", "CB_MODEL_TEST_SECRET"}))
		})

		It("ignores a missing override file", func() {
			applyEnvironmentVariables(in, "testdata/missing.json")
			Expect(variables(in)).To(HaveKeyWithValue("STAGE", "test"))
		})

	})
})
