package main

import (
	"io/ioutil"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/awslabs/goformation/cloudformation"
	"github.com/ghodss/yaml"

	"github.com/awslabs/aws-codebuild-model/codebuild"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func readTestdata(name string) []byte {
	data, err := ioutil.ReadFile("testdata/" + name)
	Expect(err).NotTo(HaveOccurred())
	body, err := yaml.YAMLToJSON(data)
	Expect(err).NotTo(HaveOccurred())
	return body
}

func templateResources(output []byte) map[string]map[string]interface{} {
	template := struct {
		Resources map[string]map[string]interface{}
	}{}
	Expect(json.Unmarshal(output, &template)).To(Succeed())
	return template.Resources
}

var _ = Describe("Convert CodeBuild requests to CloudFormation resources", func() {

	Context("logical IDs", func() {

		It("derives them from names", func() {
			Expect(logicalID("example-project", "Project")).To(Equal("ExampleProject"))
			Expect(logicalID("my_app.build 2", "Project")).To(Equal("MyAppBuild2"))
			Expect(logicalID("Reports", "ReportGroup")).To(Equal("Reports"))
		})

		It("falls back when the name has no usable characters", func() {
			Expect(logicalID("", "Project")).To(Equal("Project"))
			Expect(logicalID("--", "ReportGroup")).To(Equal("ReportGroup"))
		})

	})

	Context("with a CreateProject request", func() {

		It("converts an empty project", func() {
			Expect(projectToResource(&codebuild.CreateProjectInput{})).To(Equal(&cloudformation.AWSCodeBuildProject{}))
		})

		It("converts a project", func() {
			_, in, err := decodeInput("CreateProject", readTestdata("create-project.yaml"))
			Expect(err).NotTo(HaveOccurred())

			expected := &cloudformation.AWSCodeBuildProject{
				Name:             "example-project",
				Description:      "Builds and tests the example service",
				ServiceRole:      "arn:aws:iam::123456789012:role/service-role/codebuild-example-service-role",
				TimeoutInMinutes: 60,
				Artifacts: &cloudformation.AWSCodeBuildProject_Artifacts{
					Location:      "example-artifacts",
					Name:          "build.zip",
					NamespaceType: codebuild.ArtifactNamespaceBuildId,
					Packaging:     codebuild.ArtifactPackagingZip,
					Path:          "builds",
					Type:          codebuild.ArtifactsTypeS3,
				},
				Source: &cloudformation.AWSCodeBuildProject_Source{
					BuildSpec: "buildspec.yml",
					Location:  "https://github.com/example/repo.git",
					Type:      codebuild.SourceTypeGithub,
					Auth: &cloudformation.AWSCodeBuildProject_SourceAuth{
						Resource: "arn:aws:codebuild:us-east-1:123456789012:token/github",
						Type:     codebuild.SourceAuthTypeOauth,
					},
				},
				Environment: &cloudformation.AWSCodeBuildProject_Environment{
					ComputeType:    codebuild.ComputeTypeBuildGeneral1Medium,
					Image:          "aws/codebuild/standard:4.0",
					PrivilegedMode: true,
					Type:           codebuild.EnvironmentTypeLinuxContainer,
					EnvironmentVariables: []cloudformation.AWSCodeBuildProject_EnvironmentVariable{
						{Name: "STAGE", Type: codebuild.EnvironmentVariableTypePlaintext, Value: "test"},
						{Name: "DB_PASSWORD", Type: codebuild.EnvironmentVariableTypeParameterStore, Value: "/example/db-password"},
					},
				},
				Tags: []cloudformation.Tag{{Key: "team", Value: "ci"}},
			}
			Expect(projectToResource(in.(*codebuild.CreateProjectInput))).To(Equal(expected))
		})

		It("converts the cache, logs, VPC and secondary inputs of a project", func() {
			_, in, err := decodeInput("CreateProject", readTestdata("create-project-full.json"))
			Expect(err).NotTo(HaveOccurred())

			expected := &cloudformation.AWSCodeBuildProject{
				Name:                   "full-project",
				ServiceRole:            "arn:aws:iam::123456789012:role/codebuild",
				BadgeEnabled:           true,
				QueuedTimeoutInMinutes: 120,
				Artifacts: &cloudformation.AWSCodeBuildProject_Artifacts{
					Type: codebuild.ArtifactsTypeNoArtifacts,
				},
				SecondaryArtifacts: []cloudformation.AWSCodeBuildProject_Artifacts{
					{
						ArtifactIdentifier:   "reports",
						Location:             "example-artifacts",
						OverrideArtifactName: true,
						Type:                 codebuild.ArtifactsTypeS3,
					},
				},
				Source: &cloudformation.AWSCodeBuildProject_Source{
					GitCloneDepth:     1,
					Location:          "https://github.com/example/repo.git",
					ReportBuildStatus: true,
					Type:              codebuild.SourceTypeGithub,
				},
				SecondarySources: []cloudformation.AWSCodeBuildProject_Source{
					{
						Location:         "example-bucket/tools.zip",
						SourceIdentifier: "tools",
						Type:             codebuild.SourceTypeS3,
					},
				},
				Cache: &cloudformation.AWSCodeBuildProject_ProjectCache{
					Modes: []string{codebuild.CacheModeLocalDockerLayerCache, codebuild.CacheModeLocalSourceCache},
					Type:  codebuild.CacheTypeLocal,
				},
				Environment: &cloudformation.AWSCodeBuildProject_Environment{
					Certificate:              "example-bucket/cert.pem",
					ComputeType:              codebuild.ComputeTypeBuildGeneral1Large,
					Image:                    "123456789012.dkr.ecr.us-east-1.amazonaws.com/builder:latest",
					ImagePullCredentialsType: codebuild.ImagePullCredentialsTypeServiceRole,
					Type:                     codebuild.EnvironmentTypeLinuxContainer,
					EnvironmentVariables: []cloudformation.AWSCodeBuildProject_EnvironmentVariable{
						{Name: "DB_PASSWORD", Type: codebuild.EnvironmentVariableTypeParameterStore, Value: "/example/db-password"},
					},
					RegistryCredential: &cloudformation.AWSCodeBuildProject_RegistryCredential{
						Credential:         "arn:aws:secretsmanager:us-east-1:123456789012:secret:registry",
						CredentialProvider: codebuild.CredentialProviderTypeSecretsManager,
					},
				},
				LogsConfig: &cloudformation.AWSCodeBuildProject_LogsConfig{
					CloudWatchLogs: &cloudformation.AWSCodeBuildProject_CloudWatchLogsConfig{
						GroupName:  "/codebuild/full-project",
						Status:     codebuild.LogsConfigStatusTypeEnabled,
						StreamName: "build",
					},
					S3Logs: &cloudformation.AWSCodeBuildProject_S3LogsConfig{
						Status: codebuild.LogsConfigStatusTypeDisabled,
					},
				},
				VpcConfig: &cloudformation.AWSCodeBuildProject_VpcConfig{
					SecurityGroupIds: []string{"sg-1"},
					Subnets:          []string{"subnet-1", "subnet-2"},
					VpcId:            "vpc-0a1b2c3d",
				},
			}
			Expect(projectToResource(in.(*codebuild.CreateProjectInput))).To(Equal(expected))
		})

	})

	Context("with a CreateReportGroup request", func() {

		It("converts a report group", func() {
			_, in, err := decodeInput("CreateReportGroup", readTestdata("create-report-group.json"))
			Expect(err).NotTo(HaveOccurred())

			expected := &ReportGroup{
				Name: "example-reports",
				Type: codebuild.ReportTypeTest,
				Tags: []cloudformation.Tag{{Key: "team", Value: "ci"}},
				ExportConfig: &ReportGroup_ReportExportConfig{
					ExportConfigType: codebuild.ReportExportConfigTypeS3,
					S3Destination: &ReportGroup_S3ReportExportConfig{
						Bucket:    "example-bucket",
						Path:      "reports",
						Packaging: codebuild.ReportPackagingTypeZip,
					},
				},
			}
			Expect(reportGroupToResource(in.(*codebuild.CreateReportGroupInput))).To(Equal(expected))
		})

		It("is a CloudFormation resource", func() {
			var resource cloudformation.Resource = &ReportGroup{}
			Expect(resource.AWSCloudFormationType()).To(Equal("AWS::CodeBuild::ReportGroup"))
		})

	})

	Context("tags", func() {

		It("keeps the tags of the request when keys collide", func() {
			tags := []*codebuild.Tag{{Key: aws.String("team"), Value: aws.String("ci")}}
			extra := []*codebuild.Tag{
				{Key: aws.String("team"), Value: aws.String("builds")},
				{Key: aws.String("owner"), Value: aws.String("platform")},
			}
			Expect(tagPairs(mergeTags(tags, extra))).To(Equal([][2]string{{"team", "ci"}, {"owner", "platform"}}))
		})

	})

	Context("exporting templates", func() {

		It("exports a project as JSON", func() {
			output, err := exportTemplate(readTestdata("create-project.yaml"), ExportOptions{
				Tags:   parseTags("Key=owner,Value=platform"),
				Format: "json",
			})
			Expect(err).NotTo(HaveOccurred())

			resources := templateResources(output)
			Expect(resources).To(HaveLen(1))
			Expect(resources).To(HaveKey("ExampleProject"))
			Expect(resources["ExampleProject"]).To(HaveKeyWithValue("Type", "AWS::CodeBuild::Project"))

			properties := resources["ExampleProject"]["Properties"].(map[string]interface{})
			Expect(properties).To(HaveKeyWithValue("Name", "example-project"))
			Expect(properties["Tags"]).To(HaveLen(2))
		})

		It("exports a report group as YAML under the given logical ID", func() {
			output, err := exportTemplate(readTestdata("create-report-group.json"), ExportOptions{
				ReportGroup: true,
				LogicalID:   "TestReports",
			})
			Expect(err).NotTo(HaveOccurred())

			body, err := yaml.YAMLToJSON(output)
			Expect(err).NotTo(HaveOccurred())
			resources := templateResources(body)
			Expect(resources).To(HaveKey("TestReports"))
			Expect(resources["TestReports"]).To(HaveKeyWithValue("Type", "AWS::CodeBuild::ReportGroup"))
		})

		It("exports a report group as JSON", func() {
			output, err := exportTemplate(readTestdata("create-report-group.json"), ExportOptions{
				ReportGroup: true,
				Tags:        parseTags("Key=owner,Value=platform"),
				Format:      "json",
			})
			Expect(err).NotTo(HaveOccurred())

			resources := templateResources(output)
			Expect(resources).To(HaveLen(1))
			Expect(resources).To(HaveKey("ExampleReports"))
			Expect(resources["ExampleReports"]).To(HaveKeyWithValue("Type", "AWS::CodeBuild::ReportGroup"))

			properties, err := json.Marshal(resources["ExampleReports"]["Properties"])
			Expect(err).NotTo(HaveOccurred())
			Expect(properties).To(MatchJSON(`{
				"Name": "example-reports",
				"Type": "TEST",
				"ExportConfig": {
					"ExportConfigType": "S3",
					"S3Destination": {"Bucket": "example-bucket", "Path": "reports", "Packaging": "ZIP"}
				},
				"Tags": [{"Key": "team", "Value": "ci"}, {"Key": "owner", "Value": "platform"}]
			}`))
		})

		It("refuses invalid requests", func() {
			_, err := exportTemplate(readTestdata("invalid-create-project.json"), ExportOptions{})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid CreateProject request"))
		})

		It("refuses unknown output formats", func() {
			_, err := exportTemplate(readTestdata("create-project.yaml"), ExportOptions{Format: "xml"})
			Expect(err).To(MatchError(`unsupported output format "xml"`))
		})

	})
})
