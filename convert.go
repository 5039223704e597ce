package main

import (
	"os"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/awslabs/goformation/cloudformation"
	"github.com/codegangsta/cli"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/awslabs/aws-codebuild-model/codebuild"
)

// nonAlphanumericEx splits names into the words of a logical ID
var nonAlphanumericEx = regexp.MustCompile(`[^A-Za-z0-9]+`)

// logicalID derives a CloudFormation logical ID from a resource name,
// e.g. "example-project" becomes "ExampleProject".
func logicalID(name, fallback string) string {
	id := ""
	for _, word := range nonAlphanumericEx.Split(name, -1) {
		if word == "" {
			continue
		}
		id += strings.ToUpper(word[:1]) + word[1:]
	}
	if id == "" {
		return fallback
	}
	return id
}

// projectToResource converts a CreateProject request to its CloudFormation counterpart. The conversion makes the following assumptions:
//   - file system locations, source versions, git submodule settings and S3 log encryption are not carried over,
//     the AWS::CodeBuild::Project resource of the pinned goformation release has no such properties
//   - unset booleans and integers are exported as their zero values
//   - tags keep the order of the request
func projectToResource(in *codebuild.CreateProjectInput) *cloudformation.AWSCodeBuildProject {

	project := &cloudformation.AWSCodeBuildProject{
		Name:                   aws.StringValue(in.Name),
		Description:            aws.StringValue(in.Description),
		EncryptionKey:          aws.StringValue(in.EncryptionKey),
		ServiceRole:            aws.StringValue(in.ServiceRole),
		BadgeEnabled:           aws.BoolValue(in.BadgeEnabled),
		TimeoutInMinutes:       int(aws.Int64Value(in.TimeoutInMinutes)),
		QueuedTimeoutInMinutes: int(aws.Int64Value(in.QueuedTimeoutInMinutes)),
		Artifacts:              artifactsToResource(in.Artifacts),
		Source:                 sourceToResource(in.Source),
	}

	for _, a := range in.SecondaryArtifacts {
		if a != nil {
			project.SecondaryArtifacts = append(project.SecondaryArtifacts, *artifactsToResource(a))
		}
	}
	for _, s := range in.SecondarySources {
		if s != nil {
			project.SecondarySources = append(project.SecondarySources, *sourceToResource(s))
		}
	}
	if in.Environment != nil {
		project.Environment = &cloudformation.AWSCodeBuildProject_Environment{
			Certificate:              aws.StringValue(in.Environment.Certificate),
			ComputeType:              aws.StringValue(in.Environment.ComputeType),
			Image:                    aws.StringValue(in.Environment.Image),
			ImagePullCredentialsType: aws.StringValue(in.Environment.ImagePullCredentialsType),
			PrivilegedMode:           aws.BoolValue(in.Environment.PrivilegedMode),
			Type:                     aws.StringValue(in.Environment.Type),
		}
		for _, v := range in.Environment.EnvironmentVariables {
			if v == nil {
				continue
			}
			project.Environment.EnvironmentVariables = append(project.Environment.EnvironmentVariables, cloudformation.AWSCodeBuildProject_EnvironmentVariable{
				Name:  aws.StringValue(v.Name),
				Type:  aws.StringValue(v.Type),
				Value: aws.StringValue(v.Value),
			})
		}
		if rc := in.Environment.RegistryCredential; rc != nil {
			project.Environment.RegistryCredential = &cloudformation.AWSCodeBuildProject_RegistryCredential{
				Credential:         aws.StringValue(rc.Credential),
				CredentialProvider: aws.StringValue(rc.CredentialProvider),
			}
		}
	}

	if in.Cache != nil {
		project.Cache = &cloudformation.AWSCodeBuildProject_ProjectCache{
			Location: aws.StringValue(in.Cache.Location),
			Modes:    aws.StringValueSlice(in.Cache.Modes),
			Type:     aws.StringValue(in.Cache.Type),
		}
	}

	if in.LogsConfig != nil {
		project.LogsConfig = &cloudformation.AWSCodeBuildProject_LogsConfig{}
		if cw := in.LogsConfig.CloudWatchLogs; cw != nil {
			project.LogsConfig.CloudWatchLogs = &cloudformation.AWSCodeBuildProject_CloudWatchLogsConfig{
				GroupName:  aws.StringValue(cw.GroupName),
				Status:     aws.StringValue(cw.Status),
				StreamName: aws.StringValue(cw.StreamName),
			}
		}
		if s3 := in.LogsConfig.S3Logs; s3 != nil {
			project.LogsConfig.S3Logs = &cloudformation.AWSCodeBuildProject_S3LogsConfig{
				Location: aws.StringValue(s3.Location),
				Status:   aws.StringValue(s3.Status),
			}
		}
	}

	if in.VpcConfig != nil {
		project.VpcConfig = &cloudformation.AWSCodeBuildProject_VpcConfig{
			SecurityGroupIds: aws.StringValueSlice(in.VpcConfig.SecurityGroupIds),
			Subnets:          aws.StringValueSlice(in.VpcConfig.Subnets),
			VpcId:            aws.StringValue(in.VpcConfig.VpcId),
		}
	}

	project.Tags = toResourceTags(in.Tags)
	return project

}

func artifactsToResource(in *codebuild.ProjectArtifacts) *cloudformation.AWSCodeBuildProject_Artifacts {
	if in == nil {
		return nil
	}
	return &cloudformation.AWSCodeBuildProject_Artifacts{
		ArtifactIdentifier:   aws.StringValue(in.ArtifactIdentifier),
		EncryptionDisabled:   aws.BoolValue(in.EncryptionDisabled),
		Location:             aws.StringValue(in.Location),
		Name:                 aws.StringValue(in.Name),
		NamespaceType:        aws.StringValue(in.NamespaceType),
		OverrideArtifactName: aws.BoolValue(in.OverrideArtifactName),
		Packaging:            aws.StringValue(in.Packaging),
		Path:                 aws.StringValue(in.Path),
		Type:                 aws.StringValue(in.Type),
	}
}

func sourceToResource(in *codebuild.ProjectSource) *cloudformation.AWSCodeBuildProject_Source {
	if in == nil {
		return nil
	}
	source := &cloudformation.AWSCodeBuildProject_Source{
		BuildSpec:         aws.StringValue(in.Buildspec),
		GitCloneDepth:     int(aws.Int64Value(in.GitCloneDepth)),
		InsecureSsl:       aws.BoolValue(in.InsecureSsl),
		Location:          aws.StringValue(in.Location),
		ReportBuildStatus: aws.BoolValue(in.ReportBuildStatus),
		SourceIdentifier:  aws.StringValue(in.SourceIdentifier),
		Type:              aws.StringValue(in.Type),
	}
	if in.Auth != nil {
		source.Auth = &cloudformation.AWSCodeBuildProject_SourceAuth{
			Resource: aws.StringValue(in.Auth.Resource),
			Type:     aws.StringValue(in.Auth.Type),
		}
	}
	return source
}

// reportGroupToResource converts a CreateReportGroup request into an
// AWS::CodeBuild::ReportGroup resource.
func reportGroupToResource(in *codebuild.CreateReportGroupInput) *ReportGroup {

	group := &ReportGroup{
		Name: aws.StringValue(in.Name),
		Type: aws.StringValue(in.Type),
		Tags: toResourceTags(in.Tags),
	}

	if in.ExportConfig != nil {
		group.ExportConfig = &ReportGroup_ReportExportConfig{
			ExportConfigType: aws.StringValue(in.ExportConfig.ExportConfigType),
		}
		if s3 := in.ExportConfig.S3Destination; s3 != nil {
			group.ExportConfig.S3Destination = &ReportGroup_S3ReportExportConfig{
				Bucket:             aws.StringValue(s3.Bucket),
				EncryptionDisabled: aws.BoolValue(s3.EncryptionDisabled),
				EncryptionKey:      aws.StringValue(s3.EncryptionKey),
				Packaging:          aws.StringValue(s3.Packaging),
				Path:               aws.StringValue(s3.Path),
			}
		}
	}

	return group

}

func toResourceTags(tags []*codebuild.Tag) []cloudformation.Tag {
	var result []cloudformation.Tag
	for _, t := range tags {
		if t == nil {
			continue
		}
		result = append(result, cloudformation.Tag{
			Key:   aws.StringValue(t.Key),
			Value: aws.StringValue(t.Value),
		})
	}
	return result
}

// mergeTags appends the extra tags whose keys tags does not hold yet.
func mergeTags(tags []*codebuild.Tag, extra []*codebuild.Tag) []*codebuild.Tag {
	keys := map[string]bool{}
	for _, t := range tags {
		keys[aws.StringValue(t.Key)] = true
	}
	for _, t := range extra {
		if keys[aws.StringValue(t.Key)] {
			continue
		}
		keys[aws.StringValue(t.Key)] = true
		tags = append(tags, t)
	}
	return tags
}

// ExportOptions control how a request is exported as a template.
type ExportOptions struct {
	ReportGroup bool
	LogicalID   string
	Tags        []*codebuild.Tag
	Format      string
}

// exportTemplate renders a CreateProject or CreateReportGroup request
// document as a CloudFormation template holding a single resource.
func exportTemplate(data []byte, opt ExportOptions) ([]byte, error) {

	template := cloudformation.NewTemplate()
	template.Description = "AWS CodeBuild resources exported by codebuild-model"

	operation := "CreateProject"
	if opt.ReportGroup {
		operation = "CreateReportGroup"
	}

	_, in, err := decodeInput(operation, data)
	if err != nil {
		return nil, err
	}

	if lines := violations(in); len(lines) > 0 {
		return nil, errors.Errorf("invalid %s request: %s", operation, strings.Join(lines, "; "))
	}

	switch in := in.(type) {
	case *codebuild.CreateProjectInput:
		in.Tags = mergeTags(in.Tags, opt.Tags)
		id := opt.LogicalID
		if id == "" {
			id = logicalID(aws.StringValue(in.Name), "Project")
		}
		template.Resources[id] = projectToResource(in)

	case *codebuild.CreateReportGroupInput:
		in.Tags = mergeTags(in.Tags, opt.Tags)
		id := opt.LogicalID
		if id == "" {
			id = logicalID(aws.StringValue(in.Name), "ReportGroup")
		}
		template.Resources[id] = reportGroupToResource(in)
	}

	switch opt.Format {
	case "", "yaml":
		return template.YAML()
	case "json":
		return template.JSON()
	}
	return nil, errors.Errorf("unsupported output format %q", opt.Format)

}

func export(c *cli.Context) {

	data, err := readDocument(c.String("input"))
	if err != nil {
		log.WithError(err).Fatal("Failed to load request")
	}

	output, err := exportTemplate(data, ExportOptions{
		ReportGroup: c.Bool("report-group"),
		LogicalID:   c.String("logical-id"),
		Tags:        mergeTags(parseTags(c.String("tags")), cfg.Defaults.tags()),
		Format:      c.String("output"),
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to export template")
	}

	os.Stdout.Write(output)

}
