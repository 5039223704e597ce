package main

import (
	"io"
	"os"
	"text/template"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/codegangsta/cli"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var requests = map[string]string{
	"CreateProject":           createProjectRequest,
	"StartBuild":              startBuildRequest,
	"CreateWebhook":           createWebhookRequest,
	"UpdateWebhook":           updateWebhookRequest,
	"CreateReportGroup":       createReportGroupRequest,
	"ImportSourceCredentials": importSourceCredentialsRequest,
	"ListReports":             listReportsRequest,
	"PutResourcePolicy":       putResourcePolicyRequest,
}

var sampleFuncs = template.FuncMap{
	"json": func(v interface{}) (string, error) {
		data, err := json.Marshal(v)
		return string(data), err
	},
}

type sampleTag struct {
	Key   string
	Value string
}

// renderRequest writes the sample request of an operation, filled in
// with data.
func renderRequest(w io.Writer, operation string, data interface{}) error {

	sample, ok := requests[operation]
	if !ok {
		return errors.Errorf("unsupported request type: %s", operation)
	}

	t, err := template.New("request").Funcs(sampleFuncs).Parse(sample)
	if err != nil {
		return errors.Wrapf(err, "failed to load sample %s request", operation)
	}
	return t.Execute(w, data)

}

// sampleRegion is the region used in sample ARNs.
func sampleRegion() string {
	if cfg.Region != "" {
		return cfg.Region
	}
	if sess, err := session.NewSession(); err == nil && aws.StringValue(sess.Config.Region) != "" {
		return *sess.Config.Region
	}
	return "us-east-1"
}

func generate(operation string, c *cli.Context) {

	var data interface{}

	switch operation {
	case "CreateProject":
		tags := []sampleTag{}
		for _, t := range parseTags(c.String("tags")) {
			tags = append(tags, sampleTag{Key: aws.StringValue(t.Key), Value: aws.StringValue(t.Value)})
		}
		data = struct {
			Name        string
			SourceType  string
			Location    string
			Image       string
			ServiceRole string
			Tags        []sampleTag
		}{
			Name:        c.String("name"),
			SourceType:  c.String("source-type"),
			Location:    c.String("location"),
			Image:       c.String("image"),
			ServiceRole: c.String("service-role"),
			Tags:        tags,
		}

	case "StartBuild":
		data = struct {
			Name          string
			SourceVersion string
		}{
			Name:          c.String("name"),
			SourceVersion: c.String("source-version"),
		}

	case "CreateWebhook", "UpdateWebhook":
		data = struct {
			Name   string
			Branch string
		}{
			Name:   c.String("name"),
			Branch: c.String("branch"),
		}

	case "CreateReportGroup":
		data = struct {
			Name   string
			Bucket string
		}{
			Name:   c.String("name"),
			Bucket: c.String("bucket"),
		}

	case "ImportSourceCredentials":
		data = struct {
			ServerType string
			Token      string
		}{
			ServerType: c.String("server-type"),
			Token:      c.String("token"),
		}

	case "ListReports":
		data = struct {
			Status     string
			MaxResults int
		}{
			Status:     c.String("status"),
			MaxResults: c.Int("max-results"),
		}

	case "PutResourcePolicy":
		data = struct {
			ResourceArn string
			Principal   string
			Region      string
		}{
			ResourceArn: c.String("resource-arn"),
			Principal:   c.String("principal"),
			Region:      sampleRegion(),
		}
	}

	if err := renderRequest(os.Stdout, operation, data); err != nil {
		log.WithError(err).Fatal("Failed to generate request")
	}

}

var createProjectRequest = `{
  "name": {{json .Name}},
  "description": "Sample project generated by codebuild-model",
  "source": {
    "type": {{json .SourceType}},
    "location": {{json .Location}},
    "gitCloneDepth": 1,
    "buildspec": "version: 0.2\nphases:\n  build:\n    commands:\n      - make test\n"
  },
  "artifacts": {
    "type": "NO_ARTIFACTS"
  },
  "environment": {
    "type": "LINUX_CONTAINER",
    "image": {{json .Image}},
    "computeType": "BUILD_GENERAL1_SMALL",
    "environmentVariables": [
      {
        "name": "STAGE",
        "value": "test",
        "type": "PLAINTEXT"
      }
    ]
  },
  "serviceRole": {{json .ServiceRole}},
  "timeoutInMinutes": 60,
  "tags": [{{range $i, $t := .Tags}}{{if $i}},{{end}}
    {
      "key": {{json $t.Key}},
      "value": {{json $t.Value}}
    }{{end}}
  ]
}
`

var startBuildRequest = `{
  "projectName": {{json .Name}},
  "sourceVersion": {{json .SourceVersion}},
  "environmentVariablesOverride": [
    {
      "name": "STAGE",
      "value": "test",
      "type": "PLAINTEXT"
    }
  ],
  "timeoutInMinutesOverride": 30
}
`

var createWebhookRequest = `{
  "projectName": {{json .Name}},
  "filterGroups": [
    [
      {
        "type": "EVENT",
        "pattern": "PUSH"
      },
      {
        "type": "HEAD_REF",
        "pattern": {{json .Branch}}
      }
    ]
  ]
}
`

var updateWebhookRequest = `{
  "projectName": {{json .Name}},
  "rotateSecret": false,
  "filterGroups": [
    [
      {
        "type": "EVENT",
        "pattern": "PULL_REQUEST_CREATED, PULL_REQUEST_UPDATED"
      },
      {
        "type": "BASE_REF",
        "pattern": {{json .Branch}},
        "excludeMatchedPattern": false
      }
    ]
  ]
}
`

var createReportGroupRequest = `{
  "name": {{json .Name}},
  "type": "TEST",
  "exportConfig": {
    "exportConfigType": "S3",
    "s3Destination": {
      "bucket": {{json .Bucket}},
      "path": "reports",
      "packaging": "ZIP",
      "encryptionDisabled": false
    }
  }
}
`

var importSourceCredentialsRequest = `{
  "serverType": {{json .ServerType}},
  "authType": "PERSONAL_ACCESS_TOKEN",
  "token": {{json .Token}},
  "shouldOverwrite": true
}
`

var listReportsRequest = `{
  "sortOrder": "DESCENDING",
  "maxResults": {{.MaxResults}},
  "filter": {
    "status": {{json .Status}}
  }
}
`

var putResourcePolicyRequest = `{
  "resourceArn": {{json .ResourceArn}},
  "policy": "{\"Version\":\"2012-10-17\",\"Statement\":[{\"Effect\":\"Allow\",\"Principal\":{\"AWS\":\"{{.Principal}}\"},\"Action\":[\"codebuild:BatchGetProjects\",\"codebuild:BatchGetBuilds\"],\"Resource\":\"{{.ResourceArn}}\",\"Condition\":{\"StringEquals\":{\"aws:RequestedRegion\":\"{{.Region}}\"}}}]}"
}
`
