package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/codegangsta/cli"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/awslabs/aws-codebuild-model/codebuild"
)

const LOCAL_BUILD_VERSION = "snapshot"

// `version` property will be replaced by the build upon release
var version = LOCAL_BUILD_VERSION

// cfg is loaded before any command runs
var cfg = &Config{}

func main() {

	color.Unset()

	if version != LOCAL_BUILD_VERSION {
		// Enable version checking only on public releases

		v, err := checkVersion()
		if err == nil && !v.IsUpToDate {
			fmt.Fprintf(os.Stderr, "A newer version of the CodeBuild model CLI is available!\n")
			fmt.Fprintf(os.Stderr, "Your version:   %s\n", version)
			fmt.Fprintf(os.Stderr, "Latest version: %s\n", v.LatestVersion.Version)
			fmt.Fprintf(os.Stderr, "See https://github.com/awslabs/aws-codebuild-model for upgrade instructions\n\n")
		}
	}

	app := cli.NewApp()

	app.Name = "codebuild-model"
	app.Version = version
	app.Usage = `
     AWS CodeBuild model CLI

     Works offline with requests for the AWS CodeBuild API (version ` + codebuild.APIVersion + `). Validates request documents
     against the constraints of the API, renders sample requests, applies environment variable overrides to StartBuild
     requests and exports build projects as AWS CloudFormation templates.
	`
	app.EnableBashCompletion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Usage:  "Optional. YAML configuration file holding defaults for requests.",
			Value:  defaultConfigFile(),
			EnvVar: "CODEBUILD_MODEL_CONFIG",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "Optional. One of panic, fatal, error, warn, info, debug or trace.",
			EnvVar: "CODEBUILD_MODEL_LOG_LEVEL",
		},
		cli.StringFlag{
			Name:  "log-file, l",
			Usage: "Optional. Logfile to send logs to",
		},
		cli.BoolFlag{
			Name:   "no-color",
			Usage:  "Optional. Disable colored output.",
			EnvVar: "CODEBUILD_MODEL_NO_COLOR",
		},
	}

	app.Before = func(c *cli.Context) error {

		loaded, err := loadConfig(c.GlobalString("config"))
		if err != nil {
			return err
		}
		cfg = loaded

		if c.GlobalBool("no-color") {
			color.NoColor = true
		}

		level := c.GlobalString("log-level")
		if level == "" {
			level = cfg.LogLevel
		}
		return setupLogging(level, c.GlobalString("log-file"))

	}

	app.Commands = []cli.Command{

		cli.Command{
			Name:   "operations",
			Usage:  "Lists the operations of the AWS CodeBuild API with their input and output structures.",
			Action: listOperations,
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "paginated",
					Usage: "Optional. Only list operations that return their results in pages.",
				},
			},
		},

		cli.Command{
			Name:      "validate",
			Usage:     "Validates a request document for an operation. Prints every constraint the request violates and returns a non-zero exit code if it is invalid.",
			Action:    validate,
			ArgsUsage: "<operation>",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operation",
					Usage: "Name of the operation, e.g. StartBuild. May also be given as the first argument.",
				},
				cli.StringFlag{
					Name:   "input, i",
					Value:  "-",
					Usage:  "JSON or YAML request document, or - for stdin",
					EnvVar: "CODEBUILD_MODEL_INPUT",
				},
			},
		},

		cli.Command{
			Name:      "describe",
			Usage:     "Decodes a request document for an operation and prints it together with its hash code.",
			Action:    describe,
			ArgsUsage: "<operation>",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operation",
					Usage: "Name of the operation, e.g. StartBuild. May also be given as the first argument.",
				},
				cli.StringFlag{
					Name:   "input, i",
					Value:  "-",
					Usage:  "JSON or YAML request document, or - for stdin",
					EnvVar: "CODEBUILD_MODEL_INPUT",
				},
				cli.StringFlag{
					Name:  "output, o",
					Usage: "Optional. Output format: text, json or yaml. Defaults to the configured output or text.",
				},
			},
		},

		cli.Command{
			Name:  "generate-request",
			Usage: "Generates sample request documents that can be piped to 'codebuild-model validate'",
			Subcommands: []cli.Command{
				cli.Command{
					Name:  "create-project",
					Usage: "Generates a sample CreateProject request",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "name, n",
							Usage: "The name of the build project",
							Value: "example-project",
						},
						cli.StringFlag{
							Name:  "source-type",
							Usage: "The type of the source repository",
							Value: codebuild.SourceTypeGithub,
						},
						cli.StringFlag{
							Name:  "location",
							Usage: "The location of the source code",
							Value: "https://github.com/example/repo.git",
						},
						cli.StringFlag{
							Name:  "image",
							Usage: "The Docker image of the build environment",
							Value: "aws/codebuild/standard:4.0",
						},
						cli.StringFlag{
							Name:  "service-role",
							Usage: "The ARN of the service role",
							Value: "arn:aws:iam::123456789012:role/service-role/codebuild-example-service-role",
						},
						cli.StringFlag{
							Name:  "tags",
							Usage: "Optional. Tags encoded as key-value pairs, e.g. 'Key=team,Value=ci Key=env,Value=prod'",
						},
					},
					Action: func(c *cli.Context) {
						generate("CreateProject", c)
					},
				},
				cli.Command{
					Name:  "start-build",
					Usage: "Generates a sample StartBuild request",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "name, n",
							Usage: "The name of the build project",
							Value: "example-project",
						},
						cli.StringFlag{
							Name:  "source-version",
							Usage: "The version of the source code to build",
							Value: "refs/heads/main",
						},
					},
					Action: func(c *cli.Context) {
						generate("StartBuild", c)
					},
				},
				cli.Command{
					Name:  "create-webhook",
					Usage: "Generates a sample CreateWebhook request",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "name, n",
							Usage: "The name of the build project",
							Value: "example-project",
						},
						cli.StringFlag{
							Name:  "branch, b",
							Usage: "A regular expression matching the branches to build",
							Value: "^refs/heads/main$",
						},
					},
					Action: func(c *cli.Context) {
						generate("CreateWebhook", c)
					},
				},
				cli.Command{
					Name:  "update-webhook",
					Usage: "Generates a sample UpdateWebhook request",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "name, n",
							Usage: "The name of the build project",
							Value: "example-project",
						},
						cli.StringFlag{
							Name:  "branch, b",
							Usage: "A regular expression matching the branches to build",
							Value: "^refs/heads/main$",
						},
					},
					Action: func(c *cli.Context) {
						generate("UpdateWebhook", c)
					},
				},
				cli.Command{
					Name:  "create-report-group",
					Usage: "Generates a sample CreateReportGroup request",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "name, n",
							Usage: "The name of the report group",
							Value: "example-reports",
						},
						cli.StringFlag{
							Name:  "bucket",
							Usage: "The S3 bucket test results are exported to",
							Value: "example-bucket",
						},
					},
					Action: func(c *cli.Context) {
						generate("CreateReportGroup", c)
					},
				},
				cli.Command{
					Name:  "import-source-credentials",
					Usage: "Generates a sample ImportSourceCredentials request",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "server-type",
							Usage: "The source provider",
							Value: codebuild.ServerTypeGithub,
						},
						cli.StringFlag{
							Name:  "token",
							Usage: "The personal access token or app password",
							Value: "example-token",
						},
					},
					Action: func(c *cli.Context) {
						generate("ImportSourceCredentials", c)
					},
				},
				cli.Command{
					Name:  "list-reports",
					Usage: "Generates a sample ListReports request",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "status",
							Usage: "The report status to filter on",
							Value: codebuild.ReportStatusTypeSucceeded,
						},
						cli.IntFlag{
							Name:  "max-results",
							Usage: "The page size",
							Value: 50,
						},
					},
					Action: func(c *cli.Context) {
						generate("ListReports", c)
					},
				},
				cli.Command{
					Name:  "put-resource-policy",
					Usage: "Generates a sample PutResourcePolicy request",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "resource-arn",
							Usage: "The ARN of the project or report group",
							Value: "arn:aws:codebuild:us-east-1:123456789012:project/example-project",
						},
						cli.StringFlag{
							Name:  "principal",
							Usage: "The AWS account the resource is shared with",
							Value: "arn:aws:iam::210987654321:root",
						},
					},
					Action: func(c *cli.Context) {
						generate("PutResourcePolicy", c)
					},
				},
			},
		},

		cli.Command{
			Name:   "start-build",
			Usage:  "Prepares a StartBuild request: applies environment variable overrides and configured defaults, and prints the resulting request.",
			Action: startBuild,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "input, i",
					Value:  "-",
					Usage:  "JSON or YAML StartBuild request document, or - for stdin",
					EnvVar: "CODEBUILD_MODEL_INPUT",
				},
				cli.StringFlag{
					Name:  "env-vars, n",
					Usage: "Optional. JSON file containing values for the build's environment variables, keyed by project name.",
				},
				cli.StringFlag{
					Name:  "idempotency-token",
					Usage: "Optional. Idempotency token of the request, or 'auto' to generate one.",
				},
				cli.BoolFlag{
					Name:  "no-defaults",
					Usage: "Optional. Do not fill unset fields from the configuration file.",
				},
				cli.StringFlag{
					Name:  "output, o",
					Usage: "Optional. Output format: json or yaml.",
					Value: "json",
				},
			},
		},

		cli.Command{
			Name:   "export-template",
			Usage:  "Exports a CreateProject (or CreateReportGroup) request document as an AWS CloudFormation template.",
			Action: export,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "input, i",
					Value:  "-",
					Usage:  "JSON or YAML request document, or - for stdin",
					EnvVar: "CODEBUILD_MODEL_INPUT",
				},
				cli.BoolFlag{
					Name:  "report-group",
					Usage: "Optional. The input is a CreateReportGroup request.",
				},
				cli.StringFlag{
					Name:  "logical-id",
					Usage: "Optional. Logical ID of the resource in the template. Derived from the name by default.",
				},
				cli.StringFlag{
					Name:  "tags",
					Usage: "Optional. Additional tags encoded as key-value pairs, e.g. 'Key=team,Value=ci Key=env,Value=prod'. In case of parsing errors malformed pairs are ignored",
				},
				cli.StringFlag{
					Name:  "output, o",
					Usage: "Optional. Output format: json or yaml.",
					Value: "yaml",
				},
			},
		},

		cli.Command{
			Name:   "version",
			Usage:  "Prints the version of the CLI and of the API it models, and checks for a newer release.",
			Action: printVersion,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("Failed to run command")
		os.Exit(1)
	}

}

// operationName returns the operation given with --operation, or as the
// first argument.
func operationName(c *cli.Context) string {
	if name := c.String("operation"); name != "" {
		return name
	}
	return c.Args().First()
}

// regexp that parses tag key-value pairs in the format of the AWS CLI shorthand syntax
var tagRe = regexp.MustCompile(`(?:Key)=("(?:\\.|[^"\\]+)*"|(?:\\.|[^, "\\]+)*),(?:Value)=("(?:\\.|[^"\\]+)*"|(?:\\.|[^ ,"\\]+)*)`)

// parseTags parses the tags like string and converts it into a list of
// tags, in the order they are given.
func parseTags(arg string) []*codebuild.Tag {
	tags := []*codebuild.Tag{}

	unquote := func(orig string) string {
		return strings.Replace(strings.TrimSuffix(strings.TrimPrefix(orig, `"`), `"`), `\ `, ` `, -1)
	}

	for _, match := range tagRe.FindAllStringSubmatch(arg, -1) {
		tags = append(tags, &codebuild.Tag{
			Key:   aws.String(unquote(match[1])),
			Value: aws.String(unquote(match[2])),
		})
	}
	return tags
}
