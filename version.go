package main

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/codegangsta/cli"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/awslabs/aws-codebuild-model/codebuild"
)

// checkVersionResult contains information on the current version of the CLI, and
// whether there are any newer versions available to upgrade to.
type checkVersionResult struct {
	IsUpToDate    bool
	LatestVersion *versionManifest
}

// versionManifest mirrors the VERSION file generated for the CLI
// as part of the build process
type versionManifest struct {
	Version    string    `yaml:"Version"`
	APIVersion string    `yaml:"APIVersion"`
	GitHash    string    `yaml:"GitHash"`
	BuiltBy    string    `yaml:"BuiltBy"`
	BuiltAt    time.Time `yaml:"BuiltAt"`
}

// checkVersion checks whether the current version of the CLI is the latest
func checkVersion() (*checkVersionResult, error) {

	// Get the latest version details from S3
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String("us-east-1"),
	}))
	svc := s3.New(sess)

	obj, err := svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String("aws-codebuild-model"),
		Key:    aws.String("releases/latest/VERSION"),
	})

	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			log.WithField("code", aerr.Code()).Debug("Could not fetch the latest version")
		}
		return &checkVersionResult{}, err
	}
	defer obj.Body.Close()

	data, err := ioutil.ReadAll(obj.Body)
	if err != nil {
		return &checkVersionResult{}, err
	}

	return compareVersion(data, version)

}

// compareVersion parses a version manifest and compares it with current.
func compareVersion(manifest []byte, current string) (*checkVersionResult, error) {

	vm := &versionManifest{}
	if err := yaml.Unmarshal(manifest, vm); err != nil {
		return &checkVersionResult{}, errors.Wrap(err, "invalid version manifest")
	}

	return &checkVersionResult{
		LatestVersion: vm,
		IsUpToDate:    current == vm.Version,
	}, nil

}

// printVersion prints the versions of the CLI and of the modelled API.
// Release builds have already checked for updates when it runs.
func printVersion(c *cli.Context) {
	fmt.Printf("codebuild-model %s (%s API %s)\n", version, codebuild.ServiceID, codebuild.APIVersion)
}
