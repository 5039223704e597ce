package main

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/awslabs/aws-codebuild-model/codebuild"
)

// Config holds the settings read from the configuration file. Command
// line flags and environment variables take precedence over it.
type Config struct {
	LogLevel string   `mapstructure:"log_level" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
	Output   string   `mapstructure:"output" validate:"omitempty,oneof=text json yaml"`
	Region   string   `mapstructure:"region"`
	Defaults Defaults `mapstructure:"defaults"`
}

// Defaults are applied to requests before they are printed.
type Defaults struct {
	StartBuild StartBuildDefaults `mapstructure:"start_build"`
	Tags       map[string]string  `mapstructure:"tags" validate:"dive,keys,min=1,max=127,endkeys,max=255"`
}

type StartBuildDefaults struct {
	ComputeType            string `mapstructure:"compute_type" validate:"omitempty,oneof=BUILD_GENERAL1_SMALL BUILD_GENERAL1_MEDIUM BUILD_GENERAL1_LARGE BUILD_GENERAL1_2XLARGE"`
	Image                  string `mapstructure:"image"`
	TimeoutInMinutes       int64  `mapstructure:"timeout_in_minutes" validate:"omitempty,min=5,max=480"`
	QueuedTimeoutInMinutes int64  `mapstructure:"queued_timeout_in_minutes" validate:"omitempty,min=5,max=480"`
	PrivilegedMode         bool   `mapstructure:"privileged_mode"`
}

// Input returns the defaults as a StartBuild request. Unset settings
// are left nil, so they never override a value of the request.
func (d StartBuildDefaults) Input() *codebuild.StartBuildInput {

	in := &codebuild.StartBuildInput{}
	if d.ComputeType != "" {
		in.SetComputeTypeOverride(d.ComputeType)
	}
	if d.Image != "" {
		in.SetImageOverride(d.Image)
	}
	if d.TimeoutInMinutes > 0 {
		in.SetTimeoutInMinutesOverride(d.TimeoutInMinutes)
	}
	if d.QueuedTimeoutInMinutes > 0 {
		in.SetQueuedTimeoutInMinutesOverride(d.QueuedTimeoutInMinutes)
	}
	if d.PrivilegedMode {
		in.SetPrivilegedModeOverride(true)
	}
	return in

}

// tags returns the default tags sorted by key.
func (d Defaults) tags() []*codebuild.Tag {
	tags := []*codebuild.Tag{}
	for _, k := range sortedKeys(d.Tags) {
		tags = append(tags, &codebuild.Tag{Key: aws.String(k), Value: aws.String(d.Tags[k])})
	}
	return tags
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".codebuild-model.yaml")
}

// loadConfig reads the configuration file. A missing file yields an
// empty configuration.
func loadConfig(filename string) (*Config, error) {

	cfg := &Config{}
	if filename == "" {
		return cfg, nil
	}

	data, err := ioutil.ReadFile(filename)
	if os.IsNotExist(err) {
		log.WithField("file", filename).Debug("No configuration file found")
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read configuration")
	}

	return parseConfig(data)

}

func parseConfig(data []byte) (*Config, error) {

	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "could not parse configuration")
	}

	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil

}
