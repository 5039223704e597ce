package main

import (
	"os"
	"reflect"

	"github.com/codegangsta/cli"
	"github.com/google/uuid"
	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/awslabs/aws-codebuild-model/codebuild"
)

// StartBuildOptions control how a StartBuild request is prepared.
type StartBuildOptions struct {
	EnvOverrideFile  string
	IdempotencyToken string
	Defaults         *StartBuildDefaults
}

// startBuildDefaults merges defaults into a StartBuild request. A field
// is only filled when the request leaves it nil, so an explicit false or
// zero is kept. Default values are copied, never shared.
type startBuildDefaults struct{}

func (startBuildDefaults) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	if t != reflect.TypeOf(codebuild.StartBuildInput{}) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue
			}
			d, s := dst.Field(i), src.Field(i)
			switch d.Kind() {
			case reflect.Ptr:
				if d.IsNil() && !s.IsNil() {
					v := reflect.New(s.Type().Elem())
					v.Elem().Set(s.Elem())
					d.Set(v)
				}
			case reflect.Slice:
				if d.IsNil() && !s.IsNil() {
					d.Set(reflect.AppendSlice(reflect.MakeSlice(s.Type(), 0, s.Len()), s))
				}
			}
		}
		return nil
	}
}

// prepareStartBuild applies environment variable overrides, configured
// defaults and the idempotency token to a StartBuild request. The
// request passed in is left untouched.
func prepareStartBuild(in *codebuild.StartBuildInput, opt StartBuildOptions) (*codebuild.StartBuildInput, error) {

	out := in.Copy()
	if out == nil {
		out = &codebuild.StartBuildInput{}
	}

	applyEnvironmentVariables(out, opt.EnvOverrideFile)

	if opt.Defaults != nil {
		if err := mergo.Merge(out, opt.Defaults.Input(), mergo.WithTransformers(startBuildDefaults{})); err != nil {
			return nil, errors.Wrap(err, "could not apply defaults")
		}
	}

	switch opt.IdempotencyToken {
	case "":
	case "auto":
		out.SetIdempotencyToken(uuid.New().String())
	default:
		out.SetIdempotencyToken(opt.IdempotencyToken)
	}

	return out, nil

}

func startBuild(c *cli.Context) {

	_, in, err := loadInput("StartBuild", c.String("input"))
	if err != nil {
		log.WithError(err).Fatal("Failed to load request")
	}

	opt := StartBuildOptions{
		EnvOverrideFile:  c.String("env-vars"),
		IdempotencyToken: c.String("idempotency-token"),
	}
	if !c.Bool("no-defaults") {
		opt.Defaults = &cfg.Defaults.StartBuild
	}

	out, err := prepareStartBuild(in.(*codebuild.StartBuildInput), opt)
	if err != nil {
		log.WithError(err).Fatal("Failed to prepare request")
	}

	for _, line := range violations(out) {
		log.Warn(line)
	}

	data, err := encodeDocument(out, c.String("output"))
	if err != nil {
		log.WithError(err).Fatal("Failed to encode request")
	}
	os.Stdout.Write(data)

}
