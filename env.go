package main

import (
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	log "github.com/sirupsen/logrus"

	"github.com/awslabs/aws-codebuild-model/codebuild"
)

/**
 Environment variables of a build

 A StartBuild request carries the variables of the build in its
 environmentVariablesOverride list. Values for them can also be supplied
 through the shell's environment or through the env-vars override file.
 If a value is provided through more than one method, the method with
 higher priority wins.

 Priority (Highest to lowest)
	Env-Var override file
	Shell's Environment
	Values from the request document

 The shell's environment only replaces values of variables the request
 already names. The override file can also add variables, which are
 appended as PLAINTEXT variables in name order. A replaced value is
 always a literal, so replaced variables become PLAINTEXT.
*/

func applyEnvironmentVariables(in *codebuild.StartBuildInput, overrideFile string) {

	osenv := getEnvFromOS()
	overrides := getEnvOverrides(aws.StringValue(in.ProjectName), overrideFile)

	seen := map[string]bool{}
	for _, v := range in.EnvironmentVariablesOverride {
		if v == nil || v.Name == nil {
			continue
		}
		name := *v.Name
		seen[name] = true

		// Shell's environment, second priority
		if value, ok := osenv[name]; ok {
			setLiteral(v, value)
		}

		// EnvVars overrides provided by customer, highest priority
		if value, ok := overrides[name]; ok {
			setLiteral(v, value)
		}
	}

	for _, name := range sortedKeys(overrides) {
		if seen[name] {
			continue
		}
		in.AppendEnvironmentVariablesOverride(&codebuild.EnvironmentVariable{
			Name:  aws.String(name),
			Type:  aws.String(codebuild.EnvironmentVariableTypePlaintext),
			Value: aws.String(overrides[name]),
		})
	}

}

func setLiteral(v *codebuild.EnvironmentVariable, value string) {
	v.SetValue(value)
	v.SetType(codebuild.EnvironmentVariableTypePlaintext)
}

func getEnvOverrides(projectName string, filename string) map[string]string {

	if len(filename) > 0 {

		data, err := ioutil.ReadFile(filename)
		if err != nil {
			log.Warnf("Could not read environment overrides from %s: %s", filename, err)
			return map[string]string{}
		}

		// This is a JSON of structure {ProjectName: {key:value}, ProjectName: {key:value}}
		overrides := map[string]map[string]string{}
		if err = json.Unmarshal(data, &overrides); err != nil {
			log.Warnf("Invalid environment override file %s: %s", filename, err)
			return map[string]string{}
		}

		return overrides[projectName]

	}

	return map[string]string{}

}

func getEnvFromOS() map[string]string {

	result := map[string]string{}
	for _, value := range os.Environ() {
		keyVal := strings.SplitN(value, "=", 2)
		if len(keyVal) == 2 {
			result[keyVal[0]] = keyVal[1]
		}
	}

	return result
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
