package main

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/ghodss/yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/awslabs/aws-codebuild-model/codebuild"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// strict decodes request documents. Member names must match exactly
// and unknown members are errors.
var strict = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
	CaseSensitive:          true,
}.Froze()

// stdin is swapped out by tests
var stdin io.Reader = os.Stdin

// readDocument reads a request document from a file, or from stdin
// when the filename is "-". YAML documents are converted to JSON.
func readDocument(filename string) ([]byte, error) {

	var data []byte
	var err error

	if filename == "" || filename == "-" {
		log.Debug("Reading request document from stdin")
		data, err = ioutil.ReadAll(stdin)
	} else {
		log.WithField("file", filename).Debug("Reading request document")
		data, err = ioutil.ReadFile(filename)
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read request document")
	}

	// YAML is a superset of JSON, so this handles both
	body, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse request document")
	}
	return body, nil

}

// decodeInput decodes a request document into the input structure of
// the named operation.
func decodeInput(operation string, data []byte) (*codebuild.OperationInfo, codebuild.Shape, error) {

	op, ok := codebuild.LookupOperation(operation)
	if !ok {
		return nil, nil, errors.Errorf("unknown operation %q", operation)
	}

	in := op.NewInput()
	if err := strict.Unmarshal(data, in); err != nil {
		return nil, nil, errors.Wrapf(err, "could not decode %s", op.InputName())
	}
	return op, in, nil

}

// loadInput reads a request document and decodes it for an operation.
func loadInput(operation, filename string) (*codebuild.OperationInfo, codebuild.Shape, error) {
	data, err := readDocument(filename)
	if err != nil {
		return nil, nil, err
	}
	return decodeInput(operation, data)
}

// encodeDocument renders a structure as indented JSON or as YAML.
func encodeDocument(v interface{}, format string) ([]byte, error) {

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "could not encode document")
	}

	switch format {
	case "", "json":
		return append(data, '\n'), nil
	case "yaml":
		return yaml.JSONToYAML(data)
	}
	return nil, errors.Errorf("unsupported output format %q", format)

}
