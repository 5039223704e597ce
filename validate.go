package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/codegangsta/cli"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"

	"github.com/awslabs/aws-codebuild-model/codebuild"
)

// violations checks a decoded input against the constraints of its
// operation and returns one line per violated constraint.
func violations(in codebuild.Shape) []string {

	v, ok := in.(request.Validator)
	if !ok {
		return nil
	}

	err := v.Validate()
	if err == nil {
		return nil
	}

	params, ok := err.(request.ErrInvalidParams)
	if !ok {
		return []string{err.Error()}
	}

	lines := []string{}
	for _, err := range params.OrigErrs() {
		if e, ok := err.(request.ErrInvalidParam); ok {
			lines = append(lines, fmt.Sprintf("%s: %s", e.Field(), e.Message()))
		} else {
			lines = append(lines, err.Error())
		}
	}
	return lines

}

func validate(c *cli.Context) {

	operation := operationName(c)
	if operation == "" {
		log.Fatal("Missing operation name. Run 'codebuild-model operations' to list them")
	}

	op, in, err := loadInput(operation, c.String("input"))
	if err != nil {
		log.WithError(err).Fatal("Failed to load request")
	}

	stderr := colorable.NewColorableStderr()
	lines := violations(in)

	if len(lines) > 0 {
		fmt.Fprintf(stderr, "%s is invalid:\n", op.InputName())
		for _, line := range lines {
			fmt.Fprintf(stderr, "  %s\n", color.RedString(line))
		}
		os.Exit(1)
	}

	fmt.Fprintf(stderr, "%s\n", color.GreenString("Valid!"))
	os.Exit(0)

}
