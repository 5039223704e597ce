package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/codegangsta/cli"
	log "github.com/sirupsen/logrus"

	"github.com/awslabs/aws-codebuild-model/codebuild"
)

type hasher interface {
	HashCode() uint64
}

// describeInput writes a decoded input in the requested format. The
// text format carries the hash code of the input after its fields.
func describeInput(w io.Writer, op *codebuild.OperationInfo, in codebuild.Shape, format string) error {

	if format != "" && format != "text" {
		data, err := encodeDocument(in, format)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	fmt.Fprintf(w, "%s %s\n", op.InputName(), in.String())
	if h, ok := in.(hasher); ok {
		fmt.Fprintf(w, "HashCode: %016x\n", h.HashCode())
	}
	return nil

}

func describe(c *cli.Context) {

	op, in, err := loadInput(operationName(c), c.String("input"))
	if err != nil {
		log.WithError(err).Fatal("Failed to load request")
	}

	format := c.String("output")
	if format == "" {
		format = cfg.Output
	}

	if err := describeInput(os.Stdout, op, in, format); err != nil {
		log.WithError(err).Fatal("Failed to describe request")
	}

}

// listOperations prints a table of the operations of the API.
func listOperations(c *cli.Context) {

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	writeOperations(w, c.Bool("paginated"))
	w.Flush()

}

func writeOperations(w io.Writer, paginatedOnly bool) {

	fmt.Fprintf(w, "OPERATION\tINPUT\tOUTPUT\tPAGINATED\n")
	for _, op := range codebuild.Operations() {
		if paginatedOnly && !op.Paginated() {
			continue
		}
		paginated := "no"
		if op.Paginated() {
			paginated = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", op.Name, op.InputName(), op.OutputName(), paginated)
	}

}
