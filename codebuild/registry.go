package codebuild

import (
	"sort"

	"github.com/aws/aws-sdk-go/aws/request"
)

// Shape is implemented by every structure of the model.
type Shape interface {
	String() string
	GoString() string
}

// OperationInfo describes a single API operation: the request metadata an
// aws-sdk-go client would use, and constructors for its input and output.
type OperationInfo struct {
	*request.Operation

	// Documentation is a one line summary of the operation.
	Documentation string

	NewInput  func() Shape
	NewOutput func() Shape
}

// Paginated reports whether the operation returns its results in pages.
func (o *OperationInfo) Paginated() bool {
	return o.Paginator != nil
}

// InputName returns the type name of the operation's input structure.
func (o *OperationInfo) InputName() string {
	return o.Name + "Input"
}

// OutputName returns the type name of the operation's output structure.
func (o *OperationInfo) OutputName() string {
	return o.Name + "Output"
}

func newPaginator(inputToken, outputToken, limitToken string) *request.Paginator {
	return &request.Paginator{
		InputTokens:  []string{inputToken},
		OutputTokens: []string{outputToken},
		LimitToken:   limitToken,
	}
}

// LookupOperation returns the operation registered under name, as in
// "StartBuild".
func LookupOperation(name string) (*OperationInfo, bool) {
	op, ok := operationTable[name]
	return op, ok
}

// Operations returns every operation of the API, sorted by name.
func Operations() []*OperationInfo {
	ops := make([]*OperationInfo, 0, len(operationTable))
	for _, op := range operationTable {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Name < ops[j].Name
	})
	return ops
}

// OperationNames returns the names of every operation of the API, sorted.
func OperationNames() []string {
	names := make([]string, 0, len(operationTable))
	for name := range operationTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
