// Package codebuild provides the data model of the AWS CodeBuild API
// (API version 2016-10-06).
//
// Every API operation has an input and an output structure, named after the
// operation (StartBuildInput, StartBuildOutput). Nested value structures such
// as Build, Project or Webhook are shared between operations. All fields are
// pointers, so an unset field is distinguishable from its zero value:
//
//	in := &codebuild.StartBuildInput{}
//	in.SetProjectName("my-project").
//		AppendEnvironmentVariablesOverride(&codebuild.EnvironmentVariable{
//			Name:  aws.String("STAGE"),
//			Value: aws.String("beta"),
//		})
//	if err := in.Validate(); err != nil {
//		// handle request.ErrInvalidParams
//	}
//
// Enumerated fields hold plain strings; the package declares the known
// values as constants (StatusTypeSucceeded) together with a Values function
// per enumeration (StatusType_Values). Values outside those sets are stored
// as given.
//
// The package is data only. It performs no I/O and holds no client.
package codebuild

//go:generate go run ../generate -model ../generate/codebuild-2016-10-06.json -templates ../generate/templates -out .
