package main

import (
	"github.com/awslabs/goformation/cloudformation"
)

// ReportGroup AWS CloudFormation Resource (AWS::CodeBuild::ReportGroup)
// See: https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/aws-resource-codebuild-reportgroup.html
type ReportGroup struct {

	// ExportConfig AWS CloudFormation Property
	// Required: true
	// See: https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/aws-resource-codebuild-reportgroup.html#cfn-codebuild-reportgroup-exportconfig
	ExportConfig *ReportGroup_ReportExportConfig `json:"ExportConfig,omitempty"`

	// Name AWS CloudFormation Property
	// Required: false
	// See: https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/aws-resource-codebuild-reportgroup.html#cfn-codebuild-reportgroup-name
	Name string `json:"Name,omitempty"`

	// Tags AWS CloudFormation Property
	// Required: false
	// See: https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/aws-resource-codebuild-reportgroup.html#cfn-codebuild-reportgroup-tags
	Tags []cloudformation.Tag `json:"Tags,omitempty"`

	// Type AWS CloudFormation Property
	// Required: true
	// See: https://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/aws-resource-codebuild-reportgroup.html#cfn-codebuild-reportgroup-type
	Type string `json:"Type,omitempty"`
}

// ReportGroup_ReportExportConfig AWS CloudFormation Resource (AWS::CodeBuild::ReportGroup.ReportExportConfig)
type ReportGroup_ReportExportConfig struct {
	ExportConfigType string                            `json:"ExportConfigType,omitempty"`
	S3Destination    *ReportGroup_S3ReportExportConfig `json:"S3Destination,omitempty"`
}

// ReportGroup_S3ReportExportConfig AWS CloudFormation Resource (AWS::CodeBuild::ReportGroup.S3ReportExportConfig)
type ReportGroup_S3ReportExportConfig struct {
	Bucket             string `json:"Bucket,omitempty"`
	EncryptionDisabled bool   `json:"EncryptionDisabled,omitempty"`
	EncryptionKey      string `json:"EncryptionKey,omitempty"`
	Packaging          string `json:"Packaging,omitempty"`
	Path               string `json:"Path,omitempty"`
}

// AWSCloudFormationType returns the AWS CloudFormation resource type
func (r *ReportGroup) AWSCloudFormationType() string {
	return "AWS::CodeBuild::ReportGroup"
}

// MarshalJSON is a custom JSON marshalling hook that embeds this object into
// an AWS CloudFormation JSON resource's 'Properties' field and adds a 'Type'.
func (r *ReportGroup) MarshalJSON() ([]byte, error) {
	type Properties ReportGroup
	return json.Marshal(&struct {
		Type       string
		Properties Properties
	}{
		Type:       r.AWSCloudFormationType(),
		Properties: (Properties)(*r),
	})
}
