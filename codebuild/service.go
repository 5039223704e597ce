package codebuild

// Service information constants
const (
	ServiceName  = "codebuild"          // Name of service.
	EndpointsID  = ServiceName          // ID to lookup a service endpoint with.
	ServiceID    = "CodeBuild"          // ServiceID is a unique identifier of a specific service.
	APIVersion   = "2016-10-06"         // Version of the API the model describes.
	TargetPrefix = "CodeBuild_20161006" // Prefix of the X-Amz-Target header for JSON requests.
)
