package codebuild

const (

	// ErrCodeAccountLimitExceededException for service response error code
	// "AccountLimitExceededException".
	//
	// An AWS service limit was exceeded for the calling AWS account.
	ErrCodeAccountLimitExceededException = "AccountLimitExceededException"

	// ErrCodeInvalidInputException for service response error code
	// "InvalidInputException".
	//
	// The input value that was provided is not valid.
	ErrCodeInvalidInputException = "InvalidInputException"

	// ErrCodeOAuthProviderException for service response error code
	// "OAuthProviderException".
	//
	// There was a problem with the underlying OAuth provider.
	ErrCodeOAuthProviderException = "OAuthProviderException"

	// ErrCodeResourceAlreadyExistsException for service response error code
	// "ResourceAlreadyExistsException".
	//
	// The specified AWS resource cannot be created, because an AWS resource
	// with the same settings already exists.
	ErrCodeResourceAlreadyExistsException = "ResourceAlreadyExistsException"

	// ErrCodeResourceNotFoundException for service response error code
	// "ResourceNotFoundException".
	//
	// The specified AWS resource cannot be found.
	ErrCodeResourceNotFoundException = "ResourceNotFoundException"
)

// ErrorCodes returns every service error code of the API.
func ErrorCodes() []string {
	return []string{
		ErrCodeAccountLimitExceededException,
		ErrCodeInvalidInputException,
		ErrCodeOAuthProviderException,
		ErrCodeResourceAlreadyExistsException,
		ErrCodeResourceNotFoundException,
	}
}
