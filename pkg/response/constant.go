package response

const (
	// MessageSuccess is the message body for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned when internal details must not leak.
	DefaultErrorMessage = "Something went wrong"

	// BadRequestErrorCode is the generic client error code.
	BadRequestErrorCode = 1

	// InternalServerErrorCode is the generic server error code.
	InternalServerErrorCode = 500
)
