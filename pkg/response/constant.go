package response

const (
	// MessageInternalError is returned for panics and unmapped errors.
	MessageInternalError = "Internal server error"
	// MessageBadRequest is returned for errors that are not HTTPErrors but came from request parsing.
	MessageBadRequest = "Invalid request body"
)
