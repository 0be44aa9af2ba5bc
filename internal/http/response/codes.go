package response

// Business status codes carried in the response envelope. Clients
// branch on these rather than on message text.
const (
	CodeOK                = 0
	CodeBadRequest        = 400
	CodeUnauthorized      = 401
	CodeForbidden         = 403
	CodeNotFound          = 404
	CodeConflict          = 409
	CodeIllegalTransition = 422
	CodeTooManyRequests   = 429
	CodeInternal          = 500
)
