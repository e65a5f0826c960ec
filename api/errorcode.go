package api

import "github.com/civic-guardian/civic-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountNotFound.Error(),

		1200: store.ErrComplaintNotFound.Error(),
		1201: store.ErrInvalidStateChange.Error(),

		1300: store.ErrInvalidVoteKind.Error(),
		1301: store.ErrDuplicateVote.Error(),
		1302: "vote not recorded, please retry",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountNotFound = errorJSON(1100)

	errorComplaintNotFound  = errorJSON(1200)
	errorInvalidStateChange = errorJSON(1201)

	errorInvalidVoteKind = errorJSON(1300)
	errorDuplicateVote   = errorJSON(1301)
	errorVoteNotRecorded = errorJSON(1302)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
