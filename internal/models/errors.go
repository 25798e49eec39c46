package models

import "errors"

// Sentinel errors
var (
	// ErrEmptyInput indicates the user submitted an empty video reference
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidRequest indicates invalid request data
	ErrInvalidRequest = errors.New("invalid request")

	// ErrVideoNotFound indicates the statistics lookup succeeded but carried no view count
	ErrVideoNotFound = errors.New("video not found")

	// ErrMalformedStatistics indicates a view count was present but not a non-negative integer
	ErrMalformedStatistics = errors.New("malformed statistics")

	// ErrUpstream indicates the statistics endpoint could not be reached or answered with an error
	ErrUpstream = errors.New("statistics upstream failure")

	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
)

// MessageInvalidURL is the only failure message users see. Bad links,
// missing videos and upstream failures are told apart in logs, metrics and
// HTTP status codes, never in the message.
const MessageInvalidURL = "enter a valid URL"

// UserMessage maps an estimator error to the single line shown next to the input.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return MessageInvalidURL
}
