package common

import (
	"net/http"

	"github.com/bornholm/pettymatters/internal/http/handler/webui/common/component"
)

type Error struct {
	err         string
	userMessage string
	statusCode  int
	links       []component.LinkItem
}

// Links implements [WithErrorLinks].
func (e *Error) Links() []component.LinkItem {
	return e.links
}

// StatusCode implements HTTPError.
func (e *Error) StatusCode() int {
	return e.statusCode
}

// Error implements UserFacingError.
func (e *Error) Error() string {
	return e.err
}

// UserMessage implements UserFacingError.
func (e *Error) UserMessage() string {
	return e.userMessage
}

func NewError(err string, userMessage string, statusCode int, links ...component.LinkItem) *Error {
	return &Error{err, userMessage, statusCode, links}
}

var _ UserFacingError = &Error{}
var _ HTTPError = &Error{}
var _ WithErrorLinks = &Error{}

var userMessages = map[int]string{
	http.StatusBadRequest:            "The submitted form could not be read. Check it and try again.",
	http.StatusNotFound:              "This topic does not exist or was removed.",
	http.StatusRequestEntityTooLarge: "This message is too long to be posted.",
	http.StatusTooManyRequests:       "You are posting too fast. Please wait a moment before trying again.",
	http.StatusInternalServerError:   "Something went wrong on our side. Please try again later.",
}

// UserMessage returns the message shown to forum visitors for the given
// status code.
func UserMessage(statusCode int) string {
	if message, exists := userMessages[statusCode]; exists {
		return message
	}

	return http.StatusText(statusCode)
}

func NewHTTPError(statusCode int, links ...component.LinkItem) *Error {
	return &Error{http.StatusText(statusCode), UserMessage(statusCode), statusCode, links}
}
