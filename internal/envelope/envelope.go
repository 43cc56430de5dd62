// Package envelope defines the uniform result wrapper every API-tier
// operation returns:
//
//	{"statusCode": 200, "isSuccess": true, "errorMessages": [], "result": ...}
//
// The result is a tagged payload (entity, list or absent) on the producing
// side and is only decoded into a concrete type where it is consumed.
package envelope

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrAbsent is returned when decoding a payload that carries no result.
var ErrAbsent = errors.New("envelope: result is absent")

// Response is the wire envelope. Build it with OK, List, Empty or Fail; a
// Response is created per request and not modified after it is returned.
type Response struct {
	StatusCode    int      `json:"statusCode"`
	IsSuccess     bool     `json:"isSuccess"`
	ErrorMessages []string `json:"errorMessages"`
	Result        Payload  `json:"result"`
}

// OK wraps a single entity. A nil entity yields an absent result.
func OK(status int, entity any) Response {
	return Response{StatusCode: status, IsSuccess: true, ErrorMessages: []string{}, Result: EntityPayload(entity)}
}

// List wraps a list of entities. A nil slice is sent as [].
func List[T any](status int, items []T) Response {
	return Response{StatusCode: status, IsSuccess: true, ErrorMessages: []string{}, Result: ListPayload(items)}
}

// Empty is a success without a result, e.g. after update or delete.
func Empty(status int) Response {
	return Response{StatusCode: status, IsSuccess: true, ErrorMessages: []string{}}
}

// Fail is an unsuccessful response. The result is always absent and at
// least one message is present; the status text is used when none is given.
func Fail(status int, messages ...string) Response {
	msgs := make([]string, 0, len(messages))
	for _, m := range messages {
		if m != "" {
			msgs = append(msgs, m)
		}
	}
	if len(msgs) == 0 {
		msgs = append(msgs, http.StatusText(status))
	}
	return Response{StatusCode: status, IsSuccess: false, ErrorMessages: msgs}
}

// Err returns nil for a successful response and an error carrying the
// messages otherwise.
func (r Response) Err() error {
	if r.IsSuccess {
		return nil
	}
	return &Error{StatusCode: r.StatusCode, Messages: r.ErrorMessages}
}

// Error is an API-tier reported failure.
type Error struct {
	StatusCode int
	Messages   []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return http.StatusText(e.StatusCode)
	}
	return strings.Join(e.Messages, "; ")
}
