package client

import "fmt"

// APIError is a structured error document returned by the gateway with a
// 4xx or 5xx status.
type APIError struct {
	Location   string `json:"location"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: %s (%s)", e.Message, e.Code)
}

// UnexpectedKind classifies a gateway round trip that did not produce either
// a decodable result or a decodable error document.
type UnexpectedKind int

const (
	// KindSuccessInvalidData is a 2xx response whose body failed to decode.
	KindSuccessInvalidData UnexpectedKind = iota
	// KindSuccessNoData is a 2xx response with an empty body.
	KindSuccessNoData
	// KindErrorInvalidData is a 4xx or 5xx response whose body is not a
	// valid error document.
	KindErrorInvalidData
	// KindErrorNoData is a 4xx or 5xx response with an empty body.
	KindErrorNoData
	// KindUnrecognizedStatus is any status outside 2xx, 4xx, and 5xx.
	KindUnrecognizedStatus
	// KindNoResponse is a transport failure before any response arrived.
	KindNoResponse
)

func (k UnexpectedKind) String() string {
	switch k {
	case KindSuccessInvalidData:
		return "success with invalid data"
	case KindSuccessNoData:
		return "success with no data"
	case KindErrorInvalidData:
		return "error with invalid data"
	case KindErrorNoData:
		return "error with no data"
	case KindUnrecognizedStatus:
		return "unrecognized status code"
	case KindNoResponse:
		return "no error nor response"
	default:
		return "unknown"
	}
}

// UnexpectedError reports a gateway round trip the client could not interpret.
type UnexpectedError struct {
	Kind       UnexpectedKind
	StatusCode int
	Err        error
}

func (e *UnexpectedError) Error() string {
	msg := "gateway: " + e.Kind.String()
	if e.Kind == KindUnrecognizedStatus {
		msg = fmt.Sprintf("%s %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
