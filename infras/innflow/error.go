package innflow

import (
	"fmt"
	"net/http"
)

const (
	OpCreateGuest   = "create guest"
	OpCreateBooking = "create booking"
	OpListRooms     = "list rooms"
	OpMyBookings    = "my bookings"
)

const (
	ReasonCreateGuest   = "Failed to create guest"
	ReasonCreateBooking = "Failed to create booking"
)

// Error describes a remote call that did not produce a usable response.
// Status is 0 when no response was received. Reason is the user-facing message
// for the operation and is empty when the call failed before the server answered.
type Error struct {
	Op     string
	Status int
	Reason string
	Cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Cause != nil:
		return fmt.Sprintf("innflow %s: status %d: %v", e.Op, e.Status, e.Cause)
	case e.Status != 0:
		return fmt.Sprintf("innflow %s: status %d", e.Op, e.Status)
	case e.Cause != nil:
		return fmt.Sprintf("innflow %s: %v", e.Op, e.Cause)
	default:
		return "innflow " + e.Op + ": failed"
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Message returns the text a guest should see for this failure.
func (e *Error) Message() string {
	return e.Reason
}

func reasonFor(op string) string {
	switch op {
	case OpCreateGuest:
		return ReasonCreateGuest
	case OpCreateBooking:
		return ReasonCreateBooking
	default:
		return ""
	}
}

func statusError(op string, status int, body []byte) *Error {
	var cause error
	if len(body) > 0 {
		cause = fmt.Errorf("%s: %s", http.StatusText(status), truncate(body))
	}

	return &Error{
		Op:     op,
		Status: status,
		Reason: reasonFor(op),
		Cause:  cause,
	}
}

func truncate(body []byte) string {
	const limit = 256

	if len(body) <= limit {
		return string(body)
	}

	return string(body[:limit]) + "..."
}
