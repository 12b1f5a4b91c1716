package upstream

import (
	"errors"
	"fmt"
)

// Transport failure: the request never completed. Distinct from an
// application-level rejection so callers can tell the user the server is
// unreachable rather than that their input was refused.
var ErrUnreachable = errors.New("upstream unreachable")

// ErrMalformedResponse marks a response body that was not the JSON the
// API contract promises (an HTML error page, for example).
var ErrMalformedResponse = errors.New("upstream response malformed")

// Rejection is an application-level refusal: the API answered non-OK
// with a structured message meant for the end user.
type Rejection struct {
	Status  int
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("upstream rejected request (%d): %s", r.Status, r.Message)
}

// AsRejection extracts a Rejection from an error chain.
func AsRejection(err error) (*Rejection, bool) {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}
