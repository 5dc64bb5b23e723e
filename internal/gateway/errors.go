// Package gateway talks to the Cine Catch REST backend and maps its DTO
// shapes onto the domain model.  All remote failures collapse into the
// small taxonomy below so handlers can translate them uniformly.
package gateway

import (
    "errors"
    "fmt"
)

// Sentinel failures of a backend call.  Handlers should translate these
// into a transient user-visible notice; none of them is fatal.
var (
    // ErrNetwork wraps transport-level failures (DNS, refused connection,
    // broken pipe) before any HTTP status was received.
    ErrNetwork = errors.New("gateway: network error")

    // ErrTimeout marks a request aborted by the configured deadline.  The
    // in-flight request is cancelled, no handle outlives the timeout.
    ErrTimeout = errors.New("gateway: request timeout")

    // ErrDecode marks a 2xx response whose body could not be decoded.
    ErrDecode = errors.New("gateway: undecodable response")
)

// HTTPError is a non-2xx response from the backend.
type HTTPError struct {
    Status int
    Path   string
}

func (e *HTTPError) Error() string {
    return fmt.Sprintf("gateway: %s returned status %d", e.Path, e.Status)
}

// StatusOf extracts the HTTP status from err, or 0 when err is not an
// *HTTPError.
func StatusOf(err error) int {
    var he *HTTPError
    if errors.As(err, &he) {
        return he.Status
    }
    return 0
}
