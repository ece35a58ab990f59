// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crossref

import (
	"errors"
	"fmt"
)

// ErrNoAuthors indicates a single-work response carried no author list.
var ErrNoAuthors = errors.New("work has no authors")

// FetchError reports a request that did not produce a successful response:
// either the transport failed (Status is 0) or the server answered with a
// non-200 status.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("crossref request %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("crossref request %s returned HTTP %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MalformedResponseError reports a response body that could not be decoded
// into the expected shape.
type MalformedResponseError struct {
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed crossref response from %s: %v", e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsFetchError reports whether err is, or wraps, a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsMalformed reports whether err is, or wraps, a *MalformedResponseError.
func IsMalformed(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}
