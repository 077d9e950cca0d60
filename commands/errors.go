package commands

import (
	"fmt"
)

// AuthenticationError indicates the service account key file is missing or malformed,
// or that the requested scopes were rejected. Fatal - the command does not retry.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication/authorization error (%v)", e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// NotFoundError indicates that no workbook with the requested name is accessible to the
// authenticated identity.
type NotFoundError struct {
	Workbook string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no workbook '%s' accessible to the authenticated account", e.Workbook)
}

// RemoteWriteError wraps a failed worksheet mutation (resizing the grid or appending a
// row). A failure partway through an upload leaves the rows already appended in place.
type RemoteWriteError struct {
	Op  string
	Err error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("error writing to worksheet - %s (%v)", e.Op, e.Err)
}

func (e *RemoteWriteError) Unwrap() error {
	return e.Err
}

// RemoteReadError wraps a failed worksheet read.
type RemoteReadError struct {
	Err error
}

func (e *RemoteReadError) Error() string {
	return fmt.Sprintf("unable to retrieve data from worksheet (%v)", e.Err)
}

func (e *RemoteReadError) Unwrap() error {
	return e.Err
}
