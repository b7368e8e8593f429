// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides error types carrying HTTP status codes from remote
responses.

The GitHub client wraps failed responses in a CodedError so higher layers
can distinguish a missing remote resource from a transport or server
failure without string matching:

	// Wrap a remote failure with the response status
	err := httperr.WithCode(fmt.Errorf("fetching %s", url), resp.StatusCode)

	// Classify it later, anywhere up the call stack
	if httperr.IsStatus(err, http.StatusNotFound) {
		// the skill or branch does not exist
	}

# Error Wrapping

CodedError supports the standard Go error wrapping pattern:

	sentinel := errors.New("remote host error")
	err := httperr.WithCode(sentinel, http.StatusBadGateway)

	// errors.Is works through the wrapper
	if errors.Is(err, sentinel) {
		// handle specific error
	}

	// errors.As can extract the CodedError
	var coded *httperr.CodedError
	if errors.As(err, &coded) {
		log.Printf("HTTP %d: %s", coded.HTTPCode(), coded.Error())
	}

Code returns 0 for errors with no CodedError in their chain, signalling
that no remote response was involved (for example a connection failure).
*/
package httperr
