// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"errors"
	"fmt"
)

var (
	ErrWrongArgCount = errors.New("wrong number of arguments")
	ErrEmptyArgument = errors.New("empty argument")
	ErrUnknownKind   = errors.New("unknown request kind")

	ErrClientUnavailable = errors.New("http client unavailable")
	ErrCallFailed        = errors.New("call failed")
)

// ValidationError is returned by Build; no network access has happened.
type ValidationError struct {
	Kind   Kind
	Reason error
	Want   int
	Got    int
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Reason, ErrWrongArgCount) {
		return fmt.Sprintf("%s: %v: want %d, got %d", e.Kind, e.Reason, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// TransportError is returned by Dispatch. Kind is ErrClientUnavailable or
// ErrCallFailed.
type TransportError struct {
	Kind error
	Op   string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{e.Kind, e.Err} }
