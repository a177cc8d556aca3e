// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package catalog

import (
	"errors"
	"strings"
)

var (
	// ErrMissingComponents indicates the document has no components.schemas section.
	ErrMissingComponents = errors.New("no components.schemas present in OpenRPC spec")

	// ErrUnknownReference matches a $ref pointing to a name absent from the catalog.
	ErrUnknownReference = errors.New("unknown reference")

	// ErrMalformedReference matches a $ref without a path separator.
	ErrMalformedReference = errors.New("malformed reference")

	// ErrCyclicReference matches a $ref chain that leads back to a schema still being resolved.
	ErrCyclicReference = errors.New("cyclic reference")
)

// ReferenceError describes a $ref that could not be resolved.
type ReferenceError struct {
	// Ref is the reference string as written in the document.
	Ref string
	// Chain lists the schema names being resolved when a cycle was found.
	Chain []string
	// kind is one of the reference sentinels above.
	kind error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := e.kind.Error()
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if len(e.Chain) > 0 {
		msg += " (" + strings.Join(e.Chain, " -> ") + ")"
	}
	return msg
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ReferenceError) Is(target error) bool {
	return target == e.kind
}
