/**
 * Copyright 2025 Confluent Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package avro

import "fmt"

// ErrorKind classifies the failure categories this package raises. A
// single exported error type carries the kind rather than one Go type
// per category.
type ErrorKind int

const (
	// SchemaError covers unknown type names, duplicate names, invalid
	// unions, invalid defaults, duplicate fields, and primitive
	// redefinition, all raised while parsing a schema.
	SchemaError ErrorKind = iota + 1
	// ValidationError is raised when a value fails IsValid during a
	// strict encode or clone.
	ValidationError
	// DecodeError covers truncated input, a bad boolean byte, an
	// overlong varint, an unknown union branch index, an unknown enum
	// ordinal, and trailing bytes when not permitted.
	DecodeError
	// ResolveError covers incompatible writer/reader schemas, an
	// ambiguous alias match, and a missing reader field with no
	// default, all raised from CreateResolver.
	ResolveError
	// ArgumentError covers a mismatched resolver passed to
	// UnmarshalWith and unrecognized FromString input.
	ArgumentError
)

func (k ErrorKind) String() string {
	switch k {
	case SchemaError:
		return "SchemaError"
	case ValidationError:
		return "ValidationError"
	case DecodeError:
		return "DecodeError"
	case ResolveError:
		return "ResolveError"
	case ArgumentError:
		return "ArgumentError"
	default:
		return "Error"
	}
}

// Error is the single user-facing error type this package raises. It
// carries a Kind so callers can branch on failure category without a
// family of Go error types.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}
