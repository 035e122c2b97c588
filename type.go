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

import (
	"math/rand"

	"github.com/avrocodec/avro/internal/bytetap"
)

// Kind tags the variant of a Type: one of the eight primitives or one
// of the six complex kinds. Every kind is known statically; there is
// no open inheritance.
type Kind int

const (
	KindNull Kind = iota + 1
	KindBoolean
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindBytes
	KindString
	KindEnum
	KindFixed
	KindArray
	KindMap
	KindUnion
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindEnum:
		return "enum"
	case KindFixed:
		return "fixed"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindUnion:
		return "union"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// isPrimitiveName reports whether s names one of the eight primitives.
func isPrimitiveName(s string) bool {
	switch s {
	case "null", "boolean", "int", "long", "float", "double", "bytes", "string":
		return true
	default:
		return false
	}
}

// FromStringOptions controls FromString's leniency.
type FromStringOptions struct {
	// CoerceBuffers allows a JSON array of byte-range integers to
	// satisfy a bytes/fixed type. A JSON string whose runes are each in
	// 0..255 is accepted for bytes/fixed whether or not it is set.
	CoerceBuffers bool
}

// CloneOptions controls Clone's behavior.
type CloneOptions struct {
	// CoerceBuffers allows strings and JSON-array forms where
	// bytes/fixed are expected.
	CoerceBuffers bool
	// FieldHook is invoked on each record field during cloning; its
	// return value replaces the cloned value.
	FieldHook func(field *Field, value interface{}, recordType *RecordType) interface{}
	// WrapUnions accepts the bare value of any branch whose type
	// unambiguously matches a union reader's branch set, wrapping it
	// into {branch: value}. An ambiguous match fails.
	WrapUnions bool
}

// Type is the common capability set every schema node exposes: one
// polymorphic interface over a closed set of kinds.
type Type interface {
	// Kind reports which of the fourteen variants this node is.
	Kind() Kind
	// AvroName returns the fully qualified name for a named type
	// (enum, fixed, record); for every other kind it returns the zero
	// QualifiedName.
	AvroName() QualifiedName
	// IsValid reports whether v is a legal value of this type.
	IsValid(v interface{}) bool
	// Encode writes v's binary encoding to tap. When lax is false, v
	// must be valid; when lax is true, Encode writes whatever it can
	// and the caller inspects tap.Err afterward.
	Encode(tap *bytetap.Tap, v interface{}, lax bool)
	// Decode reads one value from tap, or sets tap.Err on malformed
	// input.
	Decode(tap *bytetap.Tap) interface{}
	// Skip advances tap past one value without materializing it.
	Skip(tap *bytetap.Tap)
	// String returns this type's canonical schema JSON text.
	String() string
	// FromString converts a JSON-decoded generic value (as produced by
	// encoding/json's default unmarshaling into interface{}) into this
	// type's value representation.
	FromString(raw interface{}, opts FromStringOptions) (interface{}, error)
	// ToJSON renders a valid value of this type using Avro's JSON value
	// conventions.
	ToJSON(v interface{}) (interface{}, error)
	// Clone deep-copies v, applying opts.
	Clone(v interface{}, opts CloneOptions) (interface{}, error)
	// Random returns a valid value, driven by r. Intended for tests.
	Random(r *rand.Rand) interface{}
	// CreateResolver compiles a decoder that reads writer-encoded
	// bytes and produces values shaped like this (reader) type.
	CreateResolver(writer Type) (*Resolver, error)
}

// branchTag returns the wire/JSON tag used to label a union branch's
// value: the bare primitive name, or a named type's fully qualified
// name.
func branchTag(t Type) string {
	if name := t.AvroName(); !name.IsZero() {
		return name.String()
	}
	return t.Kind().String()
}
