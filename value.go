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
	"encoding/json"

	"github.com/avrocodec/avro/internal/bytetap"
)

// GenericRecord wraps a record value with its RecordType so callers get
// per-record introspection as ordinary Go methods: IsValid, Encode,
// String, and Clone.
type GenericRecord struct {
	Type   *RecordType
	Fields map[string]interface{}
}

// NewRecord wraps fields as a value of record type t. It does not
// validate fields; call IsValid to check.
func (t *RecordType) NewRecord(fields map[string]interface{}) *GenericRecord {
	return &GenericRecord{Type: t, Fields: fields}
}

// IsValid reports whether every field holds a value legal for its
// declared type.
func (r *GenericRecord) IsValid() bool {
	return r.Type.IsValid(r.Fields)
}

// Encode returns the Avro binary encoding of r. When lax is false,
// every field must be valid; when lax is true, Encode writes whatever
// it can and returns an error only if the buffer genuinely cannot
// hold the result.
func (r *GenericRecord) Encode(lax bool) ([]byte, error) {
	if !lax && !r.IsValid() {
		return nil, newError(ValidationError, "record %s has one or more invalid fields", r.Type.Name)
	}
	size := 256
	for attempt := 0; attempt < 32; attempt++ {
		tap := bytetap.New(make([]byte, size))
		r.Type.Encode(tap, r.Fields, lax)
		if !tap.Err {
			return tap.Buf[:tap.Pos], nil
		}
		size *= 2
	}
	return nil, newError(ValidationError, "failed to encode record %s", r.Type.Name)
}

// String renders r using Avro's JSON value conventions.
func (r *GenericRecord) String() string {
	j, err := r.Type.ToJSON(r.Fields)
	if err != nil {
		return ""
	}
	b, err := json.Marshal(j)
	if err != nil {
		return ""
	}
	return string(b)
}

// Clone deep-copies r, applying opts.
func (r *GenericRecord) Clone(opts CloneOptions) (*GenericRecord, error) {
	c, err := r.Type.Clone(r.Fields, opts)
	if err != nil {
		return nil, err
	}
	return &GenericRecord{Type: r.Type, Fields: c.(map[string]interface{})}, nil
}

// Get returns the value of field name, or nil if it is unset.
func (r *GenericRecord) Get(name string) interface{} {
	return r.Fields[name]
}

// WrapUnion builds a union value for the branch identified by tag
// (its Kind name for a primitive, its fully qualified name otherwise).
// A nil value always represents the null branch regardless of tag.
func WrapUnion(tag string, value interface{}) interface{} {
	if value == nil {
		return nil
	}
	return map[string]interface{}{tag: value}
}

// UnwrapUnion splits a union value into its branch tag and inner
// value. A bare nil unwraps to ("null", nil, true).
func UnwrapUnion(v interface{}) (tag string, value interface{}, ok bool) {
	if v == nil {
		return "null", nil, true
	}
	m, isMap := v.(map[string]interface{})
	if !isMap || len(m) != 1 {
		return "", nil, false
	}
	for k, val := range m {
		return k, val, true
	}
	return "", nil, false
}
