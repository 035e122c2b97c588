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
	"math"
	"math/big"
	"math/rand"
	"time"

	"github.com/avrocodec/avro/internal/bytetap"
	"github.com/avrocodec/avro/internal/logical"
)

// primitiveType implements Type for each of the eight primitives. Every
// primitive is a package-level singleton (Null, Boolean, Int, ...) so
// that two occurrences of "int" in a schema are the same Go value,
// which lets the resolver cache key on pointer identity.
type primitiveType struct {
	kind Kind
	// logical carries a schema's "logicalType" attribute (uuid,
	// decimal, date, timestamp-millis, timestamp-micros) as opaque
	// metadata; it never changes the physical encoding below. Singletons
	// (Null, Int, ...) always have it unset; only a type node parsed
	// from an object with a "logicalType" key gets a private instance
	// carrying one.
	logical string
	// scale is the schema's "scale" attribute; only meaningful when
	// logical == "decimal" and kind == KindBytes.
	scale int
}

var (
	Null    Type = &primitiveType{kind: KindNull}
	Boolean Type = &primitiveType{kind: KindBoolean}
	Int     Type = &primitiveType{kind: KindInt}
	Long    Type = &primitiveType{kind: KindLong}
	Float   Type = &primitiveType{kind: KindFloat}
	Double  Type = &primitiveType{kind: KindDouble}
	Bytes   Type = &primitiveType{kind: KindBytes}
	String  Type = &primitiveType{kind: KindString}
)

// primitiveByName returns the singleton for a primitive type name, or
// nil if s does not name one.
func primitiveByName(s string) Type {
	switch s {
	case "null":
		return Null
	case "boolean":
		return Boolean
	case "int":
		return Int
	case "long":
		return Long
	case "float":
		return Float
	case "double":
		return Double
	case "bytes":
		return Bytes
	case "string":
		return String
	default:
		return nil
	}
}

func (t *primitiveType) Kind() Kind               { return t.kind }
func (t *primitiveType) AvroName() QualifiedName  { return QualifiedName{} }
func (t *primitiveType) String() string           { return `"` + t.kind.String() + `"` }

func (t *primitiveType) IsValid(v interface{}) bool {
	switch t.kind {
	case KindNull:
		return v == nil
	case KindBoolean:
		_, ok := v.(bool)
		return ok
	case KindInt:
		_, ok := v.(int32)
		return ok
	case KindLong:
		_, ok := v.(int64)
		return ok
	case KindFloat:
		_, ok := v.(float32)
		return ok
	case KindDouble:
		_, ok := v.(float64)
		return ok
	case KindBytes:
		_, ok := v.([]byte)
		return ok
	case KindString:
		_, ok := v.(string)
		return ok
	}
	return false
}

func (t *primitiveType) Encode(tap *bytetap.Tap, v interface{}, lax bool) {
	switch t.kind {
	case KindNull:
		if v != nil && !lax {
			tap.Err = true
		}
	case KindBoolean:
		b, ok := v.(bool)
		if !ok && !lax {
			tap.Err = true
			return
		}
		tap.WriteBoolean(b)
	case KindInt:
		n, ok := v.(int32)
		if !ok && !lax {
			tap.Err = true
			return
		}
		tap.WriteInt(n)
	case KindLong:
		n, ok := v.(int64)
		if !ok && !lax {
			tap.Err = true
			return
		}
		tap.WriteLong(n)
	case KindFloat:
		f, ok := v.(float32)
		if !ok && !lax {
			tap.Err = true
			return
		}
		tap.WriteFloat(f)
	case KindDouble:
		f, ok := v.(float64)
		if !ok && !lax {
			tap.Err = true
			return
		}
		tap.WriteDouble(f)
	case KindBytes:
		b, ok := v.([]byte)
		if !ok && !lax {
			tap.Err = true
			return
		}
		tap.WriteBytes(b)
	case KindString:
		s, ok := v.(string)
		if !ok && !lax {
			tap.Err = true
			return
		}
		tap.WriteString(s)
	}
}

func (t *primitiveType) Decode(tap *bytetap.Tap) interface{} {
	switch t.kind {
	case KindNull:
		return nil
	case KindBoolean:
		return tap.ReadBoolean()
	case KindInt:
		return tap.ReadInt()
	case KindLong:
		return tap.ReadLong()
	case KindFloat:
		return tap.ReadFloat()
	case KindDouble:
		return tap.ReadDouble()
	case KindBytes:
		return tap.ReadBytes()
	case KindString:
		return tap.ReadString()
	}
	return nil
}

func (t *primitiveType) Skip(tap *bytetap.Tap) {
	switch t.kind {
	case KindNull:
		return
	case KindBoolean:
		tap.ReadBoolean()
	case KindInt:
		tap.SkipLong()
	case KindLong:
		tap.SkipLong()
	case KindFloat:
		tap.SkipFloat()
	case KindDouble:
		tap.SkipDouble()
	case KindBytes:
		tap.SkipBytes()
	case KindString:
		tap.SkipBytes()
	}
}

func (t *primitiveType) FromString(raw interface{}, opts FromStringOptions) (interface{}, error) {
	switch t.kind {
	case KindNull:
		if raw != nil {
			return nil, newError(ArgumentError, "expected null, got %T", raw)
		}
		return nil, nil
	case KindBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, newError(ArgumentError, "expected boolean, got %T", raw)
		}
		return b, nil
	case KindInt:
		if t.logical == "date" {
			s, ok := raw.(string)
			if !ok {
				return nil, newError(ArgumentError, "expected date string, got %T", raw)
			}
			d, err := time.Parse("2006-01-02", s)
			if err != nil {
				return nil, newError(ArgumentError, "invalid date: %v", err)
			}
			return logical.DaysFromDate(d), nil
		}
		n, ok := asNumber(raw)
		if !ok || n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return nil, newError(ArgumentError, "expected int, got %v", raw)
		}
		return int32(n), nil
	case KindLong:
		if t.logical == "timestamp-millis" || t.logical == "timestamp-micros" {
			s, ok := raw.(string)
			if !ok {
				return nil, newError(ArgumentError, "expected timestamp string, got %T", raw)
			}
			ts, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				return nil, newError(ArgumentError, "invalid timestamp: %v", err)
			}
			if t.logical == "timestamp-millis" {
				return logical.MillisFromTimestamp(ts), nil
			}
			return logical.MicrosFromTimestamp(ts), nil
		}
		n, ok := asNumber(raw)
		if !ok || n != math.Trunc(n) {
			return nil, newError(ArgumentError, "expected long, got %v", raw)
		}
		return int64(n), nil
	case KindFloat:
		n, ok := asNumber(raw)
		if !ok {
			return nil, newError(ArgumentError, "expected float, got %v", raw)
		}
		return float32(n), nil
	case KindDouble:
		n, ok := asNumber(raw)
		if !ok {
			return nil, newError(ArgumentError, "expected double, got %v", raw)
		}
		return n, nil
	case KindBytes:
		if t.logical == "decimal" {
			return decimalFromString(raw, t.scale)
		}
		return fromStringBuffer(raw, opts)
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, newError(ArgumentError, "expected string, got %T", raw)
		}
		if t.logical == "uuid" {
			id, err := logical.ParseUUID(s)
			if err != nil {
				return nil, newError(ArgumentError, "invalid uuid: %v", err)
			}
			return logical.FormatUUID(id), nil
		}
		return s, nil
	}
	return nil, newError(ArgumentError, "unsupported primitive kind")
}

// decimalFromString parses raw as decimal text (e.g. "12.34") and
// encodes it as the two's-complement big-endian bytes of its unscaled
// value, per Avro's bytes/decimal convention.
func decimalFromString(raw interface{}, scale int) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, newError(ArgumentError, "expected decimal string, got %T", raw)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, newError(ArgumentError, "not a decimal number: %q", s)
	}
	return logical.DecimalToBytes(r, scale), nil
}

// decimalToString renders b, the unscaled two's-complement bytes of a
// bytes/decimal or fixed/decimal value, as decimal text.
func decimalToString(b []byte, scale int) string {
	return logical.DecimalFromBytes(b, scale).FloatString(scale)
}

// asNumber accepts the numeric shapes encoding/json produces
// (float64) as well as Go's own numeric literals, for callers that
// build raw trees by hand rather than via json.Unmarshal.
func asNumber(raw interface{}) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// fromStringBuffer decodes a bytes-typed value: a string whose runes
// are each a byte in [0,255] (Avro's JSON convention for bytes), or,
// when opts.CoerceBuffers is set, a JSON array of integers.
func fromStringBuffer(raw interface{}, opts FromStringOptions) (interface{}, error) {
	switch r := raw.(type) {
	case string:
		b := make([]byte, 0, len(r))
		for _, ru := range r {
			if ru > 0xff {
				return nil, newError(ArgumentError, "byte string contains rune outside 0..255: %q", r)
			}
			b = append(b, byte(ru))
		}
		return b, nil
	case []byte:
		return r, nil
	case []interface{}:
		if !opts.CoerceBuffers {
			return nil, newError(ArgumentError, "expected byte string, got array")
		}
		b := make([]byte, 0, len(r))
		for _, el := range r {
			n, ok := asNumber(el)
			if !ok || n < 0 || n > 255 {
				return nil, newError(ArgumentError, "byte array element out of range: %v", el)
			}
			b = append(b, byte(n))
		}
		return b, nil
	default:
		return nil, newError(ArgumentError, "expected byte string, got %T", raw)
	}
}

func (t *primitiveType) ToJSON(v interface{}) (interface{}, error) {
	switch t.kind {
	case KindBytes:
		b, ok := v.([]byte)
		if !ok {
			return nil, newError(ValidationError, "expected []byte, got %T", v)
		}
		if t.logical == "decimal" {
			return decimalToString(b, t.scale), nil
		}
		runes := make([]rune, len(b))
		for i, c := range b {
			runes[i] = rune(c)
		}
		return string(runes), nil
	case KindString:
		if t.logical == "uuid" {
			if !t.IsValid(v) {
				return nil, newError(ValidationError, "invalid uuid value: %v", v)
			}
			return v, nil
		}
		if !t.IsValid(v) {
			return nil, newError(ValidationError, "invalid %s value: %v", t.kind, v)
		}
		return v, nil
	case KindInt:
		if t.logical == "date" {
			d, ok := v.(int32)
			if !ok {
				return nil, newError(ValidationError, "invalid date value: %v", v)
			}
			return logical.DateFromDays(d).Format("2006-01-02"), nil
		}
		if !t.IsValid(v) {
			return nil, newError(ValidationError, "invalid %s value: %v", t.kind, v)
		}
		return v, nil
	case KindLong:
		if t.logical == "timestamp-millis" || t.logical == "timestamp-micros" {
			n, ok := v.(int64)
			if !ok {
				return nil, newError(ValidationError, "invalid timestamp value: %v", v)
			}
			if t.logical == "timestamp-millis" {
				return logical.TimestampFromMillis(n).Format(time.RFC3339Nano), nil
			}
			return logical.TimestampFromMicros(n).Format(time.RFC3339Nano), nil
		}
		if !t.IsValid(v) {
			return nil, newError(ValidationError, "invalid %s value: %v", t.kind, v)
		}
		return v, nil
	default:
		if !t.IsValid(v) {
			return nil, newError(ValidationError, "invalid %s value: %v", t.kind, v)
		}
		return v, nil
	}
}

// Clone copies the physical value unchanged; a logicalType never
// alters what Go type the value holds (uuid/date/timestamp stay
// string/int32/int64, decimal stays []byte), so no logical-specific
// handling is needed beyond the existing bytes copy below.
func (t *primitiveType) Clone(v interface{}, opts CloneOptions) (interface{}, error) {
	if _, isStr := v.(string); t.kind == KindBytes && (!isStr || opts.CoerceBuffers) {
		b, err := fromStringBuffer(v, FromStringOptions{CoerceBuffers: opts.CoerceBuffers})
		if err == nil {
			if bs, ok := b.([]byte); ok {
				out := make([]byte, len(bs))
				copy(out, bs)
				return out, nil
			}
		}
	}
	if !t.IsValid(v) {
		return nil, newError(ValidationError, "invalid %s value: %v", t.kind, v)
	}
	return v, nil
}

func (t *primitiveType) Random(r *rand.Rand) interface{} {
	switch t.kind {
	case KindNull:
		return nil
	case KindBoolean:
		return r.Intn(2) == 1
	case KindInt:
		return int32(r.Intn(2000) - 1000)
	case KindLong:
		return int64(r.Intn(2000) - 1000)
	case KindFloat:
		return float32(r.Float64()*200 - 100)
	case KindDouble:
		return r.Float64()*200 - 100
	case KindBytes:
		n := r.Intn(8)
		b := make([]byte, n)
		r.Read(b)
		return b
	case KindString:
		n := r.Intn(8)
		runes := make([]rune, n)
		for i := range runes {
			runes[i] = rune('a' + r.Intn(26))
		}
		return string(runes)
	}
	return nil
}

func (t *primitiveType) CreateResolver(writer Type) (*Resolver, error) {
	return CreateResolver(t, writer)
}

// LogicalTypeOf returns t's "logicalType" attribute, if any, for
// primitive, fixed, and bytes nodes. It returns "" for every other
// kind and for a node with no logicalType attribute.
func LogicalTypeOf(t Type) string {
	switch v := t.(type) {
	case *primitiveType:
		return v.logical
	case *FixedType:
		return v.Logical
	default:
		return ""
	}
}
