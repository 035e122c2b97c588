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

// FixedType is a named, fixed-length byte sequence.
type FixedType struct {
	Name    QualifiedName
	Aliases []QualifiedName
	Size    int
	Logical string
	// Scale is the schema's "scale" attribute; only meaningful when
	// Logical == "decimal".
	Scale int
}

func (t *FixedType) Kind() Kind              { return KindFixed }
func (t *FixedType) AvroName() QualifiedName { return t.Name }

func (t *FixedType) IsValid(v interface{}) bool {
	b, ok := v.([]byte)
	return ok && len(b) == t.Size
}

func (t *FixedType) Encode(tap *bytetap.Tap, v interface{}, lax bool) {
	b, ok := v.([]byte)
	if !ok || len(b) != t.Size {
		if lax && ok {
			padded := make([]byte, t.Size)
			copy(padded, b)
			tap.WriteFixed(padded)
			return
		}
		tap.Err = true
		return
	}
	tap.WriteFixed(b)
}

func (t *FixedType) Decode(tap *bytetap.Tap) interface{} {
	return tap.ReadFixed(t.Size)
}

func (t *FixedType) Skip(tap *bytetap.Tap) {
	tap.SkipFixed(t.Size)
}

func (t *FixedType) String() string {
	return CanonicalString(t)
}

func (t *FixedType) FromString(raw interface{}, opts FromStringOptions) (interface{}, error) {
	if t.Logical == "decimal" {
		v, err := decimalFromString(raw, t.Scale)
		if err != nil {
			return nil, err
		}
		b, err := signExtend(v.([]byte), t.Size)
		if err != nil {
			return nil, newError(ArgumentError, "fixed %s: %v", t.Name, err)
		}
		return b, nil
	}
	v, err := fromStringBuffer(raw, opts)
	if err != nil {
		return nil, err
	}
	b := v.([]byte)
	if len(b) != t.Size {
		return nil, newError(ArgumentError, "fixed %s expects %d bytes, got %d", t.Name, t.Size, len(b))
	}
	return b, nil
}

// signExtend left-pads b, a minimal two's-complement big-endian
// integer, out to size bytes, preserving its sign. It errors if b
// already holds more than size bytes.
func signExtend(b []byte, size int) ([]byte, error) {
	if len(b) > size {
		return nil, newError(ArgumentError, "decimal value needs %d bytes, only %d available", len(b), size)
	}
	if len(b) == size {
		return b, nil
	}
	pad := byte(0x00)
	if len(b) > 0 && b[0]&0x80 != 0 {
		pad = 0xff
	}
	out := make([]byte, size)
	for i := 0; i < size-len(b); i++ {
		out[i] = pad
	}
	copy(out[size-len(b):], b)
	return out, nil
}

func (t *FixedType) ToJSON(v interface{}) (interface{}, error) {
	if !t.IsValid(v) {
		return nil, newError(ValidationError, "invalid fixed %s value", t.Name)
	}
	b := v.([]byte)
	if t.Logical == "decimal" {
		return decimalToString(b, t.Scale), nil
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes), nil
}

func (t *FixedType) Clone(v interface{}, opts CloneOptions) (interface{}, error) {
	if _, isStr := v.(string); isStr && !opts.CoerceBuffers {
		return nil, newError(ValidationError, "fixed %s expects bytes, got string", t.Name)
	}
	raw, err := fromStringBuffer(v, FromStringOptions{CoerceBuffers: opts.CoerceBuffers})
	if err != nil {
		return nil, err
	}
	b := raw.([]byte)
	if len(b) != t.Size {
		return nil, newError(ValidationError, "fixed %s expects %d bytes, got %d", t.Name, t.Size, len(b))
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (t *FixedType) Random(r *rand.Rand) interface{} {
	b := make([]byte, t.Size)
	r.Read(b)
	return b
}

func (t *FixedType) CreateResolver(writer Type) (*Resolver, error) {
	return CreateResolver(t, writer)
}

// hasAlias reports whether name matches t's name or any of its aliases.
func (t *FixedType) hasAlias(name QualifiedName) bool {
	if t.Name == name {
		return true
	}
	for _, a := range t.Aliases {
		if a == name {
			return true
		}
	}
	return false
}
