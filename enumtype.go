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

// EnumType is a named type whose values are one of a fixed list of
// symbols, carried on the wire as a zero-based ordinal.
type EnumType struct {
	Name    QualifiedName
	Aliases []QualifiedName
	Symbols []string
	Default string // optional; "" if the schema declared none.
}

func (t *EnumType) Kind() Kind              { return KindEnum }
func (t *EnumType) AvroName() QualifiedName { return t.Name }

func (t *EnumType) indexOf(symbol string) int {
	for i, s := range t.Symbols {
		if s == symbol {
			return i
		}
	}
	return -1
}

func (t *EnumType) IsValid(v interface{}) bool {
	s, ok := v.(string)
	return ok && t.indexOf(s) != -1
}

func (t *EnumType) Encode(tap *bytetap.Tap, v interface{}, lax bool) {
	s, ok := v.(string)
	idx := -1
	if ok {
		idx = t.indexOf(s)
	}
	if idx == -1 {
		tap.Err = true
		return
	}
	tap.WriteInt(int32(idx))
}

func (t *EnumType) Decode(tap *bytetap.Tap) interface{} {
	idx := tap.ReadInt()
	if tap.Err || int(idx) < 0 || int(idx) >= len(t.Symbols) {
		tap.Err = true
		return nil
	}
	return t.Symbols[idx]
}

func (t *EnumType) Skip(tap *bytetap.Tap) {
	tap.SkipLong()
}

func (t *EnumType) String() string {
	return CanonicalString(t)
}

func (t *EnumType) FromString(raw interface{}, opts FromStringOptions) (interface{}, error) {
	s, ok := raw.(string)
	if !ok || t.indexOf(s) == -1 {
		return nil, newError(ArgumentError, "not a symbol of enum %s: %v", t.Name, raw)
	}
	return s, nil
}

func (t *EnumType) ToJSON(v interface{}) (interface{}, error) {
	if !t.IsValid(v) {
		return nil, newError(ValidationError, "invalid enum %s value: %v", t.Name, v)
	}
	return v, nil
}

func (t *EnumType) Clone(v interface{}, opts CloneOptions) (interface{}, error) {
	if !t.IsValid(v) {
		return nil, newError(ValidationError, "invalid enum %s value: %v", t.Name, v)
	}
	return v, nil
}

func (t *EnumType) Random(r *rand.Rand) interface{} {
	if len(t.Symbols) == 0 {
		return ""
	}
	return t.Symbols[r.Intn(len(t.Symbols))]
}

func (t *EnumType) CreateResolver(writer Type) (*Resolver, error) {
	return CreateResolver(t, writer)
}

func (t *EnumType) hasAlias(name QualifiedName) bool {
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
