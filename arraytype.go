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

// defaultBlockSize is not consulted by Encode. The format permits any
// positive count per block; this writer always emits one block holding
// every item of the array, which keeps the encoder simple.
const defaultBlockSize = 1 << 20

// ArrayType is a variable-length, homogeneous sequence.
type ArrayType struct {
	Items Type
}

func (t *ArrayType) Kind() Kind              { return KindArray }
func (t *ArrayType) AvroName() QualifiedName { return QualifiedName{} }

func (t *ArrayType) IsValid(v interface{}) bool {
	s, ok := v.([]interface{})
	if !ok {
		return false
	}
	for _, el := range s {
		if !t.Items.IsValid(el) {
			return false
		}
	}
	return true
}

func (t *ArrayType) Encode(tap *bytetap.Tap, v interface{}, lax bool) {
	s, ok := v.([]interface{})
	if !ok {
		if !lax {
			tap.Err = true
		}
		return
	}
	if len(s) > 0 {
		tap.WriteLong(int64(len(s)))
		for _, el := range s {
			t.Items.Encode(tap, el, lax)
			if tap.Err {
				return
			}
		}
	}
	tap.WriteLong(0)
}

func (t *ArrayType) Decode(tap *bytetap.Tap) interface{} {
	out := []interface{}{}
	for {
		count := tap.ReadLong()
		if tap.Err {
			return nil
		}
		if count == 0 {
			return out
		}
		if count < 0 {
			count = -count
			tap.ReadLong() // byte length of the block; unused when decoding item by item.
			if tap.Err {
				return nil
			}
		}
		for i := int64(0); i < count; i++ {
			out = append(out, t.Items.Decode(tap))
			if tap.Err {
				return nil
			}
		}
	}
}

func (t *ArrayType) Skip(tap *bytetap.Tap) {
	for {
		count := tap.ReadLong()
		if tap.Err {
			return
		}
		if count == 0 {
			return
		}
		if count < 0 {
			count = -count
			tap.SkipLong() // byte length; we skip item by item instead of by span.
			if tap.Err {
				return
			}
		}
		for i := int64(0); i < count; i++ {
			t.Items.Skip(tap)
			if tap.Err {
				return
			}
		}
	}
}

func (t *ArrayType) String() string {
	return CanonicalString(t)
}

func (t *ArrayType) FromString(raw interface{}, opts FromStringOptions) (interface{}, error) {
	s, ok := raw.([]interface{})
	if !ok {
		return nil, newError(ArgumentError, "expected array, got %T", raw)
	}
	out := make([]interface{}, len(s))
	for i, el := range s {
		v, err := t.Items.FromString(el, opts)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (t *ArrayType) ToJSON(v interface{}) (interface{}, error) {
	s, ok := v.([]interface{})
	if !ok {
		return nil, newError(ValidationError, "expected array, got %T", v)
	}
	out := make([]interface{}, len(s))
	for i, el := range s {
		j, err := t.Items.ToJSON(el)
		if err != nil {
			return nil, err
		}
		out[i] = j
	}
	return out, nil
}

func (t *ArrayType) Clone(v interface{}, opts CloneOptions) (interface{}, error) {
	s, ok := v.([]interface{})
	if !ok {
		return nil, newError(ValidationError, "expected array, got %T", v)
	}
	out := make([]interface{}, len(s))
	for i, el := range s {
		c, err := t.Items.Clone(el, opts)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func (t *ArrayType) Random(r *rand.Rand) interface{} {
	n := r.Intn(4)
	out := make([]interface{}, n)
	for i := range out {
		out[i] = t.Items.Random(r)
	}
	return out
}

func (t *ArrayType) CreateResolver(writer Type) (*Resolver, error) {
	return CreateResolver(t, writer)
}
