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
	"sort"

	"github.com/avrocodec/avro/internal/bytetap"
)

// MapType is a variable-length mapping from string keys to
// homogeneously typed values.
type MapType struct {
	Values Type
}

func (t *MapType) Kind() Kind              { return KindMap }
func (t *MapType) AvroName() QualifiedName { return QualifiedName{} }

func (t *MapType) IsValid(v interface{}) bool {
	m, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	for _, val := range m {
		if !t.Values.IsValid(val) {
			return false
		}
	}
	return true
}

// sortedKeys returns m's keys in a deterministic order so encoding is
// reproducible; Avro's wire format does not mandate an order.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (t *MapType) Encode(tap *bytetap.Tap, v interface{}, lax bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		if !lax {
			tap.Err = true
		}
		return
	}
	if len(m) > 0 {
		tap.WriteLong(int64(len(m)))
		for _, k := range sortedKeys(m) {
			tap.WriteString(k)
			t.Values.Encode(tap, m[k], lax)
			if tap.Err {
				return
			}
		}
	}
	tap.WriteLong(0)
}

func (t *MapType) Decode(tap *bytetap.Tap) interface{} {
	out := map[string]interface{}{}
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
			tap.ReadLong()
			if tap.Err {
				return nil
			}
		}
		for i := int64(0); i < count; i++ {
			k := tap.ReadString()
			if tap.Err {
				return nil
			}
			out[k] = t.Values.Decode(tap)
			if tap.Err {
				return nil
			}
		}
	}
}

func (t *MapType) Skip(tap *bytetap.Tap) {
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
			tap.SkipLong()
			if tap.Err {
				return
			}
		}
		for i := int64(0); i < count; i++ {
			tap.SkipBytes()
			if tap.Err {
				return
			}
			t.Values.Skip(tap)
			if tap.Err {
				return
			}
		}
	}
}

func (t *MapType) String() string {
	return CanonicalString(t)
}

func (t *MapType) FromString(raw interface{}, opts FromStringOptions) (interface{}, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, newError(ArgumentError, "expected object, got %T", raw)
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		cv, err := t.Values.FromString(v, opts)
		if err != nil {
			return nil, err
		}
		out[k] = cv
	}
	return out, nil
}

func (t *MapType) ToJSON(v interface{}) (interface{}, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, newError(ValidationError, "expected map, got %T", v)
	}
	out := make(map[string]interface{}, len(m))
	for k, val := range m {
		j, err := t.Values.ToJSON(val)
		if err != nil {
			return nil, err
		}
		out[k] = j
	}
	return out, nil
}

func (t *MapType) Clone(v interface{}, opts CloneOptions) (interface{}, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, newError(ValidationError, "expected map, got %T", v)
	}
	out := make(map[string]interface{}, len(m))
	for k, val := range m {
		c, err := t.Values.Clone(val, opts)
		if err != nil {
			return nil, err
		}
		out[k] = c
	}
	return out, nil
}

func (t *MapType) Random(r *rand.Rand) interface{} {
	n := r.Intn(4)
	out := make(map[string]interface{}, n)
	for i := 0; i < n; i++ {
		key := string(rune('a' + i))
		out[key] = t.Values.Random(r)
	}
	return out
}

func (t *MapType) CreateResolver(writer Type) (*Resolver, error) {
	return CreateResolver(t, writer)
}
