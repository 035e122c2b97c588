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

// UnionType is tagged choice among Branches. A union value is bare nil
// for the null branch, or the single-key map {branchTag: value} for
// every other branch.
type UnionType struct {
	Branches []Type
}

func (t *UnionType) Kind() Kind              { return KindUnion }
func (t *UnionType) AvroName() QualifiedName { return QualifiedName{} }

func (t *UnionType) nullIndex() int {
	for i, b := range t.Branches {
		if b.Kind() == KindNull {
			return i
		}
	}
	return -1
}

func (t *UnionType) branchIndexForTag(tag string) int {
	for i, b := range t.Branches {
		if branchTag(b) == tag {
			return i
		}
	}
	return -1
}

// unwrap splits a union value into its branch index and inner value.
// ok is false when v does not conform to any branch's tag.
func (t *UnionType) unwrap(v interface{}) (idx int, inner interface{}, ok bool) {
	if v == nil {
		if n := t.nullIndex(); n != -1 {
			return n, nil, true
		}
		return 0, nil, false
	}
	m, isMap := v.(map[string]interface{})
	if !isMap || len(m) != 1 {
		return 0, nil, false
	}
	for tag, val := range m {
		if tag == "null" {
			return 0, nil, false
		}
		i := t.branchIndexForTag(tag)
		if i == -1 {
			return 0, nil, false
		}
		return i, val, true
	}
	return 0, nil, false
}

func (t *UnionType) IsValid(v interface{}) bool {
	idx, inner, ok := t.unwrap(v)
	if !ok {
		return false
	}
	return t.Branches[idx].IsValid(inner)
}

func (t *UnionType) Encode(tap *bytetap.Tap, v interface{}, lax bool) {
	idx, inner, ok := t.unwrap(v)
	if !ok {
		if !lax {
			tap.Err = true
		}
		return
	}
	tap.WriteLong(int64(idx))
	t.Branches[idx].Encode(tap, inner, lax)
}

func (t *UnionType) Decode(tap *bytetap.Tap) interface{} {
	idx := tap.ReadLong()
	if tap.Err || idx < 0 || int(idx) >= len(t.Branches) {
		tap.Err = true
		return nil
	}
	branch := t.Branches[idx]
	v := branch.Decode(tap)
	if tap.Err {
		return nil
	}
	if branch.Kind() == KindNull {
		return nil
	}
	return map[string]interface{}{branchTag(branch): v}
}

func (t *UnionType) Skip(tap *bytetap.Tap) {
	idx := tap.ReadLong()
	if tap.Err || idx < 0 || int(idx) >= len(t.Branches) {
		tap.Err = true
		return
	}
	t.Branches[idx].Skip(tap)
}

func (t *UnionType) String() string {
	return CanonicalString(t)
}

func (t *UnionType) FromString(raw interface{}, opts FromStringOptions) (interface{}, error) {
	if raw == nil {
		if t.nullIndex() != -1 {
			return nil, nil
		}
		return nil, newError(ArgumentError, "union has no null branch")
	}
	m, ok := raw.(map[string]interface{})
	if !ok || len(m) != 1 {
		return nil, newError(ArgumentError, "union value must be null or a single-key object tagged with the branch name")
	}
	for tag, val := range m {
		if tag == "null" {
			return nil, newError(ArgumentError, "union null branch must be represented as bare nil, not a tagged object")
		}
		idx := t.branchIndexForTag(tag)
		if idx == -1 {
			return nil, newError(ArgumentError, "unknown union branch %q", tag)
		}
		inner, err := t.Branches[idx].FromString(val, opts)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{tag: inner}, nil
	}
	return nil, newError(ArgumentError, "empty union value object")
}

func (t *UnionType) ToJSON(v interface{}) (interface{}, error) {
	idx, inner, ok := t.unwrap(v)
	if !ok {
		return nil, newError(ValidationError, "invalid union value: %v", v)
	}
	branch := t.Branches[idx]
	if branch.Kind() == KindNull {
		return nil, nil
	}
	j, err := branch.ToJSON(inner)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{branchTag(branch): j}, nil
}

func (t *UnionType) Clone(v interface{}, opts CloneOptions) (interface{}, error) {
	idx, inner, ok := t.unwrap(v)
	if !ok && opts.WrapUnions {
		if wi, wrapped, matched := t.wrapBare(v); matched {
			idx, inner, ok = wi, wrapped, true
		}
	}
	if !ok {
		return nil, newError(ValidationError, "invalid union value: %v", v)
	}
	branch := t.Branches[idx]
	c, err := branch.Clone(inner, opts)
	if err != nil {
		return nil, err
	}
	if branch.Kind() == KindNull {
		return nil, nil
	}
	return map[string]interface{}{branchTag(branch): c}, nil
}

// wrapBare finds the single branch whose IsValid accepts v directly,
// for CloneOptions.WrapUnions. Ambiguity (more than one branch
// accepting v) is reported as no match.
func (t *UnionType) wrapBare(v interface{}) (idx int, inner interface{}, ok bool) {
	match := -1
	for i, b := range t.Branches {
		if b.IsValid(v) {
			if match != -1 {
				return 0, nil, false
			}
			match = i
		}
	}
	if match == -1 {
		return 0, nil, false
	}
	return match, v, true
}

func (t *UnionType) Random(r *rand.Rand) interface{} {
	if len(t.Branches) == 0 {
		return nil
	}
	idx := r.Intn(len(t.Branches))
	branch := t.Branches[idx]
	v := branch.Random(r)
	if branch.Kind() == KindNull {
		return nil
	}
	return map[string]interface{}{branchTag(branch): v}
}

func (t *UnionType) CreateResolver(writer Type) (*Resolver, error) {
	return CreateResolver(t, writer)
}
