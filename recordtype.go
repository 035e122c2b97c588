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

// Field is one member of a RecordType: a name, a type, and the extra
// bookkeeping schema resolution needs (aliases, a default value).
type Field struct {
	Name       string
	Aliases    []string
	Type       Type
	HasDefault bool
	Default    interface{} // already in raw JSON (FromString-ready) form.
}

// RecordType is a named, ordered collection of Fields.
type RecordType struct {
	Name    QualifiedName
	Aliases []QualifiedName
	Fields  []*Field
}

func (t *RecordType) Kind() Kind              { return KindRecord }
func (t *RecordType) AvroName() QualifiedName { return t.Name }

func (t *RecordType) fieldByName(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (t *RecordType) IsValid(v interface{}) bool {
	m, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	for _, f := range t.Fields {
		if !f.Type.IsValid(m[f.Name]) {
			return false
		}
	}
	return true
}

func (t *RecordType) Encode(tap *bytetap.Tap, v interface{}, lax bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		if !lax {
			tap.Err = true
		}
		return
	}
	for _, f := range t.Fields {
		f.Type.Encode(tap, m[f.Name], lax)
		if tap.Err {
			return
		}
	}
}

func (t *RecordType) Decode(tap *bytetap.Tap) interface{} {
	out := make(map[string]interface{}, len(t.Fields))
	for _, f := range t.Fields {
		out[f.Name] = f.Type.Decode(tap)
		if tap.Err {
			return nil
		}
	}
	return out
}

func (t *RecordType) Skip(tap *bytetap.Tap) {
	for _, f := range t.Fields {
		f.Type.Skip(tap)
		if tap.Err {
			return
		}
	}
}

func (t *RecordType) String() string {
	return CanonicalString(t)
}

func (t *RecordType) FromString(raw interface{}, opts FromStringOptions) (interface{}, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, newError(ArgumentError, "expected object for record %s, got %T", t.Name, raw)
	}
	out := make(map[string]interface{}, len(t.Fields))
	for _, f := range t.Fields {
		raw, present := m[f.Name]
		if !present {
			if !f.HasDefault {
				return nil, newError(ArgumentError, "missing field %q of record %s", f.Name, t.Name)
			}
			v, err := defaultValueFor(f.Type, f.Default, opts)
			if err != nil {
				return nil, wrapError(ArgumentError, err, "default of field %q of record %s", f.Name, t.Name)
			}
			out[f.Name] = v
			continue
		}
		v, err := f.Type.FromString(raw, opts)
		if err != nil {
			return nil, wrapError(ArgumentError, err, "field %q of record %s", f.Name, t.Name)
		}
		out[f.Name] = v
	}
	return out, nil
}

// defaultValueFor realizes a field's raw JSON default against ft. A
// union-typed field's default is interpreted against the union's first
// branch, not the union's own {tag: value} convention.
func defaultValueFor(ft Type, raw interface{}, opts FromStringOptions) (interface{}, error) {
	ut, ok := ft.(*UnionType)
	if !ok {
		return ft.FromString(raw, opts)
	}
	if len(ut.Branches) == 0 {
		return nil, newError(SchemaError, "union has no branches")
	}
	first := ut.Branches[0]
	if first.Kind() == KindNull {
		if raw != nil {
			return nil, newError(ArgumentError, "union default must be null to match its first branch")
		}
		return nil, nil
	}
	v, err := first.FromString(raw, opts)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{branchTag(first): v}, nil
}

func (t *RecordType) ToJSON(v interface{}) (interface{}, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, newError(ValidationError, "expected object for record %s, got %T", t.Name, v)
	}
	out := make(map[string]interface{}, len(t.Fields))
	for _, f := range t.Fields {
		j, err := f.Type.ToJSON(m[f.Name])
		if err != nil {
			return nil, wrapError(ValidationError, err, "field %q of record %s", f.Name, t.Name)
		}
		out[f.Name] = j
	}
	return out, nil
}

func (t *RecordType) Clone(v interface{}, opts CloneOptions) (interface{}, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, newError(ValidationError, "expected object for record %s, got %T", t.Name, v)
	}
	out := make(map[string]interface{}, len(t.Fields))
	for _, f := range t.Fields {
		c, err := f.Type.Clone(m[f.Name], opts)
		if err != nil {
			return nil, wrapError(ValidationError, err, "field %q of record %s", f.Name, t.Name)
		}
		if opts.FieldHook != nil {
			c = opts.FieldHook(f, c, t)
		}
		out[f.Name] = c
	}
	return out, nil
}

func (t *RecordType) Random(r *rand.Rand) interface{} {
	out := make(map[string]interface{}, len(t.Fields))
	for _, f := range t.Fields {
		out[f.Name] = f.Type.Random(r)
	}
	return out
}

func (t *RecordType) CreateResolver(writer Type) (*Resolver, error) {
	return CreateResolver(t, writer)
}

func (t *RecordType) hasAlias(name QualifiedName) bool {
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

// findField returns the single reader field that should receive a
// writer field named writerName, by matching writerName against each
// reader field's own name or any of its aliases. matched reports
// ambiguity (more than one reader field claims writerName) as false.
func (t *RecordType) findField(writerName string) (f *Field, idx int, matched bool) {
	found := -1
	for i, rf := range t.Fields {
		if rf.Name == writerName {
			if found != -1 {
				return nil, 0, false
			}
			found = i
			continue
		}
		for _, a := range rf.Aliases {
			if a == writerName {
				if found != -1 {
					return nil, 0, false
				}
				found = i
				break
			}
		}
	}
	if found == -1 {
		return nil, -1, true
	}
	return t.Fields[found], found, true
}
