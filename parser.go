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
	"math"
)

// parser turns a JSON-decoded schema tree into a Type graph. Named
// types are registered in ns as they are defined; references to a
// name not yet seen are recorded as forward references and patched by
// ns.link() once the whole document has been walked, the same
// two-phase approach gogen-avro's resolver package uses to fix up
// record field references after a full parse.
type parser struct {
	ns       *namespace
	unions   []*UnionType
	records  []*RecordType
	typeHook func(raw interface{}, parent Type) (Type, bool)
}

func parseSchema(schemaJSON []byte) (Type, error) {
	return parseSchemaWithHook(schemaJSON, nil)
}

// parseSchemaWithHook is parseSchema with the Config's type hook (see
// WithTypeHook) wired in: hook
// is consulted before each schema node is interpreted, an escape hatch
// for injecting custom Type implementations (e.g. a decimal-as-big.Rat
// type) without forking the parser.
func parseSchemaWithHook(schemaJSON []byte, hook func(raw interface{}, parent Type) (Type, bool)) (Type, error) {
	var raw interface{}
	if err := json.Unmarshal(schemaJSON, &raw); err != nil {
		return nil, wrapError(SchemaError, err, "invalid schema JSON")
	}
	p := &parser{ns: newNamespace(), typeHook: hook}
	var root Type
	if err := p.decodeInto(&root, raw, "", nil); err != nil {
		return nil, err
	}
	if err := p.ns.link(); err != nil {
		return nil, err
	}
	if err := p.validateUnions(); err != nil {
		return nil, err
	}
	if err := p.validateDefaults(); err != nil {
		return nil, err
	}
	return root, nil
}

// validateDefaults checks that every field default validates against
// its field's type. It runs after ns.link() so even a field typed with
// a forward-referenced record has a fully resolved Type to validate
// against.
func (p *parser) validateDefaults() error {
	for _, rt := range p.records {
		for _, f := range rt.Fields {
			if !f.HasDefault {
				continue
			}
			if _, err := defaultValueFor(f.Type, f.Default, FromStringOptions{}); err != nil {
				return wrapError(SchemaError, err, "default of field %q of record %s", f.Name, rt.Name)
			}
		}
	}
	return nil
}

func (p *parser) validateUnions() error {
	for _, ut := range p.unions {
		tags := map[string]bool{}
		for i, b := range ut.Branches {
			if b == nil {
				return newError(SchemaError, "union branch %d did not resolve to a known type", i)
			}
			if b.Kind() == KindUnion {
				return newError(SchemaError, "union branch %d is itself a union", i)
			}
			tag := branchTag(b)
			if tags[tag] {
				return newError(SchemaError, "union has more than one branch tagged %q", tag)
			}
			tags[tag] = true
		}
	}
	return nil
}

// decodeInto resolves raw (a schema "type" value) into slot. raw may
// be a primitive name, a named-type reference, a union (JSON array),
// or an inline complex-type object. parent is the Type node raw is
// nested under (nil at the document root), offered to typeHook so it
// can make context-sensitive substitutions.
func (p *parser) decodeInto(slot *Type, raw interface{}, enclosing string, parent Type) error {
	if p.typeHook != nil {
		if t, ok := p.typeHook(raw, parent); ok {
			*slot = t
			return nil
		}
	}
	switch v := raw.(type) {
	case string:
		return p.decodeNamedRef(slot, v, enclosing)
	case []interface{}:
		t, err := p.decodeUnion(v, enclosing)
		if err != nil {
			return err
		}
		*slot = t
		return nil
	case map[string]interface{}:
		return p.decodeObject(slot, v, enclosing)
	default:
		return newError(SchemaError, "invalid type declaration: %#v", raw)
	}
}

func (p *parser) decodeObject(slot *Type, v map[string]interface{}, enclosing string) error {
	kindName, _ := v["type"].(string)
	switch kindName {
	case "record", "error":
		t, err := p.decodeRecord(v, enclosing)
		if err != nil {
			return err
		}
		*slot = t
		return nil
	case "enum":
		t, err := p.decodeEnum(v, enclosing)
		if err != nil {
			return err
		}
		*slot = t
		return nil
	case "fixed":
		t, err := p.decodeFixedSchema(v, enclosing)
		if err != nil {
			return err
		}
		*slot = t
		return nil
	case "array":
		t, err := p.decodeArray(v, enclosing)
		if err != nil {
			return err
		}
		*slot = t
		return nil
	case "map":
		t, err := p.decodeMapSchema(v, enclosing)
		if err != nil {
			return err
		}
		*slot = t
		return nil
	default:
		if base := primitiveByName(kindName); base != nil {
			if logical, ok := v["logicalType"].(string); ok && logical != "" {
				scale := 0
				if logical == "decimal" {
					if n, ok := asNumber(v["scale"]); ok {
						scale = int(n)
					}
				}
				*slot = &primitiveType{kind: base.Kind(), logical: logical, scale: scale}
				return nil
			}
			*slot = base
			return nil
		}
		return p.decodeNamedRef(slot, kindName, enclosing)
	}
}

func (p *parser) decodeNamedRef(slot *Type, name string, enclosing string) error {
	if t := primitiveByName(name); t != nil {
		*slot = t
		return nil
	}
	if name == "" {
		return newError(SchemaError, "missing or invalid \"type\"")
	}
	qn := parseReference(enclosing, name)
	if t, ok := p.ns.resolve(qn, slot); ok {
		*slot = t
	}
	return nil
}

func (p *parser) decodeAliases(m map[string]interface{}, enclosingNS string) []QualifiedName {
	raw, ok := m["aliases"].([]interface{})
	if !ok {
		return nil
	}
	out := make([]QualifiedName, 0, len(raw))
	for _, a := range raw {
		if s, ok := a.(string); ok {
			out = append(out, parseReference(enclosingNS, s))
		}
	}
	return out
}

func (p *parser) decodeRecord(m map[string]interface{}, enclosing string) (Type, error) {
	nameStr, _ := m["name"].(string)
	if nameStr == "" {
		return nil, newError(SchemaError, "record missing \"name\"")
	}
	nsStr, _ := m["namespace"].(string)
	qn := parseName(enclosing, nsStr, nameStr)
	rt := &RecordType{Name: qn}
	if err := p.ns.register(qn, rt); err != nil {
		return nil, err
	}
	rt.Aliases = p.decodeAliases(m, qn.Namespace)

	fieldsRaw, _ := m["fields"].([]interface{})
	seen := map[string]bool{}
	for _, fr := range fieldsRaw {
		fm, ok := fr.(map[string]interface{})
		if !ok {
			return nil, newError(SchemaError, "invalid field declaration in record %s", qn)
		}
		fname, _ := fm["name"].(string)
		if fname == "" {
			return nil, newError(SchemaError, "field missing \"name\" in record %s", qn)
		}
		if seen[fname] {
			return nil, newError(SchemaError, "duplicate field %q in record %s", fname, qn)
		}
		seen[fname] = true

		field := &Field{Name: fname}
		if aliasesRaw, ok := fm["aliases"].([]interface{}); ok {
			for _, a := range aliasesRaw {
				if s, ok := a.(string); ok {
					field.Aliases = append(field.Aliases, s)
				}
			}
		}
		if err := p.decodeInto(&field.Type, fm["type"], qn.Namespace, rt); err != nil {
			return nil, wrapError(SchemaError, err, "field %q of record %s", fname, qn)
		}
		if def, ok := fm["default"]; ok {
			field.HasDefault = true
			field.Default = def
		}
		rt.Fields = append(rt.Fields, field)
	}
	p.records = append(p.records, rt)
	return rt, nil
}

func (p *parser) decodeEnum(m map[string]interface{}, enclosing string) (Type, error) {
	nameStr, _ := m["name"].(string)
	if nameStr == "" {
		return nil, newError(SchemaError, "enum missing \"name\"")
	}
	nsStr, _ := m["namespace"].(string)
	qn := parseName(enclosing, nsStr, nameStr)
	et := &EnumType{Name: qn}
	if err := p.ns.register(qn, et); err != nil {
		return nil, err
	}
	et.Aliases = p.decodeAliases(m, qn.Namespace)

	symbolsRaw, _ := m["symbols"].([]interface{})
	seen := map[string]bool{}
	for _, s := range symbolsRaw {
		sym, ok := s.(string)
		if !ok {
			return nil, newError(SchemaError, "invalid symbol in enum %s", qn)
		}
		if seen[sym] {
			return nil, newError(SchemaError, "duplicate symbol %q in enum %s", sym, qn)
		}
		seen[sym] = true
		et.Symbols = append(et.Symbols, sym)
	}
	if len(et.Symbols) == 0 {
		return nil, newError(SchemaError, "enum %s declares no symbols", qn)
	}
	if def, ok := m["default"].(string); ok {
		et.Default = def
	}
	return et, nil
}

func (p *parser) decodeFixedSchema(m map[string]interface{}, enclosing string) (Type, error) {
	nameStr, _ := m["name"].(string)
	if nameStr == "" {
		return nil, newError(SchemaError, "fixed missing \"name\"")
	}
	nsStr, _ := m["namespace"].(string)
	qn := parseName(enclosing, nsStr, nameStr)
	size, ok := asNumber(m["size"])
	if !ok || size <= 0 || size != math.Trunc(size) {
		return nil, newError(SchemaError, "fixed %s has an invalid \"size\"", qn)
	}
	ft := &FixedType{Name: qn, Size: int(size)}
	if err := p.ns.register(qn, ft); err != nil {
		return nil, err
	}
	ft.Aliases = p.decodeAliases(m, qn.Namespace)
	if logical, ok := m["logicalType"].(string); ok {
		ft.Logical = logical
		if logical == "decimal" {
			if n, ok := asNumber(m["scale"]); ok {
				ft.Scale = int(n)
			}
		}
	}
	return ft, nil
}

func (p *parser) decodeArray(m map[string]interface{}, enclosing string) (Type, error) {
	at := &ArrayType{}
	if err := p.decodeInto(&at.Items, m["items"], enclosing, at); err != nil {
		return nil, wrapError(SchemaError, err, "array items")
	}
	return at, nil
}

func (p *parser) decodeMapSchema(m map[string]interface{}, enclosing string) (Type, error) {
	mt := &MapType{}
	if err := p.decodeInto(&mt.Values, m["values"], enclosing, mt); err != nil {
		return nil, wrapError(SchemaError, err, "map values")
	}
	return mt, nil
}

func (p *parser) decodeUnion(branchesRaw []interface{}, enclosing string) (Type, error) {
	ut := &UnionType{Branches: make([]Type, len(branchesRaw))}
	for i, br := range branchesRaw {
		if err := p.decodeInto(&ut.Branches[i], br, enclosing, ut); err != nil {
			return nil, wrapError(SchemaError, err, "union branch %d", i)
		}
	}
	p.unions = append(p.unions, ut)
	return ut, nil
}
