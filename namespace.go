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

// namespace is the parser's name registry. It tracks every named type
// defined so far by its fully qualified name, and every forward
// reference (a "type": "Name" seen before "Name" was defined) so they
// can be resolved once parsing finishes.
type namespace struct {
	defined   map[QualifiedName]Type
	forwardRefs map[QualifiedName][]*Type
}

func newNamespace() *namespace {
	return &namespace{
		defined:     map[QualifiedName]Type{},
		forwardRefs: map[QualifiedName][]*Type{},
	}
}

// register records a newly parsed named type. It is a SchemaError for
// the same qualified name to be defined twice, or for a named type to
// take a primitive's name, qualified or not. Aliases are not
// registered and are not checked for collisions.
func (ns *namespace) register(name QualifiedName, t Type) error {
	if isPrimitiveName(name.Name) {
		return newError(SchemaError, "cannot redefine primitive type %q", name.Name)
	}
	if _, dup := ns.defined[name]; dup {
		return newError(SchemaError, "duplicate type name %q", name.String())
	}
	ns.defined[name] = t
	return nil
}

// resolve looks up a fully qualified reference. If the name is not yet
// defined, it records a forward reference at slot and returns ok=false;
// link fills *slot once the whole document has been parsed.
func (ns *namespace) resolve(name QualifiedName, slot *Type) (Type, bool) {
	if t, ok := ns.defined[name]; ok {
		return t, true
	}
	ns.forwardRefs[name] = append(ns.forwardRefs[name], slot)
	return nil, false
}

// link fills in every forward reference now that parsing is complete.
// An unresolved name is a SchemaError.
func (ns *namespace) link() error {
	for name, slots := range ns.forwardRefs {
		t, ok := ns.defined[name]
		if !ok {
			return newError(SchemaError, "unknown type name %q", name.String())
		}
		for _, slot := range slots {
			*slot = t
		}
	}
	return nil
}
