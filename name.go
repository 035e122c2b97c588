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

import "strings"

// QualifiedName is a fully qualified Avro name: an optional namespace
// and a short name, joined with a dot when printed.
type QualifiedName struct {
	Namespace string
	Name      string
}

func (q QualifiedName) String() string {
	if q.Namespace == "" {
		return q.Name
	}
	return q.Namespace + "." + q.Name
}

func (q QualifiedName) IsZero() bool {
	return q.Namespace == "" && q.Name == ""
}

// parseName resolves a schema "name" (and optional "namespace") against
// the enclosing namespace: a name containing a dot is already fully
// qualified; otherwise it inherits the enclosing namespace unless an
// explicit namespace is given.
func parseName(enclosing, namespace, name string) QualifiedName {
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return QualifiedName{Namespace: name[:idx], Name: name[idx+1:]}
	}
	if namespace != "" {
		return QualifiedName{Namespace: namespace, Name: name}
	}
	return QualifiedName{Namespace: enclosing, Name: name}
}

// parseReference resolves a bare type reference (a string used as a
// "type") against the enclosing namespace. Unlike parseName, it takes
// no explicit namespace: a name with no dot inherits the enclosing
// namespace, or stays unqualified when there is none — primitives are
// matched before this is ever called, so by the time parseReference
// runs the name refers to a named type.
func parseReference(enclosing, name string) QualifiedName {
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return QualifiedName{Namespace: name[:idx], Name: name[idx+1:]}
	}
	return QualifiedName{Namespace: enclosing, Name: name}
}
