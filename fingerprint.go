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
	"crypto/md5"
	"crypto/sha256"
	"encoding/json"
	"strconv"
	"strings"
)

// FingerprintAlgorithm selects the digest CreateFingerprint applies to
// a schema's canonical form.
type FingerprintAlgorithm int

const (
	// FingerprintMD5 is Avro's historical default (128 bits).
	FingerprintMD5 FingerprintAlgorithm = iota + 1
	// FingerprintSHA256 is the stronger, optional alternative.
	FingerprintSHA256
)

// CanonicalString renders t in Avro's Parsing Canonical Form: no
// whitespace, a fixed key order (name, type, fields, symbols, items,
// values, size), and only the attributes that affect resolution —
// doc strings, aliases, and defaults are stripped. A named type
// (record/enum/fixed) already emitted earlier in the same traversal is
// referenced by its fullname alone, as PCF requires, so a
// self-referential record canonicalizes to a finite string instead of
// recursing forever.
func CanonicalString(t Type) string {
	var b strings.Builder
	writeCanonical(&b, t, map[QualifiedName]bool{})
	return b.String()
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func writeCanonical(b *strings.Builder, t Type, seen map[QualifiedName]bool) {
	switch v := t.(type) {
	case *primitiveType:
		b.WriteString(jsonString(v.kind.String()))
	case *RecordType:
		if seen[v.Name] {
			b.WriteString(jsonString(v.Name.String()))
			return
		}
		seen[v.Name] = true
		b.WriteString(`{"name":`)
		b.WriteString(jsonString(v.Name.String()))
		b.WriteString(`,"type":"record","fields":[`)
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(`{"name":`)
			b.WriteString(jsonString(f.Name))
			b.WriteString(`,"type":`)
			writeCanonical(b, f.Type, seen)
			b.WriteByte('}')
		}
		b.WriteString(`]}`)
	case *EnumType:
		if seen[v.Name] {
			b.WriteString(jsonString(v.Name.String()))
			return
		}
		seen[v.Name] = true
		b.WriteString(`{"name":`)
		b.WriteString(jsonString(v.Name.String()))
		b.WriteString(`,"type":"enum","symbols":[`)
		for i, s := range v.Symbols {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(jsonString(s))
		}
		b.WriteString(`]}`)
	case *FixedType:
		if seen[v.Name] {
			b.WriteString(jsonString(v.Name.String()))
			return
		}
		seen[v.Name] = true
		b.WriteString(`{"name":`)
		b.WriteString(jsonString(v.Name.String()))
		b.WriteString(`,"type":"fixed","size":`)
		b.WriteString(strconv.Itoa(v.Size))
		b.WriteByte('}')
	case *ArrayType:
		b.WriteString(`{"type":"array","items":`)
		writeCanonical(b, v.Items, seen)
		b.WriteByte('}')
	case *MapType:
		b.WriteString(`{"type":"map","values":`)
		writeCanonical(b, v.Values, seen)
		b.WriteByte('}')
	case *UnionType:
		b.WriteByte('[')
		for i, br := range v.Branches {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, br, seen)
		}
		b.WriteByte(']')
	}
}

// CreateFingerprint hashes t's canonical form with algo.
func CreateFingerprint(t Type, algo FingerprintAlgorithm) []byte {
	canon := []byte(CanonicalString(t))
	switch algo {
	case FingerprintSHA256:
		sum := sha256.Sum256(canon)
		return sum[:]
	default:
		sum := md5.Sum(canon)
		return sum[:]
	}
}

// CreateFingerprint hashes t's canonical form with the algorithm cfg
// was built with (see WithFingerprintAlgorithm).
func (cfg *Config) CreateFingerprint(t Type) []byte {
	return CreateFingerprint(t, cfg.fingerprintAlgo)
}
