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
	"github.com/avrocodec/avro/internal/bytetap"
)

// Resolver decodes bytes written against a writer schema into values
// shaped like a reader schema. It is built once by CreateResolver and
// reused across many Decode calls.
type Resolver struct {
	reader Type
	writer Type
	decode func(tap *bytetap.Tap) interface{}
}

// Decode reads one writer-encoded value from tap and returns it in the
// reader schema's shape.
func (r *Resolver) Decode(tap *bytetap.Tap) interface{} {
	return r.decode(tap)
}

// Reader returns the reader type r was compiled for — the shape
// Decode's results conform to.
func (r *Resolver) Reader() Type { return r.reader }

// Writer returns the writer type r was compiled for — the shape of
// the bytes Decode expects.
func (r *Resolver) Writer() Type { return r.writer }

// resolverKey identifies a (reader, writer) pair being compiled. Type
// values here are always backed by pointers (primitives are
// singletons; every other kind is parsed as a *XxxType), so the pair
// is comparable and safe as a map key.
type resolverKey struct {
	reader Type
	writer Type
}

type resolverCache struct {
	m map[resolverKey]*Resolver
}

func newResolverCache() *resolverCache {
	return &resolverCache{m: map[resolverKey]*Resolver{}}
}

// CreateResolver compiles a Resolver that decodes writer-encoded bytes
// into values shaped like reader. It fails at compile time for every
// schema incompatibility between reader and writer, except an enum
// writer symbol absent from the reader, which is a decode-time error
// because it depends on which ordinal actually appears on the wire.
func CreateResolver(reader, writer Type) (*Resolver, error) {
	return compileResolver(reader, writer, newResolverCache())
}

func compileResolver(reader, writer Type, cache *resolverCache) (*Resolver, error) {
	key := resolverKey{reader: reader, writer: writer}
	if cached, ok := cache.m[key]; ok {
		return cached, nil
	}
	res := &Resolver{reader: reader, writer: writer}
	cache.m[key] = res

	if wu, isUnion := writer.(*UnionType); isUnion {
		decode, err := compileWriterUnion(reader, wu, cache)
		if err != nil {
			delete(cache.m, key)
			return nil, err
		}
		res.decode = decode
		return res, nil
	}

	if ru, isUnion := reader.(*UnionType); isUnion {
		decode, err := compileReaderUnion(ru, writer, cache)
		if err != nil {
			delete(cache.m, key)
			return nil, err
		}
		res.decode = decode
		return res, nil
	}

	var decode func(tap *bytetap.Tap) interface{}
	var err error
	switch w := writer.(type) {
	case *primitiveType:
		decode, err = compilePrimitivePair(reader, w)
	case *EnumType:
		decode, err = compileEnumPair(reader, w)
	case *FixedType:
		decode, err = compileFixedPair(reader, w)
	case *ArrayType:
		decode, err = compileArrayPair(reader, w, cache)
	case *MapType:
		decode, err = compileMapPair(reader, w, cache)
	case *RecordType:
		decode, err = compileRecordPair(reader, w, cache)
	default:
		err = newError(ResolveError, "unsupported writer type")
	}
	if err != nil {
		// A failed build must not leave this key's placeholder (with a
		// nil decode) in the cache: an unrelated later lookup of the
		// same (reader, writer) pair — e.g. a different reader-union
		// branch or record field landing on the same pair — would
		// otherwise get back a "successful" Resolver that panics on
		// first Decode instead of the ResolveError it should see.
		delete(cache.m, key)
		return nil, err
	}
	res.decode = decode
	return res, nil
}

func compileWriterUnion(reader Type, writer *UnionType, cache *resolverCache) (func(tap *bytetap.Tap) interface{}, error) {
	branches := make([]*Resolver, len(writer.Branches))
	for i, b := range writer.Branches {
		br, err := compileResolver(reader, b, cache)
		if err != nil {
			return nil, wrapError(ResolveError, err, "union writer branch %d", i)
		}
		branches[i] = br
	}
	return func(tap *bytetap.Tap) interface{} {
		idx := tap.ReadLong()
		if tap.Err || idx < 0 || int(idx) >= len(branches) {
			tap.Err = true
			return nil
		}
		return branches[idx].decode(tap)
	}, nil
}

func compileReaderUnion(reader *UnionType, writer Type, cache *resolverCache) (func(tap *bytetap.Tap) interface{}, error) {
	for _, b := range reader.Branches {
		sub, err := compileResolver(b, writer, cache)
		if err != nil {
			continue
		}
		tag := branchTag(b)
		isNull := b.Kind() == KindNull
		return func(tap *bytetap.Tap) interface{} {
			v := sub.decode(tap)
			if tap.Err {
				return nil
			}
			if isNull {
				return nil
			}
			return map[string]interface{}{tag: v}
		}, nil
	}
	return nil, newError(ResolveError, "no branch of reader union is compatible with writer %s", writer.String())
}

func compilePrimitivePair(reader Type, writer *primitiveType) (func(tap *bytetap.Tap) interface{}, error) {
	rp, ok := reader.(*primitiveType)
	if !ok {
		return nil, newError(ResolveError, "writer %s is not compatible with reader %s", writer.kind, reader.Kind())
	}
	if rp.kind == writer.kind {
		wk := writer.kind
		return func(tap *bytetap.Tap) interface{} { return decodePrimitive(tap, wk) }, nil
	}
	switch writer.kind {
	case KindInt:
		switch rp.kind {
		case KindLong:
			return func(tap *bytetap.Tap) interface{} { return int64(tap.ReadInt()) }, nil
		case KindFloat:
			return func(tap *bytetap.Tap) interface{} { return float32(tap.ReadInt()) }, nil
		case KindDouble:
			return func(tap *bytetap.Tap) interface{} { return float64(tap.ReadInt()) }, nil
		}
	case KindLong:
		switch rp.kind {
		case KindFloat:
			return func(tap *bytetap.Tap) interface{} { return float32(tap.ReadLong()) }, nil
		case KindDouble:
			return func(tap *bytetap.Tap) interface{} { return float64(tap.ReadLong()) }, nil
		}
	case KindFloat:
		if rp.kind == KindDouble {
			return func(tap *bytetap.Tap) interface{} { return float64(tap.ReadFloat()) }, nil
		}
	case KindString:
		if rp.kind == KindBytes {
			return func(tap *bytetap.Tap) interface{} { return []byte(tap.ReadString()) }, nil
		}
	case KindBytes:
		if rp.kind == KindString {
			return func(tap *bytetap.Tap) interface{} { return string(tap.ReadBytes()) }, nil
		}
	}
	return nil, newError(ResolveError, "incompatible primitive types: writer %s, reader %s", writer.kind, rp.kind)
}

func decodePrimitive(tap *bytetap.Tap, kind Kind) interface{} {
	switch kind {
	case KindNull:
		return nil
	case KindBoolean:
		return tap.ReadBoolean()
	case KindInt:
		return tap.ReadInt()
	case KindLong:
		return tap.ReadLong()
	case KindFloat:
		return tap.ReadFloat()
	case KindDouble:
		return tap.ReadDouble()
	case KindBytes:
		return tap.ReadBytes()
	case KindString:
		return tap.ReadString()
	}
	return nil
}

func compileEnumPair(reader Type, writer *EnumType) (func(tap *bytetap.Tap) interface{}, error) {
	re, ok := reader.(*EnumType)
	if !ok || !re.hasAlias(writer.Name) {
		return nil, newError(ResolveError, "enum writer %s is not compatible with reader %s", writer.Name, describeReader(reader))
	}
	mapping := make([]int, len(writer.Symbols))
	for i, sym := range writer.Symbols {
		mapping[i] = re.indexOf(sym)
	}
	return func(tap *bytetap.Tap) interface{} {
		idx := tap.ReadInt()
		if tap.Err || int(idx) < 0 || int(idx) >= len(mapping) {
			tap.Err = true
			return nil
		}
		ri := mapping[idx]
		if ri == -1 {
			tap.Err = true
			return nil
		}
		return re.Symbols[ri]
	}, nil
}

func compileFixedPair(reader Type, writer *FixedType) (func(tap *bytetap.Tap) interface{}, error) {
	rf, ok := reader.(*FixedType)
	if !ok || !rf.hasAlias(writer.Name) || rf.Size != writer.Size {
		return nil, newError(ResolveError, "fixed writer %s is not compatible with reader %s", writer.Name, describeReader(reader))
	}
	size := writer.Size
	return func(tap *bytetap.Tap) interface{} { return tap.ReadFixed(size) }, nil
}

func compileArrayPair(reader Type, writer *ArrayType, cache *resolverCache) (func(tap *bytetap.Tap) interface{}, error) {
	ra, ok := reader.(*ArrayType)
	if !ok {
		return nil, newError(ResolveError, "array writer is not compatible with reader %s", describeReader(reader))
	}
	items, err := compileResolver(ra.Items, writer.Items, cache)
	if err != nil {
		return nil, wrapError(ResolveError, err, "array items")
	}
	return func(tap *bytetap.Tap) interface{} {
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
				tap.ReadLong()
				if tap.Err {
					return nil
				}
			}
			for i := int64(0); i < count; i++ {
				out = append(out, items.decode(tap))
				if tap.Err {
					return nil
				}
			}
		}
	}, nil
}

func compileMapPair(reader Type, writer *MapType, cache *resolverCache) (func(tap *bytetap.Tap) interface{}, error) {
	rm, ok := reader.(*MapType)
	if !ok {
		return nil, newError(ResolveError, "map writer is not compatible with reader %s", describeReader(reader))
	}
	values, err := compileResolver(rm.Values, writer.Values, cache)
	if err != nil {
		return nil, wrapError(ResolveError, err, "map values")
	}
	return func(tap *bytetap.Tap) interface{} {
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
				out[k] = values.decode(tap)
				if tap.Err {
					return nil
				}
			}
		}
	}, nil
}

type fieldPlan struct {
	skip       bool
	skipType   Type
	readerName string
	resolver   *Resolver
}

func compileRecordPair(reader Type, writer *RecordType, cache *resolverCache) (func(tap *bytetap.Tap) interface{}, error) {
	rr, ok := reader.(*RecordType)
	if !ok || !rr.hasAlias(writer.Name) {
		return nil, newError(ResolveError, "record writer %s is not compatible with reader %s", writer.Name, describeReader(reader))
	}

	matched := make([]bool, len(rr.Fields))
	plans := make([]fieldPlan, len(writer.Fields))
	for i, wf := range writer.Fields {
		rf, idx, ok := rr.findField(wf.Name)
		if !ok {
			return nil, newError(ResolveError, "writer field %q of %s matches more than one reader field", wf.Name, writer.Name)
		}
		if rf == nil {
			plans[i] = fieldPlan{skip: true, skipType: wf.Type}
			continue
		}
		if matched[idx] {
			return nil, newError(ResolveError, "reader field %q of %s is matched by more than one writer field", rf.Name, rr.Name)
		}
		matched[idx] = true
		sub, err := compileResolver(rf.Type, wf.Type, cache)
		if err != nil {
			return nil, wrapError(ResolveError, err, "field %q of record %s", wf.Name, writer.Name)
		}
		plans[i] = fieldPlan{readerName: rf.Name, resolver: sub}
	}

	type defaultFill struct {
		name string
		typ  Type
		raw  interface{}
	}
	var fills []defaultFill
	for i, rf := range rr.Fields {
		if matched[i] {
			continue
		}
		if !rf.HasDefault {
			return nil, newError(ResolveError, "reader field %q of %s has no writer match and no default", rf.Name, rr.Name)
		}
		fills = append(fills, defaultFill{name: rf.Name, typ: rf.Type, raw: rf.Default})
	}

	return func(tap *bytetap.Tap) interface{} {
		out := make(map[string]interface{}, len(rr.Fields))
		for _, fl := range fills {
			v, err := defaultValueFor(fl.typ, fl.raw, FromStringOptions{})
			if err != nil {
				tap.Err = true
				return nil
			}
			out[fl.name] = v
		}
		for _, p := range plans {
			if p.skip {
				p.skipType.Skip(tap)
				if tap.Err {
					return nil
				}
				continue
			}
			v := p.resolver.decode(tap)
			if tap.Err {
				return nil
			}
			out[p.readerName] = v
		}
		return out
	}, nil
}

func describeReader(t Type) string {
	if name := t.AvroName(); !name.IsZero() {
		return name.String()
	}
	return t.Kind().String()
}
