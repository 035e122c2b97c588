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
	"testing"

	"github.com/avrocodec/avro/internal/bytetap"
	"github.com/stretchr/testify/require"
)

func TestResolverWritesIntIntoNullableIntUnion(t *testing.T) {
	// W=int, R=["null","int"]; R.decode(W.encode(123), R.createResolver(W)) = {int:123}.
	reader, err := Parse(`["null","int"]`)
	require.NoError(t, err)
	res, err := reader.CreateResolver(Int)
	require.NoError(t, err)

	b, err := Marshal(Int, int32(123))
	require.NoError(t, err)
	v := res.Decode(bytetap.New(b))
	require.Equal(t, map[string]interface{}{"int": int32(123)}, v)
}

func TestResolverIdentityIsEquivalentToDirectDecode(t *testing.T) {
	typ, err := Parse(`{"type":"record","name":"P","fields":[{"name":"n","type":"long"}]}`)
	require.NoError(t, err)
	res, err := typ.CreateResolver(typ)
	require.NoError(t, err)

	v := map[string]interface{}{"n": int64(42)}
	b, err := Marshal(typ, v)
	require.NoError(t, err)
	got := res.Decode(bytetap.New(b))
	require.Equal(t, v, got)
}

func TestResolverFieldDropAndFillAndFail(t *testing.T) {
	writerBoth, err := Parse(`{"type":"record","name":"P","fields":[
		{"name":"age","type":"int"},{"name":"name","type":"string"}
	]}`)
	require.NoError(t, err)
	readerNameOnly, err := Parse(`{"type":"record","name":"P","fields":[
		{"name":"name","type":"string"}
	]}`)
	require.NoError(t, err)

	res, err := readerNameOnly.CreateResolver(writerBoth)
	require.NoError(t, err)
	v := map[string]interface{}{"age": int32(1), "name": "Ada"}
	b, err := Marshal(writerBoth, v)
	require.NoError(t, err)
	got := res.Decode(bytetap.New(b))
	require.Equal(t, map[string]interface{}{"name": "Ada"}, got)

	writerNameOnly, err := Parse(`{"type":"record","name":"P","fields":[
		{"name":"name","type":"string"}
	]}`)
	require.NoError(t, err)
	readerWithDefault, err := Parse(`{"type":"record","name":"P","fields":[
		{"name":"age","type":"int","default":25},{"name":"name","type":"string"}
	]}`)
	require.NoError(t, err)

	res, err = readerWithDefault.CreateResolver(writerNameOnly)
	require.NoError(t, err)
	b, err = Marshal(writerNameOnly, map[string]interface{}{"name": "Ada"})
	require.NoError(t, err)
	got = res.Decode(bytetap.New(b))
	require.Equal(t, map[string]interface{}{"age": int32(25), "name": "Ada"}, got)

	readerNoDefault, err := Parse(`{"type":"record","name":"P","fields":[
		{"name":"age","type":"int"},{"name":"name","type":"string"}
	]}`)
	require.NoError(t, err)
	_, err = readerNoDefault.CreateResolver(writerNameOnly)
	require.Error(t, err)
}

func TestResolverEnumAliasResolution(t *testing.T) {
	writer, err := Parse(`{"type":"enum","name":"Foo","symbols":["bar","baz"]}`)
	require.NoError(t, err)
	reader, err := Parse(`{"type":"enum","name":"Foo2","aliases":["Foo"],"symbols":["foo","baz","bar"]}`)
	require.NoError(t, err)

	res, err := reader.CreateResolver(writer)
	require.NoError(t, err)
	b, err := Marshal(writer, "bar")
	require.NoError(t, err)
	got := res.Decode(bytetap.New(b))
	require.Equal(t, "bar", got)
}

func TestResolverUnionWideningBothDirections(t *testing.T) {
	writer, err := Parse(`["string","int"]`)
	require.NoError(t, err)
	reader, err := Parse(`["int","bytes"]`)
	require.NoError(t, err)

	res, err := reader.CreateResolver(writer)
	require.NoError(t, err)

	b, err := Marshal(writer, WrapUnion("string", "hi"))
	require.NoError(t, err)
	got := res.Decode(bytetap.New(b))
	require.Equal(t, map[string]interface{}{"bytes": []byte("hi")}, got)

	b, err = Marshal(writer, WrapUnion("int", int32(1)))
	require.NoError(t, err)
	got = res.Decode(bytetap.New(b))
	require.Equal(t, map[string]interface{}{"int": int32(1)}, got)
}

func TestResolverPromotesIntToLongFloatDouble(t *testing.T) {
	b, err := Marshal(Int, int32(7))
	require.NoError(t, err)

	res, err := Long.CreateResolver(Int)
	require.NoError(t, err)
	require.Equal(t, int64(7), res.Decode(bytetap.New(b)))

	res, err = Float.CreateResolver(Int)
	require.NoError(t, err)
	require.Equal(t, float32(7), res.Decode(bytetap.New(b)))

	res, err = Double.CreateResolver(Int)
	require.NoError(t, err)
	require.Equal(t, float64(7), res.Decode(bytetap.New(b)))
}

func TestResolverRecursiveRecordsTerminate(t *testing.T) {
	schema := `{
		"type": "record",
		"name": "Node",
		"fields": [
			{"name": "value", "type": "long"},
			{"name": "next", "type": ["null", "Node"], "default": null}
		]
	}`
	writer, err := Parse(schema)
	require.NoError(t, err)
	reader, err := Parse(schema)
	require.NoError(t, err)

	res, err := reader.CreateResolver(writer)
	require.NoError(t, err)

	leaf := map[string]interface{}{"value": int64(1), "next": nil}
	node := map[string]interface{}{"value": int64(2), "next": WrapUnion("Node", leaf)}
	b, err := Marshal(writer, node)
	require.NoError(t, err)
	got := res.Decode(bytetap.New(b))
	require.Equal(t, node, got)
}

func TestResolverReaderUnionFailedBranchDoesNotPoisonCache(t *testing.T) {
	// f1's reader union tries a "null" branch against a "long" writer
	// field first; that sub-resolution fails and must not leave a
	// poisoned (null, long) cache entry behind for f2, which pairs the
	// same two types directly and is genuinely incompatible.
	reader, err := Parse(`{
		"type": "record",
		"name": "Outer",
		"fields": [
			{"name": "f1", "type": ["null", "long", "boolean"]},
			{"name": "f2", "type": "null"}
		]
	}`)
	require.NoError(t, err)
	writer, err := Parse(`{
		"type": "record",
		"name": "Outer",
		"fields": [
			{"name": "f1", "type": "long"},
			{"name": "f2", "type": "long"}
		]
	}`)
	require.NoError(t, err)

	_, err = reader.CreateResolver(writer)
	require.Error(t, err)
}

func TestResolverRejectsIncompatiblePrimitive(t *testing.T) {
	_, err := String.CreateResolver(Int)
	require.Error(t, err)
}

func TestResolverRejectsMismatchedFixedSize(t *testing.T) {
	a, err := Parse(`{"type":"fixed","name":"F","size":4}`)
	require.NoError(t, err)
	b, err := Parse(`{"type":"fixed","name":"F","size":8}`)
	require.NoError(t, err)
	_, err = b.CreateResolver(a)
	require.Error(t, err)
}
