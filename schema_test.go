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

	"github.com/stretchr/testify/require"
)

func TestParsePrimitiveBareString(t *testing.T) {
	typ, err := Parse(`"int"`)
	require.NoError(t, err)
	require.Equal(t, KindInt, typ.Kind())
	require.Same(t, Int, typ)
}

func TestParseEnum(t *testing.T) {
	typ, err := Parse(`{"type":"enum","name":"Suit","symbols":["SPADES","HEARTS","DIAMONDS","CLUBS"]}`)
	require.NoError(t, err)
	et := typ.(*EnumType)
	require.Equal(t, "Suit", et.Name.String())
	require.Equal(t, []string{"SPADES", "HEARTS", "DIAMONDS", "CLUBS"}, et.Symbols)
}

func TestParseFixed(t *testing.T) {
	typ, err := Parse(`{"type":"fixed","name":"Md5","size":16}`)
	require.NoError(t, err)
	ft := typ.(*FixedType)
	require.Equal(t, 16, ft.Size)
}

func TestParseArrayAndMap(t *testing.T) {
	typ, err := Parse(`{"type":"array","items":"long"}`)
	require.NoError(t, err)
	require.Equal(t, KindLong, typ.(*ArrayType).Items.Kind())

	typ, err = Parse(`{"type":"map","values":"string"}`)
	require.NoError(t, err)
	require.Equal(t, KindString, typ.(*MapType).Values.Kind())
}

func TestParseNamespaceInheritance(t *testing.T) {
	typ, err := Parse(`{
		"type": "record",
		"name": "Outer",
		"namespace": "com.example",
		"fields": [
			{"name": "inner", "type": {"type":"enum","name":"Inner","symbols":["A","B"]}}
		]
	}`)
	require.NoError(t, err)
	rt := typ.(*RecordType)
	require.Equal(t, "com.example.Outer", rt.Name.String())
	inner := rt.Fields[0].Type.(*EnumType)
	require.Equal(t, "com.example.Inner", inner.Name.String())
}

func TestParseDuplicateNameIsSchemaError(t *testing.T) {
	_, err := Parse(`{
		"type": "record",
		"name": "Envelope",
		"fields": [
			{"name": "a", "type": {"type":"fixed","name":"X","size":4}},
			{"name": "b", "type": {"type":"fixed","name":"X","size":8}}
		]
	}`)
	require.Error(t, err)
	var avroErr *Error
	require.ErrorAs(t, err, &avroErr)
	require.Equal(t, SchemaError, avroErr.Kind)
}

func TestParseUnknownNameIsSchemaError(t *testing.T) {
	_, err := Parse(`{"type":"record","name":"R","fields":[{"name":"f","type":"Ghost"}]}`)
	require.Error(t, err)
}

func TestParseCannotRedefinePrimitive(t *testing.T) {
	_, err := Parse(`{"type":"fixed","name":"int","size":4}`)
	require.Error(t, err)
}

func TestParseAliasesResolveAgainstOwnNamespace(t *testing.T) {
	typ, err := Parse(`{
		"type": "enum",
		"name": "Status",
		"namespace": "pkg",
		"aliases": ["OldStatus"],
		"symbols": ["OK", "FAIL"]
	}`)
	require.NoError(t, err)
	et := typ.(*EnumType)
	require.Len(t, et.Aliases, 1)
	require.Equal(t, "pkg.OldStatus", et.Aliases[0].String())
}

func TestParseInvalidJSONIsSchemaError(t *testing.T) {
	_, err := Parse(`{not valid json`)
	require.Error(t, err)
	var avroErr *Error
	require.ErrorAs(t, err, &avroErr)
	require.Equal(t, SchemaError, avroErr.Kind)
}

func TestMarshalUnmarshalTrailingBytesIsDecodeError(t *testing.T) {
	b, err := Marshal(Int, int32(5))
	require.NoError(t, err)
	_, err = Unmarshal(Int, append(b, 0xFF))
	require.Error(t, err)
	var avroErr *Error
	require.ErrorAs(t, err, &avroErr)
	require.Equal(t, DecodeError, avroErr.Kind)
}

func TestConfigTypeHookSubstitutesNode(t *testing.T) {
	cfg := NewConfig(WithTypeHook(func(raw interface{}, parent Type) (Type, bool) {
		if s, ok := raw.(string); ok && s == "long" {
			return Double, true
		}
		return nil, false
	}))
	typ, err := cfg.Parse(`{"type":"record","name":"R","fields":[{"name":"n","type":"long"}]}`)
	require.NoError(t, err)
	rt := typ.(*RecordType)
	require.Same(t, Double, rt.Fields[0].Type)
}

func TestUnmarshalWithDecodesThroughResolver(t *testing.T) {
	reader, err := Parse(`["null","int"]`)
	require.NoError(t, err)
	res, err := reader.CreateResolver(Int)
	require.NoError(t, err)

	b, err := Marshal(Int, int32(123))
	require.NoError(t, err)

	v, err := UnmarshalWith(reader, res, b, false)
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"int": int32(123)}, v)
}

func TestUnmarshalWithRejectsMismatchedResolver(t *testing.T) {
	reader, err := Parse(`["null","int"]`)
	require.NoError(t, err)
	res, err := reader.CreateResolver(Int)
	require.NoError(t, err)

	otherReader, err := Parse(`["null","long"]`)
	require.NoError(t, err)

	b, err := Marshal(Int, int32(123))
	require.NoError(t, err)

	_, err = UnmarshalWith(otherReader, res, b, false)
	require.Error(t, err)
	var avroErr *Error
	require.ErrorAs(t, err, &avroErr)
	require.Equal(t, ArgumentError, avroErr.Kind)
}

func TestUnmarshalWithAllowTrailing(t *testing.T) {
	res, err := Int.CreateResolver(Int)
	require.NoError(t, err)
	b, err := Marshal(Int, int32(7))
	require.NoError(t, err)
	b = append(b, 0xFF)

	_, err = UnmarshalWith(Int, res, b, false)
	require.Error(t, err)

	v, err := UnmarshalWith(Int, res, b, true)
	require.NoError(t, err)
	require.Equal(t, int32(7), v)
}

func TestMarshalGrowsBufferForLargeValues(t *testing.T) {
	big := make([]byte, 10000)
	for i := range big {
		big[i] = byte(i)
	}
	b, err := Marshal(Bytes, big)
	require.NoError(t, err)
	got, err := Unmarshal(Bytes, b)
	require.NoError(t, err)
	require.Equal(t, big, got)
}
