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

func TestLogicalTypeUUIDRoundTrip(t *testing.T) {
	typ, err := Parse(`{"type":"string","logicalType":"uuid"}`)
	require.NoError(t, err)
	require.Equal(t, "uuid", LogicalTypeOf(typ))

	const id = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	v, err := typ.FromString(id, FromStringOptions{})
	require.NoError(t, err)
	require.Equal(t, id, v)

	b, err := Marshal(typ, v)
	require.NoError(t, err)
	got, err := Unmarshal(typ, b)
	require.NoError(t, err)
	require.Equal(t, v, got)

	j, err := typ.ToJSON(got)
	require.NoError(t, err)
	require.Equal(t, id, j)

	_, err = typ.FromString("not-a-uuid", FromStringOptions{})
	require.Error(t, err)
}

func TestLogicalTypeDateRoundTrip(t *testing.T) {
	typ, err := Parse(`{"type":"int","logicalType":"date"}`)
	require.NoError(t, err)
	require.Equal(t, "date", LogicalTypeOf(typ))

	v, err := typ.FromString("2024-03-15", FromStringOptions{})
	require.NoError(t, err)
	require.IsType(t, int32(0), v)

	j, err := typ.ToJSON(v)
	require.NoError(t, err)
	require.Equal(t, "2024-03-15", j)
}

func TestLogicalTypeTimestampMillisRoundTrip(t *testing.T) {
	typ, err := Parse(`{"type":"long","logicalType":"timestamp-millis"}`)
	require.NoError(t, err)
	require.Equal(t, "timestamp-millis", LogicalTypeOf(typ))

	v, err := typ.FromString("2024-03-15T10:30:00Z", FromStringOptions{})
	require.NoError(t, err)
	ms := v.(int64)
	require.NotZero(t, ms)

	b, err := Marshal(typ, v)
	require.NoError(t, err)
	got, err := Unmarshal(typ, b)
	require.NoError(t, err)
	require.Equal(t, ms, got)
}

func TestLogicalTypeDecimalOverBytesRoundTrip(t *testing.T) {
	typ, err := Parse(`{"type":"bytes","logicalType":"decimal","precision":6,"scale":2}`)
	require.NoError(t, err)

	v, err := typ.FromString("123.45", FromStringOptions{})
	require.NoError(t, err)
	b := v.([]byte)

	encoded, err := Marshal(typ, b)
	require.NoError(t, err)
	decoded, err := Unmarshal(typ, encoded)
	require.NoError(t, err)
	require.Equal(t, b, decoded)

	j, err := typ.ToJSON(decoded)
	require.NoError(t, err)
	require.Equal(t, "123.45", j)
}

func TestLogicalTypeDecimalOverFixedRoundTrip(t *testing.T) {
	typ, err := Parse(`{"type":"fixed","name":"Amount","size":8,"logicalType":"decimal","precision":12,"scale":2}`)
	require.NoError(t, err)
	ft := typ.(*FixedType)
	require.Equal(t, 2, ft.Scale)

	v, err := typ.FromString("-42.10", FromStringOptions{})
	require.NoError(t, err)
	b := v.([]byte)
	require.Len(t, b, 8)

	j, err := typ.ToJSON(b)
	require.NoError(t, err)
	require.Equal(t, "-42.10", j)

	encoded, err := Marshal(typ, b)
	require.NoError(t, err)
	decoded, err := Unmarshal(typ, encoded)
	require.NoError(t, err)
	require.Equal(t, b, decoded)
}

func TestLogicalTypeDoesNotChangeCompatibility(t *testing.T) {
	// logicalType is opaque metadata; resolving a plain int writer
	// against a date reader (both physically int) must still succeed.
	reader, err := Parse(`{"type":"int","logicalType":"date"}`)
	require.NoError(t, err)
	_, err = reader.CreateResolver(Int)
	require.NoError(t, err)
}
