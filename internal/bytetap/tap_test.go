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

package bytetap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 64, -64, 123456789, -123456789, math.MaxInt64, math.MinInt64}
	for _, v := range cases {
		buf := make([]byte, 10)
		w := New(buf)
		w.WriteLong(v)
		require.False(t, w.Err)
		r := New(buf[:w.Pos])
		got := r.ReadLong()
		require.False(t, r.Err)
		require.Equal(t, v, got)
		require.True(t, r.AtEnd())
	}
}

func TestIntZigZagVarintEncoding(t *testing.T) {
	// zig-zag varint: T.encode(64) = [0x80, 0x01]; T.encode(0) = [0x00]
	buf := make([]byte, 5)
	w := New(buf)
	w.WriteInt(64)
	require.Equal(t, []byte{0x80, 0x01}, buf[:w.Pos])

	buf = make([]byte, 5)
	w = New(buf)
	w.WriteInt(0)
	require.Equal(t, []byte{0x00}, buf[:w.Pos])
}

func TestStringLengthPrefixedEncoding(t *testing.T) {
	// length-prefixed UTF-8: T.encode("hi!") = [0x06, 0x68, 0x69, 0x21]
	buf := make([]byte, 10)
	w := New(buf)
	w.WriteString("hi!")
	require.Equal(t, []byte{0x06, 0x68, 0x69, 0x21}, buf[:w.Pos])
}

func TestIntRejectsOutOfRange(t *testing.T) {
	buf := make([]byte, 10)
	w := New(buf)
	w.WriteLong(int64(math.MaxInt32) + 1)
	r := New(buf[:w.Pos])
	r.ReadInt()
	require.True(t, r.Err)
}

func TestBooleanRejectsBadByte(t *testing.T) {
	r := New([]byte{2})
	r.ReadBoolean()
	require.True(t, r.Err)
}

func TestOverflowSetsErrWithoutPanic(t *testing.T) {
	r := New([]byte{})
	require.NotPanics(t, func() {
		r.ReadLong()
	})
	require.True(t, r.Err)

	w := New(make([]byte, 1))
	require.NotPanics(t, func() {
		w.WriteDouble(3.14)
	})
	require.True(t, w.Err)
}

func TestOverlongVarintIsAnError(t *testing.T) {
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	buf[10] = 0x01
	r := New(buf)
	r.ReadLong()
	require.True(t, r.Err)
}

func TestFloatDoubleRoundTrip(t *testing.T) {
	buf := make([]byte, 12)
	w := New(buf)
	w.WriteFloat(1.5)
	w.WriteDouble(-2.25)
	require.False(t, w.Err)

	r := New(buf)
	require.InDelta(t, float32(1.5), r.ReadFloat(), 1e-7)
	require.InDelta(t, -2.25, r.ReadDouble(), 1e-9)
	require.True(t, r.AtEnd())
}

func TestSkipThenDecodeYieldsSecondValue(t *testing.T) {
	buf := make([]byte, 32)
	w := New(buf)
	w.WriteString("first")
	w.WriteString("second")
	data := buf[:w.Pos]

	r := New(data)
	r.SkipBytes()
	require.False(t, r.Err)
	got := r.ReadString()
	require.False(t, r.Err)
	require.Equal(t, "second", got)
}
