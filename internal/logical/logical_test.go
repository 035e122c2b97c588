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

package logical

import (
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()
	s := FormatUUID(id)
	got, err := ParseUUID(s)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestDecimalRoundTrip(t *testing.T) {
	value := new(big.Rat).SetFrac64(12345, 100) // 123.45
	b := DecimalToBytes(value, 2)
	got := DecimalFromBytes(b, 2)
	require.Equal(t, value.RatString(), got.RatString())
}

func TestDecimalRoundTripNegative(t *testing.T) {
	value := new(big.Rat).SetFrac64(-12345, 100)
	b := DecimalToBytes(value, 2)
	got := DecimalFromBytes(b, 2)
	require.Equal(t, value.RatString(), got.RatString())
}

func TestDecimalToBytesMinimalAtPowerOfTwoMagnitude(t *testing.T) {
	// -128 is an exact power of two: its minimal two's-complement
	// encoding is the single byte 0x80, not a sign-extended 0xFF80.
	value := new(big.Rat).SetInt64(-128)
	b := DecimalToBytes(value, 0)
	require.Equal(t, []byte{0x80}, b)

	got := DecimalFromBytes(b, 0)
	require.Equal(t, value.RatString(), got.RatString())
}

func TestDateRoundTrip(t *testing.T) {
	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	days := DaysFromDate(d)
	got := DateFromDays(days)
	require.True(t, d.Equal(got))
}

func TestTimestampMillisRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	ms := MillisFromTimestamp(ts)
	got := TimestampFromMillis(ms)
	require.True(t, ts.Equal(got))
}

func TestTimestampMicrosRoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 15, 12, 30, 0, 123000, time.UTC)
	us := MicrosFromTimestamp(ts)
	got := TimestampFromMicros(us)
	require.True(t, ts.Equal(got))
}
