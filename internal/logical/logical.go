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

// Package logical implements the value-level conventions behind
// Avro's logicalType attribute: uuid (over string), decimal (over
// bytes/fixed), and date/timestamp-millis/timestamp-micros (over
// int/long). None of these change the physical wire encoding of the
// type they annotate; they only give it a richer Go-side
// interpretation, mirroring how heetch/avro's decoder treats
// logicalType as a view over the same eight physical encodings.
package logical

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// ParseUUID parses the canonical string form of a uuid-logicalType
// string value.
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// FormatUUID renders id in the canonical form a uuid-logicalType
// string value takes on the wire.
func FormatUUID(id uuid.UUID) string {
	return id.String()
}

// DecimalFromBytes interprets b as a two's-complement big-endian
// integer and returns the decimal value it represents at the given
// scale (the schema's "scale" attribute: the number of digits to the
// right of the decimal point).
func DecimalFromBytes(b []byte, scale int) *big.Rat {
	unscaled := withSign(b)
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	return new(big.Rat).SetFrac(unscaled, denom)
}

// withSign interprets a two's-complement big-endian byte slice as a
// signed *big.Int, since math/big.Int.SetBytes alone assumes an
// unsigned big-endian encoding.
func withSign(b []byte) *big.Int {
	if len(b) == 0 || b[0]&0x80 == 0 {
		return new(big.Int).SetBytes(b)
	}
	inv := make([]byte, len(b))
	for i, c := range b {
		inv[i] = ^c
	}
	mag := new(big.Int).SetBytes(inv)
	mag.Add(mag, big.NewInt(1))
	return mag.Neg(mag)
}

// DecimalToBytes encodes value at the given scale as the minimal
// two's-complement big-endian byte sequence decimal logicalType
// values use.
func DecimalToBytes(value *big.Rat, scale int) []byte {
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	scaled := new(big.Int).Mul(value.Num(), denom)
	scaled.Div(scaled, value.Denom())
	return twosComplementBytes(scaled)
}

// twosComplementBytes renders value as the minimal two's-complement
// big-endian byte sequence that represents it.
func twosComplementBytes(value *big.Int) []byte {
	if value.Sign() == 0 {
		return []byte{0}
	}
	mag := new(big.Int).Abs(value)
	if value.Sign() > 0 {
		b := mag.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}
	nbytes := minimalNegativeBytes(mag)
	out := make([]byte, nbytes)
	magBytes := mag.Bytes()
	copy(out[nbytes-len(magBytes):], magBytes)
	borrow := 1
	for i := nbytes - 1; i >= 0; i-- {
		v := int(^out[i]&0xff) + borrow
		out[i] = byte(v)
		borrow = v >> 8
	}
	return out
}

// minimalNegativeBytes returns the smallest byte count n for which
// -mag fits in an n-byte two's-complement integer, i.e. the smallest n
// with mag <= 2^(8n-1). That takes mag.BitLen()+1 bits (one above the
// magnitude for the sign), except when mag is an exact power of two,
// which fits in mag.BitLen() bits.
func minimalNegativeBytes(mag *big.Int) int {
	bits := mag.BitLen()
	isPow2 := new(big.Int).And(mag, new(big.Int).Sub(mag, big.NewInt(1))).Sign() == 0
	if !isPow2 {
		bits++
	}
	return (bits + 7) / 8
}

// epoch is the Avro logical-type reference instant for date and
// timestamp values.
var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// DateFromDays converts a date-logicalType int (days since the Unix
// epoch) to a UTC time.Time at midnight.
func DateFromDays(days int32) time.Time {
	return epoch.AddDate(0, 0, int(days))
}

// DaysFromDate converts t to the number of days since the Unix epoch.
func DaysFromDate(t time.Time) int32 {
	d := t.UTC().Sub(epoch).Hours() / 24
	return int32(d)
}

// TimestampFromMillis converts a timestamp-millis-logicalType long to
// a UTC time.Time.
func TimestampFromMillis(ms int64) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

// MillisFromTimestamp converts t to milliseconds since the Unix epoch.
func MillisFromTimestamp(t time.Time) int64 {
	return t.UTC().Sub(epoch).Milliseconds()
}

// TimestampFromMicros converts a timestamp-micros-logicalType long to
// a UTC time.Time.
func TimestampFromMicros(us int64) time.Time {
	return epoch.Add(time.Duration(us) * time.Microsecond)
}

// MicrosFromTimestamp converts t to microseconds since the Unix epoch.
func MicrosFromTimestamp(t time.Time) int64 {
	return t.UTC().Sub(epoch).Microseconds()
}
