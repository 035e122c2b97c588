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

import "github.com/avrocodec/avro/internal/bytetap"

// Parse parses an Avro schema document and returns its root Type.
func Parse(schemaJSON string) (Type, error) {
	return parseSchema([]byte(schemaJSON))
}

// ParseBytes is Parse for a []byte schema document.
func ParseBytes(schemaJSON []byte) (Type, error) {
	return parseSchema(schemaJSON)
}

// Parse parses an Avro schema document using cfg's tunables, notably
// cfg's type hook if one was installed with WithTypeHook.
func (cfg *Config) Parse(schemaJSON string) (Type, error) {
	return parseSchemaWithHook([]byte(schemaJSON), cfg.typeHook)
}

// ParseBytes is Parse for a []byte schema document.
func (cfg *Config) ParseBytes(schemaJSON []byte) (Type, error) {
	return parseSchemaWithHook(schemaJSON, cfg.typeHook)
}

// Marshal encodes v against t's binary representation into a new
// buffer sized by cfg's initial reserve.
func Marshal(t Type, v interface{}) ([]byte, error) {
	return defaultConfig.Marshal(t, v)
}

// Unmarshal decodes one value of type t from buf. It is an error for
// buf to contain trailing bytes after the value.
func Unmarshal(t Type, buf []byte) (interface{}, error) {
	return defaultConfig.Unmarshal(t, buf)
}

// UnmarshalWith decodes buf through res, a resolver between a writer
// and reader schema, returning a value shaped like reader. See
// (*Config).UnmarshalWith.
func UnmarshalWith(reader Type, res *Resolver, buf []byte, allowTrailing bool) (interface{}, error) {
	return defaultConfig.UnmarshalWith(reader, res, buf, allowTrailing)
}

// Marshal encodes v against t using cfg's tunables.
func (cfg *Config) Marshal(t Type, v interface{}) ([]byte, error) {
	if !t.IsValid(v) {
		return nil, newError(ValidationError, "value is not valid for type %s", describeReader(t))
	}
	size := cfg.initialBufferSize
	// IsValid already passed, so the only way Encode can still set Err
	// is running out of room; grow and retry until it fits.
	for attempt := 0; attempt < 32; attempt++ {
		tap := bytetap.New(make([]byte, size))
		t.Encode(tap, v, false)
		if !tap.Err {
			return tap.Buf[:tap.Pos], nil
		}
		size *= 2
	}
	return nil, newError(ValidationError, "failed to encode value of type %s", describeReader(t))
}

// Unmarshal decodes one value of type t from buf using cfg's tunables.
func (cfg *Config) Unmarshal(t Type, buf []byte) (interface{}, error) {
	tap := bytetap.New(buf)
	v := t.Decode(tap)
	if tap.Err {
		return nil, newError(DecodeError, "malformed %s value", describeReader(t))
	}
	if !tap.AtEnd() {
		return nil, newError(DecodeError, "%d trailing byte(s) after %s value", tap.Remaining(), describeReader(t))
	}
	return v, nil
}

// UnmarshalWith decodes one writer-encoded value from buf through res,
// a *Resolver previously built by reader.CreateResolver(writerType),
// returning the value shaped like reader. It is an error for res to
// have been compiled for a different reader type. When allowTrailing
// is false, trailing bytes in buf after the value are also an error.
func (cfg *Config) UnmarshalWith(reader Type, res *Resolver, buf []byte, allowTrailing bool) (interface{}, error) {
	if res == nil || res.Reader() != reader {
		return nil, newError(ArgumentError, "resolver was not created by %s.CreateResolver", describeReader(reader))
	}
	tap := bytetap.New(buf)
	v := res.Decode(tap)
	if tap.Err {
		return nil, newError(DecodeError, "malformed %s value", describeReader(reader))
	}
	if !allowTrailing && !tap.AtEnd() {
		return nil, newError(DecodeError, "%d trailing byte(s) after %s value", tap.Remaining(), describeReader(reader))
	}
	return v, nil
}
