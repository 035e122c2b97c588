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

// Package avro parses Avro schemas into an in-memory type graph,
// encodes and decodes values against it, and resolves a writer schema
// against a reader schema for schema evolution.
//
// A schema is parsed once with Parse and produces a Type, the common
// interface every schema node (the eight primitives plus enum, fixed,
// array, map, union, and record) implements. Values are generic Go
// values — nil, bool, int32, int64, float32, float64, []byte, string,
// []interface{}, or map[string]interface{} — rather than
// statically-typed Go structs. null is nil; boolean is bool; int and
// long are int32 and int64; float and double are float32 and float64;
// bytes and fixed are []byte; string and enum are string; array is
// []interface{}; map and record are map[string]interface{}; and a
// non-null union value is a single-key map[string]interface{} keyed by
// the branch's tag.
//
// Marshal and Unmarshal encode and decode a value against a single
// Type. When a reader's schema differs from the schema data was
// written with, compile a Resolver with Type.CreateResolver and use it
// to decode instead.
package avro
