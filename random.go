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

import "math/rand"

// RandomValue returns a random value of type t, seeded by seed. It
// exists for round-trip tests: generate a value, encode it, decode
// it, and compare.
func RandomValue(t Type, seed int64) interface{} {
	return t.Random(rand.New(rand.NewSource(seed)))
}
