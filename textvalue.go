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

import "encoding/json"

// FromJSON parses JSON text and converts it into a value of type t,
// per Type.FromString.
func FromJSON(t Type, data []byte) (interface{}, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, wrapError(ArgumentError, err, "invalid JSON")
	}
	return t.FromString(raw, FromStringOptions{})
}

// ToJSONText renders v (a valid value of type t) as Avro JSON text.
func ToJSONText(t Type, v interface{}) ([]byte, error) {
	j, err := t.ToJSON(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(j)
}
