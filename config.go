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

// Config holds the small set of tunables Marshal/Unmarshal accept,
// built with the functional-options pattern.
type Config struct {
	initialBufferSize int
	fingerprintAlgo   FingerprintAlgorithm
	typeHook          func(raw interface{}, parent Type) (Type, bool)
}

// Option configures a Config.
type Option func(*Config)

// WithInitialBufferSize sets the buffer Marshal first tries before
// growing. The default is 256 bytes.
func WithInitialBufferSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.initialBufferSize = n
		}
	}
}

// WithFingerprintAlgorithm sets the hash cfg.CreateFingerprint uses.
// The default is MD5, matching the Avro spec's historical default.
func WithFingerprintAlgorithm(algo FingerprintAlgorithm) Option {
	return func(c *Config) {
		c.fingerprintAlgo = algo
	}
}

// WithTypeHook installs a hook consulted for every schema node before
// Parse interprets it. Returning (t, true) substitutes t for that node
// (and its nested children, if any, are never visited); returning
// (nil, false) defers to the default parsing behavior. raw is the
// decoded JSON value for the node (a string, []interface{}, or
// map[string]interface{}); parent is the enclosing Type being built
// (nil at the schema's root).
func WithTypeHook(hook func(raw interface{}, parent Type) (Type, bool)) Option {
	return func(c *Config) {
		c.typeHook = hook
	}
}

// NewConfig builds a Config from opts, seeded with this package's
// defaults.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		initialBufferSize: 256,
		fingerprintAlgo:   FingerprintMD5,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConfig = NewConfig()
