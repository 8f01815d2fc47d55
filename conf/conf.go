// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package conf resolves configuration values from environment variables,
// mounted secret files and layered sources, returning every result as a
// [mond.Either] so callers can chain lookups with the container
// combinators. Failures are diagnostics on the Left channel, never
// panics or sentinel errors.
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.hybscloud.com/mond"
)

// DefaultSecretBase is the directory secrets are read from unless
// overridden with WithSecretBase. It matches the mount point used by
// container orchestrators.
const DefaultSecretBase = "/run/secrets"

type settings struct {
	def        string
	hasDefault bool
	secret     string
	secretBase string
}

// Option configures a Get lookup.
type Option func(*settings)

// WithDefault sets the value returned when neither the environment
// variable nor the secret file provides one.
func WithDefault(v string) Option {
	return func(s *settings) {
		s.def = v
		s.hasDefault = true
	}
}

// WithSecret names a secret file to consult when the environment
// variable is unset. The file is read from the secret base directory.
func WithSecret(name string) Option {
	return func(s *settings) {
		s.secret = name
	}
}

// WithSecretBase overrides the secret base directory.
func WithSecretBase(dir string) Option {
	return func(s *settings) {
		s.secretBase = dir
	}
}

// Get resolves a single config value by name.
// Resolution order: the environment variable wins, then the secret file,
// then the default. With none of the three available the result is a
// Left diagnostic naming the key.
func Get(name string, opts ...Option) mond.Either[string, string] {
	s := settings{secretBase: DefaultSecretBase}
	for _, o := range opts {
		o(&s)
	}
	if v, ok := os.LookupEnv(name); ok {
		return mond.Right[string](v)
	}
	if s.secret != "" {
		if b, err := os.ReadFile(filepath.Join(s.secretBase, s.secret)); err == nil {
			return mond.Right[string](strings.TrimSpace(string(b)))
		}
	}
	if s.hasDefault {
		return mond.Right[string](s.def)
	}
	return mond.Left[string, string](fmt.Sprintf("config %q not found in environment, secrets or defaults", name))
}

// GetParsed resolves a config value and parses it into A.
// Defaults are parsed like any other raw value; a parse failure is a
// Left diagnostic naming the key and the cause.
func GetParsed[A any](name string, parse func(string) (A, error), opts ...Option) mond.Either[string, A] {
	return mond.FlatMapEither(Get(name, opts...), func(raw string) mond.Either[string, A] {
		v, err := parse(raw)
		if err != nil {
			return mond.Left[string, A](fmt.Sprintf("config %q: %v", name, err))
		}
		return mond.Right[string](v)
	})
}
