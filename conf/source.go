// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/mond"
)

// Map is a nested configuration tree produced by Load.
type Map map[string]any

// Source produces a nested configuration tree, or a diagnostic.
type Source interface {
	Load() mond.Either[string, map[string]any]
}

// Load resolves all sources in order and deep-merges them, later
// sources taking precedence over earlier ones on non-map conflicts.
// The first source that fails short-circuits the load.
func Load(srcs ...Source) mond.Either[string, Map] {
	trees := mond.TraverseEither(srcs, func(s Source) mond.Either[string, map[string]any] {
		return s.Load()
	})
	return mond.MapEither(trees, func(ms []map[string]any) Map {
		out := map[string]any{}
		for _, m := range ms {
			out = mond.DeepMerge(out, m)
		}
		return Map(out)
	})
}

// Require restricts the tree to the given top-level keys.
// The first missing key in argument order becomes a Left diagnostic.
func (m Map) Require(keys ...string) mond.Either[string, Map] {
	sub := mond.MapLeftEither(mond.GetByKeys(keys, map[string]any(m)), func(k string) string {
		return fmt.Sprintf("missing required config key %q", k)
	})
	return mond.MapEither(sub, func(got map[string]any) Map {
		return Map(got)
	})
}

// Decode unmarshals the tree into a struct via mapstructure,
// using `conf` field tags.
func (m Map) Decode(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "conf",
		Result:  v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(m))
}

type envSource struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source built from the environment variables of the
// current process that carry the given prefix. The prefix is stripped,
// names are lowercased and underscores become nesting separators:
// with prefix "APP", APP_DB_HOST=x yields {"db": {"host": "x"}}.
func FromEnv(prefix string) Source {
	return envSource{prefix: prefix, environ: os.Environ}
}

func (s envSource) Load() mond.Either[string, map[string]any] {
	flat := map[string]any{}
	for _, pair := range s.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || !strings.HasPrefix(k, s.prefix) {
			continue
		}
		key := strings.TrimPrefix(strings.TrimPrefix(k, s.prefix), "_")
		if key == "" {
			continue
		}
		flat[strings.ReplaceAll(strings.ToLower(key), "_", ".")] = v
	}
	return mond.Right[string](mond.Unflatten(flat, "."))
}

type yamlSource struct {
	r io.Reader
}

// FromYAML returns a Source parsed from YAML read from r.
func FromYAML(r io.Reader) Source {
	return yamlSource{r: r}
}

func (s yamlSource) Load() mond.Either[string, map[string]any] {
	b, err := io.ReadAll(s.r)
	if err != nil {
		return mond.Left[string, map[string]any](fmt.Sprintf("read yaml: %v", err))
	}
	return parseYAML(b)
}

type yamlFileSource struct {
	path string
}

// FromYAMLFile returns a Source parsed from the YAML file at path.
func FromYAMLFile(path string) Source {
	return yamlFileSource{path: path}
}

func (s yamlFileSource) Load() mond.Either[string, map[string]any] {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return mond.Left[string, map[string]any](fmt.Sprintf("read yaml file: %v", err))
	}
	return parseYAML(b)
}

func parseYAML(b []byte) mond.Either[string, map[string]any] {
	m := map[string]any{}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return mond.Left[string, map[string]any](fmt.Sprintf("invalid yaml: %v", err))
	}
	return mond.Right[string](m)
}
