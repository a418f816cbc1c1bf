// Package envsource builds the flat key/value configuration that the rest of the module reads.
//
// A Source is usually the process environment, optionally layered over one or more dotenv
// files. Sources are plain maps so tests can construct them as literals.
package envsource

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

// ErrReadDotenv is returned when a dotenv file cannot be read or parsed.
var ErrReadDotenv = errors.New("failed to read dotenv file")

// Source is a flat mapping of configuration keys to raw string values.
type Source map[string]string

// FromEnviron parses a list of KEY=VALUE pairs in the format returned by os.Environ.
// Entries without a separator are ignored.
func FromEnviron(environ []string) Source {
	src := make(Source, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		src[key] = value
	}
	return src
}

// FromProcess snapshots the current process environment.
func FromProcess() Source {
	return FromEnviron(os.Environ())
}

// FromDotenv reads one or more dotenv files. When a key appears in more than one file, the
// value from the later file wins.
func FromDotenv(paths ...string) (Source, error) {
	layers := make([]Source, 0, len(paths))
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadDotenv, path, err)
		}
		layers = append(layers, Source(values))
	}
	return Overlay(layers...), nil
}

// Overlay merges sources left to right; values in later sources replace earlier ones.
func Overlay(layers ...Source) Source {
	out := make(Source)
	for _, layer := range layers {
		maps.Copy(out, layer)
	}
	return out
}

// Get returns the raw value for key, or an empty string when it is unset.
func (s Source) Get(key string) string {
	return s[key]
}

// Lookup returns the raw value for key and whether the key exists at all.
func (s Source) Lookup(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// Present reports whether key is set to a non-empty value. An empty value counts as missing.
func (s Source) Present(key string) bool {
	return s[key] != ""
}

// WithPrefixes returns the subset of keys that begin with any of the given prefixes.
func (s Source) WithPrefixes(prefixes ...string) Source {
	out := make(Source)
	for key, value := range s {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				out[key] = value
				break
			}
		}
	}
	return out
}

// Keys returns the keys of the source in sorted order.
func (s Source) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}
