// Package hash provides the xxHash64 helpers used for request fingerprinting.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Fields computes a single xxHash64 over a sequence of fields using a
// streaming digest. Each field is terminated with a newline so that
// ("ab","c") and ("a","bc") hash differently.
func Fields(fields ...string) uint64 {
	d := xxhash.New()
	for _, f := range fields {
		_, _ = d.WriteString(f)
		_, _ = d.Write([]byte{'\n'})
	}

	return d.Sum64()
}
