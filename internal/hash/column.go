package hash

import "github.com/cespare/xxhash/v2"

// ColumnID returns the xxHash64 of a column name.
func ColumnID(name string) uint64 {
	return xxhash.Sum64String(name)
}
