package codebuild

import (
	"reflect"

	"github.com/cespare/xxhash"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// ErrDuplicateKey is returned, wrapped, when an entry is added to a map field
// under a key the map already holds.
var ErrDuplicateKey = errors.New("duplicated key")

// canonical marshals with sorted map keys, so equal values encode to the same bytes.
var canonical = jsoniter.ConfigCompatibleWithStandardLibrary

func duplicateKeyError(field, key string) error {
	return errors.Wrapf(ErrDuplicateKey, "%s: (%s) is provided", field, key)
}

func copyList[T any](v []T) []T {
	if v == nil {
		return nil
	}
	return append(make([]T, 0, len(v)), v...)
}

func copyNestedList[T any](v [][]T) [][]T {
	if v == nil {
		return nil
	}
	out := make([][]T, 0, len(v))
	for _, e := range v {
		out = append(out, copyList(e))
	}
	return out
}

func copyMap[K comparable, V any](v map[K]V) map[K]V {
	if v == nil {
		return nil
	}
	out := make(map[K]V, len(v))
	for k, e := range v {
		out[k] = e
	}
	return out
}

func equalShapes(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}

// hashShape panics when v cannot be encoded. Shapes only hold scalars, times,
// blobs, lists, maps and nested shapes, which always encode.
func hashShape(v interface{}) uint64 {
	b, err := canonical.Marshal(v)
	if err != nil {
		panic(errors.Wrapf(err, "codebuild: cannot hash %T", v))
	}
	return xxhash.Sum64(b)
}
