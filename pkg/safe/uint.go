// Package safe converts between integer types without silent wrap-around.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is wrapped by every failed conversion.
var ErrOutOfRange = errors.New("value out of range")

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint64 rejects negative values.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, outOfRange(v, "uint64")
	}
	return uint64(v), nil
}

// Uint32 rejects negative values and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := Uint64(v)
	if err != nil || u > math.MaxUint32 {
		return 0, outOfRange(v, "uint32")
	}
	return uint32(u), nil
}

// Int64 rejects values above math.MaxInt64. Node RPCs take heights as int64.
func Int64[T Integer](v T) (int64, error) {
	if v < 0 {
		return int64(v), nil
	}
	if uint64(v) > math.MaxInt64 {
		return 0, outOfRange(v, "int64")
	}
	return int64(v), nil
}

func outOfRange[T Integer](v T, target string) error {
	return fmt.Errorf("%w: %d does not fit %s", ErrOutOfRange, v, target)
}
