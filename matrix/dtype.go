// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
)

// Dtype describes an element type as a NumPy array-protocol type string
// (typestr). The format consists of 3 parts:
//   - One character describing the byteorder of the data:
//     "<": little-endian; ">": big-endian; "|": not-relevant
//   - One character code giving the basic type of the array:
//     "i": integer; "u": unsigned integer; "f": floating point
//   - An integer specifying the number of bytes the type uses.
//
// Chunks read from disk carry a Dtype; a virtual matrix refuses to mix them.
type Dtype struct {
	ByteOrder ByteOrder
	BasicType BasicType
	ByteSize  int
}

// ByteOrder is the first typestr character.
type ByteOrder rune

const (
	BONotRelevant  ByteOrder = '|'
	BOLittleEndian ByteOrder = '<'
	BOBigEndian    ByteOrder = '>'
)

// BasicType is the second typestr character.
type BasicType rune

const (
	BTInteger       BasicType = 'i'
	BTUnsigned      BasicType = 'u'
	BTFloatingPoint BasicType = 'f'
)

var basicTypeNames = map[BasicType]string{
	BTInteger:       "int",
	BTUnsigned:      "uint",
	BTFloatingPoint: "float",
}

// ParseDtype parses a typestr such as "<f8" or "|u1".
func ParseDtype(s string) (Dtype, error) {
	var dt Dtype
	if len(s) < 3 {
		return dt, fmt.Errorf("ParseDtype(%q): too short: %w", s, ErrUnknownDtype)
	}

	dt.ByteOrder = ByteOrder(s[0])
	switch dt.ByteOrder {
	case BONotRelevant, BOLittleEndian, BOBigEndian:
	default:
		return dt, fmt.Errorf("ParseDtype(%q): byte order %q: %w", s, s[0], ErrUnknownDtype)
	}

	dt.BasicType = BasicType(s[1])
	if _, ok := basicTypeNames[dt.BasicType]; !ok {
		return dt, fmt.Errorf("ParseDtype(%q): basic type %q: %w", s, s[1], ErrUnknownDtype)
	}

	size, err := strconv.Atoi(s[2:])
	if err != nil {
		return dt, fmt.Errorf("ParseDtype(%q): size: %w", s, ErrUnknownDtype)
	}
	if size <= 0 {
		return dt, fmt.Errorf("ParseDtype(%q): size %d: %w", s, size, ErrUnknownDtype)
	}
	dt.ByteSize = size

	return dt, nil
}

// String renders the typestr, e.g. "<f8".
func (dt Dtype) String() string {
	return fmt.Sprintf("%c%c%d", dt.ByteOrder, dt.BasicType, dt.ByteSize)
}

// Human returns a Go-ish name such as "float64".
func (dt Dtype) Human() string {
	return fmt.Sprintf("%s%d", basicTypeNames[dt.BasicType], dt.ByteSize*8)
}

// Equal compares two dtypes. Single-byte types ignore the byte order.
func (dt Dtype) Equal(o Dtype) bool {
	if dt.BasicType != o.BasicType || dt.ByteSize != o.ByteSize {
		return false
	}
	if dt.ByteSize == 1 {
		return true
	}

	return dt.ByteOrder == o.ByteOrder
}

// DtypeOf returns the in-memory Dtype of T using the host byte order.
func DtypeOf[T Element]() Dtype {
	t := reflect.TypeOf((*T)(nil)).Elem()
	dt := Dtype{ByteOrder: nativeOrder(), ByteSize: int(t.Size())}
	switch t.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		dt.BasicType = BTInteger
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		dt.BasicType = BTUnsigned
	default:
		dt.BasicType = BTFloatingPoint
	}
	if dt.ByteSize == 1 {
		dt.ByteOrder = BONotRelevant
	}

	return dt
}

func nativeOrder() ByteOrder {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	if probe[0] == 1 {
		return BOLittleEndian
	}

	return BOBigEndian
}
