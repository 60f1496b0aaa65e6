package registers

import "fmt"

// Width of a register in bits
type RegisterSize uint32

const (
	RegisterSize_Invalid RegisterSize = 0

	// The width depends on the CPU operating mode (e.g. control registers are 32 bits
	// wide in protected mode and 64 bits wide in long mode)
	RegisterSize_Dynamic RegisterSize = 1

	RegisterSize_8   RegisterSize = 8
	RegisterSize_16  RegisterSize = 16
	RegisterSize_32  RegisterSize = 32
	RegisterSize_64  RegisterSize = 64
	RegisterSize_80  RegisterSize = 80
	RegisterSize_128 RegisterSize = 128
	RegisterSize_256 RegisterSize = 256
	RegisterSize_512 RegisterSize = 512
)

func (s RegisterSize) String() string {
	switch s {
	case RegisterSize_Invalid:
		return "invalid"
	case RegisterSize_Dynamic:
		return "dynamic"
	}

	return fmt.Sprintf("%v bits", uint32(s))
}

// Returns true if the size is one of the well known register widths
func (s RegisterSize) IsValid() bool {
	switch s {
	case RegisterSize_Dynamic, RegisterSize_8, RegisterSize_16, RegisterSize_32, RegisterSize_64,
		RegisterSize_80, RegisterSize_128, RegisterSize_256, RegisterSize_512:
		return true
	}

	return false
}

// Returns the width in bytes, or 0 if the size is invalid or dynamic
func (s RegisterSize) Bytes() int {
	if s == RegisterSize_Invalid || s == RegisterSize_Dynamic {
		return 0
	}

	return int(s) / 8
}
