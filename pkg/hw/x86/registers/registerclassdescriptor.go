package registers

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/Manu343726/x86regs/pkg/utils"
)

// Describes the contiguous block of register identifiers of a register class
type RegisterClassDescriptor struct {
	Class       RegisterClass
	Description string

	// First register identifier of the class block. Slot N of the class is First + N
	First Register

	// Width of every register in the class. RegisterSize_Invalid means the registers
	// of the class have different widths and each register descriptor carries its own
	Size RegisterSize

	RegisterNamePrefix string

	registers []*RegisterDescriptor
}

var ErrUnknownRegister = errors.New("unknown register")
var ErrWrongRegisterClass = errors.New("wrong register class")

// Returns the number of registers in the class
func (d *RegisterClassDescriptor) TotalRegisters() int {
	return len(d.registers)
}

// Returns the set of all registers in the class
func (d *RegisterClassDescriptor) AllRegisters() []*RegisterDescriptor {
	return d.registers
}

// Returns the last register identifier of the class block
func (d *RegisterClassDescriptor) Last() Register {
	return d.First + Register(d.TotalRegisters()-1)
}

// Returns true if the register identifier falls within the class block
func (d *RegisterClassDescriptor) Contains(reg Register) bool {
	return reg >= d.First && int(reg-d.First) < d.TotalRegisters()
}

// Returns true if all registers of the class have the same width
func (d *RegisterClassDescriptor) HasUniformSize() bool {
	return d.Size != RegisterSize_Invalid
}

// Returns a register of the class given its index
func (d *RegisterClassDescriptor) Register(index int) (*RegisterDescriptor, error) {
	if index >= 0 && index < len(d.registers) {
		return d.registers[index], nil
	} else {
		return nil, utils.MakeError(ErrUnknownRegister, "register with index '%v' not found in register class, '%v' class has only %v registers", index, d.Class, d.TotalRegisters())
	}
}

// Returns the number of bits required to binary encode the index of a register of the class
func (d *RegisterClassDescriptor) RegisterBits() int {
	return bits.Len(uint(d.TotalRegisters() - 1))
}

// Returns the name used to refer to a register of the class in case the register didn't specify a custom one
func (d *RegisterClassDescriptor) DefaultRegisterName(index int) string {
	return d.RegisterNamePrefix + fmt.Sprint(index)
}

// Returns the binary representation of the register class
func (d *RegisterClassDescriptor) Encode() uint64 {
	return uint64(d.Class)
}

func (d *RegisterClassDescriptor) String() string {
	return fmt.Sprintf("%v [%v..%v]", d.Class, d.First, d.Last())
}

// Initializes a register class descriptor with the given registers
func NewRegisterClassDescriptor(descriptor *RegisterClassDescriptor, registers []*RegisterDescriptor) *RegisterClassDescriptor {
	descriptor.registers = registers

	for _, register := range registers {
		register.Class = descriptor
	}

	return descriptor
}
