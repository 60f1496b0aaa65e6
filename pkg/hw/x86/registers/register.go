package registers

import (
	"fmt"

	"github.com/Manu343726/x86regs/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Returns the register at the given slot of a register class, or Register_None if the
// class is not valid or the slot is out of range
func GetById(class RegisterClass, slot int) Register {
	return Registers.GetById(class, slot)
}

// Returns a register given its name, ignoring case
func RegisterByName(name string) (Register, error) {
	return Registers.RegisterByName(name)
}

// Returns a register given its (class, slot) binary representation
func DecodeRegister(binaryRepresentation uint64) (Register, error) {
	return Registers.DecodeRegister(binaryRepresentation)
}

// Returns true if the identifier names an actual register
func (r Register) IsValid() bool {
	return r != Register_None && r <= MAX_REGISTER
}

// Returns the class of the register, RegisterClass_None if the register is not valid
func (r Register) Class() RegisterClass {
	return Registers.ClassOf(r)
}

// Returns the width of the register, RegisterSize_Invalid if the register is not valid
func (r Register) Size() RegisterSize {
	return Registers.SizeOf(r)
}

// Returns the lowercase register mnemonic. The second result is false if the register is not valid
func (r Register) Name() (string, bool) {
	return Registers.NameOf(r)
}

// Returns the index of the register within its class
func (r Register) Slot() (int, bool) {
	return Registers.SlotOf(r)
}

// Returns the register descriptor
func (r Register) Descriptor() (*RegisterDescriptor, error) {
	return Registers.Register(r)
}

// Returns the (class, slot) binary representation of the register
func (r Register) Encode() uint64 {
	return Registers.Encode(r)
}

func (r Register) String() string {
	if name, ok := r.Name(); ok {
		return name
	}

	if r == Register_None {
		return "none"
	}

	return fmt.Sprintf("invalid(%v)", uint8(r))
}

// Registers are serialized by name so that persisted records do not depend on the
// numeric identifiers
func (r Register) MarshalYAML() (any, error) {
	if name, ok := r.Name(); ok {
		return name, nil
	}

	if r == Register_None {
		return "", nil
	}

	return nil, utils.MakeError(ErrUnknownRegister, "register id %v", uint8(r))
}

func (r *Register) UnmarshalYAML(node *yaml.Node) error {
	var name string

	if err := node.Decode(&name); err != nil {
		return err
	}

	if name == "" {
		*r = Register_None
		return nil
	}

	reg, err := RegisterByName(name)

	if err != nil {
		return utils.MakeError(err, "line %v", node.Line)
	}

	*r = reg
	return nil
}
