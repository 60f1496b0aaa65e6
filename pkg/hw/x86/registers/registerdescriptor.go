package registers

import (
	"github.com/Manu343726/x86regs/pkg/utils"
)

type RegisterDescriptor struct {
	// Register class
	Class *RegisterClassDescriptor

	// Index within the register class (the register slot)
	Index int

	// Custom name for the register instead of the default RegisterNamePrefix + Index name
	CustomName string

	// Register width. Only set for registers of classes without an uniform size
	Size RegisterSize

	// Register description (for documentation/debugging)
	Description string
}

// Returns the register name
func (d *RegisterDescriptor) Name() string {
	if len(d.CustomName) > 0 {
		return d.CustomName
	} else {
		return d.Class.DefaultRegisterName(d.Index)
	}
}

func (d *RegisterDescriptor) String() string {
	return d.Name()
}

// Returns the register identifier
func (d *RegisterDescriptor) Register() Register {
	return d.Class.First + Register(d.Index)
}

// Returns the register width, taking it from the class if the class has an uniform size
func (d *RegisterDescriptor) RegisterSize() RegisterSize {
	if d.Class.HasUniformSize() {
		return d.Class.Size
	}

	return d.Size
}

// Creates multiple consecutive indexed registers named after their class prefix
func MakeRegisters(count int) []*RegisterDescriptor {
	return utils.Iota(count, func(i int) *RegisterDescriptor {
		return &RegisterDescriptor{
			Index: i,
		}
	})
}

// Creates consecutive registers with custom names, in slot order
func MakeNamedRegisters(names ...string) []*RegisterDescriptor {
	return utils.Iota(len(names), func(i int) *RegisterDescriptor {
		return &RegisterDescriptor{
			Index:      i,
			CustomName: names[i],
		}
	})
}
