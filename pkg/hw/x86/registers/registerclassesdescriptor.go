package registers

import (
	"errors"
	"math/bits"
	"strings"

	"github.com/Manu343726/x86regs/pkg/utils"
	"golang.org/x/exp/slices"
)

// Register catalog. Maps every register identifier to its class, width and name, and
// every (class, slot) pair back to its register identifier.
//
// The catalog is immutable once built, so all queries are safe for concurrent use
// without synchronization. Per register lookups are served from flat tables derived
// from the class blocks and never allocate.
type RegisterClassesDescriptor struct {
	// Class descriptors indexed by class
	classes [TOTAL_REGISTER_CLASSES]*RegisterClassDescriptor

	// Class descriptors in register identifier order
	blocks []*RegisterClassDescriptor

	registerClass [TOTAL_REGISTERS]RegisterClass
	registerSize  [TOTAL_REGISTERS]RegisterSize
	registerName  [TOTAL_REGISTERS]string
	registerSlot  [TOTAL_REGISTERS]uint8

	registersByName map[string]Register

	slotBits int
}

var ErrInvalidRegisterClass = errors.New("invalid register class")
var ErrInconsistentCatalog = errors.New("inconsistent register catalog")

// Returns the descriptor of a register class, nil if the class is not valid
func (d *RegisterClassesDescriptor) Class(rc RegisterClass) *RegisterClassDescriptor {
	if rc.IsValid() {
		return d.classes[rc]
	}

	return nil
}

// Returns all the register classes, in register identifier order
func (d *RegisterClassesDescriptor) AllClasses() []*RegisterClassDescriptor {
	return d.blocks
}

// Returns the register at the given slot of a register class, or Register_None
// if the class is not valid or the slot is out of range
func (d *RegisterClassesDescriptor) GetById(class RegisterClass, slot int) Register {
	if !class.IsValid() {
		return Register_None
	}

	descriptor := d.classes[class]

	if slot < 0 || slot >= len(descriptor.registers) {
		return Register_None
	}

	return descriptor.First + Register(slot)
}

// Returns the class of a register, or RegisterClass_None for Register_None and
// unassigned identifiers
func (d *RegisterClassesDescriptor) ClassOf(reg Register) RegisterClass {
	if reg > MAX_REGISTER {
		return RegisterClass_None
	}

	return d.registerClass[reg]
}

// Returns the width of a register, or RegisterSize_Invalid for Register_None and
// unassigned identifiers
func (d *RegisterClassesDescriptor) SizeOf(reg Register) RegisterSize {
	if reg > MAX_REGISTER {
		return RegisterSize_Invalid
	}

	return d.registerSize[reg]
}

// Returns the lowercase mnemonic of a register. The second result is false for
// Register_None and unassigned identifiers
func (d *RegisterClassesDescriptor) NameOf(reg Register) (string, bool) {
	if reg == Register_None || reg > MAX_REGISTER {
		return "", false
	}

	return d.registerName[reg], true
}

// Returns the index of a register within its class. The second result is false for
// Register_None and unassigned identifiers
func (d *RegisterClassesDescriptor) SlotOf(reg Register) (int, bool) {
	if reg == Register_None || reg > MAX_REGISTER {
		return 0, false
	}

	return int(d.registerSlot[reg]), true
}

// Returns the descriptor of a register
func (d *RegisterClassesDescriptor) Register(reg Register) (*RegisterDescriptor, error) {
	if class := d.ClassOf(reg); class != RegisterClass_None {
		return d.classes[class].Register(int(d.registerSlot[reg]))
	}

	return nil, utils.MakeError(ErrUnknownRegister, "register id %v", uint8(reg))
}

// Returns a register given its name. Names are case insensitive
func (d *RegisterClassesDescriptor) RegisterByName(name string) (Register, error) {
	if reg, found := d.registersByName[strings.ToLower(strings.TrimSpace(name))]; found {
		return reg, nil
	}

	return Register_None, utils.MakeError(ErrUnknownRegister, "'%v'", name)
}

// Finds the class block containing a register by binary search over the block starts.
// Used to cross check the flat lookup tables
func (d *RegisterClassesDescriptor) searchClass(reg Register) RegisterClass {
	i, found := slices.BinarySearchFunc(d.blocks, reg, func(block *RegisterClassDescriptor, reg Register) int {
		switch {
		case reg < block.First:
			return 1
		case block.Contains(reg):
			return 0
		}

		return -1
	})

	if !found {
		return RegisterClass_None
	}

	return d.blocks[i].Class
}

// Returns the minimal number of bits required to encode all register classes
func (d *RegisterClassesDescriptor) RegisterClassBits() int {
	return bits.Len(uint(TOTAL_REGISTER_CLASSES - 1))
}

// Returns the minimal number of bits required to encode the slot of any register
func (d *RegisterClassesDescriptor) RegisterSlotBits() int {
	return d.slotBits
}

// Returns the minimal number of bits required to univocally encode a register as a
// (class, slot) pair
func (d *RegisterClassesDescriptor) RegisterBits() int {
	return d.RegisterClassBits() + d.RegisterSlotBits()
}

// Returns the (class, slot) binary representation of a register. Register_None and
// unassigned identifiers encode as zero
func (d *RegisterClassesDescriptor) Encode(reg Register) uint64 {
	var result uint64 = 0
	class := d.ClassOf(reg)

	if class == RegisterClass_None {
		return result
	}

	view := utils.CreateBitView(&result)
	slotBits := d.RegisterSlotBits()

	view.Write(uint64(d.registerSlot[reg]), 0, slotBits)
	view.Write(uint64(class), slotBits, d.RegisterClassBits())

	return result
}

// Returns a register given its (class, slot) binary representation
func (d *RegisterClassesDescriptor) DecodeRegister(binaryRepresentation uint64) (Register, error) {
	view := utils.CreateBitView(&binaryRepresentation)
	slotBits := d.RegisterSlotBits()
	classBits := d.RegisterClassBits()

	if binaryRepresentation>>(slotBits+classBits) != 0 {
		return Register_None, utils.MakeError(ErrUnknownRegister, "%v (hex: %v) does not fit in %v bits",
			binaryRepresentation,
			utils.FormatUintHex(binaryRepresentation, (bits.Len64(binaryRepresentation)+3)/4),
			slotBits+classBits)
	}

	class := RegisterClass(view.Read(slotBits, classBits))

	if !class.IsValid() {
		return Register_None, utils.MakeError(ErrInvalidRegisterClass, "%v (binary: %v) is not a valid register class",
			uint8(class),
			utils.FormatUintBinary(uint64(class), classBits))
	}

	slot := int(view.Read(0, slotBits))

	if reg := d.GetById(class, slot); reg != Register_None {
		return reg, nil
	}

	return Register_None, utils.MakeError(ErrUnknownRegister, "register with index '%v' not found in register class '%v'", slot, class)
}

// Initializes a register catalog with all the given register class descriptors, given
// in register identifier order. Returns an error wrapping ErrInconsistentCatalog if the
// class blocks do not exactly partition the register identifier space
func NewRegisterClassesDescriptor(classes []*RegisterClassDescriptor) (*RegisterClassesDescriptor, error) {
	d := &RegisterClassesDescriptor{
		blocks:          classes,
		registersByName: make(map[string]Register, TOTAL_REGISTERS),
	}

	if err := d.build(); err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Fills the flat per register tables from the class blocks
func (d *RegisterClassesDescriptor) build() error {
	next := Register_None + 1

	for _, descriptor := range d.blocks {
		if !descriptor.Class.IsValid() {
			return utils.MakeError(ErrInconsistentCatalog, "block starting at register id %v has invalid class %v", uint8(descriptor.First), uint8(descriptor.Class))
		}

		if d.classes[descriptor.Class] != nil {
			return utils.MakeError(ErrInconsistentCatalog, "duplicated entry for register class '%v'", descriptor.Class)
		}

		if descriptor.TotalRegisters() == 0 {
			return utils.MakeError(ErrInconsistentCatalog, "register class '%v' has no registers", descriptor.Class)
		}

		if descriptor.First != next {
			return utils.MakeError(ErrInconsistentCatalog, "register class '%v' starts at register id %v, expected %v (blocks overlap or leave a gap)",
				descriptor.Class, uint8(descriptor.First), uint8(next))
		}

		if int(descriptor.First)+descriptor.TotalRegisters() > int(TOTAL_REGISTERS) {
			return utils.MakeError(ErrInconsistentCatalog, "register class '%v' declares %v registers, past the last register id %v",
				descriptor.Class, descriptor.TotalRegisters(), uint8(MAX_REGISTER))
		}

		d.classes[descriptor.Class] = descriptor

		for slot, register := range descriptor.registers {
			reg := descriptor.First + Register(slot)

			if register.Index != slot {
				return utils.MakeError(ErrInconsistentCatalog, "register '%v' of class '%v' has index %v but occupies slot %v", register.Name(), descriptor.Class, register.Index, slot)
			}

			if descriptor.HasUniformSize() && register.Size != RegisterSize_Invalid {
				return utils.MakeError(ErrInconsistentCatalog, "register '%v' overrides the uniform size of class '%v'", register.Name(), descriptor.Class)
			}

			if !descriptor.HasUniformSize() && register.Size == RegisterSize_Invalid {
				return utils.MakeError(ErrInconsistentCatalog, "register '%v' of class '%v' has no size", register.Name(), descriptor.Class)
			}

			name := register.Name()

			if _, duplicated := d.registersByName[name]; duplicated {
				return utils.MakeError(ErrInconsistentCatalog, "duplicated register name '%v'", name)
			}

			d.registersByName[name] = reg
			d.registerClass[reg] = descriptor.Class
			d.registerSize[reg] = register.RegisterSize()
			d.registerName[reg] = name
			d.registerSlot[reg] = uint8(slot)
		}

		next = descriptor.First + Register(descriptor.TotalRegisters())
	}

	if len(d.blocks) == 0 {
		return utils.MakeError(ErrInconsistentCatalog, "no register classes")
	}

	if int(next) != int(TOTAL_REGISTERS) {
		return utils.MakeError(ErrInconsistentCatalog, "register classes cover ids up to %v, but the last register id is %v", int(next)-1, uint8(MAX_REGISTER))
	}

	d.slotBits = utils.Max(utils.Map(d.blocks, (*RegisterClassDescriptor).RegisterBits))

	return nil
}

// Checks that the catalog is a total, non overlapping partition of the register
// identifier space and that the flat lookup tables agree with the class blocks
func (d *RegisterClassesDescriptor) Validate() error {
	for class := RegisterClass_None + 1; class < TOTAL_REGISTER_CLASSES; class++ {
		if d.classes[class] == nil {
			return utils.MakeError(ErrInconsistentCatalog, "missing entry for register class '%v'", class)
		}
	}

	if d.registerClass[Register_None] != RegisterClass_None || d.registerSize[Register_None] != RegisterSize_Invalid {
		return utils.MakeError(ErrInconsistentCatalog, "Register_None must not belong to any class")
	}

	for reg := Register_None + 1; reg <= MAX_REGISTER; reg++ {
		class := d.registerClass[reg]

		if searched := d.searchClass(reg); class == RegisterClass_None || searched != class {
			return utils.MakeError(ErrInconsistentCatalog, "register id %v classified as '%v' but its block is '%v'", uint8(reg), class, searched)
		}

		if !d.registerSize[reg].IsValid() {
			return utils.MakeError(ErrInconsistentCatalog, "register '%v' has invalid size %v", d.registerName[reg], uint32(d.registerSize[reg]))
		}

		if d.GetById(class, int(d.registerSlot[reg])) != reg {
			return utils.MakeError(ErrInconsistentCatalog, "register '%v' does not round trip through (%v, %v)", d.registerName[reg], class, d.registerSlot[reg])
		}
	}

	return nil
}
