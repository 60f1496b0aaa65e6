package registers

import (
	"fmt"

	"github.com/Manu343726/x86regs/pkg/utils"
	"golang.org/x/exp/slices"
)

// Represents a set of register classes playing the same architectural role (e.g. all
// general purpose registers regardless of width)
type RegisterMetaClass struct {
	classes map[RegisterClass]*RegisterClassDescriptor
	Name    string
}

func (mc *RegisterMetaClass) String() string {
	return fmt.Sprintf("<%v:%v>", mc.Name, utils.FormatSlice(mc.classList(), ","))
}

func (mc *RegisterMetaClass) classList() []RegisterClass {
	classes := utils.Keys(mc.classes)
	slices.Sort(classes)
	return classes
}

// Returns the descriptor for the given register class in the metaclass
func (mc *RegisterMetaClass) Class(class RegisterClass) (*RegisterClassDescriptor, error) {
	if descriptor, hasClass := mc.classes[class]; hasClass {
		return descriptor, nil
	} else {
		return nil, utils.MakeError(ErrWrongRegisterClass, "'%v' is not part of this %v register metaclass", class, mc)
	}
}

// Returns true if the register belongs to any of the classes of the metaclass
func (mc *RegisterMetaClass) Contains(reg Register) bool {
	_, hasClass := mc.classes[reg.Class()]
	return hasClass
}

// Checks if a given register belong to any of the register classes of this metaclass. If not returns a detailed error
func (mc *RegisterMetaClass) RegisterBelongsToClass(reg Register) error {
	if mc.Contains(reg) {
		return nil
	} else {
		return utils.MakeError(ErrWrongRegisterClass, "expected a %v register, '%v' is %v", mc, reg, reg.Class())
	}
}

// Returns all registers classes in the metaclass, in class order
func (mc *RegisterMetaClass) AllClasses() []*RegisterClassDescriptor {
	return utils.Map(mc.classList(), func(class RegisterClass) *RegisterClassDescriptor { return mc.classes[class] })
}

// Returns all registers in the metaclass
func (mc *RegisterMetaClass) AllRegisters() []*RegisterDescriptor {
	return utils.ConcatMap(mc.AllClasses(), (*RegisterClassDescriptor).AllRegisters)
}

// Returns a metaclass of all the given register classes
func MakeRegisterMetaClass(name string, classes []RegisterClass) *RegisterMetaClass {
	if len(classes) <= 0 {
		panic("register metaclass cannot be empty")
	}

	for _, class := range classes {
		if !class.IsValid() {
			panic(fmt.Errorf("register metaclass %v cannot contain class %v", name, uint8(class)))
		}
	}

	return &RegisterMetaClass{
		classes: utils.GenMapFromKeys(classes, Registers.Class),
		Name:    name,
	}
}

// All general purpose registers, any width
var GeneralPurposeMetaClass *RegisterMetaClass = MakeRegisterMetaClass("gpr", []RegisterClass{
	RegisterClass_GeneralPurpose8,
	RegisterClass_GeneralPurpose16,
	RegisterClass_GeneralPurpose32,
	RegisterClass_GeneralPurpose64,
})

// All SSE/AVX/AVX-512 vector registers
var VectorMetaClass *RegisterMetaClass = MakeRegisterMetaClass("vector", []RegisterClass{
	RegisterClass_Vector128,
	RegisterClass_Vector256,
	RegisterClass_Vector512,
})

// Registers only accessible to privileged code
var SystemMetaClass *RegisterMetaClass = MakeRegisterMetaClass("system", []RegisterClass{
	RegisterClass_Table,
	RegisterClass_Test,
	RegisterClass_Control,
	RegisterClass_Debug,
})

// Contains all the register metaclasses
var RegisterMetaClasses []*RegisterMetaClass = []*RegisterMetaClass{
	GeneralPurposeMetaClass,
	VectorMetaClass,
	SystemMetaClass,
}

func IsGPR(reg Register) bool {
	return GeneralPurposeMetaClass.Contains(reg)
}

func IsGPR8(reg Register) bool {
	return reg.Class() == RegisterClass_GeneralPurpose8
}

func IsGPR16(reg Register) bool {
	return reg.Class() == RegisterClass_GeneralPurpose16
}

func IsGPR32(reg Register) bool {
	return reg.Class() == RegisterClass_GeneralPurpose32
}

func IsGPR64(reg Register) bool {
	return reg.Class() == RegisterClass_GeneralPurpose64
}

func IsVector(reg Register) bool {
	return VectorMetaClass.Contains(reg)
}
