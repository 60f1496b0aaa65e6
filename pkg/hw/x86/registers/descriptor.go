package registers

import "fmt"

// Contains all the metadata describing the x86 registers and register classes.
// Blocks are listed in register identifier order
var Registers *RegisterClassesDescriptor = mustRegisterClassesDescriptor([]*RegisterClassDescriptor{
	GeneralPurpose64(),
	GeneralPurpose32(),
	GeneralPurpose16(),
	GeneralPurpose8(),
	FloatingPointRegisters(),
	MultimediaRegisters(),
	VectorRegisters(RegisterClass_Vector512, Register_ZMM0, RegisterSize_512, "zmm"),
	VectorRegisters(RegisterClass_Vector256, Register_YMM0, RegisterSize_256, "ymm"),
	VectorRegisters(RegisterClass_Vector128, Register_XMM0, RegisterSize_128, "xmm"),
	FlagsRegisters(),
	InstructionPointerRegisters(),
	SegmentRegisters(),
	TableRegisters(),
	TestRegisters(),
	ControlRegisters(),
	DebugRegisters(),
	MaskRegisters(),
	BoundsRegisters(),
})

func mustRegisterClassesDescriptor(classes []*RegisterClassDescriptor) *RegisterClassesDescriptor {
	d, err := NewRegisterClassesDescriptor(classes)

	if err != nil {
		panic(err)
	}

	return d
}

// 64 bit general purpose registers descriptor
func GeneralPurpose64() *RegisterClassDescriptor {
	registers := MakeNamedRegisters(
		"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
		"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	)

	registers[0].Description = "Accumulator"
	registers[4].Description = "Stack Pointer"
	registers[5].Description = "Frame Pointer"

	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:       RegisterClass_GeneralPurpose64,
		Description: "General purpose 64 bit integer registers",
		First:       Register_RAX,
		Size:        RegisterSize_64,
	}, registers)
}

func GeneralPurpose32() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:       RegisterClass_GeneralPurpose32,
		Description: "General purpose 32 bit integer registers",
		First:       Register_EAX,
		Size:        RegisterSize_32,
	}, MakeNamedRegisters(
		"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
		"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d",
	))
}

func GeneralPurpose16() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:       RegisterClass_GeneralPurpose16,
		Description: "General purpose 16 bit integer registers",
		First:       Register_AX,
		Size:        RegisterSize_16,
	}, MakeNamedRegisters(
		"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
		"r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w",
	))
}

// 8 bit general purpose registers descriptor. The legacy high byte registers (ah, ch,
// dh, bh) come right after the low byte ones, before the REX-only registers
func GeneralPurpose8() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:       RegisterClass_GeneralPurpose8,
		Description: "General purpose 8 bit integer registers",
		First:       Register_AL,
		Size:        RegisterSize_8,
	}, MakeNamedRegisters(
		"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh",
		"spl", "bpl", "sil", "dil",
		"r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b",
	))
}

// x87 FPU register stack descriptor
func FloatingPointRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_FloatingPoint,
		Description:        "x87 floating point register stack",
		First:              Register_ST0,
		Size:               RegisterSize_80,
		RegisterNamePrefix: "st",
	}, MakeRegisters(8))
}

func MultimediaRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_Multimedia,
		Description:        "MMX registers, aliasing the mantissa of the x87 stack",
		First:              Register_MM0,
		Size:               RegisterSize_64,
		RegisterNamePrefix: "mm",
	}, MakeRegisters(8))
}

// SSE/AVX/AVX-512 vector registers descriptor. All three widths have 32 registers
func VectorRegisters(class RegisterClass, first Register, size RegisterSize, prefix string) *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              class,
		Description:        fmt.Sprintf("%v bit vector registers", uint32(size)),
		First:              first,
		Size:               size,
		RegisterNamePrefix: prefix,
	}, MakeRegisters(32))
}

// Flags registers descriptor. Each register has its own width
func FlagsRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:       RegisterClass_Flags,
		Description: "Flags registers",
		First:       Register_RFLAGS,
	}, []*RegisterDescriptor{
		{Index: 0, CustomName: "rflags", Size: RegisterSize_64},
		{Index: 1, CustomName: "eflags", Size: RegisterSize_32},
		{Index: 2, CustomName: "flags", Size: RegisterSize_16},
	})
}

// Instruction pointer registers descriptor. Each register has its own width.
// MXCSR is kept at the end of this block: it immediately follows ip in the register
// identifier space and every identifier must belong to a class
func InstructionPointerRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:       RegisterClass_InstructionPointer,
		Description: "Instruction pointer registers",
		First:       Register_RIP,
	}, []*RegisterDescriptor{
		{Index: 0, CustomName: "rip", Size: RegisterSize_64, Description: "Instruction Pointer"},
		{Index: 1, CustomName: "eip", Size: RegisterSize_32},
		{Index: 2, CustomName: "ip", Size: RegisterSize_16},
		{Index: 3, CustomName: "mxcsr", Size: RegisterSize_32, Description: "SSE control and status register"},
	})
}

func SegmentRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:       RegisterClass_Segment,
		Description: "Segment registers, in ModRM.reg encoding order",
		First:       Register_ES,
		Size:        RegisterSize_16,
	}, MakeNamedRegisters("es", "ss", "cs", "ds", "fs", "gs"))
}

// Descriptor table registers. Their width depends on the operating mode
func TableRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:       RegisterClass_Table,
		Description: "Descriptor table registers",
		First:       Register_GDTR,
		Size:        RegisterSize_Dynamic,
	}, MakeNamedRegisters("gdtr", "ldtr", "idtr", "tr"))
}

func TestRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_Test,
		Description:        "Legacy test registers",
		First:              Register_TR0,
		Size:               RegisterSize_32,
		RegisterNamePrefix: "tr",
	}, MakeRegisters(8))
}

func ControlRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_Control,
		Description:        "Control registers",
		First:              Register_CR0,
		Size:               RegisterSize_Dynamic,
		RegisterNamePrefix: "cr",
	}, MakeRegisters(16))
}

func DebugRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_Debug,
		Description:        "Debug registers",
		First:              Register_DR0,
		Size:               RegisterSize_Dynamic,
		RegisterNamePrefix: "dr",
	}, MakeRegisters(16))
}

func MaskRegisters() *RegisterClassDescriptor {
	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_Mask,
		Description:        "AVX-512 opmask registers",
		First:              Register_K0,
		Size:               RegisterSize_64,
		RegisterNamePrefix: "k",
	}, MakeRegisters(8))
}

// MPX bounds registers. bnd0-bnd3 hold a lower and an upper 64 bit bound, the
// configuration and status registers are 64 bits wide
func BoundsRegisters() *RegisterClassDescriptor {
	registers := MakeRegisters(4)

	for _, register := range registers {
		register.Size = RegisterSize_128
	}

	registers = append(registers,
		&RegisterDescriptor{Index: 4, CustomName: "bndcfg", Size: RegisterSize_64},
		&RegisterDescriptor{Index: 5, CustomName: "bndstatus", Size: RegisterSize_64},
	)

	return NewRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:              RegisterClass_Bounds,
		Description:        "MPX bounds registers",
		First:              Register_BND0,
		RegisterNamePrefix: "bnd",
	}, registers)
}
