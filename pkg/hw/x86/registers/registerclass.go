package registers

type RegisterClass uint8

const (
	// Not a register class. Returned for invalid registers
	RegisterClass_None RegisterClass = iota

	RegisterClass_GeneralPurpose8
	RegisterClass_GeneralPurpose16
	RegisterClass_GeneralPurpose32
	RegisterClass_GeneralPurpose64

	// x87 FPU stack registers
	RegisterClass_FloatingPoint

	// MMX registers
	RegisterClass_Multimedia

	RegisterClass_Vector128
	RegisterClass_Vector256
	RegisterClass_Vector512
	RegisterClass_Flags
	RegisterClass_InstructionPointer
	RegisterClass_Segment

	// Descriptor table registers
	RegisterClass_Table

	RegisterClass_Test
	RegisterClass_Control
	RegisterClass_Debug

	// AVX-512 opmask registers
	RegisterClass_Mask

	// MPX bounds registers
	RegisterClass_Bounds

	// Number of register classes, including RegisterClass_None
	TOTAL_REGISTER_CLASSES
)

var registerClassNames = [TOTAL_REGISTER_CLASSES]string{
	RegisterClass_None:               "none",
	RegisterClass_GeneralPurpose8:    "gpr8",
	RegisterClass_GeneralPurpose16:   "gpr16",
	RegisterClass_GeneralPurpose32:   "gpr32",
	RegisterClass_GeneralPurpose64:   "gpr64",
	RegisterClass_FloatingPoint:      "fp",
	RegisterClass_Multimedia:         "mmx",
	RegisterClass_Vector128:          "xmm",
	RegisterClass_Vector256:          "ymm",
	RegisterClass_Vector512:          "zmm",
	RegisterClass_Flags:              "flags",
	RegisterClass_InstructionPointer: "ip",
	RegisterClass_Segment:            "segment",
	RegisterClass_Table:              "table",
	RegisterClass_Test:               "test",
	RegisterClass_Control:            "control",
	RegisterClass_Debug:              "debug",
	RegisterClass_Mask:               "mask",
	RegisterClass_Bounds:             "bounds",
}

func (rc RegisterClass) String() string {
	if rc < TOTAL_REGISTER_CLASSES {
		return registerClassNames[rc]
	}

	return "invalid"
}

// Returns true if the class is one of the concrete register families
func (rc RegisterClass) IsValid() bool {
	return rc > RegisterClass_None && rc < TOTAL_REGISTER_CLASSES
}

// Returns the register class with the given short name (as returned by String())
func ParseRegisterClass(name string) (RegisterClass, bool) {
	for class, className := range registerClassNames {
		if className == name && RegisterClass(class).IsValid() {
			return RegisterClass(class), true
		}
	}

	return RegisterClass_None, false
}
