package registers

// Identifies an x86 architectural register. Identifiers are grouped in contiguous blocks,
// one block per register class, and the numeric values are stable: persisted
// identifiers depend on this ordering, so new registers may only be appended.
type Register uint8

const (
	Register_None Register = iota

	// General purpose registers 64-bit
	Register_RAX
	Register_RCX
	Register_RDX
	Register_RBX
	Register_RSP
	Register_RBP
	Register_RSI
	Register_RDI
	Register_R8
	Register_R9
	Register_R10
	Register_R11
	Register_R12
	Register_R13
	Register_R14
	Register_R15

	// General purpose registers 32-bit
	Register_EAX
	Register_ECX
	Register_EDX
	Register_EBX
	Register_ESP
	Register_EBP
	Register_ESI
	Register_EDI
	Register_R8D
	Register_R9D
	Register_R10D
	Register_R11D
	Register_R12D
	Register_R13D
	Register_R14D
	Register_R15D

	// General purpose registers 16-bit
	Register_AX
	Register_CX
	Register_DX
	Register_BX
	Register_SP
	Register_BP
	Register_SI
	Register_DI
	Register_R8W
	Register_R9W
	Register_R10W
	Register_R11W
	Register_R12W
	Register_R13W
	Register_R14W
	Register_R15W

	// General purpose registers 8-bit
	Register_AL
	Register_CL
	Register_DL
	Register_BL
	Register_AH
	Register_CH
	Register_DH
	Register_BH
	Register_SPL
	Register_BPL
	Register_SIL
	Register_DIL
	Register_R8B
	Register_R9B
	Register_R10B
	Register_R11B
	Register_R12B
	Register_R13B
	Register_R14B
	Register_R15B

	// Legacy floating point registers
	Register_ST0
	Register_ST1
	Register_ST2
	Register_ST3
	Register_ST4
	Register_ST5
	Register_ST6
	Register_ST7

	// Multimedia registers
	Register_MM0
	Register_MM1
	Register_MM2
	Register_MM3
	Register_MM4
	Register_MM5
	Register_MM6
	Register_MM7

	// Vector registers 512-bit
	Register_ZMM0
	Register_ZMM1
	Register_ZMM2
	Register_ZMM3
	Register_ZMM4
	Register_ZMM5
	Register_ZMM6
	Register_ZMM7
	Register_ZMM8
	Register_ZMM9
	Register_ZMM10
	Register_ZMM11
	Register_ZMM12
	Register_ZMM13
	Register_ZMM14
	Register_ZMM15
	Register_ZMM16
	Register_ZMM17
	Register_ZMM18
	Register_ZMM19
	Register_ZMM20
	Register_ZMM21
	Register_ZMM22
	Register_ZMM23
	Register_ZMM24
	Register_ZMM25
	Register_ZMM26
	Register_ZMM27
	Register_ZMM28
	Register_ZMM29
	Register_ZMM30
	Register_ZMM31

	// Vector registers 256-bit
	Register_YMM0
	Register_YMM1
	Register_YMM2
	Register_YMM3
	Register_YMM4
	Register_YMM5
	Register_YMM6
	Register_YMM7
	Register_YMM8
	Register_YMM9
	Register_YMM10
	Register_YMM11
	Register_YMM12
	Register_YMM13
	Register_YMM14
	Register_YMM15
	Register_YMM16
	Register_YMM17
	Register_YMM18
	Register_YMM19
	Register_YMM20
	Register_YMM21
	Register_YMM22
	Register_YMM23
	Register_YMM24
	Register_YMM25
	Register_YMM26
	Register_YMM27
	Register_YMM28
	Register_YMM29
	Register_YMM30
	Register_YMM31

	// Vector registers 128-bit
	Register_XMM0
	Register_XMM1
	Register_XMM2
	Register_XMM3
	Register_XMM4
	Register_XMM5
	Register_XMM6
	Register_XMM7
	Register_XMM8
	Register_XMM9
	Register_XMM10
	Register_XMM11
	Register_XMM12
	Register_XMM13
	Register_XMM14
	Register_XMM15
	Register_XMM16
	Register_XMM17
	Register_XMM18
	Register_XMM19
	Register_XMM20
	Register_XMM21
	Register_XMM22
	Register_XMM23
	Register_XMM24
	Register_XMM25
	Register_XMM26
	Register_XMM27
	Register_XMM28
	Register_XMM29
	Register_XMM30
	Register_XMM31

	// Flags registers
	Register_RFLAGS
	Register_EFLAGS
	Register_FLAGS

	// Instruction pointer registers. MXCSR shares the block, see ipRegisters()
	Register_RIP
	Register_EIP
	Register_IP
	Register_MXCSR

	// Segment registers
	Register_ES
	Register_SS
	Register_CS
	Register_DS
	Register_FS
	Register_GS

	// Table registers
	Register_GDTR
	Register_LDTR
	Register_IDTR
	Register_TR

	// Test registers
	Register_TR0
	Register_TR1
	Register_TR2
	Register_TR3
	Register_TR4
	Register_TR5
	Register_TR6
	Register_TR7

	// Control registers
	Register_CR0
	Register_CR1
	Register_CR2
	Register_CR3
	Register_CR4
	Register_CR5
	Register_CR6
	Register_CR7
	Register_CR8
	Register_CR9
	Register_CR10
	Register_CR11
	Register_CR12
	Register_CR13
	Register_CR14
	Register_CR15

	// Debug registers
	Register_DR0
	Register_DR1
	Register_DR2
	Register_DR3
	Register_DR4
	Register_DR5
	Register_DR6
	Register_DR7
	Register_DR8
	Register_DR9
	Register_DR10
	Register_DR11
	Register_DR12
	Register_DR13
	Register_DR14
	Register_DR15

	// Mask registers
	Register_K0
	Register_K1
	Register_K2
	Register_K3
	Register_K4
	Register_K5
	Register_K6
	Register_K7

	// Bounds registers
	Register_BND0
	Register_BND1
	Register_BND2
	Register_BND3
	Register_BNDCFG
	Register_BNDSTATUS

	// Number of register identifiers, including Register_None
	TOTAL_REGISTERS
)

// Highest assigned register identifier
const MAX_REGISTER = TOTAL_REGISTERS - 1
