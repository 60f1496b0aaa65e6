package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns the reference class blocks with the given transformation applied
func referenceBlocks(transform func([]*RegisterClassDescriptor) []*RegisterClassDescriptor) []*RegisterClassDescriptor {
	return transform([]*RegisterClassDescriptor{
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
}

func TestNewRegisterClassesDescriptor_Reference(t *testing.T) {
	d, err := NewRegisterClassesDescriptor(referenceBlocks(func(b []*RegisterClassDescriptor) []*RegisterClassDescriptor { return b }))

	require.NoError(t, err)
	assert.Equal(t, Registers.DocString(), d.DocString())
}

func TestNewRegisterClassesDescriptor_Defects(t *testing.T) {
	cases := []struct {
		name      string
		transform func([]*RegisterClassDescriptor) []*RegisterClassDescriptor
		message   string
	}{
		{
			name:      "empty",
			transform: func(b []*RegisterClassDescriptor) []*RegisterClassDescriptor { return nil },
			message:   "no register classes",
		},
		{
			name: "gap",
			transform: func(b []*RegisterClassDescriptor) []*RegisterClassDescriptor {
				return append(b[:4:4], b[5:]...)
			},
			message: "leave a gap",
		},
		{
			name: "overlap",
			transform: func(b []*RegisterClassDescriptor) []*RegisterClassDescriptor {
				b[1].First--
				return b
			},
			message: "starts at register id 16, expected 17",
		},
		{
			name: "missing trailing class",
			transform: func(b []*RegisterClassDescriptor) []*RegisterClassDescriptor {
				return b[:len(b)-1]
			},
			message: "cover ids up to 245",
		},
		{
			name: "count disagrees with enumeration",
			transform: func(b []*RegisterClassDescriptor) []*RegisterClassDescriptor {
				b[len(b)-1] = NewRegisterClassDescriptor(&RegisterClassDescriptor{
					Class:              RegisterClass_Bounds,
					First:              Register_BND0,
					Size:               RegisterSize_128,
					RegisterNamePrefix: "bnd",
				}, MakeRegisters(4))
				return b
			},
			message: "cover ids up to 249",
		},
		{
			name: "duplicated class",
			transform: func(b []*RegisterClassDescriptor) []*RegisterClassDescriptor {
				b[1].Class = RegisterClass_GeneralPurpose64
				return b
			},
			message: "duplicated entry for register class 'gpr64'",
		},
		{
			name: "size override in uniform class",
			transform: func(b []*RegisterClassDescriptor) []*RegisterClassDescriptor {
				b[0].AllRegisters()[3].Size = RegisterSize_32
				return b
			},
			message: "overrides the uniform size",
		},
		{
			name: "missing per register size",
			transform: func(b []*RegisterClassDescriptor) []*RegisterClassDescriptor {
				b[9].AllRegisters()[1].Size = RegisterSize_Invalid
				return b
			},
			message: "'eflags' of class 'flags' has no size",
		},
		{
			name: "duplicated name",
			transform: func(b []*RegisterClassDescriptor) []*RegisterClassDescriptor {
				b[5].RegisterNamePrefix = "st"
				return b
			},
			message: "duplicated register name 'st0'",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := NewRegisterClassesDescriptor(referenceBlocks(c.transform))

			assert.Nil(t, d)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInconsistentCatalog)
			assert.Contains(t, err.Error(), c.message)
		})
	}
}
