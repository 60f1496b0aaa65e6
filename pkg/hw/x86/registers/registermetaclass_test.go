package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneralPurposeHelpers(t *testing.T) {
	for _, reg := range []Register{Register_AL, Register_R15B, Register_AX, Register_EAX, Register_RAX, Register_R15} {
		assert.True(t, IsGPR(reg), "register %v", reg)
	}

	assert.True(t, IsGPR8(Register_AH))
	assert.True(t, IsGPR16(Register_SP))
	assert.True(t, IsGPR32(Register_R8D))
	assert.True(t, IsGPR64(Register_RSP))
	assert.False(t, IsGPR64(Register_ESP))

	for _, reg := range []Register{Register_None, Register_XMM0, Register_RIP, Register_ES, MAX_REGISTER + 1} {
		assert.False(t, IsGPR(reg), "register %v", reg)
	}
}

func TestVectorMetaClass(t *testing.T) {
	assert.True(t, IsVector(Register_XMM0))
	assert.True(t, IsVector(Register_YMM31))
	assert.True(t, IsVector(Register_ZMM15))
	assert.False(t, IsVector(Register_MM0))
	assert.False(t, IsVector(Register_K1))

	assert.Len(t, VectorMetaClass.AllRegisters(), 96)
	assert.Equal(t, "<vector:xmm,ymm,zmm>", VectorMetaClass.String())
}

func TestRegisterBelongsToClass(t *testing.T) {
	assert.NoError(t, SystemMetaClass.RegisterBelongsToClass(Register_CR3))
	assert.NoError(t, SystemMetaClass.RegisterBelongsToClass(Register_GDTR))

	err := SystemMetaClass.RegisterBelongsToClass(Register_RAX)
	assert.ErrorIs(t, err, ErrWrongRegisterClass)
	assert.Contains(t, err.Error(), "'rax' is gpr64")

	_, err = GeneralPurposeMetaClass.Class(RegisterClass_Mask)
	assert.ErrorIs(t, err, ErrWrongRegisterClass)

	descriptor, err := GeneralPurposeMetaClass.Class(RegisterClass_GeneralPurpose16)
	assert.NoError(t, err)
	assert.Equal(t, Register_AX, descriptor.First)
}

func TestMakeRegisterMetaClass_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { MakeRegisterMetaClass("empty", nil) })
	assert.Panics(t, func() { MakeRegisterMetaClass("none", []RegisterClass{RegisterClass_None}) })
}
