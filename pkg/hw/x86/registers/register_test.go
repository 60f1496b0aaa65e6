package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type operandRecord struct {
	Base  Register `yaml:"base"`
	Index Register `yaml:"index"`
}

func TestRegister_YAML(t *testing.T) {
	out, err := yaml.Marshal(operandRecord{Base: Register_RBP, Index: Register_None})
	require.NoError(t, err)
	assert.Equal(t, "base: rbp\nindex: \"\"\n", string(out))

	var record operandRecord
	require.NoError(t, yaml.Unmarshal([]byte("base: R12\nindex: xmm3\n"), &record))
	assert.Equal(t, Register_R12, record.Base)
	assert.Equal(t, Register_XMM3, record.Index)
}

func TestRegister_YAMLErrors(t *testing.T) {
	_, err := yaml.Marshal(operandRecord{Base: MAX_REGISTER + 1})
	assert.Error(t, err)

	var record operandRecord
	err = yaml.Unmarshal([]byte("base: rzz\n"), &record)
	assert.ErrorIs(t, err, ErrUnknownRegister)
}

func TestRegisterClass_Parse(t *testing.T) {
	for _, descriptor := range Registers.AllClasses() {
		class, ok := ParseRegisterClass(descriptor.Class.String())
		assert.True(t, ok)
		assert.Equal(t, descriptor.Class, class)
	}

	_, ok := ParseRegisterClass("none")
	assert.False(t, ok)
	assert.Equal(t, "invalid", TOTAL_REGISTER_CLASSES.String())
}

func TestRegisterSize(t *testing.T) {
	assert.Equal(t, "64 bits", RegisterSize_64.String())
	assert.Equal(t, "dynamic", RegisterSize_Dynamic.String())
	assert.Equal(t, 10, RegisterSize_80.Bytes())
	assert.Equal(t, 0, RegisterSize_Dynamic.Bytes())
	assert.False(t, RegisterSize(24).IsValid())
	assert.False(t, RegisterSize_Invalid.IsValid())
}
