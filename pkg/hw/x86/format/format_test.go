package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("mov rax, qword ptr [rbp+0x10] ; load")

	kinds := make([]TokenKind, len(tokens))
	texts := make([]string, len(tokens))

	for i, token := range tokens {
		kinds[i] = token.Kind
		texts[i] = token.Text
	}

	assert.Equal(t, []string{"mov", "rax", ",", "[", "rbp", "+", "0x10", "]", "; load"}, texts)
	assert.Equal(t, []TokenKind{
		TokenKind_Mnemonic,
		TokenKind_Register,
		TokenKind_Punctuation,
		TokenKind_Punctuation,
		TokenKind_Register,
		TokenKind_Punctuation,
		TokenKind_Number,
		TokenKind_Punctuation,
		TokenKind_Comment,
	}, kinds)

	assert.Equal(t, registers.Register_RAX, tokens[1].Register)
	assert.Equal(t, registers.Register_RBP, tokens[4].Register)
}

func TestTokenize_RegisterNamesAreCaseInsensitive(t *testing.T) {
	tokens := Tokenize("VADDPS ZMM1, ZMM2, XMM31")

	require.Len(t, tokens, 6)
	assert.Equal(t, TokenKind_Mnemonic, tokens[0].Kind)
	assert.Equal(t, registers.Register_ZMM1, tokens[1].Register)
	assert.Equal(t, registers.Register_ZMM2, tokens[3].Register)
	assert.Equal(t, registers.Register_XMM31, tokens[5].Register)
}

func TestHighlightAssembly_PreservesTextWithoutColor(t *testing.T) {
	for _, line := range []string{
		"mov rax, qword ptr [rbp+0x10] ; load",
		"  push   r15",
		"",
		"nop",
	} {
		assert.Equal(t, line, HighlightAssembly(line))
	}
}

func TestRegisterColor(t *testing.T) {
	assert.Same(t, gprColor, RegisterColor(registers.Register_R8W))
	assert.Same(t, vectorColor, RegisterColor(registers.Register_YMM3))
	assert.Same(t, systemColor, RegisterColor(registers.Register_CR4))
	assert.Same(t, specialColor, RegisterColor(registers.Register_RFLAGS))
}

func TestWriteRegisterTable(t *testing.T) {
	var buffer bytes.Buffer

	err := WriteRegisterTable(&buffer, ClassRegisters(registers.Registers.Class(registers.RegisterClass_Flags)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "id"))
	assert.Equal(t, "181  rflags     flags    64 bits   0", lines[1])
	assert.Equal(t, "183  flags      flags    16 bits   2", lines[3])
}

func TestYAMLExport_RoundTrip(t *testing.T) {
	var buffer bytes.Buffer

	require.NoError(t, WriteYAML(&buffer, registers.Registers))
	assert.Contains(t, buffer.String(), "class: gpr64")

	export, err := ReadYAML(&buffer)
	require.NoError(t, err)
	require.Len(t, export.Classes, len(registers.Registers.AllClasses()))

	total := 0

	for _, class := range export.Classes {
		parsed, ok := registers.ParseRegisterClass(class.Class)
		require.True(t, ok)

		for _, register := range class.Registers {
			assert.Equal(t, register.Id, uint8(register.Name))
			assert.Equal(t, parsed, register.Name.Class())
			assert.Equal(t, uint32(register.Name.Size()), register.Bits)
			total++
		}
	}

	assert.Equal(t, int(registers.MAX_REGISTER), total)

	flags := export.Classes[9]
	assert.Equal(t, "flags", flags.Class)
	assert.Empty(t, flags.Size)
	assert.Equal(t, "64 bits", export.Classes[0].Size)
}
