package regs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buffer bytes.Buffer
	cmd.SetOut(&buffer)
	cmd.SetIn(strings.NewReader(""))
	defer cmd.SetOut(nil)

	err := cmd.RunE(cmd, args)
	return buffer.String(), err
}

func TestLookup(t *testing.T) {
	out, err := run(t, lookupCmd, "xmm", "31")
	require.NoError(t, err)
	assert.Equal(t, "xmm31\n", out)

	out, err = run(t, lookupCmd, "gpr64", "16")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)

	_, err = run(t, lookupCmd, "gpr128", "0")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestShow(t *testing.T) {
	out, err := run(t, showCmd, "rsp", "182")
	require.NoError(t, err)

	assert.Contains(t, out, "rsp\n  id:       5\n")
	assert.Contains(t, out, "about:    Stack Pointer")
	assert.Contains(t, out, "group:    gpr")
	assert.Contains(t, out, "eflags\n  id:       182\n")
	assert.Contains(t, out, "size:     32 bits")

	_, err = run(t, showCmd, "252")
	assert.ErrorIs(t, err, registers.ErrUnknownRegister)

	_, err = run(t, showCmd, "foo")
	assert.ErrorIs(t, err, registers.ErrUnknownRegister)
}

func TestList(t *testing.T) {
	out, err := run(t, listCmd, "mask", "segment")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1+8+6)
	assert.Contains(t, lines[1], "k0")
	assert.Contains(t, lines[len(lines)-1], "gs")

	out, err = run(t, listCmd)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1+int(registers.MAX_REGISTER))
}

func TestDump(t *testing.T) {
	out, err := run(t, dumpCmd)
	require.NoError(t, err)
	assert.Equal(t, registers.Registers.DocString(), out)
}

func TestHighlight(t *testing.T) {
	out, err := run(t, highlightCmd, "lea", "rdi,", "[rip+0x20]")
	require.NoError(t, err)
	assert.Equal(t, "lea rdi, [rip+0x20]\n", out)
}
