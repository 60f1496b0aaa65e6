package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func TestMakeError_WrapsSentinel(t *testing.T) {
	err := MakeError(errTest, "register '%v' at slot %v", "rax", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, errTest)
	assert.Equal(t, "test error: register 'rax' at slot 0", err.Error())
}

func TestMakeError_NoArgs(t *testing.T) {
	err := MakeError(errTest, "no details")

	assert.ErrorIs(t, err, errTest)
	assert.Equal(t, "test error: no details", err.Error())
}

func TestBitView_ReadWrite(t *testing.T) {
	var value uint64 = 0
	view := CreateBitView(&value)

	view.Write(0b10110, 0, 5)
	view.Write(0b101, 5, 5)

	assert.Equal(t, uint64(0b101_10110), value)
	assert.Equal(t, uint64(0b10110), view.Read(0, 5))
	assert.Equal(t, uint64(0b101), view.Read(5, 5))
}

func TestBitView_WriteTruncatesValue(t *testing.T) {
	var value uint16 = 0
	view := CreateBitView(&value)

	view.Write(0xff, 4, 3)

	assert.Equal(t, uint16(0b0111_0000), value)
}

func TestAllOnes(t *testing.T) {
	assert.Equal(t, uint8(0), AllOnes[uint8](0))
	assert.Equal(t, uint8(0b111), AllOnes[uint8](3))
	assert.Equal(t, uint32(0xffff), AllOnes[uint32](16))
}

func TestFormatUint(t *testing.T) {
	assert.Equal(t, "00101", FormatUintBinary(5, 5))
	assert.Equal(t, "0x00ff", FormatUintHex(255, 4))
}

func TestFormatSlice(t *testing.T) {
	assert.Equal(t, "1,2,3", FormatSlice([]int{1, 2, 3}, ","))
	assert.Equal(t, "", FormatSlice([]int{}, ","))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "rax   ", PadRight("rax", 6))
	assert.Equal(t, "bndstatus", PadRight("bndstatus", 4))
}

func TestSequences(t *testing.T) {
	squares := Iota(4, func(i int) int { return i * i })

	assert.Equal(t, []int{0, 1, 4, 9}, squares)
	assert.Equal(t, 9, Max(squares))
	assert.Equal(t, 14, Accumulate(squares, func(i int) int { return i }))
	assert.Equal(t, []int{0, 4}, Filter(squares, func(i int) bool { return i%2 == 0 }))
	assert.Equal(t, []int{0, 0, 1, 1}, ConcatMap([]int{0, 1}, func(i int) []int { return []int{i, i} }))
	assert.Equal(t, map[int]int{2: 4, 3: 9}, GenMapFromKeys([]int{2, 3}, func(i int) int { return i * i }))
	assert.Equal(t, map[int]int{4: 2, 9: 3}, GenMap([]int{2, 3}, func(i int) int { return i * i }))
	assert.ElementsMatch(t, []string{"a", "b"}, Keys(map[string]int{"a": 1, "b": 2}))
	assert.ElementsMatch(t, []int{1, 2}, Values(map[string]int{"a": 1, "b": 2}))
}
