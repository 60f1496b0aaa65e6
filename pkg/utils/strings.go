package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Formats an uint value into a fixed width binary string of n bits
func FormatUintBinary(value uint64, bits int) string {
	return padLeft(strconv.FormatUint(value, 2), "0", bits)
}

// Formats an uint value into an fixed width hex string of n characters
func FormatUintHex(value uint64, digits int) string {
	return "0x" + padLeft(strconv.FormatUint(value, 16), "0", digits)
}

func padLeft(text string, filler string, width int) string {
	if len(text) >= width {
		return text
	}

	return strings.Repeat(filler, width-len(text)) + text
}

// Returns an string containing all formatted sequence items separated by a given separator
func FormatSlice[T any](input []T, separator string) string {
	var builder strings.Builder

	for i, value := range input {
		builder.WriteString(fmt.Sprint(value))

		if i < len(input)-1 {
			builder.WriteString(separator)
		}
	}

	return builder.String()
}

// Pads a string with spaces on the right up to the given width
func PadRight(text string, width int) string {
	if len(text) >= width {
		return text
	}

	return text + strings.Repeat(" ", width-len(text))
}
