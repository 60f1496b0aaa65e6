package registers

import (
	"fmt"
	"strings"
)

// Dumps the register catalog as one big multiline string
func (d *RegisterClassesDescriptor) Documentation(leftpad int) string {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total register classes: %v\n", len(d.blocks)))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total registers: %v\n", int(MAX_REGISTER)))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("register encoding length (bits): %v (class: %v, slot: %v)\n\n", d.RegisterBits(), d.RegisterClassBits(), d.RegisterSlotBits()))

	for _, class := range d.blocks {
		builder.WriteString(class.Documentation(leftpad))
		builder.WriteString("\n")
	}

	return builder.String()
}

// Like Documentation(), but with zero leftpad
func (d *RegisterClassesDescriptor) DocString() string {
	return d.Documentation(0)
}

func (d *RegisterClassDescriptor) Documentation(leftpad int) string {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%v: %v\n", d.Class, d.Description))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("  ids: %v..%v\n", uint8(d.First), uint8(d.Last())))

	if d.HasUniformSize() {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("  size: %v\n", d.Size))
	}

	builder.WriteString(leftpad_str)
	builder.WriteString("  registers:")

	for _, register := range d.registers {
		builder.WriteString(" ")
		builder.WriteString(register.Name())

		if !d.HasUniformSize() {
			builder.WriteString(fmt.Sprintf("(%v)", uint32(register.Size)))
		}
	}

	builder.WriteString("\n")

	return builder.String()
}
