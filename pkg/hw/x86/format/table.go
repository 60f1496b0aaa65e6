package format

import (
	"fmt"
	"io"

	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/Manu343726/x86regs/pkg/utils"
	"github.com/fatih/color"
)

var headerColor = color.New(color.FgWhite, color.Bold, color.Underline)

// Column widths of register tables
const (
	idColumnWidth    = 5
	nameColumnWidth  = 11
	classColumnWidth = 9
	sizeColumnWidth  = 10
)

// Writes one line per register with its id, name, class, size and slot
func WriteRegisterTable(w io.Writer, regs []registers.Register) error {
	header := utils.PadRight("id", idColumnWidth) +
		utils.PadRight("name", nameColumnWidth) +
		utils.PadRight("class", classColumnWidth) +
		utils.PadRight("size", sizeColumnWidth) +
		"slot"

	if _, err := fmt.Fprintln(w, headerColor.Sprint(header)); err != nil {
		return err
	}

	for _, reg := range regs {
		if _, err := fmt.Fprintln(w, RegisterRow(reg)); err != nil {
			return err
		}
	}

	return nil
}

// Returns the table row of a register
func RegisterRow(reg registers.Register) string {
	slot, _ := reg.Slot()

	return utils.PadRight(fmt.Sprint(uint8(reg)), idColumnWidth) +
		RegisterColor(reg).Sprint(utils.PadRight(reg.String(), nameColumnWidth)) +
		utils.PadRight(reg.Class().String(), classColumnWidth) +
		utils.PadRight(reg.Size().String(), sizeColumnWidth) +
		fmt.Sprint(slot)
}

// Returns all registers of a class, in slot order
func ClassRegisters(class *registers.RegisterClassDescriptor) []registers.Register {
	return utils.Map(class.AllRegisters(), (*registers.RegisterDescriptor).Register)
}
