// Package regs implements the register catalog query commands.
package regs

import (
	"errors"
	"strconv"

	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/Manu343726/x86regs/pkg/utils"
	"github.com/spf13/cobra"
)

var ErrUnknownClass = errors.New("unknown register class")

// Returns all the register query commands
func Commands() []*cobra.Command {
	return []*cobra.Command{listCmd, showCmd, lookupCmd, dumpCmd, highlightCmd, browseCmd}
}

// Parses a register given either its name or its numeric identifier
func parseRegister(text string) (registers.Register, error) {
	if id, err := strconv.ParseUint(text, 0, 8); err == nil {
		if reg := registers.Register(id); reg.IsValid() {
			return reg, nil
		}

		return registers.Register_None, utils.MakeError(registers.ErrUnknownRegister, "register id %v", id)
	}

	return registers.RegisterByName(text)
}

// Parses a register class given its short name
func parseClass(text string) (*registers.RegisterClassDescriptor, error) {
	if class, ok := registers.ParseRegisterClass(text); ok {
		return registers.Registers.Class(class), nil
	}

	return nil, utils.MakeError(ErrUnknownClass, "'%v', expected one of %v", text, classNames())
}

func classNames() string {
	return utils.FormatSlice(utils.Map(registers.Registers.AllClasses(), func(class *registers.RegisterClassDescriptor) string {
		return class.Class.String()
	}), ", ")
}
