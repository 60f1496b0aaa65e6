package regs

import (
	"fmt"

	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse the register catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return newBrowser().Run()
	},
}

// Terminal UI with the register classes on the left, the registers of the selected
// class in the middle and the selected register details at the bottom
type browser struct {
	app       *tview.Application
	classes   *tview.List
	registers *tview.Table
	details   *tview.TextView
}

var classColumnHeaders = []string{"id", "name", "size", "slot"}

func newBrowser() *browser {
	b := &browser{
		app:       tview.NewApplication(),
		classes:   tview.NewList().ShowSecondaryText(false),
		registers: tview.NewTable().SetSelectable(true, false).SetFixed(1, 0),
		details:   tview.NewTextView().SetDynamicColors(true),
	}

	b.classes.SetBorder(true).SetTitle(" classes ")
	b.registers.SetBorder(true).SetTitle(" registers ")
	b.details.SetBorder(true).SetTitle(" register ")

	for _, class := range registers.Registers.AllClasses() {
		b.classes.AddItem(class.Class.String(), class.Description, 0, nil)
	}

	b.classes.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		b.showClass(registers.Registers.AllClasses()[index])
	})
	b.classes.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		b.app.SetFocus(b.registers)
	})

	b.registers.SetSelectionChangedFunc(func(row, column int) {
		if row > 0 {
			if reg, ok := b.registers.GetCell(row, 0).GetReference().(registers.Register); ok {
				b.showRegister(reg)
			}
		}
	})
	b.registers.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			b.app.SetFocus(b.classes)
		}
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(b.classes, 24, 0, true).
			AddItem(b.registers, 0, 1, false), 0, 1, true).
		AddItem(b.details, 8, 0, false)

	b.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' {
			b.app.Stop()
			return nil
		}

		return event
	})

	b.app.SetRoot(layout, true)
	b.showClass(registers.Registers.AllClasses()[0])

	return b
}

func (b *browser) Run() error {
	return b.app.Run()
}

func (b *browser) showClass(class *registers.RegisterClassDescriptor) {
	b.registers.Clear()

	for column, header := range classColumnHeaders {
		b.registers.SetCell(0, column, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false))
	}

	for _, register := range class.AllRegisters() {
		reg := register.Register()
		row := register.Index + 1

		b.registers.SetCell(row, 0, tview.NewTableCell(fmt.Sprint(uint8(reg))).SetReference(reg))
		b.registers.SetCell(row, 1, tview.NewTableCell(register.Name()).SetTextColor(tcell.ColorGreen))
		b.registers.SetCell(row, 2, tview.NewTableCell(reg.Size().String()))
		b.registers.SetCell(row, 3, tview.NewTableCell(fmt.Sprint(register.Index)))
	}

	b.registers.Select(1, 0)
	b.registers.ScrollToBeginning()
}

func (b *browser) showRegister(reg registers.Register) {
	descriptor, err := reg.Descriptor()

	if err != nil {
		b.details.SetText(fmt.Sprintf("[red]%v", err))
		return
	}

	b.details.SetText(fmt.Sprintf("[green]%v[white]\nclass: %v\nsize: %v\nslot: %v\nencoding: %#x\n%v",
		reg, reg.Class(), reg.Size(), descriptor.Index, reg.Encode(), descriptor.Description))
}
