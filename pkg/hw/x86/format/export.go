package format

import (
	"io"

	"github.com/Manu343726/x86regs/pkg/hw/x86/registers"
	"github.com/Manu343726/x86regs/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Serializable snapshot of the register catalog
type CatalogExport struct {
	Classes []ClassExport `yaml:"classes"`
}

type ClassExport struct {
	Class       string `yaml:"class"`
	Description string `yaml:"description"`
	First       uint8  `yaml:"first"`
	Count       int    `yaml:"count"`

	// Empty if the registers of the class have different sizes
	Size string `yaml:"size,omitempty"`

	Registers []RegisterExport `yaml:"registers"`
}

type RegisterExport struct {
	Name        registers.Register `yaml:"name"`
	Id          uint8              `yaml:"id"`
	Slot        int                `yaml:"slot"`
	Bits        uint32             `yaml:"bits"`
	Description string             `yaml:"description,omitempty"`
}

// Takes a snapshot of the register catalog
func ExportCatalog(catalog *registers.RegisterClassesDescriptor) CatalogExport {
	return CatalogExport{
		Classes: utils.Map(catalog.AllClasses(), exportClass),
	}
}

func exportClass(class *registers.RegisterClassDescriptor) ClassExport {
	export := ClassExport{
		Class:       class.Class.String(),
		Description: class.Description,
		First:       uint8(class.First),
		Count:       class.TotalRegisters(),
		Registers: utils.Map(class.AllRegisters(), func(register *registers.RegisterDescriptor) RegisterExport {
			return RegisterExport{
				Name:        register.Register(),
				Id:          uint8(register.Register()),
				Slot:        register.Index,
				Bits:        uint32(register.RegisterSize()),
				Description: register.Description,
			}
		}),
	}

	if class.HasUniformSize() {
		export.Size = class.Size.String()
	}

	return export
}

// Writes the register catalog as a YAML document
func WriteYAML(w io.Writer, catalog *registers.RegisterClassesDescriptor) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(ExportCatalog(catalog)); err != nil {
		return err
	}

	return encoder.Close()
}

// Reads a register catalog snapshot written by WriteYAML
func ReadYAML(r io.Reader) (CatalogExport, error) {
	var export CatalogExport
	err := yaml.NewDecoder(r).Decode(&export)
	return export, err
}
