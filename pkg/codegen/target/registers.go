package target

import (
	"errors"
	"fmt"

	"github.com/luciernaga/luciernaga/pkg/utils"
)

// Names physical registers and exposes the boundary between the physical and
// virtual register numbering spaces. Register numbers below
// FirstVirtualRegister() name physical registers; numbers at or above it name
// virtual registers handed out during instruction selection.
type RegisterInfo interface {
	// Returns the display name of a physical register
	RegisterName(reg int) string
	// Returns the first register number of the virtual numbering space
	FirstVirtualRegister() int
}

// Describes a class of registers sharing a naming scheme (general purpose
// integer registers, CPU state registers, ...)
type RegisterClass struct {
	// Class name (for documentation and debugging)
	Name string
	// Prefix used to build default register names (prefix + index within class)
	NamePrefix string
	// Registers of the class
	Registers []*RegisterDesc
}

// Describes one physical register
type RegisterDesc struct {
	// Register class
	Class *RegisterClass

	// Index within the register class
	Index int

	// Custom name for the register instead of the default NamePrefix + Index name
	CustomName string

	// Description (for documentation and debugging)
	Description string
}

// Returns the register name
func (d *RegisterDesc) Name() string {
	if len(d.CustomName) > 0 {
		return d.CustomName
	}

	return fmt.Sprintf("%v%v", d.Class.NamePrefix, d.Index)
}

func (d *RegisterDesc) String() string {
	return d.Name()
}

// Creates multiple consecutive indexed registers
func MakeRegisters(count int) []*RegisterDesc {
	return utils.Iota(count, func(i int) *RegisterDesc {
		return &RegisterDesc{
			Index: i,
		}
	})
}

// A RegisterFile is the concrete RegisterInfo of one target: all its physical
// registers, flattened into one contiguous numbering space, class by class.
// Virtual register numbers start right after the last physical register.
type RegisterFile struct {
	classes []*RegisterClass
	regs    []*RegisterDesc
	byName  map[string]int
}

var ErrInvalidRegister error = errors.New("invalid register")

// Initializes a register file from a set of register classes. Registers are
// numbered in class declaration order. Panics on duplicated register names:
// like descriptor tables, register files are built from programmer-written
// target definitions.
func NewRegisterFile(classes []*RegisterClass) *RegisterFile {
	file := &RegisterFile{
		classes: classes,
		byName:  make(map[string]int),
	}

	for _, class := range classes {
		for i, reg := range class.Registers {
			reg.Class = class
			reg.Index = i

			if _, duplicated := file.byName[reg.Name()]; duplicated {
				panic(fmt.Sprintf("duplicated register name '%v' in register file", reg.Name()))
			}

			file.byName[reg.Name()] = len(file.regs)
			file.regs = append(file.regs, reg)
		}
	}

	return file
}

// Returns the display name of a physical register. Passing a number outside
// the physical numbering space is a contract violation and panics.
func (f *RegisterFile) RegisterName(reg int) string {
	if reg < 0 || reg >= len(f.regs) {
		panic(fmt.Sprintf("register number %v out of physical range [0, %v)", reg, len(f.regs)))
	}

	return f.regs[reg].Name()
}

// Returns the first register number of the virtual numbering space
func (f *RegisterFile) FirstVirtualRegister() int {
	return len(f.regs)
}

// Number of physical registers in the file
func (f *RegisterFile) TotalRegisters() int {
	return len(f.regs)
}

// Returns all register classes of the file
func (f *RegisterFile) Classes() []*RegisterClass {
	return f.classes
}

// Returns the number of a physical register given its name
func (f *RegisterFile) RegisterByName(name string) (int, error) {
	if reg, hasRegister := f.byName[name]; hasRegister {
		return reg, nil
	}

	return 0, utils.MakeError(ErrInvalidRegister, "no register named '%v' (registers: %v)",
		name, utils.FormatSlice(utils.Keys(f.byName), ", "))
}
