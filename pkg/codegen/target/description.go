package target

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luciernaga/luciernaga/pkg/utils"
)

// Contains the instruction descriptors of one target, indexed by opcode.
// Every instance is self contained so that descriptions of several targets
// can coexist within one process; nothing in this package holds process-wide
// mutable state.
type Description struct {
	// Target name (for documentation and debugging)
	Name string

	descs            []*InstrDesc
	mnemonicToOpcode map[string]Opcode
}

var ErrInvalidMnemonic error = errors.New("invalid instruction mnemonic")

// Initializes a target description from the descriptors of all its
// instructions, ordered by opcode. Panics if the table is malformed: this is
// a build-the-target-tables programming error, not a runtime condition.
func NewDescription(name string, descs []*InstrDesc) *Description {
	mnemonics := make(map[string]Opcode, len(descs))

	for op, desc := range descs {
		if desc.Mnemonic == "" {
			panic(fmt.Sprintf("missing mnemonic for opcode %v in instruction descriptor table of target '%v'", op, name))
		}

		if _, duplicated := mnemonics[desc.Mnemonic]; duplicated {
			panic(fmt.Sprintf("duplicated mnemonic '%v' in instruction descriptor table of target '%v'", desc.Mnemonic, name))
		}

		mnemonics[desc.Mnemonic] = Opcode(op)
	}

	return &Description{
		Name:             name,
		descs:            descs,
		mnemonicToOpcode: mnemonics,
	}
}

// Returns the descriptor of the given opcode. Passing an opcode outside the
// table is a contract violation and panics.
func (d *Description) Desc(op Opcode) *InstrDesc {
	if int(op) >= len(d.descs) {
		panic(fmt.Sprintf("opcode %v out of range for target '%v' (%v opcodes)", uint(op), d.Name, len(d.descs)))
	}

	return d.descs[op]
}

// Returns the mnemonic of the given opcode
func (d *Description) Mnemonic(op Opcode) string {
	return d.Desc(op).Mnemonic
}

// Number of opcodes described by the target
func (d *Description) TotalOpcodes() int {
	return len(d.descs)
}

// Returns the descriptors of all instructions of the target, ordered by opcode
func (d *Description) AllInstructions() []*InstrDesc {
	return d.descs
}

// Returns the opcode corresponding to the given mnemonic
func (d *Description) ParseOpcode(mnemonic string) (Opcode, error) {
	if op, hasOpcode := d.mnemonicToOpcode[strings.ToLower(mnemonic)]; hasOpcode {
		return op, nil
	}

	return 0, utils.MakeError(ErrInvalidMnemonic, "'%v' (target '%v', valid mnemonics: %v)",
		mnemonic, d.Name, utils.FormatSlice(utils.Keys(d.mnemonicToOpcode), ", "))
}

// Dumps the full instruction table as one big multiline string
func (d *Description) Documentation(leftpad int) string {
	leftpadStr := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpadStr)
	builder.WriteString(fmt.Sprintf("target: %v\n", d.Name))
	builder.WriteString(leftpadStr)
	builder.WriteString(fmt.Sprintf("total opcodes: %v\n\n", d.TotalOpcodes()))

	width := utils.Max(utils.Map(d.descs, func(desc *InstrDesc) int { return len(desc.Mnemonic) }))

	for op, desc := range d.descs {
		builder.WriteString(leftpadStr)
		builder.WriteString(fmt.Sprintf(" [%2d] %-*s  operands: %2d  result: %2d", op, width, desc.Mnemonic, desc.NumOperands, desc.ResultPos))

		if desc.Description != "" {
			builder.WriteString("  ")
			builder.WriteString(desc.Description)
		}

		builder.WriteString("\n")
	}

	return builder.String()
}

// Like Documentation(), but with zero leftpad
func (d *Description) DocString() string {
	return d.Documentation(0)
}
