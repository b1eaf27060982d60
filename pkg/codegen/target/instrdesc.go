package target

import (
	"fmt"
)

// Identifies an instruction opcode. Opcodes index into a target Description
type Opcode uint

// Contains information describing one target instruction opcode
type InstrDesc struct {
	// Assembly mnemonic of the instruction
	Mnemonic string `yaml:"mnemonic"`
	// Number of explicit operands. Negative for instructions with a variable
	// operand count (calls, phi nodes, ...)
	NumOperands int `yaml:"operands"`
	// Index of the operand that holds the result of the instruction. Negative
	// if the instruction defines no explicit operand
	ResultPos int `yaml:"result"`
	// Instruction description (for documentation and debugging)
	Description string `yaml:"description,omitempty"`
}

// Returns true if the instruction has a fixed explicit operand count
func (d *InstrDesc) HasFixedOperands() bool {
	return d.NumOperands >= 0
}

// Returns true if the instruction defines one of its explicit operands
func (d *InstrDesc) HasResult() bool {
	return d.ResultPos >= 0
}

// Returns a human readable string representation of the instruction descriptor
func (d *InstrDesc) String() string {
	operands := "variable"
	if d.HasFixedOperands() {
		operands = fmt.Sprint(d.NumOperands)
	}

	result := "none"
	if d.HasResult() {
		result = fmt.Sprint(d.ResultPos)
	}

	return fmt.Sprintf("%v (operands: %v, result: %v)", d.Mnemonic, operands, result)
}
