package mir

import (
	"fmt"
	"strings"

	"github.com/luciernaga/luciernaga/pkg/codegen/ir"
	"github.com/luciernaga/luciernaga/pkg/codegen/target"
)

// A BasicBlock owns a straight-line sequence of machine instructions. The
// block only provides storage and ordering; instructions are created through
// the mir constructors and appended at the tail, either explicitly or as a
// side effect of NewInBlock.
type BasicBlock struct {
	label        *ir.Block
	instructions []*Instruction
}

// Creates a new empty basic block with the given label name
func NewBasicBlock(name string) *BasicBlock {
	return &BasicBlock{
		label: ir.NewBlock(name),
	}
}

// Returns the label identity of the block, usable as a branch target operand
func (b *BasicBlock) Label() *ir.Block {
	return b.label
}

// Appends an instruction to the tail of the block
func (b *BasicBlock) Append(instr *Instruction) *BasicBlock {
	b.instructions = append(b.instructions, instr)
	return b
}

// Returns the number of instructions in the block
func (b *BasicBlock) Len() int {
	return len(b.instructions)
}

// Returns the instruction at the given index
func (b *BasicBlock) At(index int) *Instruction {
	return b.instructions[index]
}

// Returns the total number of value substitutions performed across all
// instructions of the block (see Instruction.SubstituteValue)
func (b *BasicBlock) SubstituteValue(oldVal ir.Value, newVal ir.Value, defsOnly bool) int {
	substitutions := 0

	for _, instr := range b.instructions {
		substitutions += instr.SubstituteValue(oldVal, newVal, defsOnly)
	}

	return substitutions
}

// Renders the block with physical register names resolved through the given
// register information, one instruction per line
func (b *BasicBlock) Render(ri target.RegisterInfo) string {
	return b.render(func(instr *Instruction) string { return instr.Render(ri) })
}

// Renders the block without register name resolution, one instruction per line
func (b *BasicBlock) String() string {
	return b.render(func(instr *Instruction) string { return instr.String() })
}

func (b *BasicBlock) render(renderInstr func(*Instruction) string) string {
	var builder strings.Builder

	builder.WriteString(b.label.Name())
	builder.WriteString(":")

	for i, instr := range b.instructions {
		builder.WriteString(fmt.Sprintf("\n%4d: %s", i, renderInstr(instr)))
	}

	return builder.String()
}
