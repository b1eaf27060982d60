package mir

import (
	"github.com/luciernaga/luciernaga/pkg/codegen/ir"
	"github.com/luciernaga/luciernaga/pkg/codegen/target"
)

// Builder provides a fluent interface for building instructions during
// instruction selection, on top of the reserved-capacity constructors and the
// Add operand appenders. Contract violations (too many operands, constants at
// the result position) panic through the underlying instruction methods.
type Builder struct {
	instr *Instruction
}

// Instr creates an instruction builder for the given opcode, taking the
// operand count from the descriptor table for fixed arity opcodes
func Instr(td *target.Description, op target.Opcode) *Builder {
	numOperands := td.Desc(op).NumOperands
	if numOperands < 0 {
		numOperands = 0
	}

	return &Builder{instr: NewReserved(td, op, numOperands)}
}

// InstrInBlock works like Instr but also appends the new instruction to the
// tail of the given basic block
func InstrInBlock(bb *BasicBlock, td *target.Description, op target.Opcode) *Builder {
	builder := Instr(td, op)
	bb.Append(builder.instr)

	return builder
}

// Def adds a virtual register operand defined by the instruction
func (b *Builder) Def(v ir.Value) *Builder {
	b.instr.AddValueOperand(OperandKind_VirtualRegister, v, true, false)
	return b
}

// Use adds a virtual register operand read by the instruction
func (b *Builder) Use(v ir.Value) *Builder {
	b.instr.AddValueOperand(OperandKind_VirtualRegister, v, false, false)
	return b
}

// DefAndUse adds a virtual register operand both read and written by the
// instruction
func (b *Builder) DefAndUse(v ir.Value) *Builder {
	b.instr.AddValueOperand(OperandKind_VirtualRegister, v, false, true)
	return b
}

// CC adds a condition code register operand
func (b *Builder) CC(v ir.Value, isDef bool) *Builder {
	b.instr.AddValueOperand(OperandKind_CCRegister, v, isDef, false)
	return b
}

// SImm adds a sign extended immediate operand
func (b *Builder) SImm(value int64) *Builder {
	b.instr.AddConstOperand(OperandKind_SignExtendedImmediate, value)
	return b
}

// UImm adds an unextended immediate operand
func (b *Builder) UImm(value int64) *Builder {
	b.instr.AddConstOperand(OperandKind_UnextendedImmediate, value)
	return b
}

// Reg adds a machine register operand read by the instruction
func (b *Builder) Reg(reg int) *Builder {
	b.instr.AddRegisterOperand(reg, false)
	return b
}

// RegDef adds a machine register operand written by the instruction
func (b *Builder) RegDef(reg int) *Builder {
	b.instr.AddRegisterOperand(reg, true)
	return b
}

// Disp adds a PC-relative displacement operand referencing a value or label
func (b *Builder) Disp(v ir.Value) *Builder {
	b.instr.AddValueOperand(OperandKind_PCRelativeDisp, v, false, false)
	return b
}

// ImplicitUse adds an implicit reference read by the instruction
func (b *Builder) ImplicitUse(v ir.Value) *Builder {
	b.instr.AddImplicitRef(v, false, false)
	return b
}

// ImplicitDef adds an implicit reference defined by the instruction
func (b *Builder) ImplicitDef(v ir.Value) *Builder {
	b.instr.AddImplicitRef(v, true, false)
	return b
}

// Done returns the built instruction
func (b *Builder) Done() *Instruction {
	return b.instr
}
