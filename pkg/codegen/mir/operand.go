package mir

import (
	"fmt"

	"github.com/luciernaga/luciernaga/pkg/codegen/ir"
)

// Flag bits attached to a machine operand
type OperandFlags uint8

const (
	// The operand is written by the instruction
	OperandFlag_Def OperandFlags = 1 << iota
	// The operand is both read and written by the instruction
	OperandFlag_DefAndUse
	// The operand is the high 22 bits of a 32 bit split constant
	OperandFlag_HiBits32
	// The operand is the low 10 bits of a 32 bit split constant
	OperandFlag_LoBits32
	// The operand is the high 22 bits of the top half of a 64 bit split constant
	OperandFlag_HiBits64
	// The operand is the low 10 bits of the top half of a 64 bit split constant
	OperandFlag_LoBits64
)

const splitFlagsMask = OperandFlag_HiBits32 | OperandFlag_LoBits32 | OperandFlag_HiBits64 | OperandFlag_LoBits64

// Register number of an operand that has not been assigned a register yet
const UnallocatedRegister = -1

// An Operand is one operand slot of a machine instruction: a kind tag plus
// the payload fields that kind makes meaningful. Payload accessors panic when
// called on a kind that does not carry that payload, so callers never need to
// track which field is live.
//
// Operands are owned by their instruction and mutated in place through the
// Instruction setters; the zero-value-like "empty" operand is an unallocated
// virtual register with no value attached.
type Operand struct {
	kind      OperandKind
	value     ir.Value
	immediate int64
	regNum    int
	flags     OperandFlags
}

func emptyOperand() Operand {
	return Operand{
		kind:   OperandKind_VirtualRegister,
		regNum: UnallocatedRegister,
	}
}

// Returns the kind of the operand
func (o *Operand) Kind() OperandKind {
	return o.kind
}

// Returns true if the operand is still in the default empty state
func (o *Operand) IsEmpty() bool {
	return o.kind == OperandKind_VirtualRegister && o.value == nil &&
		o.regNum == UnallocatedRegister && o.flags == 0
}

// Returns the value reference of the operand. Panics if the operand kind
// carries no value
func (o *Operand) Value() ir.Value {
	if !o.kind.HasValue() {
		panic(fmt.Sprintf("%v operand carries no value reference", o.kind))
	}

	return o.value
}

// Returns the immediate payload of the operand. Panics if the operand is not
// an immediate
func (o *Operand) Immediate() int64 {
	if !o.kind.IsImmediate() {
		panic(fmt.Sprintf("%v operand carries no immediate", o.kind))
	}

	return o.immediate
}

// Returns the machine register number of the operand. Panics if the operand
// is not a machine register
func (o *Operand) MachineRegister() int {
	if o.kind != OperandKind_MachineRegister {
		panic(fmt.Sprintf("%v operand is not a machine register", o.kind))
	}

	return o.regNum
}

// Returns true if the operand has been assigned a register number
func (o *Operand) HasAllocatedRegister() bool {
	return o.regNum != UnallocatedRegister
}

// Returns the register number assigned to the operand. Panics if none has
// been assigned yet
func (o *Operand) AllocatedRegister() int {
	if !o.HasAllocatedRegister() {
		panic("operand has no allocated register")
	}

	return o.regNum
}

// Returns true if the operand is written by the instruction
func (o *Operand) IsDef() bool {
	return o.flags&OperandFlag_Def != 0
}

// Returns true if the operand is both read and written by the instruction
func (o *Operand) IsDefAndUse() bool {
	return o.flags&OperandFlag_DefAndUse != 0
}

func (o *Operand) HiBits32() bool {
	return o.flags&OperandFlag_HiBits32 != 0
}

func (o *Operand) LoBits32() bool {
	return o.flags&OperandFlag_LoBits32 != 0
}

func (o *Operand) HiBits64() bool {
	return o.flags&OperandFlag_HiBits64 != 0
}

func (o *Operand) LoBits64() bool {
	return o.flags&OperandFlag_LoBits64 != 0
}

// Marks the operand as the high half of a split 32 bit constant
func (o *Operand) MarkHiBits32() {
	o.setSplitFlag(OperandFlag_HiBits32)
}

// Marks the operand as the low half of a split 32 bit constant
func (o *Operand) MarkLoBits32() {
	o.setSplitFlag(OperandFlag_LoBits32)
}

// Marks the operand as the high bits of the top half of a split 64 bit constant
func (o *Operand) MarkHiBits64() {
	o.setSplitFlag(OperandFlag_HiBits64)
}

// Marks the operand as the low bits of the top half of a split 64 bit constant
func (o *Operand) MarkLoBits64() {
	o.setSplitFlag(OperandFlag_LoBits64)
}

// At most one of the four split flags is set per operand
func (o *Operand) setSplitFlag(flag OperandFlags) {
	o.flags = (o.flags &^ splitFlagsMask) | flag
}

func (o *Operand) markDef() {
	o.flags |= OperandFlag_Def
}

func (o *Operand) markDefAndUse() {
	o.flags |= OperandFlag_DefAndUse
}

// Returns the debug rendering of the operand without register name
// resolution (see Instruction.String)
func (o *Operand) String() string {
	return renderOperand(o, nil)
}
