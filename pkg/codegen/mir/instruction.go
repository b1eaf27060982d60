package mir

import (
	"fmt"

	"github.com/luciernaga/luciernaga/pkg/codegen/ir"
	"github.com/luciernaga/luciernaga/pkg/codegen/target"
)

// An Instruction is one target machine instruction as it exists between
// instruction selection and register allocation: an opcode plus an ordered
// sequence of operands, both mutated in place by the passes that own it.
//
// The operand sequence is split into an explicit prefix, indexable through
// the operand setters, and an implicit suffix of value references the
// instruction touches without listing them as operands (caller-saved
// registers of a call, condition codes, ...). NumOperands counts only the
// explicit prefix.
//
// All index and state preconditions of the mutators are programming
// contracts: violations panic rather than returning errors, exactly like
// out-of-range slice indexing. Instructions are confined to the single pass
// currently transforming them; there is no internal locking.
type Instruction struct {
	opcode       target.Opcode
	operands     []Operand
	implicitRefs int
	usedRegs     map[int]struct{}
	td           *target.Description
}

func emptyOperands(n int) []Operand {
	ops := make([]Operand, n)

	for i := range ops {
		ops[i] = emptyOperand()
	}

	return ops
}

// Creates an instruction whose explicit operand count is fixed by the target
// descriptor table. Panics for variable arity opcodes; those need
// NewWithOperands or NewReserved.
func New(td *target.Description, op target.Opcode) *Instruction {
	desc := td.Desc(op)

	if !desc.HasFixedOperands() {
		panic(fmt.Sprintf("opcode %v has a variable operand count, the caller must supply one", desc.Mnemonic))
	}

	return &Instruction{
		opcode:   op,
		operands: emptyOperands(desc.NumOperands),
		usedRegs: make(map[int]struct{}),
		td:       td,
	}
}

// Creates an instruction with a caller-supplied explicit operand count, for
// opcodes whose arity is not statically known from the descriptor table
func NewWithOperands(td *target.Description, op target.Opcode, numOperands int) *Instruction {
	return &Instruction{
		opcode:   op,
		operands: emptyOperands(numOperands),
		usedRegs: make(map[int]struct{}),
		td:       td,
	}
}

// Creates an instruction with capacity reserved for numOperands operands but
// none populated yet. Operands must be appended through the Add methods, not
// set by index, until the instruction is filled.
func NewReserved(td *target.Description, op target.Opcode, numOperands int) *Instruction {
	return &Instruction{
		opcode:   op,
		operands: make([]Operand, 0, numOperands),
		usedRegs: make(map[int]struct{}),
		td:       td,
	}
}

// Works exactly like NewReserved, except that the new instruction is also
// appended to the tail of the given basic block
func NewInBlock(bb *BasicBlock, td *target.Description, op target.Opcode, numOperands int) *Instruction {
	if bb == nil {
		panic("cannot use the inserting constructor with a nil basic block")
	}

	instr := NewReserved(td, op, numOperands)
	bb.Append(instr)

	return instr
}

// Returns the opcode of the instruction
func (i *Instruction) Opcode() target.Opcode {
	return i.opcode
}

// Returns the target descriptor of the instruction's opcode
func (i *Instruction) Desc() *target.InstrDesc {
	return i.td.Desc(i.opcode)
}

// Returns the number of explicit operands
func (i *Instruction) NumOperands() int {
	return len(i.operands) - i.implicitRefs
}

// Returns the number of implicit references
func (i *Instruction) NumImplicitRefs() int {
	return i.implicitRefs
}

// Returns the explicit operand at the given index
func (i *Instruction) Operand(n int) *Operand {
	if n < 0 || n >= i.NumOperands() {
		panic(fmt.Sprintf("explicit operand index %v out of range [0, %v)", n, i.NumOperands()))
	}

	return &i.operands[n]
}

func (i *Instruction) implicitOperand(n int) *Operand {
	if n < 0 || n >= i.implicitRefs {
		panic(fmt.Sprintf("implicit reference index %v out of range [0, %v)", n, i.implicitRefs))
	}

	return &i.operands[i.NumOperands()+n]
}

// Returns true when it is illegal to append another explicit operand: the
// descriptor arity is fixed and already reached. For variable arity opcodes
// this always reports false, whatever the current operand count; historical
// behavior, kept as is because callers gate appends on it.
func (i *Instruction) OperandsComplete() bool {
	numOperands := i.Desc().NumOperands
	return numOperands >= 0 && i.NumOperands() >= numOperands
}

// Resets the opcode and replaces the operand sequence with numOperands empty
// operands, so the instruction node can be repurposed in place. Panics if the
// instruction carries implicit references: they would be orphaned with no
// consistent new meaning.
func (i *Instruction) Replace(op target.Opcode, numOperands int) {
	if i.implicitRefs != 0 {
		panic("cannot replace an instruction that carries implicit references")
	}

	i.opcode = op
	i.operands = emptyOperands(numOperands)
}

// Binds the operand at the given index to a value reference of the given
// kind, resetting its register assignment and flags. The index may address an
// explicit operand or an implicit reference. The operand is marked as a
// definition when isDef is set or when the index is the descriptor's result
// position.
func (i *Instruction) SetValueOperand(n int, kind OperandKind, v ir.Value, isDef bool, isDefAndUse bool) {
	if n < 0 || n >= len(i.operands) {
		panic(fmt.Sprintf("operand index %v out of range [0, %v)", n, len(i.operands)))
	}

	op := &i.operands[n]
	op.kind = kind
	op.value = v
	op.regNum = UnallocatedRegister
	op.flags = 0

	if isDef || i.Desc().ResultPos == n {
		op.markDef()
	}

	if isDefAndUse {
		op.markDefAndUse()
	}
}

// Binds the explicit operand at the given index to an immediate constant.
// Panics if the index is the descriptor's result position: an immediate
// constant cannot be defined.
func (i *Instruction) SetConstOperand(n int, kind OperandKind, immediate int64) {
	if n < 0 || n >= i.NumOperands() {
		panic(fmt.Sprintf("explicit operand index %v out of range [0, %v)", n, i.NumOperands()))
	}

	if i.Desc().ResultPos == n {
		panic(fmt.Sprintf("operand %v of %v is the result position, an immediate constant cannot be defined", n, i.Desc().Mnemonic))
	}

	op := &i.operands[n]
	op.kind = kind
	op.value = nil
	op.immediate = immediate
	op.regNum = UnallocatedRegister
	op.flags = 0
}

// Binds the explicit operand at the given index to a physical machine
// register, under the same definition marking rule as SetValueOperand. The
// register is recorded in the instruction's used register set.
func (i *Instruction) SetRegisterOperand(n int, reg int, isDef bool) {
	if n < 0 || n >= i.NumOperands() {
		panic(fmt.Sprintf("explicit operand index %v out of range [0, %v)", n, i.NumOperands()))
	}

	op := &i.operands[n]
	op.kind = OperandKind_MachineRegister
	op.value = nil
	op.regNum = reg
	op.flags = 0

	if isDef || i.Desc().ResultPos == n {
		op.markDef()
	}

	i.noteUsedRegister(reg)
}

// Attaches an allocated register number to the explicit operand at the given
// index, without changing its kind or value reference. The operand must still
// hold a value-bearing kind: this is the register allocator binding a
// physical register to a selected value. The register is recorded in the
// instruction's used register set.
func (i *Instruction) BindAllocatedRegister(n int, reg int) {
	if n < 0 || n >= i.NumOperands() {
		panic(fmt.Sprintf("explicit operand index %v out of range [0, %v)", n, i.NumOperands()))
	}

	op := &i.operands[n]

	if !op.kind.HasValue() {
		panic(fmt.Sprintf("operand %v of %v is a %v, not a value operand", n, i.Desc().Mnemonic, op.kind))
	}

	op.regNum = reg
	i.noteUsedRegister(reg)
}

// Appends an explicit value operand to an instruction under reserved-capacity
// construction. Panics once the descriptor's fixed arity has been reached, or
// if implicit references were already added (explicit operands never follow
// implicit ones in storage).
func (i *Instruction) AddValueOperand(kind OperandKind, v ir.Value, isDef bool, isDefAndUse bool) {
	i.appendOperand()
	i.SetValueOperand(len(i.operands)-1, kind, v, isDef, isDefAndUse)
}

// Appends an explicit immediate operand, under the same rules as
// AddValueOperand plus the result position restriction of SetConstOperand
func (i *Instruction) AddConstOperand(kind OperandKind, immediate int64) {
	i.appendOperand()
	i.SetConstOperand(len(i.operands)-1, kind, immediate)
}

// Appends an explicit machine register operand, under the same rules as
// AddValueOperand
func (i *Instruction) AddRegisterOperand(reg int, isDef bool) {
	i.appendOperand()
	i.SetRegisterOperand(len(i.operands)-1, reg, isDef)
}

func (i *Instruction) appendOperand() {
	if i.OperandsComplete() {
		panic(fmt.Sprintf("all %v explicit operands of %v are already populated", i.Desc().NumOperands, i.Desc().Mnemonic))
	}

	if i.implicitRefs != 0 {
		panic("cannot append explicit operands after implicit references")
	}

	i.operands = append(i.operands, emptyOperand())
}

// Appends an implicit value reference to the instruction
func (i *Instruction) AddImplicitRef(v ir.Value, isDef bool, isDefAndUse bool) {
	i.operands = append(i.operands, emptyOperand())
	i.implicitRefs++
	i.SetValueOperand(len(i.operands)-1, OperandKind_VirtualRegister, v, isDef, isDefAndUse)
}

// Returns the value of the implicit reference at the given index
func (i *Instruction) ImplicitRef(n int) ir.Value {
	return i.implicitOperand(n).value
}

// Retargets the implicit reference at the given index to another value,
// keeping its flags
func (i *Instruction) SetImplicitRef(n int, v ir.Value) {
	i.implicitOperand(n).value = v
}

// Returns true if the implicit reference at the given index is defined by the
// instruction
func (i *Instruction) ImplicitRefIsDef(n int) bool {
	return i.implicitOperand(n).IsDef()
}

// Returns true if the implicit reference at the given index is both read and
// written by the instruction
func (i *Instruction) ImplicitRefIsDefAndUse(n int) bool {
	return i.implicitOperand(n).IsDefAndUse()
}

// Replaces every reference to oldVal with newVal across all explicit operands
// and implicit references, and returns how many references were rewritten. If
// defsOnly is set, only references flagged as definitions (def or
// def-and-use) are rewritten. Pure in-place rewrite: no reordering, no
// allocation.
func (i *Instruction) SubstituteValue(oldVal ir.Value, newVal ir.Value, defsOnly bool) int {
	substitutions := 0

	for n := range i.operands {
		op := &i.operands[n]

		if !op.kind.HasValue() || op.value != oldVal {
			continue
		}

		if defsOnly && !op.IsDef() && !op.IsDefAndUse() {
			continue
		}

		op.value = newVal
		substitutions++
	}

	return substitutions
}

// Records a physical register as touched by the instruction. The set is
// append-only: overwriting or unbinding an operand later never removes its
// register, so membership is a conservative over-approximation of the
// registers the instruction currently references, not an exact live set.
func (i *Instruction) noteUsedRegister(reg int) {
	i.usedRegs[reg] = struct{}{}
}

// Returns true if the given register was ever bound to an operand of the
// instruction. See noteUsedRegister for the conservative semantics.
func (i *Instruction) RegisterIsUsed(reg int) bool {
	_, used := i.usedRegs[reg]
	return used
}
