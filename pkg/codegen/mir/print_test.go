package mir

import (
	"fmt"
	"testing"

	"github.com/luciernaga/luciernaga/pkg/codegen/ir"
	"github.com/luciernaga/luciernaga/pkg/codegen/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSplitConstantWrappers(t *testing.T) {
	td := target.NewDescription("demo", []*target.InstrDesc{
		{Mnemonic: "mul", NumOperands: 1, ResultPos: -1},
	})

	t.Run("high 32 bits", func(t *testing.T) {
		instr := New(td, 0)
		instr.SetConstOperand(0, OperandKind_UnextendedImmediate, 42)
		instr.Operand(0).MarkHiBits32()

		assert.Equal(t, "mul\t%lm(42)", instr.Render(target.Sol64Registers()))
	})

	t.Run("all wrappers", func(t *testing.T) {
		marks := []struct {
			mark    func(*Operand)
			wrapped string
		}{
			{(*Operand).MarkHiBits32, "%lm(7)"},
			{(*Operand).MarkLoBits32, "%lo(7)"},
			{(*Operand).MarkHiBits64, "%hh(7)"},
			{(*Operand).MarkLoBits64, "%hm(7)"},
		}

		for _, mark := range marks {
			instr := New(td, 0)
			instr.SetConstOperand(0, OperandKind_SignExtendedImmediate, 7)
			mark.mark(instr.Operand(0))

			assert.Equal(t, "mul\t"+mark.wrapped, instr.String())
		}
	})

	t.Run("at most one wrapper at a time", func(t *testing.T) {
		instr := New(td, 0)
		instr.SetConstOperand(0, OperandKind_SignExtendedImmediate, 7)
		instr.Operand(0).MarkHiBits32()
		instr.Operand(0).MarkLoBits64()

		assert.False(t, instr.Operand(0).HiBits32())
		assert.Equal(t, "mul\t%hm(7)", instr.String())
	})

	t.Run("no wrapper without split flags", func(t *testing.T) {
		instr := New(td, 0)
		instr.SetConstOperand(0, OperandKind_SignExtendedImmediate, -42)

		assert.Equal(t, "mul\t-42", instr.String())
	})
}

func TestRenderVirtualRegister(t *testing.T) {
	td := target.Sol64()
	regs := target.Sol64Registers()

	t.Run("unallocated named value", func(t *testing.T) {
		instr := New(td, target.Sol64_MOV)
		instr.SetValueOperand(1, OperandKind_VirtualRegister, ir.NewVariable("x"), false, false)

		assert.Contains(t, instr.Render(regs), "%reg(val x)")
	})

	t.Run("unnamed value renders as address token", func(t *testing.T) {
		instr := New(td, target.Sol64_MOV)
		instr.SetValueOperand(1, OperandKind_VirtualRegister, ir.NewTemp(), false, false)

		assert.Contains(t, instr.Render(regs), "%reg(val 0x")
	})

	t.Run("allocated physical register resolves to its name", func(t *testing.T) {
		instr := New(td, target.Sol64_MOV)
		instr.SetValueOperand(1, OperandKind_VirtualRegister, ir.NewVariable("x"), false, false)
		instr.BindAllocatedRegister(1, 3)

		assert.Contains(t, instr.Render(regs), "%reg(val x)==%r3")
	})

	t.Run("allocated virtual register number renders numerically", func(t *testing.T) {
		instr := New(td, target.Sol64_MOV)
		vreg := regs.FirstVirtualRegister() + 2
		instr.SetValueOperand(1, OperandKind_VirtualRegister, ir.NewVariable("x"), false, false)
		instr.BindAllocatedRegister(1, vreg)

		assert.Contains(t, instr.Render(regs), fmt.Sprintf("%%reg(val x)==%%reg%v", vreg))
	})

	t.Run("unresolved form uses bare register placeholders", func(t *testing.T) {
		instr := New(td, target.Sol64_MOV)
		instr.SetValueOperand(1, OperandKind_VirtualRegister, ir.NewVariable("x"), false, false)
		instr.BindAllocatedRegister(1, 3)

		assert.Contains(t, instr.String(), "%reg(val x)==%mreg(3)")
	})
}

func TestRenderCCRegister(t *testing.T) {
	td := target.Sol64()
	regs := target.Sol64Registers()
	ccr, err := regs.RegisterByName("ccr")
	require.NoError(t, err)

	instr := New(td, target.Sol64_BE)
	instr.SetValueOperand(1, OperandKind_CCRegister, ir.NewVariable("cc"), false, false)

	assert.Contains(t, instr.Render(regs), "%ccreg(val cc)")

	instr.BindAllocatedRegister(1, ccr)
	assert.Contains(t, instr.Render(regs), "%ccreg(val cc)==%ccr")
}

func TestRenderMachineRegister(t *testing.T) {
	td := target.Sol64()
	regs := target.Sol64Registers()

	instr := New(td, target.Sol64_ADD)
	instr.SetRegisterOperand(0, 5, false)

	assert.Contains(t, instr.Render(regs), "\t%r5<def>")
	assert.Contains(t, instr.String(), "\t%mreg(5)*")
}

func TestRenderDisplacement(t *testing.T) {
	td := target.Sol64()
	regs := target.Sol64Registers()

	t.Run("function target is a label", func(t *testing.T) {
		instr := New(td, target.Sol64_BA)
		instr.SetValueOperand(0, OperandKind_PCRelativeDisp, ir.NewFunction("helper"), false, false)

		assert.Equal(t, "ba\t%disp(label helper)", instr.Render(regs))
	})

	t.Run("block target is a label", func(t *testing.T) {
		instr := New(td, target.Sol64_BA)
		instr.SetValueOperand(0, OperandKind_PCRelativeDisp, ir.NewBlock("loop"), false, false)

		assert.Equal(t, "ba\t%disp(label loop)", instr.Render(regs))
	})

	t.Run("data value target is an address", func(t *testing.T) {
		instr := New(td, target.Sol64_BA)
		instr.SetValueOperand(0, OperandKind_PCRelativeDisp, ir.NewVariable("table"), false, false)

		assert.Equal(t, "ba\t%disp(addr-of-val table)", instr.Render(regs))
	})

	t.Run("unnamed data value renders as address token", func(t *testing.T) {
		instr := New(td, target.Sol64_BA)
		instr.SetValueOperand(0, OperandKind_PCRelativeDisp, ir.NewTemp(), false, false)

		assert.Contains(t, instr.Render(regs), "%disp(addr-of-val 0x")
	})
}

func TestRenderDefSuffixes(t *testing.T) {
	td := target.Sol64()
	regs := target.Sol64Registers()

	t.Run("resolved def tag", func(t *testing.T) {
		instr := New(td, target.Sol64_ADD)
		instr.SetValueOperand(0, OperandKind_VirtualRegister, ir.NewVariable("dst"), false, false)

		assert.Contains(t, instr.Render(regs), "%reg(val dst)<def>")
	})

	t.Run("resolved def-and-use tag", func(t *testing.T) {
		instr := New(td, target.Sol64_ADD)
		instr.SetValueOperand(1, OperandKind_VirtualRegister, ir.NewVariable("acc"), false, true)

		assert.Contains(t, instr.Render(regs), "%reg(val acc)<def&use>")
	})

	t.Run("unresolved star markers", func(t *testing.T) {
		instr := New(td, target.Sol64_ADD)
		instr.SetValueOperand(0, OperandKind_VirtualRegister, ir.NewVariable("dst"), false, false)
		instr.SetValueOperand(1, OperandKind_VirtualRegister, ir.NewVariable("acc"), true, true)

		rendered := instr.String()
		assert.Contains(t, rendered, "%reg(val dst)*")
		assert.Contains(t, rendered, "%reg(val acc)**")
	})
}

func TestRenderImplicitRefs(t *testing.T) {
	td := target.Sol64()
	regs := target.Sol64Registers()

	instr := NewWithOperands(td, target.Sol64_CALL, 1)
	instr.SetValueOperand(0, OperandKind_PCRelativeDisp, ir.NewFunction("helper"), false, false)
	instr.AddImplicitRef(ir.NewVariable("a"), true, false)
	instr.AddImplicitRef(ir.NewVariable("b"), true, false)

	assert.Equal(t, "call\t%disp(label helper)\tImplicit:\t(val a)<def>\t(val b)<def>", instr.Render(regs))
	assert.Equal(t, "call\t%disp(label helper)\tImplicit:\t(val a)*\t(val b)*", instr.String())
}

func TestRenderUnrecognizedKindPanics(t *testing.T) {
	corrupted := &Operand{kind: OperandKind(99), regNum: UnallocatedRegister}

	assert.Panics(t, func() {
		renderOperand(corrupted, nil)
	})
}

func TestOperandString(t *testing.T) {
	td := target.Sol64()
	instr := New(td, target.Sol64_MOV)
	instr.SetConstOperand(1, OperandKind_UnextendedImmediate, 1024)

	assert.Equal(t, "1024", instr.Operand(1).String())
}
