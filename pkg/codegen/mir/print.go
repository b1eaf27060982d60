package mir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luciernaga/luciernaga/pkg/codegen/ir"
	"github.com/luciernaga/luciernaga/pkg/codegen/target"
)

// Debug rendering of instructions and operands. Two entry points share one
// rendering routine: Render resolves physical register names through a
// target.RegisterInfo and tags definitions with <def>/<def&use>, String has
// no register information, prints bare %mreg(N) placeholders and marks
// definitions with trailing '*' markers. The output is a debug aid, not a
// parseable assembly format.

// Renders a value reference token: the value's name when it has one, its raw
// identity as an opaque address token otherwise
func renderValue(v ir.Value) string {
	if v != nil && v.HasName() {
		return fmt.Sprintf("(val %v)", v.Name())
	}

	return fmt.Sprintf("(val %p)", v)
}

// Renders a register number. Physical registers resolve to their name when
// register information is available; virtual register numbers always render
// numerically.
func renderRegister(reg int, ri target.RegisterInfo) string {
	if ri == nil {
		return fmt.Sprintf("%%mreg(%v)", reg)
	}

	if reg < ri.FirstVirtualRegister() {
		return "%" + ri.RegisterName(reg)
	}

	return "%reg" + strconv.Itoa(reg)
}

// Renders one operand: split constant wrapper first, then the kind-specific
// body, then the wrapper's closing parenthesis. An operand kind missing from
// the table means corrupted instruction state and panics.
func renderOperand(op *Operand, ri target.RegisterInfo) string {
	var builder strings.Builder

	closeParen := true
	switch {
	case op.HiBits32():
		builder.WriteString("%lm(")
	case op.LoBits32():
		builder.WriteString("%lo(")
	case op.HiBits64():
		builder.WriteString("%hh(")
	case op.LoBits64():
		builder.WriteString("%hm(")
	default:
		closeParen = false
	}

	switch op.kind {
	case OperandKind_VirtualRegister:
		if op.value != nil {
			builder.WriteString("%reg")
			builder.WriteString(renderValue(op.value))

			if op.HasAllocatedRegister() {
				builder.WriteString("==")
			}
		}

		if op.HasAllocatedRegister() {
			builder.WriteString(renderRegister(op.regNum, ri))
		}

	case OperandKind_CCRegister:
		builder.WriteString("%ccreg")
		builder.WriteString(renderValue(op.value))

		if op.HasAllocatedRegister() {
			builder.WriteString("==")
			builder.WriteString(renderRegister(op.regNum, ri))
		}

	case OperandKind_MachineRegister:
		builder.WriteString(renderRegister(op.regNum, ri))

	case OperandKind_SignExtendedImmediate, OperandKind_UnextendedImmediate:
		builder.WriteString(strconv.FormatInt(op.immediate, 10))

	case OperandKind_PCRelativeDisp:
		if ir.IsLabel(op.value) {
			builder.WriteString("%disp(label ")
		} else {
			builder.WriteString("%disp(addr-of-val ")
		}

		if op.value != nil && op.value.HasName() {
			builder.WriteString(op.value.Name())
		} else {
			builder.WriteString(fmt.Sprintf("%p", op.value))
		}

		builder.WriteString(")")

	default:
		panic(fmt.Sprintf("unrecognized operand kind %v", uint(op.kind)))
	}

	if closeParen {
		builder.WriteString(")")
	}

	return builder.String()
}

// Renders the <def>/<def&use> suffix of the resolved form, or the historical
// '*' markers of the unresolved form (one per set flag)
func renderDefSuffix(op *Operand, resolved bool) string {
	if resolved {
		if op.IsDefAndUse() {
			return "<def&use>"
		}

		if op.IsDef() {
			return "<def>"
		}

		return ""
	}

	var suffix string

	if op.IsDef() {
		suffix += "*"
	}

	if op.IsDefAndUse() {
		suffix += "*"
	}

	return suffix
}

func (i *Instruction) render(ri target.RegisterInfo, resolved bool) string {
	var builder strings.Builder

	builder.WriteString(i.td.Mnemonic(i.opcode))

	for n := 0; n < i.NumOperands(); n++ {
		op := &i.operands[n]

		builder.WriteString("\t")
		builder.WriteString(renderOperand(op, ri))
		builder.WriteString(renderDefSuffix(op, resolved))
	}

	if i.implicitRefs > 0 {
		builder.WriteString("\tImplicit:")

		for n := 0; n < i.implicitRefs; n++ {
			op := i.implicitOperand(n)

			builder.WriteString("\t")
			builder.WriteString(renderValue(op.value))
			builder.WriteString(renderDefSuffix(op, resolved))
		}
	}

	return builder.String()
}

// Renders the instruction with physical register names resolved through the
// given register information
func (i *Instruction) Render(ri target.RegisterInfo) string {
	return i.render(ri, true)
}

// Renders the instruction without register name resolution: register numbers
// appear as bare %mreg(N) placeholders and definitions carry trailing '*'
// markers
func (i *Instruction) String() string {
	return i.render(nil, false)
}
