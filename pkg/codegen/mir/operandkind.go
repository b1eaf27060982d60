package mir

// Represents the kind of a machine operand (virtual register, machine
// register, immediate, ...)
type OperandKind uint

const (
	// A value that will live in a register, not yet assigned one
	OperandKind_VirtualRegister OperandKind = iota
	// A value that will live in the condition code register
	OperandKind_CCRegister
	// A physical machine register
	OperandKind_MachineRegister
	// An immediate constant, sign extended to the operand width
	OperandKind_SignExtendedImmediate
	// An immediate constant, not sign extended
	OperandKind_UnextendedImmediate
	// A PC-relative displacement to a value or code label
	OperandKind_PCRelativeDisp
)

func (k OperandKind) String() string {
	switch k {
	case OperandKind_VirtualRegister:
		return "VirtualRegister"
	case OperandKind_CCRegister:
		return "CCRegister"
	case OperandKind_MachineRegister:
		return "MachineRegister"
	case OperandKind_SignExtendedImmediate:
		return "SignExtendedImmediate"
	case OperandKind_UnextendedImmediate:
		return "UnextendedImmediate"
	case OperandKind_PCRelativeDisp:
		return "PCRelativeDisp"
	}

	panic("unreachable")
}

// Returns true if the kind is one of the two immediate kinds
func (k OperandKind) IsImmediate() bool {
	return k == OperandKind_SignExtendedImmediate || k == OperandKind_UnextendedImmediate
}

// Returns true if the kind carries a value reference
func (k OperandKind) HasValue() bool {
	switch k {
	case OperandKind_VirtualRegister, OperandKind_CCRegister, OperandKind_PCRelativeDisp:
		return true
	}

	return false
}
