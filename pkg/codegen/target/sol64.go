package target

// Opcodes of the sol64 demo target, a small 64 bit RISC machine used by the
// command line tools and the test suite. Real backends provide their own
// Description the same way.
const (
	// No-Operation
	Sol64_NOP Opcode = iota
	// Copy a register or immediate into a register
	Sol64_MOV
	// Load the 22 most significant bits of a wide constant into a register
	Sol64_SETHI
	// Load a word from memory into a register
	Sol64_LD
	// Store a register into memory
	Sol64_ST
	// Add two operands into a result register
	Sol64_ADD
	// Subtract the second operand from the first into a result register
	Sol64_SUB
	// Multiply two operands into a result register
	Sol64_MUL
	// Divide the first operand by the second into a result register
	Sol64_DIV
	// Compare two operands, setting the condition code register
	Sol64_CMP
	// Branch unconditionally to a displacement
	Sol64_BA
	// Branch to a displacement if the condition codes say equal
	Sol64_BE
	// Call a function; takes the callee plus a variable argument list
	Sol64_CALL
	// Return from the current function
	Sol64_RET
	// SSA phi node, variable operand count, defines its first operand
	Sol64_PHI

	// Total sol64 opcodes
	TotalSol64Opcodes
)

// Returns the instruction descriptor table of the sol64 demo target
func Sol64() *Description {
	return NewDescription("sol64", []*InstrDesc{
		{Mnemonic: "nop", NumOperands: 0, ResultPos: -1, Description: "no operation"},
		{Mnemonic: "mov", NumOperands: 2, ResultPos: 0, Description: "copy the second operand into the first"},
		{Mnemonic: "sethi", NumOperands: 2, ResultPos: 0, Description: "load the high bits of a wide constant"},
		{Mnemonic: "ld", NumOperands: 3, ResultPos: 0, Description: "load a word from base + offset"},
		{Mnemonic: "st", NumOperands: 3, ResultPos: -1, Description: "store a word at base + offset"},
		{Mnemonic: "add", NumOperands: 3, ResultPos: 0, Description: "integer addition"},
		{Mnemonic: "sub", NumOperands: 3, ResultPos: 0, Description: "integer subtraction"},
		{Mnemonic: "mul", NumOperands: 3, ResultPos: 0, Description: "integer multiplication"},
		{Mnemonic: "div", NumOperands: 3, ResultPos: 0, Description: "integer division"},
		{Mnemonic: "cmp", NumOperands: 2, ResultPos: -1, Description: "compare, setting condition codes"},
		{Mnemonic: "ba", NumOperands: 1, ResultPos: -1, Description: "branch always"},
		{Mnemonic: "be", NumOperands: 2, ResultPos: -1, Description: "branch if equal"},
		{Mnemonic: "call", NumOperands: -1, ResultPos: -1, Description: "function call, variable operand count"},
		{Mnemonic: "ret", NumOperands: 0, ResultPos: -1, Description: "function return"},
		{Mnemonic: "phi", NumOperands: -1, ResultPos: 0, Description: "SSA phi node, variable operand count"},
	})
}

// Returns the register file of the sol64 demo target: 16 general purpose
// integer registers plus the state registers
func Sol64Registers() *RegisterFile {
	return NewRegisterFile([]*RegisterClass{
		{
			Name:       "general purpose integer registers",
			NamePrefix: "r",
			Registers:  MakeRegisters(16),
		},
		{
			Name: "state registers",
			Registers: []*RegisterDesc{
				{CustomName: "pc", Description: "program counter"},
				{CustomName: "sp", Description: "stack pointer"},
				{CustomName: "fp", Description: "frame pointer"},
				{CustomName: "ccr", Description: "condition code register"},
			},
		},
	})
}
