package ir

// A Value is the identity of a source-level entity (a temporary, a function, a
// basic block label) that machine operands can reference before register
// allocation assigns them a physical register. Values are compared by
// identity: two operands reference the same entity iff they hold the same
// pointer. The code generator borrows values from the compilation unit that
// owns them, it never frees or copies them.
type Value interface {
	// Returns true if the value has a source-level name
	HasName() bool
	// Returns the source-level name of the value. Empty for unnamed values
	Name() string
}

// A Variable is a source-level temporary or local. Unnamed variables are
// common (compiler-introduced temporaries) and render as an opaque address
// token in debug output.
type Variable struct {
	name string
}

func (v *Variable) HasName() bool {
	return v.name != ""
}

func (v *Variable) Name() string {
	return v.name
}

// Creates a named variable
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// Creates an unnamed compiler temporary
func NewTemp() *Variable {
	return &Variable{}
}

// A Function is the identity of a function, usable as a branch or call target
type Function struct {
	name string
}

func (f *Function) HasName() bool {
	return f.name != ""
}

func (f *Function) Name() string {
	return f.name
}

// Creates a function identity
func NewFunction(name string) *Function {
	return &Function{name: name}
}

// A Block is the identity of a source-level basic block label, usable as a
// branch target
type Block struct {
	name string
}

func (b *Block) HasName() bool {
	return b.name != ""
}

func (b *Block) Name() string {
	return b.name
}

// Creates a block label identity
func NewBlock(name string) *Block {
	return &Block{name: name}
}

// Returns true if the value names a code location (a function or a basic
// block label) rather than a data value
func IsLabel(v Value) bool {
	switch v.(type) {
	case *Function, *Block:
		return true
	}

	return false
}
