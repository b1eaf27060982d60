package target

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoTargetSpec = `
name: demo16
instructions:
  - mnemonic: nop
    operands: 0
    result: -1
    description: no operation
  - mnemonic: add
    operands: 3
    result: 0
  - mnemonic: call
    operands: -1
    result: -1
`

func TestLoadDescription(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		td, err := LoadDescription(strings.NewReader(demoTargetSpec))

		require.NoError(t, err)
		assert.Equal(t, "demo16", td.Name)
		assert.Equal(t, 3, td.TotalOpcodes())

		add := td.Desc(Opcode(1))
		assert.Equal(t, "add", add.Mnemonic)
		assert.Equal(t, 3, add.NumOperands)
		assert.Equal(t, 0, add.ResultPos)

		call := td.Desc(Opcode(2))
		assert.False(t, call.HasFixedOperands())
	})

	t.Run("loaded spec parses opcodes", func(t *testing.T) {
		td, err := LoadDescription(strings.NewReader(demoTargetSpec))
		require.NoError(t, err)

		op, err := td.ParseOpcode("call")
		require.NoError(t, err)
		assert.Equal(t, Opcode(2), op)
	})

	t.Run("missing name", func(t *testing.T) {
		spec := `
instructions:
  - mnemonic: nop
    operands: 0
    result: -1
`
		_, err := LoadDescription(strings.NewReader(spec))
		assert.ErrorIs(t, err, ErrInvalidTargetSpec)
	})

	t.Run("no instructions", func(t *testing.T) {
		_, err := LoadDescription(strings.NewReader("name: empty\n"))
		assert.ErrorIs(t, err, ErrInvalidTargetSpec)
	})

	t.Run("missing mnemonic", func(t *testing.T) {
		spec := `
name: demo
instructions:
  - operands: 0
    result: -1
`
		_, err := LoadDescription(strings.NewReader(spec))
		assert.ErrorIs(t, err, ErrInvalidTargetSpec)
	})

	t.Run("duplicated mnemonic", func(t *testing.T) {
		spec := `
name: demo
instructions:
  - mnemonic: nop
    operands: 0
    result: -1
  - mnemonic: nop
    operands: 0
    result: -1
`
		_, err := LoadDescription(strings.NewReader(spec))
		assert.ErrorIs(t, err, ErrInvalidTargetSpec)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		spec := `
name: demo
typo: true
instructions:
  - mnemonic: nop
    operands: 0
    result: -1
`
		_, err := LoadDescription(strings.NewReader(spec))
		assert.ErrorIs(t, err, ErrInvalidTargetSpec)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadDescription(strings.NewReader("name: [unclosed"))
		assert.ErrorIs(t, err, ErrInvalidTargetSpec)
	})
}

func TestLoadDescriptionFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDescriptionFile("does/not/exist.yaml")
		assert.ErrorIs(t, err, ErrInvalidTargetSpec)
	})
}
