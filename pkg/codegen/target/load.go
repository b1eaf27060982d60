package target

import (
	"errors"
	"io"
	"os"

	"github.com/luciernaga/luciernaga/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Serialized form of a target description, as stored in a YAML target spec
// file. Opcodes are implied by the order of the instruction list.
type descriptionFile struct {
	Name         string       `yaml:"name"`
	Instructions []*InstrDesc `yaml:"instructions"`
}

var ErrInvalidTargetSpec error = errors.New("invalid target spec")

// Loads a target description from a YAML target spec document
func LoadDescription(reader io.Reader) (*Description, error) {
	var file descriptionFile

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil {
		return nil, utils.MakeError(ErrInvalidTargetSpec, "%v", err)
	}

	if file.Name == "" {
		return nil, utils.MakeError(ErrInvalidTargetSpec, "missing target name")
	}

	if len(file.Instructions) == 0 {
		return nil, utils.MakeError(ErrInvalidTargetSpec, "target '%v' declares no instructions", file.Name)
	}

	seen := make(map[string]bool, len(file.Instructions))

	for op, desc := range file.Instructions {
		if desc.Mnemonic == "" {
			return nil, utils.MakeError(ErrInvalidTargetSpec, "missing mnemonic for opcode %v of target '%v'", op, file.Name)
		}

		if seen[desc.Mnemonic] {
			return nil, utils.MakeError(ErrInvalidTargetSpec, "duplicated mnemonic '%v' in target '%v'", desc.Mnemonic, file.Name)
		}

		seen[desc.Mnemonic] = true
	}

	return NewDescription(file.Name, file.Instructions), nil
}

// Loads a target description from a YAML target spec file
func LoadDescriptionFile(path string) (*Description, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, utils.MakeError(ErrInvalidTargetSpec, "cannot open target spec '%v': %v", path, err)
	}
	defer file.Close()

	return LoadDescription(file)
}
