package mir

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/luciernaga/luciernaga/pkg/codegen/ir"
	"github.com/luciernaga/luciernaga/pkg/codegen/mir"
	"github.com/luciernaga/luciernaga/pkg/codegen/target"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump a demo machine code block in both debug forms",
	Long: `Builds a small machine code block for the sol64 demo target, as instruction
selection would leave it, and dumps it in the resolved form (register names
looked up through the target register file) and in the unresolved form
(bare register number placeholders).`,
	Run: func(cmd *cobra.Command, args []string) {
		td := target.Sol64()
		regs := target.Sol64Registers()

		bb := demoBlock(td, regs)

		color.New(color.FgCyan, color.Bold).Println("Resolved form")
		fmt.Println(bb.Render(regs))
		fmt.Println()

		color.New(color.FgCyan, color.Bold).Println("Unresolved form")
		fmt.Println(bb.String())
	},
}

// Builds a block materializing a wide constant into a register, adding it to
// an argument, and calling a helper with the result. Mirrors the state the
// selector leaves behind: virtual registers still unallocated except where
// the calling convention forces a physical register.
func demoBlock(td *target.Description, regs *target.RegisterFile) *mir.BasicBlock {
	bb := mir.NewBasicBlock("entry")

	bigConstant := ir.NewVariable("big")
	argument := ir.NewVariable("n")
	sum := ir.NewVariable("sum")
	cc := ir.NewVariable("cc")
	helper := ir.NewFunction("helper")
	r0, _ := regs.RegisterByName("r0")

	// sethi %lm(big), big  /  add big, %lo(big), big
	sethi := mir.InstrInBlock(bb, td, target.Sol64_SETHI).Def(bigConstant).SImm(0x3fffff).Done()
	sethi.Operand(1).MarkHiBits32()

	or := mir.InstrInBlock(bb, td, target.Sol64_ADD).Def(bigConstant).Use(bigConstant).SImm(0x3ff).Done()
	or.Operand(2).MarkLoBits32()

	mir.InstrInBlock(bb, td, target.Sol64_ADD).Def(sum).Use(bigConstant).Use(argument)

	// compare against the argument, branching over the call when equal
	skip := mir.NewBasicBlock("skip")
	mir.InstrInBlock(bb, td, target.Sol64_CMP).Use(sum).Use(argument).ImplicitDef(cc)
	mir.InstrInBlock(bb, td, target.Sol64_BE).Disp(skip.Label()).CC(cc, false)

	// call helper(sum); the call clobbers the condition codes implicitly
	call := mir.InstrInBlock(bb, td, target.Sol64_CALL).Disp(helper).Use(sum).ImplicitDef(cc).Done()
	call.BindAllocatedRegister(1, r0) // first argument register by convention

	mir.InstrInBlock(bb, td, target.Sol64_RET)

	return bb
}

func init() {
	MirCmd.AddCommand(dumpCmd)
}
