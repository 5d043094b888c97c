package translator

import (
	"rv2arm/arm64"
	"rv2arm/riscv"
)

// translateMemOp handles ld/lw/sd/sw. A load to x0 is elided (it has no
// observable register effect under this translator's no-side-effect
// memory model); a store's source being x0 is preserved faithfully as a
// store of the ARM zero register.
func translateMemOp(n riscv.MemOp) []arm64.Instruction {
	if n.Load && n.Reg.IsZero() {
		return nil
	}
	return []arm64.Instruction{arm64.MemOp{
		Load:   n.Load,
		Width:  arm64.MapWidth(n.Width),
		Reg:    arm64.MapRegister(n.Reg),
		Base:   arm64.MapRegister(n.Base),
		Offset: n.Offset,
	}}
}
