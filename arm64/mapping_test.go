package arm64

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rv2arm/riscv"
)

// allRiscVRegisters enumerates the 32-entry RISC-V ABI register file the
// mapping must be a bijection over.
func allRiscVRegisters() []riscv.Register {
	regs := make([]riscv.Register, 0, 32)
	for i := riscv.Zero; i <= riscv.T6; i++ {
		regs = append(regs, i)
	}
	return regs
}

func TestMapRegisterIsBijective(t *testing.T) {
	seen := map[Register]riscv.Register{}
	for _, r := range allRiscVRegisters() {
		mapped := MapRegister(r)
		if prev, ok := seen[mapped]; ok {
			t.Fatalf("MapRegister(%v) and MapRegister(%v) both produce %v", prev, r, mapped)
		}
		seen[mapped] = r
	}
	assert.Len(t, seen, 32)
}

func TestMapRegisterPreservesKeyABIRoles(t *testing.T) {
	assert.Equal(t, ZR, MapRegister(riscv.Zero))
	assert.Equal(t, SP, MapRegister(riscv.SP))
	assert.Equal(t, X30, MapRegister(riscv.RA))
	assert.Equal(t, X0, MapRegister(riscv.A0))
	assert.Equal(t, X7, MapRegister(riscv.A7))
}

func TestMapWidth(t *testing.T) {
	assert.Equal(t, Double, MapWidth(riscv.Double))
	assert.Equal(t, Word, MapWidth(riscv.Word))
}

func TestRegisterNameFormatting(t *testing.T) {
	assert.Equal(t, "x0", Name(X0, Double))
	assert.Equal(t, "w0", Name(X0, Word))
	assert.Equal(t, "xzr", Name(ZR, Double))
	assert.Equal(t, "wzr", Name(ZR, Word))
	assert.Equal(t, "sp", Name(SP, Double))
}
