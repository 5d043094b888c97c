package arm64

import "rv2arm/riscv"

// MapRegister and MapWidth are the two pure functions the register
// mapping module is decomposed into: a width-agnostic name mapping and a
// separate width mapping. Composing them gives the full
// (riscv.Register, riscv.Width) -> (Register, Width) mapping used
// throughout the translator.
//
// The table is a fixed 32-entry bijection, chosen to preserve each RISC-V
// register's ABI role on the ARM64 side (argument registers a0-a7 land on
// x0-x7, the return address lands on the link register x30, and so on)
// rather than a raw index-for-index copy.
var nameTable = map[riscv.Register]Register{
	riscv.Zero: ZR,
	riscv.RA:   X30,
	riscv.SP:   SP,
	riscv.GP:   X18, // platform register, closest analogue to a global pointer
	riscv.TP:   X19,
	riscv.T0:   X9,
	riscv.T1:   X10,
	riscv.T2:   X11,
	riscv.S0:   X29,
	riscv.S1:   X20,
	riscv.A0:   X0,
	riscv.A1:   X1,
	riscv.A2:   X2,
	riscv.A3:   X3,
	riscv.A4:   X4,
	riscv.A5:   X5,
	riscv.A6:   X6,
	riscv.A7:   X7,
	riscv.S2:   X21,
	riscv.S3:   X22,
	riscv.S4:   X23,
	riscv.S5:   X24,
	riscv.S6:   X25,
	riscv.S7:   X26,
	riscv.S8:   X27,
	riscv.S9:   X28,
	riscv.S10:  X12, // spills into the caller-saved range: no free callee-saved slot remains
	riscv.S11:  X13,
	riscv.T3:   X14,
	riscv.T4:   X15,
	riscv.T5:   X16,
	riscv.T6:   X17,
}

// MapRegister maps a RISC-V ABI register to its ARM64 counterpart. The
// mapping is total and a bijection over the 32 RISC-V ABI names: no two
// RISC-V registers ever map to the same ARM64 register.
func MapRegister(r riscv.Register) Register {
	if mapped, ok := nameTable[r]; ok {
		return mapped
	}
	// Every riscv.Register constant has an entry in nameTable; reaching
	// here means a new RISC-V register constant was added without a
	// matching table entry.
	panic("arm64: unmapped riscv register")
}

// MapWidth maps a RISC-V width tag to its ARM64 counterpart.
func MapWidth(w riscv.Width) Width {
	if w == riscv.Word {
		return Word
	}
	return Double
}
