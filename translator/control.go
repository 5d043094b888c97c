package translator

import (
	"rv2arm/arm64"
	"rv2arm/riscv"
)

// branchCond maps a RISC-V conditional-branch mnemonic to the ARM64
// condition code used after the synthesized cmp, per the table in
// spec.md §4.3.
var branchCond = map[string]string{
	"beq":  "eq",
	"bne":  "ne",
	"blt":  "lt",
	"bge":  "ge",
	"bltu": "lo",
	"bgeu": "hs",
	"ble":  "le",
	"bgt":  "gt",
}

// translateBranch expands a RISC-V conditional branch into the ARM64
// cmp + b.<cond> pair spec.md §4.3 requires — RISC-V folds the
// comparison into the branch opcode; ARM64 needs flags set first.
func translateBranch(n riscv.Branch) ([]arm64.Instruction, error) {
	cond, ok := branchCond[n.Cond]
	if !ok {
		return nil, &TranslateError{Kind: UnmappableOperand, Detail: "unknown branch condition " + n.Cond}
	}
	return []arm64.Instruction{
		arm64.Cmp{Width: arm64.Double, Src1: arm64.MapRegister(n.Src1), Src2: arm64.MapRegister(n.Src2)},
		arm64.BCond{Cond: cond, Label: n.Label},
	}, nil
}

func translateJ(n riscv.J) []arm64.Instruction {
	return []arm64.Instruction{arm64.B{Label: n.Label}}
}

func translateCall(n riscv.Call) []arm64.Instruction {
	return []arm64.Instruction{arm64.Bl{Label: n.Label}}
}

func translateRet(riscv.Ret) []arm64.Instruction {
	return []arm64.Instruction{arm64.Ret{}}
}

// translateJal handles jal (unconditional call/jump that saves a return
// address). A zero destination discards the link, which is exactly an
// unconditional jump; any other destination besides ra has no direct
// ARM64 equivalent, since bl always targets the link register x30.
func translateJal(n riscv.Jal) ([]arm64.Instruction, error) {
	if n.Dest.IsZero() {
		return []arm64.Instruction{arm64.B{Label: n.Label}}, nil
	}
	if n.Dest == riscv.RA {
		return []arm64.Instruction{arm64.Bl{Label: n.Label}}, nil
	}
	return nil, &TranslateError{Kind: UnmappableOperand, Detail: "jal with a link destination other than ra or x0 has no ARM64 equivalent"}
}

// translateJalr handles jalr, jr (jalr with dest=x0) and the
// jalr x0, ra, 0 / jr ra / ret idiom, which spec.md §4.3 requires all
// collapse to a plain ret.
func translateJalr(n riscv.Jalr) ([]arm64.Instruction, error) {
	if n.Imm != 0 {
		return nil, &TranslateError{Kind: UnmappableOperand, Detail: "jalr with a nonzero offset has no ARM64 equivalent"}
	}
	if n.Dest.IsZero() && n.Base == riscv.RA {
		return []arm64.Instruction{arm64.Ret{}}, nil
	}
	if n.Dest.IsZero() {
		return []arm64.Instruction{arm64.Br{Target: arm64.MapRegister(n.Base)}}, nil
	}
	if n.Dest == riscv.RA {
		return []arm64.Instruction{arm64.Blr{Target: arm64.MapRegister(n.Base)}}, nil
	}
	return nil, &TranslateError{Kind: UnmappableOperand, Detail: "jalr with a link destination other than ra or x0 has no ARM64 equivalent"}
}

// translateEcall passes a syscall through verbatim: Linux assigns
// identical syscall numbers on aarch64 and riscv64 in the ranges this
// translator targets, so the value already sitting in a7 (mapped to x7)
// is correct as-is and is never rewritten.
func translateEcall(riscv.ECall) []arm64.Instruction {
	return []arm64.Instruction{arm64.Svc{}}
}

func translateNop(riscv.Nop) []arm64.Instruction {
	return []arm64.Instruction{arm64.Nop{}}
}
