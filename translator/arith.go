package translator

import (
	"rv2arm/arm64"
	"rv2arm/riscv"
)

var regOpName = map[string]string{
	"add": "add", "sub": "sub", "mul": "mul",
	"and": "and", "or": "orr", "xor": "eor",
	"sll": "lsl", "srl": "lsr", "sra": "asr",
}

// immLogicalOpName maps the register-immediate logical instructions to
// their ARM64 immediate-form mnemonics, the same and/orr/eor mapping
// regOpName uses for the register-register forms.
var immLogicalOpName = map[string]string{
	"andi": "and", "ori": "orr", "xori": "eor",
}

// translateRegOp handles the three-register arithmetic/logical/shift
// form: rd = rs1 OP rs2.
func translateRegOp(n riscv.RegOp) ([]arm64.Instruction, error) {
	op, ok := regOpName[n.Op]
	if !ok {
		return nil, &TranslateError{Kind: UnmappableOperand, Detail: "unknown register-register op " + n.Op}
	}
	if n.Dest.IsZero() {
		return nil, nil
	}
	return []arm64.Instruction{arm64.ArithReg{
		Op:    op,
		Width: arm64.MapWidth(n.Width),
		Dest:  arm64.MapRegister(n.Dest),
		Src1:  arm64.MapRegister(n.Src1),
		Src2:  arm64.MapRegister(n.Src2),
	}}, nil
}

// translateImmOp handles addi/andi/ori/xori/slli/srli/srai — and, via the
// parser's %lo(sym) recognition, the second half of an lui/addi
// symbol-address idiom, which is consumed by the hi/lo fusion pass before
// this function ever sees it. Any ImmOp reaching here with Sym set is
// therefore the unmatched-lo-half error case.
func translateImmOp(n riscv.ImmOp) ([]arm64.Instruction, error) {
	if n.Sym != "" {
		return nil, &TranslateError{Kind: UnmatchedHiLoPair, Detail: "%lo(" + n.Sym + ") with no preceding lui %hi(" + n.Sym + ")"}
	}
	if n.Dest.IsZero() {
		return nil, nil
	}
	dest := arm64.MapRegister(n.Dest)
	src := arm64.MapRegister(n.Src)
	width := arm64.MapWidth(n.Width)

	switch n.Op {
	case "addi":
		// ARM64's immediate add/sub only accepts a non-negative
		// immediate; a negative addi is legalized into a sub, per
		// spec.md §4.3.
		if n.Imm < 0 {
			return []arm64.Instruction{arm64.ArithImm{Op: "sub", Width: width, Dest: dest, Src: src, Imm: uint64(-n.Imm)}}, nil
		}
		return []arm64.Instruction{arm64.ArithImm{Op: "add", Width: width, Dest: dest, Src: src, Imm: uint64(n.Imm)}}, nil
	case "slli":
		return []arm64.Instruction{arm64.ArithImm{Op: "lsl", Width: width, Dest: dest, Src: src, Imm: uint64(n.Imm)}}, nil
	case "srli":
		return []arm64.Instruction{arm64.ArithImm{Op: "lsr", Width: width, Dest: dest, Src: src, Imm: uint64(n.Imm)}}, nil
	case "srai":
		return []arm64.Instruction{arm64.ArithImm{Op: "asr", Width: width, Dest: dest, Src: src, Imm: uint64(n.Imm)}}, nil
	case "andi", "ori", "xori":
		// and/orr/eor operate on the immediate's raw bit pattern, not its
		// signed magnitude, so unlike addi there is no sign-based op flip
		// here: the sign-extended 12-bit value is passed through as-is.
		op := immLogicalOpName[n.Op]
		return []arm64.Instruction{arm64.ArithImm{Op: op, Width: width, Dest: dest, Src: src, Imm: uint64(n.Imm)}}, nil
	default:
		return nil, &TranslateError{Kind: UnmappableOperand, Detail: "unknown register-immediate op " + n.Op}
	}
}

func translateMv(n riscv.Mv) []arm64.Instruction {
	if n.Dest.IsZero() {
		return nil
	}
	width := arm64.Double // mv carries no width tag of its own in RV64I
	return []arm64.Instruction{arm64.MovReg{Dest: arm64.MapRegister(n.Dest), Src: arm64.MapRegister(n.Src), Width: width}}
}

func translateLi(n riscv.Li) []arm64.Instruction {
	if n.Dest.IsZero() {
		return nil
	}
	return legalizeImmediate(arm64.MapRegister(n.Dest), arm64.Double, n.Imm)
}

func translateSextW(n riscv.SextW) []arm64.Instruction {
	if n.Dest.IsZero() {
		return nil
	}
	return []arm64.Instruction{arm64.Sxtw{Dest: arm64.MapRegister(n.Dest), Src: arm64.MapRegister(n.Src)}}
}
