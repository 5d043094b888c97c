package translator

import (
	"rv2arm/arm64"
	"rv2arm/riscv"
)

// fuseHiLo recognizes the lui %hi(sym) / addi %lo(sym) two-instruction
// symbol-addressing idiom as a unit and rewrites it into the ARM64
// adrp/add :lo12: pair, per spec.md §4.3 and §9's note that this idiom
// needs a one-instruction lookahead window. It returns the fused
// instructions and how many source nodes they consumed (always 2 on
// success), or an error if only one half of the pair is present.
func fuseHiLo(lui riscv.Lui, nodes []riscv.Node, i int) ([]arm64.Instruction, int, error) {
	if i+1 >= len(nodes) || nodes[i+1].Kind != riscv.NodeInstruction {
		return nil, 0, &TranslateError{Line: nodes[i].Line, Kind: UnmatchedHiLoPair, Detail: "lui %hi(" + lui.Sym + ") with no following addi %lo(" + lui.Sym + ")"}
	}
	addi, ok := nodes[i+1].Instruction.(riscv.ImmOp)
	if !ok || addi.Op != "addi" || addi.Sym != lui.Sym || addi.Src != lui.Dest {
		return nil, 0, &TranslateError{Line: nodes[i].Line, Kind: UnmatchedHiLoPair, Detail: "lui %hi(" + lui.Sym + ") with no following addi %lo(" + lui.Sym + ")"}
	}

	adrpDest := arm64.MapRegister(lui.Dest)
	addDest := arm64.MapRegister(addi.Dest)
	if lui.Dest.IsZero() && addi.Dest.IsZero() {
		return nil, 2, nil
	}
	return []arm64.Instruction{
		arm64.Adrp{Dest: adrpDest, Sym: lui.Sym},
		arm64.AddLo12{Dest: addDest, Src: adrpDest, Sym: lui.Sym},
	}, 2, nil
}

// translateLuiImmediate handles a bare (non-relocation) lui: the written
// 20-bit field is shifted into bits 31:12 and sign-extended, same as the
// real RV64I semantics.
func translateLuiImmediate(n riscv.Lui) []arm64.Instruction {
	if n.Dest.IsZero() {
		return nil
	}
	return legalizeImmediate(arm64.MapRegister(n.Dest), arm64.Double, int64(int32(n.Imm<<12)))
}

// fuseAuipcLo recognizes the auipc %pcrel_hi(sym) / addi %pcrel_lo(sym)
// two-instruction PC-relative symbol-addressing idiom, the auipc
// counterpart to fuseHiLo's lui %hi(sym) / addi %lo(sym), grounded the
// same way on the adrp/add :lo12: pairing in
// _examples/xyproto-vibe67/lea.go. matched is false (with no
// instructions and nothing consumed) if the next node isn't a matching
// addi — unlike fuseHiLo, that is not an error here: a standalone auipc
// %pcrel_hi already has a valid single-instruction translation via adr,
// so the caller falls back to that rather than aborting.
func fuseAuipcLo(auipc riscv.Auipc, nodes []riscv.Node, i int) (insts []arm64.Instruction, consumed int, matched bool) {
	if i+1 >= len(nodes) || nodes[i+1].Kind != riscv.NodeInstruction {
		return nil, 0, false
	}
	addi, ok := nodes[i+1].Instruction.(riscv.ImmOp)
	if !ok || addi.Op != "addi" || addi.Sym != auipc.Sym || addi.Src != auipc.Dest {
		return nil, 0, false
	}

	adrpDest := arm64.MapRegister(auipc.Dest)
	addDest := arm64.MapRegister(addi.Dest)
	if auipc.Dest.IsZero() && addi.Dest.IsZero() {
		return nil, 2, true
	}
	return []arm64.Instruction{
		arm64.Adrp{Dest: adrpDest, Sym: auipc.Sym},
		arm64.AddLo12{Dest: addDest, Src: adrpDest, Sym: auipc.Sym},
	}, 2, true
}

// translateAuipc handles a standalone auipc %pcrel_hi(sym) that Translate
// did not find a paired addi %pcrel_lo(sym) for (see fuseAuipcLo): it is
// materialized directly as an adr to the named label, which is the only
// case a static, one-pass text translator can resolve without itself
// performing address layout (see SPEC_FULL.md §6). A bare-immediate
// auipc has no meaningful translation here, since "current PC" is not a
// value this translator ever computes.
func translateAuipc(n riscv.Auipc) ([]arm64.Instruction, error) {
	if n.Sym == "" {
		return nil, &TranslateError{Kind: UnmappableOperand, Detail: "auipc with a literal immediate (not a %pcrel_hi symbol) has no ARM64 equivalent"}
	}
	if n.Dest.IsZero() {
		return nil, nil
	}
	return []arm64.Instruction{arm64.Adr{Dest: arm64.MapRegister(n.Dest), Label: n.Sym}}, nil
}
