package parser

import (
	"errors"
	"testing"

	"rv2arm/riscv"
)

func TestParseBasicArithmetic(t *testing.T) {
	prog, err := Parse("add a0, a0, a1\naddi a0, a0, -3\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(prog.Nodes))
	}
	reg, ok := prog.Nodes[0].Instruction.(riscv.RegOp)
	if !ok || reg.Op != "add" {
		t.Fatalf("node 0 = %#v, want RegOp add", prog.Nodes[0].Instruction)
	}
	imm, ok := prog.Nodes[1].Instruction.(riscv.ImmOp)
	if !ok || imm.Op != "addi" || imm.Imm != -3 {
		t.Fatalf("node 1 = %#v, want ImmOp addi -3", prog.Nodes[1].Instruction)
	}
}

func TestParseLabelsAndDirectives(t *testing.T) {
	src := `.text
.globl _start
_start:
	li a0, 42
	li a7, 93
	ecall
`
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var sawLabel, sawDirective bool
	for _, n := range prog.Nodes {
		if n.Kind == riscv.NodeLabel && n.Label == "_start" {
			sawLabel = true
		}
		if n.Kind == riscv.NodeDirective && n.Directive.Name == "globl" {
			sawDirective = true
		}
	}
	if !sawLabel {
		t.Error("missing _start label node")
	}
	if !sawDirective {
		t.Error("missing .globl directive node")
	}
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	prog, err := Parse("# a comment\n\n   \nnop # trailing comment\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(prog.Nodes))
	}
	if _, ok := prog.Nodes[0].Instruction.(riscv.Nop); !ok {
		t.Fatalf("node 0 = %#v, want Nop", prog.Nodes[0].Instruction)
	}
}

func TestParseHiLoRelocation(t *testing.T) {
	prog, err := Parse("lui a0, %hi(buf)\naddi a1, a0, %lo(buf)\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lui, ok := prog.Nodes[0].Instruction.(riscv.Lui)
	if !ok || lui.Sym != "buf" {
		t.Fatalf("node 0 = %#v, want Lui{Sym: buf}", prog.Nodes[0].Instruction)
	}
	addi, ok := prog.Nodes[1].Instruction.(riscv.ImmOp)
	if !ok || addi.Sym != "buf" {
		t.Fatalf("node 1 = %#v, want ImmOp{Sym: buf}", prog.Nodes[1].Instruction)
	}
}

func TestParseLaExpandsToHiLoPair(t *testing.T) {
	prog, err := Parse("la a0, buf\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(prog.Nodes))
	}
	lui, ok := prog.Nodes[0].Instruction.(riscv.Lui)
	if !ok || lui.Sym != "buf" {
		t.Fatalf("node 0 = %#v, want Lui{Sym: buf}", prog.Nodes[0].Instruction)
	}
	addi, ok := prog.Nodes[1].Instruction.(riscv.ImmOp)
	if !ok || addi.Sym != "buf" {
		t.Fatalf("node 1 = %#v, want ImmOp{Sym: buf}", prog.Nodes[1].Instruction)
	}
}

func TestParseRejectsUnsupportedInstruction(t *testing.T) {
	_, err := Parse("fdiv.s fa0, fa1, fa2\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	if pe.Kind != UnsupportedInstruction {
		t.Errorf("Kind = %v, want %v", pe.Kind, UnsupportedInstruction)
	}
}

func TestParseRejectsReservedLabel(t *testing.T) {
	_, err := Parse("lr:\n\tnop\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	if pe.Kind != ReservedLabel {
		t.Errorf("Kind = %v, want %v", pe.Kind, ReservedLabel)
	}
}

func TestParseCollectsAllErrorsInOnePass(t *testing.T) {
	_, err := Parse("bogus1 a0\nbogus2 a0\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	// errors.Join lets every line's error be recovered independently.
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("error %v does not support multi-unwrap", err)
	}
	if got := len(joined.Unwrap()); got != 2 {
		t.Fatalf("got %d joined errors, want 2", got)
	}
}

func TestParseMemoryOperand(t *testing.T) {
	prog, err := Parse("sd s0, 40(sp)\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mem, ok := prog.Nodes[0].Instruction.(riscv.MemOp)
	if !ok || mem.Load || mem.Offset != 40 || mem.Base != riscv.SP || mem.Reg != riscv.S0 {
		t.Fatalf("node 0 = %#v, want store s0 -> 40(sp)", prog.Nodes[0].Instruction)
	}
}

func TestParseBranch(t *testing.T) {
	prog, err := Parse("ble a3, zero, .end\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, ok := prog.Nodes[0].Instruction.(riscv.Branch)
	if !ok || b.Cond != "ble" || b.Src2 != riscv.Zero || b.Label != ".end" {
		t.Fatalf("node 0 = %#v, want Branch ble a3, zero, .end", prog.Nodes[0].Instruction)
	}
}

func TestParseZeroComparisonBranchPseudoForms(t *testing.T) {
	prog, err := Parse("blez a3, .end\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, ok := prog.Nodes[0].Instruction.(riscv.Branch)
	if !ok || b.Cond != "ble" || b.Src1 != riscv.A3 || b.Src2 != riscv.Zero || b.Label != ".end" {
		t.Fatalf("node 0 = %#v, want Branch ble a3, zero, .end", prog.Nodes[0].Instruction)
	}
}

func TestParseRegisterImmediateLogical(t *testing.T) {
	prog, err := Parse("andi a0, a0, 15\nori a1, a1, 1\nxori a2, a2, -1\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for i, want := range []string{"andi", "ori", "xori"} {
		imm, ok := prog.Nodes[i].Instruction.(riscv.ImmOp)
		if !ok || imm.Op != want {
			t.Fatalf("node %d = %#v, want ImmOp %s", i, prog.Nodes[i].Instruction, want)
		}
	}
}

func TestParseAuipcPcrelHi(t *testing.T) {
	prog, err := Parse("auipc a1, %pcrel_hi(buf)\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	auipc, ok := prog.Nodes[0].Instruction.(riscv.Auipc)
	if !ok || auipc.Sym != "buf" {
		t.Fatalf("node 0 = %#v, want Auipc{Sym: buf}", prog.Nodes[0].Instruction)
	}
}

func TestParseRejectsOutOfRangeImmediate(t *testing.T) {
	_, err := Parse("addi a0, a0, 4096\n")
	if err == nil {
		t.Fatal("expected an error for a 12-bit-signed-overflowing addi immediate")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	if pe.Kind != ImmediateOutOfRange {
		t.Errorf("Kind = %v, want %v", pe.Kind, ImmediateOutOfRange)
	}
}

func TestParseAcceptsImmediateAtRangeBoundary(t *testing.T) {
	if _, err := Parse("addi a0, a0, 2047\n"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := Parse("addi a0, a0, -2048\n"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestParseRejectsOutOfRangeShiftAmount(t *testing.T) {
	_, err := Parse("slliw a0, a0, 32\n")
	if err == nil {
		t.Fatal("expected an error for a shift amount that overflows the w-suffixed 5-bit field")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	if pe.Kind != ImmediateOutOfRange {
		t.Errorf("Kind = %v, want %v", pe.Kind, ImmediateOutOfRange)
	}
}

func TestParseRejectsOutOfRangeLuiImmediate(t *testing.T) {
	_, err := Parse("lui a0, 0x100000\n")
	if err == nil {
		t.Fatal("expected an error for a lui immediate wider than 20 bits")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	if pe.Kind != ImmediateOutOfRange {
		t.Errorf("Kind = %v, want %v", pe.Kind, ImmediateOutOfRange)
	}
}
