// Package emitter formats a translated arm64.Program into GNU-syntax
// AArch64 assembly text. It performs no semantic checks — it is a pure
// serializer, mirroring the contract of the teacher's disassembler
// package on the far side of the pipeline.
package emitter

import (
	"fmt"
	"strings"

	"rv2arm/arm64"
)

// Emit formats prog as GNU-syntax AArch64 assembly text, one line per
// label, directive, or instruction, in program order.
func Emit(prog *arm64.Program) (string, error) {
	var b strings.Builder
	for _, n := range prog.Nodes {
		switch n.Kind {
		case arm64.NodeLabel:
			fmt.Fprintf(&b, "%s:\n", n.Label)
		case arm64.NodeDirective:
			emitDirective(&b, n.Directive)
		case arm64.NodeInstruction:
			line, err := emitInstruction(n.Instruction)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "\t%s\n", line)
		}
	}
	return b.String(), nil
}

func emitDirective(b *strings.Builder, d arm64.Directive) {
	if len(d.Args) == 0 {
		fmt.Fprintf(b, "\t.%s\n", d.Name)
		return
	}
	fmt.Fprintf(b, "\t.%s %s\n", d.Name, strings.Join(d.Args, ", "))
}

func reg(r arm64.Register, w arm64.Width) string {
	return arm64.Name(r, w)
}

func emitInstruction(inst arm64.Instruction) (string, error) {
	switch i := inst.(type) {
	case arm64.MovReg:
		return fmt.Sprintf("mov %s, %s", reg(i.Dest, i.Width), reg(i.Src, i.Width)), nil
	case arm64.MovZ:
		return movLine("movz", i.Dest, i.Width, i.Imm, i.Shift), nil
	case arm64.MovK:
		return movLine("movk", i.Dest, i.Width, i.Imm, i.Shift), nil
	case arm64.ArithReg:
		return fmt.Sprintf("%s %s, %s, %s", i.Op, reg(i.Dest, i.Width), reg(i.Src1, i.Width), reg(i.Src2, i.Width)), nil
	case arm64.ArithImm:
		return fmt.Sprintf("%s %s, %s, #%d", i.Op, reg(i.Dest, i.Width), reg(i.Src, i.Width), i.Imm), nil
	case arm64.Sxtw:
		return fmt.Sprintf("sxtw %s, %s", reg(i.Dest, arm64.Double), reg(i.Src, arm64.Word)), nil
	case arm64.MemOp:
		mnemonic := "str"
		if i.Load {
			mnemonic = "ldr"
		}
		return fmt.Sprintf("%s %s, [%s, #%d]", mnemonic, reg(i.Reg, i.Width), reg(i.Base, arm64.Double), i.Offset), nil
	case arm64.Adrp:
		return fmt.Sprintf("adrp %s, %s", reg(i.Dest, arm64.Double), i.Sym), nil
	case arm64.AddLo12:
		return fmt.Sprintf("add %s, %s, :lo12:%s", reg(i.Dest, arm64.Double), reg(i.Src, arm64.Double), i.Sym), nil
	case arm64.Adr:
		return fmt.Sprintf("adr %s, %s", reg(i.Dest, arm64.Double), i.Label), nil
	case arm64.Cmp:
		return fmt.Sprintf("cmp %s, %s", reg(i.Src1, i.Width), reg(i.Src2, i.Width)), nil
	case arm64.B:
		return fmt.Sprintf("b %s", i.Label), nil
	case arm64.BCond:
		return fmt.Sprintf("b.%s %s", i.Cond, i.Label), nil
	case arm64.Bl:
		return fmt.Sprintf("bl %s", i.Label), nil
	case arm64.Blr:
		return fmt.Sprintf("blr %s", reg(i.Target, arm64.Double)), nil
	case arm64.Br:
		return fmt.Sprintf("br %s", reg(i.Target, arm64.Double)), nil
	case arm64.Ret:
		return "ret", nil
	case arm64.Svc:
		return "svc #0", nil
	case arm64.Nop:
		return "nop", nil
	default:
		return "", fmt.Errorf("emitter: no text form for %T", inst)
	}
}

func movLine(mnemonic string, dest arm64.Register, w arm64.Width, imm uint16, shift uint8) string {
	if shift == 0 {
		return fmt.Sprintf("%s %s, #%d", mnemonic, reg(dest, w), imm)
	}
	return fmt.Sprintf("%s %s, #%d, lsl #%d", mnemonic, reg(dest, w), imm, shift)
}
