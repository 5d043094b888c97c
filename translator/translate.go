// Package translator rewrites a riscv.Program into a semantically
// equivalent arm64.Program: the algorithmic core of the translation
// engine, dispatched per-opcode via a Go type switch in the same spirit
// as the teacher's mnemonic switch in assembler.Assembler.generateInstructionCode.
package translator

import (
	"rv2arm/arm64"
	"rv2arm/riscv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Translate converts a parsed RISC-V program into its ARM64 equivalent.
// Translation is local and one-pass: each source instruction maps to
// zero, one, or several target instructions with no cross-instruction
// optimization, per spec.md §9. Any error aborts the whole translation;
// there is no partial output.
func Translate(prog *riscv.Program) (*arm64.Program, error) {
	if err := checkLabelsDefined(prog); err != nil {
		return nil, err
	}

	out := &arm64.Program{}
	nodes := prog.Nodes
	for i := 0; i < len(nodes); i++ {
		n := nodes[i]
		switch n.Kind {
		case riscv.NodeLabel:
			out.Nodes = append(out.Nodes, arm64.Node{Kind: arm64.NodeLabel, Label: n.Label})
			continue
		case riscv.NodeDirective:
			out.Nodes = append(out.Nodes, arm64.Node{
				Kind:      arm64.NodeDirective,
				Directive: arm64.Directive{Name: n.Directive.Name, Args: n.Directive.Args},
			})
			continue
		}

		if lui, ok := n.Instruction.(riscv.Lui); ok && lui.Sym != "" {
			fused, consumed, err := fuseHiLo(lui, nodes, i)
			if err != nil {
				return nil, errors.Wrap(err, "translate")
			}
			out.Nodes = append(out.Nodes, instructionNodes(fused)...)
			i += consumed - 1
			continue
		}

		if auipc, ok := n.Instruction.(riscv.Auipc); ok && auipc.Sym != "" {
			if fused, consumed, matched := fuseAuipcLo(auipc, nodes, i); matched {
				out.Nodes = append(out.Nodes, instructionNodes(fused)...)
				i += consumed - 1
				continue
			}
		}

		insts, err := translateInstruction(n)
		if err != nil {
			if te, ok := err.(*TranslateError); ok && te.Line == 0 {
				te.Line = n.Line
			}
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		out.Nodes = append(out.Nodes, instructionNodes(insts)...)
	}

	return out, nil
}

// instructionNodes wraps a slice of target instructions as Program
// nodes, using samber/lo the way
// other_examples/ajroetker-goat__arm64_parser.go uses it for the same
// kind of operand/instruction-list bookkeeping.
func instructionNodes(insts []arm64.Instruction) []arm64.Node {
	return lo.Map(insts, func(inst arm64.Instruction, _ int) arm64.Node {
		return arm64.Node{Kind: arm64.NodeInstruction, Instruction: inst}
	})
}

// translateInstruction dispatches a single riscv.Node's instruction
// payload to its per-opcode rule. This is the type-switch analogue of
// the teacher's string-mnemonic switch.
func translateInstruction(n riscv.Node) ([]arm64.Instruction, error) {
	switch inst := n.Instruction.(type) {
	case riscv.RegOp:
		return translateRegOp(inst)
	case riscv.ImmOp:
		return translateImmOp(inst)
	case riscv.Mv:
		return translateMv(inst), nil
	case riscv.Li:
		return translateLi(inst), nil
	case riscv.Lui:
		return translateLuiImmediate(inst), nil
	case riscv.Auipc:
		return translateAuipc(inst)
	case riscv.SextW:
		return translateSextW(inst), nil
	case riscv.MemOp:
		return translateMemOp(inst), nil
	case riscv.Jal:
		return translateJal(inst)
	case riscv.Jalr:
		return translateJalr(inst)
	case riscv.J:
		return translateJ(inst), nil
	case riscv.Ret:
		return translateRet(inst), nil
	case riscv.Call:
		return translateCall(inst), nil
	case riscv.Branch:
		return translateBranch(inst)
	case riscv.ECall:
		return translateEcall(inst), nil
	case riscv.Nop:
		return translateNop(inst), nil
	default:
		return nil, &TranslateError{Line: n.Line, Kind: UnmappableOperand, Detail: "no translation rule for this instruction variant"}
	}
}

// checkLabelsDefined validates that every label a branch or jump
// references is defined somewhere in the program, per the invariant in
// spec.md §3.
func checkLabelsDefined(prog *riscv.Program) error {
	defined := map[string]bool{}
	for _, n := range prog.Nodes {
		if n.Kind == riscv.NodeLabel {
			defined[n.Label] = true
		}
	}

	for _, n := range prog.Nodes {
		if n.Kind != riscv.NodeInstruction {
			continue
		}
		var label string
		switch inst := n.Instruction.(type) {
		case riscv.J:
			label = inst.Label
		case riscv.Jal:
			label = inst.Label
		case riscv.Call:
			label = inst.Label
		case riscv.Branch:
			label = inst.Label
		default:
			continue
		}
		if !defined[label] {
			return &TranslateError{Line: n.Line, Kind: UndefinedLabel, Detail: label}
		}
	}
	return nil
}
