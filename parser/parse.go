// Package parser turns RISC-V assembly text into a riscv.Program.
package parser

import (
	"errors"
	"strings"

	"rv2arm/riscv"
)

// reservedLabels names ARM assembler symbols a RISC-V label must not
// collide with. Per SPEC_FULL.md §12(a), a collision is rejected rather
// than silently renamed.
var reservedLabels = map[string]bool{
	"lr": true, "sp": true, "pc": true, "xzr": true, "wzr": true,
}

// Parse converts RISC-V assembly text into a Program, or a joined set of
// ParseErrors (via errors.Join) naming every offending line found in one
// pass.
func Parse(src string) (*riscv.Program, error) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	prog := &riscv.Program{}
	var errs []error

	for i, raw := range lines {
		lineNo := i + 1
		line := stripComment(raw)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if label, rest, ok := splitLabel(line); ok {
			// Label names are case-sensitive, unlike RISC-V mnemonics
			// and directives: ".L" and ".l" are different symbols.
			// Only the reserved-name check ignores case, so "LR" is
			// rejected just as "lr" is.
			if reservedLabels[strings.ToLower(label)] {
				errs = append(errs, &ParseError{Line: lineNo, Text: label, Kind: ReservedLabel})
				continue
			}
			prog.Nodes = append(prog.Nodes, riscv.Node{Kind: riscv.NodeLabel, Label: label, Line: lineNo})
			line = strings.TrimSpace(rest)
			if line == "" {
				continue
			}
		}

		mnemonic, operandStr := splitMnemonic(line)

		if mnemonic == "la" {
			nodes, err := expandLa(operandStr, lineNo)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			prog.Nodes = append(prog.Nodes, nodes...)
			continue
		}

		if strings.HasPrefix(mnemonic, ".") {
			// Unknown directives are passed through verbatim, per
			// spec.md §4.1.
			name := strings.ToLower(strings.TrimPrefix(mnemonic, "."))
			var args []string
			if operandStr != "" {
				args = []string{operandStr}
			}
			prog.Nodes = append(prog.Nodes, riscv.Node{
				Kind:      riscv.NodeDirective,
				Directive: riscv.Directive{Name: name, Args: args},
				Line:      lineNo,
			})
			continue
		}

		var operands []string
		if operandStr != "" {
			operands = splitOperands(operandStr)
		}

		inst, err := parseInstruction(mnemonic, operands, lineNo)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		prog.Nodes = append(prog.Nodes, riscv.Node{Kind: riscv.NodeInstruction, Instruction: inst, Line: lineNo})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return prog, nil
}

// stripComment removes a trailing "# ..." comment, ignoring '#' inside a
// quoted string (the only construct where that matters is .string).
func stripComment(s string) string {
	inString := false
	for i, r := range s {
		switch r {
		case '"':
			inString = !inString
		case '#':
			if !inString {
				return s[:i]
			}
		}
	}
	return s
}

// splitLabel recognizes a leading "name:" label anchor on a line,
// returning the remainder of the line (which may hold an instruction on
// the same line as its label).
func splitLabel(line string) (label, rest string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx == -1 {
		return "", "", false
	}
	candidate := strings.TrimSpace(line[:idx])
	if candidate == "" || strings.ContainsAny(candidate, " \t") {
		return "", "", false
	}
	return candidate, line[idx+1:], true
}

// splitMnemonic separates the leading mnemonic/directive token from its
// operand list.
func splitMnemonic(line string) (mnemonic, operands string) {
	i := strings.IndexAny(line, " \t")
	if i == -1 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:i]), strings.TrimSpace(line[i:])
}

// parseInstruction dispatches a mnemonic to its operand-shape parser.
// Mirrors the teacher's string-mnemonic switch in assembler.go, adapted
// from M68k's dot-suffix sizing to RV64I's opcode-suffix width tags.
func parseInstruction(mnemonic string, ops []string, line int) (riscv.Instruction, error) {
	switch mnemonic {
	case "add", "addw", "sub", "subw", "mul", "mulw", "and", "or", "xor",
		"sll", "sllw", "srl", "srlw", "sra", "sraw":
		return parseRegOp(mnemonic, ops, line)
	case "addi", "addiw", "andi", "ori", "xori", "slli", "slliw", "srli", "srliw", "srai", "sraiw":
		return parseImmOp(mnemonic, ops, line)
	case "mv":
		return parseMv(ops, line)
	case "li":
		return parseLi(ops, line)
	case "lui":
		return parseLui(ops, line)
	case "auipc":
		return parseAuipc(ops, line)
	case "sext.w":
		return parseSextW(ops, line)
	case "ld", "lw", "sd", "sw":
		return parseMem(mnemonic, ops, line)
	case "jal":
		return parseJal(ops, line)
	case "jalr":
		return parseJalr(ops, line)
	case "jr":
		return parseJr(ops, line)
	case "j":
		return parseJ(ops, line)
	case "ret":
		return parseRet(ops, line)
	case "call":
		return parseCall(ops, line)
	case "beq", "bne", "blt", "bge", "bltu", "bgeu", "ble", "bgt":
		return parseBranch(mnemonic, ops, line)
	case "beqz", "bnez", "blez", "bgez", "bltz", "bgtz":
		return parseZeroBranch(mnemonic, ops, line)
	case "ecall":
		return parseEcall(ops, line)
	case "nop":
		return parseNop(ops, line)
	default:
		return nil, &ParseError{Line: line, Text: mnemonic, Kind: UnsupportedInstruction}
	}
}

func splitWidthSuffix(mnemonic, base string) riscv.Width {
	if mnemonic == base+"w" {
		return riscv.Word
	}
	return riscv.Double
}

func parseRegOp(mnemonic string, ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 3 {
		return nil, wrongOperandCount(line, mnemonic, 3, len(ops))
	}
	dest, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	src1, err := parseRegister(ops[1], line)
	if err != nil {
		return nil, err
	}
	src2, err := parseRegister(ops[2], line)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(mnemonic, "w")
	return riscv.RegOp{Op: base, Width: splitWidthSuffix(mnemonic, base), Dest: dest, Src1: src1, Src2: src2}, nil
}

func parseImmOp(mnemonic string, ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 3 {
		return nil, wrongOperandCount(line, mnemonic, 3, len(ops))
	}
	dest, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	src, err := parseRegister(ops[1], line)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(mnemonic, "w")
	width := splitWidthSuffix(mnemonic, base)
	if hl, ok := tryParseHiLo(ops[2]); ok {
		if hl.IsHi {
			return nil, &ParseError{Line: line, Text: ops[2], Kind: BadOperand, Detail: base + " expects %lo(), not %hi()"}
		}
		return riscv.ImmOp{Op: base, Width: width, Dest: dest, Src: src, Sym: hl.Symbol}, nil
	}
	imm, err := parseImmediate(ops[2], line)
	if err != nil {
		return nil, err
	}
	switch base {
	case "addi", "andi", "ori", "xori":
		if err := checkSignedRange(12, imm, line, ops[2]); err != nil {
			return nil, err
		}
	case "slli", "srli", "srai":
		bits := 6
		if width == riscv.Word {
			bits = 5
		}
		if err := checkUnsignedRange(bits, imm, line, ops[2]); err != nil {
			return nil, err
		}
	}
	return riscv.ImmOp{Op: base, Width: width, Dest: dest, Src: src, Imm: imm}, nil
}

func parseMv(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 2 {
		return nil, wrongOperandCount(line, "mv", 2, len(ops))
	}
	dest, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	src, err := parseRegister(ops[1], line)
	if err != nil {
		return nil, err
	}
	return riscv.Mv{Dest: dest, Src: src}, nil
}

func parseLi(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 2 {
		return nil, wrongOperandCount(line, "li", 2, len(ops))
	}
	dest, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	imm, err := parseImmediate(ops[1], line)
	if err != nil {
		return nil, err
	}
	return riscv.Li{Dest: dest, Imm: imm}, nil
}

func parseLui(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 2 {
		return nil, wrongOperandCount(line, "lui", 2, len(ops))
	}
	dest, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	if hl, ok := tryParseHiLo(ops[1]); ok {
		if !hl.IsHi {
			return nil, &ParseError{Line: line, Text: ops[1], Kind: BadOperand, Detail: "lui expects %hi(), not %lo()"}
		}
		return riscv.Lui{Dest: dest, Sym: hl.Symbol}, nil
	}
	imm, err := parseImmediate(ops[1], line)
	if err != nil {
		return nil, err
	}
	if err := checkUnsignedRange(20, imm, line, ops[1]); err != nil {
		return nil, err
	}
	return riscv.Lui{Dest: dest, Imm: imm}, nil
}

func parseAuipc(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 2 {
		return nil, wrongOperandCount(line, "auipc", 2, len(ops))
	}
	dest, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	if hl, ok := tryParseHiLo(ops[1]); ok {
		return riscv.Auipc{Dest: dest, Sym: hl.Symbol}, nil
	}
	imm, err := parseImmediate(ops[1], line)
	if err != nil {
		return nil, err
	}
	if err := checkUnsignedRange(20, imm, line, ops[1]); err != nil {
		return nil, err
	}
	return riscv.Auipc{Dest: dest, Imm: imm}, nil
}

func parseSextW(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 2 {
		return nil, wrongOperandCount(line, "sext.w", 2, len(ops))
	}
	dest, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	src, err := parseRegister(ops[1], line)
	if err != nil {
		return nil, err
	}
	return riscv.SextW{Dest: dest, Src: src}, nil
}

func parseMem(mnemonic string, ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 2 {
		return nil, wrongOperandCount(line, mnemonic, 2, len(ops))
	}
	reg, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	mem, err := parseMemOperand(ops[1], line)
	if err != nil {
		return nil, err
	}
	width := riscv.Double
	if mnemonic == "lw" || mnemonic == "sw" {
		width = riscv.Word
	}
	load := mnemonic == "ld" || mnemonic == "lw"
	return riscv.MemOp{Load: load, Width: width, Reg: reg, Base: mem.Base, Offset: mem.Offset}, nil
}

func parseJal(ops []string, line int) (riscv.Instruction, error) {
	switch len(ops) {
	case 1:
		label, err := parseLabelOperand(ops[0], line)
		if err != nil {
			return nil, err
		}
		return riscv.Jal{Dest: riscv.RA, Label: label}, nil
	case 2:
		dest, err := parseRegister(ops[0], line)
		if err != nil {
			return nil, err
		}
		label, err := parseLabelOperand(ops[1], line)
		if err != nil {
			return nil, err
		}
		return riscv.Jal{Dest: dest, Label: label}, nil
	default:
		return nil, wrongOperandCount(line, "jal", 2, len(ops))
	}
}

func parseJalr(ops []string, line int) (riscv.Instruction, error) {
	switch len(ops) {
	case 1:
		base, err := parseRegister(ops[0], line)
		if err != nil {
			return nil, err
		}
		return riscv.Jalr{Dest: riscv.RA, Base: base, Imm: 0}, nil
	case 3:
		dest, err := parseRegister(ops[0], line)
		if err != nil {
			return nil, err
		}
		base, err := parseRegister(ops[1], line)
		if err != nil {
			return nil, err
		}
		imm, err := parseImmediate(ops[2], line)
		if err != nil {
			return nil, err
		}
		if err := checkSignedRange(12, imm, line, ops[2]); err != nil {
			return nil, err
		}
		return riscv.Jalr{Dest: dest, Base: base, Imm: imm}, nil
	default:
		return nil, wrongOperandCount(line, "jalr", 3, len(ops))
	}
}

func parseJr(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 1 {
		return nil, wrongOperandCount(line, "jr", 1, len(ops))
	}
	base, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	return riscv.Jalr{Dest: riscv.Zero, Base: base, Imm: 0}, nil
}

func parseJ(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 1 {
		return nil, wrongOperandCount(line, "j", 1, len(ops))
	}
	label, err := parseLabelOperand(ops[0], line)
	if err != nil {
		return nil, err
	}
	return riscv.J{Label: label}, nil
}

func parseRet(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 0 {
		return nil, wrongOperandCount(line, "ret", 0, len(ops))
	}
	return riscv.Ret{}, nil
}

func parseCall(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 1 {
		return nil, wrongOperandCount(line, "call", 1, len(ops))
	}
	label, err := parseLabelOperand(ops[0], line)
	if err != nil {
		return nil, err
	}
	return riscv.Call{Label: label}, nil
}

func parseBranch(mnemonic string, ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 3 {
		return nil, wrongOperandCount(line, mnemonic, 3, len(ops))
	}
	src1, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	src2, err := parseRegister(ops[1], line)
	if err != nil {
		return nil, err
	}
	label, err := parseLabelOperand(ops[2], line)
	if err != nil {
		return nil, err
	}
	return riscv.Branch{Cond: mnemonic, Src1: src1, Src2: src2, Label: label}, nil
}

// zeroBranchCond maps a zero-comparison branch pseudo-form to its
// two-register base form, per the rewrite original_source/src/parser.rs
// applies to blez (and, by the same pattern, its siblings): the pseudo
// mnemonic drops one operand and the missing comparand is always x0.
var zeroBranchCond = map[string]string{
	"beqz": "beq", "bnez": "bne",
	"blez": "ble", "bgez": "bge",
	"bltz": "blt", "bgtz": "bgt",
}

func parseZeroBranch(mnemonic string, ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 2 {
		return nil, wrongOperandCount(line, mnemonic, 2, len(ops))
	}
	src1, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	label, err := parseLabelOperand(ops[1], line)
	if err != nil {
		return nil, err
	}
	return riscv.Branch{Cond: zeroBranchCond[mnemonic], Src1: src1, Src2: riscv.Zero, Label: label}, nil
}

func parseEcall(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 0 {
		return nil, wrongOperandCount(line, "ecall", 0, len(ops))
	}
	return riscv.ECall{}, nil
}

func parseNop(ops []string, line int) (riscv.Instruction, error) {
	if len(ops) != 0 {
		return nil, wrongOperandCount(line, "nop", 0, len(ops))
	}
	return riscv.Nop{}, nil
}

// expandLa normalizes "la rd, sym" into the same lui/addi %hi/%lo idiom
// the translator already recognizes as a unit, per SPEC_FULL.md §4 — la
// is assembler shorthand for exactly that two-instruction pair.
func expandLa(operandStr string, line int) ([]riscv.Node, error) {
	ops := splitOperands(operandStr)
	if len(ops) != 2 {
		return nil, wrongOperandCount(line, "la", 2, len(ops))
	}
	dest, err := parseRegister(ops[0], line)
	if err != nil {
		return nil, err
	}
	sym, err := parseLabelOperand(ops[1], line)
	if err != nil {
		return nil, err
	}
	return []riscv.Node{
		{Kind: riscv.NodeInstruction, Line: line, Instruction: riscv.Lui{Dest: dest, Sym: sym}},
		{Kind: riscv.NodeInstruction, Line: line, Instruction: riscv.ImmOp{Op: "addi", Width: riscv.Double, Dest: dest, Src: dest, Sym: sym}},
	}, nil
}
