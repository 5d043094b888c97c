package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"rv2arm/riscv"
)

var (
	reMemOperand = regexp.MustCompile(`^(-?(?:0[xX][0-9a-fA-F]+|\d+))\(([a-zA-Z0-9]+)\)$`)
	reHi         = regexp.MustCompile(`^%hi\(([a-zA-Z_.][a-zA-Z0-9_.]*)\)$`)
	reLo         = regexp.MustCompile(`^%lo\(([a-zA-Z_.][a-zA-Z0-9_.]*)\)$`)
	rePcrelHi    = regexp.MustCompile(`^%pcrel_hi\(([a-zA-Z_.][a-zA-Z0-9_.]*)\)$`)
	rePcrelLo    = regexp.MustCompile(`^%pcrel_lo\(([a-zA-Z_.][a-zA-Z0-9_.]*)\)$`)
	reLabelName  = regexp.MustCompile(`^[a-zA-Z_.][a-zA-Z0-9_.]*$`)
)

// parseRegister resolves an operand string naming a register, returning
// a *ParseError describing why it isn't one.
func parseRegister(s string, line int) (riscv.Register, error) {
	s = strings.TrimSpace(s)
	r, ok := riscv.ParseRegister(s)
	if !ok {
		return 0, &ParseError{Line: line, Text: s, Kind: UndefinedRegister}
	}
	return r, nil
}

// parseImmediate parses a decimal or 0x-prefixed hex signed integer
// literal into an int64, with no range check of its own — every caller
// that carries a fixed-width RV64I encoding field (addi/andi/ori/xori,
// shift amounts, lui/auipc, jalr, load/store offsets) checks the result
// against that field's width itself via checkSignedRange/
// checkUnsignedRange. li's operand is the one exception: it is a
// pseudo-instruction with no RV64I field of its own, so any int64 value
// is accepted.
func parseImmediate(s string, line int) (int64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, &ParseError{Line: line, Text: s, Kind: BadOperand, Detail: "not an integer immediate"}
	}
	return v, nil
}

// checkSignedRange rejects a literal immediate that cannot fit the named
// bit-width signed field of its RV64I encoding (e.g. the 12-bit I-type
// immediate addi/andi/ori/xori/jalr/loads and stores all share).
func checkSignedRange(bits int, v int64, line int, text string) error {
	limit := int64(1) << (bits - 1)
	if v < -limit || v >= limit {
		return &ParseError{Line: line, Text: text, Kind: ImmediateOutOfRange, Detail: fmt.Sprintf("immediate must fit in a %d-bit signed field", bits)}
	}
	return nil
}

// checkUnsignedRange rejects a literal immediate that cannot fit the
// named bit-width unsigned field of its RV64I encoding (e.g. lui/auipc's
// 20-bit field, or a shift amount's 5/6-bit field).
func checkUnsignedRange(bits int, v int64, line int, text string) error {
	limit := int64(1) << bits
	if v < 0 || v >= limit {
		return &ParseError{Line: line, Text: text, Kind: ImmediateOutOfRange, Detail: fmt.Sprintf("immediate must fit in a %d-bit unsigned field", bits)}
	}
	return nil
}

// memOperand is the decoded form of a RISC-V imm(reg) memory operand.
type memOperand struct {
	Offset int64
	Base   riscv.Register
}

// parseMemOperand parses "imm(reg)", e.g. "-24(s0)" or "0(sp)".
func parseMemOperand(s string, line int) (memOperand, error) {
	s = strings.TrimSpace(s)
	m := reMemOperand.FindStringSubmatch(s)
	if m == nil {
		return memOperand{}, &ParseError{Line: line, Text: s, Kind: BadOperand, Detail: "expected imm(reg)"}
	}
	off, err := parseImmediate(m[1], line)
	if err != nil {
		return memOperand{}, err
	}
	if err := checkSignedRange(12, off, line, m[1]); err != nil {
		return memOperand{}, err
	}
	base, err := parseRegister(m[2], line)
	if err != nil {
		return memOperand{}, err
	}
	return memOperand{Offset: off, Base: base}, nil
}

// hiLoOperand is the decoded form of a %hi(sym) or %lo(sym) relocation
// operand, used by lui/addi symbol-address idioms.
type hiLoOperand struct {
	Symbol string
	IsHi   bool
}

// tryParseHiLo recognizes %hi(sym) / %lo(sym) (the lui/addi absolute-
// address idiom) and %pcrel_hi(sym) / %pcrel_lo(sym) (the auipc/addi
// PC-relative idiom real compiler output also emits, per
// _examples/xyproto-vibe67/lea.go:117); ok is false (with no error) if s
// isn't one of those forms at all.
func tryParseHiLo(s string) (hiLoOperand, bool) {
	s = strings.TrimSpace(s)
	if m := reHi.FindStringSubmatch(s); m != nil {
		return hiLoOperand{Symbol: m[1], IsHi: true}, true
	}
	if m := rePcrelHi.FindStringSubmatch(s); m != nil {
		return hiLoOperand{Symbol: m[1], IsHi: true}, true
	}
	if m := reLo.FindStringSubmatch(s); m != nil {
		return hiLoOperand{Symbol: m[1], IsHi: false}, true
	}
	if m := rePcrelLo.FindStringSubmatch(s); m != nil {
		return hiLoOperand{Symbol: m[1], IsHi: false}, true
	}
	return hiLoOperand{}, false
}

// parseLabelOperand validates a bare label reference, e.g. a branch
// target or a call symbol.
func parseLabelOperand(s string, line int) (string, error) {
	s = strings.TrimSpace(s)
	if !reLabelName.MatchString(s) {
		return "", &ParseError{Line: line, Text: s, Kind: BadOperand, Detail: "expected a label name"}
	}
	return s, nil
}

// parenDepthAfter returns the paren nesting depth reached after scanning
// s[:i], counting '(' as +1 and ')' as -1 from a depth-0 start. RV64I
// operand lists never nest parens more than one level deep ("off(reg)"),
// but this walks the whole prefix rather than assuming that.
func parenDepthAfter(s string, i int) int {
	depth := 0
	for _, r := range s[:i] {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth
}

// topLevelCommas returns the byte offsets of every comma in s that sits
// outside any parens, i.e. the offsets splitOperands should cut on.
func topLevelCommas(s string) []int {
	var at []int
	for i, r := range s {
		if r == ',' && parenDepthAfter(s, i) == 0 {
			at = append(at, i)
		}
	}
	return at
}

// splitOperands splits a comma-separated operand list on only its
// top-level commas, so "off(reg)" is never split on a comma that doesn't
// exist inside it.
func splitOperands(s string) []string {
	cuts := topLevelCommas(s)
	out := make([]string, 0, len(cuts)+1)
	start := 0
	for _, at := range cuts {
		out = append(out, strings.TrimSpace(s[start:at]))
		start = at + 1
	}
	out = append(out, strings.TrimSpace(s[start:]))
	return out
}

func wrongOperandCount(line int, text string, want, got int) error {
	return &ParseError{Line: line, Text: text, Kind: BadOperand, Detail: fmt.Sprintf("expected %d operands, got %d", want, got)}
}
