package riscv

// NodeKind identifies which of the three Program element shapes a Node
// holds. Mirrors the split the teacher's assembler.NodeType makes
// between labels, directives and instructions.
type NodeKind int

const (
	NodeLabel NodeKind = iota
	NodeDirective
	NodeInstruction
)

// Directive is a passthrough assembler directive (.text, .globl, .string,
// unrecognized .-prefixed lines the parser doesn't need to interpret).
type Directive struct {
	Name string
	Args []string
}

// Node is one element of a Program: a label anchor, a directive, or a
// parsed instruction. Exactly one of the payload fields is meaningful,
// selected by Kind.
type Node struct {
	Kind        NodeKind
	Label       string
	Directive   Directive
	Instruction Instruction
	Line        int // 1-based source line, for diagnostics
}

// Program is the ordered sequence the parser produces and the translator
// consumes. Order is significant and preserved end to end.
type Program struct {
	Nodes []Node
}

// Labels returns the set of label names defined in p, in order of first
// appearance.
func (p *Program) Labels() []string {
	var out []string
	seen := map[string]bool{}
	for _, n := range p.Nodes {
		if n.Kind == NodeLabel && !seen[n.Label] {
			seen[n.Label] = true
			out = append(out, n.Label)
		}
	}
	return out
}
