package arm64

// NodeKind identifies which of the three Program element shapes a Node
// holds, mirroring riscv.NodeKind on the target side.
type NodeKind int

const (
	NodeLabel NodeKind = iota
	NodeDirective
	NodeInstruction
)

// Directive is a passthrough assembler directive, carried unchanged from
// the source program; the translator adds none of its own.
type Directive struct {
	Name string
	Args []string
}

// Node is one element of a Program: a label anchor, a directive, or a
// translated instruction.
type Node struct {
	Kind        NodeKind
	Label       string
	Directive   Directive
	Instruction Instruction
}

// Program is the ordered sequence the translator produces and the
// emitter consumes.
type Program struct {
	Nodes []Node
}

// Labels returns the set of label names defined in p, in order of first
// appearance. Mirrors riscv.Program.Labels on the target side, so a
// caller can compare the two to check that translation preserved every
// label name and its relative order.
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
