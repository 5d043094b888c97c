// Package arm64 defines the typed register, width and instruction model
// for the AArch64 target side of the translator.
package arm64

import "fmt"

// Register identifies one of the 31 general-purpose AArch64 registers,
// plus the stack pointer and the zero register. Width (x/w) is a
// separate orthogonal field — see Width — so a Register value names a
// physical register slot independent of how wide a view is taken of it.
type Register int

const (
	X0 Register = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29 // frame pointer by convention
	X30 // link register
	SP
	ZR // xzr / wzr depending on Width
)

var registerNames = map[Register]string{
	X0: "x0", X1: "x1", X2: "x2", X3: "x3", X4: "x4", X5: "x5", X6: "x6", X7: "x7",
	X8: "x8", X9: "x9", X10: "x10", X11: "x11", X12: "x12", X13: "x13", X14: "x14", X15: "x15",
	X16: "x16", X17: "x17", X18: "x18", X19: "x19", X20: "x20", X21: "x21", X22: "x22", X23: "x23",
	X24: "x24", X25: "x25", X26: "x26", X27: "x27", X28: "x28", X29: "x29", X30: "x30",
	SP: "sp", ZR: "xzr",
}

// Name returns the canonical textual form of r at the given width, e.g.
// Name(X0, Word) == "w0", Name(ZR, Double) == "xzr", Name(ZR, Word) == "wzr".
func Name(r Register, w Width) string {
	if r == ZR {
		if w == Word {
			return "wzr"
		}
		return "xzr"
	}
	if r == SP {
		// sp has no w-prefixed form in the instructions this translator
		// emits; callers needing the 32-bit stack-pointer view (none do)
		// would need wsp, which is intentionally unsupported.
		return "sp"
	}
	n := registerNames[r]
	if w == Word {
		return "w" + n[1:]
	}
	return n
}

func (r Register) String() string {
	if n, ok := registerNames[r]; ok {
		return n
	}
	return fmt.Sprintf("x%d", int(r))
}
