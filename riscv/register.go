// Package riscv defines the typed register, width and instruction model
// for the RV64I source side of the translator.
package riscv

import "fmt"

// Register identifies one of the 32 RV64I architectural registers by its
// ABI role rather than its raw numeric index.
type Register int

const (
	Zero Register = iota // x0 — hardwired to zero
	RA                   // x1 — return address
	SP                   // x2 — stack pointer
	GP                   // x3 — global pointer
	TP                   // x4 — thread pointer
	T0                   // x5
	T1                   // x6
	T2                   // x7
	S0                   // x8 — frame pointer (s0/fp)
	S1                   // x9
	A0                   // x10
	A1                   // x11
	A2                   // x12
	A3                   // x13
	A4                   // x14
	A5                   // x15
	A6                   // x16
	A7                   // x17
	S2                   // x18
	S3                   // x19
	S4                   // x20
	S5                   // x21
	S6                   // x22
	S7                   // x23
	S8                   // x24
	S9                   // x25
	S10                  // x26
	S11                  // x27
	T3                   // x28
	T4                   // x29
	T5                   // x30
	T6                   // x31
)

var registerNames = map[Register]string{
	Zero: "zero", RA: "ra", SP: "sp", GP: "gp", TP: "tp",
	T0: "t0", T1: "t1", T2: "t2",
	S0: "s0", S1: "s1",
	A0: "a0", A1: "a1", A2: "a2", A3: "a3", A4: "a4", A5: "a5", A6: "a6", A7: "a7",
	S2: "s2", S3: "s3", S4: "s4", S5: "s5", S6: "s6", S7: "s7", S8: "s8", S9: "s9", S10: "s10", S11: "s11",
	T3: "t3", T4: "t4", T5: "t5", T6: "t6",
}

// names accepted while parsing. Both the ABI name and the numeric x<n>
// form are accepted, since real RISC-V assembly mixes both freely.
var namesToRegister = map[string]Register{}

func init() {
	for r, n := range registerNames {
		namesToRegister[n] = r
	}
	namesToRegister["x0"] = Zero
	for i := Register(0); i <= T6; i++ {
		namesToRegister[fmt.Sprintf("x%d", int(i))] = i
	}
	// s0 is conventionally also the frame pointer.
	namesToRegister["fp"] = S0
}

// String returns the canonical ABI name for r.
func (r Register) String() string {
	if n, ok := registerNames[r]; ok {
		return n
	}
	return fmt.Sprintf("x%d", int(r))
}

// IsZero reports whether r is the hardwired zero register.
func (r Register) IsZero() bool {
	return r == Zero
}

// ParseRegister resolves an ABI or numeric register name to a Register.
// It returns false if s does not name a valid RV64I register.
func ParseRegister(s string) (Register, bool) {
	r, ok := namesToRegister[s]
	return r, ok
}
