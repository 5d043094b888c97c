package arm64

// Instruction is the closed tagged union of AArch64 target instructions
// this translator emits. Every variant here must have a canonical,
// unambiguous textual form in emitter.Emit; there is no "raw operand
// list" variant, by design — see the source union in riscv.Instruction
// for the same rationale.
type Instruction interface {
	arm64Instruction()
}

// MovReg is a register-to-register move (mov Rd, Rs).
type MovReg struct {
	Dest, Src Register
	Width     Width
}

// MovZ loads a 16-bit immediate into Dest at the given left shift,
// zeroing the rest of the register (movz Rd, #imm, lsl #shift).
type MovZ struct {
	Dest  Register
	Width Width
	Imm   uint16
	Shift uint8 // 0, 16, 32, or 48
}

// MovK merges a 16-bit immediate into Dest at the given left shift,
// leaving the rest of the register untouched (movk Rd, #imm, lsl #shift).
type MovK struct {
	Dest  Register
	Width Width
	Imm   uint16
	Shift uint8
}

// ArithReg is the three-register form of add/sub/mul/and/orr/eor/lsl/lsr/asr.
type ArithReg struct {
	Op               string
	Width            Width
	Dest, Src1, Src2 Register
}

// ArithImm is the register-immediate form of add/sub/and/orr/eor/lsl/lsr/
// asr (ARM64's add/sub require a non-negative immediate here; the
// translator's addi legalization is responsible for ensuring Imm is
// never negative by the time an add/sub reaches this type).
type ArithImm struct {
	Op    string // "add", "sub", "and", "orr", "eor", "lsl", "lsr", "asr"
	Width Width
	Dest  Register
	Src   Register
	Imm   uint64
}

// Sxtw is the explicit sign-extend-word instruction (sxtw Xd, Ws).
type Sxtw struct {
	Dest, Src Register
}

// MemOp is a load or store with [base, #offset] addressing.
type MemOp struct {
	Load   bool
	Width  Width
	Reg    Register
	Base   Register
	Offset int64
}

// Adrp loads the page address of Sym into Dest (adrp Xd, sym).
type Adrp struct {
	Dest Register
	Sym  string
}

// AddLo12 adds the low-12-bit offset of Sym to Src, storing into Dest
// (add Xd, Xs, :lo12:sym) — always paired with a preceding Adrp.
type AddLo12 struct {
	Dest, Src Register
	Sym       string
}

// Adr materializes a PC-relative address directly into Dest, used for
// auipc sequences that address a local label rather than a linker symbol.
type Adr struct {
	Dest  Register
	Label string
}

// Cmp compares two registers and sets flags (cmp Rs1, Rs2).
type Cmp struct {
	Width      Width
	Src1, Src2 Register
}

// B is an unconditional branch (b label).
type B struct {
	Label string
}

// BCond is a conditional branch on the flags set by a preceding Cmp
// (b.<cond> label).
type BCond struct {
	Cond  string // "eq", "ne", "lt", "ge", "lo", "hs", "le", "gt"
	Label string
}

// Bl is a branch-with-link, the call form (bl label).
type Bl struct {
	Label string
}

// Blr is an indirect branch-with-link through a register.
type Blr struct {
	Target Register
}

// Br is a plain indirect branch through a register, with no link save.
type Br struct {
	Target Register
}

// Ret returns via the link register (ret).
type Ret struct{}

// Svc is the supervisor call used for syscalls (svc #0).
type Svc struct{}

// Nop is the explicit no-operation instruction.
type Nop struct{}

func (MovReg) arm64Instruction()   {}
func (MovZ) arm64Instruction()     {}
func (MovK) arm64Instruction()     {}
func (ArithReg) arm64Instruction() {}
func (ArithImm) arm64Instruction() {}
func (Sxtw) arm64Instruction()     {}
func (MemOp) arm64Instruction()    {}
func (Adrp) arm64Instruction()     {}
func (AddLo12) arm64Instruction()  {}
func (Adr) arm64Instruction()      {}
func (Cmp) arm64Instruction()      {}
func (B) arm64Instruction()        {}
func (BCond) arm64Instruction()    {}
func (Bl) arm64Instruction()       {}
func (Blr) arm64Instruction()      {}
func (Br) arm64Instruction()       {}
func (Ret) arm64Instruction()      {}
func (Svc) arm64Instruction()      {}
func (Nop) arm64Instruction()      {}
