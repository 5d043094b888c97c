package translator

import "rv2arm/arm64"

// legalizeImmediate expands a 64-bit (or 32-bit, width-dependent)
// immediate into a movz followed by zero or more movk instructions,
// splitting into 16-bit chunks from least to most significant and
// skipping interior all-zero chunks. This is the canonical choice for
// SPEC_FULL.md §12(b), ported from the movz/movk chunking algorithm in
// other_examples/MJDaws0n-Novus__emit_arm64.go's loadImm.
//
// A Word-width destination only has two 16-bit chunks; Double has four.
func legalizeImmediate(dest arm64.Register, width arm64.Width, value int64) []arm64.Instruction {
	chunkCount := 4
	if width == arm64.Word {
		chunkCount = 2
	}

	var u uint64
	if width == arm64.Word {
		u = uint64(uint32(value))
	} else {
		u = uint64(value)
	}

	chunks := make([]uint16, chunkCount)
	for i := 0; i < chunkCount; i++ {
		chunks[i] = uint16(u >> (16 * i))
	}

	if allZero(chunks) {
		return []arm64.Instruction{arm64.MovZ{Dest: dest, Width: width, Imm: 0, Shift: 0}}
	}

	var out []arm64.Instruction
	first := true
	for i, c := range chunks {
		if c == 0 && !first {
			continue
		}
		shift := uint8(16 * i)
		if first {
			out = append(out, arm64.MovZ{Dest: dest, Width: width, Imm: c, Shift: shift})
			first = false
			continue
		}
		out = append(out, arm64.MovK{Dest: dest, Width: width, Imm: c, Shift: shift})
	}
	return out
}

func allZero(chunks []uint16) bool {
	for _, c := range chunks {
		if c != 0 {
			return false
		}
	}
	return true
}
