package expogo

import "math/bits"

// JumpX returns x after undoing a jump of length 2^bit in direction d.
//
// The search walks backward from the target toward the origin, so a West
// jump grows the remaining x and an East jump shrinks it.
func JumpX(bit int, x int64, d Direction) int64 {
	switch d {
	case West:
		return x + int64(1)<<bit
	case East:
		return x - int64(1)<<bit
	default:
		return x
	}
}

// JumpY returns y after undoing a jump of length 2^bit in direction d.
func JumpY(bit int, y int64, d Direction) int64 {
	switch d {
	case South:
		return y + int64(1)<<bit
	case North:
		return y - int64(1)<<bit
	default:
		return y
	}
}

// CanReach reports whether magnitude is at most 2^(bit+1)-1, the largest
// sum the jumps 2^0 through 2^bit can cover. At bit -1 no jumps remain and
// only zero passes.
func CanReach(bit int, magnitude int64) bool {
	if bit < -1 {
		return false
	}
	if bit >= 62 {
		return true
	}
	return magnitude <= int64(1)<<(bit+1)-1
}

// MostSignificantBit returns floor(log2(n)) for n > 0 and -1 otherwise.
func MostSignificantBit(n int64) int {
	if n <= 0 {
		return -1
	}
	return bits.Len64(uint64(n)) - 1
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
