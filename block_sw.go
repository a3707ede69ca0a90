package aesctr

// shiftRowsPerm is the ShiftRows permutation for a column-major 4x4 state
// stored as a flat 16-byte array (state[4*col+row]): out[i] = state[shiftRowsPerm[i]].
// Row r is rotated left by r columns; derived directly from that rule.
var shiftRowsPerm = [16]int{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}

func subBytes(state *[16]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

func shiftRows(state *[16]byte) {
	var out [16]byte
	for i, src := range shiftRowsPerm {
		out[i] = state[src]
	}
	*state = out
}

// xtime multiplies a GF(2^8) element by x (i.e. by 2), reducing modulo the
// AES polynomial x^8+x^4+x^3+x+1 when the top bit would overflow.
func xtime(b byte) byte {
	hi := b & 0x80
	b <<= 1
	if hi != 0 {
		b ^= 0x1b
	}
	return b
}

// gmul multiplies two GF(2^8) elements.
func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

func mixColumns(state *[16]byte) {
	for c := 0; c < 4; c++ {
		i := 4 * c
		a0, a1, a2, a3 := state[i], state[i+1], state[i+2], state[i+3]
		state[i] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		state[i+1] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		state[i+2] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		state[i+3] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

func addRoundKey(state *[16]byte, rk [16]byte) {
	for i := range state {
		state[i] ^= rk[i]
	}
}

// cipherSoftware runs the full AES-128 forward cipher over one 16-byte
// block using the given schedule, entirely in Go with no hardware
// dependency. Grounded on the standard FIPS-197 round structure, with the
// S-box table approach generalized from SnellerInc-sneller's
// internal/aes/aes_generic.go (which only needed key expansion, not the
// full cipher).
func cipherSoftware(block [16]byte, sched *Schedule) [16]byte {
	state := block
	addRoundKey(&state, sched[0])

	for round := 1; round < ScheduleRounds-1; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, sched[round])
	}

	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, sched[ScheduleRounds-1])

	return state
}
