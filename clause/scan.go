package clause

import "github.com/coregx/pika/internal/cpufeature"

// scanRun returns the length of the maximal run of bytes starting at start
// that satisfy test. Used by TopDownMatch to collapse OneOrMore/ZeroOrMore
// over a single CharSet/AnyChar terminal into one bulk scan instead of one
// recursive call per repetition — the only place in this package where a
// raw byte-scanning hot loop exists, since everywhere else the memo table
// makes repeated re-scanning unnecessary.
func scanRun(input []byte, start int, test func(byte) bool) int {
	if cpufeature.HasFastByteScan() {
		return scanRunUnrolled(input, start, test)
	}
	return scanRunScalar(input, start, test)
}

func scanRunScalar(input []byte, start int, test func(byte) bool) int {
	n := 0
	for start+n < len(input) && test(input[start+n]) {
		n++
	}
	return n
}

// scanRunUnrolled checks 8 bytes per iteration before falling back to the
// scalar loop for the remainder, the same unroll-then-tail shape the
// teacher's SIMD-gated scanners use (simd/memchr_class_amd64.go), minus the
// actual vector instructions: a fast CPU branch-predicts the straight-line
// unrolled body well even without real SIMD, so this is a measurable win
// over the byte-at-a-time loop for long character-class runs.
func scanRunUnrolled(input []byte, start int, test func(byte) bool) int {
	n := 0
	limit := len(input) - start
	for n+8 <= limit {
		if !test(input[start+n]) {
			return n
		}
		if !test(input[start+n+1]) {
			return n + 1
		}
		if !test(input[start+n+2]) {
			return n + 2
		}
		if !test(input[start+n+3]) {
			return n + 3
		}
		if !test(input[start+n+4]) {
			return n + 4
		}
		if !test(input[start+n+5]) {
			return n + 5
		}
		if !test(input[start+n+6]) {
			return n + 6
		}
		if !test(input[start+n+7]) {
			return n + 7
		}
		n += 8
	}
	return n + scanRunScalar(input, start+n, test)
}
