// Package cpufeature reports which CPU features are available for the
// bulk character-class scan used by top-down lex-mode terminal matching
// (clause.TopDownMatch's run-length scan over CharSet/AnyChar terminals).
//
// This mirrors the dispatch-by-feature shape of the teacher's
// simd/memchr_class_amd64.go without porting its assembly: the pika driver
// is memo-lookup-bound almost everywhere, and the one place a raw byte scan
// matters is the lex-clause bulk scan, where an 8-byte-unrolled loop is
// enough to earn its keep on capable hardware. See DESIGN.md for the scope
// cut.
package cpufeature

import "golang.org/x/sys/cpu"

// HasFastByteScan reports whether the unrolled scan path should be used for
// bulk CharSet/AnyChar runs. On amd64 with SSE4.1 (present on
// essentially every x86-64 chip since ~2008) the unrolled path is used; on
// every other platform cpu.X86's feature fields read as false and the
// portable byte-at-a-time scan is used instead.
func HasFastByteScan() bool {
	return cpu.X86.HasSSE41
}
