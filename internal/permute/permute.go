// Package permute implements block moves over ordered sequences.
//
// A block move relocates count contiguous elements starting at start so that
// the block begins at dest. The relative order inside the block and of every
// other element is preserved. The move is described by two index arrays:
//
//	order[newPos] = oldIndex   (the reassembled sequence, "tpermuter")
//	perm[oldIndex] = newPos    (its inverse, "permuter")
//
// Everything that has to follow the moved elements (rows, cells, overlay
// entries) is remapped through the same arrays.
package permute

// Plan returns the reassembly order for moving the block [start, start+count)
// of an n-element sequence to begin at dest.
//
// The sequence is cut into four runs and reassembled as run1+run3+run2+run4.
// Moving earlier (dest < start) the runs are [0,dest) [dest,start)
// [start,end] [end+1,n); otherwise they are [0,start) [start,end]
// [end+1,end+1+dest-start) [end+1+dest-start,n). Run bounds are clamped into
// [0,n] so an oversized request degrades like a slice expression rather than
// panicking. dest itself is not validated.
func Plan(n, start, count, dest int) []int {
	end := start + count - 1

	var r1, r2, r3, r4 [2]int
	if dest < start {
		r1 = [2]int{0, dest}
		r2 = [2]int{dest, start}
		r3 = [2]int{start, end + 1}
		r4 = [2]int{end + 1, n}
	} else {
		r1 = [2]int{0, start}
		r2 = [2]int{start, end + 1}
		r3 = [2]int{end + 1, end + 1 + dest - start}
		r4 = [2]int{end + 1 + dest - start, n}
	}

	order := make([]int, 0, n)
	for _, r := range [][2]int{r1, r3, r2, r4} {
		lo, hi := clamp(r[0], n), clamp(r[1], n)
		for i := lo; i < hi; i++ {
			order = append(order, i)
		}
	}
	return order
}

// Invert turns a reassembly order into the old-to-new permuter.
// Positions that the order never mentions map to -1.
func Invert(order []int) []int {
	n := len(order)
	for _, o := range order {
		if o+1 > n {
			n = o + 1
		}
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = -1
	}
	for newPos, old := range order {
		if old >= 0 {
			perm[old] = newPos
		}
	}
	return perm
}

// Apply returns a new slice holding s reassembled according to order.
func Apply[T any](s []T, order []int) []T {
	out := make([]T, 0, len(order))
	for _, old := range order {
		if old >= 0 && old < len(s) {
			out = append(out, s[old])
		}
	}
	return out
}

// BlockMove moves [start, start+count) of s so that it begins at dest.
// It returns the reassembled copy and the old-to-new permuter.
func BlockMove[T any](s []T, start, count, dest int) ([]T, []int) {
	order := Plan(len(s), start, count, dest)
	return Apply(s, order), Invert(order)
}

// Lookup maps an old index through perm. ok is false when old has no
// valid new position.
func Lookup(perm []int, old int) (newPos int, ok bool) {
	if old < 0 || old >= len(perm) {
		return -1, false
	}
	newPos = perm[old]
	return newPos, newPos >= 0
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}
