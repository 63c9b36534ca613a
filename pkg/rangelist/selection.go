package rangelist

import "sort"

// Selection is the set of 1-indexed positions kept within a single record.
// Selections are rebuilt per record because open-ended ranges depend on
// record length. Map iteration order is undefined; use Sorted when record
// order matters.
type Selection map[int]struct{}

// Build resolves ranges against a record of the given length.
//
// Each range contributes the positions [lo, hi] where lo is the start
// clamped up to 1 and hi is the end clamped down to length (open ranges
// resolve their end to length). Ranges whose clamped interval is empty,
// inverted ranges, and ranges starting past the end of the record
// contribute nothing. The result is always a subset of {1..length}, and
// any ranges over a zero-length record yield an empty Selection.
func Build(ranges RangeList, length int) Selection {
	sel := make(Selection)
	for _, r := range ranges {
		hi := r.End
		if r.Open || hi > length {
			hi = length
		}
		lo := r.Start
		if lo < 1 {
			lo = 1
		}
		for pos := lo; pos <= hi; pos++ {
			sel[pos] = struct{}{}
		}
	}
	return sel
}

// Complement returns {1..length} minus s. Positions in s beyond length
// have no effect on the result.
func (s Selection) Complement(length int) Selection {
	out := make(Selection, length)
	for pos := 1; pos <= length; pos++ {
		if _, kept := s[pos]; !kept {
			out[pos] = struct{}{}
		}
	}
	return out
}

// Contains reports whether position pos is selected.
func (s Selection) Contains(pos int) bool {
	_, ok := s[pos]
	return ok
}

// Sorted returns the selected positions in ascending order.
func (s Selection) Sorted() []int {
	positions := make([]int, 0, len(s))
	for pos := range s {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}
