// Package rangelist implements the cut LIST syntax: parsing of
// comma-separated position ranges such as "1,3-5,8-" and their resolution
// into concrete per-record selections.
package rangelist

import (
	"fmt"
	"strconv"
	"strings"
)

// RangeSpec is a single element of a range list, a pair of 1-indexed
// positions. Open marks an open-ended range ("N-", through the end of the
// record); End is meaningful only when Open is false. The parser does not
// enforce Start <= End or Start >= 1; such ranges are legal and simply
// select nothing, or clamp, when resolved against a record.
type RangeSpec struct {
	Start int
	End   int
	Open  bool
}

// RangeList is an ordered sequence of parsed ranges. Order follows the
// specification string. Ranges may overlap; duplicates collapse when the
// list is resolved into a Selection.
type RangeList []RangeSpec

// ParseError reports a range-list token that could not be read as an
// integer position.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid range token %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts a textual range list into a RangeList.
//
// Tokens are separated by commas and trimmed of surrounding whitespace,
// as are the bounds on either side of a dash. Each token is a bare
// position "N", a closed range "A-B", an open range "A-", or a prefix
// range "-B" (equivalent to "1-B"). A lone "-" is accepted and
// contributes no ranges. Only the first "-" in a token splits it, so
// "3--1" reads as the range 3 to -1.
//
// Parse is purely syntactic: it applies no ordering, deduplication, or
// bounds checks. Those happen in Build once a record length is known.
func Parse(spec string) (RangeList, error) {
	var ranges RangeList
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)

		if !strings.Contains(part, "-") {
			pos, err := strconv.Atoi(part)
			if err != nil {
				return nil, &ParseError{Token: part, Err: err}
			}
			ranges = append(ranges, RangeSpec{Start: pos, End: pos})
			continue
		}

		bounds := strings.SplitN(part, "-", 2)
		low := strings.TrimSpace(bounds[0])
		high := strings.TrimSpace(bounds[1])
		switch {
		case low == "" && high == "":
			// A bare "-" is valid syntax that selects nothing.
		case low == "":
			end, err := strconv.Atoi(high)
			if err != nil {
				return nil, &ParseError{Token: high, Err: err}
			}
			ranges = append(ranges, RangeSpec{Start: 1, End: end})
		case high == "":
			start, err := strconv.Atoi(low)
			if err != nil {
				return nil, &ParseError{Token: low, Err: err}
			}
			ranges = append(ranges, RangeSpec{Start: start, Open: true})
		default:
			start, err := strconv.Atoi(low)
			if err != nil {
				return nil, &ParseError{Token: low, Err: err}
			}
			end, err := strconv.Atoi(high)
			if err != nil {
				return nil, &ParseError{Token: high, Err: err}
			}
			ranges = append(ranges, RangeSpec{Start: start, End: end})
		}
	}
	return ranges, nil
}
