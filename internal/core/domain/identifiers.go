package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	enquiryIDPrefix  = "ENQ-"
	matterCodePrefix = "MAT-"
)

// EnquirySequenceNamespace is the single global counter behind enquiry IDs.
const EnquirySequenceNamespace = "enquiry"

// MatterSequenceNamespace returns the per-year counter name behind matter codes.
func MatterSequenceNamespace(year int) string {
	return fmt.Sprintf("matter:%04d", year)
}

// FormatEnquiryID renders ENQ-%04d. Numbers past 9999 widen instead of failing.
func FormatEnquiryID(n int64) string {
	return fmt.Sprintf("%s%04d", enquiryIDPrefix, n)
}

// FormatMatterCode renders MAT-%04d-%03d from the conversion year and the
// per-year sequence number.
func FormatMatterCode(year, seq int) string {
	return fmt.Sprintf("%s%04d-%03d", matterCodePrefix, year, seq)
}

// ParseMatterCode splits a matter code into its year and sequence number.
// Both parts must be unsigned decimal digits.
func ParseMatterCode(code string) (year int, seq int, err error) {
	rest, ok := strings.CutPrefix(code, matterCodePrefix)
	if !ok {
		return 0, 0, fmt.Errorf("malformed matter code %q", code)
	}
	yearPart, seqPart, ok := strings.Cut(rest, "-")
	if !ok || len(yearPart) != 4 || len(seqPart) < 3 || !allDigits(yearPart) || !allDigits(seqPart) {
		return 0, 0, fmt.Errorf("malformed matter code %q", code)
	}
	year, err = strconv.Atoi(yearPart)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed matter code %q", code)
	}
	seq, err = strconv.Atoi(seqPart)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed matter code %q", code)
	}
	return year, seq, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
