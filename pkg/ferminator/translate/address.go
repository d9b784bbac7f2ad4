package translate

import (
	"regexp"
	"strings"
)

var (
	nonWordChars = regexp.MustCompile(`\W`)

	// bareAddress matches a sheet-local address in a single-sheet document.
	bareAddress = regexp.MustCompile(`\b([A-Z][0-9]+)\b`)

	// unprefixedAddress matches an address not already carrying a "Sheet!"
	// prefix. Go regexp has no lookbehind, so the preceding character is
	// captured and restored in the replacement.
	unprefixedAddress = regexp.MustCompile(`(^|[^!\w])([A-Z][0-9]+)\b`)

	// prefixedAddress matches a sanitized sheet-qualified address.
	prefixedAddress = regexp.MustCompile(`\w+![A-Z][0-9]+`)
)

// SanitizeSheetName strips every non-word character from a sheet name,
// yielding the prefix used in qualified addresses and placeholders.
func SanitizeSheetName(name string) string {
	return nonWordChars.ReplaceAllString(name, "")
}

// AddressNormalizer qualifies cell references with sanitized sheet prefixes
// and wraps each resolved reference in a ${metric:...} placeholder. The
// matchers are built once per document, not per cell.
type AddressNormalizer struct {
	sheetNames []string
	multi      bool
}

// NewAddressNormalizer creates a normalizer for the document's sheets, in
// document order.
func NewAddressNormalizer(sheetNames []string) *AddressNormalizer {
	return &AddressNormalizer{
		sheetNames: sheetNames,
		multi:      len(sheetNames) > 1,
	}
}

// Normalize rewrites every cell reference in a translated formula. With a
// single sheet, bare addresses are wrapped directly. With multiple sheets,
// bare addresses are first qualified with the current sheet's prefix, then
// every sheet-name prefix (including the quoted form used for names with
// spaces) is sanitized, and finally each qualified address is wrapped.
// Qualification runs before wrapping so no reference is wrapped twice.
func (n *AddressNormalizer) Normalize(formula, currentSheet string) string {
	if formula == "" {
		return ""
	}
	if !n.multi {
		return bareAddress.ReplaceAllString(formula, "$${metric:$1}")
	}

	prefix := SanitizeSheetName(currentSheet)
	out := unprefixedAddress.ReplaceAllString(formula, "${1}"+prefix+"!${2}")

	for _, name := range n.sheetNames {
		sanitized := SanitizeSheetName(name) + "!"
		out = strings.ReplaceAll(out, "'"+name+"'!", sanitized)
		if name+"!" != sanitized {
			out = strings.ReplaceAll(out, name+"!", sanitized)
		}
	}

	return prefixedAddress.ReplaceAllString(out, "$${metric:$0}")
}
