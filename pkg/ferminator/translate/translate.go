// Package translate rewrites spreadsheet formulas into the expression
// dialect of the modeling service. Recognized functions are inlined into
// plain arithmetic; everything else passes through unchanged.
package translate

import (
	"regexp"
	"strconv"
	"strings"
)

var addressPattern = regexp.MustCompile(`^[A-Z][0-9]+$`)

// Translator converts formulas through an ordered sequence of rewrite
// passes: percent literals, SUMPRODUCT, AVERAGE, SUM, LN, PV. Each pass is
// a pure tree transform; an unrecognized call shape makes its pass a no-op.
type Translator struct{}

// NewTranslator creates a formula translator.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate rewrites every recognized function call in formula. The second
// return value reports whether every recognized call was fully rewritten;
// it is false when some call was left in place for the downstream consumer.
// A leading "=" is preserved. Translate never fails: input it cannot parse
// comes back verbatim.
func (t *Translator) Translate(formula string) (string, bool) {
	if formula == "" {
		return "", true
	}

	prefix := ""
	body := formula
	if strings.HasPrefix(body, "=") {
		prefix = "="
		body = body[1:]
	}

	ns, ok := parseFormula(body)
	if !ok {
		return formula, false
	}

	resolved, changed := true, false
	ns = foldPercents(ns, &changed)
	ns = rewriteCalls(ns, "SUMPRODUCT", rewriteSumProduct, &resolved, &changed)
	ns = rewriteCalls(ns, "AVERAGE", rewriteAverage, &resolved, &changed)
	ns = rewriteSums(ns, &resolved, &changed)
	ns = rewriteCalls(ns, "LN", rewriteLn, &resolved, &changed)
	ns = rewriteCalls(ns, "PV", rewritePV, &resolved, &changed)

	// Re-rendering the token tree is not byte-faithful (the tokenizer
	// normalizes whitespace), so a formula no pass touched comes back as
	// the caller wrote it.
	if !changed {
		return formula, resolved
	}
	return prefix + ns.render(), resolved
}

// foldPercents replaces each number followed by the postfix percent
// operator with the number divided by 100.
func foldPercents(ns nodes, changed *bool) nodes {
	out := make(nodes, 0, len(ns))
	for i := 0; i < len(ns); i++ {
		n := ns[i]
		if n.call != nil {
			for j, arg := range n.call.args {
				n.call.args[j] = foldPercents(arg, changed)
			}
			out = append(out, n)
			continue
		}
		if n.kind == leafNumber && i+1 < len(ns) && ns[i+1].kind == leafPercent {
			if v, err := strconv.ParseFloat(n.text, 64); err == nil {
				out = append(out, node{
					text: strconv.FormatFloat(v/100, 'f', -1, 64),
					kind: leafNumber,
				})
				*changed = true
				i++
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// rewriteCalls applies fn to every call named name, innermost first. When
// fn declines a call, the call stays in place and resolved is cleared.
func rewriteCalls(ns nodes, name string, fn func(*callNode) (string, bool), resolved, changed *bool) nodes {
	out := make(nodes, 0, len(ns))
	for _, n := range ns {
		if n.call == nil {
			out = append(out, n)
			continue
		}
		for i, arg := range n.call.args {
			n.call.args[i] = rewriteCalls(arg, name, fn, resolved, changed)
		}
		if !n.call.group && n.call.name == name {
			if text, ok := fn(n.call); ok {
				out = append(out, node{text: text})
				*changed = true
				continue
			}
			*resolved = false
		}
		out = append(out, n)
	}
	return out
}

// rewriteSumProduct expands SUMPRODUCT over two equal-length single-column
// ranges into an explicit dot-product sum.
func rewriteSumProduct(c *callNode) (string, bool) {
	if len(c.args) != 2 {
		return "", false
	}
	left, lok := c.args[0].soleLeaf()
	right, rok := c.args[1].soleLeaf()
	if !lok || !rok {
		return "", false
	}
	lr, lok := parseCellRange(left.text)
	rr, rok := parseCellRange(right.text)
	if !lok || !rok || !lr.singleColumn() || !rr.singleColumn() {
		return "", false
	}
	a, b := lr.addresses(), rr.addresses()
	if len(a) == 0 || len(a) != len(b) {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString("(")
	for i := range a {
		sb.WriteString("+" + a[i] + "*" + b[i])
	}
	sb.WriteString(")")
	return sb.String(), true
}

// rewriteAverage inlines AVERAGE over addresses and ranges as
// (sum-of-terms)/count.
func rewriteAverage(c *callNode) (string, bool) {
	terms := make([]string, 0, len(c.args))
	for _, arg := range c.args {
		leaf, ok := arg.soleLeaf()
		if !ok {
			return "", false
		}
		if strings.Contains(leaf.text, ":") {
			r, ok := parseCellRange(leaf.text)
			if !ok {
				return "", false
			}
			terms = append(terms, r.addresses()...)
			continue
		}
		terms = append(terms, leaf.text)
	}
	if len(terms) == 0 {
		return "", false
	}
	return "((" + strings.Join(terms, "+") + ")/" + strconv.Itoa(len(terms)) + ")", true
}

// rewriteSums handles SUM calls, which are classified globally: either
// every call in the formula is a plain comma list of addresses (rewritten
// to the natively supported lowercase sum), or every call is a single
// same-column range (expanded into an explicit sum). A formula mixing the
// two styles, or using a range the expansion cannot resolve, is left
// untouched and reported unresolved.
func rewriteSums(ns nodes, resolved, changed *bool) nodes {
	var calls []*callNode
	collectSums(ns, &calls)
	if len(calls) == 0 {
		return ns
	}

	allLists, allRanges := true, true
	for _, c := range calls {
		if !sumIsAddressList(c) {
			allLists = false
		}
		if !sumIsColumnRange(c) {
			allRanges = false
		}
	}

	switch {
	case allLists:
		*changed = true
		return transformSums(ns, rewriteSumList)
	case allRanges:
		*changed = true
		return transformSums(ns, rewriteSumRange)
	default:
		*resolved = false
		return ns
	}
}

func collectSums(ns nodes, calls *[]*callNode) {
	for _, n := range ns {
		if n.call == nil {
			continue
		}
		for _, arg := range n.call.args {
			collectSums(arg, calls)
		}
		if !n.call.group && strings.EqualFold(n.call.name, "SUM") {
			*calls = append(*calls, n.call)
		}
	}
}

func transformSums(ns nodes, fn func(*callNode) string) nodes {
	out := make(nodes, 0, len(ns))
	for _, n := range ns {
		if n.call == nil {
			out = append(out, n)
			continue
		}
		for i, arg := range n.call.args {
			n.call.args[i] = transformSums(arg, fn)
		}
		if !n.call.group && strings.EqualFold(n.call.name, "SUM") {
			out = append(out, node{text: fn(n.call)})
			continue
		}
		out = append(out, n)
	}
	return out
}

func sumIsAddressList(c *callNode) bool {
	if len(c.args) == 0 {
		return false
	}
	for _, arg := range c.args {
		leaf, ok := arg.soleLeaf()
		if !ok || !addressPattern.MatchString(leaf.text) {
			return false
		}
	}
	return true
}

func sumIsColumnRange(c *callNode) bool {
	if len(c.args) != 1 {
		return false
	}
	leaf, ok := c.args[0].soleLeaf()
	if !ok {
		return false
	}
	r, ok := parseCellRange(leaf.text)
	return ok && r.singleColumn()
}

func rewriteSumList(c *callNode) string {
	args := make([]string, 0, len(c.args))
	for _, arg := range c.args {
		leaf, _ := arg.soleLeaf()
		args = append(args, leaf.text)
	}
	return "sum(" + strings.Join(args, ",") + ")"
}

func rewriteSumRange(c *callNode) string {
	leaf, _ := c.args[0].soleLeaf()
	r, _ := parseCellRange(leaf.text)
	return "(" + strings.Join(r.addresses(), "+") + ")"
}

// rewriteLn replaces the natural logarithm with its change-of-base
// expansion over log10.
func rewriteLn(c *callNode) (string, bool) {
	if len(c.args) != 1 || c.args[0].isEmpty() {
		return "", false
	}
	arg := strings.TrimSpace(c.args[0].render())
	return "(1 / log10(2.71828) * log10(" + arg + "))", true
}

// rewritePV replaces the present-value function with the closed-form
// annuity expression. A trailing ",,1" (payments at period start) is
// accepted and ignored.
func rewritePV(c *callNode) (string, bool) {
	args := c.args
	if len(args) == 5 && args[3].isEmpty() && strings.TrimSpace(args[4].render()) == "1" {
		args = args[:3]
	}
	if len(args) != 3 {
		return "", false
	}
	rate := strings.TrimSpace(args[0].render())
	nper := strings.TrimSpace(args[1].render())
	pmt := strings.TrimSpace(args[2].render())
	if rate == "" || nper == "" || pmt == "" {
		return "", false
	}
	return "(-(" + pmt + ")*(1-(1+(" + rate + "))^(-(" + nper + ")))/(" + rate + "))", true
}
