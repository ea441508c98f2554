package clause

import (
	"fmt"
	"strings"
)

// CanonicalString computes c's canonical string form from its children's
// already-computed StringRepr (the compiler calls this bottom-up, in
// reverse topological order, during interning — spec §4.B step 5). Two
// structurally equal clauses produce the same string and are interned to
// one shared node.
func (c *Clause) CanonicalString() string {
	switch c.Kind {
	case Terminal:
		return c.terminalString()
	case RuleRef:
		if c.RefPrecedence != nil {
			return fmt.Sprintf("Ref(%s[%d])", c.RefName, *c.RefPrecedence)
		}
		return fmt.Sprintf("Ref(%s)", c.RefName)
	case ASTLabel:
		return fmt.Sprintf("Label(%s, %s)", c.ASTLabelName, c.Inner.StringRepr)
	default:
		parts := make([]string, len(c.SubClauses))
		for i, sc := range c.SubClauses {
			parts[i] = sc.StringRepr
		}
		return fmt.Sprintf("%s(%s)", c.Kind, strings.Join(parts, ","))
	}
}

func (c *Clause) terminalString() string {
	switch c.TKind {
	case NothingTerminal:
		return "Nothing"
	case AnyCharTerminal:
		return "AnyChar"
	case LiteralTerminal:
		return fmt.Sprintf("Lit(%q)", string(c.Literal))
	case CharSetTerminal:
		var b strings.Builder
		b.WriteString("CharSet(")
		if c.Negated {
			b.WriteByte('^')
		}
		for _, r := range c.Ranges {
			if r.Lo == r.Hi {
				fmt.Fprintf(&b, "%02x", r.Lo)
			} else {
				fmt.Fprintf(&b, "%02x-%02x", r.Lo, r.Hi)
			}
		}
		b.WriteByte(')')
		return b.String()
	default:
		return fmt.Sprintf("Terminal(kind=%d)", c.TKind)
	}
}
