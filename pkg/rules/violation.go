package rules

import "fmt"

// Rule identifies which check a violation came from.
type Rule string

// Rules reported by the validator.
const (
	RuleTopSafeZone    Rule = "top"
	RuleBottomSafeZone Rule = "bottom"
	RuleLeftSafeZone   Rule = "left"
	RuleRightSafeZone  Rule = "right"
	RuleCTASize        Rule = "cta-size"
	RuleLegalScale     Rule = "legal-scale"
)

// Violation is one failed check on one text block.
type Violation struct {
	BlockID string
	Rule    Rule
	Message string
}

// String renders the violation as "<block id>: <message>".
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.BlockID, v.Message)
}

// Strings renders each violation with [Violation.String], preserving order.
func Strings(vs []Violation) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}
