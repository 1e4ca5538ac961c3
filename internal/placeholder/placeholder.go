// =============================================================================
// SQL File Generator - Placeholder Substitution
// =============================================================================
//
// This module replaces the three placeholder tokens embedded in the SQL
// templates:
//
//   <project-name>    -> project
//   <dataset-region>  -> dataset location
//   <dataset>         -> dataset name
//
// Replacement is plain substring replacement, applied one token at a time in
// the order above. There is no escaping and no partial-match guard: a value
// that itself contains a later token will have that token replaced by the
// later pass.
//
// =============================================================================

package placeholder

import "strings"

// Placeholder tokens recognised in SQL templates.
const (
	ProjectToken = "<project-name>"
	RegionToken  = "<dataset-region>"
	DatasetToken = "<dataset>"
)

// Tokens lists the placeholder tokens in replacement order.
var Tokens = []string{ProjectToken, RegionToken, DatasetToken}

// Counts maps a token to the number of occurrences replaced.
type Counts map[string]int

// replacement is a single token -> value pair.
type replacement struct {
	Token string
	Value string
}

// =============================================================================
// SUBSTITUTOR
// =============================================================================

// Substitutor applies an ordered list of literal replacements.
type Substitutor struct {
	replacements []replacement
}

// New creates a Substitutor for the given project, region and dataset.
func New(project, region, dataset string) *Substitutor {
	return &Substitutor{
		replacements: []replacement{
			{Token: ProjectToken, Value: project},
			{Token: RegionToken, Value: region},
			{Token: DatasetToken, Value: dataset},
		},
	}
}

// Apply replaces every occurrence of each token in text, token by token.
//
// RETURNS:
//   - The substituted text.
//   - The number of occurrences replaced per token, counted on the text as
//     it stood when that token's pass ran.
func (s *Substitutor) Apply(text string) (string, Counts) {
	counts := make(Counts, len(s.replacements))
	result := text
	for _, r := range s.replacements {
		counts[r.Token] = strings.Count(result, r.Token)
		result = strings.ReplaceAll(result, r.Token, r.Value)
	}
	return result, counts
}

// Remaining returns the tokens still present in text, in replacement order.
func Remaining(text string) []string {
	var found []string
	for _, tok := range Tokens {
		if strings.Contains(text, tok) {
			found = append(found, tok)
		}
	}
	return found
}
