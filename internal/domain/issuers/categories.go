package issuers

import (
	"strings"

	"faturas/internal/domain/entities"
)

type categoryRule struct {
	Category entities.Category
	Keywords []string
}

// Rule order is the evaluation order; the first rule with a keyword contained
// in the normalized issuer wins. Keywords are already normalized.
var categoryRules = []categoryRule{
	{Category: entities.CategoryEletricidade, Keywords: []string{"edp", "energia", "electricity", "eletricidade"}},
	{Category: entities.CategoryAgua, Keywords: []string{"agua", "water", "epal", "adp"}},
	{Category: entities.CategoryGas, Keywords: []string{"gas", "galp", "repsol"}},
	{Category: entities.CategoryInternet, Keywords: []string{"meo", "nos", "vodafone", "digi", "nowo", "internet"}},
	{Category: entities.CategorySeguro, Keywords: []string{"seguro", "insurance"}},
}

// InferCategory maps an issuer name to a bill category via keyword
// containment on the normalized name. Unknown issuers default to
// Telecomunicações.
func InferCategory(issuer string) entities.Category {
	normalized := Normalize(issuer)
	if normalized == "" {
		return entities.CategoryTelecomunicacoes
	}
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, kw) {
				return rule.Category
			}
		}
	}
	return entities.CategoryTelecomunicacoes
}
