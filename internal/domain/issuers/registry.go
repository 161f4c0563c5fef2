package issuers

import (
	"fmt"
	"os"
	"strings"
)

// Company is one entry of the known-issuer registry: a canonical provider
// name, the domain used to build its logo URL and optional aliases as they
// appear on invoices.
type Company struct {
	Name    string
	Domain  string
	Aliases []string
}

// Registry order is significant: exact/alias matching and fuzzy tie-breaks
// both keep the first entry seen, so the slice must stay ordered and
// read-only.
var companies = []Company{
	{Name: "EDP", Domain: "edp.pt"},
	{Name: "Galp", Domain: "galp.com"},
	{Name: "Iberdrola", Domain: "iberdrola.pt"},
	{Name: "Goldenergy", Domain: "goldenergy.pt"},
	{Name: "Endesa", Domain: "endesa.pt"},
	{Name: "Plenitude", Domain: "plenitude.pt"},
	{Name: "Repsol", Domain: "repsol.pt"},
	{Name: "ENGIE", Domain: "engie.pt"},
	{Name: "AdP", Domain: "adp.pt", Aliases: []string{"Águas de Portugal", "Aguas de Portugal"}},
	{Name: "EPAL", Domain: "epal.pt"},
	{Name: "MEO", Domain: "meo.pt"},
	{Name: "NOS", Domain: "nos.pt"},
	{Name: "Vodafone", Domain: "vodafone.pt", Aliases: []string{"Vodafone Portugal"}},
	{Name: "NOWO", Domain: "nowo.pt"},
	{Name: "DIGI", Domain: "digi.pt", Aliases: []string{"Digi Portugal"}},
}

const defaultLogoDevToken = "live_6a1a28fd-6420-4492-aeb0-b297461d9de2"

// Score is the similarity between two normalized names: 1 for equality, 0.9
// when one is a prefix of the other, 0.8 when one contains the other,
// 0 otherwise.
func Score(query, candidate string) float64 {
	switch {
	case query == candidate:
		return 1
	case strings.HasPrefix(candidate, query) || strings.HasPrefix(query, candidate):
		return 0.9
	case strings.Contains(candidate, query) || strings.Contains(query, candidate):
		return 0.8
	}
	return 0
}

// FindDomain resolves a free-text issuer name to the registry domain, or ""
// when no entry matches well enough.
//
// Exact/alias matches always win, in registry order. Otherwise the single
// best fuzzy candidate across all names and aliases is taken, first seen
// winning ties, and accepted only at score >= 0.8.
func FindDomain(ocrName string) string {
	q := Normalize(ocrName)
	if q == "" {
		return ""
	}

	for _, c := range companies {
		for _, n := range namesOf(c) {
			if Normalize(n) == q {
				return c.Domain
			}
		}
	}

	bestDomain, bestScore := "", 0.0
	for _, c := range companies {
		for _, n := range namesOf(c) {
			if s := Score(q, Normalize(n)); s > bestScore {
				bestDomain, bestScore = c.Domain, s
			}
		}
	}
	if bestScore >= 0.8 {
		return bestDomain
	}
	return ""
}

// LogoURL returns the logo.dev image URL for an issuer name, or "" when the
// issuer is not in the registry.
func LogoURL(ocrName string) string {
	domain := FindDomain(ocrName)
	if domain == "" {
		return ""
	}
	token := os.Getenv("LOGO_DEV_TOKEN")
	if token == "" {
		token = defaultLogoDevToken
	}
	return fmt.Sprintf("https://img.logo.dev/%s?token=%s&format=webp&retina=true&size=128", domain, token)
}

func namesOf(c Company) []string {
	names := make([]string, 0, 1+len(c.Aliases))
	names = append(names, c.Name)
	names = append(names, c.Aliases...)
	return names
}
