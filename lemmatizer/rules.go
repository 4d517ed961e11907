package lemmatizer

import "strings"

// MorphologicalRules drives suffix stripping. Exceptions win over suffix
// rules; a suffix rule only fires when the candidate base is plausible
// (long enough and not protected).
type MorphologicalRules struct {
	Exceptions map[string]string
	NounRule   [][]string
	Protected  map[string]bool
}

// DefaultRules returns the embedded rule tables. The noun rules mirror the
// plural-to-singular direction of WordNet's default lemmatization.
func DefaultRules() *MorphologicalRules {
	return &MorphologicalRules{
		Exceptions: map[string]string{
			"children": "child",
			"people":   "person",
			"men":      "man",
			"women":    "woman",
			"feet":     "foot",
			"teeth":    "tooth",
			"mice":     "mouse",
			"geese":    "goose",
			"lives":    "life",
			"wives":    "wife",
			"knives":   "knife",
			"leaves":   "leaf",
			"shelves":  "shelf",
			"crises":   "crisis",
			"analyses": "analysis",
			"supplies": "supply",
			"families": "family",
		},
		NounRule: [][]string{
			{"ies", "y"},
			{"ches", "ch"},
			{"shes", "sh"},
			{"xes", "x"},
			{"zes", "z"},
			{"sses", "ss"},
			{"s", ""},
		},
		Protected: map[string]bool{
			"news": true, "bus": true, "gas": true, "this": true,
			"is": true, "was": true, "has": true, "us": true,
			"as": true, "its": true, "his": true, "yes": true,
			"status": true, "virus": true, "series": true,
			"species": true, "crisis": true, "analysis": true,
			"always": true, "perhaps": true, "across": true,
		},
	}
}

func (rules *MorphologicalRules) getException(form string) (string, bool) {
	base, ok := rules.Exceptions[form]
	return base, ok
}

func (rules *MorphologicalRules) getBase(form string) (string, bool) {
	if rules.Protected[form] {
		return "", false
	}
	for _, rule := range rules.NounRule {
		if !strings.HasSuffix(form, rule[0]) {
			continue
		}
		offset := len(form) - len(rule[0])
		base := form[0:offset] + rule[1]
		if len(base) < 3 {
			continue
		}
		// Double-s words ("glass") must not lose their final s.
		if rule[0] == "s" && strings.HasSuffix(form, "ss") {
			continue
		}
		return base, true
	}
	return "", false
}
