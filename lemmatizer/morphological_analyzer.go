package lemmatizer

import "strings"

type MorphologicalAnalyzer func(form string) string

func NewMorphologicalAnalyzer(rules *MorphologicalRules) MorphologicalAnalyzer {
	return func(form string) string {
		form = strings.ToLower(strings.TrimSpace(form))

		// exceptions
		exception, isException := rules.getException(form)
		if isException {
			return exception
		}

		// suffix rules
		base, isBase := rules.getBase(form)
		if isBase {
			return base
		}

		return form
	}
}
