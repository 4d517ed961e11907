package pos

// closedClass maps function words to their Penn Treebank tags.
var closedClass = map[string]string{
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT",
	"these": "DT", "those": "DT", "some": "DT", "any": "DT", "no": "DT",
	"every": "DT", "each": "DT",

	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "her": "PRP",
	"us": "PRP", "them": "PRP",

	"my": "PRP$", "your": "PRP$", "his": "PRP$", "its": "PRP$",
	"our": "PRP$", "their": "PRP$",

	"in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN",
	"with": "IN", "from": "IN", "of": "IN", "to": "TO", "into": "IN",
	"about": "IN", "after": "IN", "before": "IN", "near": "IN",
	"under": "IN", "over": "IN", "if": "IN", "because": "IN",

	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "so": "CC",

	"can": "MD", "could": "MD", "will": "MD", "would": "MD",
	"shall": "MD", "should": "MD", "may": "MD", "might": "MD", "must": "MD",

	"not": "RB", "n't": "RB", "very": "RB", "here": "RB", "there": "EX",
	"now": "RB", "then": "RB", "still": "RB", "also": "RB",

	"be": "VB", "am": "VBP", "are": "VBP", "is": "VBZ",
	"was": "VBD", "were": "VBD", "been": "VBN", "being": "VBG",
	"do": "VBP", "does": "VBZ", "did": "VBD",
	"have": "VBP", "has": "VBZ", "had": "VBD",

	"what": "WP", "who": "WP", "where": "WRB", "when": "WRB",
	"why": "WRB", "how": "WRB", "which": "WDT",
}

// verbBase holds base-form verbs. A sentence leading with one of these is,
// for this corpus, almost always an imperative or a bare present-tense
// clause.
var verbBase = map[string]bool{
	"ask": true, "assist": true, "avoid": true, "bring": true, "call": true,
	"check": true, "come": true, "contact": true, "deliver": true,
	"distribute": true, "donate": true, "drink": true, "eat": true,
	"evacuate": true, "find": true, "follow": true, "get": true,
	"give": true, "go": true, "help": true, "hold": true, "keep": true,
	"know": true, "leave": true, "let": true, "listen": true, "live": true,
	"look": true, "make": true, "move": true, "need": true, "offer": true,
	"open": true, "please": true, "pray": true, "provide": true, "put": true,
	"reach": true, "rebuild": true, "receive": true, "report": true,
	"request": true, "rescue": true, "respond": true, "run": true,
	"save": true, "say": true, "search": true, "see": true, "send": true,
	"share": true, "stay": true, "stop": true, "take": true, "tell": true,
	"thank": true, "think": true, "try": true, "visit": true, "wait": true,
	"want": true, "warn": true, "watch": true, "work": true,
}

// irregularPast covers past forms that no suffix rule can catch.
var irregularPast = map[string]bool{
	"ran": true, "went": true, "came": true, "said": true, "got": true,
	"took": true, "gave": true, "sent": true, "told": true, "found": true,
	"left": true, "made": true, "saw": true, "heard": true, "lost": true,
	"brought": true, "thought": true, "felt": true, "kept": true,
	"held": true, "fell": true, "broke": true, "spoke": true, "stood": true,
}
