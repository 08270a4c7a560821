package domain

import (
	"math/rand"
	"strings"
)

// BloomLevel represents a cognitive level of Bloom's Taxonomy
type BloomLevel string

const (
	LevelRemember   BloomLevel = "Remember"
	LevelUnderstand BloomLevel = "Understand"
	LevelApply      BloomLevel = "Apply"
	LevelAnalyze    BloomLevel = "Analyze"
	LevelEvaluate   BloomLevel = "Evaluate"
	LevelCreate     BloomLevel = "Create"
)

// BloomLevels lists the six levels in increasing cognitive complexity.
var BloomLevels = []BloomLevel{
	LevelRemember,
	LevelUnderstand,
	LevelApply,
	LevelAnalyze,
	LevelEvaluate,
	LevelCreate,
}

// IsValid reports whether the level is one of the six Bloom levels.
func (l BloomLevel) IsValid() bool {
	switch l {
	case LevelRemember, LevelUnderstand, LevelApply, LevelAnalyze, LevelEvaluate, LevelCreate:
		return true
	}
	return false
}

// bloomVerbs is the approved verb list, 30 verbs per level.
// Objectives generated by the LLM must use a verb from this table.
var bloomVerbs = map[BloomLevel][]string{
	LevelRemember: {
		"define", "list", "name", "identify", "recall", "recognize",
		"label", "match", "memorize", "repeat", "state", "select",
		"locate", "tell", "quote", "enumerate", "outline", "describe",
		"who", "what", "when", "where", "which", "how",
		"show", "mark", "spell", "find", "cite", "tabulate",
	},
	LevelUnderstand: {
		"explain", "describe", "summarize", "interpret", "paraphrase", "clarify",
		"discuss", "illustrate", "demonstrate", "exemplify", "rephrase", "translate",
		"convert", "estimate", "infer", "predict", "conclude", "differentiate",
		"distinguish", "compare", "contrast", "extend", "generalize", "give examples",
		"restate", "express", "indicate", "reason", "derive", "grasp",
	},
	LevelApply: {
		"apply", "use", "implement", "execute", "employ", "utilize",
		"practice", "perform", "operate", "manipulate", "modify", "change",
		"solve", "calculate", "compute", "determine", "discover", "verify",
		"validate", "check", "test", "debug", "trace", "run",
		"build", "construct", "create", "generate", "produce", "develop",
	},
	LevelAnalyze: {
		"analyze", "differentiate", "distinguish", "examine", "investigate", "inspect",
		"explore", "compare", "contrast", "categorize", "classify", "break down",
		"deconstruct", "separate", "discriminate", "detect", "identify patterns", "recognize structure",
		"find", "diagnose", "troubleshoot", "audit", "review", "assess",
		"evaluate", "organize", "outline", "structure", "map", "profile",
	},
	LevelEvaluate: {
		"evaluate", "assess", "judge", "appraise", "estimate", "measure",
		"rate", "score", "value", "critique", "criticize", "recommend",
		"advise", "select", "choose", "prefer", "defend", "justify",
		"validate", "verify", "confirm", "corroborate", "support", "argue",
		"debate", "dispute", "question", "challenge", "weigh", "prioritize",
	},
	LevelCreate: {
		"create", "design", "construct", "build", "develop", "formulate",
		"generate", "produce", "manufacture", "compose", "assemble", "combine",
		"integrate", "merge", "blend", "synthesize", "originate", "devise",
		"invent", "concoct", "plan", "propose", "draft", "outline",
		"structure", "organize", "arrange", "author", "fabricate", "derive",
	},
}

// ValidateVerb reports whether verb is approved for the given Bloom level.
// Matching is case-insensitive and ignores surrounding whitespace.
func ValidateVerb(verb string, level BloomLevel) bool {
	approved, ok := bloomVerbs[level]
	if !ok {
		return false
	}
	normalized := strings.ToLower(strings.TrimSpace(verb))
	for _, v := range approved {
		if normalized == strings.ToLower(v) {
			return true
		}
	}
	return false
}

// RandomVerb returns a random approved verb for the level.
// Used as a fallback when the LLM produces an unapproved verb.
// Returns "demonstrate" for an unknown level.
func RandomVerb(level BloomLevel) string {
	verbs, ok := bloomVerbs[level]
	if !ok || len(verbs) == 0 {
		return "demonstrate"
	}
	return verbs[rand.Intn(len(verbs))]
}

// AllVerbs returns a copy of the approved verb table.
func AllVerbs() map[BloomLevel][]string {
	out := make(map[BloomLevel][]string, len(bloomVerbs))
	for level, verbs := range bloomVerbs {
		copied := make([]string, len(verbs))
		copy(copied, verbs)
		out[level] = copied
	}
	return out
}

// ApprovedVerbs returns the approved verbs for a single level.
func ApprovedVerbs(level BloomLevel) []string {
	verbs := bloomVerbs[level]
	copied := make([]string, len(verbs))
	copy(copied, verbs)
	return copied
}
