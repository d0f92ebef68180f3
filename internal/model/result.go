package model

import "errors"

// ErrInvalidArgument signals a malformed analyze request (unknown language
// alias). It is the only error Analyze surfaces to callers; individual rule
// failures degrade to missing explanations instead.
var ErrInvalidArgument = errors.New("invalid argument")

// Gender codes the gender a lexicon entry or scan hit is marked with.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// SubjectType distinguishes how a gendered subject was matched.
type SubjectType string

const (
	SubjectNoun  SubjectType = "noun"
	SubjectTitle SubjectType = "title"
)

// ActionCategory tags a stereotyped action phrase with its semantic field.
type ActionCategory string

const (
	CategoryDomestic           ActionCategory = "domestic"
	CategoryAcademicLeadership ActionCategory = "academic_leadership"
	CategoryPhysicalLabor      ActionCategory = "physical_labor"
)

// Subject is a scanned gendered noun or title occurrence.
// Position is a byte offset into the analyzed input text.
type Subject struct {
	Word     string      `json:"word"`     // lowercased token that matched
	Gender   Gender      `json:"gender"`   //
	Position int         `json:"position"` //
	Surface  string      `json:"original"` // slice of the original text at Position
	Gloss    string      `json:"meaning"`  // English gloss from the lexicon
	Type     SubjectType `json:"type"`     //
}

// Action is a scanned stereotyped action phrase occurrence.
type Action struct {
	Phrase   string         `json:"phrase"`
	Category ActionCategory `json:"category"`
	Position int            `json:"position"`
}

// Explanation is one rule's flagged finding.
type Explanation struct {
	Span   string `json:"span"`
	Rule   string `json:"rule_triggered"`
	Reason string `json:"reason"`
}

// Rule names as they appear in explanations. The rewrite generator branches
// on these, so they are constants rather than free strings inside the rules.
const (
	RuleSubjectStereotype    = "Subject-Stereotype Match"
	RuleContrastiveRoles     = "Contrastive Gender Roles"
	RuleGenderMarking        = "Unnecessary Gender Marking"
	RuleGeneralization       = "Generalization"
	RuleInfantilizing        = "Diminutive/Infantilizing"
	RuleAsymmetricalOrdering = "Asymmetrical Ordering (Male Firstness)"
	RulePejorative           = "Pejorative Association"
	RuleTranslationBias      = "Translation Bias"
	RuleNamedEntity          = "Named Entity Bias"
	RulePronominalization    = "Stereotypical Pronominalization"
	RuleImplicitBias         = "Implicit Bias"
)

// AnalysisResult is the complete outcome of one analyze call.
// DetectedBias is false exactly when Explanations is empty, and in that case
// Rewrite equals InputText byte for byte.
type AnalysisResult struct {
	InputText    string        `json:"input_text"`
	Language     Language      `json:"language_detected"`
	DetectedBias bool          `json:"detected_bias"`
	Explanations []Explanation `json:"explanations"`
	Rewrite      string        `json:"suggested_rewrite"`
}
