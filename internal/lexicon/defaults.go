package lexicon

import "github.com/ithute/ithute/internal/model"

// Built-in lexicons. Tables are ordered; the order is part of the engine's
// observable behavior (rewrite substitution order, action tie-breaks), so
// entries must not be reshuffled casually.

func defaultSetswana() *LanguageLexicon {
	return &LanguageLexicon{
		Nouns: []GenderedTerm{
			{Word: "monna", Gender: model.GenderMale, Gloss: "man"},
			{Word: "mosimane", Gender: model.GenderMale, Gloss: "boy"},
			{Word: "rra", Gender: model.GenderMale, Gloss: "father/sir"},
			{Word: "ntate", Gender: model.GenderMale, Gloss: "father"},
			{Word: "banna", Gender: model.GenderMale, Gloss: "men"},
			{Word: "basimane", Gender: model.GenderMale, Gloss: "boys"},
			{Word: "morwa", Gender: model.GenderMale, Gloss: "son"},
			{Word: "malome", Gender: model.GenderMale, Gloss: "uncle"},
			{Word: "mosadi", Gender: model.GenderFemale, Gloss: "woman"},
			{Word: "mosetsana", Gender: model.GenderFemale, Gloss: "girl"},
			{Word: "mma", Gender: model.GenderFemale, Gloss: "mother/madam"},
			{Word: "basadi", Gender: model.GenderFemale, Gloss: "women"},
			{Word: "basetsana", Gender: model.GenderFemale, Gloss: "girls"},
			{Word: "morwadi", Gender: model.GenderFemale, Gloss: "daughter"},
			{Word: "rakgadi", Gender: model.GenderFemale, Gloss: "aunt"},
		},
		Titles: []TitleTerm{
			{Word: "rra", Gender: model.GenderMale},
			{Word: "rre", Gender: model.GenderMale},
			{Word: "ntate", Gender: model.GenderMale},
			{Word: "rra-ngaka", Gender: model.GenderMale},
			{Word: "rra-porofesa", Gender: model.GenderMale},
			{Word: "rra-moporesidente", Gender: model.GenderMale},
			{Word: "rra-ceo", Gender: model.GenderMale},
			{Word: "maestro", Gender: model.GenderMale},
			{Word: "mma", Gender: model.GenderFemale},
			{Word: "mme", Gender: model.GenderFemale},
			{Word: "mma-ngaka", Gender: model.GenderFemale},
			{Word: "mma-porofesa", Gender: model.GenderFemale},
			{Word: "miss", Gender: model.GenderFemale},
			{Word: "mme-moporesidente", Gender: model.GenderFemale},
		},
		Neutral: NeutralTerms{
			Singular: "motho",
			Plural:   "batho",
			Everyone: "motho mongwe le mongwe",
		},
		Actions: []ActionPhrase{
			{Phrase: "apea dijo", Category: model.CategoryDomestic},
			{Phrase: "apea", Category: model.CategoryDomestic},
			{Phrase: "pheha", Category: model.CategoryDomestic},
			{Phrase: "hlatswa dijana", Category: model.CategoryDomestic},
			{Phrase: "phepafatsa ntlo", Category: model.CategoryDomestic},
			{Phrase: "tlhatswa diaparo", Category: model.CategoryDomestic},
			{Phrase: "bala buka", Category: model.CategoryAcademicLeadership},
			{Phrase: "bala", Category: model.CategoryAcademicLeadership},
			{Phrase: "ruta", Category: model.CategoryAcademicLeadership},
			{Phrase: "kaela", Category: model.CategoryAcademicLeadership},
			{Phrase: "etelela pele", Category: model.CategoryAcademicLeadership},
			{Phrase: "laola", Category: model.CategoryAcademicLeadership},
			{Phrase: "aga ntlo", Category: model.CategoryPhysicalLabor},
			{Phrase: "lema", Category: model.CategoryPhysicalLabor},
			{Phrase: "tlhaba", Category: model.CategoryPhysicalLabor},
			{Phrase: "tshwara dipitse", Category: model.CategoryPhysicalLabor},
		},
		Occupations: []OccupationMapping{
			{GenderedForm: "mosadi-ngaka", NeutralForm: "ngaka"},
			{GenderedForm: "monna-ngaka", NeutralForm: "ngaka"},
			{GenderedForm: "mosadi mooki", NeutralForm: "mooki"},
			{GenderedForm: "monna mooki", NeutralForm: "mooki"},
		},
		Pejoratives: []string{"isiwula", "mbumbulu", "ohlwempu", "segafi", "sematla", "setlaela"},
		GeneralizationMarkers: []string{
			"ka metlha", "ka gale", "ga go na", "ga ba kgone", "ka tlhago", "fela", "tsotlhe",
		},
		ContrastiveConjunctions: []string{"fa", "le fa", "mme", "fela"},
		InfantilizingPatterns: []string{
			`basetsana\s+ba\s+bagolo`,
			`mosetsana\s+yo\s+mogolo`,
		},
		Pronominalization: []PronominalizationGroup{
			{Theme: "wealth", Terms: []string{"khumoetsile", "khumo", "humo"}},
			{Theme: "leadership", Terms: []string{"kgosietsile", "kgosi", "morena"}},
			{Theme: "marriage", Terms: []string{"lobola", "magadi", "bogadi", "lerapo"}},
		},
		ImplicitPatterns: []string{
			`\b(kgona|go kgona)\s+\w+`,
			`\b(ba kgona|ha ba kgone)`,
		},
		NounClassPrefixes: []string{"mo-", "ba-", "le-", "ma-", "se-", "di-", "n-", "bo-"},
		VerbPrefixes:      []string{"o-", "ba-", "a-", "e-", "ke-", "re-", "lo-"},
		FunctionWords: []string{
			"ke", "ba", "o a", "ga", "le", "ka", "mo", "wa", "fa", "kgotsa", "gore", "fela",
		},
	}
}

func defaultIsiZulu() *LanguageLexicon {
	return &LanguageLexicon{
		Nouns: []GenderedTerm{
			{Word: "ubaba", Gender: model.GenderMale, Gloss: "father"},
			{Word: "umfana", Gender: model.GenderMale, Gloss: "boy"},
			{Word: "indoda", Gender: model.GenderMale, Gloss: "man"},
			{Word: "wesilisa", Gender: model.GenderMale, Gloss: "male"},
			{Word: "owesilisa", Gender: model.GenderMale, Gloss: "a male"},
			{Word: "umkhwenyana", Gender: model.GenderMale, Gloss: "groom/son-in-law"},
			{Word: "abafana", Gender: model.GenderMale, Gloss: "boys"},
			{Word: "amadoda", Gender: model.GenderMale, Gloss: "men"},
			{Word: "umfowethu", Gender: model.GenderMale, Gloss: "brother"},
			{Word: "bhuti", Gender: model.GenderMale, Gloss: "brother"},
			{Word: "malume", Gender: model.GenderMale, Gloss: "uncle"},
			{Word: "umama", Gender: model.GenderFemale, Gloss: "mother"},
			{Word: "intombazane", Gender: model.GenderFemale, Gloss: "girl"},
			{Word: "umfazi", Gender: model.GenderFemale, Gloss: "woman"},
			{Word: "wesifazane", Gender: model.GenderFemale, Gloss: "female"},
			{Word: "owesifazane", Gender: model.GenderFemale, Gloss: "a female"},
			{Word: "ugogo", Gender: model.GenderFemale, Gloss: "grandmother"},
			{Word: "amantombazane", Gender: model.GenderFemale, Gloss: "girls"},
			{Word: "abesifazane", Gender: model.GenderFemale, Gloss: "women"},
			{Word: "udadewethu", Gender: model.GenderFemale, Gloss: "sister"},
			{Word: "sisi", Gender: model.GenderFemale, Gloss: "sister"},
			{Word: "anti", Gender: model.GenderFemale, Gloss: "aunt"},
		},
		Titles: []TitleTerm{
			{Word: "mnumzane", Gender: model.GenderMale},
			{Word: "baba", Gender: model.GenderMale},
			{Word: "u-rra", Gender: model.GenderMale},
			{Word: "u-ngaka", Gender: model.GenderMale},
			{Word: "u-porofesa", Gender: model.GenderMale},
			{Word: "nkosikazi", Gender: model.GenderFemale},
			{Word: "nkosazana", Gender: model.GenderFemale},
			{Word: "mama", Gender: model.GenderFemale},
			{Word: "u-mma", Gender: model.GenderFemale},
		},
		Neutral: NeutralTerms{
			Singular: "umuntu",
			Plural:   "abantu",
			Everyone: "wonke umuntu",
		},
		Actions: []ActionPhrase{
			{Phrase: "pheka", Category: model.CategoryDomestic},
			{Phrase: "hlabela", Category: model.CategoryDomestic},
			{Phrase: "geza izitsha", Category: model.CategoryDomestic},
			{Phrase: "hlanza indlu", Category: model.CategoryDomestic},
			{Phrase: "washa izingubo", Category: model.CategoryDomestic},
			{Phrase: "funda", Category: model.CategoryAcademicLeadership},
			{Phrase: "funda incwadi", Category: model.CategoryAcademicLeadership},
			{Phrase: "fundisa", Category: model.CategoryAcademicLeadership},
			{Phrase: "hola", Category: model.CategoryAcademicLeadership},
			{Phrase: "qondisa", Category: model.CategoryAcademicLeadership},
			{Phrase: "phatha", Category: model.CategoryAcademicLeadership},
			{Phrase: "akha indlu", Category: model.CategoryPhysicalLabor},
			{Phrase: "lima", Category: model.CategoryPhysicalLabor},
			{Phrase: "hlaba", Category: model.CategoryPhysicalLabor},
			{Phrase: "gada izinkomo", Category: model.CategoryPhysicalLabor},
		},
		Occupations: []OccupationMapping{
			{GenderedForm: "umama udokotela", NeutralForm: "udokotela"},
			{GenderedForm: "ubaba udokotela", NeutralForm: "udokotela"},
			{GenderedForm: "umama unesi", NeutralForm: "unesi"},
			{GenderedForm: "ubaba unesi", NeutralForm: "unesi"},
			{GenderedForm: "wesifazane umhlengikazi", NeutralForm: "umhlengikazi"},
			{GenderedForm: "wesilisa umshushisi", NeutralForm: "umshushisi"},
		},
		Pejoratives: []string{
			"isiwula", "isigebengu", "mbumbulu", "ohlwempu", "ubunuku", "isishimane", "isidididi",
			"ukuqoqoza", "ongenamqondo", "ongemthetho", "isithunzi",
		},
		GeneralizationMarkers: []string{
			"njalo", "ngaso sonke isikhathi", "abakwazi", "ngokwemvelo", "kuphela", "bonke",
		},
		ContrastiveConjunctions: []string{"uma", "kanti", "kodwa", "ngesikhathi"},
		InfantilizingPatterns: []string{
			`amantombazane\s+amadala`,
			`intombazane\s+endala`,
		},
		Pronominalization: []PronominalizationGroup{
			{Theme: "wealth", Terms: []string{"khumo", "humo"}},
			{Theme: "leadership", Terms: []string{"kgosi", "morena"}},
			{Theme: "marriage", Terms: []string{"lobola", "magadi", "bogadi"}},
		},
		ImplicitPatterns: []string{
			`\b(akakwazi|uyakwazi)\s+\w+`,
		},
		NounClassPrefixes: []string{"um-", "aba-", "u-", "o-", "isi-", "izi-", "in-", "izin-", "ama-"},
		VerbPrefixes:      []string{"u-", "ba-", "a-", "i-", "ngi-", "si-", "ni-"},
		FunctionWords: []string{
			"ngi", "u", "ba", "uma", "ukuthi", "futhi", "kodwa", "noma", "yini", "kanjani",
		},
	}
}

func defaultNames() []NamedEntity {
	return []NamedEntity{
		{Name: "thandi", Gender: model.GenderFemale},
		{Name: "lerato", Gender: model.GenderFemale},
		{Name: "palesa", Gender: model.GenderFemale},
		{Name: "thabo", Gender: model.GenderMale},
		{Name: "mpho", Gender: model.GenderMale},
		{Name: "kabelo", Gender: model.GenderMale},
	}
}
