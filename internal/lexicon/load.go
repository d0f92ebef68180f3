package lexicon

import (
	"fmt"
	"os"

	"github.com/ithute/ithute/internal/model"
	"gopkg.in/yaml.v3"
)

// Overlay file format. Every section is optional; a present section replaces
// the corresponding built-in table wholesale, absent sections keep defaults.
//
//	languages:
//	  setswana:
//	    nouns:
//	      - {word: monna, gender: male, gloss: man}
//	    pejoratives: [segafi, setlaela]
//	names:
//	  - {name: thandi, gender: female}
type overlayFile struct {
	Languages map[string]overlayLanguage `yaml:"languages"`
	Names     []overlayName              `yaml:"names"`
}

type overlayLanguage struct {
	Nouns                   []overlayNoun       `yaml:"nouns"`
	Titles                  []overlayTitle      `yaml:"titles"`
	Neutral                 *overlayNeutral     `yaml:"neutral"`
	Actions                 []overlayAction     `yaml:"actions"`
	Occupations             []overlayOccupation `yaml:"occupations"`
	Pejoratives             []string            `yaml:"pejoratives"`
	GeneralizationMarkers   []string            `yaml:"generalization_markers"`
	ContrastiveConjunctions []string            `yaml:"contrastive_conjunctions"`
	InfantilizingPatterns   []string            `yaml:"infantilizing_patterns"`
	Pronominalization       []overlayProGroup   `yaml:"pronominalization"`
	ImplicitPatterns        []string            `yaml:"implicit_patterns"`
}

type overlayNoun struct {
	Word   string `yaml:"word"`
	Gender string `yaml:"gender"`
	Gloss  string `yaml:"gloss"`
}

type overlayTitle struct {
	Word   string `yaml:"word"`
	Gender string `yaml:"gender"`
}

type overlayNeutral struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
	Everyone string `yaml:"everyone"`
}

type overlayAction struct {
	Phrase   string `yaml:"phrase"`
	Category string `yaml:"category"`
}

type overlayOccupation struct {
	Gendered string `yaml:"gendered"`
	Neutral  string `yaml:"neutral"`
}

type overlayProGroup struct {
	Theme string   `yaml:"theme"`
	Terms []string `yaml:"terms"`
}

type overlayName struct {
	Name   string `yaml:"name"`
	Gender string `yaml:"gender"`
}

func (s *Store) applyOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file overlayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for alias, src := range file.Languages {
		language, err := model.ParseLanguage(alias)
		if err != nil {
			return err
		}
		if err := s.languages[language].merge(&src); err != nil {
			return fmt.Errorf("%s: %w", alias, err)
		}
	}

	if file.Names != nil {
		names := make([]NamedEntity, 0, len(file.Names))
		for _, n := range file.Names {
			gender, err := parseGender(n.Gender)
			if err != nil {
				return fmt.Errorf("name %q: %w", n.Name, err)
			}
			names = append(names, NamedEntity{Name: n.Name, Gender: gender})
		}
		s.names = names
	}

	return nil
}

func (lex *LanguageLexicon) merge(src *overlayLanguage) error {
	if src.Nouns != nil {
		nouns := make([]GenderedTerm, 0, len(src.Nouns))
		for _, n := range src.Nouns {
			gender, err := parseGender(n.Gender)
			if err != nil {
				return fmt.Errorf("noun %q: %w", n.Word, err)
			}
			nouns = append(nouns, GenderedTerm{Word: n.Word, Gender: gender, Gloss: n.Gloss})
		}
		lex.Nouns = nouns
	}
	if src.Titles != nil {
		titles := make([]TitleTerm, 0, len(src.Titles))
		for _, t := range src.Titles {
			gender, err := parseGender(t.Gender)
			if err != nil {
				return fmt.Errorf("title %q: %w", t.Word, err)
			}
			titles = append(titles, TitleTerm{Word: t.Word, Gender: gender})
		}
		lex.Titles = titles
	}
	if src.Neutral != nil {
		lex.Neutral = NeutralTerms{
			Singular: src.Neutral.Singular,
			Plural:   src.Neutral.Plural,
			Everyone: src.Neutral.Everyone,
		}
	}
	if src.Actions != nil {
		actions := make([]ActionPhrase, 0, len(src.Actions))
		for _, a := range src.Actions {
			category, err := parseCategory(a.Category)
			if err != nil {
				return fmt.Errorf("action %q: %w", a.Phrase, err)
			}
			actions = append(actions, ActionPhrase{Phrase: a.Phrase, Category: category})
		}
		lex.Actions = actions
	}
	if src.Occupations != nil {
		occ := make([]OccupationMapping, 0, len(src.Occupations))
		for _, o := range src.Occupations {
			occ = append(occ, OccupationMapping{GenderedForm: o.Gendered, NeutralForm: o.Neutral})
		}
		lex.Occupations = occ
	}
	if src.Pejoratives != nil {
		lex.Pejoratives = src.Pejoratives
	}
	if src.GeneralizationMarkers != nil {
		lex.GeneralizationMarkers = src.GeneralizationMarkers
	}
	if src.ContrastiveConjunctions != nil {
		lex.ContrastiveConjunctions = src.ContrastiveConjunctions
	}
	if src.InfantilizingPatterns != nil {
		lex.InfantilizingPatterns = src.InfantilizingPatterns
	}
	if src.Pronominalization != nil {
		groups := make([]PronominalizationGroup, 0, len(src.Pronominalization))
		for _, g := range src.Pronominalization {
			groups = append(groups, PronominalizationGroup{Theme: g.Theme, Terms: g.Terms})
		}
		lex.Pronominalization = groups
	}
	if src.ImplicitPatterns != nil {
		lex.ImplicitPatterns = src.ImplicitPatterns
	}
	return nil
}

func parseGender(raw string) (model.Gender, error) {
	switch raw {
	case "male":
		return model.GenderMale, nil
	case "female":
		return model.GenderFemale, nil
	default:
		return "", fmt.Errorf("unknown gender %q", raw)
	}
}

func parseCategory(raw string) (model.ActionCategory, error) {
	switch raw {
	case "domestic":
		return model.CategoryDomestic, nil
	case "academic_leadership":
		return model.CategoryAcademicLeadership, nil
	case "physical_labor":
		return model.CategoryPhysicalLabor, nil
	default:
		return "", fmt.Errorf("unknown action category %q", raw)
	}
}
