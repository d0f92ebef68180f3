package model

import "fmt"

// Language identifies one of the two supported languages.
type Language string

const (
	LangSetswana Language = "setswana"
	LangIsiZulu  Language = "isizulu"
)

// Languages lists the configured languages in scoring order. The language
// identifier resolves ties to the first entry.
var Languages = [2]Language{LangSetswana, LangIsiZulu}

// ParseLanguage normalizes a language alias to its internal value.
// Accepted aliases: tn, st, setswana for Setswana; zu, zulu, isizulu for
// isiZulu. An empty string is rejected; callers that want auto-detection
// must not call ParseLanguage at all.
func ParseLanguage(alias string) (Language, error) {
	switch alias {
	case "tn", "st", "setswana":
		return LangSetswana, nil
	case "zu", "zulu", "isizulu":
		return LangIsiZulu, nil
	default:
		return "", fmt.Errorf("%w: unknown language %q (expected tn, st, setswana, zu, zulu or isizulu)", ErrInvalidArgument, alias)
	}
}

func (l Language) String() string {
	return string(l)
}
