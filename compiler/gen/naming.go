package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// rules is the shared inflection ruleset used for pluralizing the
// results list field.
var rules = ruleset()

// acronyms are rendered fully upper-cased in Pascal and camel names, so
// "user_id" becomes "UserID" rather than "UserId".
var acronyms = map[string]bool{
	"API":  true,
	"HTTP": true,
	"ID":   true,
	"JSON": true,
	"SQL":  true,
	"UUID": true,
	"URL":  true,
}

func ruleset() *inflect.Ruleset {
	r := inflect.NewDefaultRuleset()
	for a := range acronyms {
		r.AddAcronym(a)
	}
	return r
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// pascal converts a snake_case identifier to PascalCase. cases.Title
// handles the per-word capitalization; a Caser is stateful, so each call
// creates its own.
func pascal(s string) string {
	title := cases.Title(language.English)
	words := strings.FieldsFunc(s, isSeparator)
	for i, w := range words {
		if u := strings.ToUpper(w); acronyms[u] {
			words[i] = u
			continue
		}
		words[i] = title.String(w)
	}
	return strings.Join(words, "")
}

// camel converts a snake_case identifier to camelCase. The first word
// stays lower even when it is an acronym, matching GraphQL field
// conventions.
func camel(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 0 {
		return ""
	}
	head := strings.ToLower(words[0])
	return head + pascal(strings.Join(words[1:], "_"))
}

// plural pluralizes the last word of an identifier: "user" becomes
// "users", "category" becomes "categories".
func plural(s string) string {
	return rules.Pluralize(s)
}

// Names lists the GraphQL identifiers generated for one model base
// name. Callers wiring resolvers or gqlgen bindings by hand can derive
// the names without constructing a Type.
type Names struct {
	// Type is the Pascal base name, e.g. "User".
	Type string
	// Fields is the name of the queryable fields type, e.g. "UserFields".
	Fields string
	// Results is the name of the results wrapper, e.g. "UserResults".
	Results string
	// Filter is the name of the filter input, e.g. "UserFilter".
	Filter string
	// List is the name of the results list field, e.g. "users".
	List string
}

// NamesOf derives the generated identifiers of a model base name.
func NamesOf(base string) Names {
	p := pascal(base)
	return Names{
		Type:    p,
		Fields:  p + "Fields",
		Results: p + "Results",
		Filter:  p + "Filter",
		List:    plural(camel(base)),
	}
}

// validName reports if s is a legal GraphQL type name.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
