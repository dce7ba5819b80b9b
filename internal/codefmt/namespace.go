package codefmt

import (
	"go/token"
	"go/types"
	"iter"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS is the set of identifiers taken in a scope of generated code.
type NS map[string]struct{}

// NewNS creates a namespace where the names declared in scope are taken.
func NewNS(scope *types.Scope) NS {
	ns := make(NS, scope.Len())
	for _, name := range scope.Names() {
		ns[name] = struct{}{}
	}
	return ns
}

// Reserve takes the name. It returns false if the name was already taken.
func (ns NS) Reserve(name string) bool {
	if _, taken := ns[name]; taken {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Name takes an identifier made from hint and returns it. A number is appended
// when the identifier is a keyword or already taken. A nil NS takes nothing.
func (ns NS) Name(hint string) string {
	for candidate := range DisambiguateName(NormalizeName(hint)) {
		if token.IsKeyword(candidate) {
			continue
		}
		if ns == nil || ns.Reserve(candidate) {
			return candidate
		}
	}
	panic("unreachable")
}

var title = cases.Title(language.Und, cases.NoLower)

// NormalizeName turns a phrase into a lower camel case identifier, such as
// "shape ordinal" into "shapeOrdinal". Panics if name is empty.
func NormalizeName(name string) string {
	if name == "" {
		panic("codefmt: empty name")
	}

	words := strings.FieldsFunc(name, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i := 1; i < len(words); i++ {
		words[i] = title.String(words[i])
	}
	return strings.Join(words, "")
}

// DisambiguateName yields name and then numbered alternatives of it: "in",
// "in2", "in3" and so on. A name ending with a digit is separated from the
// number by an underscore, such as "answer42_2".
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("codefmt: empty name")
	}

	sep := ""
	if last := name[len(name)-1]; '0' <= last && last <= '9' {
		sep = "_"
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		for n := 2; yield(name + sep + strconv.Itoa(n)); n++ {
		}
	}
}
