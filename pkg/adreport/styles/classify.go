package styles

import "fmt"

// Vocabulary maps qualitative labels to a role. Labels outside the map fall
// back to Default.
type Vocabulary struct {
	Labels  map[string]Role
	Default Role
}

// vocabularies are per table; they are not merged into one global rule.
var vocabularies = map[string]Vocabulary{
	// Ad placement invasiveness: low is good for the user.
	"invasion": {
		Labels: map[string]Role{
			"Baja":     RoleFavorable,
			"Muy Baja": RoleFavorable,
			"Media":    RoleNeutral,
		},
		Default: RoleUnfavorable,
	},
}

// HasVocabulary reports whether name is a known vocabulary.
func HasVocabulary(name string) bool {
	_, ok := vocabularies[name]
	return ok
}

// Classify returns the role of label under the named vocabulary.
func Classify(vocabulary, label string) (Role, error) {
	v, ok := vocabularies[vocabulary]
	if !ok {
		return "", fmt.Errorf("unknown vocabulary %q", vocabulary)
	}
	if r, ok := v.Labels[label]; ok {
		return r, nil
	}
	return v.Default, nil
}
