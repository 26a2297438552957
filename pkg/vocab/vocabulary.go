// Package vocab maps tokens and labels to integer ids, partitioned into
// named namespaces so word tokens and label sets index independently.
package vocab

import "strings"

const (
	PaddingToken = "@@PADDING@@"
	OOVToken     = "@@UNKNOWN@@"

	PaddingID = 0
	OOVID     = 1

	DefaultTokenNamespace = "tokens"
)

// Counter accumulates per-namespace token counts before a vocabulary is
// built.
type Counter map[string]map[string]int

func (c Counter) Add(namespace, token string) {
	ns, ok := c[namespace]
	if !ok {
		ns = make(map[string]int)
		c[namespace] = ns
	}
	ns[token]++
}

type namespace struct {
	tokenToID map[string]int
	idToToken []string
	padded    bool
}

// Vocabulary holds token↔id mappings per namespace. Token namespaces
// reserve id 0 for padding and id 1 for out-of-vocabulary tokens; label
// namespaces (suffix "labels" or "tags", and "multisentence") do not.
type Vocabulary struct {
	namespaces map[string]*namespace
}

func New() *Vocabulary {
	return &Vocabulary{namespaces: make(map[string]*namespace)}
}

func isPaddedNamespace(name string) bool {
	if name == "multisentence" {
		return false
	}
	return !strings.HasSuffix(name, "labels") && !strings.HasSuffix(name, "tags")
}

func (v *Vocabulary) ns(name string) *namespace {
	ns, ok := v.namespaces[name]
	if !ok {
		ns = &namespace{tokenToID: make(map[string]int), padded: isPaddedNamespace(name)}
		if ns.padded {
			ns.idToToken = []string{PaddingToken, OOVToken}
			ns.tokenToID[PaddingToken] = PaddingID
			ns.tokenToID[OOVToken] = OOVID
		}
		v.namespaces[name] = ns
	}
	return ns
}

// AddToken inserts token into a namespace and returns its id. Adding an
// existing token is a no-op returning the existing id.
func (v *Vocabulary) AddToken(name, token string) int {
	ns := v.ns(name)
	if id, ok := ns.tokenToID[token]; ok {
		return id
	}
	id := len(ns.idToToken)
	ns.idToToken = append(ns.idToToken, token)
	ns.tokenToID[token] = id
	return id
}

// ID resolves a token to its id. Unknown tokens map to the OOV id in padded
// namespaces; in label namespaces the second return is false.
func (v *Vocabulary) ID(name, token string) (int, bool) {
	ns := v.ns(name)
	if id, ok := ns.tokenToID[token]; ok {
		return id, true
	}
	if ns.padded {
		return OOVID, true
	}
	return 0, false
}

// Token resolves an id back to its token text.
func (v *Vocabulary) Token(name string, id int) (string, bool) {
	ns := v.ns(name)
	if id < 0 || id >= len(ns.idToToken) {
		return "", false
	}
	return ns.idToToken[id], true
}

// Size returns the number of entries in a namespace, padding and OOV
// included.
func (v *Vocabulary) Size(name string) int {
	return len(v.ns(name).idToToken)
}

// Namespaces lists the namespaces present.
func (v *Vocabulary) Namespaces() []string {
	names := make([]string, 0, len(v.namespaces))
	for name := range v.namespaces {
		names = append(names, name)
	}
	return names
}

// FromCounter builds a vocabulary from accumulated counts. Insertion order
// is deterministic: tokens sort by descending count, ties lexicographically.
func FromCounter(c Counter) *Vocabulary {
	v := New()
	for name, counts := range c {
		for _, token := range sortedByCount(counts) {
			v.AddToken(name, token)
		}
	}
	return v
}
