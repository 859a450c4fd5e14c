package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document keys modeled by this schema. Everything else is pass-through.
const (
	keyExclude = "exclude"
	keyRepos   = "repos"
	keyRepo    = "repo"
	keyRev     = "rev"
	keyHooks   = "hooks"
	keyID      = "id"
	keyArgs    = "args"
	keyDeps    = "additional_dependencies"
	keyLangVer = "language_version"
)

// UnmarshalYAML decodes the document root, splitting keys into modeled
// fields and pass-through extras.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	return eachPair(value, "document", func(key string, val *yaml.Node) error {
		switch key {
		case keyExclude:
			return decodeOptionalScalar(val, &d.Exclude, keyExclude)
		case keyRepos:
			if err := val.Decode(&d.Repos); err != nil {
				return err
			}
		default:
			d.Extra = append(d.Extra, Field{Key: key, Value: resolveAliases(val)})
		}
		return nil
	})
}

// MarshalYAML emits modeled keys in schema order followed by pass-through
// extras in their original order.
func (d Document) MarshalYAML() (any, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	if d.Exclude != nil {
		appendPair(m, keyExclude, scalarNode(*d.Exclude))
	}
	if d.Repos != nil {
		repos, err := encodeNode(d.Repos)
		if err != nil {
			return nil, err
		}
		appendPair(m, keyRepos, repos)
	}
	appendExtras(m, d.Extra)
	return m, nil
}

// UnmarshalYAML decodes one repository entry.
func (r *Repo) UnmarshalYAML(value *yaml.Node) error {
	return eachPair(value, "repo entry", func(key string, val *yaml.Node) error {
		switch key {
		case keyRepo:
			return val.Decode(&r.Repo)
		case keyRev:
			if err := val.Decode(&r.Rev); err != nil {
				return err
			}
			r.revEmpty = r.Rev == ""
		case keyHooks:
			return val.Decode(&r.Hooks)
		default:
			r.Extra = append(r.Extra, Field{Key: key, Value: resolveAliases(val)})
		}
		return nil
	})
}

// MarshalYAML emits a repository entry. Rev is omitted when absent so that
// local/meta entries round-trip without gaining a rev key; an explicitly
// empty rev keeps its key.
func (r Repo) MarshalYAML() (any, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(m, keyRepo, scalarNode(r.Repo))
	if r.Rev != "" || r.revEmpty {
		appendPair(m, keyRev, scalarNode(r.Rev))
	}
	if r.Hooks != nil {
		hooks, err := encodeNode(r.Hooks)
		if err != nil {
			return nil, err
		}
		appendPair(m, keyHooks, hooks)
	}
	appendExtras(m, r.Extra)
	return m, nil
}

// UnmarshalYAML decodes one hook activation. Optional keys decode into
// pointers so absence stays distinguishable from an empty value.
func (h *Hook) UnmarshalYAML(value *yaml.Node) error {
	return eachPair(value, "hook", func(key string, val *yaml.Node) error {
		switch key {
		case keyID:
			return val.Decode(&h.ID)
		case keyArgs:
			return decodeOptionalList(val, &h.Args, keyArgs)
		case keyDeps:
			return decodeOptionalList(val, &h.AdditionalDependencies, keyDeps)
		case keyLangVer:
			return decodeOptionalScalar(val, &h.LanguageVersion, keyLangVer)
		default:
			h.Extra = append(h.Extra, Field{Key: key, Value: resolveAliases(val)})
		}
		return nil
	})
}

// MarshalYAML emits a hook activation, keeping absent optional keys absent.
func (h Hook) MarshalYAML() (any, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	appendPair(m, keyID, scalarNode(h.ID))
	if h.Args != nil {
		args, err := encodeNode(*h.Args)
		if err != nil {
			return nil, err
		}
		appendPair(m, keyArgs, args)
	}
	if h.AdditionalDependencies != nil {
		deps, err := encodeNode(*h.AdditionalDependencies)
		if err != nil {
			return nil, err
		}
		appendPair(m, keyDeps, deps)
	}
	if h.LanguageVersion != nil {
		appendPair(m, keyLangVer, scalarNode(*h.LanguageVersion))
	}
	appendExtras(m, h.Extra)
	return m, nil
}

// eachPair walks the key/value pairs of a mapping node, resolving aliases
// first. Returns a parse error naming the construct when the node is not a
// mapping.
func eachPair(value *yaml.Node, what string, fn func(key string, val *yaml.Node) error) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("config: line %d: %s must be a mapping", value.Line, what)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key string
		if err := value.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("config: line %d: %s key: %w", value.Content[i].Line, what, err)
		}
		if err := fn(key, value.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// decodeOptionalScalar decodes a string value into a presence pointer.
func decodeOptionalScalar(val *yaml.Node, dst **string, key string) error {
	var s string
	if err := val.Decode(&s); err != nil {
		return fmt.Errorf("config: line %d: %s: %w", val.Line, key, err)
	}
	*dst = &s
	return nil
}

// decodeOptionalList decodes a string sequence into a presence pointer.
// An empty sequence yields a non-nil pointer to an empty list.
func decodeOptionalList(val *yaml.Node, dst **[]string, key string) error {
	list := []string{}
	if err := val.Decode(&list); err != nil {
		return fmt.Errorf("config: line %d: %s: %w", val.Line, key, err)
	}
	*dst = &list
	return nil
}

// resolveAliases returns a deep copy of n with alias nodes replaced by their
// targets and anchor names stripped. Pass-through nodes are re-emitted next
// to regenerated modeled nodes, so an anchor a pass-through alias refers to
// may no longer exist in the output tree.
func resolveAliases(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return resolveAliases(n.Alias)
	}

	out := *n
	out.Anchor = ""
	out.Alias = nil
	if len(n.Content) > 0 {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = resolveAliases(c)
		}
	}
	return &out
}

// scalarNode builds a plain string scalar.
func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// encodeNode marshals v into a fresh node, honoring custom marshalers.
func encodeNode(v any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

// appendPair appends one key/value pair to a mapping node.
func appendPair(m *yaml.Node, key string, val *yaml.Node) {
	m.Content = append(m.Content, scalarNode(key), val)
}

// appendExtras re-emits pass-through fields in their original order.
func appendExtras(m *yaml.Node, extra []Field) {
	for _, f := range extra {
		appendPair(m, f.Key, f.Value)
	}
}
