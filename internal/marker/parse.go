package marker

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"clone-generator/internal/match"
)

// TagKey is the struct tag key holding field markers.
const TagKey = "clone"

// docPrefix starts a marker line in a doc comment.
const docPrefix = "+"

// ParseDoc resolves type-level markers from doc comment lines.
// Lines that do not start with "+" are prose and ignored. Markers of other
// tools (+kubebuilder:..., +genclient) are ignored unless they look like a
// misspelled clone marker.
func (r *Registry) ParseDoc(lines []string) (Set, []Problem) {
	set := make(Set)

	var problems []Problem

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, docPrefix) {
			continue
		}

		token := strings.Fields(line[len(docPrefix):])
		if len(token) == 0 {
			continue
		}

		name, rawOpts, _ := strings.Cut(token[0], ":")

		def, ok := r.Lookup(TargetType, name)
		if !ok {
			if p, suspicious := r.unknownDocMarker(name); suspicious {
				problems = append(problems, p)
			}

			continue
		}

		m := set.Put(def.Kind)

		if rawOpts == "" {
			continue
		}

		for _, raw := range strings.Split(rawOpts, ",") {
			if p, bad := r.applyOption(def, m, TargetType, raw); bad {
				problems = append(problems, p)
			}
		}
	}

	return set, problems
}

// unknownDocMarker reports a "+name" line that is close to a known type marker.
func (r *Registry) unknownDocMarker(name string) (Problem, bool) {
	known := make([]string, 0, len(r.byName[TargetType]))
	for n := range r.byName[TargetType] {
		known = append(known, n)
	}

	suggestions := match.Suggest(name, known, 1)

	for _, n := range known {
		if len(suggestions) == 0 && strings.HasPrefix(name, n) {
			suggestions = []string{n}
		}
	}

	if len(suggestions) == 0 {
		return Problem{}, false
	}

	return Problem{
		Token:       docPrefix + name,
		Message:     fmt.Sprintf("unknown type marker %q", docPrefix+name),
		Suggestions: suggestions,
	}, true
}

// ParseTag resolves field-level markers from a struct tag.
// The clone tag is a comma separated list of marker names and options.
// An option implies the marker owning it, so `clone:"nodeep"` means
// `clone:"include,nodeep"`.
func (r *Registry) ParseTag(tag reflect.StructTag) (Set, []Problem) {
	set := make(Set)

	value, ok := tag.Lookup(TagKey)
	if !ok {
		return set, nil
	}

	var problems []Problem

	for _, raw := range strings.Split(value, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}

		if def, ok := r.Lookup(TargetField, token); ok {
			set.Put(def.Kind)
			continue
		}

		name, _, _ := strings.Cut(token, "=")

		ref, ok := r.byOption[TargetField][name]
		if !ok {
			problems = append(problems, Problem{
				Token:       token,
				Message:     fmt.Sprintf("unknown field marker %q", token),
				Suggestions: match.Suggest(name, r.Names(TargetField), 1),
			})

			continue
		}

		m := set.Put(ref.def.Kind)
		if p, bad := r.applyOption(ref.def, m, TargetField, token); bad {
			problems = append(problems, p)
		}
	}

	if set.Has(KindInclude) && set.Has(KindExclude) {
		problems = append(problems, Problem{
			Token:   value,
			Message: "field is both included and excluded; the selection mode decides which one applies",
		})
	}

	return set, problems
}

// applyOption parses "name" or "name=bool" and stores it on m.
func (r *Registry) applyOption(def Definition, m Marker, target Target, raw string) (Problem, bool) {
	raw = strings.TrimSpace(raw)
	name, rawValue, hasValue := strings.Cut(raw, "=")

	ref, ok := r.byOption[target][name]
	if !ok || !def.accepts(ref.option) {
		var known []string
		for _, opt := range def.Options {
			known = append(known, opt.String())
		}

		return Problem{
			Token:       raw,
			Message:     fmt.Sprintf("unknown option %q for marker %q", name, def.Name),
			Suggestions: match.Suggest(name, known, 1),
		}, true
	}

	value := true

	if hasValue {
		parsed, err := strconv.ParseBool(rawValue)
		if err != nil {
			return Problem{
				Token:   raw,
				Message: fmt.Sprintf("option %q expects a boolean, got %q", name, rawValue),
			}, true
		}

		value = parsed
	}

	m.Options[ref.option] = value

	return Problem{}, false
}
