// Package filter narrows and orders a research catalog.
//
// Apply runs the stages in a fixed order, each one over the output of the
// previous: text search, field, tags, premium, then date ordering. It never
// mutates its input and always returns a fresh slice.
package filter

import (
	"slices"
	"strings"

	"github.com/researchnexus/nexus/internal/core/domain"
)

// Apply returns the records of catalog matching f, in catalog order unless
// f.Date asks for an upload-date ordering. The result is never nil.
func Apply(catalog []domain.Research, f domain.Filter) []domain.Research {
	out := make([]domain.Research, 0, len(catalog))
	term := strings.ToLower(f.Search)

	for _, r := range catalog {
		if term != "" && !matchesSearch(r, term) {
			continue
		}
		if f.Field != "" && r.Field != f.Field {
			continue
		}
		if len(f.Tags) > 0 && !hasAnyTag(r, f.Tags) {
			continue
		}
		if f.Premium != nil && r.IsPremium != *f.Premium {
			continue
		}
		out = append(out, r)
	}

	switch f.Date {
	case domain.DateNewest:
		slices.SortStableFunc(out, func(a, b domain.Research) int {
			return b.UploadDate.Compare(a.UploadDate)
		})
	case domain.DateOldest:
		slices.SortStableFunc(out, func(a, b domain.Research) int {
			return a.UploadDate.Compare(b.UploadDate)
		})
	}
	return out
}

// matchesSearch expects term to be lower-cased already.
func matchesSearch(r domain.Research, term string) bool {
	if containsFold(r.Title, term) || containsFold(r.Abstract, term) || containsFold(r.Author.Name, term) {
		return true
	}
	for _, tag := range r.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// hasAnyTag is an OR across wanted.
func hasAnyTag(r domain.Research, wanted []string) bool {
	for _, tag := range wanted {
		if r.HasTag(tag) {
			return true
		}
	}
	return false
}

// Facets lists the distinct fields in first-seen catalog order and the
// distinct tags sorted lexically.
func Facets(catalog []domain.Research) domain.Facets {
	fields := make([]string, 0)
	seenFields := make(map[string]struct{})
	tags := make([]string, 0)
	seenTags := make(map[string]struct{})

	for _, r := range catalog {
		if _, ok := seenFields[r.Field]; !ok {
			seenFields[r.Field] = struct{}{}
			fields = append(fields, r.Field)
		}
		for _, t := range r.Tags {
			if _, ok := seenTags[t]; !ok {
				seenTags[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	slices.Sort(tags)
	return domain.Facets{Fields: fields, Tags: tags}
}
