// Package header maps a sheet's actual column headers to semantic roles.
// Headers are never fixed: each uploaded sheet defines its own set, so every
// lookup goes through synonym matching on normalized header text. Absence is
// signaled with ok=false and is never an error; downstream logic skips the
// derived value instead of failing.
package header

import (
	"strings"

	"github.com/lallafm1984/wil-store/internal/config"
	"github.com/lallafm1984/wil-store/internal/normalize"
	"github.com/lallafm1984/wil-store/internal/sheet"
)

// Resolve returns the first original header whose normalized form equals a
// synonym, trying synonyms in order. Earlier synonyms take priority; this
// tie-break decides which of several plausible columns wins and is relied
// on by callers.
func Resolve(headers []string, synonyms []string) (string, bool) {
	if len(headers) == 0 {
		return "", false
	}
	normalized := make(map[string]string, len(headers))
	for _, h := range headers {
		n := normalize.Normalize(h)
		if _, seen := normalized[n]; !seen {
			normalized[n] = h
		}
	}
	for _, syn := range synonyms {
		if h, ok := normalized[normalize.Normalize(syn)]; ok {
			return h, true
		}
	}
	return "", false
}

// ResolveContains returns the first header whose lower-cased text contains
// any of the given substrings, trying substrings in order. Settlement
// exports embed variable suffixes in their headers ("매출금액(배송비포함)"),
// so exact synonym matching does not apply to them.
func ResolveContains(headers []string, substrings []string) (string, bool) {
	for _, sub := range substrings {
		lower := strings.ToLower(sub)
		for _, h := range headers {
			if strings.Contains(strings.ToLower(h), lower) {
				return h, true
			}
		}
	}
	return "", false
}

// DetectJoinKey picks the column used to match rows between two sheets.
// Candidate synonym groups are tried in order; a group wins only when both
// sides resolve a header from it, and the base-side header is returned.
// If no group matches, any header whose normalized text is identical on
// both sides is used; failing that, the first base header unconditionally.
// The fallback chain determines whether a merge silently joins on the wrong
// column, so its order must not change.
func DetectJoinKey(baseHeaders, sourceHeaders []string, groups [][]string) (string, bool) {
	if len(baseHeaders) == 0 {
		return "", false
	}
	for _, group := range groups {
		b, bok := Resolve(baseHeaders, group)
		_, sok := Resolve(sourceHeaders, group)
		if bok && sok {
			return b, true
		}
	}
	baseNorm := make(map[string]string, len(baseHeaders))
	for _, h := range baseHeaders {
		n := normalize.Normalize(h)
		if _, seen := baseNorm[n]; !seen {
			baseNorm[n] = h
		}
	}
	for _, sh := range sourceHeaders {
		if match, ok := baseNorm[normalize.Normalize(sh)]; ok {
			return match, true
		}
	}
	return baseHeaders[0], true
}

// MergeMapping relates a base sheet's columns to an overlay sheet's columns
// for the inventory merge. It is computed once per header-set pair and must
// be recomputed whenever either header set changes.
type MergeMapping struct {
	JoinKey      string
	BaseQuantity string
	BaseLocation string
	BaseVendor   string

	// SourceQuantity and SourceLocation are the generic overlay columns,
	// used when no vendor segment applies or a segment's own columns are
	// missing from the overlay.
	SourceQuantity string
	SourceLocation string

	Segments []SegmentMapping
}

// SegmentMapping is the resolved overlay columns of one vendor segment.
// Empty strings mean the overlay does not carry that segment's column.
type SegmentMapping struct {
	Vendor         string
	SourceQuantity string
	SourceLocation string
}

// ComputeFieldMapping resolves every column the merge engine needs. When
// the overlay lacks a vendor-specific quantity or location header, a source
// header spelled exactly like the resolved base header is accepted instead
// (same-schema passthrough).
func ComputeFieldMapping(baseHeaders, sourceHeaders []string, mc config.MergeColumns, groups [][]string) MergeMapping {
	m := MergeMapping{}
	m.BaseQuantity, _ = Resolve(baseHeaders, mc.BaseQuantity)
	m.BaseLocation, _ = Resolve(baseHeaders, mc.BaseLocation)
	m.BaseVendor, _ = Resolve(baseHeaders, mc.BaseVendor)
	m.SourceQuantity, _ = Resolve(sourceHeaders, mc.SourceQuantity)
	m.SourceLocation, _ = Resolve(sourceHeaders, mc.SourceLocation)

	for _, seg := range mc.Segments {
		sm := SegmentMapping{Vendor: seg.Vendor}
		sm.SourceQuantity, _ = Resolve(sourceHeaders, seg.Quantity)
		sm.SourceLocation, _ = Resolve(sourceHeaders, seg.Location)
		m.Segments = append(m.Segments, sm)
	}

	if m.SourceQuantity == "" && m.BaseQuantity != "" {
		m.SourceQuantity, _ = Resolve(sourceHeaders, []string{m.BaseQuantity})
	}
	if m.SourceLocation == "" && m.BaseLocation != "" {
		m.SourceLocation, _ = Resolve(sourceHeaders, []string{m.BaseLocation})
	}

	m.JoinKey, _ = DetectJoinKey(baseHeaders, sourceHeaders, groups)
	return m
}

// SourceFieldsFor picks the overlay quantity and location columns for one
// base row, conditioned on the row's vendor value. A row whose vendor
// matches a segment prefers that segment's columns, then the generic
// columns, then the remaining segments' columns in configuration order.
// Rows matching no segment start from the generic columns.
func (m MergeMapping) SourceFieldsFor(row sheet.Row) (qty, loc string) {
	vendor := ""
	if m.BaseVendor != "" {
		vendor = normalize.Normalize(row[m.BaseVendor])
	}

	matched := -1
	for i, seg := range m.Segments {
		if vendor != "" && vendor == normalize.Normalize(seg.Vendor) {
			matched = i
			break
		}
	}

	var qtyCandidates, locCandidates []string
	if matched >= 0 {
		qtyCandidates = append(qtyCandidates, m.Segments[matched].SourceQuantity)
		locCandidates = append(locCandidates, m.Segments[matched].SourceLocation)
	}
	qtyCandidates = append(qtyCandidates, m.SourceQuantity)
	locCandidates = append(locCandidates, m.SourceLocation)
	for i, seg := range m.Segments {
		if i == matched {
			continue
		}
		qtyCandidates = append(qtyCandidates, seg.SourceQuantity)
		locCandidates = append(locCandidates, seg.SourceLocation)
	}

	return firstNonEmpty(qtyCandidates), firstNonEmpty(locCandidates)
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
