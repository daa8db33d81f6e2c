// Copyright 2024 The licensefp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package classifier

// locateRegion derives the outermost (unknownRange, referenceRange) spanned
// by a candidate's anchors, then expands the unknown side conservatively by
// up to one reference-length to capture prefix/suffix drift the n-gram scan
// missed.
func locateRegion(c candidate, granularity, unknownLen int) (unknownRange, referenceRange Range) {
	refLen := len(c.license.Tokens)

	uMin, uMax := c.anchors[0].posInUnknown, c.anchors[0].posInUnknown+granularity
	rMin, rMax := c.anchors[0].posInLicense, c.anchors[0].posInLicense+granularity
	for _, a := range c.anchors[1:] {
		if a.posInUnknown < uMin {
			uMin = a.posInUnknown
		}
		if a.posInUnknown+granularity > uMax {
			uMax = a.posInUnknown + granularity
		}
		if a.posInLicense < rMin {
			rMin = a.posInLicense
		}
		if a.posInLicense+granularity > rMax {
			rMax = a.posInLicense + granularity
		}
	}
	if uMax > unknownLen {
		uMax = unknownLen
	}
	if rMax > refLen {
		rMax = refLen
	}

	uMin -= refLen
	if uMin < 0 {
		uMin = 0
	}
	uMax += refLen
	if uMax > unknownLen {
		uMax = unknownLen
	}

	return Range{Start: uMin, End: uMax}, Range{Start: rMin, End: rMax}
}

// alignAndScore diffs, trims, and scores one shortlisted candidate,
// emitting a LicenseMatch if it is accepted. It returns nil if the
// candidate's confidence falls below c or its diff introduces an
// unacceptable substitution (see unacceptableSubstitution).
func alignAndScore(c candidate, unknown []Token, granularity int, threshold float64) *LicenseMatch {
	id := c.license.Identifier
	unknownRange, referenceRange := locateRegion(c, granularity, len(unknown))
	if unknownRange.Start >= unknownRange.End || referenceRange.Start >= referenceRange.End {
		return nil
	}

	refSlice := c.license.Tokens[referenceRange.Start:referenceRange.End]
	unkSlice := unknown[unknownRange.Start:unknownRange.End]

	diffs := diffTokens(refSlice, unkSlice)
	start, end := trimDiffRange(diffs)
	diffRange := diffs[start:end]

	if len(diffRange) == 0 {
		return nil
	}
	if reason := unacceptableSubstitution(diffRange); reason != acceptable {
		if traceScoring(id) {
			Trace("%s: rejected, unacceptable substitution %d\n", id, reason)
		}
		return nil
	}

	e, m := countEqualAndEdits(diffRange)
	conf := confidence(e, m)
	if traceScoring(id) {
		Trace("%s: confidence %v (E=%d M=%d)\n", id, conf, e, m)
	}
	if conf < threshold {
		return nil
	}

	tokenStart, tokenEnd := unknownTokenBounds(diffs, start, end, unknownRange.Start)
	if tokenStart >= tokenEnd {
		return nil
	}

	matchType := MatchText
	if c.license.IsHeader {
		matchType = MatchHeader
	}
	match := &LicenseMatch{
		Identifier: c.license.Identifier,
		Confidence: conf,
		Diffs:      diffs,
		DiffRange:  Range{Start: start, End: end},
		TokenRange: Range{Start: tokenStart, End: tokenEnd},
		MatchType:  matchType,
	}
	match.rebuildFromTokenRange(unknown)
	return match
}

// unknownTokenBounds walks the diff list to find the index range, in the
// unknown stream, covered by diffs[start:end]. Only DiffEqual and
// DiffInsert entries consume unknown tokens; DiffDelete entries consume
// only reference tokens.
func unknownTokenBounds(diffs []Diff, start, end, unknownOffset int) (int, int) {
	pos := unknownOffset
	for i := 0; i < start; i++ {
		if diffs[i].Kind == DiffEqual || diffs[i].Kind == DiffInsert {
			pos += len(diffs[i].Tokens)
		}
	}
	rangeStart := pos
	for i := start; i < end; i++ {
		if diffs[i].Kind == DiffEqual || diffs[i].Kind == DiffInsert {
			pos += len(diffs[i].Tokens)
		}
	}
	return rangeStart, pos
}
