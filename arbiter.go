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

import "sort"

// duplicateOverlapEpsilon is the overlap fraction beyond which two
// same-identifier matches are considered duplicates and merged.
const duplicateOverlapEpsilon = 0.5

// arbitrate merges same-identifier duplicates (the AGPL-style
// with/without-tail rule), sorts by confidence then size, greedily drops
// cross-identifier overlaps, and re-sorts by start position.
func arbitrate(matches []*LicenseMatch) []*LicenseMatch {
	merged := mergeSameIdentifierDuplicates(matches)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Confidence != merged[j].Confidence {
			return merged[i].Confidence > merged[j].Confidence
		}
		return merged[i].TokensClaimed > merged[j].TokensClaimed
	})

	var accepted []*LicenseMatch
	for _, m := range merged {
		overlapsAccepted := false
		for _, a := range accepted {
			if m.TokenRange.Overlaps(a.TokenRange) {
				overlapsAccepted = true
				break
			}
		}
		if !overlapsAccepted {
			accepted = append(accepted, m)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].TokenRange.Start < accepted[j].TokenRange.Start
	})

	return accepted
}

// mergeSameIdentifierDuplicates implements step 1: two matches sharing an
// identifier whose ranges overlap by more than duplicateOverlapEpsilon of
// the shorter range are the same underlying hit (e.g. AGPL-3.0 matched both
// with and without its optional tail); keep only the one with the greater
// TokensClaimed.
func mergeSameIdentifierDuplicates(matches []*LicenseMatch) []*LicenseMatch {
	kept := make([]*LicenseMatch, 0, len(matches))
	discarded := make(map[int]bool)

	for i, current := range matches {
		if discarded[i] {
			continue
		}
		for j := i + 1; j < len(matches); j++ {
			if discarded[j] {
				continue
			}
			b := matches[j]
			if current.Identifier != b.Identifier {
				continue
			}
			if !significantOverlap(current.TokenRange, b.TokenRange) {
				continue
			}
			// b is absorbed into this chain either way; only the larger
			// of the two survives as the chain's representative.
			discarded[j] = true
			if b.TokensClaimed > current.TokensClaimed {
				current = b
			}
		}
		kept = append(kept, current)
	}
	return kept
}

// significantOverlap reports whether r1 and r2 overlap by more than
// duplicateOverlapEpsilon of the shorter range's length.
func significantOverlap(r1, r2 Range) bool {
	if !r1.Overlaps(r2) {
		return false
	}
	overlapStart := r1.Start
	if r2.Start > overlapStart {
		overlapStart = r2.Start
	}
	overlapEnd := r1.End
	if r2.End < overlapEnd {
		overlapEnd = r2.End
	}
	overlap := overlapEnd - overlapStart

	shorter := r1.End - r1.Start
	if other := r2.End - r2.Start; other < shorter {
		shorter = other
	}
	if shorter <= 0 {
		return false
	}
	return float64(overlap)/float64(shorter) > duplicateOverlapEpsilon
}
