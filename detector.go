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

// DefaultConfidenceThreshold is the threshold callers use absent a more
// specific requirement, matching the teacher's own
// licenseclassifier.DefaultConfidenceThreshold.
const DefaultConfidenceThreshold = 0.8

// Corpus is the ordered collection of reference licenses loaded from disk,
// immutable after construction and safe to share read-only across any
// number of concurrent Detect calls.
type Corpus struct {
	licenses []*License
}

// NewCorpus freezes licenses into a Corpus, sorted by identifier. It does
// not itself read from disk; that is the external loader's job, see
// corpus.Load.
func NewCorpus(licenses []*License) *Corpus {
	sorted := make([]*License, len(licenses))
	copy(sorted, licenses)
	sortLicensesByIdentifier(sorted)
	return &Corpus{licenses: sorted}
}

// Len reports how many reference licenses the corpus holds.
func (c *Corpus) Len() int { return len(c.licenses) }

// Detect reports the license matches found in text: detect(text, threshold)
// -> ordered list of LicenseMatch. threshold must be in (0, 1]; out-of-range
// values are rejected with ErrInvalidArgument rather than silently clamped,
// so a caller is never handed a result computed against a different
// threshold than it asked for. A nil or empty corpus is likewise rejected:
// it can never produce a match.
func (c *Corpus) Detect(text string, threshold float64) ([]*LicenseMatch, error) {
	if threshold <= 0 || threshold > 1 {
		return nil, invalidArgument("threshold %v out of range (0, 1]", threshold)
	}
	if c == nil || len(c.licenses) == 0 {
		return nil, invalidArgument("corpus is empty")
	}

	unknown := Tokenize(text)
	if len(unknown) == 0 {
		return nil, nil
	}

	granularity := computeGranularity(threshold)
	indexed := make([]*IndexedLicense, len(c.licenses))
	for i, lic := range c.licenses {
		indexed[i] = indexLicense(lic, granularity)
	}

	candidates := selectCandidates(unknown, indexed, threshold)

	var matches []*LicenseMatch
	for _, cand := range candidates {
		if m := alignAndScore(cand, unknown, cand.license.Granularity, threshold); m != nil {
			matches = append(matches, m)
		}
	}

	return arbitrate(matches), nil
}

// sortLicensesByIdentifier sorts in place by Identifier, ascending.
func sortLicensesByIdentifier(licenses []*License) {
	sort.Slice(licenses, func(i, j int) bool {
		return licenses[i].Identifier < licenses[j].Identifier
	})
}
