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

// prefilterK is the coarse candidate-selection prefilter constant: a
// reference survives only if its anchor-normalised score is at least
// c * prefilterK.
const prefilterK = 0.5

// anchor pairs a matching n-gram position in the unknown stream with its
// position in a reference license.
type anchor struct {
	posInUnknown int
	posInLicense int
}

// candidate is one shortlisted reference together with the anchors that
// earned it a place on the shortlist.
type candidate struct {
	license *IndexedLicense
	anchors []anchor
}

// selectCandidates builds the unknown text's n-grams at the threshold's
// granularity, sweeps every corpus reference's checksumMap for hits, and
// retains references whose anchor count (normalised by the reference's
// token count) clears c * prefilterK.
func selectCandidates(unknown []Token, corpus []*IndexedLicense, c float64) []candidate {
	n := computeGranularity(c)
	unknownGrams := ngramsForTokens(unknown, n)
	// A reference shorter than n indexes itself as one degenerate, full-
	// length n-gram; matching it requires scanning the unknown text at that
	// same shorter width instead of at n, so those widths are computed
	// lazily and cached here rather than unconditionally up front.
	degenerateGrams := make(map[int][]NGram)

	var shortlist []candidate
	for _, lic := range corpus {
		grams := unknownGrams
		if lic.Granularity != n {
			g, ok := degenerateGrams[lic.Granularity]
			if !ok {
				g = ngramsForTokens(unknown, lic.Granularity)
				degenerateGrams[lic.Granularity] = g
			}
			grams = g
		}

		var anchors []anchor
		for _, ug := range grams {
			for _, lg := range lic.ChecksumMap[ug.Checksum] {
				anchors = append(anchors, anchor{posInUnknown: ug.Start, posInLicense: lg.Start})
			}
		}
		if len(anchors) == 0 {
			continue
		}
		score := float64(len(anchors)) / float64(len(lic.Tokens))
		if score >= c*prefilterK {
			shortlist = append(shortlist, candidate{license: lic, anchors: anchors})
		}
	}
	return shortlist
}

// ngramsForTokens builds the sliding-window n-grams for an arbitrary token
// stream at width n, using the same rule as indexLicense: a single
// degenerate n-gram when the stream is shorter than n, otherwise every
// window of width n.
func ngramsForTokens(tokens []Token, n int) []NGram {
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) < n {
		return []NGram{buildNGram(tokens, 0, len(tokens))}
	}
	last := len(tokens) - n
	grams := make([]NGram, 0, last+1)
	for i := 0; i <= last; i++ {
		grams = append(grams, buildNGram(tokens, i, i+n))
	}
	return grams
}
