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

import "testing"

func TestLocateRegionExpandsByReferenceLength(t *testing.T) {
	lic, err := ParseLicense("TEST", "one two three four five six seven eight nine ten")
	if err != nil {
		t.Fatalf("ParseLicense: %v", err)
	}
	idx := indexLicense(lic, 3)
	c := candidate{license: idx, anchors: []anchor{{posInUnknown: 20, posInLicense: 2}}}

	unknownRange, referenceRange := locateRegion(c, 3, 100)

	// refLen is 10; the anchor covers unknown [20, 23) and reference [2, 5),
	// then the unknown side is expanded outward by refLen on each side.
	if unknownRange.Start != 10 || unknownRange.End != 33 {
		t.Errorf("unknownRange = %+v, want {10 33}", unknownRange)
	}
	if referenceRange.Start != 2 || referenceRange.End != 5 {
		t.Errorf("referenceRange = %+v, want {2 5}", referenceRange)
	}
}

func TestLocateRegionClampsToBounds(t *testing.T) {
	lic, err := ParseLicense("TEST", "one two three four five")
	if err != nil {
		t.Fatalf("ParseLicense: %v", err)
	}
	idx := indexLicense(lic, 3)
	c := candidate{license: idx, anchors: []anchor{{posInUnknown: 0, posInLicense: 0}}}

	unknownRange, referenceRange := locateRegion(c, 3, 4)

	if unknownRange.Start != 0 {
		t.Errorf("unknownRange.Start = %d, want 0 (must not go negative)", unknownRange.Start)
	}
	if unknownRange.End > 4 {
		t.Errorf("unknownRange.End = %d, want <= 4 (must not exceed unknownLen)", unknownRange.End)
	}
	if referenceRange.End > len(lic.Tokens) {
		t.Errorf("referenceRange.End = %d, want <= %d", referenceRange.End, len(lic.Tokens))
	}
}

func TestLocateRegionMergesMultipleAnchors(t *testing.T) {
	lic, err := ParseLicense("TEST", "one two three four five six seven eight nine ten")
	if err != nil {
		t.Fatalf("ParseLicense: %v", err)
	}
	idx := indexLicense(lic, 2)
	c := candidate{license: idx, anchors: []anchor{
		{posInUnknown: 50, posInLicense: 0},
		{posInUnknown: 58, posInLicense: 8},
	}}

	_, referenceRange := locateRegion(c, 2, 200)

	if referenceRange.Start != 0 || referenceRange.End != 10 {
		t.Errorf("referenceRange = %+v, want {0 10} (outermost span of both anchors)", referenceRange)
	}
}

func TestUnknownTokenBoundsCountsOnlyEqualAndInsert(t *testing.T) {
	diffs := []Diff{
		{Kind: DiffInsert, Tokens: []string{"noise"}},       // index 0
		{Kind: DiffEqual, Tokens: []string{"the", "quick"}}, // index 1
		{Kind: DiffDelete, Tokens: []string{"brown"}},        // index 2: ref-only, no unknown tokens
		{Kind: DiffEqual, Tokens: []string{"fox"}},           // index 3
	}
	// diffRange [1, 4) covers the trimmed span; unknownOffset is where the
	// located region's unknown slice begins in the full unknown stream.
	start, end := unknownTokenBounds(diffs, 1, 4, 100)

	// diffs[0] (insert, 1 token) is before the range and still consumes an
	// unknown token, so the range should begin one past it.
	if start != 101 {
		t.Errorf("start = %d, want 101", start)
	}
	// Range [1,4) contributes 2 (equal) + 0 (delete, ref-only) + 1 (equal) = 3
	// unknown tokens.
	if end != 104 {
		t.Errorf("end = %d, want 104", end)
	}
}

func TestUnknownTokenBoundsEmptyRange(t *testing.T) {
	diffs := []Diff{
		{Kind: DiffEqual, Tokens: []string{"a"}},
	}
	start, end := unknownTokenBounds(diffs, 1, 1, 5)
	if start != end {
		t.Errorf("empty diff range should yield an empty token range, got [%d, %d)", start, end)
	}
}
