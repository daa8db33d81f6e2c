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

import (
	"hash/crc32"
	"testing"
)

func TestComputeGranularity(t *testing.T) {
	tests := []struct {
		c    float64
		want int
	}{
		{c: 1.0, want: 1},
		{c: 0.9, want: int(0.1 * baseWindow)},
		{c: 0.5, want: int(0.5 * baseWindow)},
	}
	for _, tt := range tests {
		if got := computeGranularity(tt.c); got != tt.want {
			t.Errorf("computeGranularity(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestIndexLicenseSlidingWindowCount(t *testing.T) {
	lic, err := ParseLicense("TEST", "one two three four five six seven eight nine ten")
	if err != nil {
		t.Fatalf("ParseLicense: %v", err)
	}
	const n = 3
	idx := indexLicense(lic, n)

	want := len(lic.Tokens) - n + 1
	if got := len(idx.NGrams); got != want {
		t.Errorf("len(NGrams) = %d, want %d", got, want)
	}
	for checksum, grams := range idx.ChecksumMap {
		if len(grams) == 0 {
			t.Errorf("checksumMap[%d] is empty", checksum)
		}
	}
}

func TestIndexLicenseDegenerateShortLicense(t *testing.T) {
	lic, err := ParseLicense("TEST", "short license text")
	if err != nil {
		t.Fatalf("ParseLicense: %v", err)
	}
	idx := indexLicense(lic, 30)

	if len(idx.NGrams) != 1 {
		t.Fatalf("degenerate case: len(NGrams) = %d, want 1", len(idx.NGrams))
	}
	ng := idx.NGrams[0]
	if ng.Start != 0 || ng.End != len(lic.Tokens) {
		t.Errorf("degenerate NGram range = [%d, %d), want [0, %d)", ng.Start, ng.End, len(lic.Tokens))
	}
	if idx.Granularity != len(lic.Tokens) {
		t.Errorf("Granularity = %d, want %d", idx.Granularity, len(lic.Tokens))
	}
}

func TestBuildNGramChecksum(t *testing.T) {
	lic, err := ParseLicense("TEST", "alpha beta gamma")
	if err != nil {
		t.Fatalf("ParseLicense: %v", err)
	}
	ng := buildNGram(lic.Tokens, 0, 2)
	want := crc32.ChecksumIEEE([]byte("alpha beta "))
	if ng.Checksum != want {
		t.Errorf("checksum = %d, want %d", ng.Checksum, want)
	}
	if ng.Text != "alpha beta " {
		t.Errorf("text = %q, want %q", ng.Text, "alpha beta ")
	}
}
