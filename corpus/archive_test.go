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

package corpus

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	classifier "github.com/licensefp/licensefp"
)

func TestArchiveRoundTrip(t *testing.T) {
	mit, err := classifier.ParseLicense("MIT", "Permission is hereby granted, free of charge, to any person.")
	require.NoError(t, err)
	apache, err := classifier.ParseLicense("Apache-2.0", "Licensed under the Apache License, Version 2.0.")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Archive([]*classifier.License{mit, apache}, &buf))

	got, err := LoadArchive(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	sort.Slice(got, func(i, j int) bool { return got[i].Identifier < got[j].Identifier })
	require.Equal(t, "Apache-2.0", got[0].Identifier)
	require.Equal(t, apache.Content, got[0].Content)
	require.Equal(t, "MIT", got[1].Identifier)
	require.Equal(t, mit.Content, got[1].Content)
}

func TestArchiveRoundTripPreservesTokens(t *testing.T) {
	lic, err := classifier.ParseLicense("0BSD", "Permission to use, copy, modify, and distribute this software is granted.")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Archive([]*classifier.License{lic}, &buf))

	got, err := LoadArchive(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, len(lic.Tokens), len(got[0].Tokens))
	for i := range lic.Tokens {
		require.Equal(t, lic.Tokens[i].Value, got[0].Tokens[i].Value)
	}
}

func TestArchiveRoundTripPreservesIsHeader(t *testing.T) {
	header, err := classifier.ParseLicense("MIT", "Permission is hereby granted, free of charge.")
	require.NoError(t, err)
	header.IsHeader = true
	full, err := classifier.ParseLicense("Apache-2.0", "Licensed under the Apache License, Version 2.0.")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Archive([]*classifier.License{header, full}, &buf))

	got, err := LoadArchive(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	sort.Slice(got, func(i, j int) bool { return got[i].Identifier < got[j].Identifier })
	require.Equal(t, "Apache-2.0", got[0].Identifier)
	require.False(t, got[0].IsHeader)
	require.Equal(t, "MIT", got[1].Identifier)
	require.True(t, got[1].IsHeader)
}

func TestLoadArchiveRejectsCorruptData(t *testing.T) {
	_, err := LoadArchive(bytes.NewReader([]byte("not a gzip stream")))
	require.Error(t, err)
}

func TestArchiveEmptyLicenseList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Archive(nil, &buf))

	got, err := LoadArchive(&buf)
	require.NoError(t, err)
	require.Empty(t, got)
}
