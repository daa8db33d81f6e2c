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

// Package corpus walks directories of reference-license .txt files and
// builds the classifier.License values the core detector operates on. It
// also provides an archive format (see archive.go) so a caller doesn't have
// to re-tokenise every reference file on every process start.
package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	classifier "github.com/licensefp/licensefp"
)

// endOfTerms is the literal phrase whose presence triggers emission of a
// second, truncated reference (the AGPL-style optional tail).
const endOfTerms = "END OF TERMS AND CONDITIONS"

// ErrNotUTF8 is wrapped into errors raised when a reference file cannot be
// decoded as UTF-8. Its cause is classifier.ErrCorpusMalformed.
var ErrNotUTF8 = errors.Wrap(classifier.ErrCorpusMalformed, "file is not valid UTF-8")

// ErrNotTextFile is wrapped into errors raised when a directory entry
// doesn't end in ".txt". Its cause is classifier.ErrCorpusMalformed.
var ErrNotTextFile = errors.Wrap(classifier.ErrCorpusMalformed, "reference file must have a .txt extension")

// Load reads every .txt file directly inside each of dirs (non-recursive),
// derives the SPDX identifier from the filename stem, validates it, decodes
// it as UTF-8, and builds a classifier.License. A file containing
// "END OF TERMS AND CONDITIONS"
// additionally yields a second, truncated reference. The returned slice is
// sorted by identifier.
func Load(dirs []string) ([]*classifier.License, error) {
	log := logrus.WithField("component", "corpus-loader")

	var licenses []*classifier.License
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "reading corpus directory %q", dir)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()

			matched, err := doublestar.Match("*.txt", name)
			if err != nil {
				return nil, errors.Wrapf(err, "matching %q against *.txt", name)
			}
			if !matched {
				return nil, errors.Wrapf(ErrNotTextFile, "%q", filepath.Join(dir, name))
			}

			stem := strings.TrimSuffix(name, filepath.Ext(name))
			isHeader := strings.HasSuffix(stem, ".header")
			identifier := strings.TrimSuffix(stem, ".header")
			if !classifier.ValidIdentifier(identifier) {
				return nil, errors.Wrapf(classifier.ErrCorpusMalformed, "invalid SPDX identifier %q derived from %q", identifier, name)
			}

			path := filepath.Join(dir, name)
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, errors.Wrapf(err, "reading %q", path)
			}
			if !utf8.Valid(raw) {
				return nil, errors.Wrapf(ErrNotUTF8, "%q", path)
			}
			content := string(raw)

			log.WithField("identifier", identifier).Debug("loading reference license")

			lic, err := classifier.ParseLicense(identifier, content)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing %q", path)
			}
			lic.IsHeader = isHeader
			licenses = append(licenses, lic)

			if idx := strings.Index(content, endOfTerms); idx >= 0 {
				truncated := content[:idx+len(endOfTerms)]
				tailLic, err := classifier.ParseLicense(identifier, truncated)
				if err != nil {
					return nil, errors.Wrapf(err, "parsing truncated %q", path)
				}
				tailLic.IsHeader = isHeader
				log.WithField("identifier", identifier).Debug("also loading optional-tail variant")
				licenses = append(licenses, tailLic)
			}
		}
	}

	sort.Slice(licenses, func(i, j int) bool {
		return licenses[i].Identifier < licenses[j].Identifier
	})

	return licenses, nil
}
