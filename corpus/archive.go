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
	"archive/tar"
	"compress/gzip"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	classifier "github.com/licensefp/licensefp"
)

// Archive serialises licenses to w as a gzipped tar of their stripped
// content, one entry per License (so an identifier loaded with its
// optional-tail variant gets two entries of the same name), named
// "<identifier>.txt" (or
// "<identifier>.header.txt" for a header-only reference, the same naming
// convention corpus.Load itself reads). It is a cache of the loader's
// input, not of the core's in-memory index: the detector still re-indexes
// from Content on every Load of an archive, exactly as it would from plain
// text files. Grounded in the teacher's serializer.ArchiveLicenses, which
// does the same tar+gzip packaging of normalised text (it additionally
// persisted a hash table, made unnecessary here since n-gram indices are
// threshold-dependent and rebuilt per Corpus.Detect call, see ngram.go).
func Archive(licenses []*classifier.License, w io.Writer) error {
	gw := gzip.NewWriter(w)
	defer gw.Close()

	tw := tar.NewWriter(gw)
	for _, lic := range licenses {
		name := lic.Identifier + ".txt"
		if lic.IsHeader {
			name = lic.Identifier + ".header.txt"
		}
		logrus.WithField("identifier", lic.Identifier).Debug("archiving reference license")

		hdr := &tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(lic.Content)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return errors.Wrapf(err, "writing archive header for %q", name)
		}
		if _, err := tw.Write([]byte(lic.Content)); err != nil {
			return errors.Wrapf(err, "writing archive contents for %q", name)
		}
	}

	return tw.Close()
}

// LoadArchive is the inverse of Archive: it reads each "<identifier>.txt"
// or "<identifier>.header.txt" entry and rebuilds a License from its
// already-stripped content, restoring IsHeader from the ".header" suffix.
// Since the content stored by Archive is post line-stripping, LoadArchive
// tokenises it directly rather than re-running ParseLicense's
// header/copyright stripping (stripping already-stripped content is
// harmless but wasteful).
func LoadArchive(r io.Reader) ([]*classifier.License, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening gzip archive")
	}
	defer gr.Close()

	tr := tar.NewReader(gr)
	var licenses []*classifier.License
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading archive entry")
		}

		stem := strings.TrimSuffix(hdr.Name, ".txt")
		isHeader := strings.HasSuffix(stem, ".header")
		identifier := strings.TrimSuffix(stem, ".header")

		content := make([]byte, hdr.Size)
		if _, err := io.ReadFull(tr, content); err != nil {
			return nil, errors.Wrapf(err, "reading contents for %q", hdr.Name)
		}

		lic := classifier.NewPreStrippedLicense(identifier, string(content))
		lic.IsHeader = isHeader
		licenses = append(licenses, lic)
	}
	return licenses, nil
}
