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

package main

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	classifier "github.com/licensefp/licensefp"
	"github.com/licensefp/licensefp/corpus"
	"github.com/licensefp/licensefp/report"
)

func newDetectCommand() *cobra.Command {
	var (
		corpusDirs    []string
		archivePath   string
		threshold     float64
		jsonOut       string
		traceLicenses []string
		tracePhases   []string
	)

	cmd := &cobra.Command{
		Use:   "detect <file-or-directory> ...",
		Short: "Identify licenses present in one or more files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(traceLicenses) > 0 || len(tracePhases) > 0 {
				classifier.EnableTrace(traceLicenses, tracePhases)
			}

			licenses, err := loadLicenses(corpusDirs, archivePath)
			if err != nil {
				return err
			}
			corp := classifier.NewCorpus(licenses)
			logrus.WithField("count", corp.Len()).Debug("corpus loaded")

			files, err := expandPaths(args)
			if err != nil {
				return err
			}

			var findings report.Findings
			for _, f := range files {
				raw, err := os.ReadFile(f)
				if err != nil {
					return errors.Wrapf(err, "reading %q", f)
				}
				matches, err := corp.Detect(string(raw), threshold)
				if err != nil {
					return errors.Wrapf(err, "detecting license in %q", f)
				}
				findings = append(findings, report.FromMatches(f, matches)...)
			}

			if jsonOut != "" {
				out, err := os.Create(jsonOut)
				if err != nil {
					return errors.Wrapf(err, "creating %q", jsonOut)
				}
				defer out.Close()
				return report.WriteJSON(out, findings)
			}
			report.WriteText(cmd.OutOrStdout(), findings)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&corpusDirs, "corpus", nil, "directories of reference .txt licenses (repeatable)")
	cmd.Flags().StringVar(&archivePath, "archive", "", "pre-built corpus archive (see 'licensefp index'), used instead of --corpus")
	cmd.Flags().Float64Var(&threshold, "threshold", classifier.DefaultConfidenceThreshold, "confidence threshold in (0, 1]")
	cmd.Flags().StringVar(&jsonOut, "json", "", "write JSON output to this file instead of printing text")
	cmd.Flags().StringSliceVar(&traceLicenses, "trace-licenses", nil, "comma-separated SPDX identifiers to trace")
	cmd.Flags().StringSliceVar(&tracePhases, "trace-phases", nil, "comma-separated phases to trace (tokenize, candidate, score, arbiter; only score emits output)")

	return cmd
}

// loadLicenses loads reference licenses either from an archive or from a
// set of corpus directories, whichever the caller supplied.
func loadLicenses(dirs []string, archivePath string) ([]*classifier.License, error) {
	if archivePath != "" {
		f, err := os.Open(archivePath)
		if err != nil {
			return nil, errors.Wrapf(err, "opening archive %q", archivePath)
		}
		defer f.Close()
		return corpus.LoadArchive(f)
	}
	if len(dirs) == 0 {
		return nil, errors.New("either --corpus or --archive must be given")
	}
	return corpus.Load(dirs)
}

// expandPaths turns a mix of file and directory arguments into a flat list
// of files, recursing into directories with doublestar so a caller can
// point licensefp at a whole checkout.
func expandPaths(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %q", arg)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(arg), "**/*")
		if err != nil {
			return nil, errors.Wrapf(err, "walking %q", arg)
		}
		for _, m := range matches {
			full := filepath.Join(arg, m)
			fi, err := os.Stat(full)
			if err != nil {
				return nil, errors.Wrapf(err, "stat %q", full)
			}
			if !fi.IsDir() {
				files = append(files, full)
			}
		}
	}
	return files, nil
}
