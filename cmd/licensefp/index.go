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

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/licensefp/licensefp/corpus"
)

func newIndexCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "index <corpus-directory> ...",
		Short: "Build a corpus archive from directories of reference .txt licenses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			licenses, err := corpus.Load(args)
			if err != nil {
				return err
			}

			out, err := os.Create(output)
			if err != nil {
				return errors.Wrapf(err, "creating %q", output)
			}
			defer out.Close()

			if err := corpus.Archive(licenses, out); err != nil {
				return errors.Wrapf(err, "archiving to %q", output)
			}
			logrus.WithField("count", len(licenses)).WithField("path", output).Info("corpus archive written")
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "corpus.tar.gz", "path to write the archive to")
	return cmd
}
