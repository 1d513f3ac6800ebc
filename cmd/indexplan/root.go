// Copyright 2024 The indexplan Authors
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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the top-level "indexplan" command, following the same
// shape cmd/cue/cmd/root.go uses: SilenceErrors/SilenceUsage because errors
// are printed by main once, not by cobra's own error path.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "indexplan",
		Short:         "decide whether a query can be answered by a single B-tree index walk",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newCheckCmd())
	return root
}

// Main runs the command and returns a process exit code, the same split
// main.go and the testscript harness both call into, matching
// cmd/cue/cmd.Main's shape.
func Main() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
