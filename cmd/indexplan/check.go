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
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"indexplan.dev/go"
	"indexplan.dev/go/source"
)

// checkRequest is the JSON shape read from the file passed to `indexplan
// check`: a namespace, a predicate document in the same shape
// source.FromJSON accepts, and an ordered sort specification.
type checkRequest struct {
	Namespace string             `json:"namespace"`
	Predicate map[string]any     `json:"predicate"`
	Sort      []checkRequestSort `json:"sort"`
}

type checkRequestSort struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

func newCheckCmd() *cobra.Command {
	var fixturePath string
	var endpoint string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check <request.json>",
		Short: "report whether a query is perfectly covered by an available index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], fixturePath, endpoint, verbose)
		},
	}

	cmd.Flags().StringVar(&fixturePath, "fixture", "", "YAML file describing index metadata for offline use")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "base URL of a live index-metadata admin API")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a per-branch diagnostic trace")

	return cmd
}

func runCheck(cmd *cobra.Command, requestPath, fixturePath, endpoint string, verbose bool) error {
	data, err := os.ReadFile(requestPath)
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	var req checkRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}

	tree, err := source.FromJSON(req.Predicate)
	if err != nil {
		return fmt.Errorf("parsing predicate: %w", err)
	}

	sortKeys := make([]indexplan.SortKey, len(req.Sort))
	for i, s := range req.Sort {
		dir, err := parseDirection(s.Direction)
		if err != nil {
			return fmt.Errorf("sort[%d]: %w", i, err)
		}
		sortKeys[i] = indexplan.SortKey{Name: s.Field, Direction: dir}
	}

	idxSource, err := buildIndexSource(fixturePath, endpoint)
	if err != nil {
		return err
	}

	covered, branches, err := indexplan.ExplainCoverage(context.Background(), tree, sortKeys, req.Namespace, idxSource)
	if err != nil {
		return err
	}

	if verbose {
		for i, b := range branches {
			status := "FAIL"
			if b.Covered {
				status = "OK"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "branch %d: %s — %s", i, status, b.Reason)
			if b.MatchedIndex != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " (index %q)", b.MatchedIndex)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), covered)
	return nil
}

func buildIndexSource(fixturePath, endpoint string) (indexplan.IndexSource, error) {
	switch {
	case fixturePath != "":
		f, err := os.Open(fixturePath)
		if err != nil {
			return nil, fmt.Errorf("opening fixture: %w", err)
		}
		defer f.Close()
		return source.LoadFixtureYAML(f)
	case endpoint != "":
		return source.NewCachedSource(&source.HTTPSource{BaseURL: endpoint}, 0), nil
	default:
		return nil, fmt.Errorf("one of --fixture or --endpoint is required")
	}
}

func parseDirection(s string) (indexplan.Direction, error) {
	switch s {
	case "asc", "ascending", "":
		return indexplan.Ascending, nil
	case "desc", "descending":
		return indexplan.Descending, nil
	default:
		return 0, fmt.Errorf("unrecognized direction %q", s)
	}
}
