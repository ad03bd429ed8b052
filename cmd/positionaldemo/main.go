// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command positionaldemo builds a positional index from a delta script
// given on the command line and prints the result of an operation
// against it. Each invocation is self-contained: the library has no
// persistence, so there is no list surviving between runs.
package main

import (
	"fmt"
	"os"

	"github.com/gaissmai/positional"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	depth  int
	deltas []int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "positionaldemo",
		Short: "build a positional index from a delta script and inspect it",
	}

	root.PersistentFlags().IntVar(&depth, "depth", 9,
		"distances array depth (K = 1<<(depth-1))")
	root.PersistentFlags().IntSliceVar(&deltas, "deltas", nil,
		"comma-separated list of insertion deltas, e.g. 4,2,3,1")

	root.AddCommand(newInsertCmd(), newRemoveCmd(), newPositionCmd(), newDumpCmd())
	return root
}

func buildLogger() *zap.Logger {
	log, err := zap.NewDevelopment()
	if err != nil {
		log = zap.NewNop()
	}
	return log.Named("positionaldemo").With(zap.String("session", uuid.New().String()))
}

// buildList applies --deltas to a fresh List, returning it alongside
// the handle minted for each delta in insertion order, so subcommands
// can address elements by the index an operator gave them on the
// command line without needing an ordered-scan API the library
// deliberately doesn't provide.
func buildList() (*positional.List[int, int], []positional.Handle, error) {
	cfg, err := positional.NewConfig(depth)
	if err != nil {
		return nil, nil, err
	}
	if len(deltas) == 0 {
		return nil, nil, fmt.Errorf("--deltas must name at least one insertion delta")
	}

	l := positional.New[int, int](cfg)
	l.SetLogger(buildLogger())

	handles := make([]positional.Handle, len(deltas))
	for i, d := range deltas {
		handles[i] = l.AddElement(i, d)
	}
	return l, handles, nil
}

func checkIndex(index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("--index %d out of range [0,%d)", index, n)
	}
	return nil
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert",
		Short: "apply --deltas and print every element's index and position",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, handles, err := buildList()
			if err != nil {
				return err
			}
			for i, h := range handles {
				pos, _ := l.Position(h)
				fmt.Fprintf(cmd.OutOrStdout(), "%d: position=%d\n", i, pos)
			}
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "apply --deltas, remove the element at --index, and dump the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, handles, err := buildList()
			if err != nil {
				return err
			}
			if err := checkIndex(index, len(handles)); err != nil {
				return err
			}

			if _, ok := l.RemoveElement(handles[index]); !ok {
				return fmt.Errorf("remove failed for index %d", index)
			}

			fmt.Fprintln(cmd.OutOrStdout(), l.Dump())
			return nil
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "insertion-order index of the element to remove")
	return cmd
}

func newPositionCmd() *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "position",
		Short: "apply --deltas and print the position of the element at --index",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, handles, err := buildList()
			if err != nil {
				return err
			}
			if err := checkIndex(index, len(handles)); err != nil {
				return err
			}

			pos, _ := l.Position(handles[index])
			fmt.Fprintln(cmd.OutOrStdout(), pos)
			return nil
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "insertion-order index to query")
	return cmd
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "apply --deltas and print the frame tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, err := buildList()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l.Dump())
			return nil
		},
	}
}
