package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reshuffle/admin/internal/cascade"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch validation data once and print the derived field states",
}

var checkPartCmd = &cobra.Command{
	Use:   "part",
	Short: "Derive the part form for a subject",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		p := readPartParams(cmd)
		mem := &cascade.MemoryForm{}
		ctrl := cascade.NewPart(rt.fetcher, mem, p.PartID, rt.cascadeOptions()...)
		defer ctrl.Close()
		ctrl.Seed(p.Values)

		if err := ctrl.Load(cmd.Context(), p.SubjectID); err != nil {
			return fmt.Errorf("validate part: %w", err)
		}
		return printLast(cmd, mem)
	},
}

var checkTaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Derive the task form for a part",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		p := readTaskParams(cmd)
		mem := &cascade.MemoryForm{}
		ctrl := cascade.NewTask(rt.fetcher, mem, rt.cascadeOptions()...)
		defer ctrl.Close()
		ctrl.Seed(p.Values)

		if err := ctrl.Load(cmd.Context(), p.PartID); err != nil {
			return fmt.Errorf("validate task: %w", err)
		}
		return printLast(cmd, mem)
	},
}

func init() {
	addPartFlags(checkPartCmd)
	addTaskFlags(checkTaskCmd)
	for _, c := range []*cobra.Command{checkPartCmd, checkTaskCmd} {
		c.Flags().Bool("json", false, "Print JSON instead of a table")
		checkCmd.AddCommand(c)
	}
}

func printLast(cmd *cobra.Command, mem *cascade.MemoryForm) error {
	snap, ok := mem.Last()
	if !ok {
		return fmt.Errorf("no field state derived")
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeSnapshotJSON(cmd.OutOrStdout(), snap)
	}
	writeSnapshotTable(cmd.OutOrStdout(), snap)
	return nil
}

type fieldJSON struct {
	ID      string           `json:"id"`
	Kind    string           `json:"kind"`
	Enabled bool             `json:"enabled"`
	Value   string           `json:"value"`
	Min     *int             `json:"min,omitempty"`
	Max     *int             `json:"max,omitempty"`
	Label   string           `json:"label"`
	Options []cascade.Option `json:"options,omitempty"`
}

type snapshotJSON struct {
	Parent string      `json:"parent"`
	Fields []fieldJSON `json:"fields"`
}

func writeSnapshotJSON(w io.Writer, snap cascade.Snapshot) error {
	out := snapshotJSON{Parent: snap.Parent, Fields: make([]fieldJSON, 0, len(snap.Fields))}
	for _, f := range snap.Fields {
		fj := fieldJSON{
			ID:      string(f.ID),
			Kind:    f.Kind.String(),
			Enabled: f.Enabled,
			Value:   f.Value,
			Label:   f.Label,
		}
		if f.Kind == cascade.KindSelect {
			fj.Options = f.Options
		} else if f.Enabled {
			fj.Min, fj.Max = &f.Min, &f.Max
		}
		out.Fields = append(out.Fields, fj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeSnapshotTable(w io.Writer, snap cascade.Snapshot) {
	fmt.Fprintf(w, "Parent: %s\n\n", orNone(snap.Parent))
	fmt.Fprintf(w, "%-18s  %-6s  %-7s  %-10s  %s\n", "Field", "Kind", "Enabled", "Value", "Label")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	for _, f := range snap.Fields {
		enabled := "✓"
		if !f.Enabled {
			enabled = "✗"
		}
		fmt.Fprintf(w, "%-18s  %-6s  %-7s  %-10s  %s\n",
			f.ID, f.Kind, enabled, orNone(f.Value), f.Label)
		if f.Kind == cascade.KindSelect && f.Enabled {
			for _, o := range f.Options[1:] {
				fmt.Fprintf(w, "%20s- %s: %s\n", "", o.Key, o.Name)
			}
		}
	}
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
