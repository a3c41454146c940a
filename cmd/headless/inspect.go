// cmd/headless/inspect.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"go-ant-colony/internal/defs"
	"go-ant-colony/internal/save"

	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect <save-file>",
		Short: "Decode a save file and print what a load would restore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read save: %w", err)
			}
			st, err := save.Decode(blob)
			if err != nil {
				return fmt.Errorf("save %s is not loadable: %w", args[0], err)
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}
			printState(cmd.OutOrStdout(), st)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the normalised save as JSON")
	return cmd
}

func printState(w io.Writer, st save.State) {
	r := st.Resources
	fmt.Fprintf(w, "resources: coins %d, food %d, water %.1f, ants %d, dirt %d\n", r.Coins, r.Food, r.Water, r.Ants, r.Dirt)
	fmt.Fprintf(w, "level %d, %d kills, %d coins earned, %.0fs played\n", st.Level, st.EnemiesKilled, st.TotalCoinsEarned, st.GameTime)
	fmt.Fprintln(w, "upgrades:")
	for _, k := range defs.UpgradeKinds {
		fmt.Fprintf(w, "  %-17s %d\n", k, st.Upgrades.Level(k))
	}
	var unlocked []string
	for id, ok := range st.Achievements {
		if ok {
			unlocked = append(unlocked, id)
		}
	}
	slices.Sort(unlocked)
	fmt.Fprintf(w, "achievements: %v\n", unlocked)
	if st.Timestamp > 0 {
		fmt.Fprintf(w, "saved at %s\n", time.UnixMilli(st.Timestamp).UTC().Format(time.RFC3339))
	}
}
