package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/roles"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the role catalog",
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, info := range roles.List() {
			fmt.Printf("%-28s %s\n", info.Key, info.DisplayName)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}
