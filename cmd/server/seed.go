package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"steamboost/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Validate a seed file and print its contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.Load(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "users: %d\n", len(data.Users))
			for _, u := range data.Users {
				fmt.Fprintf(out, "  %-16s %s\n", u.Username, u.Role)
			}
			fmt.Fprintf(out, "requests: %d\n", len(data.Requests))
			for _, r := range data.Requests {
				fmt.Fprintf(out, "  #%-4d %-16s %8d руб.  %-9s %s  %s\n",
					r.ID, r.SteamLogin, r.Amount, r.Status, r.Date, r.Owner)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "seed file (default: built-in demo data)")
	return cmd
}
