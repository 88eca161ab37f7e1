package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jordanlanch/calltracker/pkg/auth"
	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for DASHBOARD_PASSWORD_HASH",
	Long: `hash-password reads a password from stdin and prints its bcrypt hash.

  echo -n 's3cret-password' | calltracker hash-password`,
	RunE: func(cmd *cobra.Command, args []string) error {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}

		hash, err := auth.HashPassword(strings.TrimRight(line, "\r\n"))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
