package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var wipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete every stored clip",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeYes, "yes", false, "skip confirmation")
}

func runWipe(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}

	if !wipeYes {
		fmt.Fprintf(cmd.OutOrStdout(), "wipe all clips from %s? [y/N] ", st.Path())
		answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := st.Wipe(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("knowledge document wiped")
	return nil
}
