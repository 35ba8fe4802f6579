package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrparse/screplay/repparser"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <file>",
		Short: "Print the reconstructed chat transcript of a replay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			replay, err := repparser.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			for _, msg := range replay.ChatMessages() {
				fmt.Fprintf(out, "[frame %d] %s: %s\n", msg.FrameNumber, msg.SenderName, msg.Message)
			}
			return nil
		},
	}
}
