package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/intent"
)

func slotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slots <dir>",
		Short: "Write Rhasspy slot files for the configured locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := intent.WriteSlots(args[0], lang)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			log.Info("Slot files written",
				zap.String("dir", args[0]),
				zap.String("locale", lang.Name),
				zap.Int("files", len(paths)))
			return nil
		},
	}
}
