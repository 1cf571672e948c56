package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vzahanych/weather-answer/internal/intent"
)

func askCmd() *cobra.Command {
	var (
		a          intent.Args
		intentFile string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Answer one question",
		Long: `Answer one question and publish the sentence through the configured outputs.
The question is given as flags or as an intent file ("-" reads stdin) in the
configured parser format.`,
		Example: `  weather ask --day tomorrow --time 15 --condition rain --location Berlin
  weather ask --intent-file intent.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, decoder, err := buildService()
			if err != nil {
				return err
			}
			defer func() {
				if err := svc.Close(); err != nil {
					log.Warn("Failed to close outputs", zap.Error(err))
				}
			}()

			var msg *intent.Message
			if intentFile != "" {
				data, err := readIntent(cmd.InOrStdin(), intentFile)
				if err != nil {
					return err
				}
				if msg, err = decoder.Decode(data); err != nil {
					return fmt.Errorf("decode %s: %w", intentFile, err)
				}
			} else {
				if err := a.Validate(); err != nil {
					return fmt.Errorf("%w: %v", intent.ErrMalformed, err)
				}
				msg = &intent.Message{Input: a.Input()}
			}

			env, err := svc.Handle(cmd.Context(), msg)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(env); encErr != nil {
					return encErr
				}
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.Day, "day", "", "day of the question (tomorrow, monday, 24 december)")
	f.StringVar(&a.Time, "time", "", "time of the question (15, 10 30, evening)")
	f.StringVar(&a.Location, "location", "", "city, defaults to the configured location")
	f.StringVar(&a.Condition, "condition", "", "condition to check (rain, snow, sun, wind)")
	f.StringVar(&a.Item, "item", "", "item to check (umbrella, sunglasses)")
	f.StringVar(&a.Temperature, "temperature", "", "temperature class to check (warm, cold)")
	f.StringVar(&a.Kind, "kind", "", "request kind (full, temperature, condition, item)")
	f.StringVar(&a.Intent, "intent", "", "intent name, overrides --kind")
	f.StringVar(&intentFile, "intent-file", "", "answer an intent JSON file instead of flags")
	f.BoolVar(&asJSON, "json", false, "also print the answer envelope as JSON")

	return cmd
}

func readIntent(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intent file: %w", err)
	}
	return data, nil
}
