package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-lmscore/internal/application"
)

var scoreQuestion string

var scoreCmd = &cobra.Command{
	Use:   "score [content]...",
	Short: "Score content against a yes/no question",
	Long: `Score one or more content strings against a yes/no question.

Examples:
  lmscore score -q "Is this about billing?" "Invoice for January" "Amount due: $49.99"
  lmscore score -q "Is this urgent?" "Server is down" --config lmscore.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVarP(&scoreQuestion, "question", "q", "", "yes/no question to evaluate (required)")
	_ = scoreCmd.MarkFlagRequired("question")
}

func runScore(cmd *cobra.Command, args []string) error {
	assembly, err := application.Build(cfg)
	if err != nil {
		return err
	}

	score, err := assembly.Engine.Score(cmd.Context(), args, scoreQuestion)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	fmt.Printf("%d\n", score)
	return nil
}
