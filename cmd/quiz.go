package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/foodverse/foodverse/internal/dataset"
	"github.com/foodverse/foodverse/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a disease's food quiz in the plain terminal",
	Long: `Answer the same quiz the visualization offers, one question per line.

Type 1, 2 or 3 (or Safe, Moderate, Avoid). Answers are checked immediately.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("disease", "", "Disease ID (required)")
	_ = quizCmd.MarkFlagRequired("disease")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	diseaseID, _ := cmd.Flags().GetString("disease")

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	d, err := store.Disease(diseaseID)
	if err != nil {
		return err
	}

	s := quiz.New(d.Name, d.Foods, quiz.WithAdvanceDelay(0))
	defer s.Close()
	return playQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), d, s)
}

// parseAnswer accepts an option number, a label or its first letter.
func parseAnswer(input string) (string, bool) {
	options := quiz.Options()
	input = strings.TrimSpace(input)
	if len(input) == 1 && input[0] >= '1' && int(input[0]-'0') <= len(options) {
		return options[input[0]-'1'], true
	}
	for _, o := range options {
		if strings.EqualFold(input, o) || strings.EqualFold(input, o[:1]) {
			return o, true
		}
	}
	return "", false
}

func playQuiz(in io.Reader, w io.Writer, d dataset.Disease, s *quiz.Session) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(w, "%s %s quiz · %d questions\n\n", d.Icon, d.Name, s.Len())

	for {
		q, ok := s.Current()
		if !ok || s.Snapshot().Complete {
			break
		}
		snap := s.Snapshot()

		fmt.Fprintf(w, "── Question %d/%d ──\n", snap.CurrentIndex+1, snap.Total())
		fmt.Fprintf(w, "%s  %s\n", q.Food.Emoji, q.Prompt)
		for i, o := range quiz.Options() {
			fmt.Fprintf(w, "  %d) %s\n", i+1, o)
		}

		var option string
		for option == "" {
			fmt.Fprint(w, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(w, "\n(input closed)")
				return scanner.Err()
			}
			parsed, ok := parseAnswer(scanner.Text())
			if !ok {
				fmt.Fprintln(w, "Please answer 1, 2 or 3.")
				continue
			}
			option = parsed
		}

		adv, err := s.Submit(option)
		if err != nil {
			return err
		}
		if s.Snapshot().LastAnswerCorrect() {
			green.Fprint(w, "✓ Correct! ")
		} else {
			red.Fprintf(w, "✗ Not quite. It's %s. ", q.Correct.Label())
		}
		fmt.Fprintln(w, q.Food.Reason)
		fmt.Fprintln(w)

		if err := s.Advance(adv.Token); err != nil {
			return fmt.Errorf("advance quiz: %w", err)
		}
	}

	snap := s.Snapshot()
	bold.Fprintf(w, "── Quiz complete: %d/%d · %s ──\n", snap.Score, snap.Total(), snap.Rating())
	if snap.BonusEligible {
		green.Fprintln(w, "🏆 Nutrition Champion!")
	}
	return nil
}
