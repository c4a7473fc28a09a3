package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/photonics/internal/config"
	"github.com/vovakirdan/photonics/internal/quiz"
)

var flagShowAnswers bool

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the quiz question bank",
	Long: `Print the questions asked after 30 seconds of play. The bank comes
from quiz.questions_path in the config, or the built-in questions.

Examples:
  photonics questions
  photonics questions --answers
  photonics questions --config ./classroom.yaml`,
	Args: cobra.NoArgs,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&flagShowAnswers, "answers", false, "Mark the correct option")
}

func runQuestions(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		cfg = config.DefaultPhotonConfig()
	}

	bank, err := quiz.LoadBank(cfg.Quiz.QuestionsPath)
	if err != nil {
		return err
	}

	source := "built-in"
	if cfg.Quiz.QuestionsPath != "" {
		source = cfg.Quiz.QuestionsPath
	}
	fmt.Printf("Quiz questions (%s, pass mark %d/%d)\n", source, cfg.Quiz.PassMark, bank.Len())

	for i, q := range bank.Questions {
		fmt.Println()
		fmt.Printf("Q%d: %s\n", i+1, q.Prompt)
		for j, opt := range q.Options {
			mark := " "
			if flagShowAnswers && j == q.Correct {
				mark = "*"
			}
			fmt.Printf("  %s %d. %s\n", mark, j+1, opt)
		}
	}
	return nil
}
