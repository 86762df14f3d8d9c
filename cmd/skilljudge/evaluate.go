package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ashi-17-commits/skill-judge-AI/internal/extraction"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/scoring"
	"github.com/Ashi-17-commits/skill-judge-AI/internal/signals"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <resume.pdf|resume.docx>",
	Short: "Evaluate a resume file offline",
	Long:  `Extract text from a local resume file, score it deterministically and print the evaluation as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, args []string) error {
	extracted, err := extraction.Extract(args[0])
	if err != nil {
		return err
	}

	evaluator := scoring.NewEvaluator(signals.NewExtractor(signals.DefaultCatalog()))
	evaluation, bundle, err := evaluator.EvaluateDocument(extracted.Text, extracted.PageCount)
	if err != nil {
		return err
	}

	payload := struct {
		*scoring.Evaluation
		SkillsFound     []string `json:"skills_found"`
		ExperienceYears float64  `json:"experience_years"`
	}{
		Evaluation:      evaluation,
		SkillsFound:     bundle.SummarizeSkills(),
		ExperienceYears: bundle.EstimatedYearsExperience,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode evaluation: %w", err)
	}
	return nil
}
