package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCurriculumCmd() *cobra.Command {
	var (
		subject string
		grades  []int
		plan    bool
	)
	cmd := &cobra.Command{
		Use:   "curriculum",
		Short: "Generate one lesson per topic for each grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, grade := range grades {
				if grade < 1 || grade > 12 {
					return fmt.Errorf("grade %d out of range 1-12", grade)
				}
			}
			p, err := openPipeline(cmd)
			if err != nil {
				return err
			}
			defer p.Close()
			if plan {
				result, err := p.generator.PlanCurriculum(cmd.Context(), subject, grades)
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			}
			report, err := p.generator.GenerateAndSaveCurriculum(cmd.Context(), subject, grades)
			if err != nil {
				return err
			}
			return printJSON(cmd, report)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Subject name")
	cmd.Flags().IntSliceVar(&grades, "grades", nil, "Comma separated grade levels")
	cmd.Flags().BoolVar(&plan, "plan", false, "Only resolve and store the topic plan")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("grades")
	return cmd
}
