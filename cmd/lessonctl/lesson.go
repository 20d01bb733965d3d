package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLessonCmd() *cobra.Command {
	var (
		subject    string
		topic      string
		grade      int
		difficulty string
	)
	cmd := &cobra.Command{
		Use:   "lesson",
		Short: "Generate and store one lesson",
		RunE: func(cmd *cobra.Command, args []string) error {
			if grade < 1 || grade > 12 {
				return fmt.Errorf("grade must be between 1 and 12")
			}
			p, err := openPipeline(cmd)
			if err != nil {
				return err
			}
			defer p.Close()
			record, err := p.generator.CreateLesson(cmd.Context(), subject, topic, grade, difficulty)
			if err != nil {
				return err
			}
			view, err := p.cache.CacheLesson(cmd.Context(), record.Lesson.ID)
			if err != nil {
				return err
			}
			return printJSON(cmd, view)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Subject name")
	cmd.Flags().StringVar(&topic, "topic", "", "Topic name")
	cmd.Flags().IntVar(&grade, "grade", 0, "Grade level (1-12)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "intermediate", "beginner, intermediate or advanced")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("grade")
	return cmd
}
