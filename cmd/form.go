package cmd

import (
	"github.com/spf13/cobra"

	"github.com/reshuffle/admin/internal/cascade"
	"github.com/reshuffle/admin/internal/screen"
	"github.com/reshuffle/admin/internal/screens/form"
)

var partCmd = &cobra.Command{
	Use:   "part",
	Short: "Open the part form",
	Long: "Open the part form. Pass --part and the current field values to edit an\n" +
		"existing part; omit them to add a new one.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := readPartParams(cmd)
		return runApp(cmd, func(rt *runtime) screen.Screen {
			return form.NewPart(rt.fetcher, p, rt.cascadeOptions()...)
		})
	},
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Open the task form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := readTaskParams(cmd)
		return runApp(cmd, func(rt *runtime) screen.Screen {
			return form.NewTask(rt.fetcher, p, rt.cascadeOptions()...)
		})
	},
}

func init() {
	addPartFlags(partCmd)
	addTaskFlags(taskCmd)
}

func addPartFlags(c *cobra.Command) {
	c.Flags().String("subject", "", "Subject ID (the parent field)")
	c.Flags().String("part", "", "ID of the part being edited")
	c.Flags().String("title", "", "Current title")
	c.Flags().String("answer-type", "", "Current answer type")
	c.Flags().String("task-count", "", "Current task count")
	c.Flags().String("total-difficulty", "", "Current total difficulty")
}

func readPartParams(cmd *cobra.Command) form.PartParams {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return form.PartParams{
		SubjectID: get("subject"),
		PartID:    get("part"),
		Values: cascade.Values{
			cascade.FieldTitle:           get("title"),
			cascade.FieldAnswerType:      get("answer-type"),
			cascade.FieldTaskCount:       get("task-count"),
			cascade.FieldTotalDifficulty: get("total-difficulty"),
		},
	}
}

func addTaskFlags(c *cobra.Command) {
	c.Flags().String("part", "", "Part ID (the parent field)")
	c.Flags().String("position", "", "Current position")
}

func readTaskParams(cmd *cobra.Command) form.TaskParams {
	part, _ := cmd.Flags().GetString("part")
	position, _ := cmd.Flags().GetString("position")
	return form.TaskParams{
		PartID: part,
		Values: cascade.Values{cascade.FieldPosition: position},
	}
}
