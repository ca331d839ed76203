package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"taskboard/internal/models"
)

// exportedTask is the export shape: the stored fields with readable timestamps.
type exportedTask struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    string   `json:"priority" yaml:"priority"`
	Status      string   `json:"status" yaml:"status"`
	CreatedAt   string   `json:"createdAt" yaml:"createdAt"`
	DueDate     string   `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`
}

func toExported(tasks []models.Task) []exportedTask {
	out := make([]exportedTask, len(tasks))
	for i, t := range tasks {
		out[i] = exportedTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    string(t.Priority),
			Status:      string(t.Status),
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
			Tags:        t.Tags,
		}
		if t.DueDate != nil {
			out[i].DueDate = t.DueDate.Format(time.RFC3339)
		}
	}
	return out
}

func writeExport(w io.Writer, format string, tasks []models.Task) error {
	data := toExported(tasks)
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q (want json or yaml)", format)
	}
}

func newExportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every task in manual order as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeExport(cmd.OutOrStdout(), format, a.tasks.Tasks())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}
