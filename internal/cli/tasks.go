package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/models"
	"taskboard/internal/settings"
	"taskboard/internal/tasks"
	"taskboard/internal/view"
)

const dateLayout = "2006-01-02"

type viewFlags struct {
	search   string
	status   string
	priority string
	tab      string
	sort     string
}

func (f *viewFlags) register(cmd *cobra.Command, withTab bool) {
	cmd.Flags().StringVarP(&f.search, "search", "q", "", "Search title, description and tags")
	cmd.Flags().StringVar(&f.status, "status", "all", "Status filter: all, pending, in-progress, completed")
	cmd.Flags().StringVar(&f.priority, "priority", "all", "Priority filter: all, high, medium, low")
	cmd.Flags().StringVar(&f.sort, "sort", "desc", "Creation order: asc or desc")
	if withTab {
		cmd.Flags().StringVar(&f.tab, "tab", "all", "Tab: all, pending, in-progress, completed")
	}
}

// query builds the projection query. Unlike the web page, which falls back
// to defaults for unknown values, a mistyped flag is an error.
func (f *viewFlags) query(mode view.Mode) (view.Query, error) {
	for _, flag := range []struct{ name, value string }{{"status", f.status}, {"tab", f.tab}} {
		if flag.value == "" || flag.value == string(view.All) {
			continue
		}
		if _, err := models.ParseStatus(flag.value); err != nil {
			return view.Query{}, fmt.Errorf("invalid --%s %q: %w", flag.name, flag.value, err)
		}
	}
	if f.priority != "" && f.priority != string(view.All) {
		if _, err := models.ParsePriority(f.priority); err != nil {
			return view.Query{}, fmt.Errorf("invalid --priority %q: %w", f.priority, err)
		}
	}
	if d := view.Direction(f.sort); d != view.Asc && d != view.Desc {
		return view.Query{}, fmt.Errorf(`invalid --sort %q, want "asc" or "desc"`, f.sort)
	}

	v := url.Values{}
	v.Set("q", f.search)
	v.Set("status", f.status)
	v.Set("priority", f.priority)
	v.Set("tab", f.tab)
	v.Set("sort", f.sort)
	v.Set("view", string(mode))
	return view.ParseQuery(v), nil
}

func (a *app) renderer(ctx context.Context) (renderer, error) {
	prefs, err := settings.Load(ctx, a.backend)
	if err != nil {
		return renderer{}, err
	}
	return renderer{st: newStyles(prefs.Theme), lang: prefs.Language, now: a.now()}, nil
}

func newListCmd(a *app) *cobra.Command {
	var f viewFlags
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := f.query(view.ModeList)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.Context())
			if err != nil {
				return err
			}
			r.list(cmd.OutOrStdout(), view.Project(a.tasks.Tasks(), q))
			return nil
		},
	}
	f.register(cmd, true)
	return cmd
}

func newBoardCmd(a *app) *cobra.Command {
	var f viewFlags
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show tasks in pending, in-progress and completed columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := f.query(view.ModeBoard)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.Context())
			if err != nil {
				return err
			}
			r.board(cmd.OutOrStdout(), view.Project(a.tasks.Tasks(), q))
			return nil
		},
	}
	f.register(cmd, false)
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	var (
		description string
		priority    string
		status      string
		due         string
		tags        []string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := models.NewTask{
				Title:       strings.Join(args, " "),
				Description: description,
				Tags:        tags,
			}
			var err error
			if in.Priority, err = models.ParsePriority(priority); err != nil {
				return err
			}
			if in.Status, err = models.ParseStatus(status); err != nil {
				return err
			}
			if in.DueDate, err = parseDue(due); err != nil {
				return err
			}

			task, err := a.tasks.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %q\n", task.ID, task.Title)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(models.PriorityMedium), "Priority: high, medium, low")
	cmd.Flags().StringVarP(&status, "status", "s", string(models.StatusPending), "Status: pending, in-progress, completed")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Comma separated tags")
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveID(args[0])
			if err != nil {
				return err
			}

			patch, err := patchFromFlags(cmd)
			if err != nil {
				return err
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change: pass at least one flag")
			}

			task, ok, err := a.tasks.Update(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("task %s not found", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %q\n", task.ID, task.Title)
			return nil
		},
	}
	cmd.Flags().String("title", "", "Title")
	cmd.Flags().StringP("description", "d", "", "Description")
	cmd.Flags().StringP("priority", "p", "", "Priority: high, medium, low")
	cmd.Flags().StringP("status", "s", "", "Status: pending, in-progress, completed")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.Flags().StringSliceP("tags", "t", nil, "Comma separated tags, replacing the current ones")
	return cmd
}

// patchFromFlags only sets the fields whose flags were given.
func patchFromFlags(cmd *cobra.Command) (models.Patch, error) {
	var patch models.Patch
	flags := cmd.Flags()

	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		patch.Title = &v
	}
	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		patch.Description = &v
	}
	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		p, err := models.ParsePriority(v)
		if err != nil {
			return patch, err
		}
		patch.Priority = &p
	}
	if flags.Changed("status") {
		v, _ := flags.GetString("status")
		s, err := models.ParseStatus(v)
		if err != nil {
			return patch, err
		}
		patch.Status = &s
	}
	if flags.Changed("due") {
		v, _ := flags.GetString("due")
		d, err := parseDue(v)
		if err != nil {
			return patch, err
		}
		patch.DueDate = d
	}
	if flags.Changed("clear-due") {
		patch.ClearDueDate, _ = flags.GetBool("clear-due")
	}
	if flags.Changed("tags") {
		v, _ := flags.GetStringSlice("tags")
		patch.Tags = &v
	}
	return patch, nil
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <pending|in-progress|completed>",
		Short: "Set the status of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveID(args[0])
			if err != nil {
				return err
			}
			status, err := models.ParseStatus(args[1])
			if err != nil {
				return err
			}
			task, _, err := a.tasks.Update(cmd.Context(), id, models.Patch{Status: &status})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", task.ID, task.Status)
			return nil
		},
	}
}

func newDoneCmd(a *app) *cobra.Command {
	var undo bool
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed, or pending again with --undo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.tasks.SetStatus(cmd.Context(), id, !undo); err != nil {
				return err
			}
			task, _ := a.tasks.Get(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", task.ID, task.Status)
			return nil
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the task pending instead")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.resolveID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.tasks.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <before|after> <target-id>",
		Short: "Move a task directly before or after another task",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos := tasks.Position(args[1])
			if pos != tasks.Before && pos != tasks.After {
				return fmt.Errorf(`position must be "before" or "after", got %q`, args[1])
			}
			id, err := a.resolveID(args[0])
			if err != nil {
				return err
			}
			target, err := a.resolveID(args[2])
			if err != nil {
				return err
			}
			if id == target {
				return fmt.Errorf("a task cannot be moved relative to itself")
			}
			if _, err := a.tasks.Move(cmd.Context(), id, target, pos); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s %s %s\n", id, pos, target)
			return nil
		},
	}
}

func newReorderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <from> <to>",
		Short: "Move the task at one position of the full collection to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid from index: %w", err)
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid to index: %w", err)
			}
			return a.tasks.Reorder(cmd.Context(), from, to)
		},
	}
}

func newClearCompletedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete every completed task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.tasks.ClearCompleted(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed task(s)\n", n)
			return nil
		},
	}
}

// resolveID accepts a full id or a unique prefix of one.
func (a *app) resolveID(prefix string) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", fmt.Errorf("task id must not be empty")
	}
	if _, ok := a.tasks.Get(prefix); ok {
		return prefix, nil
	}

	var match string
	for _, t := range a.tasks.Tasks() {
		if !strings.HasPrefix(t.ID, prefix) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
		}
		match = t.ID
	}
	if match == "" {
		return "", fmt.Errorf("task %s not found", prefix)
	}
	return match, nil
}

func parseDue(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q, want YYYY-MM-DD", s)
	}
	return &t, nil
}
