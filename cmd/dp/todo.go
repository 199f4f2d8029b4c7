package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/avandyck/daypack/internal/models"
	"github.com/spf13/cobra"
)

func newTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Quick todo capture and completion",
	}

	cmd.AddCommand(newTodoAddCmd())
	cmd.AddCommand(newTodoListCmd())
	cmd.AddCommand(newTodoDoneCmd())
	return cmd
}

func newTodoAddCmd() *cobra.Command {
	var (
		configPath string
		priority   string
		deadline   string
		details    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTodoAdd(cmd, configPath, strings.Join(args, " "), priority, deadline, details)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Daypack config file")
	cmd.Flags().StringVar(&priority, "priority", string(models.PriorityMedium), "priority (Low, Medium, High, Critical)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&details, "details", "", "detailed description")
	return cmd
}

func runTodoAdd(cmd *cobra.Command, configPath, title, priority, deadline, details string) error {
	out := cmd.OutOrStdout()

	p := models.Priority(priority)
	if p.Rank() > models.PriorityLow.Rank() {
		return fmt.Errorf("unknown priority %q", priority)
	}

	_, st, err := openStore(out, configPath)
	if err != nil {
		return err
	}

	todo := models.Todo{
		Title:    title,
		Details:  details,
		Deadline: deadline,
		Priority: p,
	}
	st.SaveTodo(context.Background(), &todo)

	fmt.Fprintf(out, "Added todo %s\n", todo.ID)
	return nil
}

func newTodoListCmd() *cobra.Command {
	var (
		configPath string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTodoList(cmd, configPath, all)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Daypack config file")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include completed todos")
	return cmd
}

func runTodoList(cmd *cobra.Command, configPath string, all bool) error {
	out := cmd.OutOrStdout()

	_, st, err := openStore(out, configPath)
	if err != nil {
		return err
	}

	todos := st.FetchTodos(context.Background())
	shown := 0
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRIORITY\tDEADLINE")
	for _, t := range todos {
		if !all && t.Status == models.TodoStatusCompleted {
			continue
		}
		deadline := t.Deadline
		if deadline == "" {
			deadline = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID), truncate(t.Title, 40), t.Status, t.Priority, deadline)
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(out, "No todos found.")
		return nil
	}
	w.Flush()
	return nil
}

func newTodoDoneCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a todo's completion",
		Long:  "Toggles the todo matching the given ID or unique ID prefix between Completed and Pending.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTodoDone(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Daypack config file")
	return cmd
}

func runTodoDone(cmd *cobra.Command, configPath, idArg string) error {
	out := cmd.OutOrStdout()

	_, st, err := openStore(out, configPath)
	if err != nil {
		return err
	}
	ctx := context.Background()

	id, err := resolveTodoID(st.FetchTodos(ctx), idArg)
	if err != nil {
		return err
	}

	for _, t := range st.ToggleTodo(ctx, id) {
		if t.ID == id {
			fmt.Fprintf(out, "%s is now %s\n", truncate(t.Title, 40), t.Status)
			return nil
		}
	}
	return fmt.Errorf("todo %s not found after toggle", id)
}

// resolveTodoID matches an exact ID or a unique ID prefix.
func resolveTodoID(todos []models.Todo, arg string) (string, error) {
	var matches []string
	for _, t := range todos {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no todo matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q is ambiguous (%d matches)", arg, len(matches))
	}
}

// shortID returns the first UUID segment, enough to identify a record in
// a personal-scale list.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
