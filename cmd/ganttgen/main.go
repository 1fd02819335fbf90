package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rselvaraju/ganttgen/pkg/chart"
	"github.com/rselvaraju/ganttgen/pkg/config"
	"github.com/rselvaraju/ganttgen/pkg/planner"
	"github.com/rselvaraju/ganttgen/pkg/schedule"
	"github.com/rselvaraju/ganttgen/pkg/tui"
)

const defaultConfigFile = "./gantt_config.yaml"

var warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	jsonOutput := hasFlag(args, "--json")
	args = removeFlag(args, "--json")

	if len(args) == 0 {
		return cmdRender(configPath(args, 1))
	}

	switch args[0] {
	case "render":
		return cmdRender(configPath(args, 1))
	case "schedule":
		return cmdSchedule(configPath(args, 1), jsonOutput)
	case "preview":
		return cmdPreview(configPath(args, 1))
	case "planner":
		sheets := []string{}
		out := planner.DefaultOutput
		rest := args[1:]
		for i := 0; i < len(rest); i++ {
			if rest[i] == "--sheets" && i+1 < len(rest) {
				sheets = strings.Split(rest[i+1], ",")
				i++
				continue
			}
			out = rest[i]
		}
		return cmdPlanner(out, sheets)
	default:
		return fmt.Errorf("unknown command: %s\nUsage: ganttgen [render|schedule|preview|planner] [args]", args[0])
	}
}

// configPath resolves the config file argument at position idx, falling
// back to the GANTTGEN_CONFIG env var and then the default path.
func configPath(args []string, idx int) string {
	if len(args) > idx {
		return args[idx]
	}
	if path := os.Getenv("GANTTGEN_CONFIG"); path != "" {
		return path
	}
	return defaultConfigFile
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func removeFlag(args []string, flag string) []string {
	var result []string
	for _, a := range args {
		if a != flag {
			result = append(result, a)
		}
	}
	return result
}

func printWarning(msg string) {
	fmt.Println(warningStyle.Render("WARNING: " + msg))
}

// resolveConfig loads a config file and resolves its schedule, printing
// advisories as they come.
func resolveConfig(path string) (*config.Config, []schedule.Resolved, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	resolved, err := schedule.Resolve(cfg.Window(), cfg.ScheduleTasks(), printWarning)
	if err != nil {
		return nil, nil, err
	}
	return cfg, resolved, nil
}

func cmdRender(path string) error {
	fmt.Printf("Reading configuration from %s...\n", path)
	cfg, resolved, err := resolveConfig(path)
	if err != nil {
		return err
	}

	fmt.Println("Generating Gantt chart...")
	opts := chart.Options{
		Title:  cfg.Project.Title,
		Window: cfg.Window(),
		Today:  cfg.Project.TodayDate.Time,
		DPI:    cfg.Output.DPI,
	}
	if err := chart.Render(opts, resolved, cfg.Output.Filename); err != nil {
		return err
	}

	fmt.Printf("Chart saved successfully to: %s\n", cfg.Output.Filename)
	return nil
}

func cmdSchedule(path string, jsonOut bool) error {
	cfg, resolved, err := resolveConfig(path)
	if err != nil {
		return err
	}

	if jsonOut {
		return outputJSON(map[string]interface{}{
			"project": map[string]string{
				"title": cfg.Project.Title,
				"start": cfg.Window().Start.Format("2006-01-02"),
				"end":   cfg.Window().End.Format("2006-01-02"),
			},
			"tasks": resolved,
		})
	}

	nameWidth := len("Task")
	for _, r := range resolved {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}
	fmt.Printf("%-*s  %-10s  %-10s  %s\n", nameWidth, "Task", "Start", "End", "Days")
	for _, r := range resolved {
		fmt.Printf("%-*s  %s  %s  %4d\n", nameWidth, r.Name,
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"), r.Days)
	}
	return nil
}

func cmdPreview(path string) error {
	m := tui.NewModel(path)
	p := tea.NewProgram(m, tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(path, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watcher failed: %v\n", err)
	} else {
		defer cleanup()
	}

	_, err = p.Run()
	return err
}

func cmdPlanner(out string, sheets []string) error {
	if err := planner.Build(out, sheets); err != nil {
		return err
	}
	fmt.Printf("Planner PDF generated at: %s\n", out)
	return nil
}

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
