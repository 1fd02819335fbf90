// Package config loads and validates the YAML schedule description.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rselvaraju/ganttgen/pkg/schedule"
)

// DefaultDPI is used when output.dpi is omitted.
const DefaultDPI = 300

// ErrNotFound reports a missing config file.
var ErrNotFound = errors.New("config file not found")

// Load reads, parses, and validates a config file. The returned config
// has defaults applied (output.dpi).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Project.Title == "" {
		return errors.New("project.title is required")
	}
	if c.Project.StartDate.IsZero() {
		return errors.New("project.start_date is required")
	}
	if c.Project.EndDate.IsZero() {
		return errors.New("project.end_date is required")
	}
	if c.Project.StartDate.After(c.Project.EndDate.Time) {
		return fmt.Errorf("project.start_date %s is after project.end_date %s",
			c.Project.StartDate.Format(dateLayout), c.Project.EndDate.Format(dateLayout))
	}
	if c.Output.Filename == "" {
		return errors.New("output.filename is required")
	}
	if c.Output.DPI < 0 {
		return fmt.Errorf("output.dpi must be positive, got %d", c.Output.DPI)
	}
	if c.Output.DPI == 0 {
		c.Output.DPI = DefaultDPI
	}
	if len(c.Tasks) == 0 {
		return errors.New("at least one task is required")
	}
	for i, t := range c.Tasks {
		if t.Name == "" {
			return fmt.Errorf("tasks[%d]: name is required", i)
		}
		if t.DurationWeeks == "" {
			return fmt.Errorf("task %q: duration_weeks is required", t.Name)
		}
	}
	return nil
}

// Window returns the project window for the resolver.
func (c *Config) Window() schedule.Window {
	return schedule.Window{Start: c.Project.StartDate.Time, End: c.Project.EndDate.Time}
}

// ScheduleTasks converts the task specs into resolver descriptors,
// preserving order.
func (c *Config) ScheduleTasks() []schedule.Task {
	tasks := make([]schedule.Task, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		task := schedule.Task{Name: t.Name, Duration: string(t.DurationWeeks)}
		if t.StartDate != nil && !t.StartDate.IsZero() {
			start := t.StartDate.Time
			task.FixedStart = &start
		}
		tasks = append(tasks, task)
	}
	return tasks
}
