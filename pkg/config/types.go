package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Date is a calendar date written as YYYY-MM-DD. Any other format is a
// parse error. An empty scalar leaves the date zero (today_date may be
// left blank to suppress the today marker).
type Date struct {
	time.Time
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value.Value)
	if err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value.Value)
	}
	d.Time = t
	return nil
}

// RawScalar captures a YAML scalar exactly as written. duration_weeks
// may be a number or the "start2end" literal; keeping the raw text lets
// the resolver report bad values verbatim.
type RawScalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *RawScalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected a scalar value, got %s", nodeKind(value.Kind))
	}
	*r = RawScalar(value.Value)
	return nil
}

func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	default:
		return "an unexpected node"
	}
}

// Config is the full gantt_config.yaml document.
type Config struct {
	Project Project    `yaml:"project"`
	Output  Output     `yaml:"output"`
	Tasks   []TaskSpec `yaml:"tasks"`
}

// Project holds the chart title and date range.
type Project struct {
	Title     string `yaml:"title"`
	StartDate Date   `yaml:"start_date"`
	EndDate   Date   `yaml:"end_date"`
	TodayDate Date   `yaml:"today_date"`
}

// Output configures the rendered image.
type Output struct {
	Filename string `yaml:"filename"`
	DPI      int    `yaml:"dpi"`
}

// TaskSpec is one entry of the tasks list, in user order.
type TaskSpec struct {
	Name          string    `yaml:"name"`
	DurationWeeks RawScalar `yaml:"duration_weeks"`
	StartDate     *Date     `yaml:"start_date"`
}
