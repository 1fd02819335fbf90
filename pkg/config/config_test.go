package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gantt_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validConfig = `
project:
  title: "Master's Thesis"
  start_date: "2026-02-01"
  end_date: "2026-08-01"
  today_date: ""

output:
  filename: "gantt.png"
  dpi: 150

tasks:
  - name: "Literature Review"
    duration_weeks: 3
  - name: "Thesis Writing"
    duration_weeks: "start2end"
  - name: "Experiments"
    duration_weeks: 6.5
    start_date: "2026-03-01"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "Master's Thesis", cfg.Project.Title)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), cfg.Project.StartDate.Time)
	assert.True(t, cfg.Project.TodayDate.IsZero())
	assert.Equal(t, "gantt.png", cfg.Output.Filename)
	assert.Equal(t, 150, cfg.Output.DPI)

	require.Len(t, cfg.Tasks, 3)
	// Raw scalars survive exactly as written, numeric or not.
	assert.Equal(t, RawScalar("3"), cfg.Tasks[0].DurationWeeks)
	assert.Equal(t, RawScalar("start2end"), cfg.Tasks[1].DurationWeeks)
	assert.Equal(t, RawScalar("6.5"), cfg.Tasks[2].DurationWeeks)

	assert.Nil(t, cfg.Tasks[0].StartDate)
	require.NotNil(t, cfg.Tasks[2].StartDate)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), cfg.Tasks[2].StartDate.Time)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "project: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestLoadDefaultDPI(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
project:
  title: "T"
  start_date: "2026-01-01"
  end_date: "2026-02-01"
output:
  filename: "out.png"
tasks:
  - name: "a"
    duration_weeks: 1
`))
	require.NoError(t, err)
	assert.Equal(t, DefaultDPI, cfg.Output.DPI)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  string
		wantErr string
	}{
		{
			name: "inverted window",
			mutate: `
project:
  title: "T"
  start_date: "2026-06-01"
  end_date: "2026-01-01"
output:
  filename: "out.png"
tasks:
  - name: "a"
    duration_weeks: 1
`,
			wantErr: "is after",
		},
		{
			name: "bad date format",
			mutate: `
project:
  title: "T"
  start_date: "01/02/2026"
  end_date: "2026-06-01"
output:
  filename: "out.png"
tasks:
  - name: "a"
    duration_weeks: 1
`,
			wantErr: "YYYY-MM-DD",
		},
		{
			name: "no tasks",
			mutate: `
project:
  title: "T"
  start_date: "2026-01-01"
  end_date: "2026-06-01"
output:
  filename: "out.png"
tasks: []
`,
			wantErr: "at least one task",
		},
		{
			name: "unnamed task",
			mutate: `
project:
  title: "T"
  start_date: "2026-01-01"
  end_date: "2026-06-01"
output:
  filename: "out.png"
tasks:
  - duration_weeks: 1
`,
			wantErr: "name is required",
		},
		{
			name: "missing title",
			mutate: `
project:
  start_date: "2026-01-01"
  end_date: "2026-06-01"
output:
  filename: "out.png"
tasks:
  - name: "a"
    duration_weeks: 1
`,
			wantErr: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mutate))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScheduleTasks(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	tasks := cfg.ScheduleTasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "Literature Review", tasks[0].Name)
	assert.Equal(t, "3", tasks[0].Duration)
	assert.Nil(t, tasks[0].FixedStart)
	require.NotNil(t, tasks[2].FixedStart)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *tasks[2].FixedStart)

	w := cfg.Window()
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), w.End)
}
