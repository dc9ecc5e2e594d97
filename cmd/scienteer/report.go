package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/scienteer/ecs"
	"github.com/plus3/scienteer/game"
)

type Report struct {
	// Configuration
	RunID    string
	Duration time.Duration
	FPS      int
	Script   string
	Segments int

	// Results
	Frames         uint64
	Elapsed        float64
	Session        game.SessionStats
	PlayerPosition game.Vec2
	PlayerJumping  bool
	Projectiles    int
	Enemies        []game.Vec2

	// Performance
	TotalTime     time.Duration
	UpdateTime    Stats
	Systems       []ecs.SystemStats
	Storage       *ecs.StorageStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `Scienteer simulation {{.RunID}}

Configuration
  Duration:  {{.Duration}} at {{.FPS}} fps
  Script:    {{if .Script}}{{.Script}} ({{.Segments}} segments){{else}}none{{end}}

Gameplay
  Frames:    {{.Frames}} ({{printf "%.3f" .Elapsed}}s simulated)
  Player:    {{vec .PlayerPosition}}{{if .PlayerJumping}} airborne{{end}}
{{- range $i, $e := .Enemies}}
  Enemy {{$i}}:   {{vec $e}}
{{- end}}
  Shots:     {{.Session.ShotsFired}} fired, {{.Session.ProjectilesDespawned}} despawned, {{.Projectiles}} in flight
  Jumps:     {{.Session.Jumps}} ({{.Session.Landings}} landings)
  Turns:     {{.Session.EnemyTurns}}

Performance
  Wall time: {{.TotalTime}}
  Frame:     avg {{.UpdateTime.Avg}}, min {{.UpdateTime.Min}}, max {{.UpdateTime.Max}}
{{- range .Systems}}
  {{printf "%-26s" .Name}} avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}
{{- with .Storage}}
  Entities:  {{.TotalEntityCount}} in {{.ArchetypeCount}} archetypes, {{.SingletonCount}} singletons
{{- end}}
  Heap:      {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} bytes (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
  GC cycles: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}`

var reportFuncs = template.FuncMap{
	"vec": func(v game.Vec2) string {
		return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Y)
	},
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
}

var reportStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Padding(0, 1)

// Generate writes the report framed in a border.
func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}

	var body strings.Builder
	if err := tmpl.Execute(&body, r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(w, reportStyle.Render(body.String()))
	return err
}
