package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Script is a timeline of held actions for headless runs.
//
// The text form is a ';'-separated list of segments "START-END:action[,action]"
// with times in seconds, for example "0-2:right,fire;1:jump". A segment with
// no END is a tap: it holds for exactly one frame starting at START.
type Script struct {
	segments []segment
}

type segment struct {
	start, end float64
	tap        bool
	actions    []Action
}

// ParseScript parses the text form. An empty string is an empty timeline.
func ParseScript(text string) (*Script, error) {
	s := &Script{}
	for i, raw := range strings.Split(text, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		seg, err := parseSegment(raw)
		if err != nil {
			return nil, fmt.Errorf("segment %d %q: %w", i+1, raw, err)
		}
		s.segments = append(s.segments, seg)
	}
	return s, nil
}

func parseSegment(raw string) (segment, error) {
	var seg segment

	span, list, ok := strings.Cut(raw, ":")
	if !ok {
		return seg, errors.New("missing ':'")
	}

	from, to, ranged := strings.Cut(span, "-")
	start, err := parseSeconds(from)
	if err != nil {
		return seg, err
	}
	seg.start = start
	if ranged {
		end, err := parseSeconds(to)
		if err != nil {
			return seg, err
		}
		if end <= start {
			return seg, fmt.Errorf("end %g is not after start %g", end, start)
		}
		seg.end = end
	} else {
		seg.tap = true
	}

	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		action, err := ParseAction(name)
		if err != nil {
			return seg, err
		}
		seg.actions = append(seg.actions, action)
	}
	if len(seg.actions) == 0 {
		return seg, errors.New("no actions")
	}
	return seg, nil
}

func parseSeconds(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad time %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative time %g", v)
	}
	return v, nil
}

func (seg segment) active(t, dt float64) bool {
	if seg.tap {
		return t >= seg.start && t < seg.start+dt
	}
	return t >= seg.start && t < seg.end
}

// Len returns the number of segments.
func (s *Script) Len() int {
	return len(s.segments)
}

// End returns the time at which the last segment releases.
func (s *Script) End() float64 {
	var end float64
	for _, seg := range s.segments {
		if seg.tap {
			end = max(end, seg.start)
		} else {
			end = max(end, seg.end)
		}
	}
	return end
}

// Apply sets state to the actions held during the frame that starts at t
// and lasts dt seconds.
func (s *Script) Apply(state *InputState, t, dt float64) {
	var held [actionCount]bool
	for _, seg := range s.segments {
		if !seg.active(t, dt) {
			continue
		}
		for _, a := range seg.actions {
			held[a] = true
		}
	}
	for a, down := range held {
		state.Set(Action(a), down)
	}
}
