package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/strikelab/midipad/model"
)

// ReadFile decodes a standard MIDI file from disk.
func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}

	return res, nil
}

// ExtractEvents flattens every track of s into note-on events with
// session-relative onsets in seconds, sorted ascending by onset.
// A note-on with velocity 0 is a disguised note-off and is skipped.
func ExtractEvents(s *smf.SMF) []model.NoteEvent {
	var events []model.NoteEvent

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				events = append(events, model.NoteEvent{
					Onset:    float64(s.TimeAt(absTicks)) / 1e6,
					Key:      key,
					Velocity: velocity,
				})
			}
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Onset < events[j].Onset
	})
	return events
}

// ExtractFile reads path and returns its ordered note events.
func ExtractFile(path string) ([]model.NoteEvent, error) {
	s, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return ExtractEvents(s), nil
}
