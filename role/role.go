package role

import (
	"errors"
	"fmt"

	"github.com/strikelab/midipad/model"
)

// ErrOverlappingKeys means the same MIDI key was assigned to more than one
// anatomical role.
var ErrOverlappingKeys = errors.New("role key sets overlap")

// Mapping assigns MIDI keys to anatomical roles. A key belongs to at most
// one role; anything unmapped classifies as Unclassified.
type Mapping struct {
	UEKeys map[uint8]bool
	LFKey  uint8
	RFKey  uint8
}

// NewMapping builds a Mapping from plain ints (as they arrive from config
// files and flags). Values outside 0-127 are not representable on a MIDI
// pad and are rejected.
func NewMapping(ueKeys []int, lfKey, rfKey int) (Mapping, error) {
	m := Mapping{UEKeys: make(map[uint8]bool, len(ueKeys))}
	for _, k := range ueKeys {
		if k < 0 || k > 127 {
			return Mapping{}, fmt.Errorf("ue key %d outside MIDI range 0-127", k)
		}
		m.UEKeys[uint8(k)] = true
	}
	if lfKey < 0 || lfKey > 127 {
		return Mapping{}, fmt.Errorf("lf key %d outside MIDI range 0-127", lfKey)
	}
	if rfKey < 0 || rfKey > 127 {
		return Mapping{}, fmt.Errorf("rf key %d outside MIDI range 0-127", rfKey)
	}
	m.LFKey = uint8(lfKey)
	m.RFKey = uint8(rfKey)
	if err := m.Validate(); err != nil {
		return Mapping{}, err
	}
	return m, nil
}

// Default is the stock rehabilitation drum-pad layout: snare/tom/cymbal
// keys for the upper extremities, hi-hat pedal for the left foot and kick
// for the right.
func Default() Mapping {
	return Mapping{
		UEKeys: map[uint8]bool{38: true, 40: true, 43: true, 51: true, 53: true, 59: true},
		LFKey:  44,
		RFKey:  36,
	}
}

// Validate fails if any key is claimed by more than one role.
func (m Mapping) Validate() error {
	if m.LFKey == m.RFKey {
		return fmt.Errorf("%w: key %d is both LF and RF", ErrOverlappingKeys, m.LFKey)
	}
	if m.UEKeys[m.LFKey] {
		return fmt.Errorf("%w: key %d is both UE and LF", ErrOverlappingKeys, m.LFKey)
	}
	if m.UEKeys[m.RFKey] {
		return fmt.Errorf("%w: key %d is both UE and RF", ErrOverlappingKeys, m.RFKey)
	}
	return nil
}

// Classify resolves a key to its role. Total over all keys, never errors.
func (m Mapping) Classify(key uint8) model.Role {
	switch {
	case m.UEKeys[key]:
		return model.RoleUE
	case key == m.LFKey:
		return model.RoleLF
	case key == m.RFKey:
		return model.RoleRF
	}
	return model.RoleUnclassified
}

// ClassifyAll tags every event with its role, preserving order.
func (m Mapping) ClassifyAll(events []model.NoteEvent) []model.ClassifiedEvent {
	res := make([]model.ClassifiedEvent, 0, len(events))
	for _, ev := range events {
		res = append(res, model.ClassifiedEvent{NoteEvent: ev, Role: m.Classify(ev.Key)})
	}
	return res
}
