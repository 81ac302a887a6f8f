package model

// Role is the anatomical group a strike belongs to.
type Role uint8

const (
	RoleUnclassified Role = iota
	RoleUE
	RoleLF
	RoleRF
)

func (r Role) String() string {
	switch r {
	case RoleUE:
		return "UE"
	case RoleLF:
		return "LF"
	case RoleRF:
		return "RF"
	}
	return "Unclassified"
}

// NoteEvent is a single decoded strike: session-relative onset in seconds
// plus the raw MIDI key and velocity. Never mutated after decode.
type NoteEvent struct {
	Onset    float64
	Key      uint8
	Velocity uint8
}

// ClassifiedEvent is a NoteEvent with its role resolved.
type ClassifiedEvent struct {
	NoteEvent
	Role Role
}
