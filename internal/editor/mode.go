package editor

// Mode is the interaction the controller is in. Exactly one is active.
type Mode int

const (
	Idle Mode = iota
	TwoPointsDrawing
	NPointsDrawing
	Moving
	Resizing
	Selecting
)

var modeNames = [...]string{"idle", "two-points drawing", "n-points drawing", "moving", "resizing", "selecting"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Button identifies the pointer button of a click.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)
