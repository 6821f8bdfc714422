package obj

//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . Input

// Key is a logical keyboard key the game reacts to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyA
	KeyD
	KeyW
	KeySpace
	KeyF
	KeyEscape
	KeyF11
	KeyP
)

// Input is the per-frame keyboard and pointer state. Held queries report the
// current state; JustPressed queries are true only on the frame of the press.
type Input interface {
	IsPressed(k Key) bool
	IsJustPressed(k Key) bool
	CursorPosition() (int, int)
	IsPrimaryButtonDown() bool
	IsPrimaryButtonJustPressed() bool
}

// KeyState is a plain snapshot implementing Input.
type KeyState struct {
	Held           map[Key]bool
	Pressed        map[Key]bool
	CursorX        int
	CursorY        int
	PrimaryDown    bool
	PrimaryPressed bool
}

// NewKeyState returns a snapshot with the given keys held.
func NewKeyState(held ...Key) *KeyState {
	s := &KeyState{Held: map[Key]bool{}, Pressed: map[Key]bool{}}
	for _, k := range held {
		s.Held[k] = true
	}
	return s
}

// Press marks k as held and pressed this frame.
func (s *KeyState) Press(k Key) *KeyState {
	if s.Held == nil {
		s.Held = map[Key]bool{}
	}
	if s.Pressed == nil {
		s.Pressed = map[Key]bool{}
	}
	s.Held[k] = true
	s.Pressed[k] = true
	return s
}

func (s *KeyState) IsPressed(k Key) bool {
	if s == nil {
		return false
	}
	return s.Held[k]
}

func (s *KeyState) IsJustPressed(k Key) bool {
	if s == nil {
		return false
	}
	return s.Pressed[k]
}

func (s *KeyState) CursorPosition() (int, int) {
	if s == nil {
		return 0, 0
	}
	return s.CursorX, s.CursorY
}

func (s *KeyState) IsPrimaryButtonDown() bool {
	return s != nil && s.PrimaryDown
}

func (s *KeyState) IsPrimaryButtonJustPressed() bool {
	return s != nil && s.PrimaryPressed
}

// AnyPressed reports whether any of keys is held.
func AnyPressed(in Input, keys ...Key) bool {
	if in == nil {
		return false
	}
	for _, k := range keys {
		if in.IsPressed(k) {
			return true
		}
	}
	return false
}
