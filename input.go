package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rocktung/obj"
)

var keyMap = map[obj.Key]ebiten.Key{
	obj.KeyLeft:   ebiten.KeyArrowLeft,
	obj.KeyRight:  ebiten.KeyArrowRight,
	obj.KeyUp:     ebiten.KeyArrowUp,
	obj.KeyA:      ebiten.KeyA,
	obj.KeyD:      ebiten.KeyD,
	obj.KeyW:      ebiten.KeyW,
	obj.KeySpace:  ebiten.KeySpace,
	obj.KeyF:      ebiten.KeyF,
	obj.KeyEscape: ebiten.KeyEscape,
	obj.KeyF11:    ebiten.KeyF11,
	obj.KeyP:      ebiten.KeyP,
}

// Input reads the live keyboard and mouse through ebiten.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) IsPressed(k obj.Key) bool {
	key, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(key)
}

func (i *Input) IsJustPressed(k obj.Key) bool {
	key, ok := keyMap[k]
	return ok && inpututil.IsKeyJustPressed(key)
}

func (i *Input) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (i *Input) IsPrimaryButtonDown() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (i *Input) IsPrimaryButtonJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
