package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Specs bundles every tuning file the game reads at startup.
type Specs struct {
	Scene   SceneSpec
	Puzzle  PuzzleSpec
	Pursuit PursuitSpec
}

const (
	SceneFile   = "scene.yaml"
	PuzzleFile  = "puzzle.yaml"
	PursuitFile = "pursuit.yaml"
)

// LoadAll reads and validates all spec files.
func LoadAll() (*Specs, error) {
	scene, err := LoadSpec[SceneSpec](SceneFile)
	if err != nil {
		return nil, err
	}
	puzzle, err := LoadSpec[PuzzleSpec](PuzzleFile)
	if err != nil {
		return nil, err
	}
	pursuit, err := LoadSpec[PursuitSpec](PursuitFile)
	if err != nil {
		return nil, err
	}
	specs := &Specs{Scene: scene, Puzzle: puzzle, Pursuit: pursuit}
	if err := specs.Validate(); err != nil {
		return nil, err
	}
	return specs, nil
}

// Validate fills defaults and rejects specs the game cannot run with.
func (s *Specs) Validate() error {
	if s == nil {
		return fmt.Errorf("prefabs: nil specs")
	}
	if err := s.Scene.validate(); err != nil {
		return fmt.Errorf("prefabs: %s: %w", SceneFile, err)
	}
	if err := s.Puzzle.validate(); err != nil {
		return fmt.Errorf("prefabs: %s: %w", PuzzleFile, err)
	}
	if err := s.Pursuit.validate(); err != nil {
		return fmt.Errorf("prefabs: %s: %w", PursuitFile, err)
	}
	return nil
}

type SceneSpec struct {
	Name           string            `yaml:"name"`
	FPS            int               `yaml:"fps"`
	FadeSeconds    float64           `yaml:"fade_seconds"`
	LoadFadeFactor float64           `yaml:"load_fade_factor"`
	Fonts          FontSpec          `yaml:"fonts"`
	Menu           MenuSpec          `yaml:"menu"`
	Message        MessageSpec       `yaml:"message"`
	ChapterSelect  ChapterSelectSpec `yaml:"chapter_select"`
}

type FontSpec struct {
	Body    float64 `yaml:"body"`
	Title   float64 `yaml:"title"`
	Message float64 `yaml:"message"`
	Level   float64 `yaml:"level"`
}

type MenuSpec struct {
	Background        string    `yaml:"background"`
	BackgroundColor   YAMLColor `yaml:"background_color"`
	PlayButton        string    `yaml:"play_button"`
	PlayColor         YAMLColor `yaml:"play_color"`
	PlayWidth         int       `yaml:"play_width"`
	PlayHeight        int       `yaml:"play_height"`
	ButtonHeightRatio float64   `yaml:"button_height_ratio"`
	ButtonOffsetRatio float64   `yaml:"button_offset_ratio"`
	HoverScale        float64   `yaml:"hover_scale"`
}

type MessageSpec struct {
	Text       string `yaml:"text"`
	Background string `yaml:"background"`
	DurationMs int64  `yaml:"duration_ms"`
	FadeInMs   int64  `yaml:"fade_in_ms"`
	Step       int    `yaml:"step"`
	Outline    int    `yaml:"outline"`
}

type ChapterSelectSpec struct {
	Title               string        `yaml:"title"`
	BackgroundColor     YAMLColor     `yaml:"background_color"`
	TitleColor          YAMLColor     `yaml:"title_color"`
	TitleStep           int           `yaml:"title_step"`
	TitleHeightRatio    float64       `yaml:"title_height_ratio"`
	SpacingRatio        float64       `yaml:"spacing_ratio"`
	ThumbnailWidthRatio float64       `yaml:"thumbnail_width_ratio"`
	HoverScale          float64       `yaml:"hover_scale"`
	Chapters            []ChapterSpec `yaml:"chapters"`
}

type ChapterSpec struct {
	Name  string    `yaml:"name"`
	Level string    `yaml:"level"`
	Image string    `yaml:"image"`
	Color YAMLColor `yaml:"color"`
}

// GroundSpec is the strip the characters stand on. Its height is the screen
// height divided by HeightDivisor.
type GroundSpec struct {
	Image         string    `yaml:"image"`
	Color         YAMLColor `yaml:"color"`
	HeightDivisor int       `yaml:"height_divisor"`
}

type FramesSpec struct {
	Pattern   string    `yaml:"pattern"`
	Count     int       `yaml:"count"`
	Color     YAMLColor `yaml:"color"`
	FlipRight bool      `yaml:"flip_right"`
}

type HitboxSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerSpec tunes the shared player controller. Offsets are measured
// downward from the top of the ground strip.
type PlayerSpec struct {
	MoveSpeed       float64    `yaml:"move_speed"`
	Gravity         float64    `yaml:"gravity"`
	JumpStrength    float64    `yaml:"jump_strength"`
	JumpOnW         bool       `yaml:"jump_on_w"`
	BothKeysCancel  bool       `yaml:"both_keys_cancel"`
	BounceThreshold float64    `yaml:"bounce_threshold"`
	BounceFactor    float64    `yaml:"bounce_factor"`
	ClampMargin     float64    `yaml:"clamp_margin"`
	Width           int        `yaml:"width"`
	Height          int        `yaml:"height"`
	SpawnOffset     float64    `yaml:"spawn_offset"`
	GroundOffset    float64    `yaml:"ground_offset"`
	AnimationMs     int64      `yaml:"animation_ms"`
	Hitbox          HitboxSpec `yaml:"hitbox"`
	Stand           FramesSpec `yaml:"stand"`
	Walk            FramesSpec `yaml:"walk"`
}

type PuzzleSpec struct {
	Name            string     `yaml:"name"`
	Background      string     `yaml:"background"`
	BackgroundColor YAMLColor  `yaml:"background_color"`
	Ground          GroundSpec `yaml:"ground"`
	Player          PlayerSpec `yaml:"player"`
	Stones          StonesSpec `yaml:"stones"`
	Arrow           ArrowSpec  `yaml:"arrow"`
	Prompt          TextSpec   `yaml:"prompt"`
	Reward          RewardSpec `yaml:"reward"`
	ComboScript     string     `yaml:"combo_script"`
}

type StonesSpec struct {
	Images       []string  `yaml:"images"`
	Size         int       `yaml:"size"`
	Color        YAMLColor `yaml:"color"`
	Margin       int       `yaml:"margin"`
	GroundOffset float64   `yaml:"ground_offset"`
}

type ArrowSpec struct {
	Image     string    `yaml:"image"`
	Size      int       `yaml:"size"`
	Color     YAMLColor `yaml:"color"`
	Amplitude float64   `yaml:"amplitude"`
	Frequency float64   `yaml:"frequency"`
	Gap       int       `yaml:"gap"`
}

type TextSpec struct {
	Text    string    `yaml:"text"`
	Color   YAMLColor `yaml:"color"`
	Outline int       `yaml:"outline"`
	Gap     int       `yaml:"gap"`
}

type RewardSpec struct {
	Text    string    `yaml:"text"`
	Image   string    `yaml:"image"`
	Color   YAMLColor `yaml:"color"`
	Size    int       `yaml:"size"`
	TextY   int       `yaml:"text_y"`
	ImageY  int       `yaml:"image_y"`
	Outline int       `yaml:"outline"`
}

type PursuitSpec struct {
	Name            string      `yaml:"name"`
	Background      string      `yaml:"background"`
	BackgroundColor YAMLColor   `yaml:"background_color"`
	Ground          GroundSpec  `yaml:"ground"`
	Player          PlayerSpec  `yaml:"player"`
	Buffalo         BuffaloSpec `yaml:"buffalo"`
	Hit             HitSpec     `yaml:"hit"`
}

type BuffaloSpec struct {
	Frames              string    `yaml:"frames"`
	Count               int       `yaml:"count"`
	Width               int       `yaml:"width"`
	Height              int       `yaml:"height"`
	Color               YAMLColor `yaml:"color"`
	Outline             int       `yaml:"outline"`
	AnimationMs         int64     `yaml:"animation_ms"`
	GroundOffset        float64   `yaml:"ground_offset"`
	MaxSpeed            float64   `yaml:"max_speed"`
	Accel               float64   `yaml:"accel"`
	Decel               float64   `yaml:"decel"`
	BrakeChance         float64   `yaml:"brake_chance"`
	BrakeFactor         float64   `yaml:"brake_factor"`
	AggroRange          float64   `yaml:"aggro_range"`
	ChargeSpeed         float64   `yaml:"charge_speed"`
	Overshoot           float64   `yaml:"overshoot"`
	OverrunMs           int64     `yaml:"overrun_ms"`
	CooldownMs          int64     `yaml:"cooldown_ms"`
	CooldownDecelFactor float64   `yaml:"cooldown_decel_factor"`
	TurnChance          float64   `yaml:"turn_chance"`
	EdgeMargin          float64   `yaml:"edge_margin"`
	SpawnMin            int       `yaml:"spawn_min"`
	SpawnRightMargin    int       `yaml:"spawn_right_margin"`
	SpawnClearance      float64   `yaml:"spawn_clearance"`
	SpawnAttempts       int       `yaml:"spawn_attempts"`
}

type HitSpec struct {
	Impulse      float64 `yaml:"impulse"`
	InvincibleMs int64   `yaml:"invincible_ms"`
	BlinkMs      int64   `yaml:"blink_ms"`
}

func (s *SceneSpec) validate() error {
	if s.FPS <= 0 {
		s.FPS = 60
	}
	if s.FadeSeconds <= 0 {
		s.FadeSeconds = 0.4
	}
	if s.LoadFadeFactor <= 0 {
		s.LoadFadeFactor = 1
	}
	if s.Message.Step <= 0 {
		s.Message.Step = 10
	}
	if s.ChapterSelect.TitleStep <= 0 {
		s.ChapterSelect.TitleStep = 5
	}
	if s.Menu.HoverScale <= 0 {
		s.Menu.HoverScale = 1
	}
	if s.ChapterSelect.HoverScale <= 0 {
		s.ChapterSelect.HoverScale = 1
	}
	if s.Menu.PlayWidth <= 0 || s.Menu.PlayHeight <= 0 {
		return fmt.Errorf("menu: play button fallback size must be positive")
	}
	if len(s.ChapterSelect.Chapters) == 0 {
		return fmt.Errorf("chapter_select: no chapters")
	}
	return nil
}

func (g *GroundSpec) validate() {
	if g.HeightDivisor <= 0 {
		g.HeightDivisor = 6
	}
}

func (p *PlayerSpec) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("player: sprite size must be positive")
	}
	if p.AnimationMs <= 0 {
		p.AnimationMs = 120
	}
	if p.Hitbox.Width <= 0 || p.Hitbox.Height <= 0 {
		p.Hitbox = HitboxSpec{Width: float64(p.Width), Height: float64(p.Height)}
	}
	if p.Stand.Count <= 0 {
		return fmt.Errorf("player: stand animation needs at least one frame")
	}
	return nil
}

func (s *PuzzleSpec) validate() error {
	s.Ground.validate()
	if err := s.Player.validate(); err != nil {
		return err
	}
	if len(s.Stones.Images) < 2 {
		return fmt.Errorf("stones: need at least two stones")
	}
	if s.Stones.Size <= 0 {
		return fmt.Errorf("stones: size must be positive")
	}
	return nil
}

func (s *PursuitSpec) validate() error {
	s.Ground.validate()
	if err := s.Player.validate(); err != nil {
		return err
	}
	if s.Buffalo.Count <= 0 || s.Buffalo.Width <= 0 || s.Buffalo.Height <= 0 {
		return fmt.Errorf("buffalo: frames must have a positive count and size")
	}
	if s.Buffalo.AnimationMs <= 0 {
		s.Buffalo.AnimationMs = 120
	}
	if s.Buffalo.SpawnAttempts <= 0 {
		s.Buffalo.SpawnAttempts = 1
	}
	if s.Hit.BlinkMs <= 0 {
		s.Hit.BlinkMs = 100
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the color, or opaque black when unset.
func (c YAMLColor) NRGBA() color.NRGBA {
	if c.Color == nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
