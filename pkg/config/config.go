package config

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strconv"

	"codeberg.org/miketth/hyprinput/pkg/input"
	"codeberg.org/miketth/hyprinput/pkg/keysym"
	"codeberg.org/miketth/hyprinput/pkg/keysym/xkb"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoOutputs = errors.New("at least one output is required")
	ErrBadSeat   = errors.New("seat names must be unique and non-empty")

	ErrUnsupportedLayout = errors.New("only the us layout is available without libxkbcommon")
)

type KeyboardConfig struct {
	Rules       string `yaml:"rules"`
	Model       string `yaml:"model"`
	Layout      string `yaml:"layout"`
	Variant     string `yaml:"variant"`
	Options     string `yaml:"options"`
	RepeatDelay int    `yaml:"repeat_delay"`
	RepeatRate  int    `yaml:"repeat_rate"`
}

type OutputConfig struct {
	Name   string `yaml:"name"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type BindingConfig struct {
	Keys   string `yaml:"keys"`
	Action string `yaml:"action"`
	Arg    string `yaml:"arg"`
}

type JournalConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type Config struct {
	Socket   string          `yaml:"socket"`
	Seats    []string        `yaml:"seats"`
	EvdevXML string          `yaml:"evdev_xml"`
	Keyboard KeyboardConfig  `yaml:"keyboard"`
	Outputs  []OutputConfig  `yaml:"outputs"`
	Bindings []BindingConfig `yaml:"bindings"`
	Journal  JournalConfig   `yaml:"journal"`
}

func Default() Config {
	cfg := Config{
		Outputs: []OutputConfig{{Name: "HEADLESS-1", Width: 1920, Height: 1080}},
		Bindings: []BindingConfig{
			{Keys: "Super+Escape", Action: "terminate"},
			{Keys: "Super+d", Action: "debug"},
			{Keys: "Super+q", Action: "close"},
			{Keys: "Super+Return", Action: "spawn", Arg: "foot"},
			{Keys: "Super+Left", Action: "focus", Arg: "left"},
			{Keys: "Super+Right", Action: "focus", Arg: "right"},
			{Keys: "Super+Up", Action: "focus", Arg: "up"},
			{Keys: "Super+Down", Action: "focus", Arg: "down"},
			{Keys: "Super+h", Action: "orientation", Arg: "horizontal"},
			{Keys: "Super+v", Action: "orientation", Arg: "vertical"},
		},
	}
	for i := 0; i < 10; i++ {
		key := strconv.Itoa(i)
		cfg.Bindings = append(cfg.Bindings,
			BindingConfig{Keys: "Super+" + key, Action: "workspace", Arg: key},
			BindingConfig{Keys: "Super+Shift+" + key, Action: "move_to_workspace", Arg: key},
		)
	}
	cfg.normalize()
	return cfg
}

// DefaultPath is the config file location under the XDG config home.
func DefaultPath() (string, error) {
	path, err := xdg.ConfigFile("hyprinput/config.yaml")
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

// Load reads a config file. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Socket == "" {
		c.Socket = "wayland-1"
	}
	if len(c.Seats) == 0 {
		c.Seats = []string{"seat0"}
	}
	if c.EvdevXML == "" {
		c.EvdevXML = "/usr/share/X11/xkb/rules/evdev.xml"
	}

	def := input.DefaultKeyboardConfig()
	if c.Keyboard.Layout == "" {
		c.Keyboard.Layout = def.Layout
	}
	if c.Keyboard.RepeatDelay == 0 {
		c.Keyboard.RepeatDelay = def.RepeatDelay
	}
	if c.Keyboard.RepeatRate == 0 {
		c.Keyboard.RepeatRate = def.RepeatRate
	}

	if c.Journal.Driver == "" {
		c.Journal.Driver = "memory"
	}
}

func (c Config) validate() error {
	seen := make(map[string]bool, len(c.Seats))
	for _, name := range c.Seats {
		if name == "" || seen[name] {
			return fmt.Errorf("seat %q: %w", name, ErrBadSeat)
		}
		seen[name] = true
	}
	if len(c.Outputs) == 0 {
		return ErrNoOutputs
	}
	for _, o := range c.Outputs {
		if o.Name == "" {
			return errors.New("output name required")
		}
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("output %q: size must be > 0", o.Name)
		}
	}
	if c.Keyboard.RepeatDelay < 0 || c.Keyboard.RepeatRate < 0 {
		return errors.New("keyboard repeat settings must be >= 0")
	}
	if !xkb.Available && (c.Keyboard.Layout != "us" || c.Keyboard.Variant != "") {
		return fmt.Errorf("layout %q variant %q: %w", c.Keyboard.Layout, c.Keyboard.Variant, ErrUnsupportedLayout)
	}
	switch c.Journal.Driver {
	case "memory":
	case "json", "sqlite":
		if c.Journal.Path == "" {
			return fmt.Errorf("journal driver %q needs a path", c.Journal.Driver)
		}
	default:
		return fmt.Errorf("unknown journal driver %q", c.Journal.Driver)
	}
	if _, err := c.BindingTable(); err != nil {
		return err
	}
	return nil
}

func (c Config) KeyboardDefaults() input.KeyboardConfig {
	return input.KeyboardConfig{
		Rules:       c.Keyboard.Rules,
		Model:       c.Keyboard.Model,
		Layout:      c.Keyboard.Layout,
		Variant:     c.Keyboard.Variant,
		Options:     c.Keyboard.Options,
		RepeatDelay: c.Keyboard.RepeatDelay,
		RepeatRate:  c.Keyboard.RepeatRate,
	}
}

func (c Config) OutputList() []*input.Output {
	out := make([]*input.Output, 0, len(c.Outputs))
	for _, o := range c.Outputs {
		out = append(out, &input.Output{
			Name:     o.Name,
			Geometry: image.Rect(o.X, o.Y, o.X+o.Width, o.Y+o.Height),
		})
	}
	return out
}

// BindingTable builds the ordered binding table. Earlier entries win.
func (c Config) BindingTable() ([]input.Binding, error) {
	table := make([]input.Binding, 0, len(c.Bindings))
	for _, b := range c.Bindings {
		mods, key, err := keysym.ParseCombo(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding: %w", err)
		}
		action, err := ParseAction(b.Action, b.Arg)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Keys, err)
		}
		table = append(table, input.Binding{Modifiers: mods, Key: key, Action: action})
	}
	return table, nil
}

func ParseAction(name, arg string) (input.Action, error) {
	kind, err := input.ParseActionKind(name)
	if err != nil {
		return input.Action{}, err
	}

	switch kind {
	case input.ActionTerminate:
		return input.Terminate(), nil
	case input.ActionToggleDebug:
		return input.ToggleDebug(), nil
	case input.ActionCloseFocused:
		return input.CloseFocused(), nil
	case input.ActionSwitchWorkspace, input.ActionMoveWindowToWorkspace:
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 || n > 9 {
			return input.Action{}, fmt.Errorf("%s: workspace key must be 0-9, got %q", name, arg)
		}
		if kind == input.ActionSwitchWorkspace {
			return input.SwitchWorkspace(n), nil
		}
		return input.MoveWindowToWorkspace(n), nil
	case input.ActionMoveFocus:
		dir, err := input.ParseDirection(arg)
		if err != nil {
			return input.Action{}, err
		}
		return input.MoveFocus(dir), nil
	case input.ActionSetOrientation:
		o, err := input.ParseOrientation(arg)
		if err != nil {
			return input.Action{}, err
		}
		return input.SetOrientation(o), nil
	case input.ActionSpawn:
		if arg == "" {
			return input.Action{}, errors.New("spawn: command required")
		}
		return input.Spawn(arg), nil
	}

	return input.Action{}, fmt.Errorf("unhandled action %q", name)
}
