package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/multiline/buffer"
)

// ErrUnknownAction is returned when a config file binds keys to an action
// name the editor does not know.
var ErrUnknownAction = errors.New("unknown action")

// FileConfig is the on-disk form of the console prompt settings. Unset
// fields leave the corresponding Config value alone.
//
//	prompt: "] "
//	newline_symbol: "\n"
//	visible_lines: 4
//	multi_line: true
//	keys:
//	  new-line: [alt+enter, ctrl+j]
//	  submit: [enter]
type FileConfig struct {
	Prompt        *string             `yaml:"prompt"`
	NewlineSymbol *string             `yaml:"newline_symbol"`
	VisibleLines  *int                `yaml:"visible_lines"`
	MultiLine     *bool               `yaml:"multi_line"`
	Keys          map[string][]string `yaml:"keys"`
}

// LoadConfig decodes a YAML config. Unknown fields are an error; empty input
// yields an empty FileConfig.
func LoadConfig(r io.Reader) (FileConfig, error) {
	var fc FileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, fmt.Errorf("editor: decode config: %w", err)
	}
	return fc, nil
}

func LoadConfigFile(path string) (FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("editor: open config: %w", err)
	}
	defer f.Close()

	fc, err := LoadConfig(f)
	if err != nil {
		return FileConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// Apply overlays fc onto cfg. Key lists replace the default keys of the
// named action; an empty list unbinds it.
func (fc FileConfig) Apply(cfg Config) (Config, error) {
	if fc.Prompt != nil {
		cfg.Prompt = *fc.Prompt
	}
	if fc.NewlineSymbol != nil {
		cfg.NewlineSymbol = *fc.NewlineSymbol
	}
	if fc.VisibleLines != nil {
		cfg.VisibleLines = *fc.VisibleLines
	}
	if fc.MultiLine != nil {
		cfg.DisableMultiLine = !*fc.MultiLine
	}
	if len(fc.Keys) == 0 {
		return cfg, nil
	}

	km := cfg.KeyMap
	if km.isZero() {
		km = DefaultKeyMap()
	}

	names := make([]string, 0, len(fc.Keys))
	for name := range fc.Keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a, ok := buffer.ParseAction(name)
		b := km.Binding(a)
		if !ok || b == nil {
			return cfg, fmt.Errorf("editor: keys: %q: %w", name, ErrUnknownAction)
		}
		keys := fc.Keys[name]
		if len(keys) == 0 {
			b.Unbind()
			continue
		}
		b.SetKeys(keys...)
		b.SetHelp(strings.Join(keys, "/"), b.Help().Desc)
		b.SetEnabled(true)
	}
	cfg.KeyMap = km
	return cfg, nil
}
