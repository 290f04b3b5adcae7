package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/multiline"
	"github.com/iw2rmb/multiline/buffer"
	"github.com/iw2rmb/multiline/editor"
)

var (
	configPath   = flag.String("config", "", "YAML file with prompt settings and key bindings")
	logPath      = flag.String("log", "", "append debug log to this file")
	visibleLines = flag.Int("lines", 4, "number of input lines to show (0 shows all)")
	showVersion  = flag.Bool("version", false, "print version and exit")
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

type model struct {
	input  editor.Model
	logger *log.Logger
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case editor.SubmitMsg:
		m.logger.Printf("submit %q", msg.Text)
		if msg.Text == "" {
			return m, nil
		}
		return m, tea.Println(msg.Text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.input.View() }

func newLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "multiline ", log.LstdFlags|log.Lmicroseconds), f, nil
}

func run() error {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	logger, closer, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := editor.Config{
		VisibleLines: *visibleLines,
		Style:        editor.DefaultStyle(),
		OnLineSwitch: func(ev buffer.LineSwitch) {
			logger.Printf("line %d -> %d (%s)", ev.Previous, ev.Current, ev.Cause)
		},
	}
	if *configPath != "" {
		fc, err := editor.LoadConfigFile(*configPath)
		if err != nil {
			return err
		}
		if cfg, err = fc.Apply(cfg); err != nil {
			return err
		}
	}

	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	logger.Printf("starting %s", multiline.VersionTag())

	p := tea.NewProgram(model{input: editor.New(cfg), logger: logger})
	_, err = p.Run()
	return err
}

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(multiline.BuildInfo())
		return
	}
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
