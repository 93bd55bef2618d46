package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vlopes11/reginae/heuristics"
	"github.com/vlopes11/reginae/lib"
)

var configPath string

func init() {
	log.SetFlags(0)
	log.SetPrefix("[tui] ")

	flag.StringVar(&configPath, "config", "", "yaml run configuration, watched for weight changes")
	flag.Parse()
}

type state struct {
	app    *tview.Application
	view   *tview.TextView
	layout *tview.Flex

	board    *lib.Board
	refs     []lib.EvaluatorRef
	config   string
	column   int
	row      int
	messages []string
}

func main() {
	app := tview.NewApplication()
	view := tview.NewTextView()
	view.SetDynamicColors(true)
	layout := tview.NewFlex().SetDirection(tview.FlexRow)
	layout.AddItem(view, 0, 1, true)

	s := &state{
		app:    app,
		view:   view,
		layout: layout,
		board:  lib.NewBoard(8),
		config: configPath,
	}
	view.SetInputCapture(s.handle)

	if len(s.config) > 0 {
		if config := s.reload(); config != nil && config.Width > 0 {
			s.board = lib.NewBoard(config.Width)
		}
		go s.watch()
	}

	s.render()
	if err := app.SetRoot(layout, true).Run(); err != nil {
		log.Panic(err.Error())
	}
	fmt.Println("bye!")
}

func (s *state) handle(event *tcell.EventKey) *tcell.EventKey {
	s.messages = s.messages[:0]
	width := s.board.Width()

	switch {
	case event.Key() == tcell.KeyLeft || event.Rune() == 'h':
		if s.column > 0 {
			s.column--
		}
	case event.Key() == tcell.KeyDown || event.Rune() == 'j':
		if s.row < width-1 {
			s.row++
		}
	case event.Key() == tcell.KeyUp || event.Rune() == 'k':
		if s.row > 0 {
			s.row--
		}
	case event.Key() == tcell.KeyRight || event.Rune() == 'l':
		if s.column < width-1 {
			s.column++
		}
	case event.Rune() == ' ':
		s.board.ToggleWithPair(s.column, s.row)
		if s.board.IsSolved() {
			s.say("solved!")
		}
	case event.Rune() == 'c':
		s.board.Clear()
	case event.Rune() == 'x':
		s.solve()
	case event.Rune() == 'r':
		s.resize()
		return nil
	case event.Rune() == 'q':
		s.app.Stop()
		return nil
	case event.Rune() != 0:
		s.say(fmt.Sprintf("unknown `%c` command", event.Rune()))
	}

	s.render()
	return nil
}

func (s *state) solve() {
	solver := lib.NewSolver()
	for _, ref := range s.refs {
		if f, ok := heuristics.Lookup(ref.Name); ok {
			solver.WithEvaluator(f, ref.Weight)
		}
	}

	solution := solver.Solve(s.board.Clone())
	if solution.Success {
		s.board = solution.Board
		s.say(fmt.Sprintf("solved in %d jumps!", solution.Jumps))
	} else {
		s.say(fmt.Sprintf("board exhausted in %d jumps!", solution.Jumps))
	}
}

func (s *state) resize() {
	input := tview.NewInputField().
		SetLabel("enter the new width: ").
		SetAcceptanceFunc(tview.InputFieldInteger)
	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			if w, err := strconv.Atoi(input.GetText()); err == nil && w > 0 {
				s.board = lib.NewBoard(w)
				s.column, s.row = 0, 0
			} else {
				s.say("invalid width")
			}
		}
		s.layout.RemoveItem(input)
		s.app.SetFocus(s.view)
		s.render()
	})
	s.layout.AddItem(input, 1, 0, true)
	s.app.SetFocus(input)
}

func (s *state) render() {
	sb := strings.Builder{}

	for r, row := range s.board.Rows() {
		for c, cell := range row {
			glyph := lib.FreeRune
			if cell.IsQueen() {
				glyph = lib.QueenRune
			} else if cell.IsAttacked() {
				glyph = lib.AttackedRune
			}
			if r == s.row && c == s.column {
				fmt.Fprintf(&sb, "[:red]%c[:-]", glyph)
			} else {
				sb.WriteRune(glyph)
			}
		}
		sb.WriteRune('\n')
	}

	sb.WriteString("\nhjkl - move; c - clear; r - resize; x - solve; space - toggle queen; q - quit\n")
	for _, m := range s.messages {
		sb.WriteString(m)
		sb.WriteRune('\n')
	}

	s.view.SetText(sb.String())
}

func (s *state) say(message string) {
	s.messages = append(s.messages, message)
}

func (s *state) reload() *lib.Config {
	config, err := lib.LoadConfig(s.config)
	if err != nil {
		s.say(fmt.Sprintf("config: %v", err))
		return nil
	}

	for _, ref := range config.Evaluators {
		if _, ok := heuristics.Lookup(ref.Name); !ok {
			s.say(fmt.Sprintf("unknown evaluator '%s', have %v", ref.Name, heuristics.Names()))
			return nil
		}
	}

	s.refs = config.Evaluators
	s.say(fmt.Sprintf("loaded %d weighted evaluators", len(s.refs)))
	return config
}

func (s *state) watch() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Println("error:", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(s.config); err != nil {
		log.Println("error:", err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if (event.Op & (fsnotify.Write | fsnotify.Create)) > 0 {
				s.app.QueueUpdateDraw(func() {
					s.messages = s.messages[:0]
					s.reload()
					s.render()
				})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Println("error:", err)
		}
	}
}
