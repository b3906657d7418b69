package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/solver"
	"github.com/vancomm/minesweeper/internal/view"
)

type command struct {
	name             string
	aliases          []string
	usage            string
	minArgs, maxArgs int
	run              func(s *Session, args []string) error
}

var commands []*command

// Maps command names and aliases to commands
var commandTable = map[string]*command{}

func init() {
	commands = []*command{
		{
			name:    "new",
			usage:   "new [easy|intermediate|hard] | new W H M [SEED] | new width=W height=H mine_count=M [seed=S]",
			maxArgs: 4,
			run:     (*Session).newGame,
		},
		{
			name:    "reveal",
			aliases: []string{"r"},
			usage:   "reveal X Y",
			minArgs: 2,
			maxArgs: 2,
			run:     (*Session).reveal,
		},
		{
			name:    "mark",
			aliases: []string{"m"},
			usage:   "mark X Y",
			minArgs: 2,
			maxArgs: 2,
			run:     (*Session).mark,
		},
		{
			name:    "print",
			aliases: []string{"p"},
			usage:   "print [json]",
			maxArgs: 1,
			run:     (*Session).print,
		},
		{
			name:  "hint",
			usage: "hint",
			run:   (*Session).hint,
		},
		{
			name:  "solve",
			usage: "solve",
			run:   (*Session).solve,
		},
		{
			name:  "help",
			usage: "help",
			run:   (*Session).help,
		},
		{
			name:    "quit",
			aliases: []string{"q", "exit"},
			usage:   "quit",
			run: func(*Session, []string) error {
				return ErrQuit
			},
		},
	}
	for _, c := range commands {
		commandTable[c.name] = c
		for _, alias := range c.aliases {
			commandTable[alias] = c
		}
	}
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("x must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("y must be an int")
		return
	}
	return
}

func (s *Session) reveal(args []string) error {
	b, err := s.current()
	if err != nil {
		return err
	}
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}

	wasStarted := b.Started()
	res, err := b.Reveal(x, y)
	if err != nil {
		return err
	}
	p := mines.Point{X: x, Y: y}
	s.journal.Move(s.gameID, "reveal", p, res.String(), b.MinesRemaining())

	if res == mines.RevealNoOp {
		if b.Outcome().Terminal() {
			fmt.Fprintln(s.out, "the game is over, start another with new")
		} else {
			fmt.Fprintf(s.out, "nothing to reveal at %s\n", p)
		}
		return nil
	}

	s.track(wasStarted)
	if err := s.Render(); err != nil {
		return err
	}
	s.announce()
	return nil
}

func (s *Session) mark(args []string) error {
	b, err := s.current()
	if err != nil {
		return err
	}
	x, y, err := parseXY(args)
	if err != nil {
		return err
	}

	wasStarted := b.Started()
	change, err := b.CycleMark(x, y)
	if err != nil {
		return err
	}
	p := mines.Point{X: x, Y: y}
	s.journal.Move(s.gameID, "mark", p, change.Mark.String(), b.MinesRemaining())

	if !change.Applied {
		if b.Outcome().Terminal() {
			fmt.Fprintln(s.out, "the game is over, start another with new")
		} else {
			fmt.Fprintf(s.out, "%s is already revealed\n", p)
		}
		return nil
	}

	s.track(wasStarted)
	if err := s.Render(); err != nil {
		return err
	}
	s.announce()
	return nil
}

func (s *Session) print(args []string) error {
	b, err := s.current()
	if err != nil {
		return err
	}
	format := "text"
	if len(args) == 1 {
		format = strings.ToLower(args[0])
	}
	switch format {
	case "text":
		return s.Render()
	case "json":
		return view.JSON(s.out, view.New(b, s.Elapsed()))
	default:
		return fmt.Errorf("unknown print format %q", args[0])
	}
}

func (s *Session) hint([]string) error {
	b, err := s.current()
	if err != nil {
		return err
	}
	if b.Outcome().Terminal() {
		fmt.Fprintln(s.out, "the game is over, start another with new")
		return nil
	}
	h, ok := solver.Next(b)
	if !ok {
		fmt.Fprintln(s.out, "no hint: nothing follows from the open cells")
		return nil
	}
	fmt.Fprintf(s.out, "hint: %s\n", h)
	return nil
}

func (s *Session) solve([]string) error {
	b, err := s.current()
	if err != nil {
		return err
	}
	if b.Outcome().Terminal() {
		fmt.Fprintln(s.out, "the game is over, start another with new")
		return nil
	}

	wasStarted := b.Started()
	moves, err := solver.Solve(b)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "solver made %d moves\n", moves)
	if moves == 0 {
		return nil
	}

	s.track(wasStarted)
	if err := s.Render(); err != nil {
		return err
	}
	s.announce()
	return nil
}

func (s *Session) help([]string) error {
	fmt.Fprintln(s.out, "commands:")
	for _, c := range commands {
		line := "  " + c.usage
		if len(c.aliases) != 0 {
			line += " (also " + strings.Join(c.aliases, ", ") + ")"
		}
		fmt.Fprintln(s.out, line)
	}
	return nil
}
