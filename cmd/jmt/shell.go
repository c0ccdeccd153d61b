package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/NichtsVonChaos/japanese-mahjong-theory/game"
	"github.com/NichtsVonChaos/japanese-mahjong-theory/mahjong"
)

const helpText = `commands:
  tehai <notation>   set the hand, e.g. tehai 123445m4445p8s[111z]
  tsumo <tile>       draw a tile from the wall, e.g. tsumo 5p
  dahai <tile>       discard a tile onto the river
  see <tiles...>     mark tiles visible elsewhere, e.g. see 1z 1z 9s
  unsee <tiles...>   revert a mistaken see
  analyze            print shanten and wait conditions
  yama               print the unseen pool
  reset              forget the hand, the river and the wall
  help               this text
  exit               leave`

type shellController struct {
	l   *readline.Instance
	g   *game.Game
	log logrus.FieldLogger
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func newShell(log logrus.FieldLogger, historyFile string) (*shellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mjmt>\033[0m ",
		HistoryFile:     historyFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &shellController{l: l, g: game.New(log), log: log}, nil
}

func (sc *shellController) close() {
	sc.l.Close()
}

func (sc *shellController) show(msg string) {
	io.WriteString(sc.l.Stderr(), msg)
	io.WriteString(sc.l.Stderr(), "\n")
}

func (sc *shellController) loop() {
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "exit" || cmd == "quit" {
			break
		}
		if err := sc.execute(cmd, args); err != nil {
			sc.show("error: " + err.Error())
		}
	}
}

func (sc *shellController) execute(cmd string, args []string) error {
	switch cmd {
	case "help":
		sc.show(helpText)
	case "tehai":
		if len(args) == 0 {
			return fmt.Errorf("usage: tehai <notation>")
		}
		if err := sc.g.SetTehai(strings.Join(args, " ")); err != nil {
			return err
		}
		return sc.analyze()
	case "tsumo":
		tile, err := parseTileArg(args)
		if err != nil {
			return err
		}
		if err := sc.g.Draw(tile); err != nil {
			return err
		}
		return sc.analyze()
	case "dahai":
		tile, err := parseTileArg(args)
		if err != nil {
			return err
		}
		if err := sc.g.Discard(tile); err != nil {
			return err
		}
		return sc.analyze()
	case "see", "unsee":
		if len(args) == 0 {
			return fmt.Errorf("usage: %s <tiles...>", cmd)
		}
		for _, arg := range args {
			tile := mahjong.ParseTile(arg)
			if tile == mahjong.TileNull {
				return fmt.Errorf("unknown tile %q", arg)
			}
			var err error
			if cmd == "see" {
				err = sc.g.See(tile)
			} else {
				err = sc.g.Unsee(tile)
			}
			if err != nil {
				return err
			}
		}
	case "analyze":
		return sc.analyze()
	case "yama":
		sc.show(sc.g.Yama().String())
	case "reset":
		sc.g.Initialize()
		sc.show("reset")
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

func (sc *shellController) analyze() error {
	tehai := sc.g.Tehai()
	if tehai == nil {
		return fmt.Errorf("no tehai set, try: tehai 123445m4445p8s[111z]")
	}
	shanten, conditions, err := sc.g.Analyze()
	if err != nil {
		return err
	}
	sc.show("--------")
	sc.show("tehai: " + tehai.String())
	switch shanten {
	case -1:
		sc.show("agari (complete)")
	case 0:
		sc.show("tenpai")
	default:
		sc.show(fmt.Sprintf("shanten: %d", shanten))
	}
	for _, cond := range conditions {
		sc.show(cond.String())
	}
	sc.show("--------")
	return nil
}

func parseTileArg(args []string) (mahjong.Tile, error) {
	if len(args) != 1 {
		return mahjong.TileNull, fmt.Errorf("expected one tile argument, e.g. 5p")
	}
	tile := mahjong.ParseTile(args[0])
	if tile == mahjong.TileNull {
		return mahjong.TileNull, fmt.Errorf("unknown tile %q", args[0])
	}
	return tile, nil
}
