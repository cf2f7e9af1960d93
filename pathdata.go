package svg

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// ParsePathData splits a path description into commands. Empty or blank
// data yields no commands. Otherwise the description must start with a
// move-to, every letter must be a known command and each command must
// receive a whole number of argument groups.
//
// Numbers follow the compact path grammar: separators are optional where
// the next number starts with a sign or a second decimal point, so
// "M-5-5l.5.5" is two commands, and arc flags are single digits, so
// "a5,5 0 0110,10" carries the flags 0 and 1 followed by 10,10.
func ParsePathData(d string) ([]PathCommand, error) {
	p := &pathDataParser{d: d}

	var cmds []PathCommand
	for {
		p.skipSeparators()
		if p.eof() {
			return cmds, nil
		}

		letter := p.d[p.pos]
		upper := letter &^ 0x20
		kind, ok := commandLetters[upper]
		if !ok || !isLetter(letter) {
			if len(cmds) == 0 && !isLetter(letter) {
				return nil, errors.Newf("number at offset %d before any command", p.pos)
			}
			return nil, errors.Newf("unknown path command %q at offset %d", letter, p.pos)
		}
		if len(cmds) == 0 && kind != MoveCommand {
			return nil, errors.Newf("path data must start with a move-to, got %c", letter)
		}
		p.pos++

		cmd := PathCommand{Kind: kind, Letter: letter, Relative: letter != upper}
		args, err := p.arguments(kind)
		if err != nil {
			return nil, errors.Wrapf(err, "command %c", letter)
		}
		cmd.Args = args

		arity := kind.Arity()
		switch {
		case arity == 0 && len(args) != 0:
			return nil, errors.Newf("command %c takes no arguments, got %d", letter, len(args))
		case arity > 0 && (len(args) == 0 || len(args)%arity != 0):
			return nil, errors.Newf("command %c takes groups of %d arguments, got %d", letter, arity, len(args))
		}
		cmds = append(cmds, cmd)
	}
}

type pathDataParser struct {
	d   string
	pos int
}

func (p *pathDataParser) eof() bool {
	return p.pos >= len(p.d)
}

func (p *pathDataParser) skipSeparators() {
	for !p.eof() {
		switch p.d[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			p.pos++
		default:
			return
		}
	}
}

// arguments reads numbers until the next command letter or the end.
func (p *pathDataParser) arguments(kind CommandKind) ([]float64, error) {
	var args []float64
	for {
		p.skipSeparators()
		if p.eof() || isLetter(p.d[p.pos]) {
			return args, nil
		}

		if kind == ArcCommand && isArcFlag(len(args)) {
			flag, err := p.flag()
			if err != nil {
				return nil, err
			}
			args = append(args, flag)
			continue
		}

		n, err := p.number()
		if err != nil {
			return nil, err
		}
		args = append(args, n)
	}
}

// flag reads a single 0 or 1.
func (p *pathDataParser) flag() (float64, error) {
	switch p.d[p.pos] {
	case '0':
		p.pos++
		return 0, nil
	case '1':
		p.pos++
		return 1, nil
	}
	return 0, errors.Newf("arc flag must be 0 or 1 at offset %d", p.pos)
}

// number reads [sign] digits [. digits] [e [sign] digits].
func (p *pathDataParser) number() (float64, error) {
	start := p.pos
	if c := p.d[p.pos]; c == '+' || c == '-' {
		p.pos++
	}
	digits := p.digits()
	if !p.eof() && p.d[p.pos] == '.' {
		p.pos++
		digits += p.digits()
	}
	if digits == 0 {
		return 0, errors.Newf("malformed number at offset %d", start)
	}

	// an exponent only counts when digits follow it
	if !p.eof() && (p.d[p.pos] == 'e' || p.d[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if !p.eof() && (p.d[p.pos] == '+' || p.d[p.pos] == '-') {
			p.pos++
		}
		if p.digits() == 0 {
			p.pos = mark
		}
	}

	n, err := strconv.ParseFloat(p.d[start:p.pos], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing number %s", p.d[start:p.pos])
	}
	return n, nil
}

func (p *pathDataParser) digits() int {
	n := 0
	for !p.eof() && p.d[p.pos] >= '0' && p.d[p.pos] <= '9' {
		p.pos++
		n++
	}
	return n
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isArcFlag reports whether the argument at index i of an arc command is
// the large-arc or sweep flag.
func isArcFlag(i int) bool {
	i %= ArcCommand.Arity()
	return i == 3 || i == 4
}

func checkPathData(e *Element) error {
	d, _ := e.Attr("d")
	if _, err := ParsePathData(d); err != nil {
		return newInvalidValue(PathVariant, "d", err.Error())
	}
	return nil
}
