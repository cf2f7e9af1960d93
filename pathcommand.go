package svg

// CommandKind identifies a path-data command regardless of whether it was
// written in absolute or relative form.
type CommandKind int

// These are the commands understood in a path "d" attribute
const (
	MoveCommand CommandKind = iota
	LineCommand
	HLineCommand
	VLineCommand
	CurveCommand
	SmoothCurveCommand
	QuadCommand
	SmoothQuadCommand
	ArcCommand
	CloseCommand
)

// PathCommand is one command of a path description with its arguments.
// Repeated argument groups following a single letter are kept together,
// so len(Args) is a multiple of the command arity.
type PathCommand struct {
	Kind     CommandKind
	Letter   byte
	Relative bool
	Args     []float64
}

var commandLetters = map[byte]CommandKind{
	'M': MoveCommand,
	'L': LineCommand,
	'H': HLineCommand,
	'V': VLineCommand,
	'C': CurveCommand,
	'S': SmoothCurveCommand,
	'Q': QuadCommand,
	'T': SmoothQuadCommand,
	'A': ArcCommand,
	'Z': CloseCommand,
}

var commandArity = [...]int{
	MoveCommand:        2,
	LineCommand:        2,
	HLineCommand:       1,
	VLineCommand:       1,
	CurveCommand:       6,
	SmoothCurveCommand: 4,
	QuadCommand:        4,
	SmoothQuadCommand:  2,
	ArcCommand:         7,
	CloseCommand:       0,
}

// Arity returns the number of arguments one repetition of the command takes.
func (k CommandKind) Arity() int {
	return commandArity[k]
}

// Endpoint returns the last point named by the command, if it names one
// with both coordinates.
func (c PathCommand) Endpoint() (Tuple, bool) {
	switch c.Kind {
	case HLineCommand, VLineCommand, CloseCommand:
		return Tuple{}, false
	}
	if len(c.Args) < 2 {
		return Tuple{}, false
	}
	n := len(c.Args)
	return Tuple{c.Args[n-2], c.Args[n-1]}, true
}
