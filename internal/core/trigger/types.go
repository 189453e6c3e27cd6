package trigger

import (
	"errors"
	"fmt"
)

// Binding is the persisted identity of the screenshot trigger.
type Binding string

// DefaultBinding is the identity of the X1 (back) mouse button. The literal is
// kept verbatim so config files written by earlier releases stay valid.
const DefaultBinding Binding = "(256, 128, 1)"

var ErrUnsupportedInput = errors.New("unsupported input")

type Kind uint8

const (
	KindUnknown Kind = iota
	KindMouse
	KindChar
	KindNamed
)

// MouseButton is identified by its SendInput up/down flags and mouse data.
type MouseButton struct {
	UpFlag   uint32
	DownFlag uint32
	Data     uint32
}

var (
	ButtonLeft   = MouseButton{UpFlag: 0x0004, DownFlag: 0x0002}
	ButtonRight  = MouseButton{UpFlag: 0x0010, DownFlag: 0x0008}
	ButtonMiddle = MouseButton{UpFlag: 0x0040, DownFlag: 0x0020}
	ButtonX1     = MouseButton{UpFlag: 0x0100, DownFlag: 0x0080, Data: 1}
	ButtonX2     = MouseButton{UpFlag: 0x0100, DownFlag: 0x0080, Data: 2}
)

func (b MouseButton) IsZero() bool {
	return b == MouseButton{}
}

func (b MouseButton) String() string {
	return fmt.Sprintf("(%d, %d, %d)", b.UpFlag, b.DownFlag, b.Data)
}

// Input is a single global input notification.
type Input struct {
	Kind    Kind
	Button  MouseButton
	Char    rune
	Name    string
	Pressed bool
}

func MousePress(b MouseButton) Input {
	return Input{Kind: KindMouse, Button: b, Pressed: true}
}

func MouseRelease(b MouseButton) Input {
	return Input{Kind: KindMouse, Button: b}
}

func CharPress(r rune) Input {
	return Input{Kind: KindChar, Char: r, Pressed: true}
}

func NamedPress(name string) Input {
	return Input{Kind: KindNamed, Name: name, Pressed: true}
}

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
