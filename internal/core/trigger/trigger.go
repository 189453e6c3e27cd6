package trigger

import (
	"fmt"
	"strings"
	"unicode"
)

const namedKeyPrefix = "Key."

// Identity returns the canonical string for in. Character keys map to the
// character itself, named keys to "Key.<name>" and mouse buttons to their
// flag tuple.
func (in Input) Identity() (string, error) {
	switch in.Kind {
	case KindMouse:
		if in.Button.IsZero() {
			return "", fmt.Errorf("%w: mouse button without identity", ErrUnsupportedInput)
		}
		return in.Button.String(), nil
	case KindChar:
		if in.Char == 0 || in.Char == unicode.ReplacementChar {
			return "", fmt.Errorf("%w: key without character", ErrUnsupportedInput)
		}
		return string(in.Char), nil
	case KindNamed:
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return "", fmt.Errorf("%w: key without name", ErrUnsupportedInput)
		}
		return namedKeyPrefix + strings.TrimPrefix(name, namedKeyPrefix), nil
	default:
		return "", fmt.Errorf("%w: kind %d", ErrUnsupportedInput, in.Kind)
	}
}

// BindingFor normalizes in into a Binding regardless of press state.
func BindingFor(in Input) (Binding, error) {
	id, err := in.Identity()
	if err != nil {
		return "", err
	}
	return Binding(id), nil
}

// buttonAliases maps the "Button.<name>" spelling found in hand-edited
// config files to the flag tuple identity.
var buttonAliases = map[string]MouseButton{
	"Button.left":   ButtonLeft,
	"Button.right":  ButtonRight,
	"Button.middle": ButtonMiddle,
	"Button.x1":     ButtonX1,
	"Button.x2":     ButtonX2,
}

// Canonical resolves mouse button aliases in b to their flag tuple. Other
// bindings are returned unchanged.
func Canonical(b Binding) Binding {
	if button, ok := buttonAliases[string(b)]; ok {
		return Binding(button.String())
	}
	return b
}

// Matches reports whether in is a press whose identity equals b.
func Matches(in Input, b Binding) bool {
	if !in.Pressed {
		return false
	}
	id, err := in.Identity()
	if err != nil {
		return false
	}
	return id == string(Canonical(b))
}

// DisplayName renders b for status text.
func DisplayName(b Binding) string {
	raw := string(Canonical(b))
	if strings.TrimSpace(raw) == "" {
		return "-"
	}

	switch raw {
	case ButtonLeft.String():
		return "Mouse1"
	case ButtonRight.String():
		return "Mouse2"
	case ButtonMiddle.String():
		return "Mouse3"
	case ButtonX1.String():
		return "Mouse4"
	case ButtonX2.String():
		return "Mouse5"
	}

	if strings.HasPrefix(raw, namedKeyPrefix) {
		return humanizeKeyName(strings.TrimPrefix(raw, namedKeyPrefix))
	}
	return raw
}

func humanizeKeyName(raw string) string {
	parts := strings.Split(raw, "_")
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		words = append(words, humanizeKeyWord(part))
	}
	if len(words) == 0 {
		return raw
	}
	return strings.Join(words, " ")
}

func humanizeKeyWord(raw string) string {
	token := strings.ToLower(raw)
	switch token {
	case "l":
		return "Left"
	case "r":
		return "Right"
	case "gr":
		return "Gr"
	case "esc":
		return "Esc"
	case "cmd":
		return "Win"
	}
	if len(token) > 1 && token[0] == 'f' && isDigits(token[1:]) {
		return strings.ToUpper(token)
	}
	return strings.ToUpper(token[:1]) + token[1:]
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
