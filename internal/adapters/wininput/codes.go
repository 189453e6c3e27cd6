package wininput

import (
	"strconv"
	"unicode"

	"soteshot/internal/core/trigger"
)

const (
	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C

	xButton1 = 0x0001
	xButton2 = 0x0002
)

const (
	vkBACK       uint32 = 0x08
	vkTAB        uint32 = 0x09
	vkRETURN     uint32 = 0x0D
	vkSHIFT      uint32 = 0x10
	vkCONTROL    uint32 = 0x11
	vkMENU       uint32 = 0x12
	vkPAUSE      uint32 = 0x13
	vkCAPITAL    uint32 = 0x14
	vkESCAPE     uint32 = 0x1B
	vkSPACE      uint32 = 0x20
	vkPRIOR      uint32 = 0x21
	vkNEXT       uint32 = 0x22
	vkEND        uint32 = 0x23
	vkHOME       uint32 = 0x24
	vkLEFT       uint32 = 0x25
	vkUP         uint32 = 0x26
	vkRIGHT      uint32 = 0x27
	vkDOWN       uint32 = 0x28
	vkSNAPSHOT   uint32 = 0x2C
	vkINSERT     uint32 = 0x2D
	vkDELETE     uint32 = 0x2E
	vk0          uint32 = 0x30
	vk9          uint32 = 0x39
	vkA          uint32 = 0x41
	vkZ          uint32 = 0x5A
	vkLWIN       uint32 = 0x5B
	vkRWIN       uint32 = 0x5C
	vkAPPS       uint32 = 0x5D
	vkNUMPAD0    uint32 = 0x60
	vkNUMPAD9    uint32 = 0x69
	vkMULTIPLY   uint32 = 0x6A
	vkADD        uint32 = 0x6B
	vkSUBTRACT   uint32 = 0x6D
	vkDECIMAL    uint32 = 0x6E
	vkDIVIDE     uint32 = 0x6F
	vkF1         uint32 = 0x70
	vkF24        uint32 = 0x87
	vkNUMLOCK    uint32 = 0x90
	vkSCROLL     uint32 = 0x91
	vkLSHIFT     uint32 = 0xA0
	vkRSHIFT     uint32 = 0xA1
	vkLCONTROL   uint32 = 0xA2
	vkRCONTROL   uint32 = 0xA3
	vkLMENU      uint32 = 0xA4
	vkRMENU      uint32 = 0xA5
	vkVOLUMEMUTE uint32 = 0xAD
	vkVOLUMEDOWN uint32 = 0xAE
	vkVOLUMEUP   uint32 = 0xAF
	vkMEDIANEXT  uint32 = 0xB0
	vkMEDIAPREV  uint32 = 0xB1
	vkMEDIAPLAY  uint32 = 0xB3
)

var namedKeys = map[uint32]string{
	vkBACK:       "backspace",
	vkTAB:        "tab",
	vkRETURN:     "enter",
	vkSHIFT:      "shift",
	vkCONTROL:    "ctrl",
	vkMENU:       "alt",
	vkPAUSE:      "pause",
	vkCAPITAL:    "caps_lock",
	vkESCAPE:     "esc",
	vkSPACE:      "space",
	vkPRIOR:      "page_up",
	vkNEXT:       "page_down",
	vkEND:        "end",
	vkHOME:       "home",
	vkLEFT:       "left",
	vkUP:         "up",
	vkRIGHT:      "right",
	vkDOWN:       "down",
	vkSNAPSHOT:   "print_screen",
	vkINSERT:     "insert",
	vkDELETE:     "delete",
	vkLWIN:       "cmd",
	vkRWIN:       "cmd_r",
	vkAPPS:       "menu",
	vkNUMLOCK:    "num_lock",
	vkSCROLL:     "scroll_lock",
	vkLSHIFT:     "shift",
	vkRSHIFT:     "shift_r",
	vkLCONTROL:   "ctrl_l",
	vkRCONTROL:   "ctrl_r",
	vkLMENU:      "alt_l",
	vkRMENU:      "alt_gr",
	vkVOLUMEMUTE: "media_volume_mute",
	vkVOLUMEDOWN: "media_volume_down",
	vkVOLUMEUP:   "media_volume_up",
	vkMEDIANEXT:  "media_next",
	vkMEDIAPREV:  "media_previous",
	vkMEDIAPLAY:  "media_play_pause",
}

// keypadChars covers layouts where the keypad produces no translated character.
var keypadChars = map[uint32]rune{
	vkMULTIPLY: '*',
	vkADD:      '+',
	vkSUBTRACT: '-',
	vkDECIMAL:  '.',
	vkDIVIDE:   '/',
}

func init() {
	for vk := vkF1; vk <= vkF24; vk++ {
		namedKeys[vk] = "f" + strconv.Itoa(int(vk-vkF1)+1)
	}
	for vk := vkNUMPAD0; vk <= vkNUMPAD9; vk++ {
		keypadChars[vk] = rune('0' + vk - vkNUMPAD0)
	}
}

// KeyInput maps a low-level keyboard notification to a trigger input. ch is
// the character produced by the active layout, or 0 if there is none.
func KeyInput(msg, vk uint32, ch rune) (trigger.Input, bool) {
	var pressed bool
	switch msg {
	case wmKeyDown, wmSysKeyDown:
		pressed = true
	case wmKeyUp, wmSysKeyUp:
		pressed = false
	default:
		return trigger.Input{}, false
	}

	if name, ok := namedKeys[vk]; ok {
		return trigger.Input{Kind: trigger.KindNamed, Name: name, Pressed: pressed}, true
	}
	if ch != 0 && unicode.IsPrint(ch) {
		return trigger.Input{Kind: trigger.KindChar, Char: ch, Pressed: pressed}, true
	}
	if ch, ok := fallbackChar(vk); ok {
		return trigger.Input{Kind: trigger.KindChar, Char: ch, Pressed: pressed}, true
	}
	return trigger.Input{}, false
}

func fallbackChar(vk uint32) (rune, bool) {
	switch {
	case vk >= vkA && vk <= vkZ:
		return unicode.ToLower(rune(vk)), true
	case vk >= vk0 && vk <= vk9:
		return rune(vk), true
	}
	ch, ok := keypadChars[vk]
	return ch, ok
}

// MouseInput maps a low-level mouse notification to a trigger input.
// mouseData is the MSLLHOOKSTRUCT field of the same name.
func MouseInput(msg, mouseData uint32) (trigger.Input, bool) {
	var (
		button  trigger.MouseButton
		pressed bool
	)

	switch msg {
	case wmLButtonDown, wmLButtonUp:
		button, pressed = trigger.ButtonLeft, msg == wmLButtonDown
	case wmRButtonDown, wmRButtonUp:
		button, pressed = trigger.ButtonRight, msg == wmRButtonDown
	case wmMButtonDown, wmMButtonUp:
		button, pressed = trigger.ButtonMiddle, msg == wmMButtonDown
	case wmXButtonDown, wmXButtonUp:
		switch uint16(mouseData >> 16) {
		case xButton1:
			button = trigger.ButtonX1
		case xButton2:
			button = trigger.ButtonX2
		default:
			return trigger.Input{}, false
		}
		pressed = msg == wmXButtonDown
	default:
		return trigger.Input{}, false
	}

	return trigger.Input{Kind: trigger.KindMouse, Button: button, Pressed: pressed}, true
}
