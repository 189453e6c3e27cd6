package wininput

import (
	"testing"

	"soteshot/internal/core/trigger"
)

func TestMouseInputMappings(t *testing.T) {
	tests := []struct {
		msg       uint32
		mouseData uint32
		expected  string
		pressed   bool
	}{
		{msg: wmLButtonDown, expected: "(4, 2, 0)", pressed: true},
		{msg: wmRButtonUp, expected: "(16, 8, 0)", pressed: false},
		{msg: wmMButtonDown, expected: "(64, 32, 0)", pressed: true},
		{msg: wmXButtonDown, mouseData: xButton1 << 16, expected: string(trigger.DefaultBinding), pressed: true},
		{msg: wmXButtonUp, mouseData: xButton2 << 16, expected: "(256, 128, 2)", pressed: false},
	}

	for _, tc := range tests {
		in, ok := MouseInput(tc.msg, tc.mouseData)
		if !ok {
			t.Fatalf("MouseInput(0x%x, 0x%x) not recognised", tc.msg, tc.mouseData)
		}
		id, err := in.Identity()
		if err != nil {
			t.Fatalf("Identity() returned error: %v", err)
		}
		if id != tc.expected || in.Pressed != tc.pressed {
			t.Fatalf("MouseInput(0x%x)=%q,%v, want %q,%v", tc.msg, id, in.Pressed, tc.expected, tc.pressed)
		}
	}

	if _, ok := MouseInput(wmXButtonDown, 0x0003<<16); ok {
		t.Fatalf("unknown X button should be ignored")
	}
	if _, ok := MouseInput(0x0200, 0); ok {
		t.Fatalf("mouse move should be ignored")
	}
}

func TestKeyInputMappings(t *testing.T) {
	tests := []struct {
		name     string
		vk       uint32
		ch       rune
		expected string
	}{
		{name: "layout char", vk: vkA, ch: 'a', expected: "a"},
		{name: "shifted char", vk: vkA, ch: 'A', expected: "A"},
		{name: "fallback letter", vk: vkA, expected: "a"},
		{name: "fallback digit", vk: vk0 + 7, expected: "7"},
		{name: "keypad", vk: vkNUMPAD0 + 3, expected: "3"},
		{name: "space is named", vk: vkSPACE, ch: ' ', expected: "Key.space"},
		{name: "enter", vk: vkRETURN, ch: '\r', expected: "Key.enter"},
		{name: "f8", vk: vkF1 + 7, expected: "Key.f8"},
		{name: "f24", vk: vkF24, expected: "Key.f24"},
		{name: "right ctrl", vk: vkRCONTROL, expected: "Key.ctrl_r"},
	}

	for _, tc := range tests {
		in, ok := KeyInput(wmKeyDown, tc.vk, tc.ch)
		if !ok {
			t.Fatalf("%s: KeyInput not recognised", tc.name)
		}
		id, err := in.Identity()
		if err != nil {
			t.Fatalf("%s: Identity() returned error: %v", tc.name, err)
		}
		if id != tc.expected || !in.Pressed {
			t.Fatalf("%s: KeyInput=%q,%v, want %q,true", tc.name, id, in.Pressed, tc.expected)
		}
	}
}

func TestKeyInputReleaseAndUnknown(t *testing.T) {
	in, ok := KeyInput(wmSysKeyUp, vkLMENU, 0)
	if !ok || in.Pressed {
		t.Fatalf("KeyInput(WM_SYSKEYUP)=%#v,%v, want release", in, ok)
	}
	if _, ok := KeyInput(wmKeyDown, 0xE5, 0); ok {
		t.Fatalf("VK_PROCESSKEY without character should be ignored")
	}
	if _, ok := KeyInput(0x0102, vkA, 'a'); ok {
		t.Fatalf("WM_CHAR should be ignored")
	}
}
