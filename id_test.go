package propui

import "testing"

func TestCombineIDDeterministic(t *testing.T) {
	a := ChildID(0, "root")
	b := ChildID(0, "root")
	if a != b {
		t.Fatalf("same parent and label gave %d and %d", a, b)
	}
	if a == 0 {
		t.Fatal("derived ID must not be zero")
	}
	if ChildID(a, "x") == ChildID(ChildID(0, "other"), "x") {
		t.Error("same label under different parents should differ")
	}
}

func TestCombineIDOrderSensitive(t *testing.T) {
	x, y := ID(HashLabel("alpha")), HashLabel("beta")
	if CombineID(x, y) == CombineID(ID(y), uint64(x)) {
		t.Error("CombineID should not be symmetric")
	}
}

func TestHashLabelFNV1a(t *testing.T) {
	// FNV-1a 64 offset basis and the published vector for "a"
	if got := HashLabel(""); got != 0xcbf29ce484222325 {
		t.Errorf("HashLabel(\"\") = %#x", got)
	}
	if got := HashLabel("a"); got != 0xaf63dc4c8601ec8c {
		t.Errorf("HashLabel(\"a\") = %#x", got)
	}
}

func TestButtonBehavior(t *testing.T) {
	const id ID = 42
	tests := []struct {
		name                   string
		io                     IO
		hovered, held, pressed bool
	}{
		{"idle", IO{}, false, false, false},
		{"hover", IO{Hover: id}, true, false, false},
		{"press edge", IO{Hover: id, LeftDown: true, LeftTransition: true}, true, true, false},
		{"held drag", IO{Hover: id, LeftDown: true}, true, true, false},
		{"release edge", IO{Hover: id, LeftTransition: true}, true, false, true},
		{"release elsewhere", IO{Hover: 7, LeftTransition: true}, false, false, false},
		{"zero id never hovers", IO{Hover: 0}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := id
			if tt.name == "zero id never hovers" {
				target = 0
			}
			io := tt.io
			h, held, p := ButtonBehavior(target, &io)
			if h != tt.hovered || held != tt.held || p != tt.pressed {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)", h, held, p, tt.hovered, tt.held, tt.pressed)
			}
		})
	}
}
