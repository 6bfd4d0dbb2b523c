package keyboard

// Built-in model names.
const (
	KeychronK6 = "Keychron K6"
	KeychronK8 = "Keychron K8"
)

func k(width float64, label string) KeySpec { return KeySpec{Width: width, Label: label} }

// gap is a filler of the given width.
func gap(width float64) KeySpec { return KeySpec{Width: width} }

// unit returns 1u keys for each label.
func unit(labels ...string) []KeySpec {
	out := make([]KeySpec, len(labels))
	for i, l := range labels {
		out[i] = k(1, l)
	}
	return out
}

func row(parts ...[]KeySpec) []KeySpec {
	var out []KeySpec
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func one(ks ...KeySpec) []KeySpec { return ks }

func builtin() []*Layout {
	return []*Layout{keychronK6(), keychronK8()}
}

// keychronK6 is the 65% K6.
func keychronK6() *Layout {
	return &Layout{
		Name: KeychronK6,
		Rows: [][]KeySpec{
			row(unit("ESC", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="), one(k(2, "BACKSPACE"), k(1, "DEL"))),
			row(one(k(1.5, "TAB")), unit("Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "[", "]"), one(k(1.5, `\`), k(1, "HOME"))),
			row(one(k(1.75, "CAPS")), unit("A", "S", "D", "F", "G", "H", "J", "K", "L", ";", "'"), one(k(2.25, "ENTER"), k(1, "PGUP"))),
			row(one(k(2.25, "SHIFT")), unit("Z", "X", "C", "V", "B", "N", "M", ",", ".", "/"), one(k(1.75, "SHIFT")), unit("↑", "PGDN")),
			row(one(k(1.25, "CTRL"), k(1.25, "WIN"), k(1.25, "ALT"), k(6.25, "SPACE")), unit("ALT", "FN", "CTRL", "←", "↓", "→")),
		},
	}
}

// keychronK8 is the tenkeyless K8 with an F-row.
func keychronK8() *Layout {
	return &Layout{
		Name: KeychronK8,
		Rows: [][]KeySpec{
			row(unit("ESC"), one(gap(1)), unit("F1", "F2", "F3", "F4"), one(gap(0.5)), unit("F5", "F6", "F7", "F8"), one(gap(0.5)),
				unit("F9", "F10", "F11", "F12"), one(gap(0.25)), unit("PrtSc", "ScrLk", "Pause")),
			row(unit("`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="), one(k(2, "Backspace"), gap(0.25)), unit("Ins", "Home", "PgUp")),
			row(one(k(1.5, "Tab")), unit("Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "[", "]"), one(k(1.5, `\`), gap(0.25)), unit("Del", "End", "PgDn")),
			row(one(k(1.75, "Caps")), unit("A", "S", "D", "F", "G", "H", "J", "K", "L", ";", "'"), one(k(2.25, "Enter"), gap(3.25))),
			row(one(k(2.25, "Shift")), unit("Z", "X", "C", "V", "B", "N", "M", ",", ".", "/"), one(k(2.75, "Shift"), gap(1.25), k(1, "↑"), gap(1.25))),
			row(one(k(1.25, "Ctrl"), k(1.25, "Win"), k(1.25, "Alt"), k(6.25, "Space"), k(1.25, "Alt"), k(1.25, "Option"), k(1.25, "Ctrl"), k(1.25, "Fn"), gap(0.25)),
				unit("←", "↓", "→")),
		},
	}
}
