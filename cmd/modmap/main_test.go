package main

import "testing"

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		mode    string
		tty     bool
		want    bool
		wantErr bool
	}{
		{"on", false, true, false},
		{"always", false, true, false},
		{"off", true, false, false},
		{"never", true, false, false},
		{"auto", true, true, false},
		{"auto", false, false, false},
		{"", true, true, false},
		{"", false, false, false},
		{"rainbow", true, false, true},
	}
	for _, tt := range tests {
		got, err := colorEnabled(tt.mode, tt.tty)
		if (err != nil) != tt.wantErr {
			t.Errorf("colorEnabled(%q, %v) error = %v", tt.mode, tt.tty, err)
			continue
		}
		if got != tt.want {
			t.Errorf("colorEnabled(%q, %v) = %v, want %v", tt.mode, tt.tty, got, tt.want)
		}
	}
}

// styled output and diagnostics resolve independently: a piped stdout
// must stay plain even when stderr is a terminal.
func TestColorEnabledPerStream(t *testing.T) {
	stdout, err := colorEnabled("auto", false)
	if err != nil {
		t.Fatal(err)
	}
	stderr, err := colorEnabled("auto", true)
	if err != nil {
		t.Fatal(err)
	}
	if stdout {
		t.Error("piped stdout must not be styled")
	}
	if !stderr {
		t.Error("terminal stderr should be styled")
	}
}
