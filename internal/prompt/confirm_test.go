package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y", input: "y\n", want: true},
		{name: "upper Y", input: "Y\n", want: true},
		{name: "yes with spaces", input: "  yes \n", want: true},
		{name: "windows line ending", input: "y\r\n", want: true},
		{name: "no newline", input: "y", want: true},
		{name: "empty line defaults to no", input: "\n", want: false},
		{name: "end of input", input: "", want: false},
		{name: "n", input: "n\n", want: false},
		{name: "anything else", input: "sure\n", want: false},
		{name: "only first line counts", input: "\ny\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tt.input), &out, "Continue?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfirm_WritesQuestionAndDetails(t *testing.T) {
	var out bytes.Buffer
	if _, err := Confirm(strings.NewReader("n\n"), &out, "Create collections?", "WARNING: back up first"); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	want := "Create collections? (y/N)\nWARNING: back up first\n"
	if out.String() != want {
		t.Errorf("Confirm() output = %q, want %q", out.String(), want)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("terminal gone") }

func TestConfirm_ReadError(t *testing.T) {
	var out bytes.Buffer
	got, err := Confirm(failingReader{}, &out, "Continue?")
	if err == nil {
		t.Error("Confirm() expected error, got nil")
	}
	if got {
		t.Error("Confirm() should not confirm on read error")
	}
}
