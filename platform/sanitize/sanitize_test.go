package sanitize

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "take with food", "take with food"},
		{"tags removed", "<b>important</b> note", "important note"},
		{"script removed", "<script>alert(1)</script>morning dose", "alert(1)morning dose"},
		{"entity-encoded tag removed", "&lt;img src=x&gt;note", "note"},
		{"whitespace trimmed", "  note  ", "note"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextPtr(t *testing.T) {
	if got := TextPtr(nil); got != nil {
		t.Errorf("TextPtr(nil) = %v, want nil", got)
	}

	input := "<i>nightly</i>"
	got := TextPtr(&input)
	if got == nil || *got != "nightly" {
		t.Errorf("TextPtr(%q) = %v, want nightly", input, got)
	}
	if input != "<i>nightly</i>" {
		t.Error("TextPtr mutated its input")
	}
}
