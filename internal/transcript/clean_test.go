package transcript

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"color codes", "\x1b[32mgreen\x1b[0m text", "green text"},
		{"cursor moves", "\x1b[2Ktop\x1b[1A", "top"},
		{"osc title", "\x1b]0;claude\x07done", "done"},
		{"mixed", "\x1b]0;t\x07\x1b[1mbold\x1b[22m and plain", "bold and plain"},
		{"surrounding whitespace", "  trimmed \n", "trimmed"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Fatalf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLastReply(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name: "reply after last user line",
			lines: []string{
				"> pierwsze pytanie",
				"stara odpowiedź",
				"> drugie pytanie",
				"nowa odpowiedź",
				"druga linia",
			},
			want: "nowa odpowiedź\ndruga linia",
		},
		{
			name: "system notes dropped",
			lines: []string{
				"> pytanie",
				"[Rozpoznano: pytanie]",
				"odpowiedź",
			},
			want: "odpowiedź",
		},
		{
			name:  "no user line returns everything",
			lines: []string{"powitanie", "druga linia"},
			want:  "powitanie\ndruga linia",
		},
		{
			name:  "trailing user line without reply",
			lines: []string{"> pytanie"},
			want:  "",
		},
		{
			name: "ansi stripped from reply",
			lines: []string{
				"> pytanie",
				"\x1b[32modpowiedź\x1b[0m",
			},
			want: "odpowiedź",
		},
		{
			name:  "empty buffer",
			lines: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastReply(tt.lines); got != tt.want {
				t.Fatalf("LastReply() = %q, want %q", got, tt.want)
			}
		})
	}
}
