package logger

import "testing"

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", Debug},
		{"DEBUG", Debug},
		{" warn ", Warn},
		{"warning", Warn},
		{"error", Error},
		{"info", Info},
		{"", Info},
		{"verbose", Info},
	}
	for _, c := range cases {
		if got := ParseLevel(c.in); got != c.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("JSON") != FormatJSON {
		t.Fatalf("expected json format")
	}
	if ParseFormat("text") != FormatText || ParseFormat("") != FormatText {
		t.Fatalf("expected text fallback")
	}
}

func TestFormatText_StableKeyOrder(t *testing.T) {
	got := formatText(map[string]any{
		"msg":   "order placed",
		"level": "info",
		"app":   "vetcare",
	})
	want := "app=vetcare level=info msg=order placed"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
