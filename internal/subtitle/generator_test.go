package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerateSkipsBlankSegments(t *testing.T) {
	g := NewDefaultGenerator()
	doc, err := g.Generate([]Segment{
		{StartTime: 0, EndTime: 2, Text: "  Hello there  "},
		{StartTime: 2, EndTime: 3, Text: "   "},
		{StartTime: 3, EndTime: 5, Text: "Fish & chips"},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := "WEBVTT\n" +
		"\n" +
		"00:00:00.000 --> 00:00:02.000\n" +
		"Hello there\n" +
		"\n" +
		"00:00:03.000 --> 00:00:05.000\n" +
		"Fish &amp; chips\n"
	if got := doc.Render(FormatVTT); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestGenerateEmpty(t *testing.T) {
	doc, err := NewDefaultGenerator().Generate(nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if doc.Len() != 1 {
		t.Errorf("expected header only, got %d elements", doc.Len())
	}
}

func TestGenerateNumbersCues(t *testing.T) {
	g := NewDefaultGenerator()
	g.NumberCues = true
	g.Header = "Numbered"

	doc, err := g.Generate([]Segment{
		{StartTime: 0, EndTime: 1, Text: "one"},
		{StartTime: 1, EndTime: 2, Text: "two"},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := "1\n00:00:00.000 --> 00:00:01.000\none\n\n2\n00:00:01.000 --> 00:00:02.000\ntwo\n"
	if got := doc.Render(FormatSRT); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !strings.HasPrefix(doc.Render(FormatVTT), "WEBVTT Numbered\n\n1\n") {
		t.Errorf("unexpected vtt prefix: %q", doc.Render(FormatVTT))
	}
}

func TestGenerateExtendsShortCues(t *testing.T) {
	doc, err := NewDefaultGenerator().Generate([]Segment{
		{StartTime: 4, EndTime: 4, Text: "blink"},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	cues := doc.Cues()
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].EndTime != 5 {
		t.Errorf("expected end 5, got %v", cues[0].EndTime)
	}
}

func TestGenerateRejectsInvalidSegment(t *testing.T) {
	g := NewDefaultGenerator()

	_, err := g.Generate([]Segment{{StartTime: 3, EndTime: 2, Text: "backwards"}})
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestGenerateSplitsLongSegments(t *testing.T) {
	g := NewDefaultGenerator()
	text := strings.Repeat("word ", 60) // 300 characters

	doc, err := g.Generate([]Segment{{StartTime: 10, EndTime: 40, Text: text}})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	cues := doc.Cues()
	if len(cues) < 2 {
		t.Fatalf("expected the segment to be split, got %d cues", len(cues))
	}
	if cues[0].StartTime != 10 {
		t.Errorf("first cue should start at 10, got %v", cues[0].StartTime)
	}
	if last := cues[len(cues)-1]; last.EndTime != 40 {
		t.Errorf("last cue should end at 40, got %v", last.EndTime)
	}

	for i, cue := range cues {
		if cue.EndTime-cue.StartTime > g.MaxDuration+1e-9 {
			t.Errorf("cue %d lasts %v, longer than %v", i, cue.EndTime-cue.StartTime, g.MaxDuration)
		}
		for _, line := range strings.Split(cue.Payload, "\n") {
			if n := utf8.RuneCountInString(line); n > g.MaxCharsPerLine {
				t.Errorf("cue %d line %q has %d chars", i, line, n)
			}
		}
		if i > 0 && cue.StartTime != cues[i-1].EndTime {
			t.Errorf("cue %d starts at %v, previous ends at %v", i, cue.StartTime, cues[i-1].EndTime)
		}
	}
}

func TestFormatTextWrapsAtMiddle(t *testing.T) {
	g := NewDefaultGenerator()

	short := "Short line"
	if got := g.formatText(short); got != short {
		t.Errorf("short text changed: %q", got)
	}

	long := "This is a very long subtitle text that exceeds the line limit"
	got := g.formatText(long)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	if strings.Join(lines, " ") != long {
		t.Errorf("wrapping changed the words: %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	doc := readmeDocument(t)
	dir := t.TempDir()

	tests := []struct {
		path   string
		format Format
	}{
		{filepath.Join(dir, "nested", "out.vtt"), FormatVTT},
		{filepath.Join(dir, "out.srt"), FormatSRT},
	}

	for _, tt := range tests {
		if err := WriteFile(doc, tt.path, tt.format); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", tt.path, err)
		}
		data, err := os.ReadFile(tt.path)
		if err != nil {
			t.Fatalf("failed to read %s: %v", tt.path, err)
		}
		if string(data) != doc.Render(tt.format) {
			t.Errorf("%s: file content does not match rendering", tt.path)
		}
	}

	if err := WriteFile(doc, filepath.Join(dir, "x.ass"), Format("ass")); err == nil {
		t.Error("expected error for unsupported writer format")
	}
}

func TestWriterWriteTo(t *testing.T) {
	doc := readmeDocument(t)

	w, err := NewWriter(FormatSRT)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	var sb strings.Builder
	if err := w.WriteTo(doc, &sb); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if sb.String() != doc.Render(FormatSRT) {
		t.Errorf("WriteTo output does not match Render")
	}
}

func TestFormatExtensions(t *testing.T) {
	if GetFormatFromExtension("a/b/movie.SRT") != FormatSRT {
		t.Error("expected .SRT to map to srt")
	}
	if GetFormatFromExtension("movie.vtt") != FormatVTT {
		t.Error("expected .vtt to map to vtt")
	}
	if GetFormatFromExtension("movie") != FormatVTT {
		t.Error("expected no extension to default to vtt")
	}
	if GetExtensionForFormat(FormatSRT) != ".srt" || GetExtensionForFormat(FormatVTT) != ".vtt" {
		t.Error("unexpected extension mapping")
	}
}
