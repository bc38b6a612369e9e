package sanitize_test

import (
	"strings"
	"testing"

	"marketing-cms/internal/sanitize"
)

func TestHTML_allowedTagsPassThrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "paragraph", input: "<p>hello</p>", want: "<p>hello</p>"},
		{name: "strong", input: "<strong>bold</strong>", want: "<strong>bold</strong>"},
		{name: "heading", input: "<h2>Title</h2>", want: "<h2>Title</h2>"},
		{name: "list", input: "<ul><li>one</li><li>two</li></ul>", want: "<ul><li>one</li><li>two</li></ul>"},
		{name: "emphasis variants", input: "<em>a</em><i>b</i><u>c</u>", want: "<em>a</em><i>b</i><u>c</u>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize.HTML(tt.input); got != tt.want {
				t.Errorf("HTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHTML_scriptRemovedEntirely(t *testing.T) {
	got := sanitize.HTML(`<p>safe</p><script>alert("x")</script>`)
	if strings.Contains(got, "script") || strings.Contains(got, "alert") {
		t.Errorf("script tag or payload survived sanitization: %q", got)
	}
	if !strings.Contains(got, "<p>safe</p>") {
		t.Errorf("allowed content was lost: %q", got)
	}
}

func TestHTML_disallowedTagDroppedTextKept(t *testing.T) {
	got := sanitize.HTML(`<div><p>kept</p></div><span>inline</span>`)
	if strings.Contains(got, "<div>") || strings.Contains(got, "<span>") {
		t.Errorf("disallowed tag survived: %q", got)
	}
	if !strings.Contains(got, "<p>kept</p>") || !strings.Contains(got, "inline") {
		t.Errorf("enclosed text was not preserved: %q", got)
	}
}

func TestHTML_anchorSchemes(t *testing.T) {
	got := sanitize.HTML(`<a href="javascript:evil()">click</a>`)
	if strings.Contains(got, "javascript") || strings.Contains(got, "href") {
		t.Errorf("javascript href survived: %q", got)
	}
	if !strings.Contains(got, "click") {
		t.Errorf("anchor text was lost: %q", got)
	}

	got = sanitize.HTML(`<a href="https://example.com" target="_blank" rel="noopener">site</a>`)
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Errorf("https href should survive: %q", got)
	}
}

func TestHTML_disallowedAttributesDropped(t *testing.T) {
	got := sanitize.HTML(`<p style="color:red" onclick="evil()">text</p>`)
	if strings.Contains(got, "style") || strings.Contains(got, "onclick") {
		t.Errorf("disallowed attribute survived: %q", got)
	}
}

func TestPlainText(t *testing.T) {
	got := sanitize.PlainText("<p>one <strong>two</strong></p>")
	if strings.Contains(got, "<") {
		t.Errorf("markup survived PlainText: %q", got)
	}
	if !strings.Contains(got, "one") || !strings.Contains(got, "two") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestExcerpt_boundedPrefix(t *testing.T) {
	content := "<p>" + strings.Repeat("A", 300) + "</p>"
	got := sanitize.Excerpt(content, 160)

	if len([]rune(got)) > 160 {
		t.Fatalf("excerpt too long: %d runes", len([]rune(got)))
	}
	if strings.Contains(got, "<") {
		t.Fatalf("excerpt contains markup: %q", got)
	}
	plain := strings.Repeat("A", 300)
	if !strings.HasPrefix(plain, got) {
		t.Fatalf("excerpt is not a prefix of the de-tagged content: %q", got)
	}
	if got != strings.Repeat("A", 160) {
		t.Fatalf("excerpt = %q, want 160 A's", got)
	}
}

func TestExcerpt_shortContentUntouched(t *testing.T) {
	if got := sanitize.Excerpt("<p>short</p>", 160); got != "short" {
		t.Errorf("Excerpt = %q, want %q", got, "short")
	}
}
