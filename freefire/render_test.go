package freefire

import (
	"strings"
	"testing"
)

func TestRenderPlaceholderReport(t *testing.T) {
	report := Render(Extract(decodeRaw(t, `{}`), "123456789"))

	if report.Color != AccentColor {
		t.Errorf("expected accent color %#x, got %#x", AccentColor, report.Color)
	}
	if report.Footer != FooterLabel {
		t.Errorf("expected footer %q, got %q", FooterLabel, report.Footer)
	}

	wantLines := []string{
		"**Player Information**",
		"**┌ ACCOUNT BASIC INFO**",
		"├─ Name: Not found",
		"├─ UID: 123456789",
		"├─ Level: ?",
		"└─ Signature: None",
		"**┌ ACCOUNT ACTIVITY**",
		"├─ Created At: Not found",
		"└─ Last Login: Not found",
		"**┌ ACCOUNT OVERVIEW**",
		"└─ Equipped Skills: []",
		"**┌ PET DETAILS**",
		"├─ Equipped: No",
		"**┌ GUILD INFO**",
		"└─ Members: ?/?",
		"**┌ LEADER INFO**",
		"💎 **Buy Instant FF Likes**",
		"🔗 https://uniquetopup.com/",
	}
	for _, line := range wantLines {
		if !strings.Contains(report.Text, line) {
			t.Errorf("report missing line %q\n%s", line, report.Text)
		}
	}
}

func TestRenderPartialPayloadScenario(t *testing.T) {
	raw := decodeRaw(t, `{"result": {"AccountInfo": {"AccountName": "Player1", "AccountLevel": 55}}}`)
	report := Render(Extract(raw, "123456789"))

	for _, line := range []string{
		"├─ Name: Player1",
		"├─ UID: 123456789",
		"├─ Level: 55",
		"├─ Likes: ?",
		"**┌ GUILD INFO**",
		"├─ Name: Not found",
	} {
		if !strings.Contains(report.Text, line) {
			t.Errorf("report missing line %q\n%s", line, report.Text)
		}
	}
}

func TestRenderPure(t *testing.T) {
	raw := decodeRaw(t, `{"result": {"AccountInfo": {"AccountName": "Player1"}}}`)

	first := Render(Extract(raw, "99"))
	second := Render(Extract(raw, "99"))

	if first != second {
		t.Error("render(extract(...)) should be byte-identical across calls")
	}
}

func TestRenderSectionOrder(t *testing.T) {
	report := Render(Extract(nil, "1"))

	sections := []string{
		"ACCOUNT BASIC INFO",
		"ACCOUNT ACTIVITY",
		"ACCOUNT OVERVIEW",
		"PET DETAILS",
		"GUILD INFO",
		"LEADER INFO",
	}

	last := -1
	for _, s := range sections {
		idx := strings.Index(report.Text, s)
		if idx < 0 {
			t.Fatalf("section %q missing", s)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}

	if !strings.HasSuffix(report.Text, "━━━━━━━━━━━━━━━━━━") {
		t.Error("report should end with the promo block rule")
	}
}
