package cli

import (
	"bytes"
	"testing"
)

func TestOutputWithoutColors(t *testing.T) {
	var out, errOut bytes.Buffer
	o := NewWriterOutput(&out, &errOut)

	o.PrintHeader("Vite manifest")
	o.PrintSuccess("%d entries", 4)
	o.PrintWarning("style %s not found", "a.css")
	o.PrintFile("/_resources/app/client/dist/a.js")
	o.PrintError("failed: %s", "boom")

	want := "Vite manifest\n\n  ✓ 4 entries\n  ⚠ style a.css not found\n    /_resources/app/client/dist/a.js\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
	if errOut.String() != "  ✗ failed: boom\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestOutputColors(t *testing.T) {
	o := &Output{enableColors: true}
	if got := o.Green("ok"); got != "\033[32mok\033[0m" {
		t.Errorf("Green() = %q", got)
	}

	o.DisableColors()
	if got := o.Red("x"); got != "x" {
		t.Errorf("Red() after DisableColors = %q", got)
	}
}
