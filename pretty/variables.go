package pretty

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/Lurito/samevol/common"
)

var (
	Colorless   bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Red         string
	Green       string
	Blue        string
	Yellow      string
	Magenta     string
	Cyan        string
	Bold        string
	Faint       string
	Underline   string
	Reset       string
)

func csi(code string) string {
	return fmt.Sprintf("\x1b[%s", code)
}

// Setup decides whether output gets ANSI colors. Respects NO_COLOR and
// dumb terminals, and on Windows additionally requires that the console
// accepts virtual terminal sequences.
func Setup() {
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())
	Interactive = stdout && stderr

	if os.Getenv("NO_COLOR") != "" {
		Colorless = true
	}
	term := os.Getenv("TERM")
	if term == "dumb" {
		Colorless = true
	}

	Disabled = Colorless || !stdout
	localSetup()

	common.Trace("Interactive mode: %v; colors enabled: %v", Interactive, !Disabled)
	if Disabled {
		return
	}

	White = csi("97m")
	Grey = csi("90m")
	Red = csi("91m")
	Green = csi("92m")
	Yellow = csi("93m")
	Blue = csi("94m")
	Magenta = csi("95m")
	Cyan = csi("96m")
	Bold = csi("1m")
	Faint = csi("2m")
	Underline = csi("4m")
	Reset = csi("0m")
}
