package pretty

import (
	"fmt"
	"os"

	"github.com/Lurito/samevol/common"
)

func Ok() error {
	common.Log("%sOK.%s", Green, Reset)
	return nil
}

func Highlight(form string, details ...interface{}) {
	common.Log("%s%s%s", Cyan, fmt.Sprintf(form, details...), Reset)
}

func Note(form string, details ...interface{}) {
	common.Log("%sNote: %s%s", Yellow, fmt.Sprintf(form, details...), Reset)
}

func Warning(form string, details ...interface{}) {
	common.Log("%sWarning: %s%s", Yellow, fmt.Sprintf(form, details...), Reset)
}

// Exit flushes pending log output and terminates the process.
func Exit(code int, form string, details ...interface{}) {
	message := fmt.Sprintf(form, details...)
	if code == 0 {
		common.Log("%s%s%s", Green, message, Reset)
	} else {
		common.Log("%s%s%s", Red, message, Reset)
	}
	common.WaitLogs()
	os.Exit(code)
}

// Guard ends the process with given exit code and message unless the
// condition holds.
func Guard(condition bool, code int, form string, details ...interface{}) {
	if !condition {
		Exit(code, form, details...)
	}
}
