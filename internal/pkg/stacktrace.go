package pkg

import (
	"fmt"
	"github.com/ansel1/merry"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

func FormatMerryStacktrace(e error, sep string) string {
	return formatStack(merry.Stack(e), sep)
}

func formatStack(stack []uintptr, sep string) string {
	trace := ""
	for i, fp := range stack {
		fnc := runtime.FuncForPC(fp)
		if fnc == nil {
			continue
		}

		name := filepath.Base(fnc.Name())
		if name == "runtime.goexit" {
			continue
		}
		file, line := fnc.FileLine(fp)
		file = formatStackTraceFileName(file)

		if i != 0 {
			trace += sep
		}
		trace += fmt.Sprintf("%s:%d %s", file, line, name)
	}
	return trace
}

func formatStackTraceFileName(file string) string {
	file = strings.ReplaceAll(file, "\\", "/")
	file = excludeGoPathModRegexp.ReplaceAllString(file, "")
	file = excludeModVersionRegexp.ReplaceAllString(file, "")
	file = excludeModulePathRegexp.ReplaceAllString(file, "")
	return file
}

var excludeGoPathModRegexp = regexp.MustCompile(`^.*/pkg/mod/`)
var excludeModVersionRegexp = regexp.MustCompile(`@v[^/]+`)
var excludeModulePathRegexp = regexp.MustCompile(`github.com/fpawel/`)
