package main

import (
	"fmt"
	"github.com/fpawel/ltool/internal/app"
	"github.com/fpawel/ltool/internal/inductor"
	"github.com/fpawel/ltool/internal/pkg"
	"github.com/fpawel/ltool/internal/tui"
	"os"
	"strings"
)

var (
	GitCommit string
	BuildUUID string
	BuildDate string
	BuildTime string
)

func main() {
	pkg.InitLog()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		app.Main(app.BuildInfo{
			Commit: GitCommit,
			UUID:   BuildUUID,
			Date:   BuildDate,
			Time:   BuildTime,
		})
	case "decode":
		decode(os.Args[2:])
	case "pick":
		pick()
	case "version":
		fmt.Printf("commit %s uuid %s built %s %s\n", GitCommit, BuildUUID, BuildDate, BuildTime)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func decode(bands []string) {
	result, err := inductor.Decode(bands)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if len(os.Getenv("LTOOL_DEV_MODE")) != 0 {
			fmt.Fprintln(os.Stderr, pkg.FormatMerryStacktrace(err, "\n\t"))
		}
		os.Exit(1)
	}
	fmt.Println(result.Display)
}

func pick() {
	result, err := tui.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(result.Display)
}

var usage = strings.TrimSpace(`
usage:
	ltool [serve]             run the calculator web server
	ltool decode COLOR...     decode 3 or 4 band colors
	ltool pick                interactive terminal picker
	ltool version             print build info
`)
