package dialog

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/slangeveld/xtgeo/internal/version"
)

// PrintHeader prints a startup banner for an xtgeo application: the app
// name and version, the library version, the Go runtime version, the
// current timestamp, hostname and username.
//
//	xtg.PrintHeader("myapp", "0.2.1", "Beta release!")
func (d *Dialog) PrintHeader(appname, appversion, info string) {
	app := appname + ", version " + appversion
	if info != "" {
		app += " (" + info + ")"
	}

	ver := "Using XTGeo version " + version.Normalize(version.Version)

	now := time.Now().Format("2006-01-02 15:04:05")
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	runtimeLine := fmt.Sprintf("%s @ %s on %s by %s",
		runtime.Version(), now, host, currentUser())

	border := strings.Repeat("#", 79)
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, ansiHeader)
	fmt.Fprintln(d.out, border)
	fmt.Fprintf(d.out, "#%s#\n", center(app, 77))
	fmt.Fprintln(d.out, border)
	fmt.Fprintf(d.out, "#%s#\n", center(ver, 77))
	fmt.Fprintf(d.out, "#%s#\n", center(runtimeLine, 77))
	fmt.Fprintln(d.out, border)
	fmt.Fprintln(d.out, ansiEnd)
	fmt.Fprintln(d.out)
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

// center pads s with spaces to the given width, text in the middle. Any
// odd space goes to the right.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
