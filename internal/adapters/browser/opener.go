package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"orbdyn/internal/domain"
)

// Opener launches resource URLs with the platform's default handler
type Opener struct {
	goos string
	run  func(*exec.Cmd) error
}

// NewOpener creates an Opener for the running platform
func NewOpener() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		run:  func(cmd *exec.Cmd) error { return cmd.Run() },
	}
}

// TargetURL returns the address a resource opens to. Only http, https and
// mailto URLs are accepted.
func TargetURL(res domain.Resource) (string, error) {
	raw := strings.TrimSpace(res.URL)
	if raw == "" {
		return "", fmt.Errorf("%q has no URL", res.Title)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mailto":
		return u.String(), nil
	case "":
		return "", fmt.Errorf("URL %q has no scheme", raw)
	default:
		return "", fmt.Errorf("refusing to open %s URL %q", u.Scheme, raw)
	}
}

// Open opens the resource URL
func (o *Opener) Open(res domain.Resource) error {
	target, err := TargetURL(res)
	if err != nil {
		return err
	}

	cmd, err := o.command(target)
	if err != nil {
		return err
	}
	return o.run(cmd)
}

func (o *Opener) command(target string) (*exec.Cmd, error) {
	switch o.goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
