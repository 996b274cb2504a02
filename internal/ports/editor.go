package ports

import (
	"os/exec"

	"orbdyn/internal/domain"
)

// EditorOpener defines the interface for opening files in an external editor
type EditorOpener interface {
	// OpenFile opens the specified file in the user's preferred editor
	// It uses $EDITOR environment variable, falling back to common editors
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a file in the editor
	Command(path string) (*exec.Cmd, error)

	// Compose opens initial text in the editor and returns the saved result
	Compose(initial string) (string, error)
}

// URLOpener opens a resource's URL outside the terminal
type URLOpener interface {
	Open(res domain.Resource) error
}
