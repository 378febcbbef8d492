// Package clipboard reads a reported token from the system clipboard and can
// wipe it afterwards, so the secret is not left behind for the next paste.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Backend identifies a clipboard command family.
type Backend string

const (
	BackendAuto       Backend = "auto"
	BackendPasteboard Backend = "pasteboard"
	BackendWayland    Backend = "wayland"
	BackendXclip      Backend = "xclip"
	BackendXsel       Backend = "xsel"
)

// ErrEmpty is returned when the clipboard holds only whitespace.
var ErrEmpty = errors.New("clipboard is empty")

type commands struct {
	read  []string
	clear []string
}

var backends = map[Backend]commands{
	BackendPasteboard: {read: []string{"pbpaste"}, clear: []string{"pbcopy"}},
	BackendWayland:    {read: []string{"wl-paste", "--no-newline"}, clear: []string{"wl-copy", "--clear"}},
	BackendXclip:      {read: []string{"xclip", "-o", "-selection", "clipboard"}, clear: []string{"xclip", "-selection", "clipboard"}},
	BackendXsel:       {read: []string{"xsel", "--clipboard", "--output"}, clear: []string{"xsel", "--clipboard", "--delete"}},
}

var lookPath = exec.LookPath

// ReadToken returns the trimmed clipboard contents.
func ReadToken(ctx context.Context, backend string) (string, error) {
	resolved, err := ResolveBackend(backend)
	if err != nil {
		return "", err
	}
	out, err := run(ctx, backends[resolved].read, nil)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", ErrEmpty
	}
	return token, nil
}

// Clear empties the clipboard.
func Clear(ctx context.Context, backend string) error {
	resolved, err := ResolveBackend(backend)
	if err != nil {
		return err
	}
	_, err = run(ctx, backends[resolved].clear, []byte{})
	return err
}

// ResolveBackend converts a backend name into a concrete backend.
func ResolveBackend(backend string) (Backend, error) {
	requested := Backend(strings.ToLower(strings.TrimSpace(backend)))
	if requested == "" {
		requested = BackendAuto
	}
	if requested == BackendAuto {
		return autoBackend()
	}
	if _, ok := backends[requested]; !ok {
		return "", fmt.Errorf("unsupported clipboard backend: %q", backend)
	}
	return requested, nil
}

func autoBackend() (Backend, error) {
	candidates := autoBackendCandidates()
	if len(candidates) == 0 {
		return "", errors.New("no clipboard backend available (missing display server)")
	}
	for _, candidate := range candidates {
		if hasCommand(candidate) {
			return candidate, nil
		}
	}
	var names []string
	for _, candidate := range candidates {
		names = append(names, backends[candidate].read[0])
	}
	return "", fmt.Errorf("no clipboard backend found; install one of: %s", strings.Join(names, ", "))
}

func hasCommand(backend Backend) bool {
	cmds, ok := backends[backend]
	if !ok {
		return false
	}
	_, err := lookPath(cmds.read[0])
	return err == nil
}
