//go:build linux

package clipboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"sketchclip/pkg/clipboard/internal/wayland"
)

// writeFallback serves the given formats from a daemonized Wayland
// clipboard-owner process. Without a Wayland session there is no
// fallback writer on Linux; the primary (X11 tool based) path already
// covered that case.
func writeFallback(formats map[string][]byte) error {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("clipboard: no wayland session for fallback write")
	}
	return spawnClipboardOwner(formats)
}

func spawnClipboardOwner(formats map[string][]byte) error {
	payload, err := json.Marshal(formats)
	if err != nil {
		return err
	}

	// Re-exec this binary as a daemonised subprocess.
	cmd := exec.Command(os.Args[0], "__clipboard-serve")
	cmd.Stdin = bytes.NewReader(payload)
	// Detach from the parent's process group so the child survives parent exit.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd.Start() // no Wait, the parent returns immediately
}

// ServeFormats is called by the __clipboard-serve hidden command. It
// runs the Wayland clipboard owner, blocking until ownership is
// cancelled by the next clipboard write.
func ServeFormats(formats map[string][]byte) error {
	return wayland.Serve(formats)
}
