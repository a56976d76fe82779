// Package ipc provides the local unix-socket channel CLI commands use to
// talk to a running slyboard daemon (status, clear) instead of racing it on
// the history file. The daemon listens; CLI sub-commands probe for the
// socket and fall back to direct file access when it is absent.
package ipc

import (
	"net"
	"os"
	"path/filepath"
)

// SocketPath returns the IPC socket location: $SLYBOARD_SOCKET override,
// then XDG_RUNTIME_DIR, then the temp dir.
func SocketPath() string {
	if s := os.Getenv("SLYBOARD_SOCKET"); s != "" {
		return s
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "slyboard.sock")
	}
	return filepath.Join(os.TempDir(), "slyboard.sock")
}

// IsRunning reports whether a slyboard daemon appears to be listening on
// the IPC socket. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := Dial()
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen creates a net.Listener on the IPC socket path, removing any stale
// socket file from a previous (crashed) run first.
func Listen() (net.Listener, error) {
	path := SocketPath()
	_ = os.Remove(path)
	return net.Listen("unix", path)
}

// Dial connects to the IPC socket.
func Dial() (net.Conn, error) {
	return net.Dial("unix", SocketPath())
}
