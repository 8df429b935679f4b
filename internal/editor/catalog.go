// Package editor knows the supported editors, how to launch them at a given
// line, and drives the "open with" menu.
package editor

import (
	"fmt"
	"strings"
)

// DefaultTerminal hosts terminal editors in a new window
const DefaultTerminal = "gnome-terminal"

// Target is the file location an editor is opened at
type Target struct {
	Path string
	Line int
}

// Editor describes one entry of the fixed editor menu
type Editor struct {
	Name    string
	Label   string // menu label when installed
	Binary  string
	Package string // empty when there is no automated install
	// Terminal editors run inside a new terminal window
	Terminal bool

	// ManualSteps are shown instead of an install offer when Package is empty
	ManualSteps []string
	OpenHints   []string
	// AfterLaunch is printed once the launch has been handed off
	AfterLaunch []string
	// PrintFallback prints the direct command when the launch fails
	PrintFallback bool
}

// Catalog is the editor menu in display order
var Catalog = []Editor{
	{
		Name:   "VS Code",
		Label:  "VS Code",
		Binary: "code",
		ManualSteps: []string{
			"Visit: https://code.visualstudio.com/",
			"Download the .deb package",
			"Install with: sudo dpkg -i <package>.deb",
			"If dependencies missing: sudo apt --fix-broken install",
		},
	},
	{
		Name:      "Vim",
		Label:     "Vim (new window)",
		Binary:    "vim",
		Package:   "vim",
		Terminal:  true,
		OpenHints: []string{"💡 In NEW window: Press ESC then :q to exit"},
	},
	{
		Name:      "Nano",
		Label:     "Nano (new window)",
		Binary:    "nano",
		Package:   "nano",
		Terminal:  true,
		OpenHints: []string{"💡 Look for a NEW window to appear!"},
		AfterLaunch: []string{
			"✅ New terminal window launched!",
			"💡 Use arrow keys in the NEW window",
			"💡 Press Ctrl+X to exit Nano",
		},
		PrintFallback: true,
	},
	{
		Name:    "Gedit",
		Label:   "Gedit",
		Binary:  "gedit",
		Package: "gedit",
	},
}

// Direct returns the command that opens the editor in the current terminal
func (e Editor) Direct(t Target) string {
	if e.Binary == "code" {
		return fmt.Sprintf("code --goto %s:%d", shellQuote(t.Path), t.Line)
	}
	return fmt.Sprintf("%s +%d %s", e.Binary, t.Line, shellQuote(t.Path))
}

// Windowed wraps the direct command so it runs in a new terminal window.
// The inner script is quoted as a whole so the path is only expanded once.
func (e Editor) Windowed(t Target, terminal string) string {
	return fmt.Sprintf("%s -- bash -c %s", terminal, shellQuote(e.Direct(t)+"; exec bash"))
}

// Launch returns the shell command used to open the editor
func (e Editor) Launch(t Target, terminal string) string {
	if e.Terminal {
		return e.Windowed(t, terminal)
	}
	return e.Direct(t)
}

// CanInstall reports whether a package manager can install the editor
func (e Editor) CanInstall() bool {
	return e.Package != ""
}

// Commands returns every command that can open the editor at t
func (e Editor) Commands(t Target, terminal string) []string {
	cmds := []string{e.Direct(t)}
	if e.Terminal {
		cmds = append(cmds, e.Windowed(t, terminal))
	}
	return cmds
}

// shellQuote wraps s in single quotes for bash
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
