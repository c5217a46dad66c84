package shell

import (
	"fmt"
	"strings"
)

// Launch describes the context change the CLI performs after a command:
// change into Dir and run Path with Args attached to the terminal.
type Launch struct {
	Dir  string
	Path string
	Args []string
	// Display is a human-readable form of the command for messages.
	Display string
	// Follow asks a wrapping shell to move into Dir afterwards.
	Follow bool
}

// EditorLaunch opens dir in editor directly.
func EditorLaunch(dir, editor string) *Launch {
	return &Launch{
		Dir:     dir,
		Path:    editor,
		Args:    []string{"."},
		Display: editor + " .",
		Follow:  true,
	}
}

// FileLaunch opens a single file in editor from dir. The calling shell
// stays where it is.
func FileLaunch(dir, editor, file string) *Launch {
	return &Launch{
		Dir:     dir,
		Path:    editor,
		Args:    []string{file},
		Display: editor + " " + file,
	}
}

// ActivatedLaunch runs the activation tokens and then the editor in one
// shell invocation: `shell -c "<activate...> && '<editor>' ."`.
func ActivatedLaunch(dir, sh string, activate []string, editor string) *Launch {
	script := fmt.Sprintf("%s && %s .", ActivationCommand(activate), Quote(editor))
	return &Launch{
		Dir:     dir,
		Path:    sh,
		Args:    []string{"-c", script},
		Display: script,
		Follow:  true,
	}
}

// ActivationCommand joins the activation tokens into one shell command line.
func ActivationCommand(activate []string) string {
	return strings.Join(activate, " ")
}

// Quote wraps s in single quotes for POSIX shells.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
