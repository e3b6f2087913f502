// Package tui implements the interactive live view behind the watch command.
//
// The screen runs the same sequential sweep cycle as the plain loop, inside
// the Bubble Tea event loop: one blocking scan at a time executes in a
// command goroutine, its table is rendered when the result message arrives,
// and a one-second countdown schedules the next sweep. Driver failures end
// the session; the command layer reports them after the program exits.
//
// # Framework Components
//
// The screen leverages Bubble Tea framework components throughout:
//   - bubbles/spinner: sweep-in-flight indicator
//   - bubbles/help: context-aware footer help
//   - bubbles/key: named key bindings
//   - lipgloss: styling and the application frame
//
// # Usage Example
//
//	model := tui.NewModel(driver, scan.DefaultConfig(), monitor.DefaultInterval)
//	program := tea.NewProgram(model, tea.WithAltScreen())
//
//	final, err := program.Run()
//	if err != nil {
//	    return err
//	}
//	if m, ok := final.(tui.Model); ok && m.Err() != nil {
//	    return m.Err()
//	}
//
// # Key Bindings
//
// Key bindings are context aware: while idle, s starts a sweep immediately
// and q quits; while a sweep is in flight, only q is offered. Ctrl+C always
// quits. The footer help text updates with the screen state.
//
// # Thread Safety
//
// The Bubble Tea framework ensures thread safety through message passing.
// All model updates occur in a single goroutine; the blocking sweep runs in
// a command goroutine and communicates only through messages.
package tui
