// Package automation models OS input automation as an explicit list of
// steps and runs it through a Runner.
//
// Steps are key-code presses, literal keystrokes and timed waits. The
// waits are ordinary steps rather than sleeps hidden in a scheduler, so a
// sequence can be inspected or recorded without touching the keyboard.
//
// The production runner renders the sequence as one AppleScript program
// addressed to System Events and hands it to osascript. DryRun prints the
// program instead, and Recorder keeps the sequences for tests.
package automation
