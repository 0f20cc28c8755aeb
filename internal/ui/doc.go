// Package ui holds the terminal presentation used by the CLI.
//
// [Palette] renders status lines with lipgloss styles. [TerminalPrompter] asks for one line of input
// with a small bubbletea program built on bubbles/textinput; hidden prompts (passwords) use
// [textinput.EchoNone] so nothing typed is drawn. Commands depend on the [Prompter] interface so
// tests can script answers.
package ui
