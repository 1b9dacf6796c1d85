// Package style holds the terminal color palette, the lipgloss styles built
// on it and a small markup language ("[delete]...[/delete]") for styled
// messages.
package style
