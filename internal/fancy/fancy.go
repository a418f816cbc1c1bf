// Package fancy provides pretty printing utilities and styling for CLI output
package fancy

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// BranchNode creates a styled section header node
func BranchNode(title string, count string) *tree.Tree {
	return tree.New().Root(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			HeaderStyle.Render(title),
			" ",
			InfoStyle.Render(count),
		),
	)
}

// Section creates a styled subtree with a plain header; attach it with Child
func Section(title string) *tree.Tree {
	return tree.New().Root(HeaderStyle.Render(title))
}

// KeyValue renders "key: value" with key and value styles
func KeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", KeyText(key), ValueText(value))
}

// Swatch renders a block filled with the given hex color followed by its label
func Swatch(hex, label string) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	return lipgloss.JoinHorizontal(lipgloss.Top, block, " ", label)
}

// TruncateString truncates a string if it exceeds maxLength
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
