package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
)

// signOffLines rotate under the logout message.
var signOffLines = [...]string{
	"The listings will still be here tomorrow.",
	"Go touch grass. The deadlines can wait.",
	"Your applications keep working while you don't.",
	"Somewhere out there, a recruiter just opened your CV.",
	"Rest is part of the search too.",
	"The right posting shows up when you least expect it.",
	"Closing the deck, not the chapter.",
}

func printHelp() {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60a5fa")).
		Bold(true).
		Render("J O B D E C K")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("a job board for your terminal")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	commands := []struct{ cmd, desc string }{
		{"jobdeck", "Browse jobs (interactive TUI)"},
		{"jobdeck login", "Authenticate with Google"},
		{"jobdeck logout", "Clear your session"},
		{"jobdeck version", "Show version"},
		{"jobdeck help", "You are here"},
	}

	fmt.Printf("\n  %s\n\n  %s\n\n  Commands:\n", title, tagline)
	for _, c := range commands {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}
	repo := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("https://github.com/redaelm/jobdeck")
	fmt.Printf("\n  %s\n\n", repo)
}

func printSignedOut() {
	line := signOffLines[rand.IntN(len(signOffLines))]

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60a5fa")).
		Bold(true).
		Render("JOBDECK")

	quote := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render(line)

	fmt.Printf("\n%s\n\nSigned out.\n%s\n\n", title, quote)
}
