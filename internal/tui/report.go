package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/health"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
)

func mark(ok bool) string {
	if ok {
		return okStyle.Render("✓")
	}
	return missStyle.Render("✗")
}

func row(sb *strings.Builder, label, value string) {
	sb.WriteString(labelStyle.Render(label) + " " + value + "\n")
}

// RenderReport formats a health check for the terminal.
func RenderReport(r *health.CheckResult) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("Test environment: %s", r.Status())) + "\n")
	row(&sb, "Program path", r.ProgramDir)
	sb.WriteString("\n")

	sb.WriteString(headerStyle.Render("Tools") + "\n")
	for _, t := range r.Tools {
		path := t.Path
		if !t.Found {
			path = "not found"
		}
		row(&sb, string(t.Name), mark(t.Found)+" "+path)
	}
	sb.WriteString("\n")

	caps := r.Capabilities
	sb.WriteString(headerStyle.Render("Capabilities") + "\n")
	if caps.Version != "" {
		row(&sb, "Version", caps.Version)
	}
	row(&sb, "Lua", mark(caps.Lua))
	row(&sb, "nghttp2", mark(caps.Nghttp2))
	row(&sb, "Kerberos", mark(caps.Kerberos))
	gcrypt := mark(caps.Gcrypt17)
	if caps.GcryptVersion != "" {
		gcrypt += " " + caps.GcryptVersion
	}
	row(&sb, "Gcrypt >= 1.7", gcrypt)
	sb.WriteString("\n")

	sb.WriteString(headerStyle.Render("Platform") + "\n")
	iface := r.CaptureInterface
	if iface == "" {
		iface = "none"
	}
	row(&sb, "Capture", mark(r.CaptureAvailable)+" interface "+iface)
	row(&sb, "Mkfifo", mark(r.CanMkfifo))
	row(&sb, "Display", mark(r.CanDisplay))
	ping := "unsupported"
	if len(r.PingCommand) > 0 {
		ping = strings.Join(r.PingCommand, " ")
	}
	row(&sb, "Ping", ping)

	return sb.String()
}
