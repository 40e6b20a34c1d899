package handlers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/capreserve/internal/reservation"
)

var (
	renderColorGreen = lipgloss.Color("#22c55e")
	renderColorBlue  = lipgloss.Color("#3b82f6")
	renderColorDim   = lipgloss.Color("#6b7280")
	renderColorWhite = lipgloss.Color("#f9fafb")
)

var (
	renderTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(renderColorWhite)

	renderSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(renderColorBlue)

	renderDimStyle = lipgloss.NewStyle().
			Foreground(renderColorDim)

	renderGreenStyle = lipgloss.NewStyle().
				Foreground(renderColorGreen)
)

// renderRecord produces a lipgloss-styled summary of a created reservation.
func renderRecord(rec *reservation.Record, simulated bool) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(renderTitleStyle.Render("  Capacity reservation created"))
	b.WriteString("\n")
	b.WriteString(renderDimStyle.Render("  " + strings.Repeat("═", 32)))
	b.WriteString("\n\n")

	b.WriteString(renderSectionStyle.Render("  Reservation"))
	b.WriteString("\n")
	writeField(&b, "ID", renderGreenStyle.Render(rec.ID))
	writeField(&b, "State", rec.State)
	writeField(&b, "Owner", rec.OwnerID)
	writeField(&b, "ARN", rec.ARN)

	b.WriteString("\n")
	b.WriteString(renderSectionStyle.Render("  Capacity"))
	b.WriteString("\n")
	writeField(&b, "Instance Type", rec.InstanceType)
	writeField(&b, "Platform", rec.Platform)
	writeField(&b, "Zone", rec.AvailabilityZone)
	writeField(&b, "Tenancy", rec.Tenancy)
	writeField(&b, "Total Instances", fmt.Sprintf("%d", rec.TotalInstanceCount))
	writeField(&b, "Available", fmt.Sprintf("%d", rec.AvailableInstanceCount))
	writeField(&b, "EBS Optimized", fmt.Sprintf("%t", rec.EbsOptimized))

	b.WriteString("\n")
	b.WriteString(renderSectionStyle.Render("  Lifetime"))
	b.WriteString("\n")
	writeField(&b, "Start", rec.StartDate.Format(time.RFC3339))
	writeField(&b, "End Date Type", rec.EndDateType)
	if rec.EndDate != nil {
		writeField(&b, "End", rec.EndDate.Format(time.RFC3339))
	}

	if len(rec.Tags) > 0 {
		b.WriteString("\n")
		b.WriteString(renderSectionStyle.Render("  Tags"))
		b.WriteString("\n")
		keys := make([]string, 0, len(rec.Tags))
		for k := range rec.Tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeField(&b, k, rec.Tags[k])
		}
	}

	if simulated {
		b.WriteString("\n")
		b.WriteString(renderDimStyle.Render("  Note: simulation mode, no reservation exists at the provider."))
		b.WriteString("\n")
	}

	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "    %-16s %s\n", name+":", value)
}
