package bootstrap

import (
	"fmt"
	"io"
	"time"

	"github.com/kbukum/pandora/di"
)

// Summary renders the container state after startup.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
	telemetry       bool
}

// NewSummary creates a new bootstrap summary tracker.
func NewSummary(serviceName, version string) *Summary {
	return &Summary{serviceName: serviceName, version: version}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// SetTelemetry records whether telemetry is exported.
func (s *Summary) SetTelemetry(enabled bool) {
	s.telemetry = enabled
}

// Render writes the summary and the container's registrations to w.
func (s *Summary) Render(w io.Writer, regs []di.RegistrationInfo) {
	fmt.Fprintf(w, "\n🚀 %s v%s started in %.2fs\n\n",
		s.serviceName, s.version, s.startupDuration.Seconds())

	telemetry := "⏸️  disabled"
	if s.telemetry {
		telemetry = "✅ exporting"
	}
	fmt.Fprintf(w, "📊 Telemetry: %s\n\n", telemetry)

	fmt.Fprintf(w, "📦 Bindings (%d)\n", len(regs))
	if len(regs) == 0 {
		fmt.Fprintf(w, "   └── No bindings registered\n\n")
		return
	}
	for i, r := range regs {
		prefix := "├──"
		if i == len(regs)-1 {
			prefix = "└──"
		}
		line := fmt.Sprintf("   %s %s %s [%s]", prefix, kindIcon(r.Kind), r.Key, r.Kind)
		if r.Shared {
			line += " shared"
		}
		if r.Hooks > 0 {
			line += fmt.Sprintf(" (%d hooks)", r.Hooks)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}

func kindIcon(kind string) string {
	switch kind {
	case di.KindClass:
		return "⚙️"
	case di.KindFactory:
		return "🏭"
	case di.KindInstance:
		return "📌"
	default:
		return "💼"
	}
}
