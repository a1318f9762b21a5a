package domain

import (
	"fmt"
	"time"
)

// Report captures a snapshot of the bot's runtime health.
type Report struct {
	Version string
	Uptime  time.Duration
	Latency time.Duration
	Guilds  int
}

// NewReport creates a Report from the given measurements.
func NewReport(version string, startedAt time.Time, latency time.Duration, guilds int) *Report {
	return &Report{
		Version: version,
		Uptime:  time.Since(startedAt).Truncate(time.Second),
		Latency: latency,
		Guilds:  guilds,
	}
}

// FormatUptime renders the uptime as a compact human-readable string.
func (r *Report) FormatUptime() string {
	d := r.Uptime
	if d < 0 {
		d = 0
	}

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := (d - minutes*time.Minute) / time.Second

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	default:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
}

// FormatLatency renders the gateway latency in milliseconds.
func (r *Report) FormatLatency() string {
	if r.Latency <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dms", r.Latency.Milliseconds())
}
