package moderation

import (
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Reports holds the staff report destination. The channel is set by an
// administrative command and read on every report, so it is kept as an
// atomically replaceable value with an explicit unset state.
type Reports struct {
	channelID atomic.Pointer[string]
}

func NewReports() *Reports {
	return &Reports{}
}

// SetChannel replaces the staff report destination.
func (r *Reports) SetChannel(channelID string) {
	r.channelID.Store(&channelID)
}

// Channel returns the staff channel ID, or ok=false when no admin has
// set one yet. Reporting is disabled until then.
func (r *Reports) Channel() (string, bool) {
	p := r.channelID.Load()
	if p == nil || *p == "" {
		return "", false
	}
	return *p, true
}

// Report is one user-filed message report.
type Report struct {
	ReporterID   string
	ReporterName string
	ReportedID   string
	ReportedName string
	Message      string
	Reason       string
	ChannelID    string
}

// BuildEmbed renders a report for delivery to the staff channel.
func BuildEmbed(rep Report) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🚨 Message Report",
		Color: 0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reported User", Value: rep.ReportedName + " (<@" + rep.ReportedID + ">)"},
			{Name: "Reported By", Value: rep.ReporterName + " (<@" + rep.ReporterID + ">)"},
			{Name: "Message Content", Value: rep.Message},
			{Name: "Reason", Value: rep.Reason},
			{Name: "Channel", Value: "<#" + rep.ChannelID + ">"},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
