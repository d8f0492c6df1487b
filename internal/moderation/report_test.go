package moderation

import "testing"

func TestReportsUnsetByDefault(t *testing.T) {
	r := NewReports()
	if _, ok := r.Channel(); ok {
		t.Fatal("fresh Reports should have no channel")
	}
}

func TestReportsSetAndReplace(t *testing.T) {
	r := NewReports()

	r.SetChannel("111")
	if id, ok := r.Channel(); !ok || id != "111" {
		t.Fatalf("Channel() = %q, %v after set", id, ok)
	}

	r.SetChannel("222")
	if id, _ := r.Channel(); id != "222" {
		t.Errorf("Channel() = %q, want replacement 222", id)
	}
}

func TestBuildEmbedFields(t *testing.T) {
	embed := BuildEmbed(Report{
		ReporterID:   "1",
		ReporterName: "alice",
		ReportedID:   "2",
		ReportedName: "bob",
		Message:      "offending text",
		Reason:       "spam",
		ChannelID:    "42",
	})

	want := map[string]string{
		"Reported User":   "bob (<@2>)",
		"Reported By":     "alice (<@1>)",
		"Message Content": "offending text",
		"Reason":          "spam",
		"Channel":         "<#42>",
	}
	if len(embed.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(embed.Fields), len(want))
	}
	for _, f := range embed.Fields {
		if want[f.Name] != f.Value {
			t.Errorf("field %q = %q, want %q", f.Name, f.Value, want[f.Name])
		}
	}
	if embed.Timestamp == "" {
		t.Error("report embed should carry a timestamp")
	}
}
