// File: services/professional/templates_test.go
package professional

import (
	"strings"
	"testing"
)

func TestValidateTemplate(t *testing.T) {
	base := TemplateInput{
		DayOfWeek: 1,
		StartTime: "08:00",
		EndTime:   "17:00",
	}

	cases := []struct {
		name    string
		mutate  func(*TemplateInput)
		wantErr string // substring, "" means valid
	}{
		{"plain window", func(in *TemplateInput) {}, ""},
		{"with lunch break", func(in *TemplateInput) {
			in.LunchBreakStart = "12:00"
			in.LunchBreakEnd = "13:00"
		}, ""},
		{"custom duration", func(in *TemplateInput) { in.AppointmentDuration = 30 }, ""},
		{"lunch touching both edges", func(in *TemplateInput) {
			in.LunchBreakStart = "08:00"
			in.LunchBreakEnd = "17:00"
		}, ""},
		{"bad start format", func(in *TemplateInput) { in.StartTime = "8am" }, "hhmm"},
		{"hour out of range", func(in *TemplateInput) { in.StartTime = "25:00" }, "hhmm"},
		{"minute out of range", func(in *TemplateInput) { in.EndTime = "17:75" }, "hhmm"},
		{"inverted window", func(in *TemplateInput) {
			in.StartTime = "17:00"
			in.EndTime = "08:00"
		}, "must be before"},
		{"zero-length window", func(in *TemplateInput) { in.EndTime = "08:00" }, "must be before"},
		{"weekday too large", func(in *TemplateInput) { in.DayOfWeek = 7 }, "DayOfWeek"},
		{"weekday negative", func(in *TemplateInput) { in.DayOfWeek = -1 }, "DayOfWeek"},
		{"lunch start only", func(in *TemplateInput) { in.LunchBreakStart = "12:00" }, "both start and end"},
		{"lunch end only", func(in *TemplateInput) { in.LunchBreakEnd = "13:00" }, "both start and end"},
		{"inverted lunch", func(in *TemplateInput) {
			in.LunchBreakStart = "13:00"
			in.LunchBreakEnd = "12:00"
		}, "must be before"},
		{"lunch before window", func(in *TemplateInput) {
			in.LunchBreakStart = "07:00"
			in.LunchBreakEnd = "07:30"
		}, "inside the window"},
		{"lunch past window", func(in *TemplateInput) {
			in.LunchBreakStart = "16:30"
			in.LunchBreakEnd = "17:30"
		}, "inside the window"},
		{"duration too short", func(in *TemplateInput) { in.AppointmentDuration = 1 }, "AppointmentDuration"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := base
			c.mutate(&in)
			err := validateTemplate(in)
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("validateTemplate(%+v) = %v, want nil", in, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("validateTemplate(%+v) = nil, want error containing %q", in, c.wantErr)
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Dra. Helena Souza", "dra-helena-souza"},
		{"  JOÃO  ", "jo-o"},
		{"Clínica São José", "cl-nica-s-o-jos"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
