package model

// Settings are the runtime switches that gate sink mirroring.
// The zero value disables everything, so a logger with no settings
// applied writes console lines only.
type Settings struct {
	// Analytics gates forwarding of analytics events to the analytics sink.
	Analytics bool
	// AnalyticsEcho gates echoing analytics events to the console.
	AnalyticsEcho bool
	// CrashReporting gates mirroring messages and errors to the crash sink.
	CrashReporting bool
}

// SettingsPatch is a partial update of Settings. Nil fields leave the
// current value untouched.
type SettingsPatch struct {
	Analytics      *bool
	AnalyticsEcho  *bool
	CrashReporting *bool
}

// Apply returns a copy of s with the non-nil fields of the patch applied.
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.Analytics != nil {
		s.Analytics = *p.Analytics
	}
	if p.AnalyticsEcho != nil {
		s.AnalyticsEcho = *p.AnalyticsEcho
	}
	if p.CrashReporting != nil {
		s.CrashReporting = *p.CrashReporting
	}
	return s
}
