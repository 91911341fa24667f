package application

import "expvar"

// Counters published on /debug/vars.
var (
	metricSessions       = expvar.NewInt("onboarding_sessions_created")
	metricAdvanceBlocked = expvar.NewInt("onboarding_advance_blocked")
	metricCallerErrors   = expvar.NewInt("onboarding_rejected_updates")
	metricSubmissions    = expvar.NewInt("onboarding_submissions")
)
