package models

// Settings represents application-wide settings
type Settings struct {
	WorkMinutes    int    `json:"work_minutes"`     // pomodoro work phase length
	BreakMinutes   int    `json:"break_minutes"`    // pomodoro break phase length
	SoundEnabled   bool   `json:"sound_enabled"`    // terminal bell on phase completion
	QuizServiceURL string `json:"quiz_service_url"` // base URL of the quiz generation service
	Timezone       string `json:"timezone"`         // IANA timezone name, or "Local" for the system timezone
}
