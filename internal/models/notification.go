package models

// NotificationSettings are the process-wide notification preferences.
type NotificationSettings struct {
	EventsEnabled      bool    `json:"eventsEnabled"`
	MessagesEnabled    bool    `json:"messagesEnabled"`
	SoundEnabled       bool    `json:"soundEnabled"`
	VibrationEnabled   bool    `json:"vibrationEnabled"`
	NearbyEventsRadius float64 `json:"nearbyEventsRadius"` // in kilometers
}

// DefaultNotificationSettings returns the settings a fresh install
// starts with.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EventsEnabled:      true,
		MessagesEnabled:    true,
		SoundEnabled:       true,
		VibrationEnabled:   true,
		NearbyEventsRadius: 10,
	}
}

// NotificationSettingsPatch carries the optional settings fields an
// update may touch.
type NotificationSettingsPatch struct {
	EventsEnabled      *bool    `json:"eventsEnabled,omitempty"`
	MessagesEnabled    *bool    `json:"messagesEnabled,omitempty"`
	SoundEnabled       *bool    `json:"soundEnabled,omitempty"`
	VibrationEnabled   *bool    `json:"vibrationEnabled,omitempty"`
	NearbyEventsRadius *float64 `json:"nearbyEventsRadius,omitempty"`
}

// Apply merges the patch into the settings.
func (p NotificationSettingsPatch) Apply(s *NotificationSettings) {
	if p.EventsEnabled != nil {
		s.EventsEnabled = *p.EventsEnabled
	}
	if p.MessagesEnabled != nil {
		s.MessagesEnabled = *p.MessagesEnabled
	}
	if p.SoundEnabled != nil {
		s.SoundEnabled = *p.SoundEnabled
	}
	if p.VibrationEnabled != nil {
		s.VibrationEnabled = *p.VibrationEnabled
	}
	if p.NearbyEventsRadius != nil {
		s.NearbyEventsRadius = *p.NearbyEventsRadius
	}
}
