package storage

import (
	"devtrack/internal/constants"
	"devtrack/internal/models"
)

func defaultSettings() models.Settings {
	return models.Settings{
		WorkMinutes:  constants.DefaultWorkMinutes,
		BreakMinutes: constants.DefaultBreakMinutes,
		SoundEnabled: constants.DefaultSoundEnabled,
		Timezone:     constants.DefaultTimezone,
	}
}
