package event

import "github.com/javiermolinar/dulcinea/internal/dateutil"

// Messages returned by TimeErrorMessage.
const (
	StartTimeErrorMessage = "Start time must be earlier than end time."
	EndTimeErrorMessage   = "End time must be later than start time."

	StartTimeErrorMessageKorean = "시작 시간은 종료 시간보다 빨라야 합니다."
	EndTimeErrorMessageKorean   = "종료 시간은 시작 시간보다 늦어야 합니다."
)

var timeErrorMessages = map[dateutil.Locale]TimeErrors{
	dateutil.LocaleEnglish: {StartTimeError: StartTimeErrorMessage, EndTimeError: EndTimeErrorMessage},
	dateutil.LocaleKorean:  {StartTimeError: StartTimeErrorMessageKorean, EndTimeError: EndTimeErrorMessageKorean},
}

// TimeErrors holds the user-facing messages for a start/end pair.
// An empty field means no error.
type TimeErrors struct {
	StartTimeError string
	EndTimeError   string
}

// HasError reports whether either message is set.
func (e TimeErrors) HasError() bool {
	return e.StartTimeError != "" || e.EndTimeError != ""
}

// TimeErrorMessage validates that start is strictly before end, with the
// English messages.
// Validation waits until both values are entered, so an empty argument is
// never an error. Values that are not HH:MM cannot be ordered and are not
// reported either.
func TimeErrorMessage(start, end string) TimeErrors {
	return TimeErrorMessageIn(start, end, dateutil.LocaleEnglish)
}

// TimeErrorMessageIn is TimeErrorMessage with the messages of loc. Unknown
// locales fall back to English.
func TimeErrorMessageIn(start, end string, loc dateutil.Locale) TimeErrors {
	if start == "" || end == "" {
		return TimeErrors{}
	}
	s, err := ParseClock(start)
	if err != nil {
		return TimeErrors{}
	}
	e, err := ParseClock(end)
	if err != nil {
		return TimeErrors{}
	}
	if s < e {
		return TimeErrors{}
	}
	if msgs, ok := timeErrorMessages[loc]; ok {
		return msgs
	}
	return timeErrorMessages[dateutil.LocaleEnglish]
}
