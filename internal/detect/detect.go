// Package detect guesses the language of a chat message by counting
// script-specific characters. It only distinguishes the three languages
// the bot translates between.
package detect

// Lang is a detected language.
type Lang string

const (
	English Lang = "en"
	Thai    Lang = "th"
	Myanmar Lang = "my"
)

// dominantShare is the fraction of counted characters a script must
// exceed to be considered the message's language.
const dominantShare = 0.7

// Detect returns the dominant language of s. A script wins when it makes
// up more than 70% of the ASCII-alphabetic, Thai-block and Myanmar-block
// characters combined. Empty and mixed-script input defaults to English.
func Detect(s string) Lang {
	var english, thai, myanmar int
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			english++
		case r >= 0x0E00 && r <= 0x0E7F:
			thai++
		case r >= 0x1000 && r <= 0x109F:
			myanmar++
		}
	}

	total := english + thai + myanmar
	if total == 0 {
		return English
	}

	t := float64(total)
	switch {
	case float64(english)/t > dominantShare:
		return English
	case float64(thai)/t > dominantShare:
		return Thai
	case float64(myanmar)/t > dominantShare:
		return Myanmar
	default:
		return English
	}
}

// Targets returns the two languages a message in l should be translated
// into, in the order the segments appear in the reply.
func (l Lang) Targets() []Lang {
	switch l {
	case Thai:
		return []Lang{English, Myanmar}
	case Myanmar:
		return []Lang{English, Thai}
	default:
		return []Lang{Thai, Myanmar}
	}
}

// Flag returns the flag emoji prefixed to reply segments in l.
func (l Lang) Flag() string {
	switch l {
	case Thai:
		return "\U0001F1F9\U0001F1ED"
	case Myanmar:
		return "\U0001F1F2\U0001F1F2"
	default:
		return "\U0001F1EC\U0001F1E7"
	}
}

func (l Lang) String() string { return string(l) }
