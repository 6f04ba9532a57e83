package config

const (
	defaultTranslateEndpoint = "https://microsoft-translator-text-api3.p.rapidapi.com/largetranslate"
	defaultTranslateHost     = "microsoft-translator-text-api3.p.rapidapi.com"
)

// DefaultConfig returns a Config with sensible defaults. Credentials
// have no default and must come from the config file or environment.
func DefaultConfig() *Config {
	return &Config{
		Port:                    8080,
		LogLevel:                "info",
		LogFormat:               "text",
		TranslateEndpoint:       defaultTranslateEndpoint,
		TranslateHost:           defaultTranslateHost,
		TranslateTimeoutSeconds: 10,
		MaxReplyLength:          2000,
	}
}
