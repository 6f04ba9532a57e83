package config

// Config is the top-level linetrans configuration, corresponding to
// .linetrans.yml. Every field can be overridden with a LINETRANS_*
// environment variable.
type Config struct {
	Port      int    `yaml:"port" koanf:"port"`
	LogLevel  string `yaml:"log_level" koanf:"log_level"`
	LogFormat string `yaml:"log_format" koanf:"log_format"`

	// AllowAllOrigins relaxes CORS on the health/status endpoints (dev mode).
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`

	// LINE channel credentials. The secret keys webhook signature
	// verification; the access token authenticates reply sends.
	ChannelAccessToken string `yaml:"channel_access_token" koanf:"channel_access_token"`
	ChannelSecret      string `yaml:"channel_secret" koanf:"channel_secret"`

	// Translation collaborator settings.
	TranslateAPIKey         string `yaml:"translate_api_key" koanf:"translate_api_key"`
	TranslateEndpoint       string `yaml:"translate_endpoint" koanf:"translate_endpoint"`
	TranslateHost           string `yaml:"translate_host" koanf:"translate_host"`
	TranslateTimeoutSeconds int    `yaml:"translate_timeout_seconds" koanf:"translate_timeout_seconds"`

	// MaxReplyLength caps each reply message in runes; longer texts are
	// replaced with a warning.
	MaxReplyLength int `yaml:"max_reply_length" koanf:"max_reply_length"`
}
