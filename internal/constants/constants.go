package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.dinote/`

	DefaultBaseURL        = `https://notes-api.dicoding.dev/v2`
	DefaultTimeoutSeconds = 15
	DefaultView           = `active`
)
