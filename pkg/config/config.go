package config

// Log configures the application logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=text json logfmt"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[chain]"`
}

// Chain describes the duplicate chain the CLI builds.
// MaxPayload of zero disables the payload gates.
type Chain struct {
	Length     int    `envconfig:"LENGTH" default:"4" validate:"min=1"`
	Input      string `envconfig:"INPUT" default:"Hello"`
	MaxPayload int    `envconfig:"MAX_PAYLOAD" default:"0" validate:"min=0"`
}

// App is the root configuration loaded from the environment.
type App struct {
	Env   string `envconfig:"APP_ENV" default:"development"`
	Log   *Log   `envconfig:"LOG" validate:"required"`
	Chain *Chain `envconfig:"CHAIN" validate:"required"`
}
