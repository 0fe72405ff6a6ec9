package smtp

// Config holds SMTP server configuration. All fields except TLSMode are
// required; absence fails configuration loading before any network activity.
// The account address doubles as the From address of outgoing mail.
type Config struct {
	Host     string `env:"SMTP_SERVER,required"`
	Port     int    `env:"SMTP_PORT,required"`
	Username string `env:"EMAIL_ADDRESS,required"`
	Password string `env:"EMAIL_PASSWORD,required"`
	TLSMode  string `env:"SMTP_TLS_MODE" envDefault:"tls"` // tls, starttls, or plain
}
