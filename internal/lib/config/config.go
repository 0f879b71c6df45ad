package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"local"`
	HTTPServer HttpServer `yaml:"http_server" env-required:"true"`
	Database   Database   `yaml:"database"`
	CORS       CORS       `yaml:"cors" env-required:"true"`
	Identity   Identity   `yaml:"identity"`
	Blobstore  Blobstore  `yaml:"blobstore"`
	Inference  Inference  `yaml:"inference"`
	Mailer     Mailer     `yaml:"mailer"`
	Mailbox    Mailbox    `yaml:"mailbox"`
	Sweep      Sweep      `yaml:"sweep"`
}

type HttpServer struct {
	Address      string        `yaml:"address" env-default:"localhost:8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	URL           string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
	MigrationsDir string `yaml:"migrations_dir" env-default:"migrations"`
}

type CORS struct {
	FrontendOrigin string `yaml:"frontend_origin" env:"FRONTEND_ORIGIN" env-required:"true"`
}

type Identity struct {
	BaseURL   string `yaml:"base_url" env-default:"https://api.clerk.dev"`
	SecretKey string `yaml:"secret_key" env:"CLERK_SECRET_KEY" env-required:"true"`
	// JWTSecret enables local HMAC verification of session tokens instead
	// of the introspection call. Dev-only.
	JWTSecret string `yaml:"jwt_secret" env:"CLERK_JWT_SECRET"`
}

type Blobstore struct {
	URL        string `yaml:"url" env:"SUPABASE_URL" env-required:"true"`
	ServiceKey string `yaml:"service_key" env:"SUPABASE_SERVICE_KEY" env-required:"true"`
	Bucket     string `yaml:"bucket" env-default:"audio"`
}

type Inference struct {
	Token      string `yaml:"token" env:"HF_TOKEN" env-required:"true"`
	WhisperURL string `yaml:"whisper_url" env-default:"https://api-inference.huggingface.co/models/openai/whisper-large-v2"`
	LLMURL     string `yaml:"llm_url" env-default:"https://api-inference.huggingface.co/models/mistralai/Mixtral-8x7B-Instruct-v0.1"`
}

type Mailer struct {
	Domain      string `yaml:"domain" env:"MAILGUN_DOMAIN" env-required:"true"`
	APIKey      string `yaml:"api_key" env:"MAILGUN_API_KEY" env-required:"true"`
	Sender      string `yaml:"sender" env:"MAILGUN_SENDER" env-required:"true"`
	ReplyDomain string `yaml:"reply_domain" env:"MAILGUN_REPLY_DOMAIN"`
	JoinBaseURL string `yaml:"join_base_url" env:"JOIN_BASE_URL" env-required:"true"`
}

type Mailbox struct {
	Enabled  bool   `yaml:"enabled" env:"MAILBOX_ENABLED" env-default:"false"`
	Addr     string `yaml:"addr" env:"MAILBOX_ADDR"`
	Username string `yaml:"username" env:"MAILBOX_USERNAME"`
	Password string `yaml:"password" env:"MAILBOX_PASSWORD"`
}

type Sweep struct {
	Interval time.Duration `yaml:"interval" env-default:"1h"`
}

// MustLoad panics if config can not be found.
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is required")
	}

	if _, err := os.Stat(configPath); err != nil {
		panic("config file does not exist:" + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from cmd flag or environment variable.
// flag > env > default.
// default = "".
func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "Path to the configuration file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
