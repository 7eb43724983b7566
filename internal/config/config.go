package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Store struct {
	Path string `yaml:"path" env:"STORE_PATH" env-default:"storefront.db"`
}

type Sync struct {
	PollInterval time.Duration `yaml:"poll_interval" env:"SYNC_POLL_INTERVAL" env-default:"100ms"`
}

type Security struct {
	JWTKey            string `yaml:"jwt_key" env:"JWT_KEY" env-required:"true"`
	AdminUserID       string `yaml:"admin_user_id" env:"ADMIN_USER_ID" env-default:"admin-001"`
	AdminUsername     string `yaml:"admin_username" env:"ADMIN_USERNAME" env-required:"true"`
	AdminPasswordHash string `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
	AdminEmail        string `yaml:"admin_email" env:"ADMIN_EMAIL" env-default:"admin@parisboutiquejuba.com"`
	AdminRole         string `yaml:"admin_role" env:"ADMIN_ROLE" env-default:"super_admin"`
}

type Contact struct {
	WhatsAppNumber string `yaml:"whatsapp_number" env:"WHATSAPP_NUMBER" env-default:""`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"production"`
	HTTPServer `yaml:"http_server"`
	Store      Store    `yaml:"store"`
	Sync       Sync     `yaml:"sync"`
	Security   Security `yaml:"security"`
	Contact    Contact  `yaml:"contact"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags
	}

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read config from environment: %s", err.Error())
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}
