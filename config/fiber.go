package config

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

func GetFiberConfig(cfg *Config) fiber.Config {
	return fiber.Config{
		DisableStartupMessage: false,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Prefork:               false,
		ServerHeader:          cfg.AppName,
		AppName:               cfg.AppName,
		ReadTimeout:           time.Second * 60,
		CaseSensitive:         true,
	}
}
