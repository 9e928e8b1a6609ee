package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config описывает YAML-конфигурацию плеера.
type Config struct {
	Player struct {
		// Пауза между показом результата ответа и следующим вопросом,
		// в миллисекундах.
		RevealDelayMillis int  `yaml:"reveal_delay_millis"`
		NoColor           bool `yaml:"no_color"`
	} `yaml:"player"`
	History struct {
		// DSN базы для истории прохождений. Пустая строка —
		// история не сохраняется.
		DSN string `yaml:"dsn"`
	} `yaml:"history"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	var cfg Config
	cfg.Player.RevealDelayMillis = 1500

	return cfg
}

// Load читает и проверяет файл конфигурации.
// Отсутствующий файл — не ошибка: возвращаются значения по умолчанию.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if cfg.Player.RevealDelayMillis < 0 {
		return cfg, fmt.Errorf("player.reveal_delay_millis must not be negative")
	}
	if cfg.Player.RevealDelayMillis == 0 {
		cfg.Player.RevealDelayMillis = 1500
	}

	return cfg, nil
}

// RevealDelay возвращает паузу показа результата как Duration.
func (c Config) RevealDelay() time.Duration {
	return time.Duration(c.Player.RevealDelayMillis) * time.Millisecond
}
