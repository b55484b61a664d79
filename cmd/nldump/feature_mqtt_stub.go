//go:build no_mqtt

package main

import (
	"log/slog"

	"nldump/internal/dumper"
	"nldump/internal/genl"
)

type mqttStopper struct{}

func (m *mqttStopper) Stop() {}

func initMQTT(_ *genl.Registry, _ *dumper.EventBus, cfg *Config, logger *slog.Logger) *mqttStopper {
	if cfg.MQTT.Enabled {
		logger.Warn("mqtt enabled in config but not compiled in")
	}
	return &mqttStopper{}
}
