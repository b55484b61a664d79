//go:build !no_mqtt

package main

import (
	"log/slog"

	mqttpub "nldump/internal/mqtt"

	"nldump/internal/dumper"
	"nldump/internal/genl"
)

type mqttStopper struct {
	pub *mqttpub.Publisher
}

func (m *mqttStopper) Stop() {
	if m.pub != nil {
		m.pub.Stop()
	}
}

func initMQTT(registry *genl.Registry, events *dumper.EventBus, cfg *Config, logger *slog.Logger) *mqttStopper {
	if !cfg.MQTT.Enabled {
		return &mqttStopper{}
	}
	pub, err := mqttpub.NewPublisher(registry, events, mqttpub.Config{
		Broker:      cfg.MQTT.Broker,
		Username:    cfg.MQTT.Username,
		Password:    cfg.MQTT.Password,
		TopicPrefix: cfg.MQTT.TopicPrefix,
		ClientID:    cfg.MQTT.ClientID,
	}, logger)
	if err != nil {
		logger.Error("mqtt publisher", "err", err)
		return &mqttStopper{}
	}
	pub.Start()
	return &mqttStopper{pub: pub}
}
