//go:build !no_mqtt

// Package mqtt mirrors the decoded message stream onto an MQTT broker.
package mqtt

import (
	"fmt"
	"log/slog"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"nldump/internal/dumper"
	"nldump/internal/genl"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
	qos            = 1
)

// Config holds MQTT publisher configuration.
type Config struct {
	Broker      string
	Username    string
	Password    string
	TopicPrefix string
	ClientID    string
}

// publishClient is the part of pahomqtt.Client the publisher drives.
type publishClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) pahomqtt.Token
	Disconnect(quiesce uint)
}

// Publisher forwards bus events to MQTT:
//
//	<prefix>/<family>/<command>   every decoded message, as JSON
//	<prefix>/source               source errors and completion
//	<prefix>/families/<name>      retained family descriptions
//	<prefix>/state                retained online/offline, with a last will
type Publisher struct {
	client   publishClient
	registry *genl.Registry
	events   *dumper.EventBus
	prefix   string
	logger   *slog.Logger
	unsub    func()
}

// NewPublisher connects to the broker. Reconnects are handled by the client.
func NewPublisher(registry *genl.Registry, events *dumper.EventBus, cfg Config, logger *slog.Logger) (*Publisher, error) {
	p := newPublisher(nil, registry, events, cfg.TopicPrefix, logger)

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "nldump"
	}
	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetWill(stateTopic(p.prefix), "offline", qos, true).
		SetOnConnectHandler(func(_ pahomqtt.Client) {
			p.logger.Info("MQTT connected", "broker", cfg.Broker)
			p.publishState("online")
			p.publishFamilies()
		}).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			p.logger.Warn("MQTT connection lost", "err", err)
		})

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := pahomqtt.NewClient(opts)
	p.client = client
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt: connect %s: timeout", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect %s: %w", cfg.Broker, err)
	}
	return p, nil
}

func newPublisher(client publishClient, registry *genl.Registry, events *dumper.EventBus, prefix string, logger *slog.Logger) *Publisher {
	if prefix == "" {
		prefix = "nldump"
	}
	return &Publisher{
		client:   client,
		registry: registry,
		events:   events,
		prefix:   prefix,
		logger:   logger.With("component", "mqtt"),
	}
}

// Start subscribes to the event bus.
func (p *Publisher) Start() {
	p.unsub = p.events.Subscribe(dumper.Subscriber{
		Message: p.handleMessage,
		Source:  p.handleSource,
	})
	p.logger.Info("MQTT publisher started", "prefix", p.prefix)
}

// Stop publishes the offline state, unsubscribes and disconnects.
func (p *Publisher) Stop() {
	if p.unsub != nil {
		p.unsub()
	}
	p.publishState("offline")
	p.client.Disconnect(1000)
	p.logger.Info("MQTT publisher stopped")
}

func (p *Publisher) handleMessage(ev dumper.MessageEvent) {
	msg := buildMessage(p.prefix, ev)
	p.publish(msg.Topic, msg.Payload, msg.Retained)
	// A new family announcement may have bound an id.
	if ev.Family == "nlctrl" && ev.Command == "NEWFAMILY" {
		p.publishFamilies()
	}
}

func (p *Publisher) handleSource(ev dumper.SourceEvent) {
	p.publish(p.prefix+"/source", mustJSON(ev.Event()), false)
}

func (p *Publisher) publishState(state string) {
	p.publish(stateTopic(p.prefix), []byte(state), true)
}

func (p *Publisher) publishFamilies() {
	for _, msg := range buildFamilies(p.prefix, p.registry.All()) {
		p.publish(msg.Topic, msg.Payload, msg.Retained)
	}
}

func (p *Publisher) publish(topic string, payload []byte, retained bool) {
	token := p.client.Publish(topic, qos, retained, payload)
	go func() {
		if !token.WaitTimeout(publishTimeout) {
			p.logger.Warn("MQTT publish timeout", "topic", topic)
		} else if err := token.Error(); err != nil {
			p.logger.Warn("MQTT publish error", "topic", topic, "err", err)
		}
	}()
}
