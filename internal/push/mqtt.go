package push

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/courtside-labs/courtside/internal/schedule"
)

// TVPublisher pushes each TV's finished lineup to its MQTT topic so
// physical screens can pick up the week's plan when they come online.
// A nil publisher is valid and publishes nothing.
type TVPublisher struct {
	client mqtt.Client
}

func NewTVPublisher(brokerURL, clientID string) (*TVPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to mqtt broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Msg("mqtt connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &TVPublisher{client: client}, nil
}

// PublishLineups sends one retained message per TV. Publish failures are
// logged, not returned: the schedule response must not fail because a
// screen is offline.
func (p *TVPublisher) PublishLineups(lineups []schedule.TVLineup) {
	if p == nil || p.client == nil {
		return
	}
	for _, lineup := range lineups {
		payload, err := json.Marshal(lineup)
		if err != nil {
			log.Error().Err(err).Int("tv", lineup.TVNumber).Msg("could not encode lineup")
			continue
		}
		topic := TopicForTV(lineup.TVNumber)
		if token := p.client.Publish(topic, 1, true, payload); token.Wait() && token.Error() != nil {
			log.Warn().Err(token.Error()).Str("topic", topic).Msg("lineup publish failed")
		}
	}
}

// TopicForTV names the retained-lineup topic for one TV.
func TopicForTV(tv int) string {
	return fmt.Sprintf("courtside/tv/%d", tv)
}
