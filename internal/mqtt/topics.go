//go:build !no_mqtt

package mqtt

import (
	"encoding/json"
	"sort"
	"strings"

	"nldump/internal/dumper"
	"nldump/internal/genl"
)

// outMsg is one MQTT publish.
type outMsg struct {
	Topic    string
	Payload  []byte
	Retained bool
}

// topicLevel makes s safe as a single topic level: lowercase, with
// separators and wildcards replaced.
func topicLevel(s string) string {
	if s == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-':
			return r
		}
		return '_'
	}, s)
}

func stateTopic(prefix string) string {
	return prefix + "/state"
}

// messageTopic is <prefix>/<family>/<command>. Control and unknown
// messages without a command land under "_".
func messageTopic(prefix string, ev dumper.MessageEvent) string {
	return prefix + "/" + topicLevel(ev.Family) + "/" + topicLevel(ev.Command)
}

func buildMessage(prefix string, ev dumper.MessageEvent) outMsg {
	return outMsg{Topic: messageTopic(prefix, ev), Payload: mustJSON(ev)}
}

type familyPayload struct {
	Name     string           `json:"name"`
	ID       uint16           `json:"id"`
	Version  uint8            `json:"version"`
	Commands map[uint8]string `json:"commands"`
}

// buildFamilies describes every known family under the retained
// <prefix>/families/<name> topics.
func buildFamilies(prefix string, families []genl.Family) []outMsg {
	sort.Slice(families, func(i, j int) bool { return families[i].Name < families[j].Name })
	msgs := make([]outMsg, 0, len(families))
	for _, f := range families {
		msgs = append(msgs, outMsg{
			Topic: prefix + "/families/" + topicLevel(f.Name),
			Payload: mustJSON(familyPayload{
				Name:     f.Name,
				ID:       f.ID,
				Version:  f.Version,
				Commands: f.Commands,
			}),
			Retained: true,
		})
	}
	return msgs
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("{}")
	}
	return data
}
