package whatsapp

import (
  "encoding/json"

  "github.com/elmerol/comanda/internal/models"
)

// ParseEvent extracts the first message of a webhook envelope as a
// normalized event. The second return is false for envelopes without a
// usable message (status callbacks, malformed payloads): those are
// discarded after logging, the webhook still answers 200 so the
// provider does not redeliver.
func ParseEvent(data []byte) (models.Event, bool) {
  var envelope Envelope

  if err := json.Unmarshal(data, &envelope); err != nil {
    return models.Event{}, false
  }

  if len(envelope.Entry) == 0 || len(envelope.Entry[0].Changes) == 0 {
    return models.Event{}, false
  }

  messages := envelope.Entry[0].Changes[0].Value.Messages
  if len(messages) == 0 {
    return models.Event{}, false
  }

  message := messages[0]
  if message.From == "" {
    return models.Event{}, false
  }

  switch message.Type {
  case "text":
    if message.Text == nil {
      return models.Event{}, false
    }
    return models.Event{
      Sender: message.From,
      Kind:   models.EventText,
      Text:   message.Text.Body,
    }, true

  case "interactive":
    if message.Interactive == nil {
      return models.Event{}, false
    }

    if r := message.Interactive.ButtonReply; r != nil {
      return models.Event{
        Sender:   message.From,
        Kind:     models.EventButton,
        ChoiceId: r.Id,
      }, true
    }
    if r := message.Interactive.ListReply; r != nil {
      return models.Event{
        Sender:   message.From,
        Kind:     models.EventList,
        ChoiceId: r.Id,
      }, true
    }

    return models.Event{}, false
  }

  return models.Event{}, false
}
