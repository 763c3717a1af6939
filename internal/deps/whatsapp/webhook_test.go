package whatsapp

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/elmerol/comanda/internal/models"
)

func TestParseEventText(t *testing.T) {
  data := []byte(`{
    "entry": [{
      "changes": [{
        "value": {
          "messages": [{
            "from": "50588881111",
            "type": "text",
            "text": {"body": "quiero a3"}
          }]
        }
      }]
    }]
  }`)

  event, ok := ParseEvent(data)

  require.True(t, ok)
  assert.Equal(t, "50588881111", event.Sender)
  assert.Equal(t, models.EventText, event.Kind)
  assert.Equal(t, "quiero a3", event.Text)
  assert.Empty(t, event.ChoiceId)
}

func TestParseEventButtonReply(t *testing.T) {
  data := []byte(`{
    "entry": [{
      "changes": [{
        "value": {
          "messages": [{
            "from": "50588881111",
            "type": "interactive",
            "interactive": {
              "type": "button_reply",
              "button_reply": {"id": "QTY_ADD", "title": "Agregar"}
            }
          }]
        }
      }]
    }]
  }`)

  event, ok := ParseEvent(data)

  require.True(t, ok)
  assert.Equal(t, models.EventButton, event.Kind)
  assert.Equal(t, "QTY_ADD", event.ChoiceId)
}

func TestParseEventListReply(t *testing.T) {
  data := []byte(`{
    "entry": [{
      "changes": [{
        "value": {
          "messages": [{
            "from": "50588881111",
            "type": "interactive",
            "interactive": {
              "type": "list_reply",
              "list_reply": {"id": "PROD_a2", "title": "Bisteck"}
            }
          }]
        }
      }]
    }]
  }`)

  event, ok := ParseEvent(data)

  require.True(t, ok)
  assert.Equal(t, models.EventList, event.Kind)
  assert.Equal(t, "PROD_a2", event.ChoiceId)
}

func TestParseEventDiscards(t *testing.T) {
  tests := []struct {
    name string
    data string
  }{
    {name: "malformed json", data: `{"entry": [`},
    {name: "empty envelope", data: `{}`},
    {name: "status callback without messages", data: `{"entry":[{"changes":[{"value":{}}]}]}`},
    {name: "missing sender", data: `{"entry":[{"changes":[{"value":{"messages":[{"type":"text","text":{"body":"hola"}}]}}]}]}`},
    {name: "unknown message type", data: `{"entry":[{"changes":[{"value":{"messages":[{"from":"505","type":"image"}]}}]}]}`},
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      _, ok := ParseEvent([]byte(tt.data))
      assert.False(t, ok)
    })
  }
}
