package models

const (
  EventText   EventKind = "text"
  EventButton EventKind = "button_choice"
  EventList   EventKind = "list_choice"
)

type EventKind = string

// Event is the normalized inbound message the state machine consumes,
// already stripped of the provider envelope.
type Event struct {
  Sender   UserId    `json:"sender"`
  Kind     EventKind `json:"kind"`
  Text     string    `json:"text"`
  ChoiceId string    `json:"choice_id"`
}

// Interactive reports whether the event carries a discrete choice
// identifier. Choice ids are unambiguous and take precedence over
// free text routing.
func (e Event) Interactive() bool {
  return e.ChoiceId != ""
}
