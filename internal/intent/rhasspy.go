package intent

// RhasspyMessage is the intent JSON posted by Rhasspy's remote intent
// handling.
type RhasspyMessage struct {
	Intent struct {
		Name       string  `json:"name" validate:"required"`
		Confidence float64 `json:"confidence"`
	} `json:"intent"`
	Text      string               `json:"text"`
	SiteID    string               `json:"siteId"`
	SessionID string               `json:"sessionId"`
	Slots     map[string]SlotValue `json:"slots" validate:"dive,slottext"`
}

type Rhasspy struct{}

func (Rhasspy) Name() string { return "rhasspy_intent" }

func (Rhasspy) Decode(data []byte) (*Message, error) {
	var msg RhasspyMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	return &Message{
		Input: fromSlots(msg.Intent.Name, func(name string) string {
			return string(msg.Slots[name])
		}),
		Text:      msg.Text,
		SiteID:    msg.SiteID,
		SessionID: msg.SessionID,
	}, nil
}
