package intent

// NLUMessage is a Hermes NluIntent as published on hermes/intent/<name>.
type NLUMessage struct {
	Input  string `json:"input"`
	Intent struct {
		IntentName      string  `json:"intentName" validate:"required"`
		ConfidenceScore float64 `json:"confidenceScore"`
	} `json:"intent"`
	Slots     []NLUSlot `json:"slots" validate:"dive"`
	SiteID    string    `json:"siteId"`
	SessionID string    `json:"sessionId"`
}

type NLUSlot struct {
	SlotName string `json:"slotName" validate:"required"`
	RawValue string `json:"rawValue"`
	Value    struct {
		Kind  string    `json:"kind"`
		Value SlotValue `json:"value" validate:"slottext"`
	} `json:"value"`
}

type NLU struct{}

func (NLU) Name() string { return "nlu_intent" }

// Decode uses the first non-empty value of every slot name.
func (NLU) Decode(data []byte) (*Message, error) {
	var msg NLUMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(msg.Slots))
	for _, s := range msg.Slots {
		if _, seen := values[s.SlotName]; seen || s.Value.Value == "" {
			continue
		}
		values[s.SlotName] = string(s.Value.Value)
	}

	return &Message{
		Input: fromSlots(msg.Intent.IntentName, func(name string) string {
			return values[name]
		}),
		Text:      msg.Input,
		SiteID:    msg.SiteID,
		SessionID: msg.SessionID,
	}, nil
}
