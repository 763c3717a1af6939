package whatsapp

// Outbound payloads of the Cloud API /messages endpoint.

type payload struct {
  MessagingProduct string       `json:"messaging_product"`
  To               string       `json:"to"`
  Type             string       `json:"type"`
  Text             *textBody    `json:"text,omitempty"`
  Interactive      *interactive `json:"interactive,omitempty"`
}

type textBody struct {
  Body string `json:"body"`
}

type interactive struct {
  Type   string  `json:"type"`
  Body   body    `json:"body"`
  Action *action `json:"action,omitempty"`
}

type body struct {
  Text string `json:"text"`
}

type action struct {
  Buttons  []button  `json:"buttons,omitempty"`
  Button   string    `json:"button,omitempty"`
  Sections []section `json:"sections,omitempty"`
}

type button struct {
  Type  string `json:"type"`
  Reply reply  `json:"reply"`
}

type reply struct {
  Id    string `json:"id"`
  Title string `json:"title"`
}

type section struct {
  Title string `json:"title"`
  Rows  []row  `json:"rows"`
}

type row struct {
  Id          string `json:"id"`
  Title       string `json:"title"`
  Description string `json:"description,omitempty"`
}

// Inbound webhook envelope, reduced to the fields the bot reads.

type Envelope struct {
  Entry []envelopeEntry `json:"entry"`
}

type envelopeEntry struct {
  Changes []envelopeChange `json:"changes"`
}

type envelopeChange struct {
  Value envelopeValue `json:"value"`
}

type envelopeValue struct {
  Messages []envelopeMessage `json:"messages"`
}

type envelopeMessage struct {
  From        string               `json:"from"`
  Type        string               `json:"type"`
  Text        *textBody            `json:"text"`
  Interactive *envelopeInteractive `json:"interactive"`
}

type envelopeInteractive struct {
  Type        string `json:"type"`
  ButtonReply *reply `json:"button_reply"`
  ListReply   *reply `json:"list_reply"`
}
