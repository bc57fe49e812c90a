package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

type message struct {
	text      string
	remaining float64
}

// MessagingOverlay shows short-lived messages such as "Ball lost!".
// The newest message is drawn; older ones expire behind it.
type MessagingOverlay struct {
	messages []message
}

// NewMessagingOverlay creates an empty overlay.
func NewMessagingOverlay() *MessagingOverlay {
	return &MessagingOverlay{}
}

// Post shows text for secs seconds.
func (o *MessagingOverlay) Post(text string, secs float64) {
	o.messages = append(o.messages, message{text: text, remaining: secs})
}

// Update ages messages and drops the expired ones.
func (o *MessagingOverlay) Update(dt float64) {
	live := o.messages[:0]
	for _, m := range o.messages {
		m.remaining -= dt
		if m.remaining > 0 {
			live = append(live, m)
		}
	}
	o.messages = live
}

// Current returns the newest live message, or "".
func (o *MessagingOverlay) Current() string {
	if len(o.messages) == 0 {
		return ""
	}
	return o.messages[len(o.messages)-1].text
}

// Render draws the current message below the screen center.
func (o *MessagingOverlay) Render(dst *core.Screen) {
	if text := o.Current(); text != "" {
		dst.DrawTextCenteredColor(dst.Height()/2+3, text, core.ColorBrightYellow)
	}
}
