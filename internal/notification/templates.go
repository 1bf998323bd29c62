package notification

import (
	"fmt"
	"io"

	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "["
	endTag   = "]"
)

var defaultTexts = map[domain.NotificationEvent]string{
	domain.EventConfirm:  "Reservation #[reservation_id] confirmed. Your machine is [machine_id], PIN [pin].",
	domain.EventResetPIN: "Too many wrong PIN attempts. Your new PIN is [pin].",
}

// Templates renders notification texts with [arg] placeholders.
type Templates struct {
	byEvent map[domain.NotificationEvent]*fasttemplate.Template
}

// NewTemplates parses the given texts, falling back to the built-in text for events not overridden.
func NewTemplates(overrides map[domain.NotificationEvent]string) (*Templates, error) {
	texts := make(map[domain.NotificationEvent]string, len(defaultTexts))
	for event, text := range defaultTexts {
		texts[event] = text
	}
	for event, text := range overrides {
		if text != "" {
			texts[event] = text
		}
	}

	t := &Templates{byEvent: make(map[domain.NotificationEvent]*fasttemplate.Template, len(texts))}
	for event, text := range texts {
		tpl, err := fasttemplate.NewTemplate(text, startTag, endTag)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", event, err)
		}
		t.byEvent[event] = tpl
	}

	return t, nil
}

func (t *Templates) Render(event domain.NotificationEvent, args domain.NotificationArgs) (string, error) {
	tpl, ok := t.byEvent[event]
	if !ok {
		return "", fmt.Errorf("no template for event %q", event)
	}

	return tpl.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		v, ok := args[tag]
		if !ok {
			return 0, fmt.Errorf("missing argument %q for event %q", tag, event)
		}
		return fmt.Fprint(w, v)
	})
}
