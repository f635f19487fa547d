// Package sms holds the template CRUD and segment math layered on a line's
// SMS configuration. Everything operates on plain slices; persisting the
// result goes through the template editor's reconciliation.
package sms

import (
	"errors"
	"fmt"
	"strings"

	"linedesk/internal/inventory"

	"github.com/google/uuid"
)

var (
	// ErrInvalidTemplate rejects a template whose name or content trims to
	// empty.
	ErrInvalidTemplate = errors.New("sms: invalid template")

	// ErrTemplateNotFound is returned by Edit for an unknown template id.
	ErrTemplateNotFound = errors.New("sms: template not found")
)

// Add validates and appends a new template. The input slice is not modified;
// usage starts at zero and only the sending path ever increments it.
func Add(ts []inventory.SMSTemplate, name, content string) ([]inventory.SMSTemplate, inventory.SMSTemplate, error) {
	if err := validate(name, content); err != nil {
		return ts, inventory.SMSTemplate{}, err
	}
	tpl := inventory.SMSTemplate{
		ID:      uuid.NewString(),
		Name:    name,
		Content: content,
	}
	out := append(append([]inventory.SMSTemplate(nil), ts...), tpl)
	return out, tpl, nil
}

// Edit replaces the name and content of an existing template in place; its
// position and usage count are untouched.
func Edit(ts []inventory.SMSTemplate, id, name, content string) ([]inventory.SMSTemplate, inventory.SMSTemplate, error) {
	if err := validate(name, content); err != nil {
		return ts, inventory.SMSTemplate{}, err
	}
	out := append([]inventory.SMSTemplate(nil), ts...)
	for i := range out {
		if out[i].ID == id {
			out[i].Name = name
			out[i].Content = content
			return out, out[i], nil
		}
	}
	return ts, inventory.SMSTemplate{}, ErrTemplateNotFound
}

// Delete removes the template with the given id. Deleting an unknown id is a
// no-op, matching the editor behavior where a delete can race a cleared
// editing state.
func Delete(ts []inventory.SMSTemplate, id string) []inventory.SMSTemplate {
	out := make([]inventory.SMSTemplate, 0, len(ts))
	for _, t := range ts {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func validate(name, content string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidTemplate)
	}
	return nil
}
