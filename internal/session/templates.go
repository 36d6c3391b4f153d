package session

import (
	"context"
	"fmt"

	"moneytracker/internal/core"
	"moneytracker/internal/log"
)

// TemplateData carries raw presentation input for a template.
type TemplateData struct {
	Type   core.TxType
	Item   string
	Amount string
	Tag    string
}

// ListTemplates returns a copy of the selected user's templates.
func (s *Session) ListTemplates() []core.Template {
	return append([]core.Template(nil), s.templates...)
}

// HasTemplate reports whether a template with the given item exists.
func (s *Session) HasTemplate(item string) bool {
	return s.findTemplate(item) >= 0
}

// UpsertTemplate creates a template, or replaces the one keyed by oldItem
// when editing. Item names are unique among templates, excluding the record
// being edited. Editing a vanished template is a silent no-op.
func (s *Session) UpsertTemplate(ctx context.Context, d TemplateData, oldItem string) error {
	if err := s.requireUser(); err != nil {
		return s.report(err)
	}
	if !d.Type.IsValid() {
		return s.report(fmt.Errorf("%w: invalid transaction type %q", core.ErrValidation, d.Type))
	}
	if err := core.ValidateItem(d.Item); err != nil {
		return s.report(err)
	}
	amount, err := core.ParseAmount(d.Amount, s.cfg.AmountPolicy())
	if err != nil {
		return s.report(err)
	}
	for _, tpl := range s.templates {
		if tpl.Item == d.Item && tpl.Item != oldItem {
			return s.report(fmt.Errorf("%w: template %q already exists", core.ErrValidation, d.Item))
		}
	}

	record := core.Template{Type: d.Type, Item: d.Item, Amount: amount, Tag: d.Tag}
	if oldItem == "" {
		s.templates = append(s.templates, record)
	} else {
		i := s.findTemplate(oldItem)
		if i < 0 {
			s.logger.Debug("Template edit target vanished", log.FieldItem, oldItem)
			return nil
		}
		s.templates[i] = record
	}

	if err := s.repo.SaveTemplates(ctx, s.current, s.templates); err != nil {
		return err
	}
	s.logger.Debug("Template saved", log.FieldOperation, log.OpUpdate, log.FieldItem, d.Item)
	return nil
}

// DeleteTemplate removes the template keyed by item. A vanished key is a
// silent no-op.
func (s *Session) DeleteTemplate(ctx context.Context, item string) error {
	if err := s.requireUser(); err != nil {
		return s.report(err)
	}
	i := s.findTemplate(item)
	if i < 0 {
		return nil
	}
	s.templates = append(s.templates[:i], s.templates[i+1:]...)
	if err := s.repo.SaveTemplates(ctx, s.current, s.templates); err != nil {
		return err
	}
	s.logger.Debug("Template deleted", log.FieldOperation, log.OpDelete, log.FieldItem, item)
	return nil
}

func (s *Session) findTemplate(item string) int {
	for i, tpl := range s.templates {
		if tpl.Item == item {
			return i
		}
	}
	return -1
}
