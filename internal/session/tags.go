package session

import (
	"context"
	"fmt"

	"moneytracker/internal/core"
	"moneytracker/internal/log"
)

// TagData carries raw presentation input for a tag.
type TagData struct {
	Name  string
	Color string
}

// ListTags returns a copy of the selected user's tags.
func (s *Session) ListTags() []core.Tag {
	return append([]core.Tag(nil), s.tags...)
}

// UpsertTag creates a tag, or replaces the one keyed by oldName when
// editing. A rename cascades into every transaction and template
// referencing the old name; all three collections are persisted together.
// Editing a vanished tag is a silent no-op.
func (s *Session) UpsertTag(ctx context.Context, d TagData, oldName string) error {
	if err := s.requireUser(); err != nil {
		return s.report(err)
	}
	if err := core.ValidateTagName(d.Name, s.cfg.Labels()); err != nil {
		return s.report(err)
	}
	if d.Color == "" {
		return s.report(fmt.Errorf("%w: color is required", core.ErrValidation))
	}
	for _, tag := range s.tags {
		if tag.Name == d.Name && tag.Name != oldName {
			return s.report(fmt.Errorf("%w: tag %q already exists", core.ErrValidation, d.Name))
		}
	}

	record := core.Tag{Name: d.Name, Color: d.Color}
	if oldName == "" {
		s.tags = append(s.tags, record)
		if err := s.repo.SaveTags(ctx, s.current, s.tags); err != nil {
			return err
		}
		s.logger.Debug("Tag created", log.FieldOperation, log.OpCreate, log.FieldTag, d.Name)
		return nil
	}

	i := s.findTag(oldName)
	if i < 0 {
		s.logger.Debug("Tag edit target vanished", log.FieldTag, oldName)
		return nil
	}
	s.tags[i] = record

	if d.Name != oldName {
		byMonth, templates, affected := core.RenameTag(s.transactions, s.templates, oldName, d.Name)
		s.transactions = byMonth
		s.templates = templates
		if err := s.repo.SaveTransactions(ctx, s.current, s.transactions); err != nil {
			return err
		}
		if err := s.repo.SaveTemplates(ctx, s.current, s.templates); err != nil {
			return err
		}
		s.totals.Purge()
		s.logger.Info("Tag renamed",
			log.FieldOperation, log.OpRename,
			log.FieldTag, d.Name,
			"previous", oldName,
			log.FieldAffected, affected)
	}

	return s.repo.SaveTags(ctx, s.current, s.tags)
}

// DeleteTag removes the tag keyed by name. References in transactions and
// templates are left dangling on purpose: they render under the built-in
// type label. A vanished key is a silent no-op.
func (s *Session) DeleteTag(ctx context.Context, name string) error {
	if err := s.requireUser(); err != nil {
		return s.report(err)
	}
	i := s.findTag(name)
	if i < 0 {
		return nil
	}
	s.tags = append(s.tags[:i], s.tags[i+1:]...)
	if err := s.repo.SaveTags(ctx, s.current, s.tags); err != nil {
		return err
	}
	s.logger.Debug("Tag deleted", log.FieldOperation, log.OpDelete, log.FieldTag, name)
	return nil
}

func (s *Session) findTag(name string) int {
	for i, tag := range s.tags {
		if tag.Name == name {
			return i
		}
	}
	return -1
}
