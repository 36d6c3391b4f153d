package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"moneytracker/internal/core"
	"moneytracker/internal/log"
)

// Export serializes the selected user's full dataset to the portable
// artifact encoding and returns the deterministic download filename
// alongside it.
func (s *Session) Export(ctx context.Context) (filename, artifact string, err error) {
	if err := s.requireUser(); err != nil {
		return "", "", s.report(err)
	}
	u, _ := s.CurrentUser()

	payload := core.ExportPayload{
		User:         u,
		Transactions: s.transactions.Clone(),
		Templates:    append([]core.Template(nil), s.templates...),
		Tags:         append([]core.Tag(nil), s.tags...),
		ExportedAt:   s.now(),
	}
	artifact, err = core.EncodeExport(payload)
	if err != nil {
		return "", "", err
	}
	filename = core.ExportFilename(u.Name, s.now())

	s.logger.Info("Dataset exported",
		log.FieldOperation, log.OpExport,
		log.FieldUser, u.Name,
		log.FieldFilename, filename)
	return filename, artifact, nil
}

// Import restores a dataset from an artifact. An unknown user is created
// with the imported balance and selected; templates and tags apply only
// when the artifact carries them. For an existing user whose stored data
// differs from the import, ErrOverwriteRequired comes back untouched until
// the caller confirms with overwrite=true. Collections are replaced whole;
// records are never merged.
func (s *Session) Import(ctx context.Context, artifact string, overwrite bool) error {
	payload, err := core.DecodeExport(artifact)
	if err != nil {
		return s.report(err)
	}
	name := payload.User.Name

	if s.findUser(name) < 0 {
		return s.importNewUser(ctx, payload)
	}

	same, err := s.storedDataMatches(ctx, name, payload)
	if err != nil {
		return err
	}
	if !same && !overwrite {
		return s.report(fmt.Errorf("%w, overwrite?", core.ErrOverwriteRequired))
	}
	return s.applyImport(ctx, payload)
}

func (s *Session) importNewUser(ctx context.Context, payload core.ExportPayload) error {
	name := payload.User.Name
	if err := core.ValidateUserName(name, s.users, ""); err != nil {
		return s.report(err)
	}
	s.users = append(s.users, payload.User)
	if err := s.repo.SaveUsers(ctx, s.users); err != nil {
		return err
	}
	if s.mainUser == "" {
		s.mainUser = name
		if err := s.repo.SaveMainUser(ctx, name); err != nil {
			return err
		}
	}
	return s.applyImport(ctx, payload)
}

func (s *Session) applyImport(ctx context.Context, payload core.ExportPayload) error {
	if err := s.SelectUser(ctx, payload.User.Name); err != nil {
		return err
	}

	s.transactions = payload.Transactions.Clone()
	if err := s.repo.SaveTransactions(ctx, s.current, s.transactions); err != nil {
		return err
	}
	if payload.Templates != nil {
		s.templates = append([]core.Template(nil), payload.Templates...)
		if err := s.repo.SaveTemplates(ctx, s.current, s.templates); err != nil {
			return err
		}
	}
	if payload.Tags != nil {
		s.tags = append([]core.Tag(nil), payload.Tags...)
		if err := s.repo.SaveTags(ctx, s.current, s.tags); err != nil {
			return err
		}
	}
	s.lastID = core.MaxID(s.transactions)
	s.totals.Purge()

	s.logger.Info("Dataset imported",
		log.FieldOperation, log.OpImport,
		log.FieldUser, s.current,
		"months", len(s.transactions))
	return nil
}

// storedDataMatches compares the artifact's collections against the values
// currently in storage, serialized. Collections absent from the artifact
// are not compared since import leaves them alone.
func (s *Session) storedDataMatches(ctx context.Context, name string, payload core.ExportPayload) (bool, error) {
	storedTx, err := s.repo.Transactions(ctx, name)
	if err != nil {
		return false, err
	}
	if !sameSerialized(storedTx, payload.Transactions) {
		return false, nil
	}
	if payload.Templates != nil {
		storedTemplates, err := s.repo.Templates(ctx, name)
		if err != nil {
			return false, err
		}
		if !sameSerialized(normalizeTemplates(storedTemplates), normalizeTemplates(payload.Templates)) {
			return false, nil
		}
	}
	if payload.Tags != nil {
		storedTags, err := s.repo.Tags(ctx, name)
		if err != nil {
			return false, err
		}
		if !sameSerialized(normalizeTags(storedTags), normalizeTags(payload.Tags)) {
			return false, nil
		}
	}
	return true, nil
}

// sameSerialized compares two values by their JSON form. Map keys marshal
// in sorted order, so equal mappings compare equal.
func sameSerialized(a, b any) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}

func normalizeTemplates(in []core.Template) []core.Template {
	if in == nil {
		return []core.Template{}
	}
	return in
}

func normalizeTags(in []core.Tag) []core.Tag {
	if in == nil {
		return []core.Tag{}
	}
	return in
}
