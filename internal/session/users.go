package session

import (
	"context"
	"fmt"

	"moneytracker/internal/core"
	"moneytracker/internal/log"
)

// ListUsers returns a copy of the profile list.
func (s *Session) ListUsers() []core.User {
	return append([]core.User(nil), s.users...)
}

// MainUser returns the name of the main user, empty when no users exist.
func (s *Session) MainUser() string {
	return s.mainUser
}

// CreateUser adds a profile. The first user created while no main user is
// set becomes the main user.
func (s *Session) CreateUser(ctx context.Context, name string, balance int64) error {
	if err := core.ValidateUserName(name, s.users, ""); err != nil {
		return s.report(err)
	}

	s.users = append(s.users, core.User{Name: name, Balance: balance})
	if err := s.repo.SaveUsers(ctx, s.users); err != nil {
		return err
	}
	if s.mainUser == "" {
		s.mainUser = name
		if err := s.repo.SaveMainUser(ctx, name); err != nil {
			return err
		}
	}

	s.logger.Info("User created", log.FieldOperation, log.OpCreate, log.FieldUser, name)
	return nil
}

// RenameUser renames the selected user, moving its per-user storage keys
// and following the main-user pointer when it referenced the old name.
func (s *Session) RenameUser(ctx context.Context, newName string) error {
	if err := s.requireUser(); err != nil {
		return s.report(err)
	}
	if err := core.ValidateUserName(newName, s.users, s.current); err != nil {
		return s.report(err)
	}
	oldName := s.current
	if newName == oldName {
		return nil
	}

	if err := s.repo.MoveUserData(ctx, oldName, newName); err != nil {
		return err
	}

	i := s.findUser(oldName)
	s.users[i].Name = newName
	if err := s.repo.SaveUsers(ctx, s.users); err != nil {
		return err
	}
	if s.mainUser == oldName {
		s.mainUser = newName
		if err := s.repo.SaveMainUser(ctx, newName); err != nil {
			return err
		}
	}
	s.current = newName
	if err := s.repo.SaveSelectedUser(ctx, newName); err != nil {
		return err
	}
	s.totals.Purge()

	s.logger.Info("User renamed", log.FieldOperation, log.OpRename, log.FieldUser, newName, "previous", oldName)
	return nil
}

// SetMainUser marks an existing user as the default landing profile.
func (s *Session) SetMainUser(ctx context.Context, name string) error {
	if s.findUser(name) < 0 {
		return s.report(fmt.Errorf("%w: user %q", core.ErrNotFound, name))
	}
	s.mainUser = name
	if err := s.repo.SaveMainUser(ctx, name); err != nil {
		return err
	}
	s.logger.Info("Main user set", log.FieldOperation, log.OpUpdate, log.FieldUser, name)
	return nil
}

// DeleteUser removes the selected user and its stored collections.
// Deleting the main user is refused; no replacement main is chosen here.
func (s *Session) DeleteUser(ctx context.Context) error {
	if err := s.requireUser(); err != nil {
		return s.report(err)
	}
	if s.current == s.mainUser {
		return s.report(fmt.Errorf("%w: cannot delete the main user", core.ErrInvariant))
	}

	name := s.current
	i := s.findUser(name)
	s.users = append(s.users[:i], s.users[i+1:]...)
	if err := s.repo.SaveUsers(ctx, s.users); err != nil {
		return err
	}
	if err := s.repo.DeleteUserData(ctx, name); err != nil {
		return err
	}
	if err := s.SelectUser(ctx, ""); err != nil {
		return err
	}

	s.logger.Info("User deleted", log.FieldOperation, log.OpDelete, log.FieldUser, name)
	return nil
}

// SelectUser swaps in the named user's collections from storage. The empty
// name deselects: in-memory collections reset without touching storage.
func (s *Session) SelectUser(ctx context.Context, name string) error {
	if name == "" {
		s.current = ""
		s.transactions = core.TransactionsByMonth{}
		s.templates = nil
		s.tags = nil
		s.lastID = 0
		s.totals.Purge()
		return s.repo.SaveSelectedUser(ctx, "")
	}

	if s.findUser(name) < 0 {
		return s.report(fmt.Errorf("%w: user %q", core.ErrNotFound, name))
	}

	byMonth, err := s.repo.Transactions(ctx, name)
	if err != nil {
		return err
	}
	templates, err := s.repo.Templates(ctx, name)
	if err != nil {
		return err
	}
	tags, err := s.repo.Tags(ctx, name)
	if err != nil {
		return err
	}

	s.current = name
	s.transactions = byMonth
	s.templates = templates
	s.tags = tags
	s.lastID = core.MaxID(byMonth)
	s.totals.Purge()

	if err := s.repo.SaveSelectedUser(ctx, name); err != nil {
		return err
	}
	s.logger.Debug("User selected", log.FieldOperation, log.OpSelect, log.FieldUser, name)
	return nil
}
