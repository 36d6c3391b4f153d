package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"moneytracker/internal/core"
)

// Store keys. The profile list and the two scalars are process-wide; the
// three collection keys are scoped per user name.
const (
	keyUsers        = "users"
	keyMainUser     = "mainUser"
	keySelectedUser = "selectedUser"
)

func transactionsKey(user string) string { return user + "_transactions" }
func templatesKey(user string) string    { return user + "_templates" }
func tagsKey(user string) string         { return user + "_tags" }

// Repository maps the tracker's logical collections onto KV keys as JSON.
// Missing keys read back as zero values; every save is an immediate
// full-value write-back of the collection.
type Repository struct {
	kv KV
}

func NewRepository(kv KV) *Repository {
	return &Repository{kv: kv}
}

func (r *Repository) load(ctx context.Context, key string, out any) error {
	data, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *Repository) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.kv.Put(ctx, key, data)
}

func (r *Repository) Users(ctx context.Context) ([]core.User, error) {
	var users []core.User
	if err := r.load(ctx, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) SaveUsers(ctx context.Context, users []core.User) error {
	return r.save(ctx, keyUsers, users)
}

func (r *Repository) MainUser(ctx context.Context) (string, error) {
	var name string
	if err := r.load(ctx, keyMainUser, &name); err != nil {
		return "", err
	}
	return name, nil
}

func (r *Repository) SaveMainUser(ctx context.Context, name string) error {
	return r.save(ctx, keyMainUser, name)
}

func (r *Repository) SelectedUser(ctx context.Context) (string, error) {
	var name string
	if err := r.load(ctx, keySelectedUser, &name); err != nil {
		return "", err
	}
	return name, nil
}

func (r *Repository) SaveSelectedUser(ctx context.Context, name string) error {
	return r.save(ctx, keySelectedUser, name)
}

func (r *Repository) Transactions(ctx context.Context, user string) (core.TransactionsByMonth, error) {
	byMonth := core.TransactionsByMonth{}
	if err := r.load(ctx, transactionsKey(user), &byMonth); err != nil {
		return nil, err
	}
	return byMonth, nil
}

func (r *Repository) SaveTransactions(ctx context.Context, user string, byMonth core.TransactionsByMonth) error {
	return r.save(ctx, transactionsKey(user), byMonth)
}

func (r *Repository) Templates(ctx context.Context, user string) ([]core.Template, error) {
	var templates []core.Template
	if err := r.load(ctx, templatesKey(user), &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *Repository) SaveTemplates(ctx context.Context, user string, templates []core.Template) error {
	return r.save(ctx, templatesKey(user), templates)
}

func (r *Repository) Tags(ctx context.Context, user string) ([]core.Tag, error) {
	var tags []core.Tag
	if err := r.load(ctx, tagsKey(user), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *Repository) SaveTags(ctx context.Context, user string, tags []core.Tag) error {
	return r.save(ctx, tagsKey(user), tags)
}

// MoveUserData re-keys the three per-user collections on rename. Reads and
// writes are per key; there is no cross-key transactionality.
func (r *Repository) MoveUserData(ctx context.Context, oldName, newName string) error {
	pairs := [][2]string{
		{transactionsKey(oldName), transactionsKey(newName)},
		{templatesKey(oldName), templatesKey(newName)},
		{tagsKey(oldName), tagsKey(newName)},
	}
	for _, p := range pairs {
		data, ok, err := r.kv.Get(ctx, p[0])
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := r.kv.Put(ctx, p[1], data); err != nil {
			return err
		}
		if err := r.kv.Delete(ctx, p[0]); err != nil {
			return err
		}
	}
	return nil
}

// DeleteUserData removes the three per-user collection keys.
func (r *Repository) DeleteUserData(ctx context.Context, user string) error {
	for _, key := range []string{transactionsKey(user), templatesKey(user), tagsKey(user)} {
		if err := r.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
