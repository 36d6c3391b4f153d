package core

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ExportPayload is a user's full dataset in portable form. Templates and
// Tags stay nil when the source artifact omitted them, which import uses to
// leave the local collections alone.
type ExportPayload struct {
	User         User                `json:"user"`
	Transactions TransactionsByMonth `json:"transactions"`
	Templates    []Template          `json:"templates,omitempty"`
	Tags         []Tag               `json:"tags,omitempty"`
	ExportedAt   time.Time           `json:"exportedAt"`
}

// EncodeExport serializes the payload to JSON and wraps it in base64 so the
// artifact survives as plain text.
func EncodeExport(p ExportPayload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode export payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeExport reverses EncodeExport. It validates minimally that the user
// and transactions fields are present; anything else malformed surfaces as
// ErrInvalidFormat.
func DecodeExport(artifact string) (ExportPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(artifact))
	if err != nil {
		return ExportPayload{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var probe struct {
		User         *json.RawMessage `json:"user"`
		Transactions *json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ExportPayload{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if probe.User == nil || probe.Transactions == nil {
		return ExportPayload{}, fmt.Errorf("%w: missing user or transactions", ErrInvalidFormat)
	}

	var p ExportPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return ExportPayload{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if p.Transactions == nil {
		p.Transactions = TransactionsByMonth{}
	}
	return p, nil
}

// ExportFilename builds the deterministic artifact name for a user.
func ExportFilename(user string, now time.Time) string {
	return fmt.Sprintf("money-tracker-%s-%s.txt", user, now.Format("2006-01-02"))
}
