package model

import "time"

type ConsentKind string

const (
	ConsentPrivacyPolicy  ConsentKind = "privacy_policy"
	ConsentImageRights    ConsentKind = "image_rights"
	ConsentDataProcessing ConsentKind = "data_processing"
)

// ConsentKinds : все три обязательных согласия
var ConsentKinds = []ConsentKind{ConsentPrivacyPolicy, ConsentImageRights, ConsentDataProcessing}

func (k ConsentKind) Valid() bool {
	switch k {
	case ConsentPrivacyPolicy, ConsentImageRights, ConsentDataProcessing:
		return true
	}
	return false
}

type ConsentState string

const (
	ConsentNone    ConsentState = "NONE"
	ConsentPartial ConsentState = "PARTIAL"
	ConsentGranted ConsentState = "GRANTED"
)

// ConsentRecord : запись журнала согласий
type ConsentRecord struct {
	ID         string      `db:"id" json:"id"`
	EventID    string      `db:"event_id" json:"event_id"`
	SessionID  string      `db:"session_id" json:"session_id"`
	Kind       ConsentKind `db:"kind" json:"kind"`
	Version    string      `db:"version" json:"version"`
	Granted    bool        `db:"granted" json:"granted"`
	GuestEmail string      `db:"guest_email" json:"guest_email,omitempty"`
	IPHash     string      `db:"ip_hash" json:"-"`
	UserAgent  string      `db:"user_agent" json:"-"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
}
