package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"manzil/shared/model"
)

const (
	TableName  = "activities"
	EntityName = "activity"

	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldAction   = "action"
	FieldEntity   = "entity"
	FieldEntityID = "entity_id"
)

// Detail is a free-form payload stored as jsonb.
type Detail map[string]any

func (d Detail) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}

	value, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal activity detail: %w", err)
	}

	return value, nil
}

func (d *Detail) Scan(src any) error {
	if src == nil {
		*d = nil

		return nil
	}

	var data []byte

	switch value := src.(type) {
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("unsupported type for activity detail: %T", src)
	}

	if err := json.Unmarshal(data, d); err != nil {
		return fmt.Errorf("failed to unmarshal activity detail: %w", err)
	}

	return nil
}

type Activity struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Action    string `db:"action"`
	Entity    string `db:"entity"`
	EntityID  string `db:"entity_id"`
	Detail    Detail `db:"detail"`
	IP        string `db:"ip"`
	UserAgent string `db:"user_agent"`
	model.Metadata
}
