package friend

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags lưu danh sách nhãn dưới dạng JSON trong một cột TEXT
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return string(b), nil
}

func (t *Tags) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case string:
		if v == "" {
			*t = Tags{}
			return nil
		}
		return json.Unmarshal([]byte(v), t)
	case []byte:
		if len(v) == 0 {
			*t = Tags{}
			return nil
		}
		return json.Unmarshal(v, t)
	default:
		return fmt.Errorf("unsupported tags type %T", src)
	}
}

// Friend đại diện cho một liên kết bạn bè trên trang chủ
type Friend struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Desc   string `db:"desc"`
	URL    string `db:"url"`
	Avatar string `db:"avatar"`
	Tags   Tags   `db:"tags"`
}
