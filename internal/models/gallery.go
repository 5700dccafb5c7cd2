package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// GalleryImages is an ordered list of image references stored as a JSON
// text column.
type GalleryImages []string

func (g GalleryImages) Value() (driver.Value, error) {
	if g == nil {
		g = GalleryImages{}
	}
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (g *GalleryImages) Scan(value any) error {
	if value == nil {
		*g = GalleryImages{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	default:
		return fmt.Errorf("unsupported gallery column type %T", value)
	}
}
