package wire

import (
	"encoding/json"

	"bistro/internal/domain/entity"
	"bistro/internal/errors"
)

// MenuItemCodec is the per-kind descriptor that lets one generic gateway or
// handler speak all three menu-item dialects: the base path plus the
// encode/decode pair for that kind's wire shape.
type MenuItemCodec struct {
	Kind     entity.Kind
	BasePath string

	// FromEntity produces the wire value to marshal outbound.
	FromEntity func(entity.MenuItem) any

	// DecodeOne parses a single-object body.
	DecodeOne func(data []byte) (*entity.MenuItem, error)

	// DecodeList parses a collection body.
	DecodeList func(data []byte) ([]entity.MenuItem, error)
}

func decodeOne[W interface{ Entity() entity.MenuItem }](data []byte) (*entity.MenuItem, error) {
	var w W
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.WithStack(err)
	}
	item := w.Entity()

	return &item, nil
}

func decodeList[W interface{ Entity() entity.MenuItem }](data []byte) ([]entity.MenuItem, error) {
	var ws []W
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, errors.WithStack(err)
	}
	items := make([]entity.MenuItem, 0, len(ws))
	for _, w := range ws {
		items = append(items, w.Entity())
	}

	return items, nil
}

// AppetizerCodec binds the appetizer kind to its wire dialect.
var AppetizerCodec = MenuItemCodec{
	Kind:       entity.KindAppetizer,
	BasePath:   "/api/appetizers",
	FromEntity: func(m entity.MenuItem) any { return AppetizerFromEntity(m) },
	DecodeOne:  decodeOne[Appetizer],
	DecodeList: decodeList[Appetizer],
}

// DrinkCodec binds the drink kind to its wire dialect.
var DrinkCodec = MenuItemCodec{
	Kind:       entity.KindDrink,
	BasePath:   "/api/drinks",
	FromEntity: func(m entity.MenuItem) any { return DrinkFromEntity(m) },
	DecodeOne:  decodeOne[Drink],
	DecodeList: decodeList[Drink],
}

// MainCourseCodec binds the main-course kind to its wire dialect.
var MainCourseCodec = MenuItemCodec{
	Kind:       entity.KindMainCourse,
	BasePath:   "/api/maincourses",
	FromEntity: func(m entity.MenuItem) any { return MainCourseFromEntity(m) },
	DecodeOne:  decodeOne[MainCourse],
	DecodeList: decodeList[MainCourse],
}

// CodecFor returns the codec for a kind.
func CodecFor(kind entity.Kind) MenuItemCodec {
	switch kind {
	case entity.KindDrink:
		return DrinkCodec
	case entity.KindMainCourse:
		return MainCourseCodec
	default:
		return AppetizerCodec
	}
}
