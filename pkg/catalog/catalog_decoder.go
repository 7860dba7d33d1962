package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"Hom-Nay-An-Gi/domain"
	"Hom-Nay-An-Gi/entities"
)

// DecodeCatalog parses a catalog document. It accepts either a bare list of
// dishes or an object holding that list under "dataset". Empty input is an
// empty catalog.
func DecodeCatalog(raw []byte) ([]entities.Dish, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []entities.Dish{}, nil
	}

	switch raw[0] {
	case '[':
		var dishes []entities.Dish
		if err := json.Unmarshal(raw, &dishes); err != nil {
			return nil, fmt.Errorf("decode catalog list: %w", err)
		}
		return dishes, nil
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, fmt.Errorf("decode catalog object: %w", err)
		}
		list, ok := wrapper[domain.CatalogDatasetKey]
		if !ok || !isJSONList(list) {
			return nil, domain.ErrCatalogFormat
		}
		var dishes []entities.Dish
		if err := json.Unmarshal(list, &dishes); err != nil {
			return nil, fmt.Errorf("decode catalog dataset: %w", err)
		}
		return dishes, nil
	default:
		if !json.Valid(raw) {
			return nil, fmt.Errorf("decode catalog: invalid JSON")
		}
		return nil, domain.ErrCatalogFormat
	}
}

// EncodeCatalog renders dishes in the wrapped form with 4-space indentation.
func EncodeCatalog(dishes []entities.Dish) ([]byte, error) {
	if dishes == nil {
		dishes = []entities.Dish{}
	}
	return json.MarshalIndent(map[string][]entities.Dish{
		domain.CatalogDatasetKey: dishes,
	}, "", "    ")
}

func isJSONList(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
