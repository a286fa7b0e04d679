// Package resolver derives the fixed output attribute schema from raw
// catalog records and validates derived records against the feed rules.
package resolver

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/samber/lo"
)

// Resolver resolves output attributes from raw catalog payloads,
// tenant-level defaults and per-item manual overrides.
type Resolver struct {
	categories map[int64]string
}

// NewResolver returns new Resolver using provided category ID to name map.
func NewResolver(categories map[int64]string) *Resolver {
	return &Resolver{
		categories: categories,
	}
}

// ParsePayload parses stored raw payload JSON.
func ParsePayload(raw string) (map[string]any, error) {
	payload := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("can't parse raw payload: %w", err)
	}
	return payload, nil
}

// Resolve derives all output attributes for one item.
// Resolution order per attribute: manual override, raw payload, tenant default, null.
func (r *Resolver) Resolve(
	payload map[string]any,
	externalID string,
	shop *models.Shop,
	overrides map[string]string,
) map[string]*string {
	attrs := make(map[string]*string, len(Attributes))
	for _, name := range Attributes {
		attrs[name] = r.resolveAttribute(name, payload, externalID, shop, overrides)
	}
	return attrs
}

// ResolveFields recomputes only the named attributes, leaving every other
// derived attribute exactly as stored. Used by selective reprocessing.
func (r *Resolver) ResolveFields(
	payload map[string]any,
	externalID string,
	shop *models.Shop,
	overrides map[string]string,
	existing map[string]*string,
	fields []string,
) map[string]*string {
	attrs := make(map[string]*string, len(Attributes))
	for name, value := range existing {
		attrs[name] = value
	}

	for _, name := range fields {
		if !lo.Contains(Attributes, name) {
			continue
		}
		attrs[name] = r.resolveAttribute(name, payload, externalID, shop, overrides)
	}

	return attrs
}

func (r *Resolver) resolveAttribute(
	name string,
	payload map[string]any,
	externalID string,
	shop *models.Shop,
	overrides map[string]string,
) *string {
	if value, ok := overrides[name]; ok && value != "" {
		return lo.ToPtr(value)
	}

	switch name {
	case AttrID:
		if externalID == "" {
			return nil
		}
		return lo.ToPtr(externalID)
	case AttrTitle:
		return stringField(payload, "title", "name")
	case AttrDescription:
		return stringField(payload, "description")
	case AttrLink:
		return stringField(payload, "url", "permalink")
	case AttrImageLink:
		if link := stringField(payload, "image_url"); link != nil {
			return link
		}
		images := imageList(payload)
		if len(images) == 0 {
			return nil
		}
		return lo.ToPtr(images[0])
	case AttrAdditionalImageLink:
		images := imageList(payload)
		if len(images) < 2 {
			return nil
		}
		return lo.ToPtr(strings.Join(images[1:], ","))
	case AttrPrice:
		return priceField(payload, "price", shop.Currency)
	case AttrSalePrice:
		return priceField(payload, "sale_price", shop.Currency)
	case AttrAvailability:
		return availabilityField(payload)
	case AttrCondition:
		return stringField(payload, "condition")
	case AttrBrand:
		return stringField(payload, "brand")
	case AttrGTIN:
		return stringField(payload, "gtin", "barcode")
	case AttrMPN:
		return stringField(payload, "mpn", "sku")
	case AttrCategory:
		return r.categoryField(payload)
	case AttrItemGroupID:
		return stringField(payload, "parent_id")
	case AttrAdult:
		return lo.ToPtr(boolString(payload, "adult"))
	case AttrIsBundle:
		return lo.ToPtr(boolString(payload, "is_bundle"))
	default:
		return nil
	}
}

func (r *Resolver) categoryField(payload map[string]any) *string {
	switch id := payload["category_id"].(type) {
	case float64:
		if name, ok := r.categories[int64(id)]; ok {
			return lo.ToPtr(name)
		}
	case string:
		parsed, err := strconv.ParseInt(id, 10, 64)
		if err == nil {
			if name, ok := r.categories[parsed]; ok {
				return lo.ToPtr(name)
			}
		}
	}

	return stringField(payload, "category")
}

// stringField returns first non-empty string value of keys in payload.
func stringField(payload map[string]any, keys ...string) *string {
	for _, key := range keys {
		switch value := payload[key].(type) {
		case string:
			if value != "" {
				return lo.ToPtr(value)
			}
		case float64:
			return lo.ToPtr(strconv.FormatInt(int64(value), 10))
		}
	}
	return nil
}

// priceField formats a price value as "12.50 EUR" using the payload currency
// with the shop currency as fallback.
func priceField(payload map[string]any, key string, shopCurrency string) *string {
	currency := shopCurrency
	if value, ok := payload["currency"].(string); ok && value != "" {
		currency = value
	}

	switch value := payload[key].(type) {
	case float64:
		return lo.ToPtr(fmt.Sprintf("%.2f %s", value, currency))
	case string:
		if value == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil
		}
		return lo.ToPtr(fmt.Sprintf("%.2f %s", parsed, currency))
	default:
		return nil
	}
}

func availabilityField(payload map[string]any) *string {
	inStock, ok := payload["in_stock"].(bool)
	if !ok {
		return stringField(payload, "availability")
	}
	if inStock {
		return lo.ToPtr("in stock")
	}
	return lo.ToPtr("out of stock")
}

// boolString serializes boolean payload values as the literal strings
// "true"/"false", matching the target feed format.
func boolString(payload map[string]any, key string) string {
	if value, ok := payload[key].(bool); ok && value {
		return "true"
	}
	return "false"
}

func imageList(payload map[string]any) []string {
	raw, ok := payload["images"].([]any)
	if !ok {
		return nil
	}

	images := make([]string, 0, len(raw))
	for _, entry := range raw {
		if url, ok := entry.(string); ok && url != "" {
			images = append(images, url)
		}
	}
	return images
}
