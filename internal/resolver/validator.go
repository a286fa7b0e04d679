package resolver

import (
	"fmt"

	"github.com/samber/lo"
)

var requiredAttributes = []string{
	AttrID,
	AttrTitle,
	AttrLink,
	AttrImageLink,
	AttrPrice,
	AttrAvailability,
}

var allowedConditions = []string{"new", "refurbished", "used"}

// Validate checks derived attributes against required and conditional feed
// rules. Returns pass/fail and the list of diagnostics.
func Validate(attrs map[string]*string) (bool, []string) {
	diagnostics := []string{}

	for _, name := range requiredAttributes {
		if isEmpty(attrs[name]) {
			diagnostics = append(diagnostics, fmt.Sprintf("missing required attribute %q", name))
		}
	}

	if condition := attrs[AttrCondition]; !isEmpty(condition) && !lo.Contains(allowedConditions, *condition) {
		diagnostics = append(diagnostics, fmt.Sprintf("attribute %q must be one of new, refurbished, used", AttrCondition))
	}

	if !isEmpty(attrs[AttrSalePrice]) && isEmpty(attrs[AttrPrice]) {
		diagnostics = append(diagnostics, fmt.Sprintf("attribute %q requires %q to be set", AttrSalePrice, AttrPrice))
	}

	if !isEmpty(attrs[AttrBrand]) && isEmpty(attrs[AttrGTIN]) && isEmpty(attrs[AttrMPN]) {
		diagnostics = append(diagnostics, fmt.Sprintf("attribute %q or %q is required when %q is set", AttrGTIN, AttrMPN, AttrBrand))
	}

	return len(diagnostics) == 0, diagnostics
}

func isEmpty(value *string) bool {
	return value == nil || *value == ""
}
