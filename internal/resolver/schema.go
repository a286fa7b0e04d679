package resolver

// Output feed attribute names. Every generated record carries all of them,
// with explicit nulls for unresolved values, so downstream consumers always
// see the same shape.
const (
	AttrID                  = "id"
	AttrTitle               = "title"
	AttrDescription         = "description"
	AttrLink                = "link"
	AttrImageLink           = "image_link"
	AttrAdditionalImageLink = "additional_image_link"
	AttrPrice               = "price"
	AttrSalePrice           = "sale_price"
	AttrAvailability        = "availability"
	AttrCondition           = "condition"
	AttrBrand               = "brand"
	AttrGTIN                = "gtin"
	AttrMPN                 = "mpn"
	AttrCategory            = "google_product_category"
	AttrItemGroupID         = "item_group_id"
	AttrAdult               = "adult"
	AttrIsBundle            = "is_bundle"
)

// Attributes is the fixed output schema in serialization order.
var Attributes = []string{
	AttrID,
	AttrTitle,
	AttrDescription,
	AttrLink,
	AttrImageLink,
	AttrAdditionalImageLink,
	AttrPrice,
	AttrSalePrice,
	AttrAvailability,
	AttrCondition,
	AttrBrand,
	AttrGTIN,
	AttrMPN,
	AttrCategory,
	AttrItemGroupID,
	AttrAdult,
	AttrIsBundle,
}
