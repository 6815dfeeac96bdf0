package usecase

// Certified category codes used by the EGAT label-5 dataset.
const (
	CategoryRefrigerator = "ref"
	CategoryAirCon       = "air"
	CategoryWasher       = "washer"
	CategoryFan          = "fan"
	CategoryTV           = "tv"
	CategoryWaterHeater  = "water_heater"
	CategoryRiceCooker   = "rice_cooker"
)

// CategoryTable is the single immutable lookup for category codes: display
// names for the certified code space and the many-to-one mapping from
// marketplace category codes into it. Construct it once and share it; it is
// never mutated after creation.
type CategoryTable struct {
	displayNames map[string]string
	marketplace  map[string]string
}

// NewCategoryTable returns the default category table covering the label-5
// appliance categories and the Shopee category IDs that feed into them.
func NewCategoryTable() *CategoryTable {
	return &CategoryTable{
		displayNames: map[string]string{
			CategoryRefrigerator: "ตู้เย็น (Refrigerator)",
			CategoryAirCon:       "เครื่องปรับอากาศ (Air Conditioner)",
			CategoryWasher:       "เครื่องซักผ้า (Washing Machine)",
			CategoryFan:          "พัดลม (Electric Fan)",
			CategoryTV:           "โทรทัศน์ (Television)",
			CategoryWaterHeater:  "เครื่องทำน้ำอุ่น (Water Heater)",
			CategoryRiceCooker:   "หม้อหุงข้าว (Rice Cooker)",
		},
		// Shopee TH category IDs; several marketplace categories fold into
		// one certified code.
		marketplace: map[string]string{
			"11036023": CategoryRefrigerator,
			"11036024": CategoryRefrigerator, // freezers listed under refrigeration
			"11036031": CategoryAirCon,
			"11036032": CategoryAirCon, // portable units
			"11036033": CategoryWasher,
			"11036034": CategoryWasher, // washer-dryers
			"11036867": CategoryFan,
			"11036832": CategoryTV,
			"11036818": CategoryWaterHeater,
			"11036792": CategoryRiceCooker,
		},
	}
}

// MapMarketplace maps a marketplace category code into the certified code
// space. Unknown codes map to "" and never match.
func (t *CategoryTable) MapMarketplace(code string) string {
	return t.marketplace[code]
}

// DisplayName returns the human-readable name for a certified category code,
// or "" if the code is unknown.
func (t *CategoryTable) DisplayName(code string) string {
	return t.displayNames[code]
}

// IsCertifiedCategory reports whether code belongs to the certified code set.
func (t *CategoryTable) IsCertifiedCategory(code string) bool {
	_, ok := t.displayNames[code]
	return ok
}
