package cleansing

// Result is the cleaned JSON object produced for one raw field. Shapes vary
// per converter family; every shape carries "period" when the field came from
// a phased listing.
type Result map[string]any

// Converter turns one raw field value into its cleaned JSON object. rawKey is
// the original label (some converters branch on it) and period is the sales
// phase number when the label carried one.
type Converter func(value string, rawKey string, period *int) Result

// withPeriod attaches the phase number to a finished result. Converters call
// it exactly once on every return path.
func withPeriod(r Result, period *int) Result {
	if period != nil {
		r["period"] = *period
	}
	return r
}

// nullValue is the shared empty shape for scalar-style converters.
func nullValue(period *int) Result {
	return withPeriod(Result{"value": nil}, period)
}

// Converters maps converter names, as the label router emits them, to their
// implementations. Built once at startup and never mutated.
var Converters = map[string]Converter{
	"price":                  CleansePrice,
	"price_band":             CleansePriceBand,
	"area":                   CleanseArea,
	"multiple_area":          CleanseMultipleArea,
	"layout":                 CleanseLayout,
	"date":                   CleanseDate,
	"delivery_date":          CleanseDeliveryDate,
	"expiry_date":            CleanseExpiryDate,
	"management_fee":         CleanseManagementFee,
	"other_expenses":         CleanseOtherExpenses,
	"utility_cost":           CleanseUtilityCost,
	"number":                 CleanseNumber,
	"units":                  CleanseUnits,
	"boolean":                CleanseBoolean,
	"text":                   CleanseText,
	"force_null":             CleanseForceNull,
	"access":                 CleanseAccess,
	"zoning":                 CleanseZoning,
	"restrictions":           CleanseRestrictions,
	"company_info":           CleanseCompanyInfo,
	"address":                CleanseAddress,
	"floor_structure":        CleanseFloorStructure,
	"building_structure":     CleanseBuildingStructure,
	"parking":                CleanseParking,
	"surrounding_facilities": CleanseSurroundingFacilities,
	"land_use":               CleanseLandUse,
	"floor_plan":             CleanseFloorPlan,
	"building_coverage":      CleanseBuildingCoverage,
	"feature_pickup":         CleanseFeaturePickup,
	"reform":                 CleanseReform,
	"rating":                 CleanseRating,
}
