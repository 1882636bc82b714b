package schema

var (
	strOrNull = types(String, Null)
	numOrNull = types(Float, Int, Null)
	intOrNull = types(Int, Null)
	boolOnly  = types(Bool)
	listOnly  = types(List)
	dictOnly  = types(Object)
)

// registry maps canonical field names to their declared output shapes.
// Built once at package load and never mutated afterwards.
var registry = map[string]*Schema{
	"住所": {
		BaseType: "structured_address",
		Required: []string{"raw"},
		Optional: []string{"prefecture", "secondary_division", "secondary_type", "tertiary_division", "tertiary_type", "remaining", "hierarchy", "division_types", "parse_failed"},
		FieldTypes: map[string]TypeSet{
			"raw":                types(String),
			"prefecture":         strOrNull,
			"secondary_division": strOrNull,
			"secondary_type":     strOrNull,
			"tertiary_division":  strOrNull,
			"tertiary_type":      strOrNull,
			"remaining":          strOrNull,
			"hierarchy":          strOrNull,
			"division_types":     strOrNull,
			"parse_failed":       boolOnly,
		},
	},
	"交通": {
		BaseType: "access_routes",
		Optional: []string{"routes", "value"},
		FieldTypes: map[string]TypeSet{
			"routes": listOnly,
			"value":  strOrNull,
		},
	},
	"戸数": {
		BaseType: "single",
		Optional: []string{"value", "unit", "note", "is_total", "is_current_sale"},
		FieldTypes: map[string]TypeSet{
			"value":           intOrNull,
			"unit":            strOrNull,
			"note":            strOrNull,
			"is_total":        boolOnly,
			"is_current_sale": boolOnly,
		},
	},
	"用途地域": {
		BaseType: "array",
		Optional: []string{"values"},
		FieldTypes: map[string]TypeSet{
			"values": listOnly,
		},
	},
	"築年月": {
		BaseType: "date_or_period",
		Optional: []string{"value", "year", "month", "day", "is_scheduled", "note", "period_text", "estimated_date", "tentative", "completed", "immediate", "is_undefined"},
		FieldTypes: map[string]TypeSet{
			"value":          strOrNull,
			"year":           intOrNull,
			"month":          intOrNull,
			"day":            intOrNull,
			"is_scheduled":   boolOnly,
			"note":           strOrNull,
			"period_text":    strOrNull,
			"estimated_date": strOrNull,
			"tentative":      boolOnly,
			"completed":      boolOnly,
			"immediate":      boolOnly,
			"is_undefined":   boolOnly,
		},
	},
	"引渡時期": {
		BaseType: "single",
		Optional: []string{"value", "type", "year", "month", "day", "is_planned", "estimated_date", "period_text", "months", "note"},
		FieldTypes: map[string]TypeSet{
			"value":          strOrNull,
			"type":           strOrNull,
			"year":           intOrNull,
			"month":          intOrNull,
			"day":            intOrNull,
			"is_planned":     boolOnly,
			"estimated_date": strOrNull,
			"period_text":    strOrNull,
			"months":         numOrNull,
			"note":           strOrNull,
		},
	},
	"価格": {
		BaseType: "range_or_single",
		Optional: []string{"value", "min", "max", "unit", "is_undefined", "type", "note", "tentative"},
		FieldTypes: map[string]TypeSet{
			"value":        numOrNull,
			"min":          numOrNull,
			"max":          numOrNull,
			"unit":         strOrNull,
			"is_undefined": boolOnly,
			"type":         strOrNull,
			"note":         strOrNull,
			"tentative":    boolOnly,
		},
	},
	"価格帯": {
		BaseType: "range_or_single",
		Optional: []string{"value", "min", "max", "unit", "is_undefined", "type", "note", "tentative", "values"},
		FieldTypes: map[string]TypeSet{
			"value":        numOrNull,
			"min":          numOrNull,
			"max":          numOrNull,
			"unit":         strOrNull,
			"is_undefined": boolOnly,
			"type":         strOrNull,
			"note":         strOrNull,
			"tentative":    boolOnly,
			"values":       listOnly,
		},
	},
	"管理費": {
		BaseType: "range_or_single",
		Optional: []string{"value", "min", "max", "unit", "is_undefined", "type", "note", "tentative", "management_type", "work_style", "frequency", "breakdown"},
		FieldTypes: map[string]TypeSet{
			"value":           numOrNull,
			"min":             numOrNull,
			"max":             numOrNull,
			"unit":            strOrNull,
			"is_undefined":    boolOnly,
			"type":            strOrNull,
			"note":            strOrNull,
			"tentative":       boolOnly,
			"management_type": strOrNull,
			"work_style":      strOrNull,
			"frequency":       strOrNull,
			"breakdown":       strOrNull,
		},
	},
	"他経費": {
		BaseType: "array",
		Optional: []string{"value", "expenses"},
		FieldTypes: map[string]TypeSet{
			"value":    strOrNull,
			"expenses": listOnly,
		},
	},
	"間取り": {
		BaseType: "structured_layout",
		Optional: []string{"types", "rooms", "main_rooms", "other_rooms", "type_summary", "value", "values"},
		FieldTypes: map[string]TypeSet{
			"types":        listOnly,
			"rooms":        intOrNull,
			"main_rooms":   intOrNull,
			"other_rooms":  listOnly,
			"type_summary": strOrNull,
			"value":        strOrNull,
			"values":       listOnly,
		},
	},
	"専有面積": {
		BaseType: "range_or_single",
		Optional: []string{"value", "min", "max", "unit", "min_tsubo", "max_tsubo", "tsubo", "measurement_type"},
		FieldTypes: map[string]TypeSet{
			"value":            numOrNull,
			"min":              numOrNull,
			"max":              numOrNull,
			"unit":             strOrNull,
			"min_tsubo":        numOrNull,
			"max_tsubo":        numOrNull,
			"tsubo":            numOrNull,
			"measurement_type": strOrNull,
		},
	},
	"その他面積": {
		BaseType: "array",
		Optional: []string{"areas"},
		FieldTypes: map[string]TypeSet{
			"areas": listOnly,
		},
	},
	"制限事項": {
		BaseType: "array",
		Optional: []string{"restrictions"},
		FieldTypes: map[string]TypeSet{
			"restrictions": listOnly,
		},
	},
	"取引条件有効期限": {
		BaseType: "single",
		Optional: []string{"value", "date"},
		FieldTypes: map[string]TypeSet{
			"value": strOrNull,
			"date":  strOrNull,
		},
	},
	"施工会社": {
		BaseType: "structured_text",
		Optional: []string{"value"},
		FieldTypes: map[string]TypeSet{
			"value": strOrNull,
		},
	},
	"管理会社": {
		BaseType: "structured_text",
		Optional: []string{"value"},
		FieldTypes: map[string]TypeSet{
			"value": strOrNull,
		},
	},
	"会社情報": {
		BaseType: "structured_companies",
		Optional: []string{"companies", "value"},
		FieldTypes: map[string]TypeSet{
			"companies": listOnly,
			"value":     strOrNull,
		},
	},
	"所在階": {
		BaseType: "number_with_unit",
		Optional: []string{"value", "unit", "note"},
		FieldTypes: map[string]TypeSet{
			"value": numOrNull,
			"unit":  strOrNull,
			"note":  strOrNull,
		},
	},
	"向き": {
		BaseType: "structured_text",
		Optional: []string{"value"},
		FieldTypes: map[string]TypeSet{
			"value": strOrNull,
		},
	},
	"特徴": {
		BaseType: "structured_features",
		Optional: []string{"feature_tags", "feature_count", "structured_features", "raw_features"},
		FieldTypes: map[string]TypeSet{
			"feature_tags":        listOnly,
			"feature_count":       types(Int),
			"structured_features": dictOnly,
			"raw_features":        listOnly,
		},
	},
	"目安光熱費": {
		BaseType: "range_or_single",
		Optional: []string{"value", "min", "max", "unit", "frequency", "approximate", "is_undefined", "parse_failed"},
		FieldTypes: map[string]TypeSet{
			"value":        types(Float, Int, String, Null),
			"min":          numOrNull,
			"max":          numOrNull,
			"unit":         strOrNull,
			"frequency":    strOrNull,
			"approximate":  boolOnly,
			"is_undefined": boolOnly,
			"parse_failed": boolOnly,
		},
	},
	"構造階建": {
		BaseType: "single",
		Optional: []string{"structure", "floors", "basement", "value", "total_floors", "basement_floors", "floor", "partial_structure", "note", "raw_value"},
		FieldTypes: map[string]TypeSet{
			"structure":         strOrNull,
			"floors":            intOrNull,
			"basement":          intOrNull,
			"value":             strOrNull,
			"total_floors":      intOrNull,
			"basement_floors":   intOrNull,
			"floor":             intOrNull,
			"partial_structure": strOrNull,
			"note":              strOrNull,
			"raw_value":         strOrNull,
		},
	},
	"リフォーム": {
		BaseType: "single",
		Optional: []string{"value", "details", "cost", "has_reform", "reform_info", "completion_date", "is_scheduled", "reform_areas", "note", "raw_value"},
		FieldTypes: map[string]TypeSet{
			"value":           strOrNull,
			"details":         listOnly,
			"cost":            numOrNull,
			"has_reform":      boolOnly,
			"reform_info":     dictOnly,
			"completion_date": strOrNull,
			"is_scheduled":    boolOnly,
			"reform_areas":    dictOnly,
			"note":            strOrNull,
			"raw_value":       strOrNull,
		},
	},
	"周辺施設": {
		BaseType: "structured_features",
		Optional: []string{"facilities"},
		FieldTypes: map[string]TypeSet{
			"facilities": listOnly,
		},
	},
	"駐車場": {
		BaseType: "parking_info",
		Optional: []string{"availability", "available", "count", "min", "max", "unit", "notes", "value", "location", "frequency", "note"},
		FieldTypes: map[string]TypeSet{
			"availability": boolOnly,
			"available":    boolOnly,
			"count":        intOrNull,
			"min":          numOrNull,
			"max":          numOrNull,
			"unit":         strOrNull,
			"notes":        strOrNull,
			"value":        types(String, Int, Float, Null),
			"location":     strOrNull,
			"frequency":    strOrNull,
			"note":         strOrNull,
		},
	},
	"地目": {
		BaseType: "structured_text",
		Optional: []string{"value", "values", "note"},
		FieldTypes: map[string]TypeSet{
			"value":  strOrNull,
			"values": listOnly,
			"note":   strOrNull,
		},
	},
	"間取り図": {
		BaseType: "structured_text",
		Optional: []string{"value", "building_number", "price", "layout", "land_area", "building_area", "raw_value"},
		FieldTypes: map[string]TypeSet{
			"value":           strOrNull,
			"building_number": strOrNull,
			"price":           dictOnly,
			"layout":          strOrNull,
			"land_area":       dictOnly,
			"building_area":   dictOnly,
			"raw_value":       strOrNull,
		},
	},
	"建ぺい率容積率": {
		BaseType: "structured_text",
		Optional: []string{"building_coverage_ratio", "floor_area_ratio", "value", "building_coverage", "unit", "raw_value"},
		FieldTypes: map[string]TypeSet{
			"building_coverage_ratio": numOrNull,
			"floor_area_ratio":        numOrNull,
			"value":                   strOrNull,
			"building_coverage":       numOrNull,
			"unit":                    strOrNull,
			"raw_value":               strOrNull,
		},
	},
}
