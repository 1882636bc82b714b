package cleansing

import (
	"regexp"
	"strings"
)

// featureTaxonomy accumulates the structured view of a 特徴ピックアップ
// field while the tag list is being built.
type featureTaxonomy struct {
	certifications   Result
	buildingSpecs    Result
	kitchen          []any
	bathroom         []any
	heatingCooling   []any
	utilities        []any
	security         []any
	locationAccess   Result
	landFeatures     Result
	parkingTransport Result
	roomFeatures     Result
	maintenance      Result
}

// featureRules maps promotional feature phrases to canonical tags and their
// slot in the taxonomy, tried in order with first match winning.
var featureRules = []struct {
	markers []string
	tag     string
	apply   func(t *featureTaxonomy)
}{
	{[]string{"設計住宅性能評価書"}, "design_performance_cert", func(t *featureTaxonomy) { t.certifications["design_performance_evaluation"] = true }},
	{[]string{"建設住宅性能評価書"}, "construction_performance_cert", func(t *featureTaxonomy) { t.certifications["construction_performance_evaluation"] = true }},
	{[]string{"長期優良住宅認定通知書"}, "long_term_excellent", func(t *featureTaxonomy) { t.certifications["long_term_excellent_housing"] = true }},
	{[]string{"フラット３５", "フラット35"}, "flat35_s", func(t *featureTaxonomy) { t.certifications["flat35_s"] = true }},
	{[]string{"BELS", "bels", "省エネ基準適合認定書"}, "bels", func(t *featureTaxonomy) { t.certifications["bels"] = true }},
	{[]string{"瑕疵保証"}, "defect_warranty", func(t *featureTaxonomy) { t.certifications["defect_warranty"] = true }},

	{[]string{"２階建", "2階建"}, "2_story", func(t *featureTaxonomy) { t.buildingSpecs["stories"] = 2 }},
	{[]string{"３階建以上", "3階建以上"}, "3_story_plus", func(t *featureTaxonomy) { t.buildingSpecs["stories"] = 3 }},
	{[]string{"南向き"}, "south_facing", func(t *featureTaxonomy) { t.buildingSpecs["orientation"] = "south" }},
	{[]string{"東南向き"}, "southeast_facing", func(t *featureTaxonomy) { t.buildingSpecs["orientation"] = "southeast" }},
	{[]string{"全室南向き"}, "all_rooms_south", func(t *featureTaxonomy) { t.buildingSpecs["all_rooms_south"] = true }},
	{[]string{"陽当り良好"}, "good_sunlight", func(t *featureTaxonomy) { t.buildingSpecs["good_sunlight"] = true }},

	{[]string{"ＬＤＫ１５畳以上", "LDK15畳以上"}, "ldk_15tatami_plus", func(t *featureTaxonomy) { t.buildingSpecs["ldk_size_tatami"] = Result{"min": 15} }},
	{[]string{"ＬＤＫ１８畳以上", "LDK18畳以上"}, "ldk_18tatami_plus", func(t *featureTaxonomy) { t.buildingSpecs["ldk_size_tatami"] = Result{"min": 18} }},
	{[]string{"ＬＤＫ２０畳以上", "LDK20畳以上"}, "ldk_20tatami_plus", func(t *featureTaxonomy) { t.buildingSpecs["ldk_size_tatami"] = Result{"min": 20} }},

	{[]string{"システムキッチン"}, "system_kitchen", func(t *featureTaxonomy) { t.kitchen = append(t.kitchen, "system") }},
	{[]string{"対面式キッチン"}, "counter_kitchen", func(t *featureTaxonomy) { t.kitchen = append(t.kitchen, "counter_facing") }},
	{[]string{"ＩＨクッキングヒーター", "IHクッキングヒーター"}, "ih_cooktop", func(t *featureTaxonomy) { t.kitchen = append(t.kitchen, "ih_cooktop") }},
	{[]string{"食器洗乾燥機"}, "dishwasher", func(t *featureTaxonomy) { t.kitchen = append(t.kitchen, "dishwasher") }},
	{[]string{"浄水器"}, "water_purifier", func(t *featureTaxonomy) { t.kitchen = append(t.kitchen, "water_purifier") }},

	{[]string{"浴室乾燥機"}, "bathroom_dryer", func(t *featureTaxonomy) { t.bathroom = append(t.bathroom, "dryer") }},
	{[]string{"浴室１坪以上", "浴室1坪以上"}, "bathroom_1tsubo_plus", func(t *featureTaxonomy) { t.buildingSpecs["bathroom_size_tsubo"] = Result{"min": 1} }},
	{[]string{"浴室に窓"}, "bathroom_window", func(t *featureTaxonomy) { t.bathroom = append(t.bathroom, "window") }},
	{[]string{"オートバス"}, "auto_bath", func(t *featureTaxonomy) { t.bathroom = append(t.bathroom, "auto_bath") }},

	{[]string{"床暖房"}, "floor_heating", func(t *featureTaxonomy) { t.heatingCooling = append(t.heatingCooling, "floor_heating") }},
	{[]string{"省エネルギー対策"}, "energy_saving", func(t *featureTaxonomy) { t.heatingCooling = append(t.heatingCooling, "energy_saving") }},
	{[]string{"省エネ給湯器"}, "energy_saving_heater", func(t *featureTaxonomy) { t.heatingCooling = append(t.heatingCooling, "energy_saving_water_heater") }},

	{[]string{"オール電化"}, "all_electric", func(t *featureTaxonomy) { t.utilities = append(t.utilities, "all_electric") }},
	{[]string{"都市ガス"}, "city_gas", func(t *featureTaxonomy) { t.utilities = append(t.utilities, "city_gas") }},
	{[]string{"エレベーター"}, "elevator", func(t *featureTaxonomy) { t.utilities = append(t.utilities, "elevator") }},
	{[]string{"複層ガラス"}, "double_glazing", func(t *featureTaxonomy) { t.utilities = append(t.utilities, "double_glazing") }},

	{[]string{"セキュリティ充実"}, "security_enhanced", func(t *featureTaxonomy) { t.security = append(t.security, "enhanced") }},
	{[]string{"ＴＶモニタ付インターホン", "TVモニタ付インターホン"}, "tv_intercom", func(t *featureTaxonomy) { t.security = append(t.security, "tv_intercom") }},
	{[]string{"スマートキー"}, "smart_key", func(t *featureTaxonomy) { t.security = append(t.security, "smart_key") }},

	{[]string{"スーパー 徒歩10分以内", "スーパー徒歩10分以内"}, "supermarket_walk_10min", func(t *featureTaxonomy) { t.locationAccess["supermarket_walk_min"] = Result{"max": 10} }},
	{[]string{"小学校 徒歩10分以内", "小学校徒歩10分以内"}, "school_walk_10min", func(t *featureTaxonomy) { t.locationAccess["elementary_school_walk_min"] = Result{"max": 10} }},
	{[]string{"駅まで平坦"}, "station_flat", func(t *featureTaxonomy) { t.locationAccess["station_flat_access"] = true }},
	{[]string{"閑静な住宅地"}, "quiet_area", func(t *featureTaxonomy) { t.locationAccess["quiet_residential"] = true }},
	{[]string{"緑豊かな住宅地"}, "green_area", func(t *featureTaxonomy) { t.locationAccess["green_residential"] = true }},
	{[]string{"２沿線以上利用可", "2沿線以上利用可"}, "multiple_lines", func(t *featureTaxonomy) { t.parkingTransport["multiple_rail_lines"] = true }},

	{[]string{"土地50坪以上", "土地５０坪以上"}, "land_50tsubo_plus", func(t *featureTaxonomy) { t.landFeatures["area_tsubo"] = Result{"min": 50} }},
	{[]string{"角地"}, "corner_lot", func(t *featureTaxonomy) { t.landFeatures["corner_lot"] = true }},
	{[]string{"南側道路面す"}, "south_road", func(t *featureTaxonomy) { t.landFeatures["south_facing_road"] = true }},
	{[]string{"前道６ｍ以上", "前道6m以上"}, "road_6m_plus", func(t *featureTaxonomy) { t.landFeatures["road_width_m"] = Result{"min": 6} }},
	{[]string{"整形地"}, "regular_shape", func(t *featureTaxonomy) { t.landFeatures["regular_shape"] = true }},
	{[]string{"平坦地"}, "flat_land", func(t *featureTaxonomy) { t.landFeatures["flat_land"] = true }},

	{[]string{"駐車２台可", "駐車2台可"}, "parking_2cars", func(t *featureTaxonomy) { t.parkingTransport["parking_capacity"] = 2 }},
	{[]string{"駐車３台以上可", "駐車3台以上可"}, "parking_3cars_plus", func(t *featureTaxonomy) { t.parkingTransport["parking_capacity"] = 3 }},

	{[]string{"最上階角住戸"}, "top_floor_corner", func(t *featureTaxonomy) {
		t.roomFeatures["corner_unit"] = true
		t.roomFeatures["top_floor"] = true
	}},
	{[]string{"角住戸"}, "corner_unit", func(t *featureTaxonomy) { t.roomFeatures["corner_unit"] = true }},
	{[]string{"最上階"}, "top_floor", func(t *featureTaxonomy) { t.roomFeatures["top_floor"] = true }},
	{[]string{"全居室収納"}, "all_rooms_storage", func(t *featureTaxonomy) { t.roomFeatures["all_rooms_storage"] = true }},
	{[]string{"ウォークインクローゼット"}, "walk_in_closet", func(t *featureTaxonomy) { t.roomFeatures["walk_in_closet"] = true }},
	{[]string{"トイレ２ヶ所", "トイレ2ヶ所"}, "2_toilets", func(t *featureTaxonomy) { t.roomFeatures["toilets_count"] = 2 }},
	{[]string{"和室"}, "japanese_room", func(t *featureTaxonomy) { t.roomFeatures["japanese_room"] = true }},
	{[]string{"ペット相談"}, "pet_ok", func(t *featureTaxonomy) { t.roomFeatures["pet_negotiable"] = true }},

	{[]string{"内装リフォーム"}, "interior_reform", func(t *featureTaxonomy) { t.maintenance["interior_reform"] = true }},
	{[]string{"外装リフォーム"}, "exterior_reform", func(t *featureTaxonomy) { t.maintenance["exterior_reform"] = true }},
	{[]string{"内外装リフォーム"}, "full_reform", func(t *featureTaxonomy) { t.maintenance["full_reform"] = true }},

	{[]string{"分譲時の価格帯"}, "original_sale_price", nil},
}

var (
	featureSplitPattern = regexp.MustCompile(`\s*/\s*`)
	tagCharPattern      = regexp.MustCompile(`[^\p{L}\p{N}_]`)
)

// CleanseFeaturePickup parses slash-separated promotional feature tags into
// canonical tags plus a structured taxonomy. Long values are allowed here
// since tag lists legitimately run past the usual text cutoff, but sentinel
// and boilerplate values still null out.
func CleanseFeaturePickup(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || IsSentinel(value) {
		return nullValue(period)
	}
	for _, marker := range boilerplate {
		if strings.Contains(value, marker) {
			return nullValue(period)
		}
	}

	var features []string
	for _, f := range featureSplitPattern.Split(value, -1) {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	if len(features) == 0 {
		return nullValue(period)
	}

	tax := &featureTaxonomy{
		certifications:   Result{},
		buildingSpecs:    Result{},
		locationAccess:   Result{},
		landFeatures:     Result{},
		parkingTransport: Result{},
		roomFeatures:     Result{},
		maintenance:      Result{},
	}
	tags := []any{}
	rawFeatures := []any{}

	for _, feature := range features {
		rule := matchFeatureRule(feature)
		if rule < 0 {
			rawFeatures = append(rawFeatures, feature)
			tag := strings.ToLower(tagCharPattern.ReplaceAllString(feature, "_"))
			if tag != "" && !containsTag(tags, tag) {
				tags = append(tags, tag)
			}
			continue
		}
		tags = append(tags, featureRules[rule].tag)
		if featureRules[rule].apply != nil {
			featureRules[rule].apply(tax)
		}
	}

	result := Result{
		"feature_tags":  tags,
		"feature_count": len(features),
	}
	if len(rawFeatures) > 0 {
		result["raw_features"] = rawFeatures
	}
	if structured := tax.collapse(); len(structured) > 0 {
		result["structured_features"] = structured
	}
	return withPeriod(result, period)
}

func matchFeatureRule(feature string) int {
	for i, rule := range featureRules {
		for _, marker := range rule.markers {
			if strings.Contains(feature, marker) {
				return i
			}
		}
	}
	return -1
}

func containsTag(tags []any, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// collapse builds the output taxonomy, dropping empty categories.
func (t *featureTaxonomy) collapse() Result {
	out := Result{}
	put := func(key string, m Result) {
		if len(m) > 0 {
			out[key] = m
		}
	}
	put("certifications", t.certifications)
	put("building_specs", t.buildingSpecs)

	equipment := Result{}
	putList := func(key string, vs []any) {
		if len(vs) > 0 {
			equipment[key] = vs
		}
	}
	putList("kitchen", t.kitchen)
	putList("bathroom", t.bathroom)
	putList("heating_cooling", t.heatingCooling)
	putList("utilities", t.utilities)
	putList("security", t.security)
	if len(equipment) > 0 {
		out["equipment"] = equipment
	}

	put("location_access", t.locationAccess)
	put("land_features", t.landFeatures)
	put("parking_transport", t.parkingTransport)
	put("room_features", t.roomFeatures)
	put("maintenance", t.maintenance)
	return out
}
