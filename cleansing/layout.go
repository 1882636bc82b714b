package cleansing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	layoutTokenPattern = regexp.MustCompile(`\d+[LDKSRF]+(?:[+＋]\d*[LDKSRF]*)*`)
	layoutValidPattern = regexp.MustCompile(`^\d+[LDKSRF]+(?:[+＋]\d*[LDKSRF]+)*$`)
	layoutPlainPattern = regexp.MustCompile(`^(\d+)([LDKSRF]+)$`)
	layoutAnnexPattern = regexp.MustCompile(`([+＋][A-Z]+)[（(][^）)]*[）)]`)
	storageNotePattern = regexp.MustCompile(`[（(][^）)]*(?:サービスルーム|ファミリークロゼット|シューズインクローク|納戸)[^）)]*[）)]`)
	bracketPattern     = regexp.MustCompile(`[（(]([^）)]*)[）)]`)
	digitPattern       = regexp.MustCompile(`\d`)
	leadingNumPattern  = regexp.MustCompile(`^(\d+)`)
)

// CleanseLayout extracts room-layout tokens such as 3LDK or 2LDK+S. A simple
// range like 1LDK～3LDK expands to every step; everything else is collected,
// deduplicated and sorted.
func CleanseLayout(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}

	if value == "ワンルーム" {
		return withPeriod(Result{"value": "1R"}, period)
	}

	// Storage-room annotations ride along with their token: +S（納戸） → +S.
	value = layoutAnnexPattern.ReplaceAllString(value, "$1")

	var items []string

	if containsAny(value, "～", "〜") {
		parts := rangeSplitPattern.Split(value, -1)
		if len(parts) == 2 {
			for _, part := range parts {
				if tok, ok := layoutToken(part); ok {
					items = append(items, tok)
				}
			}
			if len(items) == 2 {
				items = expandLayoutRange(items[0], items[1])
			}
		} else {
			for _, tok := range layoutTokenPattern.FindAllString(strings.ToUpper(value), -1) {
				if validLayout(tok) {
					items = append(items, tok)
				}
			}
		}
		items = append(items, bracketLayouts(value, items)...)
	} else {
		for _, part := range strings.Split(value, "・") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if containsAny(part, "(", "（") {
				main := parenPattern.ReplaceAllString(part, "")
				main = strings.NewReplacer("）", "", ")", "").Replace(main)
				if tok, ok := layoutToken(main); ok {
					items = append(items, tok)
				}
				items = append(items, bracketLayouts(part, nil)...)
			} else if tok, ok := layoutToken(part); ok {
				items = append(items, tok)
			}
		}
	}

	if len(items) == 0 {
		return withPeriod(Result{"value": value}, period)
	}

	unique := dedupeStrings(items)
	sort.Slice(unique, func(i, j int) bool {
		return layoutSortKey(unique[i]).less(layoutSortKey(unique[j]))
	})
	return withPeriod(Result{"values": unique}, period)
}

// layoutToken pulls the first valid layout token out of a text fragment.
func layoutToken(s string) (string, bool) {
	tok := layoutTokenPattern.FindString(strings.ToUpper(strings.TrimSpace(s)))
	if tok == "" || !validLayout(tok) {
		return "", false
	}
	return tok, true
}

func validLayout(tok string) bool {
	return len(tok) <= 10 &&
		layoutValidPattern.MatchString(tok) &&
		!strings.HasSuffix(tok, "+") && !strings.HasSuffix(tok, "＋")
}

// bracketLayouts mines parenthesized spans for further layout tokens,
// skipping any already collected.
func bracketLayouts(value string, have []string) []string {
	var found []string
	for _, m := range bracketPattern.FindAllStringSubmatch(value, -1) {
		for _, part := range strings.Split(m[1], "・") {
			part = storageNotePattern.ReplaceAllString(strings.TrimSpace(part), "")
			tok, ok := layoutToken(part)
			if !ok {
				continue
			}
			dup := false
			for _, h := range have {
				if h == tok {
					dup = true
					break
				}
			}
			if !dup {
				found = append(found, tok)
			}
		}
	}
	return found
}

// expandLayoutRange turns NLDK～MLDK into every intermediate layout when both
// endpoints share a suffix, and handles the 1R～NLDK form. Other endpoint
// pairs are returned as-is.
func expandLayoutRange(first, second string) []string {
	fm := layoutPlainPattern.FindStringSubmatch(first)
	sm := layoutPlainPattern.FindStringSubmatch(second)
	if fm == nil || sm == nil {
		return []string{first, second}
	}
	startNum, _ := strconv.Atoi(fm[1])
	endNum, _ := strconv.Atoi(sm[1])
	if fm[2] == sm[2] && startNum < endNum {
		out := make([]string, 0, endNum-startNum+1)
		for i := startNum; i <= endNum; i++ {
			out = append(out, strconv.Itoa(i)+fm[2])
		}
		return out
	}
	if first == "1R" && sm[2] == "LDK" && startNum == 1 && endNum >= 1 {
		out := []string{"1R"}
		for i := 1; i <= endNum; i++ {
			out = append(out, strconv.Itoa(i)+"LDK")
		}
		return out
	}
	return []string{first, second}
}

type layoutKey struct {
	num, class, plus int
	text             string
}

func (k layoutKey) less(o layoutKey) bool {
	if k.num != o.num {
		return k.num < o.num
	}
	if k.class != o.class {
		return k.class < o.class
	}
	if k.plus != o.plus {
		return k.plus < o.plus
	}
	return k.text < o.text
}

// layoutSortKey orders layouts by room count, then R before LDK before other
// suffixes, with plain tokens ahead of their +S and +1S variants.
func layoutSortKey(layout string) layoutKey {
	m := leadingNumPattern.FindStringSubmatch(layout)
	if m == nil {
		return layoutKey{999, 999, 999, layout}
	}
	num, _ := strconv.Atoi(m[1])
	switch {
	case strings.Contains(layout, "R") && !strings.Contains(layout, "LDK"):
		return layoutKey{num, 0, 0, layout}
	case strings.Contains(layout, "LDK"):
		if idx := strings.IndexAny(layout, "+＋"); idx >= 0 {
			plusPart := layout[idx:]
			if digitPattern.MatchString(plusPart) {
				return layoutKey{num, 1, 2, layout}
			}
			return layoutKey{num, 1, 1, layout}
		}
		return layoutKey{num, 1, 0, layout}
	default:
		return layoutKey{num, 2, 0, layout}
	}
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
