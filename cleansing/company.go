package cleansing

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	rolePattern        = regexp.MustCompile(`＜([^＞]+)＞`)
	ministerLicense    = regexp.MustCompile(`国土交通大臣\s*（(\d+)）\s*第(\d+)\s*号`)
	governorLicense    = regexp.MustCompile(`([^知事]*?)知事\s*（(\d+)）\s*第(\d+)\s*号`)
	constructionPermit = regexp.MustCompile(`建設業許可[/／]([^　\s]+)`)
	membershipPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(公社\)([^　\s会員]+)会員`),
		regexp.MustCompile(`\(一社\)([^　\s会員]+)会員`),
		regexp.MustCompile(`([^　\s（）]+)協議会加盟`),
	}
	companyNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`株式会社[^〒\n\t　]+`),
		regexp.MustCompile(`[^株式会社]*株式会社[^〒\n\t　]*`),
		regexp.MustCompile(`[^〒\n\t　]+株式会社`),
		regexp.MustCompile(`[^〒\n\t　]*会社[^〒\n\t　]*`),
	}
	nameNoisePattern   = regexp.MustCompile(`[（）\(\)].*?[（）\(\)]`)
	licenseTailPattern = regexp.MustCompile(`第\d+.*`)
	postalPattern      = regexp.MustCompile(`〒(\d{3}-\d{4})\s*([^〒]+)`)
)

// CleanseCompanyInfo parses 会社概要 blocks, one company per tab-separated
// block: role, licenses, construction permits, memberships, name and address.
// Blocks yielding none of name, role or licenses are dropped.
func CleanseCompanyInfo(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return withPeriod(Result{"companies": []any{}}, period)
	}

	companies := []any{}
	for _, block := range strings.Split(value, "\t") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		info := Result{}
		if m := rolePattern.FindStringSubmatch(block); m != nil {
			info["role"] = m[1]
			block = strings.TrimSpace(rolePattern.ReplaceAllString(block, ""))
		}

		var licenses []any
		for _, m := range ministerLicense.FindAllStringSubmatch(block, -1) {
			licenses = append(licenses, fmt.Sprintf("国土交通大臣（%s）第%s号", m[1], m[2]))
		}
		for _, m := range governorLicense.FindAllStringSubmatch(block, -1) {
			licenses = append(licenses, fmt.Sprintf("%s知事（%s）第%s号", m[1], m[2], m[3]))
		}
		if len(licenses) > 0 {
			info["licenses"] = licenses
		}

		if ms := constructionPermit.FindAllStringSubmatch(block, -1); len(ms) > 0 {
			permits := make([]any, 0, len(ms))
			for _, m := range ms {
				permits = append(permits, m[1])
			}
			info["construction_permits"] = permits
		}

		var memberships []any
		for _, p := range membershipPatterns {
			for _, m := range p.FindAllStringSubmatch(block, -1) {
				dup := false
				for _, have := range memberships {
					if have == m[1] {
						dup = true
						break
					}
				}
				if !dup {
					memberships = append(memberships, m[1])
				}
			}
		}
		if len(memberships) > 0 {
			info["memberships"] = memberships
		}

		for _, p := range companyNamePatterns {
			if name := p.FindString(block); name != "" {
				name = nameNoisePattern.ReplaceAllString(strings.TrimSpace(name), "")
				name = licenseTailPattern.ReplaceAllString(name, "")
				info["name"] = strings.TrimSpace(name)
				break
			}
		}

		if m := postalPattern.FindStringSubmatch(block); m != nil {
			info["postal_code"] = m[1]
			addr := m[2]
			if idx := strings.Index(addr, "株式会社"); idx >= 0 {
				addr = addr[:idx]
			}
			info["address"] = strings.TrimSpace(addr)
		}

		if _, hasName := info["name"]; hasName || info["role"] != nil || info["licenses"] != nil {
			companies = append(companies, info)
		}
	}
	return withPeriod(Result{"companies": companies}, period)
}
