package cleansing

import "testing"

func TestCleanseCompanyInfo_RoleAndLicense(t *testing.T) {
	result := CleanseCompanyInfo("＜売主＞三井不動産レジデンシャル株式会社　国土交通大臣（15）第4600号", "会社概要", nil)
	companies := result["companies"].([]any)
	if len(companies) != 1 {
		t.Fatalf("expected 1 company, got %v", result)
	}
	company := companies[0].(Result)
	if company["role"] != "売主" {
		t.Fatalf("expected 売主 role, got %v", company["role"])
	}
	if company["name"] != "三井不動産レジデンシャル株式会社" {
		t.Fatalf("expected company name, got %v", company["name"])
	}
	licenses := company["licenses"].([]any)
	if len(licenses) != 1 || licenses[0] != "国土交通大臣（15）第4600号" {
		t.Fatalf("expected minister license, got %v", licenses)
	}
}

func TestCleanseCompanyInfo_DropsAnonymousBlocks(t *testing.T) {
	value := "＜売主＞三井不動産レジデンシャル株式会社　国土交通大臣（15）第4600号\t〒100-0001　東京都千代田区大手町1-1-1"
	result := CleanseCompanyInfo(value, "会社概要", nil)
	companies := result["companies"].([]any)
	if len(companies) != 1 {
		t.Fatalf("expected address-only block dropped, got %v", companies)
	}
}

func TestCleanseCompanyInfo_PostalAddress(t *testing.T) {
	result := CleanseCompanyInfo("＜販売代理＞〒100-0001　東京都千代田区大手町1-1-1", "会社概要", nil)
	companies := result["companies"].([]any)
	if len(companies) != 1 {
		t.Fatalf("expected 1 company, got %v", result)
	}
	company := companies[0].(Result)
	if company["postal_code"] != "100-0001" {
		t.Fatalf("expected postal code, got %v", company["postal_code"])
	}
	if company["address"] != "東京都千代田区大手町1-1-1" {
		t.Fatalf("expected address, got %v", company["address"])
	}
}

func TestCleanseCompanyInfo_Empty(t *testing.T) {
	result := CleanseCompanyInfo("", "会社概要", nil)
	if len(result["companies"].([]any)) != 0 {
		t.Fatalf("expected no companies, got %v", result)
	}
}
