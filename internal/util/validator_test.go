package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestParseAmountCents 测试金额解析为分
func TestParseAmountCents(t *testing.T) {
	cases := map[string]int64{
		"0.01":      1,
		"12.34":     1234,
		"100":       10000,
		" 9999.9 ":  999990,
		"1234567.8": 123456780,
	}
	for in, want := range cases {
		got, err := ParseAmountCents(in)
		if err != nil {
			t.Errorf("ParseAmountCents(%q) error = %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAmountCents(%q) = %d, want %d", in, got, want)
		}
	}
}

// TestParseAmountCents_Invalid 测试非法金额
func TestParseAmountCents_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "0", "-1", "1.001", "100000000"} {
		if _, err := ParseAmountCents(in); err == nil {
			t.Errorf("ParseAmountCents(%q) error = nil, want error", in)
		}
	}
}

// TestValidateAmount 测试金额边界
func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.RequireFromString("99999999.99")); err != nil {
		t.Errorf("上限以内不应报错: %v", err)
	}
	if err := ValidateAmount(decimal.Zero); err == nil {
		t.Error("ValidateAmount(0) error = nil, want error")
	}
	if err := ValidateAmount(decimal.NewFromInt(100000000)); err == nil {
		t.Error("ValidateAmount(1亿) error = nil, want error")
	}
}

// TestValidateDate 测试日期格式
func TestValidateDate(t *testing.T) {
	for _, date := range []string{"2024-01-01", "2024-02-29", "2025-06-15"} {
		if err := ValidateDate(date); err != nil {
			t.Errorf("ValidateDate(%s) error = %v, want nil", date, err)
		}
	}
	for _, date := range []string{"", "2024/01/01", "2024-13-01", "2023-02-29", "20240101"} {
		if err := ValidateDate(date); err == nil {
			t.Errorf("ValidateDate(%s) error = nil, want error", date)
		}
	}
}

// TestValidateName 测试名称长度按字符计算
func TestValidateName(t *testing.T) {
	if err := ValidateName("房费收入", 4); err != nil {
		t.Errorf("4 个汉字应合法: %v", err)
	}
	if err := ValidateName("房费收入啊", 4); err == nil {
		t.Error("超过长度应报错")
	}
	if err := ValidateName("   ", 4); err == nil {
		t.Error("空白名称应报错")
	}
}

// TestParseIDList 测试门店 ID 列表
func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("3, 1,3,,2")
	if err != nil {
		t.Fatalf("ParseIDList error = %v", err)
	}
	want := []uint{3, 1, 2}
	if len(ids) != len(want) {
		t.Fatalf("ParseIDList = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}

	if ids, err := ParseIDList(""); err != nil || ids != nil {
		t.Errorf("空串应返回 nil, got %v %v", ids, err)
	}
	for _, bad := range []string{"a", "0", "1,-2"} {
		if _, err := ParseIDList(bad); err == nil {
			t.Errorf("ParseIDList(%q) error = nil, want error", bad)
		}
	}
}
