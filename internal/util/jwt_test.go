package util

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("secret", "store-ledger", 7, 3, time.Hour)
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("解析 token 失败: %v", err)
	}
	if claims.UserID != 7 || claims.CompanyID != 3 {
		t.Errorf("claims 错误: user=%d company=%d", claims.UserID, claims.CompanyID)
	}
	if claims.Issuer != "store-ledger" {
		t.Errorf("issuer 错误: %s", claims.Issuer)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret", "", 1, 1, time.Hour)
	if _, err := ParseToken("other", token); err == nil {
		t.Error("错误密钥应解析失败")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, _ := GenerateToken("secret", "", 1, 1, -time.Hour)
	// ttl <= 0 使用默认 24 小时，因此仍然有效
	if _, err := ParseToken("secret", token); err != nil {
		t.Errorf("默认有效期内不应失败: %v", err)
	}
}
