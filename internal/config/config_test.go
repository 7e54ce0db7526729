package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}
	return path
}

func TestReadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: s3cret\n")

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("读取配置失败: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("默认端口应为 8080, 实际 %d", cfg.Server.Port)
	}
	if cfg.Export.Schedule != "0 3 1 * *" {
		t.Errorf("默认导出计划错误: %q", cfg.Export.Schedule)
	}
	if cfg.App.PageSize != 50 {
		t.Errorf("默认分页大小应为 50, 实际 %d", cfg.App.PageSize)
	}
}

func TestReadEnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\njwt:\n  secret: s3cret\n")
	t.Setenv("SL_SERVER_PORT", "9100")

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("读取配置失败: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("环境变量应覆盖端口, 实际 %d", cfg.Server.Port)
	}
}

func TestReadRejectsMissingSecret(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")

	if _, err := Read(path); err == nil {
		t.Fatal("缺少 jwt.secret 时应返回错误")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Server: ServerConfig{Port: 8080},
		JWT:    JWTConfig{Secret: "x"},
		Export: ExportConfig{Enabled: true, Schedule: "0 3 1 * *"},
		App:    AppSubConfig{Timezone: "UTC"},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("合法配置不应报错: %v", err)
	}

	badPort := base
	badPort.Server.Port = 70000
	if err := badPort.Validate(); err == nil {
		t.Error("端口越界应报错")
	}

	badCron := base
	badCron.Export.Schedule = "every day"
	if err := badCron.Validate(); err == nil {
		t.Error("非法 cron 表达式应报错")
	}

	disabled := badCron
	disabled.Export.Enabled = false
	if err := disabled.Validate(); err != nil {
		t.Errorf("导出未启用时不校验 cron: %v", err)
	}
}
