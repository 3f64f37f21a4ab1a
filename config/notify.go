package config

import (
	"tcac/pkg/config"
)

func init() {
	config.Add("notify", func() map[string]interface{} {
		return map[string]interface{}{
			// 审核结果回调地址，留空则不投递通知
			"url":     config.Env("NOTIFY_URL", ""),
			"api_key": config.Env("NOTIFY_API_KEY", ""),

			"timeout":     config.Env("NOTIFY_TIMEOUT", 10),
			"max_retries": config.Env("NOTIFY_MAX_RETRIES", 3),
		}
	})
}
