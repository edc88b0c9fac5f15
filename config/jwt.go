package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// 访问令牌有效期（分钟）
	ExpiresMinutes int `json:"expires_minutes" yaml:"expires_minutes"`
}
