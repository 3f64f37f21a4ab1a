package config

// Initialize 触发本目录下各配置文件的 init 加载
func Initialize() {
	// 各配置项通过包内文件的 init() 注册
}
