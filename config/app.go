package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// Tabs 允许发帖的版块
	Tabs []string `json:"tabs" yaml:"tabs"`
}

// HasTab 版块是否在配置的版块列表里
func (a *App) HasTab(tab string) bool {
	for _, t := range a.Tabs {
		if t == tab {
			return true
		}
	}
	return false
}
