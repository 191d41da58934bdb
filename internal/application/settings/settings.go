// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up           string `yaml:"up" kong:"help='Up key',default='k'"`
	Down         string `yaml:"down" kong:"help='Down key',default='j'"`
	UpPage       string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage     string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Top          string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom       string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Left         string `yaml:"left" kong:"help='Left/Back key',default='h'"`
	Right        string `yaml:"right" kong:"help='Right/Enter key',default='l'"`
	Open         string `yaml:"open" kong:"help='Open detail key',default='enter'"`
	Back         string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit         string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Like         string `yaml:"like" kong:"help='Toggle like key',default='f'"`
	Visit        string `yaml:"visit" kong:"help='Open app link or express interest key',default='o'"`
	ToggleKind   string `yaml:"toggle_kind" kong:"help='Switch between apps and ideas key',default='tab'"`
	NextCategory string `yaml:"next_category" kong:"help='Next category key',default=']'"`
	PrevCategory string `yaml:"prev_category" kong:"help='Previous category key',default='['"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted  string `yaml:"muted" kong:"help='Muted text color',default='244'"`
}

// Settings represents the application configuration.
type Settings struct {
	PageSize         int          `yaml:"page_size" kong:"help='Items appended per page load',default='6'"`
	LoadDelayMillis  int          `yaml:"load_delay_ms" kong:"name='load-delay-ms',help='Simulated page load latency in milliseconds',default='500'"`
	NearEndThreshold int          `yaml:"near_end_threshold" kong:"help='Rows from the end of the feed that trigger the next page',default='2'"`
	CatalogFile      string       `yaml:"catalog_file" kong:"help='YAML catalog file (embedded seed when empty)'"`
	Database         string       `yaml:"database" kong:"help='SQLite catalog database (catalog file is used when empty)'"`
	StrictPlatforms  bool         `yaml:"strict_platforms" kong:"help='Reject platforms outside Web App and iOS',default='false'"`
	KeyMap           KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme            ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	LogFile          string       `yaml:"log_file" kong:"help='Log file path'"`
	LogLevel         string       `yaml:"log_level" kong:"help='Log level (debug/info/warn/error)',default='info'"`
}

// LoadDelay returns the simulated page latency. Negative values mean no delay.
func (s Settings) LoadDelay() time.Duration {
	if s.LoadDelayMillis <= 0 {
		return 0
	}
	return time.Duration(s.LoadDelayMillis) * time.Millisecond
}

// UsesDatabase reports whether the catalog is backed by SQLite.
func (s Settings) UsesDatabase() bool {
	return s.Database != ""
}
