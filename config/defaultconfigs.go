package config

import "connect4/searcher"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		Colors: ConfigColors{
			Board:     18,
			Engine:    196,
			Human:     226,
			Cursor:    255,
			LastMoved: 46,
		},
		Symbols: ConfigSymbols{
			Engine: "●",
			Human:  "●",
			Empty:  "·",
			Cursor: "▼",
		},
	}

	DefaultConfig = Config{
		Engine: EngineConfig{
			Depth:     searcher.DefaultDepth,
			Evaluator: searcher.DefaultEvaluator,
		},
		Theme: DefaultTheme,
		Log: LogConfig{
			Level: "info",
		},
	}
}
