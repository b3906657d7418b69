package config

import "github.com/vancomm/minesweeper/internal/journal"

type Journal struct {
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

func (j Journal) Options() journal.Options {
	return journal.Options{
		File:       j.File,
		MaxSize:    j.MaxSize,
		MaxBackups: j.MaxBackups,
		MaxAge:     j.MaxAge,
	}
}
