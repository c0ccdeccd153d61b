package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/NichtsVonChaos/japanese-mahjong-theory/utils"
)

func init() {
	viper.SetDefault("log-level", "info")
	viper.SetDefault("log-dir", "")
	viper.SetDefault("history-file", "/tmp/jmt_readline.tmp")

	viper.SetEnvPrefix("jmt")
	viper.AutomaticEnv()

	viper.SetConfigName("jmt")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.jmt")
	// A missing config file is fine; env and defaults carry the rest.
	_ = viper.ReadInConfig()
}

func main() {
	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log := utils.NewLogrus(level, viper.GetString("log-dir"))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		os.Exit(0)
	}()

	sc, err := newShell(log, viper.GetString("history-file"))
	if err != nil {
		log.Fatalf("failed to start shell: %v", err)
	}
	defer sc.close()
	sc.loop()
}
